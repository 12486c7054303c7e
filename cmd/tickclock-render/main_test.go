package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestRenderSVGToStdout(t *testing.T) {
	doc := execute(t, "--state", "sensor.time=10:42", "--width", "247", "--height", "120")

	assert.True(t, strings.HasPrefix(doc, "<svg "))
	assert.Contains(t, doc, `viewBox="0 0 247 120"`)
	assert.Contains(t, doc, ">10:42</text>")
	assert.Contains(t, doc, `<rect x="7.2" y="7.2" width="232.6" height="105.6"`)
}

func TestRenderZeroHeightFallsBack(t *testing.T) {
	doc := execute(t, "--width", "200", "--height", "0")
	assert.Contains(t, doc, `viewBox="0 0 200 100"`)
}

func TestRenderCardFileAndPNG(t *testing.T) {
	dir := t.TempDir()
	cardPath := filepath.Join(dir, "card.yaml")
	require.NoError(t, os.WriteFile(cardPath, []byte("entity: sensor.date\ncols: 8\nrows: 3\n"), 0o644))
	outPath := filepath.Join(dir, "card.png")

	execute(t, "--card", cardPath, "--format", "png", "--scale", "2", "--output", outPath)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "gif"})
	assert.Error(t, cmd.Execute())
}

func TestRenderEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("TICKCLOCK_WIDTH", "300")
	doc := execute(t)
	assert.Contains(t, doc, `viewBox="0 0 300 120"`)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TICKCLOCK_TEST_VALUE=from-file\n"), 0o644))
	t.Setenv("TICKCLOCK_TEST_VALUE", "")
	require.NoError(t, os.Unsetenv("TICKCLOCK_TEST_VALUE"))

	require.NoError(t, loadEnv(path))
	assert.Equal(t, "from-file", os.Getenv("TICKCLOCK_TEST_VALUE"))

	assert.Error(t, loadEnv(filepath.Join(t.TempDir(), "missing.env")))
}
