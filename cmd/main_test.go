package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickclock/internal/core/model"
)

func TestLoadCardExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entity: sensor.date\nshowSecondsSweep: true\n"), 0o644))

	overrides, err := loadCard(path, logrus.New())
	require.NoError(t, err)
	assert.Equal(t, "sensor.date", *overrides.Entity)
	assert.True(t, *overrides.ShowSecondsSweep)
}

func TestLoadCardMissingExplicitPathUsesStub(t *testing.T) {
	overrides, err := loadCard(filepath.Join(t.TempDir(), "nope.yaml"), logrus.New())
	require.NoError(t, err)

	config, err := model.NewConfig(overrides)
	require.NoError(t, err)
	assert.Equal(t, model.SizingGrid, config.Sizing)
}

func TestRootCommandFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"card", "log-level", "log-file", "undecorated"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}
