package editor

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tickclock/internal/core/model"
	"tickclock/internal/schema"
)

func newTestEditor(t *testing.T) (*Window, *[]model.Overrides) {
	t.Helper()
	app := test.NewTempApp(t)
	var emitted []model.Overrides
	editor := New(app, schema.StubConfig(), func(next model.Overrides) {
		emitted = append(emitted, next)
	})
	return editor, &emitted
}

func TestControlsCoverEveryField(t *testing.T) {
	editor, emitted := newTestEditor(t)
	for _, field := range schema.Fields() {
		assert.Contains(t, editor.controls, field.Name)
	}
	assert.Empty(t, *emitted, "populating controls must not emit edits")

	entity := editor.controls["entity"].object.(*widget.Entry)
	assert.Equal(t, "sensor.time", entity.Text)
	cols := editor.controls["cols"].object.(*widget.Select)
	assert.Equal(t, "6", cols.Selected)
}

func TestEditEmitsReplacement(t *testing.T) {
	editor, emitted := newTestEditor(t)

	require.NoError(t, editor.Edit("tickColor", "red"))
	require.Len(t, *emitted, 1)
	next := (*emitted)[0]
	assert.Equal(t, "red", *next.TickColor)
	assert.Equal(t, "sensor.time", *next.Entity)
	assert.Equal(t, model.CardType, *next.Type)
	assert.Equal(t, next, editor.Overrides())
}

func TestEditRejectsInvalid(t *testing.T) {
	editor, emitted := newTestEditor(t)

	err := editor.Edit("padPct", 99.0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, schema.ErrInvalidValue))
	assert.Empty(t, *emitted)
	assert.NotEmpty(t, editor.status.Text)

	require.NoError(t, editor.Edit("padPct", 4.0))
	assert.Empty(t, editor.status.Text)
}

func TestWidgetsRouteThroughEdit(t *testing.T) {
	editor, emitted := newTestEditor(t)

	check := editor.controls["showSecondsSweep"].object.(*widget.Check)
	test.Tap(check)
	require.Len(t, *emitted, 1)
	assert.True(t, *(*emitted)[0].ShowSecondsSweep)

	rows := editor.controls["rows"].object.(*widget.Select)
	rows.SetSelected("3")
	require.Len(t, *emitted, 2)
	assert.Equal(t, 3, *(*emitted)[1].Rows)
	assert.True(t, *(*emitted)[1].ShowSecondsSweep)

	entry := editor.controls["fontColor"].object.(*widget.Entry)
	entry.SetText("#123456")
	require.Len(t, *emitted, 3)
	assert.Equal(t, "#123456", *(*emitted)[2].FontColor)
}

func TestUpdateOverridesDoesNotEmit(t *testing.T) {
	editor, emitted := newTestEditor(t)

	editor.UpdateOverrides(model.Overrides{Entity: model.Ptr("sensor.date"), ShowSecondsSweep: model.Ptr(true)})
	assert.Empty(t, *emitted)
	assert.True(t, editor.controls["showSecondsSweep"].object.(*widget.Check).Checked)
	assert.Equal(t, "sensor.date", editor.controls["entity"].object.(*widget.Entry).Text)
}

func TestLabelFor(t *testing.T) {
	assert.Equal(t, "Padding (%)", labelFor("padPct"))
	assert.Equal(t, "Hour hand width", labelFor("hourHandWidth"))
}
