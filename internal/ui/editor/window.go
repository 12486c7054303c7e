// Package editor shows a Fyne form generated from the card's editable
// fields. Every edit produces a full replacement configuration.
package editor

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"tickclock/internal/core/model"
	"tickclock/internal/schema"
)

type control struct {
	object fyne.CanvasObject
	show   func(value any)
}

// Window handles the card editor UI.
type Window struct {
	window    fyne.Window
	overrides model.Overrides
	onChange  func(model.Overrides)
	log       logrus.FieldLogger
	status    *widget.Label
	controls  map[string]control
	updating  bool
}

// New creates an editor window for overrides. onChange receives every
// accepted edit as a complete configuration.
func New(app fyne.App, overrides model.Overrides, onChange func(model.Overrides)) *Window {
	window := app.NewWindow("Tick clock card")

	editor := &Window{
		window:    window,
		overrides: overrides,
		onChange:  onChange,
		log:       logrus.StandardLogger(),
		status:    widget.NewLabel(""),
		controls:  make(map[string]control),
	}
	editor.status.Wrapping = fyne.TextWrapWord

	form := widget.NewForm()
	for _, field := range schema.Fields() {
		ctrl := editor.newControl(field)
		editor.controls[field.Name] = ctrl
		form.Append(labelFor(field.Name), ctrl.object)
	}
	editor.refreshControls()

	doneButton := widget.NewButton("Done", func() {
		window.Hide()
	})
	buttons := container.NewHBox(editor.status, layout.NewSpacer(), doneButton)

	content := container.NewBorder(nil, buttons, nil, nil, container.NewVScroll(form))
	window.SetContent(content)
	window.Resize(fyne.NewSize(460, 640))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return editor
}

// SetLogger replaces the logger used for rejected edits.
func (editor *Window) SetLogger(log logrus.FieldLogger) {
	if log != nil {
		editor.log = log
	}
}

// Show displays the editor window.
func (editor *Window) Show() {
	editor.window.Show()
	editor.window.RequestFocus()
}

// Overrides returns the configuration as edited so far.
func (editor *Window) Overrides() model.Overrides {
	return editor.overrides
}

// UpdateOverrides replaces the edited configuration without emitting a
// change.
func (editor *Window) UpdateOverrides(overrides model.Overrides) {
	editor.overrides = overrides
	editor.refreshControls()
}

// Edit applies one field edit and, when accepted, emits the replacement
// configuration.
func (editor *Window) Edit(name string, value any) error {
	if editor.updating {
		return nil
	}
	next, err := schema.Apply(editor.overrides, name, value)
	if err != nil {
		editor.status.SetText(err.Error())
		editor.log.WithError(err).WithField("field", name).Debug("edit rejected")
		return err
	}

	editor.overrides = next
	editor.status.SetText("")
	if editor.onChange != nil {
		editor.onChange(next)
	}
	return nil
}

func (editor *Window) refreshControls() {
	editor.updating = true
	defer func() { editor.updating = false }()

	config := model.Merge(model.DefaultConfig(), editor.overrides)
	for _, field := range schema.Fields() {
		if ctrl, ok := editor.controls[field.Name]; ok {
			ctrl.show(field.Value(config))
		}
	}
}

func (editor *Window) newControl(field schema.Field) control {
	name := field.Name
	switch field.Kind {
	case schema.KindBoolean:
		check := widget.NewCheck("", func(checked bool) {
			_ = editor.Edit(name, checked)
		})
		return control{object: check, show: func(value any) {
			checked, _ := value.(bool)
			check.SetChecked(checked)
		}}

	case schema.KindSelect:
		labels := make([]string, 0, len(field.Options))
		for _, option := range field.Options {
			labels = append(labels, option.Label)
		}
		sel := widget.NewSelect(labels, func(label string) {
			for _, option := range field.Options {
				if option.Label == label {
					_ = editor.Edit(name, option.Value)
					return
				}
			}
		})
		return control{object: sel, show: func(value any) {
			sel.SetSelected(fmt.Sprint(value))
		}}

	case schema.KindNumber:
		if field.Slider {
			return editor.newSlider(field)
		}
		entry := widget.NewEntry()
		entry.OnChanged = func(text string) {
			_ = editor.Edit(name, text)
		}
		return control{object: entry, show: func(value any) {
			entry.SetText(formatNumber(value))
		}}

	default:
		entry := widget.NewEntry()
		if field.Kind == schema.KindColor {
			entry.SetPlaceHolder("#RRGGBB or name")
		}
		entry.OnChanged = func(text string) {
			_ = editor.Edit(name, text)
		}
		return control{object: entry, show: func(value any) {
			entry.SetText(fmt.Sprint(value))
		}}
	}
}

func (editor *Window) newSlider(field schema.Field) control {
	name := field.Name
	valueLabel := widget.NewLabel("")
	slider := widget.NewSlider(field.Min, field.Max)
	slider.Step = field.Step
	slider.OnChanged = func(value float64) {
		valueLabel.SetText(formatNumber(value))
	}
	slider.OnChangeEnded = func(value float64) {
		_ = editor.Edit(name, value)
	}
	object := container.NewBorder(nil, nil, nil, valueLabel, slider)
	return control{object: object, show: func(value any) {
		number, _ := value.(float64)
		slider.SetValue(number)
		valueLabel.SetText(formatNumber(number))
	}}
}

func formatNumber(value any) string {
	switch number := value.(type) {
	case float64:
		return strconv.FormatFloat(number, 'f', -1, 64)
	case int:
		return strconv.Itoa(number)
	default:
		return fmt.Sprint(value)
	}
}
