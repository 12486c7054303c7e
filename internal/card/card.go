// Package card holds the toolkit-independent part of the tick-clock card:
// configuration ownership, the label lookup, the click signal and the
// content-equality check that keeps adapters from redrawing identical frames.
package card

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"tickclock/internal/core/geometry"
	"tickclock/internal/core/host"
	"tickclock/internal/core/model"
)

// Placeholder is shown when the entity has no known state.
const Placeholder = "—"

// Frame is everything an adapter needs to draw one card frame.
type Frame struct {
	Config   model.ClockConfig
	Size     geometry.ContainerSize
	Layout   geometry.Layout
	Label    string
	FellBack bool
}

// Serializer turns a frame into comparable content, e.g. an SVG document.
type Serializer func(Frame) string

// Card owns one widget instance's configuration and host connections.
// It is not safe for concurrent use; adapters call it from their UI thread.
type Card struct {
	config      model.ClockConfig
	states      host.StateSource
	bus         *host.Bus
	log         logrus.FieldLogger
	lastContent string
	rendered    bool
}

// New validates config and creates a card. states and bus may be nil while
// the card is not connected to a host.
func New(config model.ClockConfig, states host.StateSource, bus *host.Bus) (*Card, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}
	return &Card{
		config: config,
		states: states,
		bus:    bus,
		log:    logrus.StandardLogger(),
	}, nil
}

// SetLogger replaces the logger used for fallback diagnostics.
func (card *Card) SetLogger(log logrus.FieldLogger) {
	if log != nil {
		card.log = log
	}
}

// Config returns the current configuration.
func (card *Card) Config() model.ClockConfig {
	return card.config
}

// SetConfig replaces the configuration wholesale and forces the next render.
func (card *Card) SetConfig(config model.ClockConfig) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("set card config: %w", err)
	}
	card.config = config
	card.Invalidate()
	return nil
}

// Connect attaches the card to a host state source and event bus.
func (card *Card) Connect(states host.StateSource, bus *host.Bus) {
	card.states = states
	card.bus = bus
}

// Invalidate makes the next Render report a change even if content matches.
func (card *Card) Invalidate() {
	card.rendered = false
}

// Label returns the entity's current state or the placeholder.
func (card *Card) Label() string {
	if card.states == nil {
		return Placeholder
	}
	value, ok := card.states.State(card.config.Entity)
	if !ok {
		return Placeholder
	}
	return value
}

// Click emits a more-info request for the card's entity. It reports whether
// a request was sent; nothing is sent without an entity or a connected host.
func (card *Card) Click() bool {
	if card.config.Entity == "" || card.bus == nil {
		return false
	}
	return card.bus.Publish(host.Event{
		Type:     host.EventMoreInfo,
		EntityID: card.config.Entity,
	})
}

// Frame resolves the container size and computes the layout for one render.
func (card *Card) Frame(measured geometry.ContainerSize, themeRadius float64, now time.Time) (Frame, error) {
	size, fellBack := geometry.ResolveSize(card.config, measured)
	if fellBack {
		card.log.WithFields(logrus.Fields{
			"entity":          card.config.Entity,
			"measured_width":  measured.Width,
			"measured_height": measured.Height,
			"height":          size.Height,
		}).Debug("container height substituted")
	}

	layout, err := geometry.ComputeLayout(card.config, size, themeRadius, now)
	if err != nil {
		return Frame{}, err
	}
	return Frame{
		Config:   card.config,
		Size:     size,
		Layout:   layout,
		Label:    card.Label(),
		FellBack: fellBack,
	}, nil
}

// Render computes a frame and serializes it. changed is false when the
// content equals the previously rendered content, in which case the adapter
// should leave its output untouched.
func (card *Card) Render(measured geometry.ContainerSize, themeRadius float64, now time.Time, serialize Serializer) (Frame, string, bool, error) {
	frame, err := card.Frame(measured, themeRadius, now)
	if err != nil {
		return Frame{}, "", false, err
	}
	if serialize == nil {
		serialize = Fingerprint
	}
	content := serialize(frame)
	if card.rendered && content == card.lastContent {
		return frame, content, false, nil
	}
	card.lastContent = content
	card.rendered = true
	return frame, content, true, nil
}

// Fingerprint serializes every value of a frame that affects its drawing.
func Fingerprint(frame Frame) string {
	layout := frame.Layout
	sweep := "off"
	if layout.Sweep != nil {
		sweep = fmt.Sprintf("%+v", *layout.Sweep)
	}
	layout.Sweep = nil
	return fmt.Sprintf("%+v|%+v|%s|%q", frame.Config, layout, sweep, frame.Label)
}
