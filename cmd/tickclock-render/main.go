// Command tickclock-render renders a tick-clock card to SVG or PNG without
// a window, optionally re-rendering whenever the displayed value changes.
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tickclock/internal/card"
	"tickclock/internal/core/geometry"
	"tickclock/internal/core/host"
	"tickclock/internal/core/model"
	"tickclock/internal/logging"
	"tickclock/internal/render/svg"
	"tickclock/internal/storage"
	"tickclock/resources"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	rootCmd := &cobra.Command{
		Use:   "tickclock-render",
		Short: "Render a tick-clock card to SVG or PNG",
		Long: `tickclock-render lays out a tick-clock card for a container size and writes
it as an SVG document or a PNG preview. Every flag can also be set through a
TICKCLOCK_<FLAG> environment variable, e.g. TICKCLOCK_WIDTH=300.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			states, err := cmd.Flags().GetStringToString("state")
			if err != nil {
				return err
			}
			return run(cmd.Context(), v, states, cmd.OutOrStdout())
		},
	}

	flags := rootCmd.Flags()
	flags.String("card", "", "Card YAML file (default: built-in card)")
	flags.Float64("width", 247, "Container width in px")
	flags.Float64("height", 120, "Container height in px; 0 uses the fallback height")
	flags.Float64("theme-radius", 12, "Host theme corner radius in px")
	flags.StringP("output", "o", "", "Output file path (default: stdout)")
	flags.String("format", string(svg.FormatSVG), "Output format: svg or png")
	flags.Float64("scale", 1, "PNG scale factor")
	flags.StringToString("state", nil, "Entity values, e.g. --state sensor.time=10:42")
	flags.Duration("watch", 0, "Re-render at this interval and on wall-clock changes, writing only when the output changes")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("env-file", "", "Load environment variables from this dotenv file (default: .env if present)")
	_ = v.BindPFlags(flags)

	v.SetEnvPrefix("TICKCLOCK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return rootCmd
}

func run(ctx context.Context, v *viper.Viper, stateFlags map[string]string, stdout io.Writer) error {
	if err := loadEnv(v.GetString("env-file")); err != nil {
		return err
	}
	logger, err := logging.New(logging.Options{Level: v.GetString("log-level")})
	if err != nil {
		return err
	}

	overrides, err := loadCard(v.GetString("card"))
	if err != nil {
		return err
	}
	config, err := model.NewConfig(overrides)
	if err != nil {
		return fmt.Errorf("card config: %w", err)
	}

	bus := host.NewBus()
	defer bus.Close()
	wallClock := host.NewWallClock(bus, host.WallClockConfig{})
	states := host.Layered{host.NewStaticStates(stateFlags), wallClock}

	clockCard, err := card.New(config, states, bus)
	if err != nil {
		return err
	}
	clockCard.SetLogger(logger)

	renderer := &svg.Renderer{
		Card:        clockCard,
		Size:        geometry.ContainerSize{Width: v.GetFloat64("width"), Height: v.GetFloat64("height")},
		ThemeRadius: v.GetFloat64("theme-radius"),
		Format:      svg.Format(strings.ToLower(v.GetString("format"))),
		Scale:       v.GetFloat64("scale"),
	}
	output := v.GetString("output")

	if err := renderTo(renderer, output, stdout, logger); err != nil {
		return err
	}

	interval := v.GetDuration("watch")
	if interval <= 0 {
		return nil
	}
	return watch(ctx, watchTarget{
		renderer: renderer,
		output:   output,
		stdout:   stdout,
		log:      logger,
		entity:   config.Entity,
		interval: interval,
		clock:    wallClock,
		events:   bus.Subscribe(8),
	})
}

type watchTarget struct {
	renderer *svg.Renderer
	output   string
	stdout   io.Writer
	log      logrus.FieldLogger
	entity   string
	interval time.Duration
	clock    *host.WallClock
	events   <-chan host.Event
}

func watch(parent context.Context, target watchTarget) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	target.clock.Start()
	defer target.clock.Stop()

	ticker := time.NewTicker(target.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		case event, ok := <-target.events:
			if !ok {
				return nil
			}
			if event.Type != host.EventStateChanged || event.EntityID != target.entity {
				continue
			}
		}
		if err := renderTo(target.renderer, target.output, target.stdout, target.log); err != nil {
			return err
		}
	}
}

// renderTo writes a changed frame to path, or to stdout when path is empty.
func renderTo(renderer *svg.Renderer, path string, stdout io.Writer, logger logrus.FieldLogger) error {
	var buf bytes.Buffer
	wrote, err := renderer.Render(&buf, time.Now())
	if err != nil {
		return err
	}
	if !wrote {
		logger.Debug("output unchanged")
		return nil
	}

	if path == "" {
		_, err = stdout.Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		renderer.Card.Invalidate()
		return fmt.Errorf("write output: %w", err)
	}
	logger.WithFields(logrus.Fields{"path": path, "bytes": buf.Len()}).Info("card rendered")
	return nil
}

func loadCard(path string) (model.Overrides, error) {
	if path == "" {
		return storage.ParseCard(resources.DefaultCard())
	}
	return storage.LoadCard(path)
}

func loadEnv(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load env file: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}
