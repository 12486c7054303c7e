package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tickclock/internal/card"
	"tickclock/internal/catalog"
	"tickclock/internal/core/host"
	"tickclock/internal/core/model"
	"tickclock/internal/logging"
	"tickclock/internal/schema"
	"tickclock/internal/storage"
	"tickclock/internal/ui/cardwindow"
	"tickclock/internal/ui/clockwidget"
	"tickclock/internal/ui/editor"
	"tickclock/internal/ui/tray"
	"tickclock/resources"
)

const appName = "TickClock"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	rootCmd := &cobra.Command{
		Use:   "tickclock",
		Short: "Desktop tick-clock card",
		Long: `tickclock shows a clock card with 60 tick marks around the value of an
entity. The built-in wall clock provides sensor.time, sensor.time_seconds
and sensor.date.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(v)
		},
	}

	flags := rootCmd.Flags()
	flags.String("card", "", "Card YAML file (default: <user config dir>/TickClock/card.yaml)")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.String("log-file", "", "Write logs to this file with rotation instead of stderr")
	flags.Bool("undecorated", false, "Show the card without window decorations")
	_ = v.BindPFlags(flags)

	v.SetEnvPrefix("TICKCLOCK")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return rootCmd
}

func run(v *viper.Viper) error {
	logger, err := logging.New(logging.Options{
		Level: v.GetString("log-level"),
		File:  v.GetString("log-file"),
	})
	if err != nil {
		return err
	}

	registry := catalog.NewRegistry()
	entry := catalog.ClockTicksEntry()
	if err := registry.Register(entry); err != nil {
		return fmt.Errorf("register card: %w", err)
	}
	for _, registered := range registry.List() {
		logger.WithField("type", registered.Type).Debug("card type registered")
	}

	overrides, err := loadCard(v.GetString("card"), logger)
	if err != nil {
		return err
	}
	config, err := model.NewConfig(overrides)
	if err != nil {
		return fmt.Errorf("card config: %w", err)
	}

	bus := host.NewBus()
	defer bus.Close()
	wallClock := host.NewWallClock(bus, host.WallClockConfig{TickInterval: time.Second})

	clockCard, err := card.New(config, wallClock, bus)
	if err != nil {
		return err
	}

	fyneApp := app.NewWithID("com.tickclock.app")
	fyneApp.SetIcon(resources.MustIcon())

	clock := clockwidget.New(clockCard)
	clock.SetLogger(logger)
	cardWindow := cardwindow.New(fyneApp, clock, cardwindow.Config{
		Title:       entry.Name,
		Undecorated: v.GetBool("undecorated"),
	})

	editorWindow := editor.New(fyneApp, overrides, func(next model.Overrides) {
		bus.Publish(host.Event{Type: host.EventConfigChanged, Config: next})
	})
	editorWindow.SetLogger(logger)

	desktopApp, ok := fyneApp.(desktop.App)
	if ok {
		desktopApp.SetSystemTrayIcon(resources.MustIcon())
	} else {
		logger.Warn("system tray unsupported on this platform")
	}

	trayManager := tray.New(desktopApp, tray.Callbacks{
		OnShowCard: cardWindow.Show,
		OnEdit:     editorWindow.Show,
		OnToggleSweep: func() {
			enabled := clock.Card().Config().ShowSecondsSweep
			next, err := schema.Apply(editorWindow.Overrides(), "showSecondsSweep", !enabled)
			if err != nil {
				logger.WithError(err).Warn("toggle seconds sweep")
				return
			}
			editorWindow.UpdateOverrides(next)
			bus.Publish(host.Event{Type: host.EventConfigChanged, Config: next})
		},
		OnQuit: func() {
			wallClock.Stop()
			fyneApp.Quit()
		},
	})
	trayManager.SetSweep(config.ShowSecondsSweep)
	if value, ok := wallClock.State(config.Entity); ok {
		trayManager.SetStatus(config.Entity, value)
	}

	events := bus.Subscribe(16)
	go func() {
		for event := range events {
			handleEvent(event, eventTargets{
				log:    logger,
				clock:  clock,
				window: cardWindow,
				tray:   trayManager,
			})
		}
	}()

	wallClock.Start()
	defer wallClock.Stop()

	cardWindow.Show()
	fyneApp.Run()
	return nil
}

type eventTargets struct {
	log    logrus.FieldLogger
	clock  *clockwidget.ClockCard
	window *cardwindow.Window
	tray   *tray.Manager
}

// handleEvent runs on the bus goroutine; UI work is handed to fyne.Do.
func handleEvent(event host.Event, targets eventTargets) {
	switch event.Type {
	case host.EventStateChanged:
		fyne.Do(func() {
			entity := targets.clock.Card().Config().Entity
			if event.EntityID != entity {
				return
			}
			targets.clock.Refresh()
			targets.tray.SetStatus(entity, event.State)
		})
	case host.EventConfigChanged:
		config, err := model.NewConfig(event.Config)
		if err != nil {
			targets.log.WithError(err).Warn("config change rejected")
			return
		}
		fyne.Do(func() {
			previous := targets.clock.Card().Config()
			if err := targets.clock.SetConfig(config); err != nil {
				targets.log.WithError(err).Warn("apply card config")
				return
			}
			if previous.Sizing != config.Sizing || previous.Cols != config.Cols || previous.Rows != config.Rows {
				targets.window.FitConfig()
			}
			targets.tray.SetSweep(config.ShowSecondsSweep)
			targets.tray.SetStatus(config.Entity, targets.clock.Card().Label())
		})
	case host.EventMoreInfo:
		fyne.Do(func() {
			value := targets.clock.Card().Label()
			dialog.ShowInformation(event.EntityID, value, targets.window.Fyne())
		})
	}
}

// loadCard reads the card file. An explicit path that does not exist yields
// the picker stub; a missing default file yields the bundled card.
func loadCard(path string, logger logrus.FieldLogger) (model.Overrides, error) {
	if path != "" {
		return storage.LoadCard(path)
	}

	defaultPath, err := storage.DefaultCardPath(appName)
	if err == nil {
		if _, statErr := os.Stat(defaultPath); statErr == nil {
			return storage.LoadCard(defaultPath)
		} else if !errors.Is(statErr, os.ErrNotExist) {
			return model.Overrides{}, fmt.Errorf("stat card file: %w", statErr)
		}
	}
	logger.WithField("path", defaultPath).Info("no card file, using the bundled card")
	return storage.ParseCard(resources.DefaultCard())
}
