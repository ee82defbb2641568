package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/stigoleg/countdown/internal/config"
	"github.com/stigoleg/countdown/internal/lifecycle"
	"github.com/stigoleg/countdown/internal/notify"
	"github.com/stigoleg/countdown/internal/sound"
	"github.com/stigoleg/countdown/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

const appVersion = "1.0.0"

func main() {
	cfg := config.ParseFlags(appVersion)
	cleanup := lifecycle.NewManager(lifecycle.DefaultTimeout)

	var logFile *os.File
	if cfg.Debug {
		f, err := tea.LogToFile(cfg.LogFile, "debug")
		if err != nil {
			log.Fatal(err)
		}
		logFile = f
	} else {
		log.SetOutput(io.Discard)
	}
	if cfg.ConfigFile != "" {
		log.Printf("config: loaded %s", cfg.ConfigFile)
	}

	sounds := sound.Setup(sound.Options{
		Mute:     cfg.Mute,
		TickFile: cfg.TickSound,
		BellFile: cfg.BellSound,
	})

	var notifier notify.Notifier = notify.Nop{}
	if cfg.Notify {
		notifier = notify.NewDesktop()
	}

	zones := zone.New()

	model := ui.New(ui.Options{
		MaxMinutes: cfg.MaxMinutes,
		Minutes:    cfg.Minutes,
		Volume:     cfg.Volume,
		Sounds:     sounds,
		Notifier:   notifier,
		Version:    appVersion,
		Zones:      zones,
	})
	cleanup.Register(soundResource{model})
	cleanup.RegisterFunc("mouse zones", func() error {
		zones.Close()
		return nil
	})
	if logFile != nil {
		cleanup.RegisterFunc("log file", logFile.Close)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, getSignalsForPlatform()...)
	defer signal.Stop(sigChan)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
		tea.WithoutSignalHandler(),
	)

	go func() {
		sig := <-sigChan
		log.Printf("Received signal: %v", sig)
		p.Quit()
	}()

	_, runErr := p.Run()
	if runErr != nil {
		log.Printf("Error running program: %v", runErr)
	}

	for _, err := range cleanup.Execute() {
		fmt.Fprintf(os.Stderr, "cleanup: %v\n", err)
	}
	if runErr != nil {
		os.Exit(1)
	}
}

// soundResource releases the screen's sound pool at teardown.
type soundResource struct {
	model ui.Model
}

func (r soundResource) Name() string { return "sound pool" }
func (r soundResource) Cleanup() error { return r.model.Release() }
