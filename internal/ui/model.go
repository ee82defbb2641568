package ui

import (
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stigoleg/countdown/internal/countdown"
	"github.com/stigoleg/countdown/internal/notify"
	"github.com/stigoleg/countdown/internal/sound"
	"github.com/stigoleg/countdown/internal/util"
)

// Options are the dependencies and settings of the timer screen.
type Options struct {
	MaxMinutes int
	// Minutes is the initial selection. A non-zero value starts counting
	// down immediately.
	Minutes  int
	Volume   float64
	Sounds   sound.Sounds
	Notifier notify.Notifier
	Version  string
	// Zones enables mouse hit testing for the slider. Nil disables the mouse.
	Zones *zone.Manager
}

// Model is the timer screen: a slider, the minutes and seconds labels, at
// most one countdown session and the sound pool.
type Model struct {
	Slider   Slider
	Minutes  string
	Seconds  string
	ShowHelp bool

	session  *countdown.Session
	sounds   sound.Sounds
	volume   float64
	notifier notify.Notifier
	zones    *zone.Manager
	keys     KeyMap
	help     help.Model
	version  string
	width    int
	initCmd  tea.Cmd
}

// New returns the timer screen.
func New(opts Options) Model {
	if opts.Sounds.Pool == nil {
		opts.Sounds.Pool = &sound.Nop{}
	}
	if opts.Notifier == nil {
		opts.Notifier = notify.Nop{}
	}

	m := Model{
		Slider:   NewSlider(opts.MaxMinutes),
		sounds:   opts.Sounds,
		volume:   opts.Volume,
		notifier: opts.Notifier,
		zones:    opts.Zones,
		keys:     DefaultKeys(),
		help:     NewHelpModel(),
		version:  opts.Version,
	}
	m = m.updateRemainTimes(0)

	if opts.Minutes > 0 {
		var cmd tea.Cmd
		m.Slider = m.Slider.SetValue(opts.Minutes)
		m, cmd = m.startCountDown()
		m.initCmd = cmd
	}
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.initCmd
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := Update(msg, m)
	return newModel, cmd
}

// View implements tea.Model
func (m Model) View() string {
	if m.zones == nil {
		return View(m)
	}
	return m.zones.Scan(View(m))
}

// State reports whether a countdown session is active.
func (m Model) State() State {
	if m.session != nil {
		return StateRunning
	}
	return StateIdle
}

// TimeRemaining returns the remaining time of the active session, or zero.
func (m Model) TimeRemaining() time.Duration {
	if m.session == nil {
		return 0
	}
	return m.session.Remaining()
}

// Release frees the sound pool. Call it once the program has exited.
func (m Model) Release() error {
	m.sounds.Pool.StopAll()
	return m.sounds.Pool.Release()
}

func (m Model) startCountDown() (Model, tea.Cmd) {
	s, cmd := countdown.Start(util.MinutesToDuration(m.Slider.Value))
	m.session = &s
	m = m.updateRemainTimes(s.Remaining())

	if m.sounds.Tick.Valid() {
		m.sounds.Pool.Play(m.sounds.Tick, sound.Forever(m.volume))
	}
	log.Printf("ui: countdown started (%s)", s.Total())
	return m, cmd
}

func (m Model) stopCountDown() Model {
	if m.session != nil {
		log.Printf("ui: countdown cancelled with %s left", m.session.Remaining())
	}
	m.session = nil
	m.sounds.Pool.StopAll()
	return m
}

func (m Model) completeCountDown() (Model, tea.Cmd) {
	m.session = nil
	m = m.updateRemainTimes(0)
	m = m.updateSlider(0)

	m.sounds.Pool.StopAll()
	if m.sounds.Bell.Valid() {
		m.sounds.Pool.Play(m.sounds.Bell, sound.Once(m.volume))
	}
	log.Printf("ui: countdown complete")

	n := m.notifier
	return m, func() tea.Msg {
		if err := n.Notify("Countdown", "Time is up"); err != nil {
			log.Printf("ui: completion notice failed: %v", err)
		}
		return nil
	}
}

func (m Model) updateRemainTimes(remaining time.Duration) Model {
	m.Minutes, m.Seconds = util.RemainingLabels(remaining)
	return m
}

func (m Model) updateSlider(remaining time.Duration) Model {
	m.Slider = m.Slider.SetValue(util.WholeMinutes(remaining))
	return m
}
