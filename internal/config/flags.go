package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"
	"github.com/stigoleg/countdown/internal/ui"
	"github.com/stigoleg/countdown/internal/util"
)

const (
	AppName           = "countdown"
	DefaultMaxMinutes = 60
	MaxSliderMinutes  = 999
	DefaultVolume     = 1.0
	DefaultLogFile    = "countdown-debug.log"

	envPrefix = "COUNTDOWN"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	Minutes     int
	MaxMinutes  int
	Volume      float64
	Mute        bool
	Notify      bool
	TickSound   string
	BellSound   string
	Debug       bool
	LogFile     string
	ConfigFile  string
	ShowVersion bool
}

// Flag describes a command-line flag. Key is the config file / environment
// key the flag overrides; flags without a key are command-line only.
type Flag struct {
	Short string
	Long  string
	Key   string
	Arg   string
	Desc  string
}

// Flags returns the command-line flags in help order.
func Flags() []Flag {
	return []Flag{
		{Short: "-m", Long: "--minutes", Key: "minutes", Arg: "<string>", Desc: "Start counting down right away (e.g., \"25\" or \"1h30m\")"},
		{Long: "--max", Key: "max_minutes", Arg: "<int>", Desc: "Slider maximum in minutes"},
		{Long: "--volume", Key: "volume", Arg: "<float>", Desc: "Playback volume from 0 to 1"},
		{Long: "--mute", Key: "mute", Desc: "Disable all sounds"},
		{Long: "--notify", Key: "notify", Desc: "Send a desktop notification when time is up"},
		{Long: "--tick-sound", Key: "tick_sound", Arg: "<file>", Desc: "WAV file looped while counting down"},
		{Long: "--bell-sound", Key: "bell_sound", Arg: "<file>", Desc: "WAV file played when time is up"},
		{Long: "--config", Arg: "<file>", Desc: "Config file (default $XDG_CONFIG_HOME/countdown/config.yaml)"},
		{Long: "--debug", Key: "debug", Desc: "Write a debug log"},
		{Long: "--log-file", Key: "log_file", Arg: "<file>", Desc: "Debug log path"},
		{Short: "-v", Long: "--version", Desc: "Show version information"},
		{Short: "-h", Long: "--help", Desc: "Show help message"},
	}
}

// Usage renders the help text.
func Usage() string {
	var b strings.Builder
	b.WriteString("Countdown Help\n\nUsage:\n  " + AppName + " [flags]\n\nFlags:\n")
	for _, f := range Flags() {
		names := "    "
		if f.Short != "" {
			names = f.Short + ", "
		}
		names += f.Long
		if f.Arg != "" {
			names += " " + f.Arg
		}
		fmt.Fprintf(&b, "  %-28s %s\n", names, f.Desc)
	}
	b.WriteString("\nEnvironment:\n  " + envPrefix + "_<KEY>, e.g. " + envPrefix + "_MAX_MINUTES=90\n")
	b.WriteString("\nExamples:\n")
	b.WriteString("  " + AppName + "               # Pick a duration with the slider\n")
	b.WriteString("  " + AppName + " -m 25         # Count down 25 minutes\n")
	b.WriteString("  " + AppName + " -m 1h --mute  # Count down one hour silently\n")
	return ui.Current.Help.Render(b.String()) + "\n"
}

func formatError(err error) string {
	msg := err.Error()
	parts := strings.SplitN(msg, "\n\n", 2)
	if len(parts) == 2 {
		errorBox := ui.Current.Help.Copy().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF4040"))

		header := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF4040")).
			Render(parts[0])

		details := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999")).
			Render(parts[1])

		return errorBox.Render(fmt.Sprintf("%s\n\n%s", header, details))
	}
	return ui.Current.Error.Render(msg)
}

// ParseFlags parses os.Args, printing help, version or errors and exiting
// where the command line asks for it.
func ParseFlags(version string) *Config {
	cfg, err := ParseArgs(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		fmt.Print(Usage())
		os.Exit(0)
	}
	if err != nil {
		fmt.Println(formatError(err))
		os.Exit(1)
	}
	if cfg.ShowVersion {
		fmt.Printf("Countdown Version: %s\n", version)
		os.Exit(0)
	}
	return cfg
}

// ParseArgs builds a Config from defaults, the config file, COUNTDOWN_*
// environment variables and args, later sources taking precedence.
func ParseArgs(args []string) (*Config, error) {
	flags := flag.NewFlagSet(AppName, flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	minutes := flags.String("minutes", "", "")
	flags.StringVar(minutes, "m", "", "")
	flags.Int("max", DefaultMaxMinutes, "")
	flags.Float64("volume", DefaultVolume, "")
	flags.Bool("mute", false, "")
	flags.Bool("notify", false, "")
	flags.String("tick-sound", "", "")
	flags.String("bell-sound", "", "")
	configFile := flags.String("config", "", "")
	flags.Bool("debug", false, "")
	flags.String("log-file", DefaultLogFile, "")
	showVersion := flags.Bool("version", false, "")
	flags.BoolVar(showVersion, "v", false, "")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if flags.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrInvalidConfig, flags.Arg(0))
	}

	v := newViper()
	if err := readConfigFile(v, *configFile); err != nil {
		return nil, err
	}

	keys := flagKeys()
	flags.Visit(func(f *flag.Flag) {
		if key, ok := keys[f.Name]; ok {
			v.Set(key, f.Value.String())
		}
	})

	cfg := &Config{
		MaxMinutes:  v.GetInt("max_minutes"),
		Volume:      v.GetFloat64("volume"),
		Mute:        v.GetBool("mute"),
		Notify:      v.GetBool("notify"),
		TickSound:   v.GetString("tick_sound"),
		BellSound:   v.GetString("bell_sound"),
		Debug:       v.GetBool("debug"),
		LogFile:     v.GetString("log_file"),
		ConfigFile:  v.ConfigFileUsed(),
		ShowVersion: *showVersion,
	}

	if raw := v.GetString("minutes"); raw != "" {
		m, err := util.ParseMinutes(raw)
		if err != nil {
			return nil, err
		}
		cfg.Minutes = m
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges that the slider and sound pool depend on.
func (c *Config) Validate() error {
	if c.MaxMinutes < 1 || c.MaxMinutes > MaxSliderMinutes {
		return fmt.Errorf("%w: max must be between 1 and %d, got %d", ErrInvalidConfig, MaxSliderMinutes, c.MaxMinutes)
	}
	if c.Minutes < 0 || c.Minutes > c.MaxMinutes {
		return fmt.Errorf("%w: minutes must be between 0 and %d, got %d", ErrInvalidConfig, c.MaxMinutes, c.Minutes)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("%w: volume must be between 0 and 1, got %g", ErrInvalidConfig, c.Volume)
	}
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("minutes", "")
	v.SetDefault("max_minutes", DefaultMaxMinutes)
	v.SetDefault("volume", DefaultVolume)
	v.SetDefault("mute", false)
	v.SetDefault("notify", false)
	v.SetDefault("tick_sound", "")
	v.SetDefault("bell_sound", "")
	v.SetDefault("debug", false)
	v.SetDefault("log_file", DefaultLogFile)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	return v
}

func readConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		path = os.Getenv(envPrefix + "_CONFIG")
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return nil
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(dir, AppName))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// flagKeys maps flag names, short and long, to config keys.
func flagKeys() map[string]string {
	keys := make(map[string]string)
	for _, f := range Flags() {
		if f.Key == "" {
			continue
		}
		keys[strings.TrimPrefix(f.Long, "--")] = f.Key
		if f.Short != "" {
			keys[strings.TrimPrefix(f.Short, "-")] = f.Key
		}
	}
	return keys
}
