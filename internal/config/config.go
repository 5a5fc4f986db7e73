package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Transport names.
const (
	TransportExec   = "exec"
	TransportNative = "native"
)

// Config holds all musicctl configuration
type Config struct {
	ProcRoot string `mapstructure:"proc_root"`
	MPD      struct {
		Transport string `mapstructure:"transport"`
		Client    string `mapstructure:"client"`
		Network   string `mapstructure:"network"`
		Address   string `mapstructure:"address"`
		Password  string `mapstructure:"password"`
	} `mapstructure:"mpd"`
	Pianobar struct {
		Control string `mapstructure:"control"`
		OutFile string `mapstructure:"out_file"`
	} `mapstructure:"pianobar"`
	Playerctl struct {
		Transport string `mapstructure:"transport"`
		Client    string `mapstructure:"client"`
	} `mapstructure:"playerctl"`
	Probe struct {
		Interval   time.Duration `mapstructure:"interval"`
		RetryDelay time.Duration `mapstructure:"retry_delay"`
		Retries    int           `mapstructure:"retries"`
		KillGrace  time.Duration `mapstructure:"kill_grace"`
	} `mapstructure:"probe"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("proc_root", "/proc")
	v.SetDefault("mpd.transport", TransportExec)
	v.SetDefault("mpd.client", "mpc")
	v.SetDefault("mpd.network", "tcp")
	v.SetDefault("mpd.address", "localhost:6600")
	v.SetDefault("mpd.password", "")
	v.SetDefault("pianobar.control", "pianoctl")
	v.SetDefault("pianobar.out_file", "~/.config/pianobar/out")
	v.SetDefault("playerctl.transport", TransportExec)
	v.SetDefault("playerctl.client", "playerctl")
	v.SetDefault("probe.interval", 2*time.Second)
	v.SetDefault("probe.retry_delay", time.Second)
	v.SetDefault("probe.retries", 3)
	v.SetDefault("probe.kill_grace", time.Second)
}

// Default returns the built-in configuration without reading files or the
// environment.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	cfg.Pianobar.OutFile = expandHome(cfg.Pianobar.OutFile)
	return cfg
}

// Load reads the configuration. An explicit path must exist; otherwise
// config.yaml is looked up under $XDG_CONFIG_HOME/musicctl (falling back to
// ~/.config/musicctl) and a missing file is not an error. MUSICCTL_*
// environment variables override both.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(expandHome(path))
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir := configDir(); dir != "" {
			v.AddConfigPath(filepath.Join(dir, "musicctl"))
		}
	}

	v.SetEnvPrefix("MUSICCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	cfg.Pianobar.OutFile = expandHome(cfg.Pianobar.OutFile)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks if the config is valid
func (c *Config) Validate() error {
	if c.ProcRoot == "" {
		return errors.New("proc_root must not be empty")
	}
	if err := validTransport("mpd", c.MPD.Transport); err != nil {
		return err
	}
	if err := validTransport("playerctl", c.Playerctl.Transport); err != nil {
		return err
	}
	if c.MPD.Transport == TransportNative && c.MPD.Address == "" {
		return errors.New("mpd.address is required for the native transport")
	}
	if c.Pianobar.OutFile == "" {
		return errors.New("pianobar.out_file must not be empty")
	}
	if c.Probe.Retries < 0 {
		return fmt.Errorf("probe.retries must be >= 0, got %d", c.Probe.Retries)
	}
	if c.Probe.Interval <= 0 {
		return fmt.Errorf("probe.interval must be positive, got %s", c.Probe.Interval)
	}
	if c.Probe.RetryDelay <= 0 {
		return fmt.Errorf("probe.retry_delay must be positive, got %s", c.Probe.RetryDelay)
	}
	if c.Probe.KillGrace < 0 {
		return fmt.Errorf("probe.kill_grace must be >= 0, got %s", c.Probe.KillGrace)
	}
	return nil
}

func validTransport(section, t string) error {
	switch t {
	case TransportExec, TransportNative:
		return nil
	default:
		return fmt.Errorf("%s.transport: unknown transport %q (want %q or %q)", section, t, TransportExec, TransportNative)
	}
}

// configDir follows the XDG standard: $XDG_CONFIG_HOME, falling back to ~/.config.
func configDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config")
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
