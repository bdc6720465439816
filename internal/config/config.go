package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var (
	// ErrNoURL is returned when neither the API URL nor its emulator override is set.
	ErrNoURL = errors.New("api url is not defined")
	// ErrInvalidURL is returned when the chosen URL is not an absolute http(s) URL.
	ErrInvalidURL = errors.New("api url must be an absolute http(s) url")
)

// Config is built once at startup and handed to the components that need it.
type Config struct {
	Env         string    `mapstructure:"env"`          // Env is the current environment: local, development, production.
	API         APIConfig `mapstructure:"api"`          // API holds the employee endpoint settings.
	UI          UIConfig  `mapstructure:"ui"`           // UI holds the screen settings.
	Log         LogConfig `mapstructure:"log"`          // Log holds the logger settings.
	MetricsAddr string    `mapstructure:"metrics_addr"` // MetricsAddr serves /metrics when non-empty.
}

// APIConfig describes where the employee list is read from.
type APIConfig struct {
	URL         string        `mapstructure:"url"`          // URL is the default employee endpoint.
	EmulatorURL string        `mapstructure:"emulator_url"` // EmulatorURL overrides URL when set.
	Timeout     time.Duration `mapstructure:"timeout"`      // Timeout bounds one request; 0 means none.
}

// UIConfig tunes the look of the screen.
type UIConfig struct {
	Theme  string `mapstructure:"theme"`
	User   string `mapstructure:"user"`   // User is shown as an initials badge in the header.
	Unread int    `mapstructure:"unread"` // Unread is the notification count badge; 0 hides it.
}

// LogConfig says where and how loudly to log.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// ResolveURL picks the emulator override over the default URL.
func (c APIConfig) ResolveURL() (string, error) {
	raw := strings.TrimSpace(c.EmulatorURL)
	if raw == "" {
		raw = strings.TrimSpace(c.URL)
	}
	if raw == "" {
		return "", ErrNoURL
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%q: %w", raw, ErrInvalidURL)
	}
	return u.String(), nil
}

// Load reads configuration from defaults, an optional file at path, and
// STAFF_* environment variables, in increasing order of precedence.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("env", "local")
	v.SetDefault("api.url", "")
	v.SetDefault("api.emulator_url", "")
	v.SetDefault("api.timeout", time.Duration(0))
	v.SetDefault("ui.theme", "classic")
	v.SetDefault("ui.user", "")
	v.SetDefault("ui.unread", 0)
	v.SetDefault("log.file", "staff.log")
	v.SetDefault("log.level", "info")
	v.SetDefault("metrics_addr", "")

	v.SetEnvPrefix("STAFF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("api.emulator_url", "STAFF_API_URL_EMU", "STAFF_API_EMULATOR_URL"); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &Config{
		Env: v.GetString("env"),
		API: APIConfig{
			URL:         v.GetString("api.url"),
			EmulatorURL: v.GetString("api.emulator_url"),
			Timeout:     v.GetDuration("api.timeout"),
		},
		UI: UIConfig{
			Theme:  v.GetString("ui.theme"),
			User:   v.GetString("ui.user"),
			Unread: v.GetInt("ui.unread"),
		},
		Log: LogConfig{
			File:  v.GetString("log.file"),
			Level: v.GetString("log.level"),
		},
		MetricsAddr: v.GetString("metrics_addr"),
	}, nil
}
