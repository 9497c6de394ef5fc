/*
Package config manages the TOML configuration for mailfill.

A config file looks like:

	domains = ["gmail.com", "proton.me"]

	[keys]
	up = ["up", "ctrl+p"]
	down = ["down", "ctrl+n"]

	[ui]
	max_width = 40

	[log]
	level = "warn"

	[css.overlay]
	border = "rounded"

	[css.text.suggestion]
	color = "252"

A domains entry replaces the built-in list; leaving it out or empty keeps the
defaults.
*/
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/mailfill/autocomplete"
)

// Config holds the entire config structure.
type Config struct {
	Domains []string       `toml:"domains"`
	Keys    KeysConfig     `toml:"keys"`
	UI      UIConfig       `toml:"ui"`
	Log     LogConfig      `toml:"log"`
	CSS     map[string]any `toml:"css,omitempty"`
}

// KeysConfig lists the key names bound to each action.
type KeysConfig struct {
	Up       []string `toml:"up"`
	Down     []string `toml:"down"`
	Accept   []string `toml:"accept"`
	Dismiss  []string `toml:"dismiss"`
	Reserved []string `toml:"reserved,omitempty"`
}

// UIConfig holds rendering options.
type UIConfig struct {
	MaxWidth int `toml:"max_width"`
}

// LogConfig holds logging options.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Keys: KeysConfig{
			Up:      []string{"up"},
			Down:    []string{"down"},
			Accept:  []string{"enter"},
			Dismiss: []string{"esc"},
		},
		UI:  UIConfig{MaxWidth: 60},
		Log: LogConfig{Level: "warn"},
	}
}

// Load reads the config at path on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}

// InitConfig loads the config at path, writing the defaults there first when
// the file does not exist yet.
func InitConfig(path string) (*Config, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return Load(path)
	case errors.Is(err, fs.ErrNotExist):
		cfg := DefaultConfig()
		if err := Save(cfg, path); err != nil {
			return nil, err
		}
		return cfg, nil
	default:
		return nil, fmt.Errorf("stat config %s: %w", path, err)
	}
}

// Save writes cfg to path as TOML, creating parent directories as needed.
func Save(cfg *Config, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode config %s: %w", path, err)
	}
	return nil
}

// KeyMap converts the key lists into bindings. Empty lists fall back to the
// default binding for that action.
func (c *Config) KeyMap() autocomplete.KeyMap {
	km := autocomplete.DefaultKeyMap()
	km.Up = rebind(km.Up, c.Keys.Up)
	km.Down = rebind(km.Down, c.Keys.Down)
	km.Accept = rebind(km.Accept, c.Keys.Accept)
	km.Dismiss = rebind(km.Dismiss, c.Keys.Dismiss)
	if len(c.Keys.Reserved) > 0 {
		km.Reserved = key.NewBinding(key.WithKeys(c.Keys.Reserved...))
	}
	return km
}

// Widget returns the autocomplete settings described by the file. Callbacks,
// styles and the logger are left for the host to fill in.
func (c *Config) Widget() autocomplete.Config {
	return autocomplete.Config{
		Domains:  append([]string(nil), c.Domains...),
		CSS:      autocomplete.CSS(c.CSS),
		KeyMap:   c.KeyMap(),
		MaxWidth: c.UI.MaxWidth,
	}
}

func rebind(b key.Binding, keys []string) key.Binding {
	if len(keys) == 0 {
		return b
	}
	b.SetKeys(keys...)
	return b
}
