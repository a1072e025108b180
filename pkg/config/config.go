// Package config loads the seppun-kb settings file.
package config

import (
	"errors"
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const DefaultEvdevXML = "/usr/share/X11/xkb/rules/evdev.xml"

// History backends.
const (
	BackendSQLite = "sqlite"
	BackendJSON   = "json"
	BackendMemory = "memory"
	BackendNone   = "none"
)

type Config struct {
	Keymap   string        `toml:"keymap"`
	Display  string        `toml:"display"`
	PidFile  string        `toml:"pid_file"`
	LogFile  string        `toml:"log_file"`
	Watch    bool          `toml:"watch"`
	Debug    bool          `toml:"debug"`
	EvdevXML string        `toml:"evdev_xml"`
	History  HistoryConfig `toml:"history"`
}

type HistoryConfig struct {
	Backend string `toml:"backend"`
	// Path defaults to a file under $XDG_DATA_HOME/seppun named after the backend.
	Path      string `toml:"path"`
	Retention int    `toml:"retention"` // launches to keep; 0 = unlimited
}

// DefaultPath is $XDG_CONFIG_HOME/seppun/config.toml.
func DefaultPath() (string, error) {
	return xdg.ConfigFile("seppun/config.toml")
}

func Defaults() (Config, error) {
	keymap, err := xdg.ConfigFile("seppun/kb")
	if err != nil {
		return Config{}, fmt.Errorf("config: keymap path: %w", err)
	}
	pidFile, err := xdg.RuntimeFile("seppun-kb.pid")
	if err != nil {
		return Config{}, fmt.Errorf("config: pid file path: %w", err)
	}
	logFile, err := xdg.StateFile("seppun/seppun-kb.log")
	if err != nil {
		return Config{}, fmt.Errorf("config: log file path: %w", err)
	}

	return Config{
		Keymap:   keymap,
		PidFile:  pidFile,
		LogFile:  logFile,
		Watch:    true,
		EvdevXML: DefaultEvdevXML,
		History: HistoryConfig{
			Backend:   BackendSQLite,
			Retention: 1000,
		},
	}, nil
}

// Load reads the settings file at path, or DefaultPath when path is empty.
// A missing default file yields the defaults; a missing explicit file is an
// error. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		found, err := DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("config: default path: %w", err)
		}
		path = found
	}

	cfg, err := Defaults()
	if err != nil {
		return nil, err
	}

	meta, err := toml.DecodeFile(path, &cfg)
	switch {
	case err != nil && !explicit && errors.Is(err, fs.ErrNotExist):
		// no settings file, run on defaults
	case err != nil:
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	default:
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("config: unknown keys in %s: %s", path, strings.Join(keys, ", "))
		}
	}

	err = cfg.resolve()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) resolve() error {
	c.Keymap = expandHome(c.Keymap)
	c.PidFile = expandHome(c.PidFile)
	c.LogFile = expandHome(c.LogFile)
	c.History.Path = expandHome(c.History.Path)

	if c.History.Path != "" {
		return nil
	}

	var err error
	switch c.History.Backend {
	case BackendSQLite:
		c.History.Path, err = xdg.DataFile("seppun/history.db")
	case BackendJSON:
		c.History.Path, err = xdg.DataFile("seppun/history.json")
	}
	if err != nil {
		return fmt.Errorf("config: history path: %w", err)
	}

	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// Validate returns every problem found, joined together.
func (c *Config) Validate() error {
	var errs []error

	if c.Keymap == "" {
		errs = append(errs, fmt.Errorf("keymap must not be empty"))
	}
	if c.PidFile == "" {
		errs = append(errs, fmt.Errorf("pid_file must not be empty"))
	}

	switch c.History.Backend {
	case BackendSQLite, BackendJSON:
		if c.History.Path == "" {
			errs = append(errs, fmt.Errorf("history.path must be set for the %s backend", c.History.Backend))
		}
	case BackendMemory, BackendNone:
	default:
		errs = append(errs, fmt.Errorf("history.backend must be one of %s, %s, %s, %s",
			BackendSQLite, BackendJSON, BackendMemory, BackendNone))
	}
	if c.History.Retention < 0 {
		errs = append(errs, fmt.Errorf("history.retention must be >= 0 (0 = unlimited)"))
	}

	return errors.Join(errs...)
}
