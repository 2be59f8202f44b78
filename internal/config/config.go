// Package config loads texlog.toml, discovered upward from the working
// directory. The file is optional; flags override anything set here.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the decoded texlog.toml.
type Config struct {
	Output OutputConfig    `toml:"output"`
	Rules  map[string]bool `toml:"rules"`
}

// OutputConfig holds presentation defaults.
type OutputConfig struct {
	Format string `toml:"format"` // pretty|short|json
	Color  string `toml:"color"`  // auto|on|off
	// WrapColumn is the column the TeX engine wrapped the log at
	// (max_print_line); 0 keeps the default of 79.
	WrapColumn int `toml:"wrap_column"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Output: OutputConfig{Format: "pretty", Color: "auto"},
		Rules:  map[string]bool{},
	}
}

// Find walks from startDir to the filesystem root looking for texlog.toml.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "texlog.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load decodes the file at path over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.validate(path); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Discover finds and loads texlog.toml, falling back to defaults when no
// file exists anywhere above startDir.
func Discover(startDir string) (Config, string, error) {
	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, "", err
	}
	if !ok {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, "", err
	}
	return cfg, path, nil
}

func (c Config) validate(path string) error {
	switch c.Output.Format {
	case "", "pretty", "short", "json":
	default:
		return fmt.Errorf("%s: invalid [output].format %q", path, c.Output.Format)
	}
	switch c.Output.Color {
	case "", "auto", "on", "off":
	default:
		return fmt.Errorf("%s: invalid [output].color %q", path, c.Output.Color)
	}
	if c.Output.WrapColumn < 0 {
		return fmt.Errorf("%s: [output].wrap_column must not be negative", path)
	}
	return nil
}
