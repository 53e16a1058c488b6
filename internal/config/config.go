// Package config loads and saves the player's settings file.
//
// Settings are stored as HCL:
//
//	theme  = "Classic"
//	sound  = true
//	music  = false
//	volume = 70
//	ghost  = true
//
//	keys {
//	  left   = ["left", "h"]
//	  rotate = ["up", "k", "x"]
//	}
//
// Every attribute is optional and falls back to its default.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
)

const (
	appDir   = "tetris"
	fileName = "config.hcl"

	DefaultTheme  = "Classic"
	DefaultVolume = 70
)

type Config struct {
	Theme     string  `hcl:"theme,optional"`
	Sound     bool    `hcl:"sound,optional"`
	Music     bool    `hcl:"music,optional"`
	MusicFile string  `hcl:"music_file,optional"`
	Volume    int     `hcl:"volume,optional"`
	Ghost     bool    `hcl:"ghost,optional"`
	Keys      *KeyMap `hcl:"keys,block"`
}

func Default() Config {
	return Config{
		Theme:  DefaultTheme,
		Sound:  true,
		Music:  false,
		Volume: DefaultVolume,
		Ghost:  true,
		Keys:   DefaultKeys(),
	}
}

// DefaultPath returns the settings file location under the user's config
// directory, creating the directory if needed.
func DefaultPath() (string, error) {
	root, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(root, appDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// Load reads the settings at path. A missing file yields the defaults and
// no error. On a malformed file Load still returns usable defaults
// alongside the error.
func Load(path string) (Config, error) {
	config := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("read config %s: %w", path, err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return Default(), fmt.Errorf("parse config %s: %w", path, diags)
	}
	if diags := gohcl.DecodeBody(file.Body, nil, &config); diags.HasErrors() {
		return Default(), fmt.Errorf("decode config %s: %w", path, diags)
	}
	config.normalize()
	return config, nil
}

// Save writes config to path, replacing any existing file.
func Save(path string, config Config) error {
	config.normalize()
	file := hclwrite.NewEmptyFile()
	gohcl.EncodeIntoBody(&config, file.Body())
	if err := os.WriteFile(path, file.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func (c *Config) normalize() {
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	c.Volume = ClampVolume(c.Volume)
	if c.Keys == nil {
		c.Keys = DefaultKeys()
	}
	c.Keys.fill(DefaultKeys())
}

// ClampVolume limits a volume percentage to 0-100.
func ClampVolume(value int) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}
