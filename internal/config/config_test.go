package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), config)
}

func TestLoadPartialFile(t *testing.T) {
	path := writeFile(t, `
theme  = "Ocean Neon"
volume = 150
sound  = false

keys {
  rotate = ["w"]
}
`)

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Ocean Neon", config.Theme)
	assert.False(t, config.Sound)
	assert.True(t, config.Ghost)
	assert.Equal(t, 100, config.Volume)
	require.NotNil(t, config.Keys)
	assert.Equal(t, []string{"w"}, config.Keys.Rotate)
	assert.Equal(t, DefaultKeys().Left, config.Keys.Left)
}

func TestLoadMalformedFile(t *testing.T) {
	tests := map[string]string{
		"syntax":       `theme = `,
		"wrong type":   `volume = "loud"`,
		"unknown attr": `colour = "red"`,
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			config, err := Load(writeFile(t, body))
			require.Error(t, err)
			assert.Equal(t, Default(), config)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.hcl")
	want := Default()
	want.Theme = "Mono Matrix"
	want.Music = true
	want.MusicFile = "/tmp/theme.mp3"
	want.Volume = 35
	want.Keys.Pause = []string{"space", "p"}

	require.NoError(t, Save(path, want))
	got, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestKeyBindings(t *testing.T) {
	keys := DefaultKeys()
	assert.Equal(t, ActionLeft, keys.Lookup("h"))
	assert.Equal(t, ActionRotate, keys.Lookup("up"))
	assert.Equal(t, ActionQuit, keys.Lookup("esc"))
	assert.Equal(t, ActionNone, keys.Lookup("f12"))

	keys.Quit = append(keys.Quit, "h")
	assert.Equal(t, ActionLeft, keys.Lookup("h"))
}
