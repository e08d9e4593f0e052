package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cs := NewConfigServiceAt(path)

	cfg := DefaultConfig()
	cfg.Search.DebounceMS = 150
	cfg.Share.SiteTitle = "Shop"
	cfg.UISettings.ShowRatings = false
	require.NoError(t, cs.Save(cfg))

	loaded, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Equal(t, path, cs.Path())
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[search]\ndebounce_ms = 500\n"), 0644))

	cfg, err := NewConfigServiceAt(path).Load()
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, cfg.Search.Debounce())
	assert.Equal(t, 2, cfg.Search.MinQueryLength)
	assert.Equal(t, 8, cfg.Search.MaxSuggestions)
	assert.Equal(t, time.Second, cfg.Cart.Busy())
	assert.Equal(t, 5*time.Second, cfg.Notifications.Timeout())
	assert.True(t, cfg.UISettings.ShowRatings)
	assert.Equal(t, "https://holoholo.example", cfg.Share.BaseURL)
}

func TestMissingFileYieldsDefaults(t *testing.T) {
	cs := NewConfigServiceAt(filepath.Join(t.TempDir(), "absent.toml"))

	_, err := cs.LoadFromPath(cs.Path())
	assert.True(t, errors.Is(err, os.ErrNotExist))

	cfg, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[search]\ndebounce_ms = 500\n"), 0644))

	t.Setenv("HOLOHOLO_DEBOUNCE_MS", "120")
	t.Setenv("HOLOHOLO_LOG_LEVEL", "debug")
	t.Setenv("HOLOHOLO_SHOW_RATINGS", "false")

	cfg, err := NewConfigServiceAt(path).Load()
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Search.DebounceMS)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.UISettings.ShowRatings)
}

func TestInvalidEnvironmentValue(t *testing.T) {
	t.Setenv("HOLOHOLO_DEBOUNCE_MS", "soon")

	_, err := NewConfigServiceAt(filepath.Join(t.TempDir(), "absent.toml")).Load()
	require.Error(t, err)
}

func TestInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[search\ndebounce_ms = "), 0644))

	_, err := NewConfigServiceAt(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestOutOfRangeValuesFallBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[search]
debounce_ms = -5
max_suggestions = 0

[notifications]
timeout_ms = 0
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigServiceAt(path).Load()
	require.NoError(t, err)
	assert.Equal(t, 300, cfg.Search.DebounceMS)
	assert.Equal(t, 8, cfg.Search.MaxSuggestions)
	assert.Equal(t, 5000, cfg.Notifications.TimeoutMS)
}
