package adapter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/marquee/internal/tmdb"
)

// clearEnv blanks every variable that could leak in from the host
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"TMDB_API_KEY",
		"MARQUEE_TMDB_API_KEY",
		"MARQUEE_TMDB_LANGUAGE",
		"MARQUEE_UI_SLIDE_INTERVAL",
		"MARQUEE_UI_DEFAULT_CATEGORY",
		"MARQUEE_LOGGING_LEVEL",
	} {
		t.Setenv(name, "")
	}
}

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0600))
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := loadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, cfg.TMDB.APIKey)
	assert.False(t, cfg.IsConfigured())
	assert.Equal(t, tmdb.DefaultBaseURL, cfg.TMDB.BaseURL)
	assert.Equal(t, "es-ES", cfg.TMDB.Language)
	assert.Equal(t, 30*time.Second, cfg.TMDB.Timeout)
	assert.Equal(t, 5*time.Second, cfg.UI.SlideInterval)
	assert.Equal(t, "popular", cfg.UI.DefaultCategory)
	assert.True(t, cfg.UI.ShowUpcoming)
	assert.Equal(t, "INFO", cfg.Logging.Level)
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, `
tmdb:
  api_key: "  file-key  "
  language: en-US
ui:
  slide_interval: 3s
  default_category: top_rated
  show_upcoming: false
`)

	cfg, err := loadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.TMDB.APIKey, "key is trimmed")
	assert.Equal(t, "en-US", cfg.TMDB.Language)
	assert.Equal(t, 3*time.Second, cfg.UI.SlideInterval)
	assert.Equal(t, "top_rated", cfg.UI.DefaultCategory)
	assert.False(t, cfg.UI.ShowUpcoming)
	// untouched keys keep defaults
	assert.Equal(t, tmdb.DefaultBaseURL, cfg.TMDB.BaseURL)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, "tmdb:\n  api_key: file-key\n")

	t.Run("plain TMDB_API_KEY", func(t *testing.T) {
		t.Setenv("TMDB_API_KEY", "env-key")
		cfg, err := loadConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, "env-key", cfg.TMDB.APIKey)
	})

	t.Run("prefixed wins", func(t *testing.T) {
		t.Setenv("TMDB_API_KEY", "env-key")
		t.Setenv("MARQUEE_TMDB_API_KEY", "prefixed-key")
		cfg, err := loadConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, "prefixed-key", cfg.TMDB.APIKey)
	})

	t.Run("nested keys", func(t *testing.T) {
		t.Setenv("MARQUEE_UI_SLIDE_INTERVAL", "2s")
		t.Setenv("MARQUEE_TMDB_LANGUAGE", "fr-FR")
		cfg, err := loadConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, 2*time.Second, cfg.UI.SlideInterval)
		assert.Equal(t, "fr-FR", cfg.TMDB.Language)
	})
}

func TestLoadConfigInvalidCategoryFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("MARQUEE_UI_DEFAULT_CATEGORY", "trending")

	cfg, err := loadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "popular", cfg.UI.DefaultCategory)
}

func TestLoadConfigMalformedFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeConfig(t, dir, "tmdb: [unclosed\n")

	_, err := loadConfig(dir)
	assert.Error(t, err)
}

func TestSaveConfigKeepsKeyAndRestrictsFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	cfg := DefaultConfig()
	cfg.TMDB.APIKey = "saved-key"
	cfg.UI.SlideInterval = 7 * time.Second
	require.NoError(t, saveConfig(cfg, dir))

	info, err := os.Stat(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := loadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "saved-key", loaded.TMDB.APIKey)
	assert.Equal(t, 7*time.Second, loaded.UI.SlideInterval)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("TMDB_API_KEY=from-file\nMARQUEE_DOTENV_PROBE=hello\n"), 0600))
	t.Cleanup(func() { os.Unsetenv("MARQUEE_DOTENV_PROBE") })
	t.Setenv("TMDB_API_KEY", "from-env")

	require.NoError(t, loadDotEnv(path))

	assert.Equal(t, "hello", os.Getenv("MARQUEE_DOTENV_PROBE"))
	assert.Equal(t, "from-env", os.Getenv("TMDB_API_KEY"), "real environment wins")
}

func TestLoadDotEnvMissingFile(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestClientOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TMDB.APIKey = "k"

	opts := cfg.ClientOptions()
	assert.Equal(t, "k", opts.APIKey)
	assert.Equal(t, cfg.TMDB.BaseURL, opts.BaseURL)
	assert.Equal(t, cfg.TMDB.Timeout, opts.Timeout)
}
