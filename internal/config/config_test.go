package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "https://openlibrary.org", cfg.Catalog.BaseURL)
	assert.Equal(t, "https://covers.openlibrary.org", cfg.Catalog.CoversURL)
	assert.Equal(t, 20, cfg.Catalog.PageSize)

	assert.Equal(t, QABackendREST, cfg.QA.Backend)
	assert.Equal(t, "gemini-1.5-flash", cfg.QA.Model)
	assert.Equal(t, "https://generativelanguage.googleapis.com", cfg.QA.BaseURL)
	assert.Empty(t, cfg.QA.APIKey)

	assert.True(t, cfg.UI.ShowDegraded)
	assert.NotEmpty(t, cfg.Favorites.Path)
	assert.Equal(t, "INFO", cfg.Logging.Level)
}

func TestHasAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.HasAPIKey())

	cfg.QA.APIKey = "some-key"
	assert.True(t, cfg.HasAPIKey())
}

func TestLoadConfig_EnvironmentKey(t *testing.T) {
	t.Setenv("BOOKEXPLORE_QA_API_KEY", "env-key")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.QA.APIKey)
}
