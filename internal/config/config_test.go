package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TOGGL_API_KEY", "test-key")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "https://api.track.toggl.com/api/v9", cfg.BaseURL)
	assert.Equal(t, "Local", cfg.Timezone)
	assert.Empty(t, cfg.ExcludeTagIDs)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("TOGGL_API_KEY", "test-key")
	t.Setenv("TOGGL_API_BASE_URL", "http://localhost:8080/api/v9")
	t.Setenv("TOGGL_TIMEZONE", "Asia/Tokyo")
	t.Setenv("TOGGL_EXCLUDE_TAG_IDS", "10,20,30")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api/v9", cfg.BaseURL)
	assert.Equal(t, "Asia/Tokyo", cfg.Timezone)
	assert.Equal(t, []int64{10, 20, 30}, cfg.ExcludeTagIDs)
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv("TOGGL_API_KEY", "")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOGGL_API_KEY")
}
