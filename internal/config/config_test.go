package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsAndEnvironment(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "9090")
	t.Setenv("GAME_API_URL", "https://games.example.com/list")

	LoadConfig()
	require.NotNil(t, AppConfig)

	assert.Equal(t, "s3cret", AppConfig.JWTSecret)
	assert.Equal(t, "9090", AppConfig.Port)
	assert.Equal(t, "https://games.example.com/list", AppConfig.GameAPIURL)
	assert.Equal(t, "gamesrank", AppConfig.MongoDatabase)
	assert.Equal(t, 168, AppConfig.JWTTTLHours)
	assert.Equal(t, 10, AppConfig.LoginRatePerMinute)
	assert.Empty(t, AppConfig.SyncSchedule)
}
