package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Port          string `mapstructure:"PORT"`
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	MongoURI      string `mapstructure:"MONGO_URI"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`
	JWTSecret     string `mapstructure:"JWT_SECRET"`
	JWTTTLHours   int    `mapstructure:"JWT_TTL_HOURS"`
	LogLevel      string `mapstructure:"LOG_LEVEL"`

	// Bootstrap administrator, created on start-up when both are set.
	AdminEmail    string `mapstructure:"ADMIN_EMAIL"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`

	// External game-listing API.
	GameAPIURL   string `mapstructure:"GAME_API_URL"`
	GameAPIToken string `mapstructure:"GAME_API_TOKEN"`
	SyncSchedule string `mapstructure:"SYNC_SCHEDULE"`

	LoginRatePerMinute int `mapstructure:"LOGIN_RATE_PER_MINUTE"`
}

var AppConfig *Config

var defaults = map[string]any{
	"PORT":                  "8080",
	"MONGO_URI":             "mongodb://localhost:27017",
	"MONGO_DATABASE":        "gamesrank",
	"JWT_TTL_HOURS":         24 * 7,
	"LOG_LEVEL":             "info",
	"LOGIN_RATE_PER_MINUTE": 10,
}

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	for key, value := range defaults {
		viper.SetDefault(key, value)
	}
	// AutomaticEnv only covers keys viper already knows about.
	for _, key := range []string{"DATABASE_URL", "JWT_SECRET", "ADMIN_EMAIL", "ADMIN_PASSWORD", "GAME_API_URL", "GAME_API_TOKEN", "SYNC_SCHEDULE"} {
		_ = viper.BindEnv(key)
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	err := viper.Unmarshal(&AppConfig)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
