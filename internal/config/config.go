package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the client core and the dev server.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Trainer TrainerConfig `mapstructure:"trainer"`
	Ads     AdsConfig     `mapstructure:"ads"`
	Server  ServerConfig  `mapstructure:"server"`
	JWT     JWTConfig     `mapstructure:"jwt"`
	S3      S3Config      `mapstructure:"s3"`
}

// APIConfig configures the HTTP client side (the app talking to the backend).
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// CacheConfig configures the on-device store and plan reconciliation.
type CacheConfig struct {
	// URL is a libsql connection string. A plain file URL keeps everything
	// on the device, e.g. "file:./primeform.db?cache=shared&mode=rwc".
	URL string `mapstructure:"url"`
	// MaxPlanAge is how old a cached plan may get before a background
	// refresh against the backend is attempted.
	MaxPlanAge time.Duration `mapstructure:"max_plan_age"`
}

// TrainerConfig configures the AI trainer feature.
type TrainerConfig struct {
	// DailyMessageLimit caps gated message sends per user per calendar day.
	DailyMessageLimit int `mapstructure:"daily_message_limit"`
}

// AdsConfig configures the rewarded-ad gate.
type AdsConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	UnitID      string        `mapstructure:"unit_id"`
	LoadTimeout time.Duration `mapstructure:"load_timeout"`
}

// ServerConfig is used by cmd/devserver only.
type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// JWTConfig defines JWT specific configuration (devserver token issuing).
type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

// S3Config configures the progress-photo object storage (devserver presigning).
type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment variable handling, e.g. api.base_url -> API_BASE_URL,
	// trainer.daily_message_limit -> TRAINER_DAILY_MESSAGE_LIMIT.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	// Defaults keep the module runnable with no config file at all.
	viper.SetDefault("api.base_url", "http://localhost:8080/api/v1")
	viper.SetDefault("api.timeout", "15s")
	viper.SetDefault("cache.url", "file:./primeform.db?cache=shared&mode=rwc")
	viper.SetDefault("cache.max_plan_age", "30m")
	viper.SetDefault("trainer.daily_message_limit", 3)
	viper.SetDefault("ads.enabled", true)
	viper.SetDefault("ads.load_timeout", "10s")
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("jwt.expiration", "24h")
	viper.SetDefault("s3.use_ssl", true)

	err = viper.ReadInConfig()
	// A missing config file is fine; env vars and defaults carry the rest.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
