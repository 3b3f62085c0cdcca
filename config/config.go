package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	CORSOrigin        string `mapstructure:"CORS_ORIGIN"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Google Calendar configuration.
	CalendarID         string `mapstructure:"CALENDAR_ID"`
	GoogleCredsPath    string `mapstructure:"GOOGLE_CREDENTIALS_PATH"`
	UpstreamTimeoutSec int    `mapstructure:"UPSTREAM_TIMEOUT_SEC"`

	// Business hours and slot configuration.
	BusinessHoursStart int    `mapstructure:"BUSINESS_HOURS_START"`
	BusinessHoursEnd   int    `mapstructure:"BUSINESS_HOURS_END"`
	BusinessTimezone   string `mapstructure:"BUSINESS_TIMEZONE"`
	SlotDurationMin    int    `mapstructure:"SLOT_DURATION_MIN"`

	// Redis configuration.
	RedisAddr               string `mapstructure:"REDIS_ADDR"`
	RedisPassword           string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB            int    `mapstructure:"REDIS_CACHE_DB"`
	AvailabilityCacheTTLSec int    `mapstructure:"AVAILABILITY_CACHE_TTL_SEC"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CORS_ORIGIN", "http://localhost:8000")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("CALENDAR_ID", "")
	viper.SetDefault("GOOGLE_CREDENTIALS_PATH", "./service-account-key.json")
	viper.SetDefault("UPSTREAM_TIMEOUT_SEC", 10)
	viper.SetDefault("BUSINESS_HOURS_START", 9)
	viper.SetDefault("BUSINESS_HOURS_END", 18)
	viper.SetDefault("BUSINESS_TIMEZONE", "Europe/Copenhagen")
	viper.SetDefault("SLOT_DURATION_MIN", 30)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("AVAILABILITY_CACHE_TTL_SEC", 60)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if AppConfig.BusinessHoursStart >= AppConfig.BusinessHoursEnd {
		log.Fatalf("Invalid business hours: start %d must be before end %d",
			AppConfig.BusinessHoursStart, AppConfig.BusinessHoursEnd)
	}
	if AppConfig.SlotDurationMin <= 0 {
		log.Fatalf("Invalid slot duration: %d minutes", AppConfig.SlotDurationMin)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
