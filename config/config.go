package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort     string `mapstructure:"APP_PORT"`
	Env         string `mapstructure:"ENV"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	JWTSecret   string `mapstructure:"JWT_SECRET"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`
	RedisBusyDB   int    `mapstructure:"REDIS_BUSY_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	MaxRequestsPerMin int `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Scheduling defaults applied when a schedule leaves a knob unset.
	DefaultSlotStepMin    int `mapstructure:"DEFAULT_SLOT_STEP_MIN"`
	DefaultNoticeHours    int `mapstructure:"DEFAULT_NOTICE_HOURS"`
	MaxResolveRangeDays   int `mapstructure:"MAX_RESOLVE_RANGE_DAYS"`
	BusyCacheTTLMinutes   int `mapstructure:"BUSY_CACHE_TTL_MINUTES"`
	SlotCacheTTLSeconds   int `mapstructure:"SLOT_CACHE_TTL_SECONDS"`
	CalendarSyncMinutes   int `mapstructure:"CALENDAR_SYNC_MINUTES"`
	CalendarFetchTimeoutS int `mapstructure:"CALENDAR_FETCH_TIMEOUT_S"`
}

var AppConfig Config

// LoadConfig initializes viper to load values from env, file, or defaults.
func LoadConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_BUSY_DB", 1)
	viper.SetDefault("REDIS_QUEUE_DB", 2)
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("DEFAULT_SLOT_STEP_MIN", 30)
	viper.SetDefault("DEFAULT_NOTICE_HOURS", 2)
	viper.SetDefault("MAX_RESOLVE_RANGE_DAYS", 60)
	viper.SetDefault("BUSY_CACHE_TTL_MINUTES", 15)
	viper.SetDefault("SLOT_CACHE_TTL_SECONDS", 60)
	viper.SetDefault("CALENDAR_SYNC_MINUTES", 10)
	viper.SetDefault("CALENDAR_FETCH_TIMEOUT_S", 20)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
