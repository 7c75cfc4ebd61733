package utils

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Storage  StorageConfig
	Session  SessionConfig
	Worker   WorkerConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	TTLSeconds int
}

func (c RedisConfig) TTL() time.Duration {
	if c.TTLSeconds <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.TTLSeconds) * time.Second
}

type StorageConfig struct {
	Region          string
	Endpoint        string
	AccessKey       string
	SecretKey       string
	AvatarBucket    string
	PhotoBucket     string
	PresignExpiryMn int
}

func (c StorageConfig) PresignExpiry() time.Duration {
	if c.PresignExpiryMn <= 0 {
		return 15 * time.Minute
	}
	return time.Duration(c.PresignExpiryMn) * time.Minute
}

type SessionConfig struct {
	ExpiryHours int
}

type WorkerConfig struct {
	IntervalMinutes int
}

func (c WorkerConfig) Interval() time.Duration {
	if c.IntervalMinutes <= 0 {
		return 15 * time.Minute
	}
	return time.Duration(c.IntervalMinutes) * time.Minute
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CACHE_TTL_SECONDS", 300)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 720)
	viper.SetDefault("PRESIGN_EXPIRY_MINUTES", 15)
	viper.SetDefault("AVATAR_BUCKET", "avatars")
	viper.SetDefault("PHOTO_BUCKET", "review-photos")
	viper.SetDefault("WORKER_INTERVAL_MINUTES", 15)
	viper.SetDefault("LOG_PATH", "logs/")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Redis: RedisConfig{
			Addr:       viper.GetString("REDIS_ADDR"),
			Password:   viper.GetString("REDIS_PASSWORD"),
			DB:         viper.GetInt("REDIS_DB"),
			TTLSeconds: viper.GetInt("CACHE_TTL_SECONDS"),
		},
		Storage: StorageConfig{
			Region:          viper.GetString("S3_REGION"),
			Endpoint:        viper.GetString("S3_ENDPOINT"),
			AccessKey:       viper.GetString("S3_ACCESS_KEY"),
			SecretKey:       viper.GetString("S3_SECRET_KEY"),
			AvatarBucket:    viper.GetString("AVATAR_BUCKET"),
			PhotoBucket:     viper.GetString("PHOTO_BUCKET"),
			PresignExpiryMn: viper.GetInt("PRESIGN_EXPIRY_MINUTES"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Worker: WorkerConfig{
			IntervalMinutes: viper.GetInt("WORKER_INTERVAL_MINUTES"),
		},
	}

	return config, nil
}
