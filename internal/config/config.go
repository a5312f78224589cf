package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Seed      SeedConfig
	CORS      CORSConfig
	Log       LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	QueryTimeout    time.Duration
	InsertBatchSize int
}

// RedisConfig - хранилище счётчиков rate limiter. Пустой Host отключает Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

type SeedConfig struct {
	OnStartup  bool
	StatesFile string
	CitiesFile string
}

type CORSConfig struct {
	AllowOrigins string
}

type LogConfig struct {
	Level string
}

// MaxInsertBatchSize - Postgres принимает не более 65535 параметров на запрос, у cities 11 столбцов
const MaxInsertBatchSize = 65535 / 11

func setDefaults() {
	viper.SetDefault("PORT", 5000)
	viper.SetDefault("API_ENV", "development")

	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_NAME", "geo")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 20)
	viper.SetDefault("DB_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DB_CONN_MAX_LIFETIME", 300)
	viper.SetDefault("DB_CONN_MAX_IDLE_TIME", 60)
	viper.SetDefault("DB_QUERY_TIMEOUT", 10)

	viper.SetDefault("REDIS_PORT", 6379)

	viper.SetDefault("RATE_LIMIT_MAX", 10)
	viper.SetDefault("RATE_LIMIT_WINDOW_MS", 60000)

	viper.SetDefault("SEED_ON_STARTUP", true)
	viper.SetDefault("SEED_STATES_FILE", "states.JSON")
	viper.SetDefault("SEED_CITIES_FILE", "cities.JSON")
	viper.SetDefault("SEED_BATCH_SIZE", 1000)

	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")
	viper.SetDefault("LOG_LEVEL", "info")
}

// Load читает .env (если он есть) и переменные окружения; окружение имеет приоритет
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()
	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            viper.GetString("DB_HOST"),
			Port:            viper.GetInt("DB_PORT"),
			User:            viper.GetString("DB_USER"),
			Password:        viper.GetString("DB_PASSWORD"),
			DBName:          viper.GetString("DB_NAME"),
			SSLMode:         viper.GetString("DB_SSLMODE"),
			MaxConns:        viper.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    viper.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(viper.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(viper.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
			QueryTimeout:    time.Duration(viper.GetInt("DB_QUERY_TIMEOUT")) * time.Second,
			InsertBatchSize: viper.GetInt("SEED_BATCH_SIZE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		RateLimit: RateLimitConfig{
			Max:    viper.GetInt("RATE_LIMIT_MAX"),
			Window: time.Duration(viper.GetInt("RATE_LIMIT_WINDOW_MS")) * time.Millisecond,
		},
		Seed: SeedConfig{
			OnStartup:  viper.GetBool("SEED_ON_STARTUP"),
			StatesFile: viper.GetString("SEED_STATES_FILE"),
			CitiesFile: viper.GetString("SEED_CITIES_FILE"),
		},
		CORS: CORSConfig{
			AllowOrigins: strings.TrimSpace(viper.GetString("CORS_ALLOW_ORIGINS")),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid PORT: %d", c.Server.Port)
	}
	if c.RateLimit.Max <= 0 {
		return fmt.Errorf("RATE_LIMIT_MAX must be positive, got %d", c.RateLimit.Max)
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW_MS must be positive, got %s", c.RateLimit.Window)
	}
	if c.Database.InsertBatchSize <= 0 {
		return fmt.Errorf("SEED_BATCH_SIZE must be positive, got %d", c.Database.InsertBatchSize)
	}
	if c.Database.InsertBatchSize > MaxInsertBatchSize {
		return fmt.Errorf("SEED_BATCH_SIZE must be at most %d, got %d", MaxInsertBatchSize, c.Database.InsertBatchSize)
	}
	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GetDSN - строка подключения для драйвера pgx
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.DBName,
		c.SSLMode,
	)
}

// RedisEnabled - Redis используется только если задан REDIS_HOST
func (c *Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}

func (c *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
