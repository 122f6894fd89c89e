package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Govind-619/OrderDesk/utils"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Config holds all configuration for the application
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	Port       string
	Env        string
	LogDir     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	RateLimitRPS   float64
	RateLimitBurst int
}

// LoadConfig loads configuration from the environment, reading .env first
// when one exists
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	cacheTTL, err := getDuration("CACHE_TTL", utils.DefaultCacheTTL)
	if err != nil {
		return nil, err
	}
	redisDB, err := getInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	burst, err := getInt("RATE_LIMIT_BURST", utils.DefaultRateLimitBurst)
	if err != nil {
		return nil, err
	}
	rps, err := getFloat("RATE_LIMIT_RPS", utils.DefaultRateLimitRPS)
	if err != nil {
		return nil, err
	}

	config := &Config{
		DBHost:         getEnv("DB_HOST", utils.DefaultDBHost),
		DBPort:         getEnv("DB_PORT", utils.DefaultDBPort),
		DBUser:         getEnv("DB_USER", utils.DefaultDBUser),
		DBPassword:     getEnv("DB_PASSWORD", utils.DefaultDBPassword),
		DBName:         getEnv("DB_NAME", utils.DefaultDBName),
		DBSSLMode:      getEnv("DB_SSLMODE", "disable"),
		Port:           getEnv("PORT", utils.DefaultPort),
		Env:            getEnv("ENV", "development"),
		LogDir:         getEnv("LOG_DIR", utils.DefaultLogDir),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        redisDB,
		CacheTTL:       cacheTTL,
		RateLimitRPS:   rps,
		RateLimitBurst: burst,
	}

	return config, nil
}

// DSN returns the postgres connection string
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return f, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}
