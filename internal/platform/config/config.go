package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the root configuration for the API server.
type Config struct {
	Server   ServerConfig   `json:"server"`
	Database DatabaseConfig `json:"database"`
	JWT      JWTConfig      `json:"jwt"`
	Cache    CacheConfig    `json:"cache"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host           string `json:"host"`
	Port           int    `json:"port"`
	BaseRoute      string `json:"baseRoute"`
	AllowedOrigins string `json:"allowedOrigins"`
	Debug          bool   `json:"debug"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Postgres PostgreSQLConfig `json:"postgres"`
}

// PostgreSQLConfig holds PostgreSQL-specific configuration
type PostgreSQLConfig struct {
	Host            string        `json:"host"`
	Port            int           `json:"port"`
	Username        string        `json:"username"`
	Password        string        `json:"password"`
	Database        string        `json:"database"`
	SSLMode         string        `json:"sslMode"`
	MaxOpenConns    int           `json:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime"`
	ConnectTimeout  int           `json:"connectTimeout"`
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Enabled bool          `json:"enabled"`
	Backend string        `json:"backend"`
	Prefix  string        `json:"prefix"`
	TTL     time.Duration `json:"ttl"`
	Redis   RedisConfig   `json:"redis"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Address  string `json:"address"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	PoolSize int    `json:"poolSize"`
}

// LoadFromEnv loads configuration from the environment.
// Precedence: explicit environment variables, then values from a .env
// file if one exists, then hardcoded defaults.
func LoadFromEnv() (*Config, error) {
	// godotenv.Load only sets variables that are not already present in
	// the environment, which gives the precedence above for free.
	if err := godotenv.Load(); err != nil {
		fmt.Println("INFO: .env file not found, using environment variables and defaults.")
	}

	return loadWith(func(key, defaultValue string) string {
		if value := os.Getenv(key); value != "" {
			return value
		}
		return defaultValue
	})
}

// LoadFromMap loads configuration from an in-memory map. This is the
// primary helper for testing configuration logic in isolation without
// manipulating global environment variables.
func LoadFromMap(envMap map[string]string) (*Config, error) {
	return loadWith(func(key, defaultValue string) string {
		if value, exists := envMap[key]; exists {
			return value
		}
		return defaultValue
	})
}

func loadWith(get func(key, defaultValue string) string) (*Config, error) {
	getInt := func(key string, defaultValue int) int {
		if v, err := strconv.Atoi(get(key, "")); err == nil {
			return v
		}
		return defaultValue
	}
	getBool := func(key string, defaultValue bool) bool {
		if v, err := strconv.ParseBool(get(key, "")); err == nil {
			return v
		}
		return defaultValue
	}
	getDuration := func(key string, defaultValue time.Duration) time.Duration {
		if v, err := time.ParseDuration(get(key, "")); err == nil {
			return v
		}
		return defaultValue
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:           get("HOST", "localhost"),
			Port:           getInt("SERVER_PORT", 8080),
			BaseRoute:      get("BASE_ROUTE", "/api/v1"),
			AllowedOrigins: get("ALLOWED_ORIGINS", "*"),
			Debug:          getBool("DEBUG", false),
		},
		Database: DatabaseConfig{
			Postgres: PostgreSQLConfig{
				Host:            get("POSTGRES_HOST", "localhost"),
				Port:            getInt("POSTGRES_PORT", 5432),
				Username:        get("POSTGRES_USERNAME", "postgres"),
				Password:        get("POSTGRES_PASSWORD", ""),
				Database:        get("POSTGRES_DATABASE", "vidtube"),
				SSLMode:         get("POSTGRES_SSL_MODE", "disable"),
				MaxOpenConns:    getInt("POSTGRES_MAX_OPEN_CONNS", 25),
				MaxIdleConns:    getInt("POSTGRES_MAX_IDLE_CONNS", 25),
				ConnMaxLifetime: time.Duration(getInt("POSTGRES_CONN_MAX_LIFETIME", 300)) * time.Second,
				ConnectTimeout:  getInt("POSTGRES_CONNECT_TIMEOUT", 10),
			},
		},
		JWT: JWTConfig{
			PublicKey:  get("JWT_PUBLIC_KEY", ""),
			PrivateKey: get("JWT_PRIVATE_KEY", ""),
		},
		Cache: CacheConfig{
			Enabled: getBool("CACHE_ENABLED", true),
			Backend: get("CACHE_BACKEND", "memory"),
			Prefix:  get("CACHE_PREFIX", "vidtube:"),
			TTL:     getDuration("CACHE_TTL", time.Hour),
			Redis: RedisConfig{
				Address:  get("REDIS_ADDRESS", "localhost:6379"),
				Password: get("REDIS_PASSWORD", ""),
				DB:       getInt("REDIS_DB", 0),
				PoolSize: getInt("REDIS_POOL_SIZE", 10),
			},
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration for obviously invalid values.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Database.Postgres.Host == "" {
		return fmt.Errorf("postgres host is required")
	}
	if c.Database.Postgres.Database == "" {
		return fmt.Errorf("postgres database name is required")
	}
	if c.Cache.Backend != "memory" && c.Cache.Backend != "redis" {
		return fmt.Errorf("unsupported cache backend: %s", c.Cache.Backend)
	}
	// Fail at startup instead of panicking inside the auth middleware
	// when routes are registered.
	if c.JWT.PublicKey == "" {
		return fmt.Errorf("jwt public key is required")
	}
	return nil
}
