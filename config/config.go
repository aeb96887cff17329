// config/config.go
package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	AuditBackendRedis         = "redis"
	AuditBackendElasticsearch = "elasticsearch"
)

// Configuration stores all the configurations
type Configuration struct {
	Server    ServerConfiguration
	Database  DatabaseConfiguration
	AuditLog  AuditLogConfiguration
	Redis     RedisConfiguration
	Cache     CacheConfiguration
	RateLimit RateLimitConfiguration
	Log       LogConfiguration
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port string
	Mode string
}

// DatabaseConfiguration stores data for the primary (relational) store
type DatabaseConfiguration struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

// AuditLogConfiguration stores data for the secondary log store
type AuditLogConfiguration struct {
	Backend          string
	ConnectionString string
	Table            string
}

// RedisConfiguration stores data for the Redis connection used by cache and rate limiting
type RedisConfiguration struct {
	Addr          string
	Password      string
	DB            int
	PoolSize      int
	DialTimeout   time.Duration
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
	EncryptionKey string
}

type CacheConfiguration struct {
	Enabled bool
	TTL     time.Duration
}

type RateLimitConfiguration struct {
	Enabled  bool
	Requests int
	Window   time.Duration
}

type LogConfiguration struct {
	Dir   string
	Level string
}

// Load reads config.yaml from the given search paths (default "config"),
// layers environment variables over it and returns the result.
func Load(paths ...string) (*Configuration, error) {
	v := viper.New()
	if len(paths) == 0 {
		paths = []string{"config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return nil, err
		}
	}

	// AutomaticEnv only applies to keys viper already knows about, so every
	// key below must have a default for env overrides to reach Unmarshal.
	var cfg Configuration
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")

	v.SetDefault("database.dsn", "")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 5)
	v.SetDefault("database.connMaxLifetime", "30m")
	v.SetDefault("database.autoMigrate", false)

	v.SetDefault("auditLog.backend", AuditBackendRedis)
	v.SetDefault("auditLog.connectionString", "")
	v.SetDefault("auditLog.table", "EmployeeLog")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.poolSize", 10)
	v.SetDefault("redis.dialTimeout", "5s")
	v.SetDefault("redis.readTimeout", "3s")
	v.SetDefault("redis.writeTimeout", "3s")
	v.SetDefault("redis.encryptionKey", "")

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.ttl", "10m")

	v.SetDefault("rateLimit.enabled", false)
	v.SetDefault("rateLimit.requests", 100)
	v.SetDefault("rateLimit.window", "1m")

	v.SetDefault("log.dir", "logging")
	v.SetDefault("log.level", "info")
}

// Validate checks the settings the service cannot start without.
func (c *Configuration) Validate() error {
	switch c.Server.Mode {
	case "", "debug", "release", "test":
	default:
		return fmt.Errorf("unsupported server.mode %q", c.Server.Mode)
	}
	if strings.TrimSpace(c.Database.DSN) == "" {
		return errors.New("database.dsn is required")
	}
	switch c.AuditLog.Backend {
	case AuditBackendRedis, AuditBackendElasticsearch:
	default:
		return fmt.Errorf("unsupported auditLog.backend %q", c.AuditLog.Backend)
	}
	if strings.TrimSpace(c.AuditLog.ConnectionString) == "" {
		return errors.New("auditLog.connectionString is required")
	}
	if strings.TrimSpace(c.AuditLog.Table) == "" {
		return errors.New("auditLog.table is required")
	}
	if c.NeedsRedis() && c.Redis.EncryptionKey != "" && len(c.Redis.EncryptionKey) != 32 {
		return errors.New("redis.encryptionKey must be 32 bytes")
	}
	if c.RateLimit.Enabled && c.RateLimit.Requests <= 0 {
		return errors.New("rateLimit.requests must be positive")
	}
	return nil
}

// NeedsRedis reports whether cache or rate limiting require the shared Redis client.
func (c *Configuration) NeedsRedis() bool {
	return c.Cache.Enabled || c.RateLimit.Enabled
}
