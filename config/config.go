package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

// Storage drivers accepted in STORAGE_DRIVER.
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:":8081"`
	GrpcPort string `envconfig:"GRPC_PORT" default:":50051"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"file"`
	StoragePath   string `envconfig:"STORAGE_PATH"   default:"./data"`
	DatabaseURL   string `envconfig:"DATABASE_URL"`
	RedisAddr     string `envconfig:"REDIS_ADDR"     default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB"       default:"0"`
	RedisPrefix   string `envconfig:"REDIS_PREFIX"   default:"catalog:"`

	CatalogKey string `envconfig:"CATALOG_KEY" default:"goyol_products"`
	SessionKey string `envconfig:"SESSION_KEY" default:"isAdminAuthenticated"`

	AdminEmail    string `envconfig:"ADMIN_EMAIL"    default:"asia@goyolcashmere.mn"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"Goyol2026"`

	DefaultLanguage string `envconfig:"DEFAULT_LANGUAGE" default:"en"`
}

var (
	config Config
	once   sync.Once
)

// Load reads the environment (and .env, when present) without caching.
func Load(logger *logrus.Logger) (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		logger.Warnf("Error loading .env file (but continuing): %v", err)
	} else if err == nil {
		logger.Info("Loaded configuration from .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration from environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig loads the configuration once per process and exits on error.
func LoadConfig(logger *logrus.Logger) *Config {
	once.Do(func() {
		cfg, err := Load(logger)
		if err != nil {
			logger.Fatalf("Configuration error: %v", err)
		}
		config = *cfg
		logger.Infof("Configuration loaded: HTTP Port=%s, GRPC Port=%s, Storage=%s, LogLevel=%s",
			config.HTTPPort, config.GrpcPort, config.StorageDriver, config.LogLevel)
	})
	return &config
}

func (c *Config) Validate() error {
	c.StorageDriver = strings.ToLower(strings.TrimSpace(c.StorageDriver))
	switch c.StorageDriver {
	case DriverMemory:
	case DriverFile, DriverSQLite:
		if c.StoragePath == "" {
			return fmt.Errorf("STORAGE_PATH is required for the %s driver", c.StorageDriver)
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the %s driver", c.StorageDriver)
		}
	case DriverRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the %s driver", c.StorageDriver)
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.CatalogKey == "" || c.SessionKey == "" {
		return fmt.Errorf("CATALOG_KEY and SESSION_KEY must not be empty")
	}
	if c.CatalogKey == c.SessionKey {
		return fmt.Errorf("CATALOG_KEY and SESSION_KEY must differ")
	}
	if c.AdminEmail == "" || c.AdminPassword == "" {
		return fmt.Errorf("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}
	return nil
}
