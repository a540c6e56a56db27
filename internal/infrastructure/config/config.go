package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// Store selects the entity-table backend: "memory" (seeded fixtures) or "mongo".
	Store string `env:"STORE, default=memory"`
	// KVBackend selects the preference/session store: "memory" or "redis".
	KVBackend string `env:"KV_BACKEND, default=memory"`

	// LoginDelay adds artificial latency to logins for demo realism.
	LoginDelay time.Duration `env:"LOGIN_DELAY, default=0s"`
	// JobDuration is how long a simulated job pretends to work.
	JobDuration time.Duration `env:"JOB_DURATION, default=2s"`
	// NotificationTTL is the toast display duration.
	NotificationTTL time.Duration `env:"NOTIFICATION_TTL, default=5s"`
	// ConfirmationTTL bounds how long a pending confirmation stays open.
	ConfirmationTTL time.Duration `env:"CONFIRMATION_TTL, default=5m"`

	JobWorkers int `env:"JOB_WORKERS, default=4"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=younivent"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
