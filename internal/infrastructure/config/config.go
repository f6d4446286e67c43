package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Supabase SupabaseConfig
	Redis    RedisConfig
	Store    StoreConfig
}

// SupabaseConfig points at the hosted backend. URL and AnonKey are the two
// values the whole process hangs off; both are required and their absence
// kills the process at startup.
type SupabaseConfig struct {
	URL       string `env:"SUPABASE_URL,        required"`
	AnonKey   string `env:"SUPABASE_ANON_KEY,   required"`
	JWTSecret string `env:"SUPABASE_JWT_SECRET"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// StoreConfig tunes the cached stores. Timeout bounds every remote round
// trip a store issues.
type StoreConfig struct {
	Timeout time.Duration `env:"STORE_TIMEOUT, default=10s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
