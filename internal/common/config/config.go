package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Port   int    `env:"PORT" envDefault:"3000" validate:"min=1,max=65535"`
		Origin string `env:"ORIGIN" envDefault:"*"`
	}

	Messenger struct {
		PageAccessToken string        `env:"PAGE_ACCESS_TOKEN,required" validate:"required"`
		VerifyToken     string        `env:"VERIFY_TOKEN,required" validate:"required"`
		AdminID         string        `env:"ADMIN_ID"`
		GraphURL        string        `env:"GRAPH_API_URL" envDefault:"https://graph.facebook.com" validate:"url"`
		GraphVersion    string        `env:"GRAPH_API_VERSION" envDefault:"v20.0"`
		RPS             float64       `env:"MESSENGER_RPS" envDefault:"20" validate:"gt=0"`
		Timeout         time.Duration `env:"MESSENGER_TIMEOUT" envDefault:"10s"`
	}

	Feed struct {
		URL            string        `env:"FEED_URL" envDefault:"wss://gagstock.gleeze.com/grow-a-garden" validate:"url"`
		ReconnectDelay time.Duration `env:"FEED_RECONNECT_DELAY" envDefault:"3s"`
	}

	// Timezone used for every user-facing timestamp.
	Timezone string `env:"TIMEZONE" envDefault:"Asia/Manila"`

	Store struct {
		Driver  string `env:"STORE_DRIVER" envDefault:"file" validate:"oneof=file memory redis bolt mongo"`
		DataDir string `env:"DATA_DIR" envDefault:"."`
	}

	Redis struct {
		Host     string `env:"REDIS_HOST" envDefault:"localhost"`
		Port     int    `env:"REDIS_PORT" envDefault:"6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Mongo struct {
		URI      string `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
		Database string `env:"MONGO_DATABASE" envDefault:"gagbot"`
	}
}

// RedisAddr returns host:port for the redis driver.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// Location resolves Timezone, falling back to a fixed UTC+8 zone.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.FixedZone("PHT", 8*60*60)
	}
	return loc
}

// Load reads .env (if any) and the process environment into Config.
func Load() (*Config, error) {
	// .env is optional; production sets variables directly
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
