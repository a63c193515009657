package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server      ServerConfig
	Generator   GeneratorConfig
	RedisConfig RedisConfig
	CacheEnable bool `env:"CACHE_ENABLE"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR" envDefault:"redis:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"REDIS_TTL" envDefault:"10m"`
}

type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	Timeout         time.Duration `env:"SERVER_TIMEOUT" envDefault:"2m"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ThrottleLimit   int           `env:"SERVER_THROTTLE_LIMIT" envDefault:"50"`
}

type GeneratorConfig struct {
	JPEGQuality  int   `env:"GENERATOR_JPEG_QUALITY" envDefault:"75"`
	MaxBodyBytes int64 `env:"GENERATOR_MAX_BODY_BYTES" envDefault:"1048576"`
	// MaxPixels caps width*height of raster surfaces. Zero disables the check.
	MaxPixels int64 `env:"GENERATOR_MAX_PIXELS" envDefault:"40000000"`
	// FontPath optionally replaces the bundled Go Regular font for raster text.
	FontPath string `env:"GENERATOR_FONT_PATH"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
