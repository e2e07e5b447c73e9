package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Backend selects where journeys are saved.
type Backend string

const (
	BackendSQLite   Backend = "sqlite"
	BackendRedis    Backend = "redis"
	BackendPostgres Backend = "postgres"
	BackendMemory   Backend = "memory"
)

// profileOverhead is the room a saved profile needs beyond its base64
// selfie: nickname, MIME type and JSON framing.
const profileOverhead = 64 << 10

type Config struct {
	HTTPAddr string     `env:"HTTP_ADDR" envDefault:":8080"`
	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	SPADir   string     `env:"SPA_DIR" envDefault:"../web/dist"`

	KVBackend    Backend `env:"KV_BACKEND" envDefault:"sqlite"`
	DBPath       string  `env:"DB_PATH" envDefault:"data/worldtour.db"`
	RedisURL     string  `env:"REDIS_URL"`
	PostgresDSN  string  `env:"POSTGRES_DSN"`
	KVQuotaBytes int     `env:"KV_QUOTA_BYTES" envDefault:"5242880"`

	GeminiAPIKey      string        `env:"GEMINI_API_KEY"`
	GeminiImageModel  string        `env:"GEMINI_IMAGE_MODEL" envDefault:"gemini-2.5-flash-image"`
	GeminiTextModel   string        `env:"GEMINI_TEXT_MODEL" envDefault:"gemini-2.5-flash"`
	GenerationTimeout time.Duration `env:"GENERATION_TIMEOUT" envDefault:"90s"`

	IntroDelay       time.Duration `env:"INTRO_DELAY" envDefault:"1500ms"`
	PersonaImagePath string        `env:"PERSONA_IMAGE_PATH"`
	PublicURL        string        `env:"PUBLIC_URL"`
	RandomSeed       int64         `env:"RANDOM_SEED"`
	MaxUploadBytes   int64         `env:"MAX_UPLOAD_BYTES" envDefault:"4194304"`
	SessionIdleTTL   time.Duration `env:"SESSION_IDLE_TTL" envDefault:"30m"`

	AdminUser         string `env:"ADMIN_USER"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`
}

// Load reads the configuration from the environment. Variables in an
// optional .env file fill in whatever the environment leaves unset.
func Load() (*Config, error) {
	return load(".env")
}

func load(dotenv string) (*Config, error) {
	if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", dotenv, err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.KVBackend {
	case BackendSQLite, BackendMemory:
	case BackendRedis:
		if c.RedisURL == "" {
			return errors.New("REDIS_URL is required for the redis backend")
		}
	case BackendPostgres:
		if c.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown KV_BACKEND %q", c.KVBackend)
	}
	// An upload is a base64 selfie and is saved as one, so the largest
	// accepted body must fit in a single stored value.
	if c.KVQuotaBytes > 0 && c.MaxUploadBytes+profileOverhead > int64(c.KVQuotaBytes) {
		return fmt.Errorf("MAX_UPLOAD_BYTES (%d) does not fit KV_QUOTA_BYTES (%d) with %d bytes to spare",
			c.MaxUploadBytes, c.KVQuotaBytes, profileOverhead)
	}
	if (c.AdminUser == "") != (c.AdminPasswordHash == "") {
		return errors.New("ADMIN_USER and ADMIN_PASSWORD_HASH must be set together")
	}
	return nil
}
