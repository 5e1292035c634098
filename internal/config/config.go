package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StorageMongo  = "mongo"
	StorageMemory = "memory"
)

type Config struct {
	Port          string
	StorageDriver string
	MongoURI      string
	MongoDatabase string

	JWTSecret  string
	JWTTTL     time.Duration
	BcryptCost int

	CORSOrigins []string

	ResendAPIKey string
	SenderEmail  string
	RabbitMQURL  string

	NotifyWorkers   int
	NotifyQueueSize int
	NotifyTimeout   time.Duration

	AuthRateLimit float64
	AuthRateBurst int
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	v := viper.New()
	v.SetDefault("API_PORT", "8080")
	v.SetDefault("STORAGE_DRIVER", StorageMongo)
	v.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	v.SetDefault("MONGO_DATABASE", "tattoo_studio")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("BCRYPT_COST", 12)
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("RESEND_API_KEY", "")
	v.SetDefault("SENDER_EMAIL", "onboarding@resend.dev")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("NOTIFY_WORKERS", 2)
	v.SetDefault("NOTIFY_QUEUE_SIZE", 100)
	v.SetDefault("NOTIFY_TIMEOUT", "10s")
	v.SetDefault("AUTH_RATE_LIMIT", 5.0)
	v.SetDefault("AUTH_RATE_BURST", 10)
	v.AutomaticEnv()

	cfg := &Config{
		Port:            v.GetString("API_PORT"),
		StorageDriver:   strings.ToLower(v.GetString("STORAGE_DRIVER")),
		MongoURI:        v.GetString("MONGO_URI"),
		MongoDatabase:   v.GetString("MONGO_DATABASE"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		JWTTTL:          v.GetDuration("JWT_TTL"),
		BcryptCost:      v.GetInt("BCRYPT_COST"),
		CORSOrigins:     splitList(v.GetString("CORS_ORIGINS")),
		ResendAPIKey:    v.GetString("RESEND_API_KEY"),
		SenderEmail:     v.GetString("SENDER_EMAIL"),
		RabbitMQURL:     v.GetString("RABBITMQ_URL"),
		NotifyWorkers:   v.GetInt("NOTIFY_WORKERS"),
		NotifyQueueSize: v.GetInt("NOTIFY_QUEUE_SIZE"),
		NotifyTimeout:   v.GetDuration("NOTIFY_TIMEOUT"),
		AuthRateLimit:   v.GetFloat64("AUTH_RATE_LIMIT"),
		AuthRateBurst:   v.GetInt("AUTH_RATE_BURST"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	if c.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive, got %s", c.JWTTTL)
	}
	switch c.StorageDriver {
	case StorageMongo, StorageMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.NotifyWorkers < 1 {
		c.NotifyWorkers = 1
	}
	if c.NotifyQueueSize < 1 {
		c.NotifyQueueSize = 1
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
