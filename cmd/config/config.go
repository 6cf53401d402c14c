package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	Mail        MailConfig
	Webhook     WebhookConfig
	Campaign    CampaignConfig
	Restock     RestockConfig
	Fulfillment FulfillmentConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Host        string
	Port        int
	Password    string
	DB          int
	PoolSize    int
	KeyPrefix   string
	DialTimeout time.Duration
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}

type MailConfig struct {
	APIURL string
	APIKey string
}

type WebhookConfig struct {
	Timeout time.Duration
}

type CampaignConfig struct {
	// MailDedupTTL suppresses repeated activation mails for a campaign that flaps.
	MailDedupTTL time.Duration
}

type RestockConfig struct {
	SweepInterval time.Duration
	LockTTL       time.Duration
}

type FulfillmentConfig struct {
	Timezone string
}

// Load reads configuration from the environment, honouring a local .env file.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getEnv("APP_ENV", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getInt("DB_PORT", 3306),
			User:            getEnv("DB_USER", "root"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "fulfillment"),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 10),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Redis: RedisConfig{
			Host:        getEnv("REDIS_HOST", "localhost"),
			Port:        getInt("REDIS_PORT", 6379),
			Password:    getEnv("REDIS_PASSWORD", ""),
			DB:          getInt("REDIS_DB", 0),
			PoolSize:    getInt("REDIS_POOL_SIZE", 10),
			KeyPrefix:   getEnv("REDIS_KEY_PREFIX", "fulfillment:"),
			DialTimeout: getDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		},
		RabbitMQ: RabbitMQConfig{
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
		},
		Mail: MailConfig{
			APIURL: getEnv("MAIL_API_URL", "http://localhost:8090"),
			APIKey: getEnv("MAIL_API_KEY", ""),
		},
		Webhook: WebhookConfig{
			Timeout: getDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		},
		Campaign: CampaignConfig{
			MailDedupTTL: getDuration("CAMPAIGN_MAIL_DEDUP_TTL", 24*time.Hour),
		},
		Restock: RestockConfig{
			SweepInterval: getDuration("RESTOCK_SWEEP_INTERVAL", time.Minute),
			LockTTL:       getDuration("RESTOCK_LOCK_TTL", 30*time.Second),
		},
		Fulfillment: FulfillmentConfig{
			Timezone: getEnv("FULFILLMENT_TIMEZONE", "Asia/Kolkata"),
		},
	}
}

// GetDSN builds the MySQL data source name. parseTime is required for DATETIME scanning.
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

// Location resolves the business time zone, falling back to UTC.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Fulfillment.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
