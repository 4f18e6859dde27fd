package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// SourceSpec identifies one place a product can be bought
type SourceSpec struct {
	Platform string `mapstructure:"platform"`
	URL      string `mapstructure:"url"`
}

// ProductSpec describes a watched product and its target price
type ProductSpec struct {
	Name        string       `mapstructure:"name"`
	TargetPrice float64      `mapstructure:"target_price"`
	Sources     []SourceSpec `mapstructure:"urls"`
}

// EmailConfig holds SMTP submission settings for the email channel
type EmailConfig struct {
	Sender    string
	Password  string
	Recipient string
	Host      string
	Port      int
}

// TelegramConfig holds bot settings for the telegram channel
type TelegramConfig struct {
	BotToken string
	ChatID   string
}

// RedisConfig holds settings for the optional deal feed
type RedisConfig struct {
	Addr         string
	DB           int
	Stream       string
	StreamMaxLen int
}

// Config represents the application configuration
type Config struct {
	Products []ProductSpec `mapstructure:"products"`

	Email    EmailConfig
	Telegram TelegramConfig
	Redis    RedisConfig

	FetchTimeout   time.Duration
	ChromeHeadless bool

	Environment string
}

// LoadConfig reads the products document with viper and the channel and
// runtime settings from environment variables. A missing or malformed
// products document is an error; the caller treats it as fatal.
func LoadConfig(configFile string) (*Config, error) {
	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read products config: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal products config: %w", err)
	}

	smtpPort, _ := strconv.Atoi(getEnv("SMTP_PORT", "465"))
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	redisMaxLen, _ := strconv.Atoi(getEnv("REDIS_STREAM_MAXLEN", "500"))
	fetchTimeout, _ := strconv.Atoi(getEnv("FETCH_TIMEOUT_SECONDS", "15"))

	cfg.Email = EmailConfig{
		Sender:    os.Getenv("SENDER_EMAIL"),
		Password:  os.Getenv("SENDER_PASSWORD"),
		Recipient: os.Getenv("RECIPIENT_EMAIL"),
		Host:      getEnv("SMTP_HOST", "smtp.gmail.com"),
		Port:      smtpPort,
	}
	cfg.Telegram = TelegramConfig{
		BotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		ChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
	}
	cfg.Redis = RedisConfig{
		Addr:         os.Getenv("REDIS_ADDR"),
		DB:           redisDB,
		Stream:       getEnv("REDIS_STREAM", "deals"),
		StreamMaxLen: redisMaxLen,
	}
	cfg.FetchTimeout = time.Duration(fetchTimeout) * time.Second
	cfg.ChromeHeadless = getEnv("CHROME_HEADLESS", "true") != "false"
	cfg.Environment = getEnv("PRICEWATCHER_ENVIRONMENT", "development")

	return cfg, nil
}

// Validate checks the products document before any network activity
func (c *Config) Validate() error {
	if len(c.Products) == 0 {
		return fmt.Errorf("no products configured")
	}
	for i, p := range c.Products {
		if p.Name == "" {
			return fmt.Errorf("product %d has no name", i)
		}
		if p.TargetPrice <= 0 {
			return fmt.Errorf("product %q has a non-positive target price", p.Name)
		}
		if len(p.Sources) == 0 {
			return fmt.Errorf("product %q has no sources", p.Name)
		}
		for j, s := range p.Sources {
			if s.URL == "" {
				return fmt.Errorf("product %q source %d has no url", p.Name, j)
			}
		}
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
