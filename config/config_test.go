package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(content), 0644)
	assert.NoError(t, err)
	return path
}

const validYAML = `
products:
  - name: Laptop
    target_price: 50000
    urls:
      - platform: amazon
        url: https://www.amazon.in/dp/B0TEST
      - platform: flipkart
        url: https://www.flipkart.com/p/itmtest
`

func TestLoadConfigParsesProducts(t *testing.T) {
	path := writeConfigFile(t, "config.yaml", validYAML)

	cfg, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Len(t, cfg.Products, 1)

	p := cfg.Products[0]
	assert.Equal(t, "Laptop", p.Name)
	assert.Equal(t, 50000.0, p.TargetPrice)
	assert.Len(t, p.Sources, 2)
	assert.Equal(t, "amazon", p.Sources[0].Platform)
	assert.Equal(t, "https://www.flipkart.com/p/itmtest", p.Sources[1].URL)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfigFile(t, "config.yaml", validYAML)

	cfg, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "smtp.gmail.com", cfg.Email.Host)
	assert.Equal(t, 465, cfg.Email.Port)
	assert.Equal(t, "deals", cfg.Redis.Stream)
	assert.Equal(t, 500, cfg.Redis.StreamMaxLen)
	assert.Equal(t, 15*time.Second, cfg.FetchTimeout)
	assert.True(t, cfg.ChromeHeadless)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoadConfigReadsEnvironment(t *testing.T) {
	path := writeConfigFile(t, "config.yaml", validYAML)

	t.Setenv("SENDER_EMAIL", "alerts@example.com")
	t.Setenv("SENDER_PASSWORD", "app-password")
	t.Setenv("RECIPIENT_EMAIL", "me@example.com")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "-100200300")
	t.Setenv("REDIS_ADDR", "redis.example.com:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("FETCH_TIMEOUT_SECONDS", "30")
	t.Setenv("CHROME_HEADLESS", "false")

	cfg, err := LoadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "alerts@example.com", cfg.Email.Sender)
	assert.Equal(t, "app-password", cfg.Email.Password)
	assert.Equal(t, "me@example.com", cfg.Email.Recipient)
	assert.Equal(t, "123:abc", cfg.Telegram.BotToken)
	assert.Equal(t, "-100200300", cfg.Telegram.ChatID)
	assert.Equal(t, "redis.example.com:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
	assert.False(t, cfg.ChromeHeadless)
}

func TestLoadConfigMissingFileIsError(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigMalformedDocumentIsError(t *testing.T) {
	path := writeConfigFile(t, "config.yaml", "products: [not: {valid")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Products: []ProductSpec{
				{
					Name:        "Laptop",
					TargetPrice: 50000,
					Sources: []SourceSpec{
						{Platform: "amazon", URL: "https://www.amazon.in/dp/B0TEST"},
					},
				},
			},
		}
	}

	assert.NoError(t, valid().Validate())

	empty := &Config{}
	assert.Error(t, empty.Validate())

	noName := valid()
	noName.Products[0].Name = ""
	assert.Error(t, noName.Validate())

	badTarget := valid()
	badTarget.Products[0].TargetPrice = 0
	assert.Error(t, badTarget.Validate())

	noSources := valid()
	noSources.Products[0].Sources = nil
	assert.Error(t, noSources.Validate())

	noURL := valid()
	noURL.Products[0].Sources[0].URL = ""
	assert.Error(t, noURL.Validate())

	// An unknown platform is not a validation error; the dispatcher
	// skips it at run time
	oddPlatform := valid()
	oddPlatform.Products[0].Sources[0].Platform = "ebay"
	assert.NoError(t, oddPlatform.Validate())
}
