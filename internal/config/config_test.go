package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir()) // no .env file present

	cfg := Load()

	assert.Equal(t, "http://localhost:8000/api", cfg.API.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, 15*time.Second, cfg.Cache.ListTTL)
	assert.Equal(t, "none", cfg.Printer.Type)
	assert.Equal(t, 48, cfg.Printer.Width)
	assert.Equal(t, 300*time.Millisecond, cfg.Preview.AutoPrintDelay)
	assert.True(t, cfg.Warmup.Enabled)
	assert.NotEmpty(t, cfg.Session.Path)
	assert.NotEmpty(t, cfg.Journal.Path)
}

func TestLoadFromEnvironment(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("API_BASE_URL", "https://pos.example.com/api")
	t.Setenv("CACHE_LIST_TTL_MS", "5000")
	t.Setenv("PRINTER_TYPE", "network")
	t.Setenv("PRINTER_ADDRESS", "192.168.1.50:9100")

	cfg := Load()

	assert.Equal(t, "https://pos.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Cache.ListTTL)
	assert.Equal(t, "network", cfg.Printer.Type)
	assert.Equal(t, "192.168.1.50:9100", cfg.Printer.Address)
}
