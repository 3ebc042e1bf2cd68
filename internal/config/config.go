package config

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	API     APIConfig
	Cache   CacheConfig
	Session SessionConfig
	Printer PrinterConfig
	Preview PreviewConfig
	Journal JournalConfig
	Warmup  WarmupConfig
	Log     LogConfig
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type CacheConfig struct {
	ListTTL time.Duration
}

type SessionConfig struct {
	Path       string
	Passphrase string
}

type PrinterConfig struct {
	Type    string // "usb", "network", or "none"
	USBPath string
	Address string
	Width   int // characters per line: 32 for 58mm, 48 for 80mm
}

type PreviewConfig struct {
	Addr           string
	AllowedOrigins []string
	AutoPrintDelay time.Duration
}

type JournalConfig struct {
	Path string
}

type WarmupConfig struct {
	Enabled bool
}

type LogConfig struct {
	Level string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("API_BASE_URL", "http://localhost:8000/api")
	viper.SetDefault("API_TIMEOUT_SECONDS", 30)
	viper.SetDefault("CACHE_LIST_TTL_MS", 15000)
	viper.SetDefault("SESSION_PATH", defaultSessionPath())
	viper.SetDefault("SESSION_PASSPHRASE", "")
	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "/dev/usb/lp0")
	viper.SetDefault("PRINTER_ADDRESS", "")
	viper.SetDefault("PRINTER_WIDTH", 48)
	viper.SetDefault("PREVIEW_ADDR", ":7425")
	viper.SetDefault("PREVIEW_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("PREVIEW_AUTOPRINT_DELAY_MS", 300)
	viper.SetDefault("JOURNAL_PATH", defaultJournalPath())
	viper.SetDefault("WARMUP_ENABLED", true)
	viper.SetDefault("LOG_LEVEL", "info")

	return &Config{
		API: APIConfig{
			BaseURL: viper.GetString("API_BASE_URL"),
			Timeout: time.Duration(viper.GetInt("API_TIMEOUT_SECONDS")) * time.Second,
		},
		Cache: CacheConfig{
			ListTTL: time.Duration(viper.GetInt("CACHE_LIST_TTL_MS")) * time.Millisecond,
		},
		Session: SessionConfig{
			Path:       viper.GetString("SESSION_PATH"),
			Passphrase: viper.GetString("SESSION_PASSPHRASE"),
		},
		Printer: PrinterConfig{
			Type:    viper.GetString("PRINTER_TYPE"),
			USBPath: viper.GetString("PRINTER_USB_PATH"),
			Address: viper.GetString("PRINTER_ADDRESS"),
			Width:   viper.GetInt("PRINTER_WIDTH"),
		},
		Preview: PreviewConfig{
			Addr:           viper.GetString("PREVIEW_ADDR"),
			AllowedOrigins: viper.GetStringSlice("PREVIEW_ALLOWED_ORIGINS"),
			AutoPrintDelay: time.Duration(viper.GetInt("PREVIEW_AUTOPRINT_DELAY_MS")) * time.Millisecond,
		},
		Journal: JournalConfig{
			Path: viper.GetString("JOURNAL_PATH"),
		},
		Warmup: WarmupConfig{
			Enabled: viper.GetBool("WARMUP_ENABLED"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}
}

func configDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "pos-client")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "pos-client")
}

func defaultSessionPath() string {
	return filepath.Join(configDir(), "session.bin")
}

func defaultJournalPath() string {
	return filepath.Join(configDir(), "journal.db")
}
