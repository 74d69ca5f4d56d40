package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

const defaultConfigFile = "config/default.json"

// Add field here when new config element in json
type Config struct {
	MongoURI       string   `json:"mongoURI"`
	Cluster        string   `json:"cluster"`
	SecretKey      string   `json:"secretKey"`
	TokenTTLHours  int      `json:"tokenTTLHours"`
	Port           string   `json:"port"`
	Debug          bool     `json:"debug"`
	CorsOrigins    []string `json:"corsOrigins"`
	UploadDir      string   `json:"uploadDir"`
	AdminEmail     string   `json:"adminEmail"`
	AdminPassword  string   `json:"adminPassword"`
	RequestTimeout int      `json:"requestTimeoutSeconds"`

	Provider ProviderConfig `json:"provider"`
	Opay     OpayConfig     `json:"opay"`
	Presence PresenceConfig `json:"presence"`
	SMTP     SMTPConfig     `json:"smtp"`
	Telegram TelegramConfig `json:"telegram"`
}

// ProviderConfig points at the premium games catalog API.
type ProviderConfig struct {
	BaseURL        string `json:"baseURL"`
	APIKey         string `json:"apiKey"`
	TimeoutSeconds int    `json:"timeoutSeconds"`
}

type OpayConfig struct {
	// BaseURL is used until an admin stores one in the opay settings document.
	BaseURL        string `json:"baseURL"`
	TimeoutSeconds int    `json:"timeoutSeconds"`
	ReconcileSpec  string `json:"reconcileSpec"`
}

type PresenceConfig struct {
	BaseURL        string `json:"baseURL"`
	TimeoutSeconds int    `json:"timeoutSeconds"`
}

type SMTPConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	From     string `json:"from"`
}

type TelegramConfig struct {
	BotToken string `json:"botToken"`
	ChatID   int64  `json:"chatID"`
}

var configOnce sync.Once
var GlobalConfig Config
var cfgErr error = nil

// SetupConfig fills GlobalConfig once per process.
func SetupConfig() error {
	configOnce.Do(func() {
		path := os.Getenv("CONFIG_FILE")
		if path == "" {
			path = defaultConfigFile
		}
		_ = godotenv.Load()
		GlobalConfig, cfgErr = Load(path)
	})
	return cfgErr
}

// Load reads the json file at path (a missing file is fine), applies defaults and then
// environment overrides.
func Load(path string) (Config, error) {
	cfg := defaults()
	configBytes, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(configBytes, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, err
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings the server cannot start without.
func (c Config) Validate() error {
	if c.MongoURI == "" {
		return errors.New("mongoURI is required")
	}
	if c.SecretKey == "" {
		return errors.New("secretKey is required")
	}
	return nil
}

func defaults() Config {
	return Config{
		Cluster:        "playbet",
		TokenTTLHours:  24,
		Port:           "5000",
		UploadDir:      "uploads",
		RequestTimeout: 30,
		Provider:       ProviderConfig{TimeoutSeconds: 15},
		Opay: OpayConfig{
			TimeoutSeconds: 15,
			ReconcileSpec:  "@every 5m",
		},
		Presence: PresenceConfig{TimeoutSeconds: 5},
		SMTP:     SMTPConfig{Port: 587},
	}
}

func applyEnv(cfg *Config) error {
	setString(&cfg.MongoURI, "MONGO_URI")
	setString(&cfg.Cluster, "DB_NAME")
	setString(&cfg.SecretKey, "JWT_SECRET")
	setString(&cfg.Port, "PORT")
	setString(&cfg.UploadDir, "UPLOAD_DIR")
	setString(&cfg.AdminEmail, "ADMIN_EMAIL")
	setString(&cfg.AdminPassword, "ADMIN_PASSWORD")
	setString(&cfg.Provider.BaseURL, "PROVIDER_BASE_URL")
	setString(&cfg.Provider.APIKey, "PROVIDER_API_KEY")
	setString(&cfg.Opay.BaseURL, "OPAY_BASE_URL")
	setString(&cfg.Presence.BaseURL, "PRESENCE_URL")
	setString(&cfg.SMTP.Host, "SMTP_HOST")
	setString(&cfg.SMTP.Username, "SMTP_USERNAME")
	setString(&cfg.SMTP.Password, "SMTP_PASSWORD")
	setString(&cfg.SMTP.From, "SMTP_FROM")
	setString(&cfg.Telegram.BotToken, "TELEGRAM_BOT_TOKEN")

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CorsOrigins = cfg.CorsOrigins[:0]
		for _, origin := range strings.Split(v, ",") {
			if o := strings.TrimSpace(origin); o != "" {
				cfg.CorsOrigins = append(cfg.CorsOrigins, o)
			}
		}
	}
	if v := os.Getenv("DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid DEBUG: %w", err)
		}
		cfg.Debug = debug
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid SMTP_PORT: %w", err)
		}
		cfg.SMTP.Port = port
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		chatID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
		cfg.Telegram.ChatID = chatID
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
