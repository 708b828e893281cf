package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Типы хранилища
const (
	StorageMemory   = "memory"
	StorageJSON     = "json"
	StoragePostgres = "postgres"
)

// Режимы получения обновлений Telegram
const (
	ModePolling = "polling"
	ModeWebhook = "webhook"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port string `yaml:"port"`
	} `yaml:"server"`
	TelegramBot struct {
		Token       string        `yaml:"token"`
		Mode        string        `yaml:"mode"`
		WebhookURL  string        `yaml:"webhook_url"`
		ListenAddr  string        `yaml:"listen_addr"`
		PollTimeout time.Duration `yaml:"poll_timeout"`
	} `yaml:"telegram_bot"`
	Storage struct {
		Type string `yaml:"type"`
		Path string `yaml:"path"`
	} `yaml:"storage"`
	Database struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"dbname"`
		URL      string `yaml:"url"`
	} `yaml:"database"`
	Interview struct {
		QuestionsPerTier int           `yaml:"questions_per_tier"`
		TickInterval     time.Duration `yaml:"tick_interval"`
	} `yaml:"interview"`
	Debug bool `yaml:"debug"`
}

// Default конфигурация, если файл не задан
func Default() *Config {
	c := &Config{}
	c.Server.Port = "8080"
	c.TelegramBot.Mode = ModePolling
	c.TelegramBot.ListenAddr = ":8443"
	c.TelegramBot.PollTimeout = 10 * time.Second
	c.Storage.Type = StorageJSON
	c.Storage.Path = "data/interview.json"
	c.Database.Port = "5432"
	c.Interview.QuestionsPerTier = 2
	c.Interview.TickInterval = time.Second
	return c
}

// LoadConfig читает YAML поверх значений по умолчанию, затем применяет переменные окружения.
// Отсутствующий файл не ошибка.
func LoadConfig(filename string) (*Config, error) {
	config := Default()

	if filename != "" {
		f, err := os.Open(filename)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to open config %s: %w", filename, err)
		default:
			defer func(f *os.File) {
				err := f.Close()
				if err != nil {
					fmt.Println("f.Close() failed ", err)
				}
			}(f)
			if err := yaml.NewDecoder(f).Decode(config); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", filename, err)
			}
		}
	}

	applyEnv(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnv переопределяет значения переменными окружения (в т.ч. из .env)
func applyEnv(c *Config) {
	setString(&c.Server.Host, "SERVER_HOST")
	setString(&c.Server.Port, "SERVER_PORT")
	setString(&c.TelegramBot.Token, "TELEGRAM_BOT_TOKEN")
	setString(&c.TelegramBot.Mode, "BOT_MODE")
	setString(&c.TelegramBot.WebhookURL, "WEBHOOK_URL")
	setString(&c.TelegramBot.ListenAddr, "LISTEN_ADDR")
	setString(&c.Storage.Type, "STORAGE_TYPE")
	setString(&c.Storage.Path, "STORAGE_PATH")
	setString(&c.Database.URL, "DATABASE_URL")

	if v := os.Getenv("QUESTIONS_PER_TIER"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Interview.QuestionsPerTier = n
		}
	}
	if v := os.Getenv("TICK_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Interview.TickInterval = d
		}
	}
	if v := os.Getenv("DEBUG"); v != "" {
		c.Debug = v == "true" || v == "1"
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func (c *Config) Validate() error {
	c.Storage.Type = strings.ToLower(strings.TrimSpace(c.Storage.Type))
	switch c.Storage.Type {
	case StorageMemory:
	case StorageJSON:
		if c.Storage.Path == "" {
			return fmt.Errorf("storage.path is required for json storage")
		}
	case StoragePostgres:
		if c.DatabaseURL() == "" {
			return fmt.Errorf("database settings are required for postgres storage")
		}
	default:
		return fmt.Errorf("unknown storage type %q", c.Storage.Type)
	}

	if c.Interview.QuestionsPerTier < 1 {
		return fmt.Errorf("interview.questions_per_tier must be at least 1")
	}
	if c.Interview.TickInterval <= 0 {
		return fmt.Errorf("interview.tick_interval must be positive")
	}

	switch c.TelegramBot.Mode {
	case ModePolling, "":
		c.TelegramBot.Mode = ModePolling
	case ModeWebhook:
		if c.TelegramBot.Token != "" && c.TelegramBot.WebhookURL == "" {
			return fmt.Errorf("telegram_bot.webhook_url is required in webhook mode")
		}
	default:
		return fmt.Errorf("unknown telegram bot mode %q", c.TelegramBot.Mode)
	}
	return nil
}

// DatabaseURL строка подключения к PostgreSQL
func (c *Config) DatabaseURL() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}
	if c.Database.Host == "" || c.Database.Name == "" {
		return ""
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		c.Database.User, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}

// Addr адрес HTTP сервера
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
