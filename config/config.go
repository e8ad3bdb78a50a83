package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Name     string `yaml:"name"`
	Telegram Telegram
	Server   Server
	Database Database
	Pinger   Pinger
}

type Telegram struct {
	Token         string `yaml:"token"`
	AdminID       int64  `yaml:"admin_id"`
	ProviderToken string `yaml:"provider_token"`
	WebhookSecret string `yaml:"webhook_secret"`
	UsePolling    bool   `yaml:"use_polling"`
	Debug         bool   `yaml:"debug"`
}

type Server struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	BaseURL     string `yaml:"base_url"`
	AdminToken  string `yaml:"admin_token"`
	FrontendURL string `yaml:"frontend_url"`
}

type Database struct {
	Type    string `yaml:"type"`
	Address string `yaml:"address"`
	Cache   string `yaml:"cache"`
	Schema  string `yaml:"schema"`
	MaxConn int    `yaml:"max_conn"`
}

type Pinger struct {
	Disabled        bool `yaml:"disabled"`
	IntervalMinutes int  `yaml:"interval_minutes"`
}

func NewConfig() (*Config, error) {
	// Optional .env for local development, ignored when absent.
	_ = godotenv.Load()

	filename := "./config/config.yaml"
	if envFilename := os.Getenv("CONFIG_PATH"); envFilename != "" {
		filename = envFilename
	}

	var conf Config
	data, err := os.ReadFile(filename)
	if err == nil {
		if err := yaml.Unmarshal(data, &conf); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	conf.applyEnv()
	conf.applyDefaults()

	return &conf, nil
}

// applyEnv lets deployment environment variables win over the yaml file,
// matching the hosting platform's configuration surface.
func (c *Config) applyEnv() {
	if v := os.Getenv("BOT_TOKEN"); v != "" {
		c.Telegram.Token = v
	}
	if v := os.Getenv("ADMIN_ID"); v != "" {
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Telegram.AdminID = id
		}
	}
	if v := os.Getenv("PROVIDER_TOKEN"); v != "" {
		c.Telegram.ProviderToken = v
	}
	if v := os.Getenv("WEBHOOK_SECRET_TOKEN"); v != "" {
		c.Telegram.WebhookSecret = v
	}
	if v := os.Getenv("USE_POLLING"); v != "" {
		c.Telegram.UsePolling = isTruthy(v)
	}
	if v := os.Getenv("ADMIN_TOKEN"); v != "" {
		c.Server.AdminToken = v
	}
	if v := os.Getenv("WEBHOOK_URL"); v != "" {
		c.Server.BaseURL = v
	}
	if v := os.Getenv("FRONTEND_URL"); v != "" {
		c.Server.FrontendURL = v
	}
	if v := os.Getenv("HOST"); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("DATABASE_ADDRESS"); v != "" {
		c.Database.Address = v
	}
	if v := os.Getenv("DISABLE_PINGER"); v != "" {
		c.Pinger.Disabled = isTruthy(v)
	}
}

func (c *Config) applyDefaults() {
	if c.Name == "" {
		c.Name = "Y.I.T.I.O Bot"
	}
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 10000
	}
	if c.Server.BaseURL == "" {
		// Render exposes the public URL of the service through its own
		// environment, try that before giving up.
		if name := os.Getenv("RENDER_SERVICE_NAME"); name != "" {
			c.Server.BaseURL = "https://" + name + ".onrender.com"
		} else if url := os.Getenv("RENDER_EXTERNAL_URL"); url != "" {
			c.Server.BaseURL = url
		}
	}
	c.Server.BaseURL = strings.TrimRight(c.Server.BaseURL, "/")
	if c.Database.Type == "" {
		c.Database.Type = "file:"
	}
	if c.Database.Address == "" {
		c.Database.Address = "./yitio.db"
	}
	if c.Database.Cache == "" {
		c.Database.Cache = "shared"
	}
	if c.Database.Schema == "" {
		c.Database.Schema = "./config/schema.sql"
	}
	if c.Database.MaxConn == 0 {
		c.Database.MaxConn = 1
	}
	if c.Pinger.IntervalMinutes == 0 {
		c.Pinger.IntervalMinutes = 8
	}
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "1", "yes":
		return true
	}
	return false
}
