package config

import (
	"errors"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type HTTP struct {
	Addr string `yaml:"addr"`
}

type Logging struct {
	Env       string `yaml:"env"`       // dev|prod
	Service   string `yaml:"service"`   // community-service
	Version   string `yaml:"version"`   // v0.1.0
	Backend   string `yaml:"backend"`   // std|zap
	AddSource bool   `yaml:"addSource"` // false|true
	Debug     bool   `yaml:"debug"`     // false|true
}

type Postgres struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

type Chat struct {
	MaxMessageLen   int    `yaml:"maxMessageLen"`
	HeartbeatWindow string `yaml:"heartbeatWindow"` // duration, например "60s"
}

type Config struct {
	HTTP     HTTP     `yaml:"http"`
	Logging  Logging  `yaml:"logging"`
	Postgres Postgres `yaml:"postgres"`
	Chat     Chat     `yaml:"chat"`
}

func LoadConfig() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "./config/config.yaml"
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.HTTP.Addr == "" {
		return errors.New("http.addr is required")
	}
	if c.Postgres.DSN == "" {
		return errors.New("postgres.dsn is required")
	}
	// установка дефолтов, если значения не указаны
	if c.Logging.Service == "" {
		c.Logging.Service = "community-service"
	}
	if c.Logging.Env == "" {
		c.Logging.Env = "dev"
	}
	if c.Logging.Version == "" {
		c.Logging.Version = "v0.1.0"
	}
	if c.Logging.Backend == "" {
		c.Logging.Backend = "std"
	}
	if c.Chat.MaxMessageLen <= 0 {
		c.Chat.MaxMessageLen = 5000
	}
	return nil
}

// HeartbeatWindow — окно «онлайн» для участников комнат.
func (c *Config) HeartbeatWindow() time.Duration {
	return parseDurationOr(60*time.Second, c.Chat.HeartbeatWindow)
}

func parseDurationOr(def time.Duration, s string) time.Duration {
	if d, err := time.ParseDuration(s); err == nil && d > 0 {
		return d
	}
	return def
}
