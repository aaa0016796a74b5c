package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Exchange struct {
		BaseURL string `yaml:"base_url"`
		Symbol  string `yaml:"symbol"`
	} `yaml:"exchange"`
	FX struct {
		BaseURL string `yaml:"base_url"`
		Pair    string `yaml:"pair"`
	} `yaml:"fx"`
	Sentiment struct {
		BaseURL      string `yaml:"base_url"`
		HistoryLimit int    `yaml:"history_limit"`
	} `yaml:"sentiment"`
	News struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
		Query   string `yaml:"query"`
		Lang    string `yaml:"lang"`
	} `yaml:"news"`
	Events struct {
		URL string `yaml:"url"`
	} `yaml:"events"`
	Poll struct {
		IntervalSeconds  int `yaml:"interval_seconds"`
		MaxAttempts      int `yaml:"max_attempts"`
		RetryDelayMillis int `yaml:"retry_delay_millis"`
	} `yaml:"poll"`
	Schedule struct {
		SnapshotCron string `yaml:"snapshot_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("BITMONITOR_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("EXCHANGE_BASE_URL"); v != "" {
		cfg.Exchange.BaseURL = v
	}
	if v := os.Getenv("FX_BASE_URL"); v != "" {
		cfg.FX.BaseURL = v
	}
	if v := os.Getenv("NEWS_API_KEY"); v != "" {
		cfg.News.APIKey = v
	}
	if v := os.Getenv("EVENTS_URL"); v != "" {
		cfg.Events.URL = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("POLL_INTERVAL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Poll.IntervalSeconds = n
		}
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Exchange.BaseURL == "" {
		cfg.Exchange.BaseURL = "https://api.binance.com"
	}
	if cfg.Exchange.Symbol == "" {
		cfg.Exchange.Symbol = "BTCUSDT"
	}
	if cfg.FX.BaseURL == "" {
		cfg.FX.BaseURL = "https://economia.awesomeapi.com.br"
	}
	if cfg.FX.Pair == "" {
		cfg.FX.Pair = "USD-BRL"
	}
	if cfg.Sentiment.BaseURL == "" {
		cfg.Sentiment.BaseURL = "https://api.alternative.me"
	}
	if cfg.Sentiment.HistoryLimit == 0 {
		cfg.Sentiment.HistoryLimit = 4
	}
	if cfg.News.BaseURL == "" {
		cfg.News.BaseURL = "https://gnews.io"
	}
	if cfg.News.Query == "" {
		cfg.News.Query = "bitcoin"
	}
	if cfg.News.Lang == "" {
		cfg.News.Lang = "pt"
	}
	if cfg.Poll.IntervalSeconds == 0 {
		cfg.Poll.IntervalSeconds = 60
	}
	if cfg.Poll.MaxAttempts == 0 {
		cfg.Poll.MaxAttempts = 3
	}
	if cfg.Poll.RetryDelayMillis == 0 {
		cfg.Poll.RetryDelayMillis = 1000
	}
	if cfg.Schedule.SnapshotCron == "" {
		cfg.Schedule.SnapshotCron = "0 0 * * * *"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/bitmonitor.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Exchange.BaseURL == "" {
		return fmt.Errorf("exchange.base_url is required")
	}
	if c.FX.BaseURL == "" {
		return fmt.Errorf("fx.base_url is required")
	}
	if c.Poll.IntervalSeconds <= 0 {
		return fmt.Errorf("poll.interval_seconds must be positive")
	}
	if c.Poll.MaxAttempts <= 0 {
		return fmt.Errorf("poll.max_attempts must be positive")
	}
	return nil
}

// PollInterval returns the quote polling period.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Poll.IntervalSeconds) * time.Second
}

// RetryDelay returns the fixed delay between fetch attempts.
func (c *Config) RetryDelay() time.Duration {
	return time.Duration(c.Poll.RetryDelayMillis) * time.Millisecond
}
