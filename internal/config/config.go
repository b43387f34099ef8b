package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Rates struct {
		SourceURL     string  `yaml:"source_url"`
		FallbackSelic float64 `yaml:"fallback_selic"`
		Proxy         string  `yaml:"proxy"`
		CDBPercent    float64 `yaml:"cdb_percent"`
		LCIPercent    float64 `yaml:"lci_percent"`
	} `yaml:"rates"`
	Store struct {
		SQLitePath string `yaml:"sqlite_path"`
		RedisAddr  string `yaml:"redis_addr"`
		RedisKey   string `yaml:"redis_key"`
	} `yaml:"store"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
		ReportCron  string `yaml:"report_cron"`
	} `yaml:"schedule"`
	Simulation struct {
		InitialAmount       float64 `yaml:"initial_amount"`
		MonthlyContribution float64 `yaml:"monthly_contribution"`
		HorizonMonths       int     `yaml:"horizon_months"`
		Objective           string  `yaml:"objective"`
	} `yaml:"simulation"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file yields the defaults.
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
	if v := os.Getenv("SELIC_SOURCE_URL"); v != "" {
		cfg.Rates.SourceURL = v
	}
	if v := os.Getenv("FALLBACK_SELIC"); v != "" {
		var rate float64
		if _, err := fmt.Sscanf(v, "%f", &rate); err == nil {
			cfg.Rates.FallbackSelic = rate
		}
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Rates.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Store.SQLitePath = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Store.RedisAddr = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("CRON_REFRESH"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("CRON_REPORT"); v != "" {
		cfg.Schedule.ReportCron = v
	}

	// Defaults
	if cfg.Rates.SourceURL == "" {
		cfg.Rates.SourceURL = "https://api.bcb.gov.br/dados/serie/bcdata.sgs.432/dados/ultimos/1?formato=json"
	}
	if cfg.Rates.FallbackSelic == 0 {
		cfg.Rates.FallbackSelic = 0.13
	}
	if cfg.Rates.CDBPercent == 0 {
		cfg.Rates.CDBPercent = 110
	}
	if cfg.Rates.LCIPercent == 0 {
		cfg.Rates.LCIPercent = 95
	}
	if cfg.Store.RedisKey == "" {
		cfg.Store.RedisKey = "investsim:selic:latest"
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 0 9 * * 1-5"
	}
	if cfg.Schedule.ReportCron == "" {
		cfg.Schedule.ReportCron = "0 0 10 * * 1"
	}
	if cfg.Simulation.InitialAmount == 0 {
		cfg.Simulation.InitialAmount = 1000
	}
	if cfg.Simulation.MonthlyContribution == 0 {
		cfg.Simulation.MonthlyContribution = 500
	}
	if cfg.Simulation.HorizonMonths == 0 {
		cfg.Simulation.HorizonMonths = 24
	}
	if cfg.Simulation.Objective == "" {
		cfg.Simulation.Objective = "Comprar uma casa"
	}

	return cfg, nil
}

// Validate checks the fields every command depends on.
func (c *Config) Validate() error {
	if c.Rates.FallbackSelic <= -1 {
		return fmt.Errorf("rates.fallback_selic must be above -1")
	}
	if c.Rates.CDBPercent <= 0 {
		return fmt.Errorf("rates.cdb_percent must be positive")
	}
	if c.Rates.LCIPercent <= 0 {
		return fmt.Errorf("rates.lci_percent must be positive")
	}
	if c.Simulation.InitialAmount < 0 {
		return fmt.Errorf("simulation.initial_amount must not be negative")
	}
	if c.Simulation.MonthlyContribution < 0 {
		return fmt.Errorf("simulation.monthly_contribution must not be negative")
	}
	if c.Simulation.HorizonMonths <= 0 {
		return fmt.Errorf("simulation.horizon_months must be positive")
	}
	return nil
}

// ValidateTelegram checks the fields the scheduled reporter needs.
func (c *Config) ValidateTelegram() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	return nil
}
