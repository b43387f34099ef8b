package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	for _, k := range []string{"FALLBACK_SELIC", "SQLITE_PATH", "REDIS_ADDR", "TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID"} {
		t.Setenv(k, "")
	}
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Rates.FallbackSelic != 0.13 {
		t.Errorf("expected fallback 0.13, got %v", cfg.Rates.FallbackSelic)
	}
	if cfg.Rates.CDBPercent != 110 || cfg.Rates.LCIPercent != 95 {
		t.Errorf("expected 110/95, got %v/%v", cfg.Rates.CDBPercent, cfg.Rates.LCIPercent)
	}
	if cfg.Store.SQLitePath != "" || cfg.Store.RedisAddr != "" {
		t.Errorf("expected no store by default, got %+v", cfg.Store)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
	if err := cfg.ValidateTelegram(); err == nil {
		t.Error("expected telegram validation to fail without a token")
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeConfig(t, `
rates:
  cdb_percent: 120
  fallback_selic: 0.1
store:
  sqlite_path: data/rates.db
telegram:
  bot_token: file-token
  chat_id: "42"
simulation:
  horizon_months: 60
  objective: Aposentadoria
`)
	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")
	t.Setenv("FALLBACK_SELIC", "0.1125")
	t.Setenv("CRON_REPORT", "0 30 8 * * *")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Rates.CDBPercent != 120 {
		t.Errorf("expected cdb 120 from file, got %v", cfg.Rates.CDBPercent)
	}
	if cfg.Rates.FallbackSelic != 0.1125 {
		t.Errorf("expected env fallback 0.1125, got %v", cfg.Rates.FallbackSelic)
	}
	if cfg.Telegram.BotToken != "env-token" || cfg.Telegram.ChatID != "42" {
		t.Errorf("unexpected telegram section: %+v", cfg.Telegram)
	}
	if cfg.Schedule.ReportCron != "0 30 8 * * *" {
		t.Errorf("expected env report cron, got %q", cfg.Schedule.ReportCron)
	}
	if cfg.Simulation.HorizonMonths != 60 || cfg.Simulation.Objective != "Aposentadoria" {
		t.Errorf("unexpected simulation section: %+v", cfg.Simulation)
	}
	if err := cfg.ValidateTelegram(); err != nil {
		t.Errorf("unexpected telegram error: %v", err)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := writeConfig(t, "rates: [unclosed")
	if _, err := Load(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"fallback at -100%", func(c *Config) { c.Rates.FallbackSelic = -1 }},
		{"negative cdb percent", func(c *Config) { c.Rates.CDBPercent = -5 }},
		{"negative lci percent", func(c *Config) { c.Rates.LCIPercent = -1 }},
		{"negative initial", func(c *Config) { c.Simulation.InitialAmount = -1 }},
		{"negative contribution", func(c *Config) { c.Simulation.MonthlyContribution = -1 }},
		{"negative horizon", func(c *Config) { c.Simulation.HorizonMonths = -12 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}
