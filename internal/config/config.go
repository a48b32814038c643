package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config top-level struct
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Event     EventConfig     `yaml:"event"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Mail      MailConfig      `yaml:"mail"`
	RateLimit RateLimitConfig `yaml:"ratelimit"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

// EventConfig describes the single dinner: when it happens and the shared
// secret gating the bulk-notification trigger.
type EventConfig struct {
	Date       string `yaml:"date"`      // YYYY-MM-DD
	SendTime   string `yaml:"send_time"` // HH:MM, 24h
	Timezone   string `yaml:"timezone"`
	CronSecret string `yaml:"cron_secret"`
}

// CatalogConfig sizes the generated universe. Attendees must not exceed
// Tables*Capacity or the draw refuses to run.
type CatalogConfig struct {
	Attendees int `yaml:"attendees"`
	Tables    int `yaml:"tables"`
	Capacity  int `yaml:"capacity"`
	Columns   int `yaml:"columns"`
	Rows      int `yaml:"rows"`
}

type MailConfig struct {
	APIKey         string `yaml:"api_key"`
	From           string `yaml:"from"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	SendDelayMs    int    `yaml:"send_delay_ms"`
}

type RateLimitConfig struct {
	RPS   int `yaml:"rps"`
	Burst int `yaml:"burst"`
}

// Timeout returns the outbound mail timeout as a duration.
func (m MailConfig) Timeout() time.Duration {
	if m.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(m.TimeoutSeconds) * time.Second
}

// SendDelay returns the pause between bulk sends.
func (m MailConfig) SendDelay() time.Duration {
	if m.SendDelayMs <= 0 {
		return 100 * time.Millisecond
	}
	return time.Duration(m.SendDelayMs) * time.Millisecond
}

// Load reads yaml file, then applies env overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if p := os.Getenv("PORT"); p != "" {
		if port, err := strconv.Atoi(p); err == nil {
			cfg.Server.Port = port
		}
	}
	if s := os.Getenv("CRON_SECRET"); s != "" {
		cfg.Event.CronSecret = s
	}
	if k := os.Getenv("RESEND_API_KEY"); k != "" {
		cfg.Mail.APIKey = k
	}
	if d := os.Getenv("EVENT_DATE"); d != "" {
		cfg.Event.Date = d
	}
	return &cfg, nil
}
