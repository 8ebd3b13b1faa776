// Load envs from .env
// Load YAML config
// Apply env overrides and defaults

package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Search profile
	CityFilter     string   `yaml:"city_filter"`
	WindowDays     int      `yaml:"time_window_days"`
	TechPref       []string `yaml:"alignment_tech_pref"`
	SectorPriority []string `yaml:"sector_priority"`

	// Source selection; empty means all registered sources
	Sources           []string `yaml:"sources"`
	LinkedInSearchURL string   `yaml:"linkedin_search_url"`

	// Artifact sink
	ReportPrefix  string `yaml:"report_prefix"`
	ReportDir     string `yaml:"report_dir"`
	SupabaseURL   string `yaml:"supabase_url"`
	SupabaseKey   string `yaml:"supabase_key"`
	StorageBucket string `yaml:"storage_bucket"`

	// Notification
	NotifyProvider string `yaml:"notify_provider"` // "", "smtp", "telegram"
	EmailTo        string `yaml:"email_to"`
	SMTPHost       string `yaml:"smtp_host"`
	SMTPPort       string `yaml:"smtp_port"`
	SMTPUser       string `yaml:"smtp_user"`
	SMTPPassword   string `yaml:"smtp_password"`
	TelegramToken  string `yaml:"telegram_token"`
	TelegramChatID int64  `yaml:"telegram_chat_id"`
	ReportPDF      bool   `yaml:"report_pdf"`
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Printf("Warning: Could not read config.yaml: %v", err)
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			log.Fatalf("Error parsing config.yaml: %v", err)
		}
	}

	//Override with env vars
	overrideString(&cfg.CityFilter, "CITY_FILTER")
	overrideString(&cfg.LinkedInSearchURL, "LINKEDIN_SEARCH_URL")
	overrideString(&cfg.ReportPrefix, "REPORT_PREFIX")
	overrideString(&cfg.ReportDir, "REPORT_DIR")
	overrideString(&cfg.SupabaseURL, "SUPABASE_URL")
	overrideString(&cfg.SupabaseKey, "SUPABASE_KEY")
	overrideString(&cfg.StorageBucket, "STORAGE_BUCKET")
	overrideString(&cfg.NotifyProvider, "NOTIFY_PROVIDER")
	overrideString(&cfg.EmailTo, "EMAIL_TO")
	overrideString(&cfg.SMTPHost, "SMTP_HOST")
	overrideString(&cfg.SMTPPort, "SMTP_PORT")
	overrideString(&cfg.SMTPUser, "SMTP_USER")
	overrideString(&cfg.SMTPPassword, "SMTP_PASSWORD")
	overrideString(&cfg.TelegramToken, "TELEGRAM_BOT_TOKEN")

	overrideList(&cfg.TechPref, "ALIGNMENT_TECH_PREF")
	overrideList(&cfg.SectorPriority, "SECTOR_PRIORITY")
	overrideList(&cfg.Sources, "SOURCES")

	if v := os.Getenv("TIME_WINDOW_DAYS"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("Invalid TIME_WINDOW_DAYS: %v", err)
		}
		cfg.WindowDays = days
	}

	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	if v := os.Getenv("REPORT_PDF"); v != "" {
		cfg.ReportPDF = v == "1" || strings.EqualFold(v, "true")
	}

	//Set default values if not set
	if cfg.CityFilter == "" {
		cfg.CityFilter = "Sydney"
	}
	if cfg.WindowDays == 0 {
		cfg.WindowDays = 7
	}
	if cfg.ReportPrefix == "" {
		cfg.ReportPrefix = "jobs_report"
	}
	if cfg.ReportDir == "" {
		cfg.ReportDir = "reports"
	}
	if len(cfg.TechPref) == 0 {
		cfg.TechPref = []string{"azure", "fabric", "powerbi"}
	}
	if cfg.StorageBucket == "" {
		cfg.StorageBucket = "reports"
	}

	return cfg
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func overrideList(dst *[]string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = splitList(v)
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
