package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("ANALYSIS_GATEWAY_MOCK", "true")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("ANALYSIS_TIMEOUT", "")
	t.Setenv("RABBITMQ_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Store.Driver != StoreDriverDynamoDB {
		t.Fatalf("expected dynamodb driver, got %q", cfg.Store.Driver)
	}
	if cfg.Addr() != ":8080" {
		t.Fatalf("unexpected addr: %s", cfg.Addr())
	}
	if cfg.Analysis.Timeout != 30*time.Second || !cfg.Analysis.MockMode {
		t.Fatalf("unexpected analysis config: %+v", cfg.Analysis)
	}
	if cfg.Images.MaxBytes != 10<<20 {
		t.Fatalf("unexpected image limit: %d", cfg.Images.MaxBytes)
	}
	if cfg.RabbitMQ.URL != "" || cfg.RabbitMQ.Exchange != "measures.events" {
		t.Fatalf("unexpected rabbitmq config: %+v", cfg.RabbitMQ)
	}
}

func TestLoad_Validation(t *testing.T) {
	cases := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "unknown driver",
			env:     map[string]string{"STORE_DRIVER": "mysql", "ANALYSIS_GATEWAY_MOCK": "1"},
			wantErr: "STORE_DRIVER",
		},
		{
			name:    "postgres without url",
			env:     map[string]string{"STORE_DRIVER": "postgres", "DATABASE_URL": "", "ANALYSIS_GATEWAY_MOCK": "1"},
			wantErr: "DATABASE_URL",
		},
		{
			name:    "missing gemini key",
			env:     map[string]string{"STORE_DRIVER": "memory", "ANALYSIS_GATEWAY_MOCK": "", "GEMINI_API_KEY": ""},
			wantErr: "GEMINI_API_KEY",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error mentioning %s, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/measures")
	t.Setenv("DB_AUTO_MIGRATE", "yes")
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("ANALYSIS_GATEWAY_MOCK", "off")
	t.Setenv("ANALYSIS_TIMEOUT", "45")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Store.Driver != StoreDriverPostgres || !cfg.Store.AutoMigrate {
		t.Fatalf("unexpected store config: %+v", cfg.Store)
	}
	if cfg.Analysis.MockMode || cfg.Analysis.Timeout != 45*time.Second {
		t.Fatalf("unexpected analysis config: %+v", cfg.Analysis)
	}
	if cfg.Addr() != ":9090" {
		t.Fatalf("unexpected addr: %s", cfg.Addr())
	}
}
