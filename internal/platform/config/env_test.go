package config

import (
	"strings"
	"testing"
	"time"
)

type envTestConfig struct {
	Port    int           `env:"TEST_PORT" envDefault:"123"`
	Timeout time.Duration `env:"TEST_TIMEOUT" envDefault:"2s"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnvWithPrefix(&cfg, "GATEWAY_"); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
	if cfg.Timeout != 2*time.Second {
		t.Fatalf("expected default timeout 2s, got %v", cfg.Timeout)
	}
}

func TestParseEnvWithPrefixReadsNamespacedVariables(t *testing.T) {
	t.Setenv("BAMBOOLEAD_GATEWAY_TEST_PORT", "9090")
	t.Setenv("TEST_PORT", "1")

	var cfg envTestConfig
	if err := ParseEnvWithPrefix(&cfg, "GATEWAY_"); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 9090 {
		t.Fatalf("port = %d, want 9090", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("BAMBOOLEAD_GATEWAY_TEST_PORT", "not-an-int")

	err := ParseEnvWithPrefix(&cfg, "GATEWAY_")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
