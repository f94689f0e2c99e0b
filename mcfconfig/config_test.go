package mcfconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoaderLoadDefaults(t *testing.T) {
	cfg, err := NewLoader().Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.NameBase != 1 {
		t.Errorf("expected default name_base 1, got %d", cfg.NameBase)
	}
	if cfg.EpsilonFactor != 8 {
		t.Errorf("expected default epsilon_factor 8, got %v", cfg.EpsilonFactor)
	}
	if !cfg.EpsFlowEnabled || !cfg.EpsCostEnabled {
		t.Errorf("expected eps flow/cost enabled by default")
	}
}

func TestLoaderLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "micado.yaml")

	content := `
name_base: 0
epsilon_factor: 12
balanced: true
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := NewLoader(WithConfigPaths(configPath)).Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.NameBase != 0 {
		t.Errorf("expected name_base 0 from file, got %d", cfg.NameBase)
	}
	if cfg.EpsilonFactor != 12 {
		t.Errorf("expected epsilon_factor 12 from file, got %v", cfg.EpsilonFactor)
	}
	if !cfg.Balanced {
		t.Errorf("expected balanced true from file")
	}
}

func TestLoaderEnvOverridesFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "micado.yaml")
	if err := os.WriteFile(configPath, []byte("epsilon_factor: 12\n"), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Setenv("MICADO_EPSILON_FACTOR", "10")

	cfg, err := NewLoader(WithConfigPaths(configPath)).Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.EpsilonFactor != 10 {
		t.Errorf("expected env override epsilon_factor 10, got %v", cfg.EpsilonFactor)
	}
}

func TestValidateRejectsBadNameBase(t *testing.T) {
	cfg := Default()
	cfg.NameBase = 2
	if err := cfg.Validate(); err == nil {
		t.Error("expected Validate to reject name_base=2")
	}
}

func TestValidateRejectsEpsilonFactorTooSmall(t *testing.T) {
	cfg := Default()
	cfg.EpsilonFactor = 1
	if err := cfg.Validate(); err == nil {
		t.Error("expected Validate to reject epsilon_factor<=1")
	}
}
