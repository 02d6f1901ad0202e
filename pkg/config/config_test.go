package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Check defaults
	if cfg.Env != "development" {
		t.Errorf("Expected Env to be development, got %s", cfg.Env)
	}

	if cfg.Report.GraphsDir != "graphs" {
		t.Errorf("Expected GraphsDir to be graphs, got %s", cfg.Report.GraphsDir)
	}

	if cfg.Report.ChartWidth != 1200 || cfg.Report.ChartHeight != 800 {
		t.Errorf("Expected chart 1200x800, got %dx%d", cfg.Report.ChartWidth, cfg.Report.ChartHeight)
	}

	if !cfg.Report.CleanInput {
		t.Error("Expected CleanInput to default to true")
	}
}

func TestLoadWithCustomValues(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("REPORT_GRAPHS_DIR", "/tmp/charts")
	t.Setenv("REPORT_CHART_WIDTH", "640")
	t.Setenv("REPORT_CLEAN_INPUT", "false")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Env != "production" {
		t.Errorf("Expected Env to be production, got %s", cfg.Env)
	}

	if cfg.Report.GraphsDir != "/tmp/charts" {
		t.Errorf("Expected GraphsDir to be /tmp/charts, got %s", cfg.Report.GraphsDir)
	}

	if cfg.Report.ChartWidth != 640 {
		t.Errorf("Expected ChartWidth to be 640, got %d", cfg.Report.ChartWidth)
	}

	if cfg.Report.CleanInput {
		t.Error("Expected CleanInput to be false")
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("Expected LogLevel to be debug, got %s", cfg.LogLevel)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.env")
	if err := os.WriteFile(path, []byte("REPORT_EXPORT_DIR=out/xlsx\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv("REPORT_EXPORT_DIR") })

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}

	if cfg.Report.ExportDir != "out/xlsx" {
		t.Errorf("Expected ExportDir to be out/xlsx, got %s", cfg.Report.ExportDir)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("Expected error for missing env file, got nil")
	}
}

func TestValidateInvalidEnv(t *testing.T) {
	t.Setenv("ENV", "invalid")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when ENV is invalid, got nil")
	}
}

func TestValidateChartSize(t *testing.T) {
	t.Setenv("REPORT_CHART_HEIGHT", "-5")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when chart height is negative, got nil")
	}
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("TEST_INT", "100")

	value := getEnvAsInt("TEST_INT", 50)
	if value != 100 {
		t.Errorf("Expected value to be 100, got %d", value)
	}

	t.Setenv("TEST_INT", "abc")
	if value := getEnvAsInt("TEST_INT", 50); value != 50 {
		t.Errorf("Expected fallback 50, got %d", value)
	}
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")

	value := getEnvAsBool("TEST_BOOL", false)
	if value != true {
		t.Errorf("Expected value to be true, got %v", value)
	}
}
