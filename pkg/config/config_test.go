package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, cfg any) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal test config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return configPath
}

func TestLoad(t *testing.T) {
	testConfig := Config{
		Locale: "en-GB",
		Data: DataConfig{
			RecordPath: "data/cv.json",
		},
		Build: BuildConfig{
			TemplatePath: "shell.html.template",
		},
		Server: ServerConfig{
			FetchTimeoutSeconds: 5,
		},
	}
	configPath := writeConfig(t, testConfig)

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Locale != "en-GB" {
		t.Errorf("Expected locale en-GB, got %s", cfg.Locale)
	}

	if cfg.Data.Source != "data/cv.json" {
		t.Errorf("Expected source to default to record path, got %s", cfg.Data.Source)
	}

	if cfg.Build.TemplatePath != "shell.html.template" {
		t.Errorf("Expected template path shell.html.template, got %s", cfg.Build.TemplatePath)
	}

	if cfg.Build.OutputPath != DefaultOutputPath {
		t.Errorf("Expected output path %s, got %s", DefaultOutputPath, cfg.Build.OutputPath)
	}

	if cfg.FetchTimeout() != 5*time.Second {
		t.Errorf("Expected fetch timeout 5s, got %s", cfg.FetchTimeout())
	}
}

func TestLoadNonexistent(t *testing.T) {
	_, err := Load("/nonexistent/path/config.json")
	if err == nil {
		t.Error("Expected error loading nonexistent config, got nil")
	}
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Expected defaults without a config file, got %v", err)
	}

	if cfg.Data.RecordPath != DefaultRecordPath {
		t.Errorf("Expected record path %s, got %s", DefaultRecordPath, cfg.Data.RecordPath)
	}
}

func TestLoadMalformed(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(configPath, []byte("{not json"), 0600)
	if err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err = Load(configPath)
	if err == nil {
		t.Error("Expected error loading malformed config, got nil")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	configPath := writeConfig(t, Config{Locale: "en-US"})

	t.Setenv(EnvLocale, "fr")
	t.Setenv(EnvData, "https://example.com/cv.json")
	t.Setenv(EnvPort, "9000")

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Locale != "fr" {
		t.Errorf("Expected locale fr, got %s", cfg.Locale)
	}

	if cfg.Data.Source != "https://example.com/cv.json" {
		t.Errorf("Expected source from env, got %s", cfg.Data.Source)
	}

	if cfg.Data.RecordPath != DefaultRecordPath {
		t.Errorf("Expected record path untouched, got %s", cfg.Data.RecordPath)
	}

	if cfg.Server.Listen != ":9000" {
		t.Errorf("Expected listen :9000, got %s", cfg.Server.Listen)
	}

	t.Setenv(EnvListen, "127.0.0.1:7000")

	cfg, err = Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Server.Listen != "127.0.0.1:7000" {
		t.Errorf("Expected listen 127.0.0.1:7000, got %s", cfg.Server.Listen)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		config    Config
		wantError bool
	}{
		{
			name:      "empty config gets defaults",
			config:    Config{},
			wantError: false,
		},
		{
			name:      "posix locale",
			config:    Config{Locale: "de_DE.UTF-8"},
			wantError: false,
		},
		{
			name:      "malformed locale",
			config:    Config{Locale: "not a locale!"},
			wantError: true,
		},
		{
			name:      "negative timeout",
			config:    Config{Server: ServerConfig{FetchTimeoutSeconds: -1}},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestValidateSetsDefaults(t *testing.T) {
	cfg := Config{}

	err := cfg.Validate()
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	if cfg.Locale != DefaultLocale {
		t.Errorf("Expected locale %s, got %s", DefaultLocale, cfg.Locale)
	}

	if cfg.MailSubject != DefaultMailSubject {
		t.Errorf("Expected mail subject %q, got %q", DefaultMailSubject, cfg.MailSubject)
	}

	if cfg.Build.DescriptionField != DefaultDescription {
		t.Errorf("Expected description field %s, got %s", DefaultDescription, cfg.Build.DescriptionField)
	}

	if cfg.Server.Listen != DefaultListen {
		t.Errorf("Expected listen %s, got %s", DefaultListen, cfg.Server.Listen)
	}

	if cfg.Export.OutputDir != DefaultExportDir {
		t.Errorf("Expected export dir %s, got %s", DefaultExportDir, cfg.Export.OutputDir)
	}
}

func TestInitConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "config.json")

	path, err := InitConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to init config: %v", err)
	}

	if path != configPath {
		t.Errorf("Expected path %s, got %s", configPath, path)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load initialized config: %v", err)
	}

	if cfg.Locale != DefaultLocale {
		t.Errorf("Expected locale %s, got %s", DefaultLocale, cfg.Locale)
	}

	_, err = InitConfig(configPath)
	if err == nil {
		t.Error("Expected error initializing over an existing config, got nil")
	}
}

func TestSet(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")

	err := Set(configPath, "server.listen", ":9999")
	if err != nil {
		t.Fatalf("Failed to set string key: %v", err)
	}

	err = Set(configPath, "server.fetch_timeout_seconds", "12")
	if err != nil {
		t.Fatalf("Failed to set numeric key: %v", err)
	}

	err = Set(configPath, "locale", "en-GB")
	if err != nil {
		t.Fatalf("Failed to set locale: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Server.Listen != ":9999" {
		t.Errorf("Expected listen :9999, got %s", cfg.Server.Listen)
	}

	if cfg.Server.FetchTimeoutSeconds != 12 {
		t.Errorf("Expected timeout 12, got %d", cfg.Server.FetchTimeoutSeconds)
	}

	if cfg.Locale != "en-GB" {
		t.Errorf("Expected locale en-GB, got %s", cfg.Locale)
	}
}

func TestSetNumericLookingStrings(t *testing.T) {
	t.Setenv(EnvPort, "")
	t.Setenv(EnvListen, "")
	configPath := filepath.Join(t.TempDir(), "config.json")

	err := Set(configPath, "server.listen", "8080")
	if err != nil {
		t.Fatalf("Failed to set listen: %v", err)
	}

	err = Set(configPath, "mail_subject", "2024")
	if err != nil {
		t.Fatalf("Failed to set mail subject: %v", err)
	}

	err = Set(configPath, "export.chrome_path", "true")
	if err != nil {
		t.Fatalf("Failed to set chrome path: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Server.Listen != "8080" {
		t.Errorf("Expected listen 8080, got %s", cfg.Server.Listen)
	}

	if cfg.MailSubject != "2024" {
		t.Errorf("Expected mail subject 2024, got %s", cfg.MailSubject)
	}

	if cfg.Export.ChromePath != "true" {
		t.Errorf("Expected chrome path true, got %s", cfg.Export.ChromePath)
	}
}

func TestSetRejects(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.json")

	err := Set(configPath, "api_key", "x")
	if err == nil {
		t.Error("Expected error for unknown key, got nil")
	}

	err = Set(configPath, "server.fetch_timeout_seconds", "soon")
	if err == nil {
		t.Error("Expected error for mistyped value, got nil")
	}

	err = Set(configPath, "server.fetch_timeout_seconds", "-5")
	if err == nil {
		t.Error("Expected error for invalid value, got nil")
	}

	_, err = os.Stat(configPath)
	if !os.IsNotExist(err) {
		t.Error("Expected no config file after rejected sets")
	}
}
