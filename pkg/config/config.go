package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/nikogura/resume-page/pkg/datefmt"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Defaults applied by Validate.
const (
	DefaultLocale         = "en-US"
	DefaultRecordPath     = "public/data/cv.json"
	DefaultTemplatePath   = "index.html.template"
	DefaultOutputPath     = "index.html"
	DefaultDescription    = "summary"
	DefaultMailSubject    = "Regarding your resume"
	DefaultListen         = ":8080"
	DefaultFetchTimeout   = 30
	DefaultExportDir      = "dist"
	DefaultConfigDir      = ".resume-page"
	DefaultConfigFileName = "config.json"
)

// Environment overrides.
const (
	EnvLocale = "RESUME_PAGE_LOCALE"
	EnvData   = "RESUME_PAGE_DATA"
	EnvListen = "RESUME_PAGE_LISTEN"
	EnvPort   = "PORT"
)

// Config represents the application configuration.
type Config struct {
	Locale      string       `json:"locale"`
	MailSubject string       `json:"mail_subject"`
	Data        DataConfig   `json:"data"`
	Build       BuildConfig  `json:"build"`
	Server      ServerConfig `json:"server"`
	Export      ExportConfig `json:"export"`
}

// DataConfig locates the resume record.
type DataConfig struct {
	// RecordPath is the file read at build time and published by the server.
	RecordPath string `json:"record_path"`
	// Source is what page loads fetch: a URL or a file path. Defaults to RecordPath.
	Source string `json:"source"`
}

// BuildConfig holds metadata build settings.
type BuildConfig struct {
	TemplatePath     string `json:"template_path"`
	OutputPath       string `json:"output_path"`
	DescriptionField string `json:"description_field"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Listen              string `json:"listen"`
	FetchTimeoutSeconds int    `json:"fetch_timeout_seconds"`
}

// ExportConfig holds PDF export settings.
type ExportConfig struct {
	ChromePath string `json:"chrome_path"`
	OutputDir  string `json:"output_dir"`
}

// FetchTimeout returns the record fetch timeout.
func (c *Config) FetchTimeout() (timeout time.Duration) {
	timeout = time.Duration(c.Server.FetchTimeoutSeconds) * time.Second
	return timeout
}

// DefaultPath returns $HOME/.resume-page/config.json.
func DefaultPath() (path string, err error) {
	var homeDir string
	homeDir, err = os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return path, err
	}
	path = filepath.Join(homeDir, DefaultConfigDir, DefaultConfigFileName)
	return path, err
}

// Default returns a configuration with every default applied.
func Default() (cfg Config) {
	_ = cfg.Validate()
	return cfg
}

// Load reads configuration from file with environment variable overrides.
// An explicit path must exist; a missing file at the default location
// yields the defaults.
func Load(configPath string) (cfg Config, err error) {
	path := configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	var data []byte
	data, err = os.ReadFile(path)
	switch {
	case err == nil:
		err = json.Unmarshal(data, &cfg)
		if err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", path)
			return cfg, err
		}
	case os.IsNotExist(err) && configPath == "":
		err = nil
	case os.IsNotExist(err):
		err = errors.Errorf("config file not found: %s (run 'resume-page init' to create)", path)
		return cfg, err
	default:
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	cfg.applyEnv()

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, err
}

func (c *Config) applyEnv() {
	if locale := os.Getenv(EnvLocale); locale != "" {
		c.Locale = locale
	}

	if source := os.Getenv(EnvData); source != "" {
		c.Data.Source = source
	}

	if port := os.Getenv(EnvPort); port != "" {
		c.Server.Listen = ":" + port
	}

	// The explicit listen address wins over PORT.
	if listen := os.Getenv(EnvListen); listen != "" {
		c.Server.Listen = listen
	}
}

// Validate checks the configuration and fills in defaults.
func (c *Config) Validate() (err error) {
	if c.Locale == "" {
		c.Locale = DefaultLocale
	}

	_, err = datefmt.New(c.Locale)
	if err != nil {
		return err
	}

	if c.MailSubject == "" {
		c.MailSubject = DefaultMailSubject
	}

	if c.Data.RecordPath == "" {
		c.Data.RecordPath = DefaultRecordPath
	}

	if c.Data.Source == "" {
		c.Data.Source = c.Data.RecordPath
	}

	if c.Build.TemplatePath == "" {
		c.Build.TemplatePath = DefaultTemplatePath
	}

	if c.Build.OutputPath == "" {
		c.Build.OutputPath = DefaultOutputPath
	}

	if c.Build.DescriptionField == "" {
		c.Build.DescriptionField = DefaultDescription
	}

	if c.Server.Listen == "" {
		c.Server.Listen = DefaultListen
	}

	if c.Server.FetchTimeoutSeconds < 0 {
		err = errors.Errorf("server.fetch_timeout_seconds must not be negative, got %d", c.Server.FetchTimeoutSeconds)
		return err
	}

	if c.Server.FetchTimeoutSeconds == 0 {
		c.Server.FetchTimeoutSeconds = DefaultFetchTimeout
	}

	if c.Export.OutputDir == "" {
		c.Export.OutputDir = DefaultExportDir
	}

	return err
}

// InitConfig creates a default configuration file.
func InitConfig(configPath string) (path string, err error) {
	path = configPath
	if path == "" {
		path, err = DefaultPath()
		if err != nil {
			return path, err
		}
	}

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	err = os.MkdirAll(dir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", dir)
		return path, err
	}

	// Check if file already exists
	_, err = os.Stat(path)
	if err == nil {
		err = errors.Errorf("config file already exists: %s", path)
		return path, err
	}

	var data []byte
	data, err = json.MarshalIndent(Default(), "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return path, err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return path, err
	}

	return path, err
}

// Set changes one key of the config file at path. Keys use dotted paths
// (e.g. "server.listen"). String fields store the value as given; other
// fields store it as JSON. A missing file is created.
func Set(path, key, value string) (err error) {
	var known []byte
	known, err = json.Marshal(Default())
	if err != nil {
		err = errors.Wrap(err, "failed to marshal default config")
		return err
	}

	target := gjson.GetBytes(known, key)
	if !target.Exists() {
		err = errors.Errorf("unknown config key: %s", key)
		return err
	}

	var data []byte
	data, err = os.ReadFile(path)
	if os.IsNotExist(err) {
		data = []byte("{}")
		err = nil
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return err
	}

	// String fields take the value verbatim, so "8080" stays a string.
	if target.Type != gjson.String && json.Valid([]byte(value)) {
		data, err = sjson.SetRawBytes(data, key, []byte(value))
	} else {
		data, err = sjson.SetBytes(data, key, value)
	}
	if err != nil {
		err = errors.Wrapf(err, "failed to set %s", key)
		return err
	}

	var cfg Config
	err = json.Unmarshal(data, &cfg)
	if err != nil {
		err = errors.Wrapf(err, "invalid value for %s: %s", key, value)
		return err
	}

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrapf(err, "invalid value for %s: %s", key, value)
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create config directory: %s", filepath.Dir(path))
		return err
	}

	err = os.WriteFile(path, pretty.Pretty(data), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write config file: %s", path)
		return err
	}

	return err
}
