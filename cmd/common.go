package cmd

import (
	"log/slog"
	"os"

	"github.com/nikogura/resume-page/pkg/config"
	"github.com/nikogura/resume-page/pkg/datefmt"
	"github.com/nikogura/resume-page/pkg/sections"
	"github.com/pkg/errors"
)

// loadConfig loads the configuration named by --config.
func loadConfig() (cfg config.Config, err error) {
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return cfg, err
	}
	return cfg, err
}

// sectionOptions builds renderer options from the configuration.
func sectionOptions(cfg config.Config) (opts sections.Options, err error) {
	var dates *datefmt.Formatter
	dates, err = datefmt.New(cfg.Locale)
	if err != nil {
		return opts, err
	}

	opts = sections.Options{
		Dates:       dates,
		MailSubject: cfg.MailSubject,
	}
	return opts, err
}

// newLogger returns the JSON logger used by long-running commands.
func newLogger() (log *slog.Logger) {
	level := slog.LevelInfo
	if getVerbose() {
		level = slog.LevelDebug
	}
	log = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	return log
}

// flagOr returns flag when set, otherwise fallback.
func flagOr(flag, fallback string) (result string) {
	result = fallback
	if flag != "" {
		result = flag
	}
	return result
}
