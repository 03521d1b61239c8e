package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/nikogura/resume-page/pkg/config"
	"github.com/nikogura/resume-page/pkg/meta"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var buildRecord string

//nolint:gochecknoglobals // Cobra boilerplate
var buildTemplate string

//nolint:gochecknoglobals // Cobra boilerplate
var buildOutput string

//nolint:gochecknoglobals // Cobra boilerplate
var buildDescField string

//nolint:gochecknoglobals // Cobra boilerplate
var buildWatch bool

//nolint:gochecknoglobals // Cobra boilerplate
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Stamp the resume record into the page shell",
	Long: `Read the resume record and the page template, replace the %TITLE%,
%OG_TITLE%, %OG_DESC% and %OG_URL% tokens with HTML-escaped values from the
record, and write the page shell.

Nothing is written when the record or template cannot be read or parsed.

Example:
  resume-page build
  resume-page build --record public/data/cv.json --template index.html.template --output index.html
  resume-page build --watch`,
	RunE: runBuild,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringVar(&buildRecord, "record", "", "Resume record (default from config)")
	buildCmd.Flags().StringVar(&buildTemplate, "template", "", "Page template (default from config)")
	buildCmd.Flags().StringVar(&buildOutput, "output", "", "Output page shell (default from config)")
	buildCmd.Flags().StringVar(&buildDescField, "description-field", "", "Record field used for og:description (default from config)")
	buildCmd.Flags().BoolVar(&buildWatch, "watch", false, "Rebuild whenever the record or template changes")
}

// buildOptions merges build flags over the configuration.
func buildOptions(cfg config.Config) (opts meta.Options) {
	opts = meta.Options{
		RecordPath:       flagOr(buildRecord, cfg.Data.RecordPath),
		TemplatePath:     flagOr(buildTemplate, cfg.Build.TemplatePath),
		OutputPath:       flagOr(buildOutput, cfg.Build.OutputPath),
		DescriptionField: flagOr(buildDescField, cfg.Build.DescriptionField),
	}
	return opts
}

func runBuild(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	opts := buildOptions(cfg)

	if getVerbose() {
		fmt.Printf("Record: %s\n", opts.RecordPath)
		fmt.Printf("Template: %s\n", opts.TemplatePath)
	}

	var values meta.Values
	values, err = meta.Build(opts)
	if err != nil {
		err = errors.Wrap(err, "build failed")
		return err
	}

	fmt.Printf("Wrote %s\n", opts.OutputPath)
	if getVerbose() {
		printValues(values)
	}

	if !buildWatch {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := newLogger()
	var watcher *meta.Watcher
	watcher, err = meta.NewWatcher(opts, meta.DefaultDebounce, log, func(_ meta.Values, buildErr error) {
		if buildErr == nil {
			fmt.Printf("Rebuilt %s\n", opts.OutputPath)
		}
	})
	if err != nil {
		return err
	}

	fmt.Println("Watching for changes (Ctrl-C to stop)...")
	err = watcher.Run(ctx)
	return err
}

func printValues(values meta.Values) {
	fmt.Printf("  title:          %s\n", values.Title)
	fmt.Printf("  og:title:       %s\n", values.SocialTitle)
	fmt.Printf("  og:description: %s\n", values.SocialDescription)
	fmt.Printf("  og:url:         %s\n", values.SocialURL)
}
