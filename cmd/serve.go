package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nikogura/resume-page/pkg/config"
	"github.com/nikogura/resume-page/pkg/cv"
	"github.com/nikogura/resume-page/pkg/meta"
	"github.com/nikogura/resume-page/pkg/metrics"
	"github.com/nikogura/resume-page/pkg/sections"
	"github.com/nikogura/resume-page/pkg/server"
	"github.com/pkg/errors"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var serveListen string

//nolint:gochecknoglobals // Cobra boilerplate
var serveSource string

//nolint:gochecknoglobals // Cobra boilerplate
var serveWatch bool

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the resume page over HTTP",
	Long: `Serve the built page shell with the resume mounted into it. Every page view
loads the record once; a failed load shows the error message in place of the
resume.

Routes:
  GET /              the page
  GET /data/cv.json  the raw record
  GET /healthz       liveness
  GET /metrics       Prometheus metrics

With --watch the page shell is rebuilt whenever the record or template changes.

Example:
  resume-page build && resume-page serve
  PORT=3000 resume-page serve --watch`,
	RunE: runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveListen, "listen", "", "Listen address (default from config)")
	serveCmd.Flags().StringVar(&serveSource, "source", "", "Record URL or file loaded per page view (default from config)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false, "Rebuild the page shell when the record or template changes")
}

func runServe(cmd *cobra.Command, args []string) (err error) {
	log := newLogger()

	var cfg config.Config
	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	var opts sections.Options
	opts, err = sectionOptions(cfg)
	if err != nil {
		return err
	}

	reg := prom.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewRecorder(reg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	buildOpts := meta.Options{
		RecordPath:       cfg.Data.RecordPath,
		TemplatePath:     cfg.Build.TemplatePath,
		OutputPath:       cfg.Build.OutputPath,
		DescriptionField: cfg.Build.DescriptionField,
	}

	if serveWatch {
		_, err = meta.Build(buildOpts)
		recorder.ObserveBuild(err)
		if err != nil {
			err = errors.Wrap(err, "initial build failed")
			return err
		}

		var watcher *meta.Watcher
		watcher, err = meta.NewWatcher(buildOpts, meta.DefaultDebounce, log, func(_ meta.Values, buildErr error) {
			recorder.ObserveBuild(buildErr)
		})
		if err != nil {
			return err
		}

		go func() {
			watchErr := watcher.Run(ctx)
			if watchErr != nil {
				log.Error("watcher stopped", "error", watchErr)
			}
		}()
	}

	shellPath := cfg.Build.OutputPath
	_, statErr := os.Stat(shellPath)
	if statErr != nil {
		log.Warn("page shell not built, using the default shell", "path", shellPath)
		shellPath = ""
	}

	srv := server.NewServer(server.Options{
		Loader:     cv.NewFetcher(cfg.FetchTimeout()),
		Source:     flagOr(serveSource, cfg.Data.Source),
		RecordPath: cfg.Data.RecordPath,
		ShellPath:  shellPath,
		Sections:   opts,
		Metrics:    recorder,
		Log:        log,
	})

	httpServer := &http.Server{
		Addr:              flagOr(serveListen, cfg.Server.Listen),
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.FetchTimeout() + 30*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		<-ctx.Done()
		log.Info("shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting resume-page", "addr", httpServer.Addr, "source", flagOr(serveSource, cfg.Data.Source))
	err = httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		err = errors.Wrap(err, "server error")
		return err
	}

	err = nil
	return err
}
