package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nikogura/resume-page/pkg/config"
	"github.com/nikogura/resume-page/pkg/renderer"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var exportSource string

//nolint:gochecknoglobals // Cobra boilerplate
var exportShell string

//nolint:gochecknoglobals // Cobra boilerplate
var exportOutputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var exportChrome string

//nolint:gochecknoglobals // Cobra boilerplate
var exportKeepHTML bool

//nolint:gochecknoglobals // Cobra boilerplate
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the rendered resume page to PDF",
	Long: `Render the resume page and print it to an A4 PDF with headless Chrome.

Chrome is located through --chrome, CHROME_PATH, or the usual binary names in PATH.

Example:
  resume-page export
  resume-page export --output-dir ~/Documents --keep-html`,
	RunE: runExport,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportSource, "source", "", "Record URL or file (default from config)")
	exportCmd.Flags().StringVar(&exportShell, "shell", "", "Page shell to mount into (default: built-in shell)")
	exportCmd.Flags().StringVar(&exportOutputDir, "output-dir", "", "Output directory (default from config)")
	exportCmd.Flags().StringVar(&exportChrome, "chrome", "", "Chrome binary (default from config, CHROME_PATH or PATH)")
	exportCmd.Flags().BoolVar(&exportKeepHTML, "keep-html", false, "Keep the intermediate HTML file")
}

func runExport(cmd *cobra.Command, args []string) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var cfg config.Config
	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	outDir := flagOr(exportOutputDir, cfg.Export.OutputDir)
	htmlPath := filepath.Join(outDir, "resume.html")
	pdfPath := filepath.Join(outDir, "resume.pdf")

	var page []byte
	page, err = renderPage(ctx, cfg, flagOr(exportSource, cfg.Data.Source), exportShell)
	if err != nil {
		return err
	}

	err = renderer.WriteHTML(page, htmlPath)
	if err != nil {
		return err
	}

	if getVerbose() {
		fmt.Println("Generating PDF...")
	}

	err = renderer.RenderPDF(ctx, htmlPath, pdfPath, flagOr(exportChrome, cfg.Export.ChromePath))
	if err != nil {
		err = errors.Wrap(err, "failed to export PDF")
		return err
	}

	if !exportKeepHTML {
		err = renderer.Cleanup(htmlPath)
		if err != nil {
			return err
		}
	}

	fmt.Printf("Wrote %s\n", pdfPath)
	return err
}
