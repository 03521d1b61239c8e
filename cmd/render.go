package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/nikogura/resume-page/pkg/config"
	"github.com/nikogura/resume-page/pkg/cv"
	"github.com/nikogura/resume-page/pkg/renderer"
	"github.com/nikogura/resume-page/pkg/sections"
	"github.com/nikogura/resume-page/pkg/viewer"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var renderSource string

//nolint:gochecknoglobals // Cobra boilerplate
var renderShell string

//nolint:gochecknoglobals // Cobra boilerplate
var renderOutput string

//nolint:gochecknoglobals // Cobra boilerplate
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the resume page to HTML",
	Long: `Load the resume record once and render the full page: the built shell
with the resume mounted into its element with id "root".

When the record cannot be loaded the page carries the error message instead
and the command exits non-zero.

Example:
  resume-page render --output dist/index.html
  resume-page render --source https://example.com/data/cv.json --shell index.html`,
	RunE: runRender,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVar(&renderSource, "source", "", "Record URL or file (default from config)")
	renderCmd.Flags().StringVar(&renderShell, "shell", "", "Page shell to mount into (default: built-in shell)")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file (default: stdout)")
}

func runRender(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	var page []byte
	page, err = renderPage(cmd.Context(), cfg, flagOr(renderSource, cfg.Data.Source), renderShell)
	if page == nil {
		return err
	}

	if renderOutput == "" {
		_, _ = os.Stdout.Write(page)
	} else {
		writeErr := renderer.WriteHTML(page, renderOutput)
		if writeErr != nil {
			return writeErr
		}
		if getVerbose() {
			fmt.Printf("Wrote %s\n", renderOutput)
		}
	}

	return err
}

// renderPage runs one page load and mounts the outcome into the shell. A
// failed load still yields the error page alongside the load error.
func renderPage(ctx context.Context, cfg config.Config, source, shellPath string) (page []byte, err error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var opts sections.Options
	opts, err = sectionOptions(cfg)
	if err != nil {
		return page, err
	}

	if getVerbose() {
		fmt.Fprintf(os.Stderr, "Loading resume from: %s\n", source)
	}

	view := viewer.New(cv.NewFetcher(cfg.FetchTimeout()), source, opts)
	state := view.Load(ctx)

	var shell string
	shell, err = renderer.ReadShell(shellPath)
	if err != nil {
		return page, err
	}

	page, err = renderer.Mount(shell, view.Render())
	if err != nil {
		return page, err
	}

	if state.Status == viewer.StatusFailed {
		err = errors.Errorf("failed to load resume: %s", state.Err)
	}
	return page, err
}
