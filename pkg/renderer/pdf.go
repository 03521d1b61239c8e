package renderer

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/pkg/errors"
)

// DefaultPDFTimeout bounds a single export, browser startup included.
const DefaultPDFTimeout = 60 * time.Second

// A4 in inches.
const (
	paperWidth  = 8.27
	paperHeight = 11.69
)

//nolint:gochecknoglobals // lookup order for Chrome binaries
var chromeBinaries = []string{
	"chromium",
	"chromium-browser",
	"google-chrome",
	"google-chrome-stable",
	"chrome",
}

// RenderPDF prints an HTML file to PDF with headless Chrome. execPath selects
// the browser binary; empty means CHROME_PATH or the first one found in PATH.
func RenderPDF(ctx context.Context, htmlPath, outputPath, execPath string) (err error) {
	execPath, err = findChrome(execPath)
	if err != nil {
		return err
	}

	err = validateFiles(htmlPath)
	if err != nil {
		return err
	}

	var absPath string
	absPath, err = filepath.Abs(htmlPath)
	if err != nil {
		err = errors.Wrapf(err, "failed to resolve path: %s", htmlPath)
		return err
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(outputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(execPath),
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	runCtx, cancelRun := context.WithTimeout(browserCtx, DefaultPDFTimeout)
	defer cancelRun()

	var pdf []byte
	err = chromedp.Run(runCtx,
		chromedp.Navigate("file://"+filepath.ToSlash(absPath)),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) (actionErr error) {
			pdf, _, actionErr = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(paperWidth).
				WithPaperHeight(paperHeight).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return actionErr
		}),
	)
	if err != nil {
		err = errors.Wrap(err, "chrome failed to print PDF")
		return err
	}

	err = os.WriteFile(outputPath, pdf, 0644)
	if err != nil {
		err = errors.Wrapf(err, "failed to write PDF file: %s", outputPath)
		return err
	}

	return err
}

// findChrome resolves the browser binary.
func findChrome(execPath string) (path string, err error) {
	if execPath == "" {
		execPath = os.Getenv("CHROME_PATH")
	}

	if execPath != "" {
		path, err = exec.LookPath(execPath)
		if err != nil {
			err = errors.Errorf("chrome not found: %s", execPath)
			return path, err
		}
		return path, err
	}

	for _, name := range chromeBinaries {
		path, err = exec.LookPath(name)
		if err == nil {
			return path, err
		}
	}

	err = errors.New("chrome not found in PATH (install chromium or set CHROME_PATH to export PDFs)")
	return path, err
}

// validateFiles checks that required files exist.
func validateFiles(paths ...string) (err error) {
	for _, path := range paths {
		_, err = os.Stat(path)
		if os.IsNotExist(err) {
			err = errors.Errorf("file not found: %s", path)
			return err
		}
	}
	return err
}
