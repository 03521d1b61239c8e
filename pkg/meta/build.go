package meta

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Options locate the inputs and output of a build.
type Options struct {
	RecordPath       string
	TemplatePath     string
	OutputPath       string
	DescriptionField string
}

// Build reads the record and template, substitutes the metadata and writes
// the page shell. Nothing is written when any step fails.
func Build(opts Options) (values Values, err error) {
	var template []byte
	template, err = os.ReadFile(opts.TemplatePath)
	if err != nil {
		err = errors.Wrapf(err, "failed to read template: %s", opts.TemplatePath)
		return values, err
	}

	var raw []byte
	raw, err = os.ReadFile(opts.RecordPath)
	if err != nil {
		err = errors.Wrapf(err, "failed to read resume record: %s", opts.RecordPath)
		return values, err
	}

	values, err = Compute(raw, opts.DescriptionField)
	if err != nil {
		err = errors.Wrapf(err, "failed to compute page metadata from %s", opts.RecordPath)
		return values, err
	}

	out := Apply(string(template), values)

	outputDir := filepath.Dir(opts.OutputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return values, err
	}

	err = os.WriteFile(opts.OutputPath, []byte(out), 0644) //nolint:gosec // Served page
	if err != nil {
		err = errors.Wrapf(err, "failed to write page: %s", opts.OutputPath)
		return values, err
	}

	return values, err
}
