package cmd

import (
	"fmt"
	"os"

	"github.com/nikogura/resume-page/pkg/config"
	"github.com/nikogura/resume-page/pkg/cv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

//nolint:gochecknoglobals // Cobra boilerplate
var validatePrint bool

//nolint:gochecknoglobals // Cobra boilerplate
var validateCmd = &cobra.Command{
	Use:   "validate [record]",
	Short: "Check a resume record",
	Long: `Check that a resume record parses and has the required shape. The record is
a file path or an http(s) URL; it defaults to the configured record path.

Example:
  resume-page validate
  resume-page validate public/data/cv.json --print`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().BoolVar(&validatePrint, "print", false, "Print the record, formatted")
}

func runValidate(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	source := cfg.Data.RecordPath
	if len(args) > 0 {
		source = args[0]
	}

	var data []byte
	data, err = cv.NewFetcher(cfg.FetchTimeout()).FetchRaw(cmd.Context(), source)
	if err != nil {
		err = errors.Wrapf(err, "failed to read record: %s", source)
		return err
	}

	_, err = cv.Decode(data)
	if err != nil {
		return err
	}

	if validatePrint {
		_, _ = os.Stdout.Write(pretty.Pretty(data))
	}

	summary := gjson.GetManyBytes(data, "name", "positions.#", "showcases.#", "keywords.#")
	fmt.Printf("%s: valid (%s, %d positions, %d showcases, %d keyword groups)\n",
		source, summary[0].String(), summary[1].Int(), summary[2].Int(), summary[3].Int())
	return err
}
