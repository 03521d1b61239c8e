package cmd

import (
	"fmt"

	"github.com/nikogura/resume-page/pkg/config"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the config file",
}

//nolint:gochecknoglobals // Cobra boilerplate
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set one config value",
	Long: `Set one config value. Keys are dotted paths into the config file.

Example:
  resume-page config set locale en-GB
  resume-page config set server.fetch_timeout_seconds 10
  resume-page config set data.source https://example.com/data/cv.json`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigSet(cmd *cobra.Command, args []string) (err error) {
	path := getConfigFile()
	if path == "" {
		path, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}

	err = config.Set(path, args[0], args[1])
	if err != nil {
		return err
	}

	if getVerbose() {
		fmt.Printf("Set %s in %s\n", args[0], path)
	}
	return err
}
