package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/extractorapi/extractor/internal"
	"github.com/extractorapi/extractor/pkg/models"
)

var (
	log *logrus.Logger

	cfgFile     string
	showVersion bool
	dumpConfig  bool
)

var cmd = &cobra.Command{
	Use:   "extractor",
	Short: "extractor serves a JSON HTTP API that fronts an external text-extraction engine",
	Run:   func(cmd *cobra.Command, args []string) { run() },
}

var dumpJSONSchemaCmd = &cobra.Command{
	Use:     "json-schema",
	Short:   "Generates JSON Schema for the extraction request body",
	Example: "extractor json-schema > extraction_request_schema.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := models.JSONSchema()
		if err != nil {
			return err
		}
		fmt.Println(string(schema))
		return nil
	},
}

func init() {
	cmd.AddCommand(dumpJSONSchemaCmd)
	cmd.AddCommand(demoCmd)

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default config.yaml)")
	cmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "print version number")
	cmd.PersistentFlags().BoolVarP(&dumpConfig, "dump-config", "d", false, "dump config")

	demoCmd.Flags().
		StringVarP(&demoOutputDir, "outputDir", "o", ".", "Path to write the demo result files")
}

// Execute executes the root cobra command.
func Execute() {
	log = internal.GetLogger()
	log.SetLevel(logrus.InfoLevel)

	err := cmd.Execute()

	if err != nil {
		os.Exit(1)
	}
}
