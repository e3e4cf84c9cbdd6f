package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/extractorapi/extractor/config"
	"github.com/extractorapi/extractor/pkg/extractor"
	"github.com/extractorapi/extractor/pkg/models"
	"github.com/extractorapi/extractor/pkg/server"
)

// run is the entrypoint for the extractor server
func run() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring extractor: %s", err)
	}

	handleCLIOptions(cfg)

	log.Infof("Starting extractor server version %s", config.VersionString)

	config.SetLogLevel(cfg)
	appState := NewAppState(cfg)

	srv := server.Create(appState)

	log.Infof("Listening on: %s", srv.Addr)
	err = srv.ListenAndServe()
	if err != nil {
		log.Fatal(err)
	}
}

// NewAppState creates an AppState struct from the config file / ENV and
// creates the engine client
func NewAppState(cfg *config.Config) *models.AppState {
	return &models.AppState{
		Engine: extractor.NewClient(cfg),
		Config: cfg,
	}
}

// handleCLIOptions handles CLI options that don't require the server to run
func handleCLIOptions(cfg *config.Config) {
	if showVersion {
		fmt.Println(config.VersionString)
		os.Exit(0)
	}
	if dumpConfig {
		dump, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			log.Fatalf("Error dumping config: %s", err)
		}
		fmt.Println(string(dump))
		os.Exit(0)
	}
}
