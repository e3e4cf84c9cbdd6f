package cmd

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/extractorapi/extractor/config"
	"github.com/extractorapi/extractor/pkg/extractor"
	"github.com/extractorapi/extractor/pkg/models"
	"github.com/extractorapi/extractor/pkg/web"
)

const (
	demoPrompt  = "Extract event dates and times mentioned in the text."
	demoModelID = "gemini-2.5-flash"

	demoResultsFile       = "extraction_results.jsonl"
	demoVisualizationFile = "visualization.html"
)

var demoOutputDir string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Runs a fixed extraction against the engine and writes the result files",
	Run:   func(cmd *cobra.Command, args []string) { runDemo() },
}

// runDemo is a single-shot pipeline: a hardcoded prompt, one example and one
// input text go to the engine once; the annotated document is written to a
// line-delimited JSON file and rendered to an HTML visualization.
func runDemo() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring extractor: %s", err)
	}
	config.SetLogLevel(cfg)

	request := &models.ExtractionRequest{
		PromptDescription: demoPrompt,
		Examples: []models.Example{
			{
				Text: "Treffen am 5.5. um 14:00 Uhr.",
				Extractions: []models.Extraction{
					{
						ExtractionClass: "date",
						ExtractionText:  "5.5.",
						Attributes:      map[string]interface{}{"format": "d.m."},
					},
					{
						ExtractionClass: "time",
						ExtractionText:  "14:00",
						Attributes:      map[string]interface{}{},
					},
				},
			},
		},
		TextOrDocuments: "04.11. – Holzwerkstatt offen von 16:00–20:00 Uhr.",
		ModelID:         demoModelID,
	}

	engine := extractor.NewClient(cfg)
	doc, err := engine.Extract(context.Background(), extractor.NewEngineRequest(request))
	if err != nil {
		log.Fatalf("Extraction failed: %v", err)
	}

	result := extractor.NormalizeDocument(doc)

	resultsPath := filepath.Join(demoOutputDir, demoResultsFile)
	if err := writeJSONL(resultsPath, result); err != nil {
		log.Fatalf("Failed to write %s: %v", resultsPath, err)
	}
	log.Infof("Wrote %s", resultsPath)

	visualizationPath := filepath.Join(demoOutputDir, demoVisualizationFile)
	if err := writeVisualization(visualizationPath, result); err != nil {
		log.Fatalf("Failed to write %s: %v", visualizationPath, err)
	}
	log.Infof("Wrote %s", visualizationPath)
}

// writeJSONL writes the annotated document as one JSON object per line.
func writeJSONL(path string, result *models.ExtractionResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	// json.Encoder terminates each document with a newline
	return json.NewEncoder(f).Encode(result)
}

func writeVisualization(path string, result *models.ExtractionResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return web.RenderDocument(f, result)
}
