package extractor

import (
	"github.com/extractorapi/extractor/pkg/models"
)

// TranslateExamples converts API examples into the engine's native example
// representation, preserving order. Attribute values are passed through
// unchanged; a nil attributes map becomes an empty one, matching the engine's
// default.
func TranslateExamples(examples []models.Example) []models.EngineExample {
	engineExamples := make([]models.EngineExample, len(examples))
	for i, example := range examples {
		extractions := make([]models.EngineExtraction, len(example.Extractions))
		for j, extraction := range example.Extractions {
			attributes := extraction.Attributes
			if attributes == nil {
				attributes = map[string]interface{}{}
			}
			extractions[j] = models.EngineExtraction{
				ExtractionClass: extraction.ExtractionClass,
				ExtractionText:  extraction.ExtractionText,
				Attributes:      attributes,
			}
		}
		engineExamples[i] = models.EngineExample{
			Text:        example.Text,
			Extractions: extractions,
		}
	}
	return engineExamples
}

// NewEngineRequest translates a validated API request into the engine's
// input contract.
func NewEngineRequest(request *models.ExtractionRequest) *models.EngineRequest {
	return &models.EngineRequest{
		TextOrDocuments:   request.TextOrDocuments,
		PromptDescription: request.PromptDescription,
		Examples:          TranslateExamples(request.Examples),
		ModelID:           request.ModelID,
	}
}
