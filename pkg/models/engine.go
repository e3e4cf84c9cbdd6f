package models

import "context"

// EngineExtraction is the engine's native representation of a single
// few-shot extraction.
type EngineExtraction struct {
	ExtractionClass string                 `json:"extraction_class"`
	ExtractionText  string                 `json:"extraction_text"`
	Attributes      map[string]interface{} `json:"attributes"`
}

// EngineExample is the engine's native representation of a few-shot example.
type EngineExample struct {
	Text        string             `json:"text"`
	Extractions []EngineExtraction `json:"extractions"`
}

// EngineRequest is the input contract of the extraction engine.
type EngineRequest struct {
	TextOrDocuments   string          `json:"text_or_documents"`
	PromptDescription string          `json:"prompt_description"`
	Examples          []EngineExample `json:"examples"`
	ModelID           string          `json:"model_id"`
}

// EngineDocument is the engine's annotated document as returned on the wire.
// The engine's object shape is not contractually stable, so it is carried as
// a generic mapping and every optional field is probed before access.
type EngineDocument map[string]interface{}

// ExtractionEngine is the external engine that performs the actual
// text-to-extraction inference. Model selection, credentials and prompting
// are owned by the engine; this service only invokes it.
type ExtractionEngine interface {
	Extract(ctx context.Context, req *EngineRequest) (EngineDocument, error)
}
