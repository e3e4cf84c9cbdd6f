package models

// Extraction is a single labeled span of text with free-form attributes.
type Extraction struct {
	ExtractionClass string                 `json:"extraction_class" validate:"required"`
	ExtractionText  string                 `json:"extraction_text"  validate:"required"`
	Attributes      map[string]interface{} `json:"attributes,omitempty"`
}

// Example pairs source text with its expected extractions. Examples are
// passed to the engine unchanged as few-shot demonstrations.
type Example struct {
	Text        string       `json:"text"        validate:"required"`
	Extractions []Extraction `json:"extractions" validate:"required,dive"`
}

// ExtractionRequest is the full input contract for POST /extract.
type ExtractionRequest struct {
	PromptDescription string    `json:"prompt_description" validate:"required"`
	Examples          []Example `json:"examples"           validate:"required,dive"`
	TextOrDocuments   string    `json:"text_or_documents"  validate:"required"`
	ModelID           string    `json:"model_id"           validate:"required"`
}

// ExtractionResponse is the response envelope for POST /extract.
// Result is populated only when Success is true.
type ExtractionResponse struct {
	Success bool              `json:"success"`
	Result  *ExtractionResult `json:"result"`
	Message string            `json:"message,omitempty"`
}
