package models

// CharInterval locates an extraction within the source text by character
// offsets.
type CharInterval struct {
	StartPos int `json:"start_pos"`
	EndPos   int `json:"end_pos"`
}

// AnnotatedExtraction is one extraction from the engine's annotated document.
// The engine does not guarantee the optional fields are present on its native
// object; absent fields are normalized to null rather than omitted.
type AnnotatedExtraction struct {
	ExtractionClass string                 `json:"extraction_class"`
	ExtractionText  string                 `json:"extraction_text"`
	Attributes      map[string]interface{} `json:"attributes"`
	CharInterval    *CharInterval          `json:"char_interval"`
	AlignmentStatus interface{}            `json:"alignment_status"`
	ExtractionIndex *int                   `json:"extraction_index"`
	GroupIndex      *int                   `json:"group_index"`
	Description     *string                `json:"description"`
}

// ExtractionResult is the normalized annotated document returned to API
// clients.
type ExtractionResult struct {
	Text        string                `json:"text"`
	DocumentID  *string               `json:"document_id"`
	Extractions []AnnotatedExtraction `json:"extractions"`
}
