package extractor

import (
	"encoding/json"

	"github.com/extractorapi/extractor/pkg/models"
)

// NormalizeDocument converts the engine's loosely-shaped annotated document
// into the fixed-shape ExtractionResult. The engine does not guarantee which
// optional fields are present on its native object, so each one is probed
// before access and defaults to null. Normalization is total: a shape gap is
// never an error.
func NormalizeDocument(doc models.EngineDocument) *models.ExtractionResult {
	result := &models.ExtractionResult{
		Text:       stringField(doc, "text"),
		DocumentID: stringPtrField(doc, "document_id"),
	}

	rawExtractions, _ := doc["extractions"].([]interface{})
	result.Extractions = make([]models.AnnotatedExtraction, 0, len(rawExtractions))
	for _, raw := range rawExtractions {
		fields, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		result.Extractions = append(result.Extractions, models.AnnotatedExtraction{
			ExtractionClass: stringField(fields, "extraction_class"),
			ExtractionText:  stringField(fields, "extraction_text"),
			Attributes:      attributesField(fields),
			CharInterval:    charIntervalField(fields),
			AlignmentStatus: fields["alignment_status"],
			ExtractionIndex: intPtrField(fields, "extraction_index"),
			GroupIndex:      intPtrField(fields, "group_index"),
			Description:     stringPtrField(fields, "description"),
		})
	}

	return result
}

func stringField(fields map[string]interface{}, key string) string {
	s, _ := fields[key].(string)
	return s
}

func stringPtrField(fields map[string]interface{}, key string) *string {
	if s, ok := fields[key].(string); ok {
		return &s
	}
	return nil
}

func intPtrField(fields map[string]interface{}, key string) *int {
	switch v := fields[key].(type) {
	case float64:
		i := int(v)
		return &i
	case int:
		i := v
		return &i
	case json.Number:
		if n, err := v.Int64(); err == nil {
			i := int(n)
			return &i
		}
	}
	return nil
}

func attributesField(fields map[string]interface{}) map[string]interface{} {
	if attributes, ok := fields["attributes"].(map[string]interface{}); ok && attributes != nil {
		return attributes
	}
	return map[string]interface{}{}
}

func charIntervalField(fields map[string]interface{}) *models.CharInterval {
	ci, ok := fields["char_interval"].(map[string]interface{})
	if !ok {
		return nil
	}
	interval := &models.CharInterval{}
	if start := intPtrField(ci, "start_pos"); start != nil {
		interval.StartPos = *start
	}
	if end := intPtrField(ci, "end_pos"); end != nil {
		interval.EndPos = *end
	}
	return interval
}
