package extractor

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extractorapi/extractor/pkg/models"
)

func TestNormalizeDocumentMissingOptionalFields(t *testing.T) {
	doc := models.EngineDocument{
		"text": "See you 6.6.",
		"extractions": []interface{}{
			map[string]interface{}{
				"extraction_class": "date",
				"extraction_text":  "6.6.",
				"attributes":       map[string]interface{}{},
			},
		},
	}

	result := NormalizeDocument(doc)

	assert.Equal(t, "See you 6.6.", result.Text)
	assert.Nil(t, result.DocumentID)
	require.Len(t, result.Extractions, 1)

	extraction := result.Extractions[0]
	assert.Equal(t, "date", extraction.ExtractionClass)
	assert.Equal(t, "6.6.", extraction.ExtractionText)
	assert.Equal(t, map[string]interface{}{}, extraction.Attributes)
	assert.Nil(t, extraction.CharInterval)
	assert.Nil(t, extraction.AlignmentStatus)
	assert.Nil(t, extraction.ExtractionIndex)
	assert.Nil(t, extraction.GroupIndex)
	assert.Nil(t, extraction.Description)

	// Missing optional fields serialize as explicit nulls, not omitted keys
	encoded, err := json.Marshal(result)
	require.NoError(t, err)

	var wire map[string]interface{}
	err = json.Unmarshal(encoded, &wire)
	require.NoError(t, err)
	assert.Contains(t, wire, "document_id")
	assert.Nil(t, wire["document_id"])

	wireExtraction := wire["extractions"].([]interface{})[0].(map[string]interface{})
	for _, key := range []string{
		"char_interval",
		"alignment_status",
		"extraction_index",
		"group_index",
		"description",
	} {
		assert.Contains(t, wireExtraction, key)
		assert.Nil(t, wireExtraction[key])
	}
}

func TestNormalizeDocumentFullShape(t *testing.T) {
	doc := models.EngineDocument{
		"text":        "See you 6.6.",
		"document_id": "doc-1",
		"extractions": []interface{}{
			map[string]interface{}{
				"extraction_class": "date",
				"extraction_text":  "6.6.",
				"attributes":       map[string]interface{}{"format": "d.m."},
				"char_interval": map[string]interface{}{
					"start_pos": float64(8),
					"end_pos":   float64(12),
				},
				"alignment_status": "match_exact",
				"extraction_index": float64(0),
				"group_index":      float64(0),
				"description":      "a calendar date",
			},
		},
	}

	result := NormalizeDocument(doc)

	require.NotNil(t, result.DocumentID)
	assert.Equal(t, "doc-1", *result.DocumentID)
	require.Len(t, result.Extractions, 1)

	extraction := result.Extractions[0]
	require.NotNil(t, extraction.CharInterval)
	assert.Equal(t, 8, extraction.CharInterval.StartPos)
	assert.Equal(t, 12, extraction.CharInterval.EndPos)
	assert.Equal(t, "match_exact", extraction.AlignmentStatus)
	require.NotNil(t, extraction.ExtractionIndex)
	assert.Equal(t, 0, *extraction.ExtractionIndex)
	require.NotNil(t, extraction.GroupIndex)
	assert.Equal(t, 0, *extraction.GroupIndex)
	require.NotNil(t, extraction.Description)
	assert.Equal(t, "a calendar date", *extraction.Description)
	assert.Equal(t, map[string]interface{}{"format": "d.m."}, extraction.Attributes)
}

func TestNormalizeDocumentIsTotal(t *testing.T) {
	testCases := []struct {
		name string
		doc  models.EngineDocument
	}{
		{"empty document", models.EngineDocument{}},
		{"null extractions", models.EngineDocument{"text": "abc", "extractions": nil}},
		{
			"mistyped extractions",
			models.EngineDocument{"text": "abc", "extractions": "not-a-list"},
		},
		{
			"mistyped extraction entry",
			models.EngineDocument{"extractions": []interface{}{"bogus"}},
		},
		{
			"null char interval",
			models.EngineDocument{
				"extractions": []interface{}{
					map[string]interface{}{
						"extraction_class": "date",
						"extraction_text":  "6.6.",
						"char_interval":    nil,
					},
				},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := NormalizeDocument(tc.doc)
			require.NotNil(t, result)
			assert.NotNil(t, result.Extractions)
		})
	}
}
