package web

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"sort"

	"github.com/extractorapi/extractor/pkg/models"
)

const documentTemplate = "templates/document.html"

// Segment is a run of document text, highlighted when it is covered by an
// aligned extraction.
type Segment struct {
	Text      string
	Class     string
	Highlight bool
}

// ExtractionRow is one row of the extraction table.
type ExtractionRow struct {
	Index      int
	Class      string
	Text       string
	Attributes string
	Interval   string
	Status     string
}

// DocumentPage is the view model for the document template.
type DocumentPage struct {
	Title    string
	Segments []Segment
	Rows     []ExtractionRow
}

// RenderDocument writes an HTML visualization of a normalized annotated
// document: the source text with each aligned extraction highlighted, plus
// a table of every extraction. Extractions without a char interval appear
// in the table only.
func RenderDocument(w io.Writer, result *models.ExtractionResult) error {
	tmpl, err := template.ParseFS(TemplatesFS, documentTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, newDocumentPage(result))
}

func newDocumentPage(result *models.ExtractionResult) *DocumentPage {
	page := &DocumentPage{
		Title:    "Extraction Results",
		Segments: buildSegments(result.Text, result.Extractions),
	}

	for i, extraction := range result.Extractions {
		row := ExtractionRow{
			Index: i + 1,
			Class: extraction.ExtractionClass,
			Text:  extraction.ExtractionText,
		}
		if attributes, err := json.Marshal(extraction.Attributes); err == nil {
			row.Attributes = string(attributes)
		}
		if extraction.CharInterval != nil {
			row.Interval = fmt.Sprintf(
				"[%d, %d)",
				extraction.CharInterval.StartPos,
				extraction.CharInterval.EndPos,
			)
		}
		if extraction.AlignmentStatus != nil {
			row.Status = fmt.Sprint(extraction.AlignmentStatus)
		}
		page.Rows = append(page.Rows, row)
	}

	return page
}

// buildSegments splits the document text into plain and highlighted runs.
// Char intervals are rune offsets; out-of-range intervals are clamped and
// overlapping spans after the first are skipped.
func buildSegments(text string, extractions []models.AnnotatedExtraction) []Segment {
	runes := []rune(text)

	type span struct {
		start, end int
		class      string
	}
	var spans []span
	for _, extraction := range extractions {
		if extraction.CharInterval == nil {
			continue
		}
		start := extraction.CharInterval.StartPos
		end := extraction.CharInterval.EndPos
		if start < 0 {
			start = 0
		}
		if end > len(runes) {
			end = len(runes)
		}
		if start >= end {
			continue
		}
		spans = append(spans, span{start: start, end: end, class: extraction.ExtractionClass})
	}
	sort.SliceStable(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var segments []Segment
	cursor := 0
	for _, s := range spans {
		if s.start < cursor {
			continue
		}
		if s.start > cursor {
			segments = append(segments, Segment{Text: string(runes[cursor:s.start])})
		}
		segments = append(segments, Segment{
			Text:      string(runes[s.start:s.end]),
			Class:     s.class,
			Highlight: true,
		})
		cursor = s.end
	}
	if cursor < len(runes) {
		segments = append(segments, Segment{Text: string(runes[cursor:])})
	}

	return segments
}
