package server

import (
	"net/http"

	"github.com/extractorapi/extractor/config"
	"github.com/extractorapi/extractor/pkg/extractor"
	"github.com/extractorapi/extractor/pkg/models"
)

const ServiceName = "Extractor API"

const ExtractionSuccessMessage = "Extraction completed successfully"

// GetIndexHandler returns a fixed informational object naming the service
// and listing the available routes.
func GetIndexHandler() http.HandlerFunc {
	info := map[string]interface{}{
		"name":    ServiceName,
		"version": config.VersionString,
		"endpoints": map[string]string{
			"schema":  "/schema",
			"extract": "/extract (POST)",
			"healthz": "/healthz",
		},
	}
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := encodeJSON(w, info); err != nil {
			renderError(w, err, http.StatusInternalServerError)
		}
	}
}

// GetSchemaHandler returns the JSON Schema describing ExtractionRequest,
// verbatim as the response body.
func GetSchemaHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		schema, err := models.JSONSchema()
		if err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write(schema); err != nil {
			log.Error(err)
		}
	}
}

// PostExtractHandler validates the request body, translates the examples
// into the engine's native representation, invokes the engine exactly once,
// and wraps the normalized result in the response envelope. Any failure
// during translation or invocation collapses to a single server error whose
// message embeds the underlying failure text.
func PostExtractHandler(appState *models.AppState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request models.ExtractionRequest
		if err := decodeJSON(r, &request); err != nil {
			renderValidationError(w, err)
			return
		}
		if err := validate.Struct(request); err != nil {
			renderValidationError(w, err)
			return
		}

		doc, err := appState.Engine.Extract(r.Context(), extractor.NewEngineRequest(&request))
		if err != nil {
			renderExtractionError(w, err)
			return
		}

		response := models.ExtractionResponse{
			Success: true,
			Result:  extractor.NormalizeDocument(doc),
			Message: ExtractionSuccessMessage,
		}

		w.Header().Set("Content-Type", "application/json")
		if err := encodeJSON(w, response); err != nil {
			renderError(w, err, http.StatusInternalServerError)
			return
		}
	}
}
