package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/extractorapi/extractor/internal"
	"github.com/extractorapi/extractor/pkg/models"
)

var log = internal.GetLogger()

var validate = newValidator()

// newValidator returns a validator that reports violations against wire
// field names rather than Go struct field names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// APIError represents an error response.
type APIError struct {
	Message string `json:"message"`
}

// FieldError describes a single request validation violation.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ValidationErrorResponse is the body of a 422 response.
type ValidationErrorResponse struct {
	Detail []FieldError `json:"detail"`
}

// encodeJSON encodes data into JSON and writes it to the response writer.
func encodeJSON(w http.ResponseWriter, data interface{}) error {
	return json.NewEncoder(w).Encode(data)
}

// decodeJSON decodes a JSON request body into the provided data struct.
func decodeJSON(r *http.Request, data interface{}) error {
	return json.NewDecoder(r.Body).Decode(&data)
}

// renderError renders a plain error response.
func renderError(w http.ResponseWriter, err error, status int) {
	if status != http.StatusNotFound {
		// Don't log not found errors
		log.Error(err)
	}
	if errors.Is(err, models.ErrBadRequest) {
		status = http.StatusBadRequest
	}
	http.Error(w, err.Error(), status)
}

// renderValidationError renders a 422 response carrying field-level
// diagnostics for a request that failed structural validation.
func renderValidationError(w http.ResponseWriter, err error) {
	log.Debugf("request validation failed: %v", err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	if encodeErr := encodeJSON(w, ValidationErrorResponse{
		Detail: fieldErrorsFromValidation(err),
	}); encodeErr != nil {
		log.Error(encodeErr)
	}
}

// renderExtractionError renders a 500 response in the extraction envelope
// shape: success false and a message embedding the underlying failure text.
func renderExtractionError(w http.ResponseWriter, err error) {
	log.Error(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	if encodeErr := encodeJSON(w, models.ExtractionResponse{
		Success: false,
		Message: fmt.Sprintf("Extraction failed: %v", err),
	}); encodeErr != nil {
		log.Error(encodeErr)
	}
}

// fieldErrorsFromValidation flattens a decode or validation failure into
// field-level diagnostics.
func fieldErrorsFromValidation(err error) []FieldError {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fieldErrors := make([]FieldError, len(validationErrors))
		for i, fieldError := range validationErrors {
			field := fieldError.Namespace()
			// Strip the leading struct name, leaving the wire path
			if dot := strings.Index(field, "."); dot >= 0 {
				field = field[dot+1:]
			}
			fieldErrors[i] = FieldError{
				Field: field,
				Error: fmt.Sprintf("failed on the '%s' rule", fieldError.Tag()),
			}
		}
		return fieldErrors
	}

	var typeError *json.UnmarshalTypeError
	if errors.As(err, &typeError) {
		field := typeError.Field
		if field == "" {
			field = "body"
		}
		return []FieldError{
			{Field: field, Error: fmt.Sprintf("expected %s", typeError.Type)},
		}
	}

	return []FieldError{{Field: "body", Error: err.Error()}}
}
