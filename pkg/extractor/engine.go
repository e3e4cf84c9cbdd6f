package extractor

import (
	"fmt"

	"github.com/extractorapi/extractor/internal"
)

var log = internal.GetLogger()

// EngineError wraps any failure raised while translating examples for the
// engine or invoking it. The gateway surfaces the message text to callers
// but nothing more structured than that.
type EngineError struct {
	message       string
	originalError error
}

func (e *EngineError) Error() string {
	if e.originalError == nil {
		return fmt.Sprintf("engine error: %s", e.message)
	}
	return fmt.Sprintf("engine error: %s (original error: %v)", e.message, e.originalError)
}

func (e *EngineError) Unwrap() error {
	return e.originalError
}

func NewEngineError(message string, originalError error) *EngineError {
	return &EngineError{message: message, originalError: originalError}
}
