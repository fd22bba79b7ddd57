package resume

import "fmt"

// ExtractionError means the input bytes were not a decodable PDF.
// It is fatal for the whole pipeline and never retried.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to extract text from PDF: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// ProcessingError wraps the first failure raised by any pipeline stage.
type ProcessingError struct {
	Err error
}

func (e *ProcessingError) Error() string {
	return fmt.Sprintf("failed to process resume: %v", e.Err)
}

func (e *ProcessingError) Unwrap() error {
	return e.Err
}
