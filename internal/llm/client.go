package llm

import "context"

// UserContext carries the caller's dietary preferences into the prompt.
type UserContext struct {
	Goal      string
	TimeOfDay string
	Consumed  []string
}

// Client turns OCR text into a raw completion payload. Implementations
// return the model's text verbatim; reshaping and sanitization happen in
// ExtractItems.
type Client interface {
	ExtractMenu(ctx context.Context, ocrText string, uc UserContext) (string, error)
}
