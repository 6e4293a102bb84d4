package ocr

import (
	"context"
	"errors"
	"strings"
)

// ErrNoText means recognition worked but the image held no readable text.
// Callers must keep it distinct from engine failures: the user fixes the
// former with a clearer photo, the latter by retrying.
var ErrNoText = errors.New("no readable text found")

// Engine recognizes text in an image. Implementations return an error only
// when the recognition machinery itself fails; a valid image with nothing
// readable is a success with empty text.
type Engine interface {
	Recognize(ctx context.Context, image []byte) (string, error)
}

// ExtractText runs the engine and applies the minimum-length rule: recognized
// text whose trimmed length is below minLength counts as no readable text.
func ExtractText(ctx context.Context, engine Engine, image []byte, minLength int) (string, error) {
	text, err := engine.Recognize(ctx, image)
	if err != nil {
		return "", err
	}

	if len(strings.TrimSpace(text)) < minLength {
		return "", ErrNoText
	}

	return text, nil
}
