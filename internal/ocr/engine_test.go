package ocr

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEngine struct {
	text string
	err  error
}

func (f *fakeEngine) Recognize(ctx context.Context, image []byte) (string, error) {
	return f.text, f.err
}

func TestExtractText_EngineErrorPropagates(t *testing.T) {
	engineErr := errors.New("tesseract crashed")
	_, err := ExtractText(context.Background(), &fakeEngine{err: engineErr}, nil, 10)

	require.Error(t, err)
	assert.ErrorIs(t, err, engineErr)
	assert.NotErrorIs(t, err, ErrNoText)
}

func TestExtractText_ShortOutputIsNoText(t *testing.T) {
	_, err := ExtractText(context.Background(), &fakeEngine{text: "chai"}, nil, 10)
	assert.ErrorIs(t, err, ErrNoText)
}

func TestExtractText_WhitespaceDoesNotCount(t *testing.T) {
	_, err := ExtractText(context.Background(), &fakeEngine{text: "   chai   \n\n"}, nil, 10)
	assert.ErrorIs(t, err, ErrNoText)
}

func TestExtractText_MinimumLengthBoundary(t *testing.T) {
	// Exactly minLength readable characters pass.
	text, err := ExtractText(context.Background(), &fakeEngine{text: "0123456789"}, nil, 10)
	require.NoError(t, err)
	assert.Equal(t, "0123456789", text)
}

func TestExtractText_ReturnsRawEngineOutput(t *testing.T) {
	raw := "  Paneer Tikka  450\nDal Makhani 320\n"
	text, err := ExtractText(context.Background(), &fakeEngine{text: raw}, nil, 10)

	require.NoError(t, err)
	assert.Equal(t, raw, text)
}
