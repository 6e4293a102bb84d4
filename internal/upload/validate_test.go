package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func TestValidateMagicBytes_MatchingType(t *testing.T) {
	assert.True(t, ValidateMagicBytes(pngHeader, "image/png"))
	assert.True(t, ValidateMagicBytes([]byte{0xFF, 0xD8, 0xFF, 0xE0}, "image/jpeg"))
	assert.True(t, ValidateMagicBytes([]byte("RIFF....WEBP"), "image/webp"))
	assert.True(t, ValidateMagicBytes([]byte("GIF89a"), "image/gif"))
}

func TestValidateMagicBytes_DeclaredTypeMismatch(t *testing.T) {
	// PNG bytes declared as JPEG must fail.
	assert.False(t, ValidateMagicBytes(pngHeader, "image/jpeg"))
}

func TestValidateMagicBytes_UnknownType(t *testing.T) {
	assert.False(t, ValidateMagicBytes(pngHeader, "image/tiff"))
	assert.False(t, ValidateMagicBytes(pngHeader, ""))
}

func TestValidateMagicBytes_ShortBuffer(t *testing.T) {
	assert.False(t, ValidateMagicBytes([]byte{0x89, 0x50}, "image/png"))
	assert.False(t, ValidateMagicBytes(nil, "image/png"))
}

func TestAllowedType(t *testing.T) {
	for _, mt := range []string{"image/jpeg", "image/png", "image/webp", "image/gif"} {
		assert.True(t, AllowedType(mt))
	}
	assert.False(t, AllowedType("application/pdf"))
	assert.False(t, AllowedType("image/svg+xml"))
}
