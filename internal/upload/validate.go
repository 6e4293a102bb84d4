package upload

import "bytes"

// Leading-byte signatures for the image types the analyzer accepts. Only the
// prefix is checked; full image decoding is out of scope.
var magicBytes = map[string][]byte{
	"image/jpeg": {0xFF, 0xD8, 0xFF},
	"image/png":  {0x89, 0x50, 0x4E, 0x47},
	"image/webp": {0x52, 0x49, 0x46, 0x46},
	"image/gif":  {0x47, 0x49, 0x46, 0x38},
}

// AllowedType reports whether mimeType is on the upload allow-list.
func AllowedType(mimeType string) bool {
	_, ok := magicBytes[mimeType]
	return ok
}

// ValidateMagicBytes reports whether buf begins with the signature of the
// declared MIME type. Unknown types always fail.
func ValidateMagicBytes(buf []byte, mimeType string) bool {
	sig, ok := magicBytes[mimeType]
	if !ok {
		return false
	}
	return bytes.HasPrefix(buf, sig)
}
