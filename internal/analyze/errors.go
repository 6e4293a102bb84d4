package analyze

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rajan-007/Food-Recommendation-AI/internal/middleware"
)

// Machine-readable codes returned in the error envelope.
const (
	CodeConfigMissing    = "CONFIG_MISSING"
	CodeRateLimited      = "RATE_LIMITED"
	CodeMissingImage     = "MISSING_IMAGE"
	CodeInvalidFileType  = "INVALID_FILE_TYPE"
	CodeFileTooLarge     = "FILE_TOO_LARGE"
	CodeContentMismatch  = "CONTENT_MISMATCH"
	CodeNoTextFound      = "NO_TEXT_FOUND"
	CodeOCRFailed        = "OCR_FAILED"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeInternalError    = "INTERNAL_ERROR"
)

var statusByCode = map[string]int{
	CodeConfigMissing:    http.StatusServiceUnavailable,
	CodeRateLimited:      http.StatusTooManyRequests,
	CodeMissingImage:     http.StatusBadRequest,
	CodeInvalidFileType:  http.StatusBadRequest,
	CodeFileTooLarge:     http.StatusBadRequest,
	CodeContentMismatch:  http.StatusBadRequest,
	CodeNoTextFound:      http.StatusBadRequest,
	CodeOCRFailed:        http.StatusInternalServerError,
	CodeMethodNotAllowed: http.StatusMethodNotAllowed,
	CodeInternalError:    http.StatusInternalServerError,
}

// ErrorBody is the inner error object of the envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorResponse is the envelope every failed request returns.
type ErrorResponse struct {
	Success   bool      `json:"success"`
	Error     ErrorBody `json:"error"`
	RequestID string    `json:"requestId"`
}

func respondError(c *gin.Context, code, message, details string) {
	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}

	c.JSON(status, ErrorResponse{
		Success: false,
		Error: ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
		RequestID: middleware.GetRequestID(c),
	})
}
