package analyze

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rajan-007/Food-Recommendation-AI/config"
	"github.com/Rajan-007/Food-Recommendation-AI/internal/llm"
	"github.com/Rajan-007/Food-Recommendation-AI/internal/menu"
	"github.com/Rajan-007/Food-Recommendation-AI/internal/middleware"
	"github.com/Rajan-007/Food-Recommendation-AI/internal/ocr"
	"github.com/Rajan-007/Food-Recommendation-AI/internal/ratelimit"
	"github.com/Rajan-007/Food-Recommendation-AI/internal/upload"
)

type Handler struct {
	cfg     *config.Config
	limiter ratelimit.Store
	engine  ocr.Engine
	llm     llm.Client
}

func NewHandler(cfg *config.Config, limiter ratelimit.Store, engine ocr.Engine, llmClient llm.Client) *Handler {
	return &Handler{
		cfg:     cfg,
		limiter: limiter,
		engine:  engine,
		llm:     llmClient,
	}
}

// Response is the envelope every successful analysis returns.
type Response struct {
	Success   bool            `json:"success"`
	Items     []menu.MenuItem `json:"items"`
	Message   string          `json:"message,omitempty"`
	RequestID string          `json:"requestId"`
}

// Analyze handles POST /api/analyze. Steps run in order and short-circuit on
// the first failure; every outcome carries the request correlation id.
func (h *Handler) Analyze(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	if h.cfg.Groq.APIKey == "" {
		respondError(c, CodeConfigMissing, "Analysis service is not configured. Try again later.", "")
		return
	}

	if !h.limiter.Allow(c.ClientIP()) {
		respondError(c, CodeRateLimited, "Too many requests. Please try again later.", "")
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		respondError(c, CodeMissingImage, "Image file is required. Use 'image' as the form field name.", "")
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	if !upload.AllowedType(mimeType) {
		respondError(c, CodeInvalidFileType, "Invalid file type. Only JPEG, PNG, WebP, and GIF are allowed.", "")
		return
	}

	maxSize := h.cfg.Upload.MaxFileSize
	if header.Size > maxSize {
		respondError(c, CodeFileTooLarge,
			fmt.Sprintf("File too large. Maximum size is %d bytes.", maxSize), "")
		return
	}

	// Read one byte past the limit so an understated header.Size still trips
	// the size check.
	buf, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		respondError(c, CodeInternalError, "Failed to read uploaded file.", "")
		return
	}
	if int64(len(buf)) > maxSize {
		respondError(c, CodeFileTooLarge,
			fmt.Sprintf("File too large. Maximum size is %d bytes.", maxSize), "")
		return
	}

	if !upload.ValidateMagicBytes(buf, mimeType) {
		respondError(c, CodeContentMismatch, "Invalid file content. File does not match declared type.", "")
		return
	}

	uc := llm.UserContext{
		Goal:      valueOr(c.PostForm("userGoal"), "weight loss"),
		TimeOfDay: valueOr(c.PostForm("timeOfDay"), "lunch"),
		Consumed:  parseFoodData(c.PostForm("userFoodData")),
	}

	log.Printf("analyze request_id=%s file=%s size=%d type=%s",
		requestID, header.Filename, header.Size, mimeType)

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.cfg.Server.AnalysisTimeout)
	defer cancel()

	rawText, err := ocr.ExtractText(ctx, h.engine, buf, h.cfg.OCR.MinTextLength)
	if errors.Is(err, ocr.ErrNoText) {
		respondError(c, CodeNoTextFound,
			"Could not extract text from image. Please ensure the menu is clear and readable.", "")
		return
	}
	if err != nil {
		log.Printf("ocr failed request_id=%s: %v", requestID, err)
		respondError(c, CodeOCRFailed, "Failed to process the image. Please try again.", "")
		return
	}

	items := llm.ExtractItems(ctx, h.llm, rawText, uc)

	resp := Response{
		Success:   true,
		Items:     items,
		RequestID: requestID,
	}
	if len(items) == 0 {
		resp.Message = "No menu items could be identified. Try a clearer image."
	}

	c.JSON(http.StatusOK, resp)
}

// MethodNotAllowed answers non-POST verbs on the analyze route.
func (h *Handler) MethodNotAllowed(c *gin.Context) {
	respondError(c, CodeMethodNotAllowed, "Method not allowed. Use POST with multipart/form-data.", "")
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// parseFoodData decodes the optional userFoodData field. Malformed JSON
// degrades to a single-element list holding the raw value; valid JSON that is
// not an array yields nothing, and non-string array elements are dropped.
func parseFoodData(raw string) []string {
	if raw == "" {
		return nil
	}

	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return []string{raw}
	}

	arr, ok := parsed.([]any)
	if !ok {
		return nil
	}

	foods := make([]string, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok {
			foods = append(foods, s)
		}
	}
	return foods
}
