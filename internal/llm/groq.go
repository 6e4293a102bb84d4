package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Config holds everything the Groq client needs. Values come from the
// application config.
type Config struct {
	APIKey         string
	Model          string
	BaseURL        string
	Timeout        time.Duration
	MaxPromptChars int
}

// GroqClient calls Groq's OpenAI-compatible chat completions endpoint.
type GroqClient struct {
	cfg    Config
	client *http.Client
}

func NewGroqClient(cfg Config) *GroqClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.MaxPromptChars <= 0 {
		cfg.MaxPromptChars = 10000
	}
	return &GroqClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// ExtractMenu sends the OCR text and user context to Groq and returns the
// completion text. OCR text is truncated to cap prompt cost.
func (g *GroqClient) ExtractMenu(ctx context.Context, ocrText string, uc UserContext) (string, error) {
	if g.cfg.APIKey == "" {
		return "", errors.New("missing groq api key")
	}
	if g.cfg.Model == "" {
		return "", errors.New("missing groq model")
	}

	// Truncate in characters, never mid-rune.
	if runes := []rune(ocrText); len(runes) > g.cfg.MaxPromptChars {
		ocrText = string(runes[:g.cfg.MaxPromptChars])
	}

	payload := map[string]any{
		"model": g.cfg.Model,
		"messages": []map[string]string{
			{"role": "system", "content": BuildMenuPrompt(uc)},
			{"role": "user", "content": "Extract menu items from this OCR text:\n\n" + ocrText},
		},
		"temperature":     0.1,
		"response_format": map[string]string{"type": "json_object"},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		g.cfg.BaseURL+"/chat/completions",
		bytes.NewBuffer(body),
	)
	if err != nil {
		return "", err
	}

	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("groq api returned status %d: %s", resp.StatusCode, string(raw))
	}

	// OpenAI-compatible response shape
	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return "", err
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return "", errors.New("empty groq response")
	}

	return result.Choices[0].Message.Content, nil
}
