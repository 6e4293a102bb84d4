package llm

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/Rajan-007/Food-Recommendation-AI/internal/menu"
)

// ExtractItems asks the client for a completion and reshapes whatever comes
// back into sanitized menu items. Extraction is best effort: any call or
// parse failure yields an empty slice, never an error.
func ExtractItems(ctx context.Context, client Client, ocrText string, uc UserContext) []menu.MenuItem {
	raw, err := client.ExtractMenu(ctx, ocrText, uc)
	if err != nil {
		log.Printf("llm extraction failed: %v", err)
		return []menu.MenuItem{}
	}

	return parseItems(raw)
}

func parseItems(raw string) []menu.MenuItem {
	rawItems, ok := decodeItems(raw)
	if !ok {
		// Models sometimes wrap JSON in prose or markdown fences.
		if sliced := extractJSON(raw); sliced != "" {
			rawItems, ok = decodeItems(sliced)
		}
	}
	if !ok {
		return []menu.MenuItem{}
	}

	items := make([]menu.MenuItem, 0, len(rawItems))
	for _, r := range rawItems {
		items = append(items, menu.SanitizeItem(r))
	}
	return items
}

// decodeItems accepts a bare array, or an object carrying an "items" or
// "menu" array. Valid JSON in any other shape is an empty result, not an
// error.
func decodeItems(raw string) ([]menu.RawItem, bool) {
	trimmed := strings.TrimSpace(raw)

	if strings.HasPrefix(trimmed, "[") {
		var arr []menu.RawItem
		if err := json.Unmarshal([]byte(trimmed), &arr); err != nil {
			return nil, false
		}
		return arr, true
	}

	var obj struct {
		Items []menu.RawItem `json:"items"`
		Menu  []menu.RawItem `json:"menu"`
	}
	if err := json.Unmarshal([]byte(trimmed), &obj); err != nil {
		return nil, false
	}

	if obj.Items != nil {
		return obj.Items, true
	}
	if obj.Menu != nil {
		return obj.Menu, true
	}
	return nil, true
}

// extractJSON slices the first { .. last } span out of surrounding text.
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start == -1 || end == -1 || end <= start {
		return ""
	}

	return text[start : end+1]
}
