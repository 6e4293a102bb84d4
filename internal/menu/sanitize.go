package menu

import (
	"html"
	"math"
	"strconv"
	"strings"
)

var validCategories = map[string]bool{
	CategoryRecommended:    true,
	CategoryGood:           true,
	CategoryNotRecommended: true,
}

// SanitizeItem coerces an arbitrary parsed item into the fixed schema.
// It is total: malformed fields degrade to safe defaults, it never fails.
func SanitizeItem(raw RawItem) MenuItem {
	item := MenuItem{
		Name:           sanitizeField(raw.Name),
		Price:          sanitizeNumber(raw.Price),
		Nutrition:      sanitizeNutrition(raw.Nutrition),
		Category:       CategoryGood,
		Recommendation: sanitizeField(raw.Recommendation),
	}

	if item.Name == "" {
		item.Name = "Unknown Item"
	}

	if cat, ok := raw.Category.(string); ok && validCategories[cat] {
		item.Category = cat
	}

	return item
}

// SanitizeText trims and HTML-escapes an untrusted string before it is
// embedded in a response or a prompt.
func SanitizeText(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}

func sanitizeField(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return SanitizeText(s)
}

func sanitizeNumber(v any) float64 {
	switch n := v.(type) {
	case float64:
		return math.Abs(n)
	case int:
		return math.Abs(float64(n))
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return math.Abs(f)
	default:
		return 0
	}
}

func sanitizeCount(v any) int {
	switch n := v.(type) {
	case float64:
		return int(math.Abs(n))
	case int:
		if n < 0 {
			return -n
		}
		return n
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return int(math.Abs(f))
	default:
		return 0
	}
}

func sanitizeNutrition(raw map[string]any) Nutrition {
	return Nutrition{
		Calories: sanitizeCount(raw["calories"]),
		Protein:  sanitizeCount(raw["protein"]),
		Carbs:    sanitizeCount(raw["carbs"]),
		Fats:     sanitizeCount(raw["fats"]),
		Fiber:    sanitizeCount(raw["fiber"]),
	}
}
