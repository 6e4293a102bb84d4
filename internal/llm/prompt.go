package llm

import (
	"fmt"
	"strings"

	"github.com/Rajan-007/Food-Recommendation-AI/internal/menu"
)

// BuildMenuPrompt renders the system prompt for menu extraction. User-supplied
// fields are sanitized before they are embedded.
func BuildMenuPrompt(uc UserContext) string {
	goal := menu.SanitizeText(uc.Goal)
	timeOfDay := menu.SanitizeText(uc.TimeOfDay)

	consumed := make([]string, 0, len(uc.Consumed))
	for _, f := range uc.Consumed {
		if s := menu.SanitizeText(f); s != "" {
			consumed = append(consumed, s)
		}
	}

	return fmt.Sprintf(`You are a menu data extraction expert. Extract menu items and their prices from OCR text that may contain errors and noise.

User Context:
- Goal: %s (weight loss, muscle gain, healthy eating, maintenance)
- Time of day: %s (breakfast, lunch, dinner, snack, any time)
- Already consumed: %s

For each menu item, provide:
1. Name and price (cleaned from OCR)
2. Estimated nutrition per serving: calories (kcal), protein (g), carbs (g), fats (g), fiber (g)
3. Category: "recommended", "good", or "not recommended" based on user's goal and what they've eaten
4. Recommendation: Brief reason for the category

Return ONLY a valid JSON object with this EXACT format:
{
  "items": [
    {
      "name": "Item Name",
      "price": 123,
      "nutrition": {
        "calories": 123,
        "protein": 12,
        "carbs": 30,
        "fats": 5,
        "fiber": 3
      },
      "category": "recommended",
      "recommendation": "High protein, low fat - perfect for weight loss"
    }
  ]
}

Rules:
- Remove all OCR noise and gibberish
- Fix common OCR errors
- Extract only food/drink items with prices
- Convert all currency symbols to numbers only
- Return valid JSON only, no markdown or explanation`,
		goal, timeOfDay, strings.Join(consumed, ", "))
}
