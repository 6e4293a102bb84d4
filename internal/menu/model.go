package menu

// Categories a menu item can carry relative to the caller's dietary goal.
const (
	CategoryRecommended    = "recommended"
	CategoryGood           = "good"
	CategoryNotRecommended = "not recommended"
)

// Nutrition holds estimated per-serving values. All fields are non-negative
// after sanitization.
type Nutrition struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fats     int `json:"fats"`
	Fiber    int `json:"fiber"`
}

// MenuItem is one extracted menu entry. Items live only for the duration of
// the request that produced them.
type MenuItem struct {
	Name           string    `json:"name"`
	Price          float64   `json:"price"`
	Nutrition      Nutrition `json:"nutrition"`
	Category       string    `json:"category"`
	Recommendation string    `json:"recommendation"`
}

// RawItem mirrors one element of the model's JSON payload before
// sanitization. Fields are loosely typed because the completion carries no
// structural guarantee.
type RawItem struct {
	Name           any            `json:"name"`
	Price          any            `json:"price"`
	Nutrition      map[string]any `json:"nutrition"`
	Category       any            `json:"category"`
	Recommendation any            `json:"recommendation"`
}
