package model

// Ingredient is a catalog entry. Name is the identity key, compared
// case-insensitively. The three densities are independent: each holds
// calories per canonical unit of its measure family (gram, milliliter,
// or count) and is nil until an upsert in that family populates it.
// At least one density is non-nil after a successful upsert.
type Ingredient struct {
	Name             string   `json:"name"`
	CaloriesPerGram  *float64 `json:"caloriesPerGram"`
	CaloriesPerMl    *float64 `json:"caloriesPerMl"`
	CaloriesPerCount *float64 `json:"caloriesPerCount"`
}

// ConsumedEntry is one logged consumption. Name is a weak reference to
// an Ingredient; a dangling name simply fails to resolve on recompute.
// Calories is the cached product of density, conversion factor, and
// quantity as of entry time or the last recompute. Meal is empty for
// entries written before meals existed.
type ConsumedEntry struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Calories float64 `json:"calories"`
	Meal     string  `json:"meal,omitempty"`
}

const (
	MealBreakfast = "Breakfast"
	MealLunch     = "Lunch"
	MealDinner    = "Dinner"
	MealSnack     = "Snack"
)

// DefaultMeal is applied when a new entry is logged without a meal.
// Stored entries with no meal are left as-is, never defaulted.
const DefaultMeal = MealSnack

// Meals lists the meal vocabulary in display order.
var Meals = []string{MealBreakfast, MealLunch, MealDinner, MealSnack}

func ValidMeal(meal string) bool {
	for _, m := range Meals {
		if m == meal {
			return true
		}
	}
	return false
}
