package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/shastriUF/calorie-counter/internal/model"
)

// Ledger is one day's ordered consumption log. Insertion order is display
// order; deletion is by position. Each entry carries its cached calorie
// value and the grand total is always the sum over entries, never stored
// separately.
type Ledger struct {
	Entries []model.ConsumedEntry
}

func NewLedger() *Ledger {
	return &Ledger{Entries: make([]model.ConsumedEntry, 0)}
}

// AddEntry resolves ingredientName in the catalog, computes calories for
// the consumed quantity, and appends the entry. Fails with
// ErrIngredientNotFound or ErrConversionUnavailable; both are
// user-correctable. Quantity must be finite and > 0.
func (l *Ledger) AddEntry(catalog *Catalog, ingredientName string, quantity float64, unit, meal string) (model.ConsumedEntry, error) {
	ingredientName = strings.TrimSpace(ingredientName)
	if ingredientName == "" {
		return model.ConsumedEntry{}, fmt.Errorf("ingredient name is required")
	}
	if quantity <= 0 || math.IsInf(quantity, 0) || math.IsNaN(quantity) {
		return model.ConsumedEntry{}, fmt.Errorf("quantity must be a finite number > 0")
	}
	if meal != "" && !model.ValidMeal(meal) {
		return model.ConsumedEntry{}, fmt.Errorf("unknown meal %q (use %s)", meal, strings.Join(model.Meals, ", "))
	}
	ing, ok := catalog.Resolve(ingredientName)
	if !ok {
		return model.ConsumedEntry{}, fmt.Errorf("%w: %q", ErrIngredientNotFound, ingredientName)
	}
	calories, err := CaloriesForConsumption(IngredientDensity(ing), unit, quantity)
	if err != nil {
		return model.ConsumedEntry{}, fmt.Errorf("%s: %w", ing.Name, err)
	}
	entry := model.ConsumedEntry{
		Name:     ing.Name,
		Quantity: quantity,
		Unit:     unit,
		Calories: calories,
		Meal:     meal,
	}
	l.Entries = append(l.Entries, entry)
	return entry, nil
}

// DeleteAt removes the entry at the given position; later entries shift
// down by one. The total is recomputed from the remaining entries rather
// than adjusted by subtraction, so repeated deletes accumulate no
// floating-point drift.
func (l *Ledger) DeleteAt(index int) error {
	if index < 0 || index >= len(l.Entries) {
		return fmt.Errorf("entry index %d out of range (day has %d)", index, len(l.Entries))
	}
	l.Entries = append(l.Entries[:index], l.Entries[index+1:]...)
	return nil
}

// RecomputeAll refreshes every entry's cached calories from the current
// catalog. Best effort: entries whose ingredient no longer resolves, or
// whose unit family has no density anymore, keep their previous cached
// value rather than being zeroed.
func (l *Ledger) RecomputeAll(catalog *Catalog) {
	for i := range l.Entries {
		entry := &l.Entries[i]
		ing, ok := catalog.Resolve(entry.Name)
		if !ok {
			continue
		}
		calories, err := CaloriesForConsumption(IngredientDensity(ing), entry.Unit, entry.Quantity)
		if err != nil {
			continue
		}
		entry.Calories = calories
	}
}

// TotalCalories sums the cached calories of every entry.
func (l *Ledger) TotalCalories() float64 {
	var total float64
	for _, e := range l.Entries {
		total += e.Calories
	}
	return total
}

// TotalsByMeal sums calories per meal. Entries with no meal contribute to
// the grand total only and appear in no group.
func (l *Ledger) TotalsByMeal() map[string]float64 {
	totals := make(map[string]float64)
	for _, e := range l.Entries {
		if e.Meal == "" {
			continue
		}
		totals[e.Meal] += e.Calories
	}
	return totals
}

// FilterByMeal returns the entries whose meal equals meal, in ledger
// order. Display filtering and meal-scoped export both go through here.
func (l *Ledger) FilterByMeal(meal string) []model.ConsumedEntry {
	out := make([]model.ConsumedEntry, 0)
	for _, e := range l.Entries {
		if e.Meal == meal {
			out = append(out, e)
		}
	}
	return out
}
