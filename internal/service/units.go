package service

import (
	"fmt"
	"strings"

	"github.com/shastriUF/calorie-counter/internal/model"
)

type unitKind string

const (
	unitKindMass   unitKind = "mass"
	unitKindVolume unitKind = "volume"
	unitKindCount  unitKind = "count"
)

type unitDef struct {
	kind       unitKind
	toBaseUnit float64
}

// unitTable maps each unit in the fixed vocabulary to its measure family
// and the factor to that family's canonical unit (g, ml, or count).
var unitTable = map[string]unitDef{
	// mass (base = g)
	"grams": {kind: unitKindMass, toBaseUnit: 1},
	"oz":    {kind: unitKindMass, toBaseUnit: 28.3495},

	// volume (base = ml)
	"ml":          {kind: unitKindVolume, toBaseUnit: 1},
	"teaspoons":   {kind: unitKindVolume, toBaseUnit: 5},
	"tablespoons": {kind: unitKindVolume, toBaseUnit: 15},
	"cups":        {kind: unitKindVolume, toBaseUnit: 240},

	// count (base = one item)
	"count": {kind: unitKindCount, toBaseUnit: 1},
}

// Units lists the unit vocabulary in a stable order for help text.
var Units = []string{"grams", "oz", "teaspoons", "tablespoons", "cups", "ml", "count"}

// Density holds calories per canonical unit for each measure family.
// Fields are nil for families with no recorded value.
type Density struct {
	PerGram  *float64
	PerMl    *float64
	PerCount *float64
}

// IngredientDensity extracts the density record from a catalog entry.
func IngredientDensity(ing model.Ingredient) Density {
	return Density{
		PerGram:  ing.CaloriesPerGram,
		PerMl:    ing.CaloriesPerMl,
		PerCount: ing.CaloriesPerCount,
	}
}

// DensityFromEntry converts a declared calorie amount per one unit into
// calories per the unit family's canonical unit. Exactly one field of
// the result is non-nil.
func DensityFromEntry(amountEntered float64, unit string) (Density, error) {
	def, ok := resolveUnit(unit)
	if !ok {
		return Density{}, fmt.Errorf("%w: %q", ErrInvalidUnit, unit)
	}
	perBase := amountEntered / def.toBaseUnit
	switch def.kind {
	case unitKindMass:
		return Density{PerGram: &perBase}, nil
	case unitKindVolume:
		return Density{PerMl: &perBase}, nil
	default:
		return Density{PerCount: &perBase}, nil
	}
}

// CaloriesForConsumption computes calories for consuming quantity of
// unit, given a density record. No rounding is applied; values carry
// ordinary floating-point noise.
func CaloriesForConsumption(d Density, unit string, quantity float64) (float64, error) {
	def, ok := resolveUnit(unit)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUnit, unit)
	}
	var perBase *float64
	switch def.kind {
	case unitKindMass:
		perBase = d.PerGram
	case unitKindVolume:
		perBase = d.PerMl
	default:
		perBase = d.PerCount
	}
	if perBase == nil {
		return 0, fmt.Errorf("%w: unit %q", ErrConversionUnavailable, unit)
	}
	return *perBase * def.toBaseUnit * quantity, nil
}

// ValidUnit reports whether unit is in the fixed vocabulary.
func ValidUnit(unit string) bool {
	_, ok := resolveUnit(unit)
	return ok
}

func resolveUnit(unit string) (unitDef, bool) {
	def, ok := unitTable[strings.ToLower(strings.TrimSpace(unit))]
	return def, ok
}
