package service

import (
	"fmt"
	"math"
	"strings"

	"github.com/shastriUF/calorie-counter/internal/model"
)

// Catalog is the ordered ingredient list. Order is display order and the
// basis for positional removal; the backing store document is authoritative
// and a Catalog in memory is only a cache of it.
type Catalog struct {
	Ingredients []model.Ingredient
}

func NewCatalog() *Catalog {
	return &Catalog{Ingredients: make([]model.Ingredient, 0)}
}

// Upsert records amountEntered calories per one unit for name. An existing
// ingredient (case-insensitive match) has only the entered unit's family
// density overwritten; the other two families keep their values, so an
// ingredient accumulates gram-, ml-, and count-based densities across
// edits. A new ingredient starts with just the entered family populated.
func (c *Catalog) Upsert(name string, amountEntered float64, unit string) (model.Ingredient, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Ingredient{}, fmt.Errorf("ingredient name is required")
	}
	if amountEntered <= 0 || math.IsInf(amountEntered, 0) || math.IsNaN(amountEntered) {
		return model.Ingredient{}, fmt.Errorf("calories must be a finite number > 0")
	}
	density, err := DensityFromEntry(amountEntered, unit)
	if err != nil {
		return model.Ingredient{}, err
	}

	if i, ok := c.indexOf(name); ok {
		ing := &c.Ingredients[i]
		ing.Name = name // latest spelling wins, identity is case-insensitive
		applyDensity(ing, density)
		return *ing, nil
	}
	ing := model.Ingredient{Name: name}
	applyDensity(&ing, density)
	c.Ingredients = append(c.Ingredients, ing)
	return ing, nil
}

// Resolve looks an ingredient up by case-insensitive name.
func (c *Catalog) Resolve(name string) (model.Ingredient, bool) {
	if i, ok := c.indexOf(name); ok {
		return c.Ingredients[i], true
	}
	return model.Ingredient{}, false
}

// Remove deletes the ingredient at the given display position. Positions
// after it shift down by one; single-writer discipline assumed.
func (c *Catalog) Remove(index int) error {
	if index < 0 || index >= len(c.Ingredients) {
		return fmt.Errorf("ingredient index %d out of range (catalog has %d)", index, len(c.Ingredients))
	}
	c.Ingredients = append(c.Ingredients[:index], c.Ingredients[index+1:]...)
	return nil
}

// Search returns a snapshot of ingredients whose name contains the given
// text, case-insensitively, in catalog order.
func (c *Catalog) Search(substr string) []model.Ingredient {
	needle := strings.ToLower(strings.TrimSpace(substr))
	out := make([]model.Ingredient, 0)
	for _, ing := range c.Ingredients {
		if strings.Contains(strings.ToLower(ing.Name), needle) {
			out = append(out, ing)
		}
	}
	return out
}

func (c *Catalog) indexOf(name string) (int, bool) {
	for i, ing := range c.Ingredients {
		if strings.EqualFold(ing.Name, name) {
			return i, true
		}
	}
	return 0, false
}

func applyDensity(ing *model.Ingredient, d Density) {
	if d.PerGram != nil {
		ing.CaloriesPerGram = d.PerGram
	}
	if d.PerMl != nil {
		ing.CaloriesPerMl = d.PerMl
	}
	if d.PerCount != nil {
		ing.CaloriesPerCount = d.PerCount
	}
}
