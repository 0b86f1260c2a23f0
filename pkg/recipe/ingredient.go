package recipe

import (
	"strconv"
	"strings"
)

// Ingredient is a named quantity consumed or produced by a recipe.
type Ingredient struct {
	Name     string  `json:"name" yaml:"name"`
	Quantity float64 `json:"quantity" yaml:"quantity"`
}

// Scale multiplies the quantity by n.
func (i *Ingredient) Scale(n int) {
	i.Quantity *= float64(n)
}

// String renders the ingredient as "<quantity> <name>".
func (i Ingredient) String() string {
	return strconv.FormatFloat(i.Quantity, 'f', -1, 64) + " " + i.Name
}

// IngredientCollection is an ordered list of ingredients. Duplicate names are
// allowed and order is preserved for display.
type IngredientCollection []Ingredient

// Scale multiplies every quantity in place by n.
func (c IngredientCollection) Scale(n int) {
	for i := range c {
		c[i].Scale(n)
	}
}

// Clone returns an independent copy of the collection.
func (c IngredientCollection) Clone() IngredientCollection {
	if c == nil {
		return nil
	}
	out := make(IngredientCollection, len(c))
	copy(out, c)
	return out
}

// Quantity returns the summed quantity of every entry named name.
func (c IngredientCollection) Quantity(name string) float64 {
	var total float64
	for _, ing := range c {
		if ing.Name == name {
			total += ing.Quantity
		}
	}
	return total
}

// String joins the ingredients with ", ".
func (c IngredientCollection) String() string {
	parts := make([]string, len(c))
	for i, ing := range c {
		parts[i] = ing.String()
	}
	return strings.Join(parts, ", ")
}
