package model

import (
	"fmt"
	"strings"
)

const (
	// CommandDelimiter separates fields in typed input, e.g. "pizza-285-36-10-12".
	CommandDelimiter = "-"
	// FieldDelimiter separates fields in every stored file.
	FieldDelimiter = ","
)

// CatalogHeader is the first line of the catalog file.
const CatalogHeader = "name,calories (in grams),carbohydrates (in grams),fats (in grams),proteins (in grams)"

// FoodItem is a named nutrition record. Name is the catalog key.
type FoodItem struct {
	Name      string    `json:"name" yaml:"name"`
	Nutrition Nutrition `json:"nutrition" yaml:"nutrition"`
}

// ParseFoodItem splits text on delim and builds a FoodItem from exactly five
// fields: a name taken verbatim, then four numbers. No partial item is
// returned on failure.
func ParseFoodItem(text, delim string) (FoodItem, error) {
	fields := strings.Split(text, delim)
	if len(fields) != 5 {
		return FoodItem{}, NewError(KindParse,
			fmt.Sprintf("expected 5 fields in %q, got %d", text, len(fields)), nil)
	}

	var values [4]float64
	for i, f := range fields[1:] {
		v, err := ParseQuantity(f)
		if err != nil {
			return FoodItem{}, NewError(KindParse,
				fmt.Sprintf("field %d of %q is not a number", i+2, text), err)
		}
		values[i] = v
	}

	return FoodItem{
		Name: fields[0],
		Nutrition: Nutrition{
			Calories: values[0],
			Carbs:    values[1],
			Fats:     values[2],
			Proteins: values[3],
		},
	}, nil
}

// CSV renders "name,calories,carbs,fats,proteins".
func (f FoodItem) CSV() string {
	return f.Name + FieldDelimiter + f.Nutrition.CSV()
}

// DisplayName shows underscores as spaces.
func (f FoodItem) DisplayName() string {
	return DisplayName(f.Name)
}

// String renders e.g. "peanut butter: 94.0 calories, 3.0g carbs, 8.0g fat, 4.0g protein".
func (f FoodItem) String() string {
	return f.DisplayName() + ": " + f.Nutrition.String()
}

// DisplayName converts a stored name to its display form.
func DisplayName(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}
