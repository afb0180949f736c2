// Package model defines domain types for foodinme food items, nutrition and days.
package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Nutrition holds the four tracked nutrient quantities.
// Values are unchecked: negatives are accepted everywhere.
type Nutrition struct {
	Calories float64 `json:"calories" yaml:"calories"`
	Carbs    float64 `json:"carbs" yaml:"carbs"`
	Fats     float64 `json:"fats" yaml:"fats"`
	Proteins float64 `json:"proteins" yaml:"proteins"`
}

// Add returns the field-wise sum of n and o.
func (n Nutrition) Add(o Nutrition) Nutrition {
	return Nutrition{
		Calories: n.Calories + o.Calories,
		Carbs:    n.Carbs + o.Carbs,
		Fats:     n.Fats + o.Fats,
		Proteins: n.Proteins + o.Proteins,
	}
}

// Scale returns n with every field multiplied by factor.
func (n Nutrition) Scale(factor float64) Nutrition {
	return Nutrition{
		Calories: n.Calories * factor,
		Carbs:    n.Carbs * factor,
		Fats:     n.Fats * factor,
		Proteins: n.Proteins * factor,
	}
}

// MarshalJSON encodes each field as a number, or as the string "nan", "inf"
// or "-inf" when it has no JSON number form.
func (n Nutrition) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range []struct {
		key string
		v   float64
	}{
		{"calories", n.Calories},
		{"carbs", n.Carbs},
		{"fats", n.Fats},
		{"proteins", n.Proteins},
	} {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(f.key))
		b.WriteByte(':')
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			b.WriteString(strconv.Quote(FormatQuantity(f.v)))
		} else {
			b.WriteString(strconv.FormatFloat(f.v, 'g', -1, 64))
		}
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}

// CSV renders "calories,carbs,fats,proteins".
func (n Nutrition) CSV() string {
	return strings.Join([]string{
		FormatQuantity(n.Calories),
		FormatQuantity(n.Carbs),
		FormatQuantity(n.Fats),
		FormatQuantity(n.Proteins),
	}, FieldDelimiter)
}

// String renders a human-readable summary, e.g. "10.0 calories, 1.0g carbs, 2.0g fat, 3.0g protein".
func (n Nutrition) String() string {
	return fmt.Sprintf("%s calories, %sg carbs, %sg fat, %sg protein",
		FormatQuantity(n.Calories), FormatQuantity(n.Carbs),
		FormatQuantity(n.Fats), FormatQuantity(n.Proteins))
}

// Compare describes how n differs from other, one phrase per nutrient joined by ", ".
// A delta is "more" only when strictly positive; zero reads as "less".
func (n Nutrition) Compare(other Nutrition) string {
	return strings.Join([]string{
		deltaPhrase(n.Calories-other.Calories, "calories"),
		deltaPhrase(n.Carbs-other.Carbs, "grams of carbs"),
		deltaPhrase(n.Fats-other.Fats, "grams of fat"),
		deltaPhrase(n.Proteins-other.Proteins, "grams of protein"),
	}, ", ")
}

func deltaPhrase(delta float64, metric string) string {
	word := "less"
	if delta > 0 {
		word = "more"
	}
	return fmt.Sprintf("%s %s %s", FormatQuantity(math.Abs(delta)), word, metric)
}

// FormatQuantity renders f in the stored-file representation: the shortest
// round-trip decimal, ".0" appended to integral values, and exponent form
// only when the decimal exponent is < -4 or >= 16.
func FormatQuantity(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	exp := decimalExponent(f)
	if f != 0 && (exp < -4 || exp >= 16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}

// decimalExponent returns the power of ten of f's leading digit.
func decimalExponent(f float64) int {
	if f == 0 {
		return 0
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	i := strings.LastIndexByte(s, 'e')
	exp, _ := strconv.Atoi(s[i+1:])
	return exp
}

// FormatGoal renders a goal quantity in shortest form without a forced ".0".
func FormatGoal(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ParseQuantity parses a stored or typed numeric field. Surrounding
// whitespace is ignored; "inf" and "nan" spellings are accepted.
func ParseQuantity(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
