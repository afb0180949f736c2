package model

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{50, "50.0"},
		{0, "0.0"},
		{0.1, "0.1"},
		{1.5, "1.5"},
		{-2, "-2.0"},
		{0.1 + 0.2, "0.30000000000000004"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{1e15, "1000000000000000.0"},
		{1e16, "1e+16"},
		{12345.678, "12345.678"},
	}
	for _, tt := range tests {
		if got := FormatQuantity(tt.in); got != tt.want {
			t.Errorf("FormatQuantity(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCompare_ZeroDeltaIsLess(t *testing.T) {
	n := Nutrition{Calories: 100, Carbs: 10, Fats: 5, Proteins: 20}
	got := n.Compare(n)
	want := "0.0 less calories, 0.0 less grams of carbs, 0.0 less grams of fat, 0.0 less grams of protein"
	if got != want {
		t.Fatalf("Compare = %q, want %q", got, want)
	}
	if !strings.Contains(got, "0 less calories") {
		t.Fatal("zero delta should be classified as less")
	}
}

func TestCompare_MoreAndLess(t *testing.T) {
	consumed := Nutrition{Calories: 2100, Carbs: 200, Fats: 70.5, Proteins: 90}
	goal := Nutrition{Calories: 2000, Carbs: 250, Fats: 70, Proteins: 100}
	got := consumed.Compare(goal)
	want := "100.0 more calories, 50.0 less grams of carbs, 0.5 more grams of fat, 10.0 less grams of protein"
	if got != want {
		t.Fatalf("Compare = %q, want %q", got, want)
	}
}

func TestParseFoodItem_RoundTrip(t *testing.T) {
	items := []FoodItem{
		{Name: "pizza", Nutrition: Nutrition{285, 36, 10.4, 12}},
		{Name: "peanut_butter", Nutrition: Nutrition{94, 3.1, 8, 4}},
		{Name: "Mixed Case", Nutrition: Nutrition{0.00001, 0, -1, 1e16}},
	}
	for _, item := range items {
		got, err := ParseFoodItem(item.CSV(), FieldDelimiter)
		if err != nil {
			t.Fatalf("ParseFoodItem(%q): %v", item.CSV(), err)
		}
		if got != item {
			t.Errorf("round trip = %+v, want %+v", got, item)
		}
	}
}

func TestParseFoodItem_CommandDelimiter(t *testing.T) {
	got, err := ParseFoodItem("x-1-2-3-4", CommandDelimiter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "x" || got.Nutrition != (Nutrition{1, 2, 3, 4}) {
		t.Fatalf("got %+v", got)
	}
	if got.CSV() != "x,1.0,2.0,3.0,4.0" {
		t.Fatalf("CSV = %q", got.CSV())
	}
}

func TestParseFoodItem_Failures(t *testing.T) {
	inputs := []string{
		"",
		"x-1-2-3",
		"x-1-2-3-4-5",
		"x-1-two-3-4",
		"x-1-2-3-",
	}
	for _, in := range inputs {
		_, err := ParseFoodItem(in, CommandDelimiter)
		if err == nil {
			t.Errorf("ParseFoodItem(%q) succeeded, want error", in)
			continue
		}
		if !errors.Is(err, ErrParse) {
			t.Errorf("ParseFoodItem(%q) error = %v, want ErrParse", in, err)
		}
	}
}

func TestParseFoodItem_TrailingNewlineTolerated(t *testing.T) {
	got, err := ParseFoodItem("apple,95.0,25.0,0.3,0.5\n", FieldDelimiter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Nutrition.Proteins != 0.5 {
		t.Fatalf("Proteins = %v, want 0.5", got.Nutrition.Proteins)
	}
}

func TestNutritionScaleAndAdd(t *testing.T) {
	n := Nutrition{Calories: 100, Carbs: 10, Fats: 4, Proteins: 2}
	half := n.Scale(50 / 100.0)
	if half.Calories != 50 || half.Carbs != 5 || half.Fats != 2 || half.Proteins != 1 {
		t.Fatalf("Scale = %+v", half)
	}
	sum := half.Add(n)
	if sum.Calories != 150 {
		t.Fatalf("Add calories = %v, want 150", sum.Calories)
	}
}

func TestFoodItemString(t *testing.T) {
	f := FoodItem{Name: "peanut_butter", Nutrition: Nutrition{94, 3, 8, 4}}
	want := "peanut butter: 94.0 calories, 3.0g carbs, 8.0g fat, 4.0g protein"
	if got := f.String(); got != want {
		t.Fatalf("String = %q, want %q", got, want)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("9-5-2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d != NewDate(2024, time.September, 5) {
		t.Fatalf("got %+v", d)
	}
	if d.Filename() != "9-5-2024.csv" {
		t.Fatalf("Filename = %q", d.Filename())
	}

	padded, err := ParseDate("09-05-2024")
	if err != nil {
		t.Fatalf("zero padded date: %v", err)
	}
	if padded.String() != "9-5-2024" {
		t.Fatalf("String = %q, want 9-5-2024", padded.String())
	}

	for _, bad := range []string{"2-30-2024", "13-1-2024", "0-1-2024", "1-1", "a-b-c", "2024-09-05x"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) succeeded, want error", bad)
		}
	}
}

func TestDateValid(t *testing.T) {
	if !NewDate(2024, time.February, 29).Valid() {
		t.Error("2024-02-29 should be valid")
	}
	if NewDate(2023, time.February, 29).Valid() {
		t.Error("2023-02-29 should be invalid")
	}
	if (Date{}).Valid() {
		t.Error("zero Date should be invalid")
	}
}

func TestErrorKinds(t *testing.T) {
	cause := errors.New("disk full")
	err := NewError(KindIO, "writing ledger", cause)
	if !errors.Is(err, ErrIO) {
		t.Error("expected errors.Is(err, ErrIO)")
	}
	if !errors.Is(err, cause) {
		t.Error("expected cause to be unwrappable")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("IO error should not match ErrNotFound")
	}
	if KindOf(err) != KindIO {
		t.Errorf("KindOf = %v, want KindIO", KindOf(err))
	}
	if err.Error() != "writing ledger: disk full" {
		t.Errorf("Error() = %q", err.Error())
	}

	pre := NewError(KindPreexisting, "", nil)
	if pre.Error() != "preexisting item" {
		t.Errorf("Error() = %q, want preexisting item", pre.Error())
	}
}
