// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatCalories rounds to whole calories with comma separators.
// e.g., 1234.6 -> "1,235"
func FormatCalories(cal float64) string {
	return FormatNumber(int64(math.Round(cal)))
}

// FormatGrams formats a gram quantity with one decimal place.
// e.g., 27 -> "27.0g", 1234.56 -> "1,234.6g"
func FormatGrams(g float64) string {
	tenths := int64(math.Round(math.Abs(g) * 10))
	s := FormatNumber(tenths/10) + "." + strconv.FormatInt(tenths%10, 10) + "g"
	if g < 0 && tenths != 0 {
		s = "-" + s
	}
	return s
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatDelta formats consumed minus goal with an explicit sign, rounded to
// whole units. e.g., (2150, 2000) -> "+150", (1800, 2000) -> "-200"
func FormatDelta(consumed, goal float64) string {
	delta := math.Round(consumed - goal)
	if delta >= 0 {
		return "+" + FormatNumber(int64(delta))
	}
	return "-" + FormatNumber(int64(-delta))
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}
