package common

import (
	"fmt"
	"strings"
)

// FormatMoney formats a value in rupees with two decimal places.
func FormatMoney(v float64) string {
	return fmt.Sprintf("₹%.2f", v)
}

// FormatSignedMoney formats a value with an explicit sign.
func FormatSignedMoney(v float64) string {
	if v >= 0 {
		return fmt.Sprintf("+₹%.2f", v)
	}
	return fmt.Sprintf("-₹%.2f", -v)
}

// FormatSignedPct formats a percentage with an explicit sign.
func FormatSignedPct(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}

// FormatLargeMoney abbreviates large rupee amounts. The crore tier sits
// between million and billion because Indian market caps are conventionally
// quoted in crores.
func FormatLargeMoney(v float64) string {
	abs := v
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1e12:
		return fmt.Sprintf("₹%.2fT", v/1e12)
	case abs >= 1e9:
		return fmt.Sprintf("₹%.2fB", v/1e9)
	case abs >= 1e7:
		return fmt.Sprintf("₹%.2fCr", v/1e7)
	case abs >= 1e6:
		return fmt.Sprintf("₹%.2fM", v/1e6)
	default:
		return fmt.Sprintf("₹%s", FormatCompactInt(int64(v)))
	}
}

// FormatShares abbreviates share counts.
func FormatShares(v int64) string {
	f := float64(v)
	switch {
	case f >= 1e9:
		return fmt.Sprintf("%.2fB", f/1e9)
	case f >= 1e6:
		return fmt.Sprintf("%.2fM", f/1e6)
	case f >= 1e3:
		return fmt.Sprintf("%.2fK", f/1e3)
	default:
		return FormatCompactInt(v)
	}
}

// FormatCompactInt renders an integer with comma grouping.
func FormatCompactInt(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%d", v)
	if len(s) > 3 {
		var parts []string
		for len(s) > 3 {
			parts = append([]string{s[len(s)-3:]}, parts...)
			s = s[:len(s)-3]
		}
		parts = append([]string{s}, parts...)
		s = strings.Join(parts, ",")
	}
	if neg {
		return "-" + s
	}
	return s
}

// Truncate shortens a string to max runes, appending an ellipsis.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
