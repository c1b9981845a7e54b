package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MeasureMode selects how a measurement is rendered for display.
type MeasureMode string

const (
	MeasureBoth     MeasureMode = "both"     // fraction followed by decimal
	MeasureFraction MeasureMode = "fraction" // nearest 1/32 fraction
	MeasureDecimal  MeasureMode = "decimal"  // plain 3-decimal inches
)

// ParseFraction converts user-entered measurement text into decimal inches.
// It accepts a bare number ("24"), a decimal ("24.5"), a simple fraction
// ("3/4"), or a mixed number ("24 3/4"), with an optional trailing inch
// mark. Empty or unparseable input yields 0; the function never fails.
func ParseFraction(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, `"`)
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	fields := strings.Fields(s)
	if len(fields) == 2 && strings.Contains(fields[1], "/") {
		whole, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return 0
		}
		frac, ok := parseSimpleFraction(fields[1])
		if !ok {
			return 0
		}
		return whole + frac
	}

	if strings.Contains(s, "/") {
		frac, ok := parseSimpleFraction(s)
		if !ok {
			return 0
		}
		return frac
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseSimpleFraction parses "n/d" into a decimal value.
func parseSimpleFraction(s string) (float64, bool) {
	num, den, found := strings.Cut(s, "/")
	if !found {
		return 0, false
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0, false
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
	if err != nil || d == 0 {
		return 0, false
	}
	return n / d, true
}

// DecimalToFraction renders decimal inches as whole inches plus a
// remainder rounded to the nearest 1/32, reduced to lowest terms.
// Zero (and anything that rounds to it) renders as `0"`.
func DecimalToFraction(v float64) string {
	if v <= 0 {
		return `0"`
	}

	whole := int(v)
	num := int(math.Round((v - float64(whole)) * 32))
	if num == 32 {
		whole++
		num = 0
	}

	if num == 0 {
		if whole == 0 {
			return `0"`
		}
		return strconv.Itoa(whole)
	}

	g := gcd(num, 32)
	n, d := num/g, 32/g
	if whole == 0 {
		return fmt.Sprintf(`%d/%d"`, n, d)
	}
	return fmt.Sprintf(`%d %d/%d"`, whole, n, d)
}

// FormatMeasurement renders decimal inches per the configured display mode.
func FormatMeasurement(v float64, mode MeasureMode) string {
	switch mode {
	case MeasureFraction:
		return DecimalToFraction(v)
	case MeasureDecimal:
		return fmt.Sprintf("%.3f", v)
	default:
		return fmt.Sprintf("%s (%.3f)", DecimalToFraction(v), v)
	}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
