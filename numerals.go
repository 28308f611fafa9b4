package humanize

import (
	"math"
	"strconv"
	"strings"
)

var arabicIndicDigits = [10]string{"۰", "١", "٢", "٣", "٤", "٥", "٦", "٧", "٨", "٩"}

var numeralSystems = map[string]NumeralFormatter{
	"latin":        FormatLatinCount,
	"arabic-indic": FormatArabicIndicCount,
}

// LookupNumeralSystem returns the count formatter registered under name
func LookupNumeralSystem(name string) (NumeralFormatter, bool) {
	fn, ok := numeralSystems[strings.ToLower(strings.TrimSpace(name))]
	return fn, ok
}

// FormatLatinCount renders the shortest representation of count that round
// trips, replacing the radix point with decimal. Counts below 1e-6 or from
// 1e21 up use exponent notation, e.g. 1e-7.
func FormatLatinCount(count float64, decimal string) string {
	formatted := formatNumber(count)
	if decimal == "" || decimal == "." {
		return formatted
	}
	return strings.Replace(formatted, ".", decimal, 1)
}

// FormatArabicIndicCount substitutes eastern arabic digits character by
// character.
func FormatArabicIndicCount(count float64, decimal string) string {
	formatted := formatNumber(count)

	var builder strings.Builder
	for _, r := range formatted {
		switch {
		case r >= '0' && r <= '9':
			builder.WriteString(arabicIndicDigits[r-'0'])
		case r == '.':
			builder.WriteString(decimal)
		default:
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

func formatNumber(count float64) string {
	abs := math.Abs(count)
	if abs == 0 || math.IsInf(abs, 0) || math.IsNaN(abs) || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(count, 'f', -1, 64)
	}

	// strconv pads the exponent to two digits
	mantissa, exponent, _ := strings.Cut(strconv.FormatFloat(count, 'e', -1, 64), "e")
	return mantissa + "e" + exponent[:1] + strings.TrimLeft(exponent[1:], "0")
}
