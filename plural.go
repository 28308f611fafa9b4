package humanize

import (
	"math"
	"sort"
	"strings"
)

// PluralRule selects the plural category for a count
type PluralRule func(count float64) PluralCategory

var pluralRules = map[string]PluralRule{
	"one-other":       OneOtherRule,
	"french":          FrenchRule,
	"slavic":          SlavicRule,
	"polish":          PolishRule,
	"czech-slovak":    CzechSlovakRule,
	"lithuanian":      LithuanianRule,
	"lithuanian-year": LithuanianYearRule,
	"latvian":         LatvianRule,
	"arabic":          ArabicRule,
}

// LookupPluralRule returns the rule family registered under name
func LookupPluralRule(name string) (PluralRule, bool) {
	rule, ok := pluralRules[strings.ToLower(strings.TrimSpace(name))]
	return rule, ok
}

// PluralRuleNames lists the registered rule families
func PluralRuleNames() []string {
	names := make([]string, 0, len(pluralRules))
	for name := range pluralRules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OneOtherRule distinguishes exactly one from everything else.
func OneOtherRule(c float64) PluralCategory {
	if c == 1 {
		return PluralOne
	}
	return PluralOther
}

// FrenchRule treats every count below two as singular.
func FrenchRule(c float64) PluralCategory {
	if c >= 2 {
		return PluralOther
	}
	return PluralOne
}

// SlavicRule implements the one/few/many split used by russian, ukrainian
// and bulgarian. Fractions are other, as in CLDR.
func SlavicRule(c float64) PluralCategory {
	if !isWhole(c) {
		return PluralOther
	}
	mod10, mod100 := math.Mod(c, 10), math.Mod(c, 100)
	switch {
	case (mod100 >= 5 && mod100 <= 20) || (mod10 >= 5 && mod10 <= 9) || mod10 == 0:
		return PluralMany
	case mod10 == 1:
		return PluralOne
	case c > 1:
		return PluralFew
	default:
		return PluralMany
	}
}

// PolishRule uses other for fractions, matching CLDR.
func PolishRule(c float64) PluralCategory {
	mod10, mod100 := math.Mod(c, 10), math.Mod(c, 100)
	switch {
	case c == 1:
		return PluralOne
	case !isWhole(c):
		return PluralOther
	case mod10 >= 2 && mod10 <= 4 && !(mod100 > 10 && mod100 < 20):
		return PluralFew
	default:
		return PluralMany
	}
}

// CzechSlovakRule uses many for fractions, matching CLDR.
func CzechSlovakRule(c float64) PluralCategory {
	mod10, mod100 := math.Mod(c, 10), math.Mod(c, 100)
	switch {
	case c == 1:
		return PluralOne
	case !isWhole(c):
		return PluralMany
	case mod10 >= 2 && mod10 <= 4 && mod100 < 10:
		return PluralFew
	default:
		return PluralOther
	}
}

// LithuanianRule folds fractions into the few form.
func LithuanianRule(c float64) PluralCategory {
	mod10, mod100 := math.Mod(c, 10), math.Mod(c, 100)
	switch {
	case c == 1 || (mod10 == 1 && mod100 > 20):
		return PluralOne
	case !isWhole(c) || (mod10 >= 2 && mod100 > 20) || (mod10 >= 2 && mod100 < 10):
		return PluralFew
	default:
		return PluralOther
	}
}

// LithuanianYearRule covers "metai", which only has a nominative and a
// genitive plural.
func LithuanianYearRule(c float64) PluralCategory {
	mod100 := math.Mod(c, 100)
	if math.Mod(c, 10) == 0 || (mod100 >= 10 && mod100 <= 20) {
		return PluralOther
	}
	return PluralOne
}

func LatvianRule(c float64) PluralCategory {
	if math.Mod(c, 10) == 1 && math.Mod(c, 100) != 11 {
		return PluralOne
	}
	return PluralOther
}

// ArabicRule distinguishes one, two and the 3..10 range; every other count
// takes the other form.
func ArabicRule(c float64) PluralCategory {
	switch {
	case c == 1:
		return PluralOne
	case c == 2:
		return PluralTwo
	case c > 2 && c < 11:
		return PluralFew
	default:
		return PluralOther
	}
}

func isWhole(c float64) bool {
	return math.Floor(c) == c
}
