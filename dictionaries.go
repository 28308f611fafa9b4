package humanize

import "math"

// goDictionaries holds languages whose forms depend on the count in ways the
// category rules cannot express.
func goDictionaries() Dictionaries {
	return Dictionaries{
		"hr": croatian(),
		"sl": slovenian(),
	}
}

func croatian() *Dictionary {
	twoToFour := func(c float64) bool {
		mod10 := math.Mod(c, 10)
		return mod10 == 2 || mod10 == 3 || mod10 == 4
	}

	return &Dictionary{
		Language: "hr",
		Decimal:  ",",
		Future:   "za %s",
		Past:     "prije %s",
		Units: map[Unit]Word{
			UnitYear: RuleFunc(func(c float64) string {
				if twoToFour(c) {
					return "godine"
				}
				return "godina"
			}),
			UnitMonth: RuleFunc(func(c float64) string {
				switch {
				case c == 1:
					return "mjesec"
				case c == 2 || c == 3 || c == 4:
					return "mjeseca"
				}
				return "mjeseci"
			}),
			UnitWeek: RuleFunc(func(c float64) string {
				if math.Mod(c, 10) == 1 && c != 11 {
					return "tjedan"
				}
				return "tjedna"
			}),
			UnitDay: RuleFunc(func(c float64) string {
				if c == 1 {
					return "dan"
				}
				return "dana"
			}),
			UnitHour: RuleFunc(func(c float64) string {
				switch {
				case c == 1:
					return "sat"
				case c == 2 || c == 3 || c == 4:
					return "sata"
				}
				return "sati"
			}),
			UnitMinute: RuleFunc(func(c float64) string {
				if twoToFour(c) && (c < 10 || c > 14) {
					return "minute"
				}
				return "minuta"
			}),
			UnitSecond: RuleFunc(func(c float64) string {
				mod10 := math.Mod(c, 10)
				switch {
				case mod10 == 5 || (isWhole(c) && c >= 10 && c <= 19):
					return "sekundi"
				case mod10 == 1:
					return "sekunda"
				case twoToFour(c):
					return "sekunde"
				}
				return "sekundi"
			}),
			UnitMillisecond: RuleFunc(func(c float64) string {
				switch {
				case c == 1:
					return "milisekunda"
				case twoToFour(c):
					return "milisekunde"
				}
				return "milisekundi"
			}),
		},
	}
}

func slovenian() *Dictionary {
	fractionUpTo := func(c, limit float64) bool {
		return !isWhole(c) && math.Mod(c, 100) <= limit
	}

	return &Dictionary{
		Language: "sl",
		Decimal:  ",",
		Future:   "čez %s",
		Past:     "pred %s",
		Units: map[Unit]Word{
			UnitYear: RuleFunc(func(c float64) string {
				mod100 := math.Mod(c, 100)
				switch {
				case math.Mod(c, 10) == 1:
					return "leto"
				case mod100 == 2:
					return "leti"
				case mod100 == 3 || mod100 == 4 || fractionUpTo(c, 5):
					return "leta"
				}
				return "let"
			}),
			UnitMonth: RuleFunc(func(c float64) string {
				mod10 := math.Mod(c, 10)
				switch {
				case mod10 == 1:
					return "mesec"
				case math.Mod(c, 100) == 2 || fractionUpTo(c, 5):
					return "meseca"
				case mod10 == 3 || mod10 == 4:
					return "mesece"
				}
				return "mesecev"
			}),
			UnitWeek: RuleFunc(func(c float64) string {
				mod10 := math.Mod(c, 10)
				switch {
				case mod10 == 1:
					return "teden"
				case mod10 == 2 || fractionUpTo(c, 4):
					return "tedna"
				case mod10 == 3 || mod10 == 4:
					return "tedne"
				}
				return "tednov"
			}),
			UnitDay: RuleFunc(func(c float64) string {
				if math.Mod(c, 100) == 1 {
					return "dan"
				}
				return "dni"
			}),
			UnitHour: RuleFunc(func(c float64) string {
				mod10 := math.Mod(c, 10)
				switch {
				case mod10 == 1:
					return "ura"
				case math.Mod(c, 100) == 2:
					return "uri"
				case mod10 == 3 || mod10 == 4 || !isWhole(c):
					return "ure"
				}
				return "ur"
			}),
			UnitMinute: RuleFunc(func(c float64) string {
				mod10 := math.Mod(c, 10)
				switch {
				case mod10 == 1:
					return "minuta"
				case mod10 == 2:
					return "minuti"
				case mod10 == 3 || mod10 == 4 || fractionUpTo(c, 4):
					return "minute"
				}
				return "minut"
			}),
			UnitSecond:      slovenianSeconds("sekund"),
			UnitMillisecond: slovenianSeconds("milisekund"),
		},
	}
}

// slovenianSeconds covers the second and millisecond forms, which differ
// only by stem.
func slovenianSeconds(stem string) Word {
	return RuleFunc(func(c float64) string {
		mod100 := math.Mod(c, 100)
		switch {
		case math.Mod(c, 10) == 1:
			return stem + "a"
		case mod100 == 2:
			return stem + "i"
		case mod100 == 3 || mod100 == 4 || !isWhole(c):
			return stem + "e"
		}
		return stem
	})
}
