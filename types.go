package humanize

import (
	"fmt"
	"strings"
)

// Unit identifies a calendar-like unit used for decomposition
type Unit string

const (
	UnitYear        Unit = "y"
	UnitMonth       Unit = "mo"
	UnitWeek        Unit = "w"
	UnitDay         Unit = "d"
	UnitHour        Unit = "h"
	UnitMinute      Unit = "m"
	UnitSecond      Unit = "s"
	UnitMillisecond Unit = "ms"
)

// AllUnits lists every unit in canonical, descending-weight order.
var AllUnits = []Unit{
	UnitYear,
	UnitMonth,
	UnitWeek,
	UnitDay,
	UnitHour,
	UnitMinute,
	UnitSecond,
	UnitMillisecond,
}

var unitNames = map[string]Unit{
	"y": UnitYear, "year": UnitYear, "years": UnitYear,
	"mo": UnitMonth, "month": UnitMonth, "months": UnitMonth,
	"w": UnitWeek, "week": UnitWeek, "weeks": UnitWeek,
	"d": UnitDay, "day": UnitDay, "days": UnitDay,
	"h": UnitHour, "hour": UnitHour, "hours": UnitHour,
	"m": UnitMinute, "minute": UnitMinute, "minutes": UnitMinute,
	"s": UnitSecond, "second": UnitSecond, "seconds": UnitSecond,
	"ms": UnitMillisecond, "millisecond": UnitMillisecond, "milliseconds": UnitMillisecond,
}

// ParseUnit accepts a unit identifier or its english name
func ParseUnit(value string) (Unit, error) {
	if unit, ok := unitNames[strings.ToLower(strings.TrimSpace(value))]; ok {
		return unit, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownUnit, value)
}

// DefaultUnitMeasures holds the fixed length of every unit in milliseconds.
// Months and years use average lengths.
var DefaultUnitMeasures = map[Unit]float64{
	UnitYear:        31557600000,
	UnitMonth:       2629800000,
	UnitWeek:        604800000,
	UnitDay:         86400000,
	UnitHour:        3600000,
	UnitMinute:      60000,
	UnitSecond:      1000,
	UnitMillisecond: 1,
}

// Piece is one (unit, count) result of decomposition
type Piece struct {
	Unit  Unit
	Count float64
}

type PluralCategory string

const (
	PluralZero  PluralCategory = "zero"
	PluralOne   PluralCategory = "one"
	PluralTwo   PluralCategory = "two"
	PluralFew   PluralCategory = "few"
	PluralMany  PluralCategory = "many"
	PluralOther PluralCategory = "other"
)

func parsePluralCategory(value string) (PluralCategory, error) {
	switch category := PluralCategory(strings.ToLower(strings.TrimSpace(value))); category {
	case PluralZero, PluralOne, PluralTwo, PluralFew, PluralMany, PluralOther:
		return category, nil
	default:
		return "", fmt.Errorf("unknown plural category %q", value)
	}
}

// Word is the dictionary entry for a unit: either a constant string or a
// function selecting the form for a count.
type Word struct {
	constant string
	rule     func(count float64) string
}

// Constant returns a Word that ignores the count
func Constant(value string) Word {
	return Word{constant: value}
}

// RuleFunc returns a Word backed by fn
func RuleFunc(fn func(count float64) string) Word {
	return Word{rule: fn}
}

// Forms builds a Word that picks one of forms using rule. Missing
// categories fall back to PluralOther.
func Forms(rule PluralRule, forms map[PluralCategory]string) Word {
	snapshot := make(map[PluralCategory]string, len(forms))
	for category, form := range forms {
		snapshot[category] = form
	}
	if rule == nil {
		rule = OneOtherRule
	}
	return RuleFunc(func(count float64) string {
		if form, ok := snapshot[rule(count)]; ok {
			return form
		}
		return snapshot[PluralOther]
	})
}

// IsZero reports whether the word carries no value at all
func (w Word) IsZero() bool {
	return w.rule == nil && w.constant == ""
}

// Resolve returns the form of the word for count
func (w Word) Resolve(count float64) string {
	if w.rule != nil {
		return w.rule(count)
	}
	return w.constant
}

// NumeralFormatter renders a count using decimal as the radix separator
type NumeralFormatter func(count float64, decimal string) string

// Dictionary is the per-language table of unit words and formatting metadata
type Dictionary struct {
	Language    string
	Units       map[Unit]Word
	Decimal     string
	Delimiter   string
	Future      string
	Past        string
	NumberFirst bool
	FormatCount NumeralFormatter
}

// Word returns the entry for unit, ok=false if missing
func (d *Dictionary) Word(unit Unit) (Word, bool) {
	if d == nil || d.Units == nil {
		return Word{}, false
	}
	word, ok := d.Units[unit]
	if !ok || word.IsZero() {
		return Word{}, false
	}
	return word, true
}

func (d *Dictionary) Clone() *Dictionary {
	if d == nil {
		return nil
	}
	out := *d
	if len(d.Units) > 0 {
		out.Units = make(map[Unit]Word, len(d.Units))
		for unit, word := range d.Units {
			out.Units[unit] = word
		}
	}
	return &out
}

// Dictionaries maps language identifiers to dictionaries
type Dictionaries map[string]*Dictionary
