package humanize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLatinCount(t *testing.T) {
	assert.Equal(t, "35", FormatLatinCount(35, ","))
	assert.Equal(t, "1,5", FormatLatinCount(1.5, ","))
	assert.Equal(t, "0.25", FormatLatinCount(0.25, "."))
	assert.Equal(t, "0.25", FormatLatinCount(0.25, ""))
	assert.Equal(t, "31557600000", FormatLatinCount(31557600000, "."))
}

func TestFormatCountExponents(t *testing.T) {
	assert.Equal(t, "0.000001", FormatLatinCount(1e-6, "."))
	assert.Equal(t, "1e-7", FormatLatinCount(1e-7, "."))
	assert.Equal(t, "1,5e-7", FormatLatinCount(1.5e-7, ","))
	assert.Equal(t, "9.999999999999999e-11", FormatLatinCount(9.999999999999999e-11, "."))
	assert.Equal(t, "-2.5e-9", FormatLatinCount(-2.5e-9, "."))
	assert.Equal(t, "100000000000000000000", FormatLatinCount(1e20, "."))
	assert.Equal(t, "1e+21", FormatLatinCount(1e21, "."))
	assert.Equal(t, "1.25e+100", FormatLatinCount(1.25e100, "."))
	assert.Equal(t, "١e-٧", FormatArabicIndicCount(1e-7, ","))

	got, err := Humanize(1e-7, WithUnits(UnitMillisecond))
	assert.NoError(t, err)
	assert.Equal(t, "1e-7 milliseconds", got)
}

func TestFormatArabicIndicCount(t *testing.T) {
	assert.Equal(t, "۰", FormatArabicIndicCount(0, ","))
	assert.Equal(t, "٣٥", FormatArabicIndicCount(35, ","))
	assert.Equal(t, "١٠٢", FormatArabicIndicCount(102, ","))
	assert.Equal(t, "١,٥", FormatArabicIndicCount(1.5, ","))
}

func TestLookupNumeralSystem(t *testing.T) {
	fn, ok := LookupNumeralSystem("Arabic-Indic")
	assert.True(t, ok)
	assert.Equal(t, "٧", fn(7, "."))

	_, ok = LookupNumeralSystem("roman")
	assert.False(t, ok)
}
