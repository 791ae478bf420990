package numfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeFloatSpecials(t *testing.T) {
	cases := []struct {
		payload string
		want    Special
	}{
		{"nan", SpecialNaN},
		{"NaN", SpecialNaN},
		{"NANCY", SpecialNaN},
		{"inf", SpecialInf},
		{"INF", SpecialInf},
		{"Infinity", SpecialInf},
	}

	for _, tc := range cases {
		t.Run(tc.payload, func(t *testing.T) {
			// Requested precision must not matter for special values.
			for _, prec := range []int{0, 1, 20} {
				a := AnalyzeFloat(tc.payload, false, -1, prec)
				assert.Equal(t, tc.want, a.Special)
			}
		})
	}
}

func TestAnalyzeFloatSpans(t *testing.T) {
	a := AnalyzeFloat("12.5abc", false, -1, 6)

	assert.Equal(t, Span{0, 2}, a.IntSpan)
	assert.True(t, a.HasDecimalPoint)
	assert.Equal(t, Span{3, 4}, a.FracSpan)
	assert.Equal(t, 0, a.ExpSpan.Len(), "trailing garbage is not consumed")
	assert.Equal(t, []byte("125"), a.Digits)
	assert.Equal(t, 2, a.DecPos)
	assert.Equal(t, 6, a.RoundedFracCount)
}

func TestAnalyzeFloatExponent(t *testing.T) {
	t.Run("positive", func(t *testing.T) {
		a := AnalyzeFloat("1e3", false, -1, 6)
		assert.Equal(t, []byte("1"), a.Digits)
		assert.Equal(t, 4, a.DecPos)
	})

	t.Run("negative", func(t *testing.T) {
		a := AnalyzeFloat("2.5e-2", false, -1, 6)
		assert.True(t, a.ExpNegative)
		assert.Equal(t, []byte("25"), a.Digits)
		assert.Equal(t, -1, a.DecPos)
	})

	t.Run("marker without digits is garbage", func(t *testing.T) {
		a := AnalyzeFloat("1e+", false, -1, 6)
		assert.Equal(t, 0, a.ExpSpan.Len())
		assert.Equal(t, []byte("1"), a.Digits)
		assert.Equal(t, 1, a.DecPos)
	})

	t.Run("second decimal point ends the scan", func(t *testing.T) {
		a := AnalyzeFloat("1.2.3", false, -1, 6)
		assert.Equal(t, []byte("12"), a.Digits)
		assert.Equal(t, 1, a.DecPos)
	})
}

func TestAnalyzeFloatRounding(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		maxFrac int
		digits  string
		decPos  int
	}{
		{"half rounds away from zero", "1.25", 1, "13", 1},
		{"below half truncates", "1.24", 1, "12", 1},
		{"carry through the integer part", "9.99", 1, "1", 2},
		{"carry grows the integer part", "999.95", 1, "1", 4},
		{"round at precision zero", "0.6", 0, "1", 1},
		{"round to zero", "0.4", 0, "", 0},
		{"deep fraction", "0.004", 2, "", 0},
		{"long input stays exact", "1.000000000000000000005", 20, "100000000000000000001", 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := AnalyzeFloat(tc.payload, false, -1, tc.maxFrac)
			assert.Equal(t, []byte(tc.digits), a.Digits)
			assert.Equal(t, tc.decPos, a.DecPos)
		})
	}
}

func TestAnalyzeFloatSignificantDigits(t *testing.T) {
	a := AnalyzeFloat("9.99", false, 2, -1)
	assert.Equal(t, []byte("1"), a.Digits)
	assert.Equal(t, 2, a.DecPos)

	a = AnalyzeFloat("123456789", false, 6, -1)
	assert.Equal(t, []byte("123457"), a.Digits)
	assert.Equal(t, 9, a.DecPos)
}

func TestAnalyzeFloatZeroValues(t *testing.T) {
	t.Run("empty payload is zero", func(t *testing.T) {
		a := AnalyzeFloat("", false, -1, 6)
		assert.True(t, a.Zero())
		assert.Equal(t, SpecialNone, a.Special)
	})

	t.Run("garbage payload is zero", func(t *testing.T) {
		a := AnalyzeFloat("xyz", false, -1, 6)
		assert.True(t, a.Zero())
	})

	t.Run("negative zero is preserved", func(t *testing.T) {
		a := AnalyzeFloat("0.0", true, -1, 6)
		assert.True(t, a.Zero())
		assert.Equal(t, SpecialNegZero, a.Special)
	})
}

func TestAnalyzeFloatExtremeExponents(t *testing.T) {
	t.Run("overflow saturates to infinity", func(t *testing.T) {
		a := AnalyzeFloat("1e999999", false, -1, 6)
		assert.Equal(t, SpecialInf, a.Special)
	})

	t.Run("underflow saturates to zero", func(t *testing.T) {
		a := AnalyzeFloat("1e-999999", false, -1, 6)
		assert.True(t, a.Zero())
		assert.Equal(t, SpecialNone, a.Special)
	})

	t.Run("negative underflow keeps the sign", func(t *testing.T) {
		a := AnalyzeFloat("1e-999999", true, -1, 6)
		assert.True(t, a.Zero())
		assert.Equal(t, SpecialNegZero, a.Special)
	})

	t.Run("wide but printable values stay exact", func(t *testing.T) {
		a := AnalyzeFloat("1e100", false, -1, 0)
		assert.Equal(t, SpecialNone, a.Special)
		assert.Equal(t, []byte("1"), a.Digits)
		assert.Equal(t, 101, a.DecPos)
	})
}

func TestAnalyzeFloatNeverPanics(t *testing.T) {
	payloads := []string{
		"", ".", "..", "-", "e", "e12", ".e5", "1e", "1e-", "1e+x",
		"\x00\xff", "0x12", "++1", "1..2", "nanananana", "infx",
		".5e+0000000000000000000000007",
	}

	for _, payload := range payloads {
		for _, prec := range []int{-1, 0, 1, 100} {
			assert.NotPanics(t, func() {
				AnalyzeFloat(payload, false, -1, prec)
				AnalyzeFloat(payload, true, prec, -1)
			}, "payload %q prec %d", payload, prec)
		}
	}
}
