package numfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSpec(t *testing.T) {
	cases := []struct {
		format   string
		args     []string
		want     Field
		consumed int
		argsUsed int
	}{
		{
			format:   "%d",
			want:     Field{Kind: KindSignedInt, Conv: 'd'},
			consumed: 2,
		},
		{
			format:   "%8.2f",
			want:     Field{Kind: KindDecimalFloat, Conv: 'f', Width: 8, HasWidth: true, Prec: 2, HasPrec: true},
			consumed: 5,
		},
		{
			format:   "%-08.3f",
			want:     Field{Kind: KindDecimalFloat, Conv: 'f', Flags: FlagLeftJustify | FlagZeroPad, Width: 8, HasWidth: true, Prec: 3, HasPrec: true},
			consumed: 7,
		},
		{
			format:   "%+d",
			want:     Field{Kind: KindSignedInt, Conv: 'd', Flags: FlagForceSign},
			consumed: 3,
		},
		{
			format:   "% i",
			want:     Field{Kind: KindSignedInt, Conv: 'i', Flags: FlagSpaceSign},
			consumed: 3,
		},
		{
			format:   "%#X",
			want:     Field{Kind: KindHexUpper, Conv: 'X', Flags: FlagAltForm},
			consumed: 3,
		},
		{
			format:   "%%",
			want:     Field{Kind: KindPercent, Conv: '%'},
			consumed: 2,
		},
		{
			// Width from the argument list.
			format:   "%*d",
			args:     []string{"7", "42"},
			want:     Field{Kind: KindSignedInt, Conv: 'd', Width: 7, HasWidth: true},
			consumed: 3,
			argsUsed: 1,
		},
		{
			// A negative star width flips to left justification.
			format:   "%*s",
			args:     []string{"-5"},
			want:     Field{Kind: KindString, Conv: 's', Flags: FlagLeftJustify, Width: 5, HasWidth: true},
			consumed: 3,
			argsUsed: 1,
		},
		{
			// A negative star precision is treated as absent.
			format:   "%.*f",
			args:     []string{"-1"},
			want:     Field{Kind: KindDecimalFloat, Conv: 'f'},
			consumed: 4,
			argsUsed: 1,
		},
		{
			// A bare '.' means precision zero.
			format:   "%.f",
			want:     Field{Kind: KindDecimalFloat, Conv: 'f', HasPrec: true},
			consumed: 3,
		},
		{
			// Length modifiers are accepted and ignored.
			format:   "%lld",
			want:     Field{Kind: KindSignedInt, Conv: 'd'},
			consumed: 4,
		},
		{
			format:   "%s trailing text",
			want:     Field{Kind: KindString, Conv: 's'},
			consumed: 2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.format, func(t *testing.T) {
			cursor := NewArgCursor(tc.args)
			field, consumed, err := ParseSpec(tc.format, cursor)

			assert.NoError(t, err)
			assert.Equal(t, tc.want, field)
			assert.Equal(t, tc.consumed, consumed)
			assert.Equal(t, tc.argsUsed, cursor.Consumed())
		})
	}
}

func TestParseSpecErrors(t *testing.T) {
	t.Run("missing conversion character", func(t *testing.T) {
		for _, format := range []string{"%", "%10", "%-+ #0", "%.2", "%ll"} {
			_, _, err := ParseSpec(format, NewArgCursor(nil))

			var malformed *MalformedSpecifierError
			assert.ErrorAs(t, err, &malformed, "format %q", format)
		}
	})

	t.Run("unknown conversion", func(t *testing.T) {
		_, _, err := ParseSpec("%q", NewArgCursor(nil))

		var unknown *UnknownConversionError
		if assert.ErrorAs(t, err, &unknown) {
			assert.Equal(t, byte('q'), unknown.Conversion)
		}
	})

	t.Run("no percent", func(t *testing.T) {
		_, _, err := ParseSpec("d", NewArgCursor(nil))
		assert.Error(t, err)
	})
}

func TestArgCursor(t *testing.T) {
	cursor := NewArgCursor([]string{"a", "b"})

	assert.False(t, cursor.Exhausted())
	assert.Equal(t, "a", cursor.Next())
	assert.Equal(t, "b", cursor.Next())
	assert.True(t, cursor.Exhausted())
	assert.Equal(t, 2, cursor.Consumed())

	// Exhausted cursors keep yielding empty arguments.
	assert.Equal(t, "", cursor.Next())
	assert.Equal(t, 2, cursor.Consumed())
}
