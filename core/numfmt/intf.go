package numfmt

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Intf handles the integer conversions 'd', 'i', 'u', 'o', 'x' and 'X'.
type Intf struct{}

var _ Formatter = Intf{}

func (Intf) BuildPrimitive(field Field, pre InPrefix, arg string) Primitive {
	payload := arg[pre.Offset:]

	var mag uint64
	if len(payload) > 0 && (payload[0] == '\'' || payload[0] == '"') {
		// A quoted argument means the character code of what follows.
		r, size := utf8.DecodeRuneInString(payload[1:])
		if size > 0 && r != utf8.RuneError {
			mag = uint64(r)
		}
	} else {
		mag = parseUintSaturating(payload, pre.Radix)
	}

	negative := pre.Sign == Negative && mag != 0

	var digits string
	var prefix string

	if field.Kind == KindSignedInt {
		// Saturate like strtoll: the magnitude caps at the int64 range.
		limit := uint64(math.MaxInt64)
		if negative {
			limit++
		}
		if mag > limit {
			mag = limit
		}
		digits = strconv.FormatUint(mag, 10)
		sign := Positive
		if negative {
			sign = Negative
		}
		prefix = signPrefix(field, sign)
	} else {
		// Unsigned kinds wrap negative input two's-complement style.
		v := mag
		if negative {
			v = -mag
		}
		switch field.Kind {
		case KindOctal:
			digits = strconv.FormatUint(v, 8)
		case KindHexLower:
			digits = strconv.FormatUint(v, 16)
		case KindHexUpper:
			digits = strings.ToUpper(strconv.FormatUint(v, 16))
		default:
			digits = strconv.FormatUint(v, 10)
		}
		if field.Flags.Has(FlagAltForm) && v != 0 {
			switch field.Kind {
			case KindHexLower:
				prefix = "0x"
			case KindHexUpper:
				prefix = "0X"
			}
		}
	}

	// Precision names the minimum digit count; zero digits print nothing
	// for a zero value.
	if field.HasPrec {
		if field.Prec == 0 && digits == "0" {
			digits = ""
		} else if len(digits) < field.Prec {
			digits = strings.Repeat("0", field.Prec-len(digits)) + digits
		}
	}

	// The alternate octal form guarantees a leading zero.
	if field.Kind == KindOctal && field.Flags.Has(FlagAltForm) && !strings.HasPrefix(digits, "0") {
		digits = "0" + digits
	}

	return Primitive{Prefix: prefix, PreDecimal: digits}
}

func (Intf) Render(prim Primitive, field Field) string {
	// An explicit precision turns off zero padding for integers.
	if field.HasPrec {
		field.Flags &^= FlagZeroPad
	}
	return Render(prim, field)
}

// parseUintSaturating accumulates leading digits of payload in the given
// radix, stopping at the first byte that isn't a digit of that radix.
// Overflow saturates at the maximum value instead of wrapping.
func parseUintSaturating(payload string, radix int) uint64 {
	var v uint64
	saturated := false
	base := uint64(radix)
	cutoff := math.MaxUint64 / base

	for i := 0; i < len(payload); i++ {
		d, ok := digitValue(payload[i], radix)
		if !ok {
			break
		}
		if saturated {
			continue
		}
		if v > cutoff || v*base > math.MaxUint64-d {
			v = math.MaxUint64
			saturated = true
			continue
		}
		v = v*base + d
	}
	return v
}

func digitValue(c byte, radix int) (uint64, bool) {
	var d uint64
	switch {
	case '0' <= c && c <= '9':
		d = uint64(c - '0')
	case 'a' <= c && c <= 'f':
		d = uint64(c-'a') + 10
	case 'A' <= c && c <= 'F':
		d = uint64(c-'A') + 10
	default:
		return 0, false
	}
	if d >= uint64(radix) {
		return 0, false
	}
	return d, true
}
