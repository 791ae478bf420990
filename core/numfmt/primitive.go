package numfmt

import "strings"

// Primitive is the canonical, unpadded decomposition of a formatted value:
// prefix + preDecimal + ('.')? + postDecimal + suffix. Every rounding
// decision is already baked in; the renderer only arranges padding and
// justification around it.
type Primitive struct {
	Prefix          string
	PreDecimal      string
	HasDecimalPoint bool
	PostDecimal     string
	Suffix          string

	// PadWithSpaces suppresses zero padding; set for the special values
	// and for non-numeric conversions.
	PadWithSpaces bool
}

// Unpadded returns the numeric text without width handling applied.
func (p Primitive) Unpadded() string {
	var sb strings.Builder
	sb.Grow(len(p.Prefix) + len(p.PreDecimal) + 1 + len(p.PostDecimal) + len(p.Suffix))
	sb.WriteString(p.Prefix)
	sb.WriteString(p.PreDecimal)
	if p.HasDecimalPoint {
		sb.WriteByte('.')
	}
	sb.WriteString(p.PostDecimal)
	sb.WriteString(p.Suffix)
	return sb.String()
}

func (p Primitive) unpaddedLen() int {
	n := len(p.Prefix) + len(p.PreDecimal) + len(p.PostDecimal) + len(p.Suffix)
	if p.HasDecimalPoint {
		n++
	}
	return n
}

// Render produces the final text for one specifier substitution. Width is
// a minimum, never a truncation. Zero padding applies only to numeric
// kinds and goes between the sign/radix prefix and the first digit, so
// "%010d" of -7 comes out "-000000007" rather than "000000-7".
func Render(prim Primitive, field Field) string {
	if !field.HasWidth || field.Width <= prim.unpaddedLen() {
		return prim.Unpadded()
	}
	pad := field.Width - prim.unpaddedLen()

	switch {
	case field.Flags.Has(FlagLeftJustify):
		return prim.Unpadded() + strings.Repeat(" ", pad)
	case field.Flags.Has(FlagZeroPad) && field.Kind.Numeric() && !prim.PadWithSpaces:
		inner := prim
		inner.Prefix = ""
		return prim.Prefix + strings.Repeat("0", pad) + inner.Unpadded()
	default:
		return strings.Repeat(" ", pad) + prim.Unpadded()
	}
}
