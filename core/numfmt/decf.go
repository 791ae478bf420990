package numfmt

import "strings"

// Decf handles the general float conversions 'g' and 'G', which pick
// between fixed and exponential notation by magnitude: exponential when
// the decimal exponent is below -4 or at least the precision, fixed
// otherwise. Trailing fractional zeros are stripped unless the alternate
// form was requested.
type Decf struct{}

var _ Formatter = Decf{}

func (Decf) BuildPrimitive(field Field, pre InPrefix, arg string) Primitive {
	prec := field.Precision(6)
	if prec == 0 {
		prec = 1
	}

	a := AnalyzeFloat(arg[pre.Offset:], pre.Sign == Negative, prec, -1)
	if prim, ok := specialPrimitive(a, field, pre); ok {
		return prim
	}

	exp := 0
	if !a.Zero() {
		exp = a.DecPos - 1
	}

	var prim Primitive
	if exp < -4 || exp >= prec {
		prim = sciPrimitive(a, prec-1, field, pre)
	} else {
		prim = decimalPrimitive(a, prec-1-exp, field, pre)
	}

	if !field.Flags.Has(FlagAltForm) {
		prim.PostDecimal = strings.TrimRight(prim.PostDecimal, "0")
		if prim.PostDecimal == "" {
			prim.HasDecimalPoint = false
		}
	}
	return prim
}

func (Decf) Render(prim Primitive, field Field) string {
	return Render(prim, field)
}
