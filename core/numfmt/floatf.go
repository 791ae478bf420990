package numfmt

import "fmt"

// Floatf handles the fixed-point float conversions 'f' and 'F'.
type Floatf struct{}

var _ Formatter = Floatf{}

func (Floatf) BuildPrimitive(field Field, pre InPrefix, arg string) Primitive {
	prec := field.Precision(6)
	a := AnalyzeFloat(arg[pre.Offset:], pre.Sign == Negative, -1, prec)
	if prim, ok := specialPrimitive(a, field, pre); ok {
		return prim
	}
	return decimalPrimitive(a, prec, field, pre)
}

func (Floatf) Render(prim Primitive, field Field) string {
	return Render(prim, field)
}

// decimalPrimitive lays the normalized digits out in fixed-point notation.
// The integer part keeps at least one digit; the fraction is exactly prec
// digits, zero padded on the right when the source ran short.
func decimalPrimitive(a FloatAnalysis, prec int, field Field, pre InPrefix) Primitive {
	var preDec []byte
	if a.DecPos <= 0 {
		preDec = []byte{'0'}
	} else {
		preDec = make([]byte, 0, a.DecPos)
		for i := 0; i < a.DecPos; i++ {
			preDec = append(preDec, digitAt(a, i))
		}
	}

	postDec := make([]byte, 0, prec)
	for i := 0; i < prec; i++ {
		postDec = append(postDec, digitAt(a, a.DecPos+i))
	}

	return Primitive{
		Prefix:          signPrefix(field, pre.Sign),
		PreDecimal:      string(preDec),
		HasDecimalPoint: prec > 0 || field.Flags.Has(FlagAltForm),
		PostDecimal:     string(postDec),
	}
}

// digitAt reads digit i of the significant-digit string; positions
// outside it are zeros.
func digitAt(a FloatAnalysis, i int) byte {
	if i < 0 || i >= len(a.Digits) {
		return '0'
	}
	return a.Digits[i]
}

// sciPrimitive lays the normalized digits out in exponential notation with
// one digit before the point, prec digits after it, and a C-style
// two-digit minimum exponent suffix.
func sciPrimitive(a FloatAnalysis, prec int, field Field, pre InPrefix) Primitive {
	exp := 0
	preDec := byte('0')
	postDec := make([]byte, 0, prec)

	if !a.Zero() {
		preDec = a.Digits[0]
		exp = a.DecPos - 1
		for i := 1; i <= prec; i++ {
			postDec = append(postDec, digitAt(a, i))
		}
	} else {
		for i := 0; i < prec; i++ {
			postDec = append(postDec, '0')
		}
	}

	marker := byte('e')
	if field.Upper() {
		marker = 'E'
	}

	return Primitive{
		Prefix:          signPrefix(field, pre.Sign),
		PreDecimal:      string(preDec),
		HasDecimalPoint: prec > 0 || field.Flags.Has(FlagAltForm),
		PostDecimal:     string(postDec),
		Suffix:          fmt.Sprintf("%c%+03d", marker, exp),
	}
}
