package numfmt

// Scif handles the exponential float conversions 'e' and 'E'.
type Scif struct{}

var _ Formatter = Scif{}

func (Scif) BuildPrimitive(field Field, pre InPrefix, arg string) Primitive {
	prec := field.Precision(6)
	a := AnalyzeFloat(arg[pre.Offset:], pre.Sign == Negative, prec+1, -1)
	if prim, ok := specialPrimitive(a, field, pre); ok {
		return prim
	}
	return sciPrimitive(a, prec, field, pre)
}

func (Scif) Render(prim Primitive, field Field) string {
	return Render(prim, field)
}
