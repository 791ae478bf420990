package numfmt

// Formatter renders one conversion kind. Implementations are stateless
// leaf values; every call works over owned, immutable inputs, so the whole
// pipeline is safely reentrant.
type Formatter interface {
	// BuildPrimitive runs the analyzer and primitive builder stages for
	// the kind. It never fails: garbled payloads degrade to the zero
	// value or to the special tags.
	BuildPrimitive(field Field, pre InPrefix, arg string) Primitive

	// Render applies width, justification and padding.
	Render(prim Primitive, field Field) string
}

// ForKind selects the Formatter implementation for a conversion kind.
func ForKind(k Kind) Formatter {
	switch k {
	case KindDecimalFloat:
		return Floatf{}
	case KindExpFloat:
		return Scif{}
	case KindGeneralFloat:
		return Decf{}
	case KindSignedInt, KindUnsignedInt, KindOctal, KindHexLower, KindHexUpper:
		return Intf{}
	case KindChar:
		return Charf{}
	case KindString:
		return Strf{}
	case KindPercent:
		return Percentf{}
	}
	return Strf{}
}

// FormatArg runs the full pipeline for one specifier and one raw argument
// string: prefix scan, analysis, primitive build, render.
func FormatArg(field Field, arg string) string {
	pre := ScanPrefix(arg, field.Kind)
	f := ForKind(field.Kind)
	return f.Render(f.BuildPrimitive(field, pre, arg), field)
}

// signPrefix derives the sign text: '-' for negative values, '+' when
// forced, a single space when requested, otherwise nothing.
func signPrefix(field Field, sign Sign) string {
	switch {
	case sign == Negative:
		return "-"
	case field.Flags.Has(FlagForceSign):
		return "+"
	case field.Flags.Has(FlagSpaceSign):
		return " "
	}
	return ""
}

// specialPrimitive short-circuits NaN and infinity. The text case follows
// the conversion character; zero padding never applies. Infinity keeps its
// sign prefix, NaN renders unsigned.
func specialPrimitive(a FloatAnalysis, field Field, pre InPrefix) (Primitive, bool) {
	switch a.Special {
	case SpecialNaN:
		text := "nan"
		if field.Upper() {
			text = "NaN"
		}
		return Primitive{PreDecimal: text, PadWithSpaces: true}, true
	case SpecialInf:
		text := "inf"
		if field.Upper() {
			text = "Inf"
		}
		return Primitive{
			Prefix:        signPrefix(field, pre.Sign),
			PreDecimal:    text,
			PadWithSpaces: true,
		}, true
	}
	return Primitive{}, false
}
