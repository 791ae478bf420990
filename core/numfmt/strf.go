package numfmt

// Strf handles the 's' conversion. Strings bypass sign and zero-pad logic
// entirely: precision truncates, width pads with spaces.
type Strf struct{}

var _ Formatter = Strf{}

func (Strf) BuildPrimitive(field Field, _ InPrefix, arg string) Primitive {
	text := arg
	if field.HasPrec && field.Prec < len(text) {
		text = text[:field.Prec]
	}
	return Primitive{PreDecimal: text, PadWithSpaces: true}
}

func (Strf) Render(prim Primitive, field Field) string {
	return Render(prim, field)
}

// Charf handles the 'c' conversion: the first character of the argument,
// or nothing when the argument is empty.
type Charf struct{}

var _ Formatter = Charf{}

func (Charf) BuildPrimitive(_ Field, _ InPrefix, arg string) Primitive {
	if arg == "" {
		return Primitive{PadWithSpaces: true}
	}
	return Primitive{PreDecimal: arg[:1], PadWithSpaces: true}
}

func (Charf) Render(prim Primitive, field Field) string {
	return Render(prim, field)
}

// Percentf handles the '%%' literal. It consumes no argument.
type Percentf struct{}

var _ Formatter = Percentf{}

func (Percentf) BuildPrimitive(Field, InPrefix, string) Primitive {
	return Primitive{PreDecimal: "%", PadWithSpaces: true}
}

func (Percentf) Render(prim Primitive, field Field) string {
	return Render(prim, field)
}
