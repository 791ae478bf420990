package numfmt

import (
	"fmt"
	"strconv"
)

// Kind enumerates the supported conversion kinds.
type Kind int

const (
	KindDecimalFloat Kind = iota // 'f', 'F'
	KindExpFloat                 // 'e', 'E'
	KindGeneralFloat             // 'g', 'G'
	KindSignedInt                // 'd', 'i'
	KindUnsignedInt              // 'u'
	KindOctal                    // 'o'
	KindHexLower                 // 'x'
	KindHexUpper                 // 'X'
	KindChar                     // 'c'
	KindString                   // 's'
	KindPercent                  // '%'
)

// Float reports whether the kind consumes a floating point argument.
func (k Kind) Float() bool {
	switch k {
	case KindDecimalFloat, KindExpFloat, KindGeneralFloat:
		return true
	}
	return false
}

// Integer reports whether the kind consumes an integer argument.
func (k Kind) Integer() bool {
	switch k {
	case KindSignedInt, KindUnsignedInt, KindOctal, KindHexLower, KindHexUpper:
		return true
	}
	return false
}

// Numeric reports whether the kind is subject to sign and zero-pad handling.
func (k Kind) Numeric() bool {
	return k.Float() || k.Integer()
}

// Flags holds the optional conversion flags of a specifier.
type Flags uint8

const (
	FlagLeftJustify Flags = 1 << iota // '-'
	FlagForceSign                     // '+'
	FlagSpaceSign                     // ' '
	FlagAltForm                       // '#'
	FlagZeroPad                       // '0'
)

// Has reports whether all bits of flag are set.
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

// Field is one parsed conversion specifier. It is immutable once built;
// width and precision are resolved integers, '*' indirection has already
// been satisfied from the argument cursor.
type Field struct {
	Kind  Kind
	Conv  byte // the conversion character, kept for case conventions
	Flags Flags

	Width    int
	HasWidth bool

	// Prec is the second field: fractional digits for floats, minimum
	// digits for integers and the maximum length for strings.
	Prec    int
	HasPrec bool
}

// Upper reports whether the conversion character is uppercase.
func (f Field) Upper() bool {
	return f.Conv >= 'A' && f.Conv <= 'Z'
}

// Precision returns the second field, or def when it was absent.
func (f Field) Precision(def int) int {
	if f.HasPrec {
		return f.Prec
	}
	return def
}

// MalformedSpecifierError reports a specifier with no terminating
// conversion character.
type MalformedSpecifierError struct {
	Spec string
}

func (e *MalformedSpecifierError) Error() string {
	return fmt.Sprintf("%s: missing conversion character", strconv.Quote(e.Spec))
}

// UnknownConversionError reports a terminating character that doesn't name
// a supported conversion.
type UnknownConversionError struct {
	Conversion byte
}

func (e *UnknownConversionError) Error() string {
	return fmt.Sprintf("%%%c: invalid conversion", e.Conversion)
}

// ArgCursor is the shared positional argument cursor. Specifiers are
// processed left to right because each may consume the next argument;
// callers formatting in parallel must give every call its own cursor.
type ArgCursor struct {
	args []string
	next int
}

func NewArgCursor(args []string) *ArgCursor {
	return &ArgCursor{args: args}
}

// Next consumes and returns the next argument, or "" once exhausted.
// Missing arguments degrade to the empty string to match the reference
// utilities' permissiveness.
func (c *ArgCursor) Next() string {
	if c.next >= len(c.args) {
		return ""
	}
	arg := c.args[c.next]
	c.next++
	return arg
}

// Exhausted reports whether every argument has been consumed.
func (c *ArgCursor) Exhausted() bool {
	return c.next >= len(c.args)
}

// Consumed returns the number of arguments consumed so far.
func (c *ArgCursor) Consumed() int {
	return c.next
}

var kindByConv = map[byte]Kind{
	'f': KindDecimalFloat,
	'F': KindDecimalFloat,
	'e': KindExpFloat,
	'E': KindExpFloat,
	'g': KindGeneralFloat,
	'G': KindGeneralFloat,
	'd': KindSignedInt,
	'i': KindSignedInt,
	'u': KindUnsignedInt,
	'o': KindOctal,
	'x': KindHexLower,
	'X': KindHexUpper,
	'c': KindChar,
	's': KindString,
	'%': KindPercent,
}

// ParseSpec parses one conversion specifier beginning at the '%' at the
// start of format. Width or precision given as '*' consumes the next
// positional argument from args; the consumption is visible to the caller
// through the cursor. Returns the descriptor and the number of bytes of
// format consumed.
func ParseSpec(format string, args *ArgCursor) (Field, int, error) {
	var field Field

	if len(format) == 0 || format[0] != '%' {
		return field, 0, &MalformedSpecifierError{Spec: format}
	}

	i := 1

flags:
	for i < len(format) {
		switch format[i] {
		case '-':
			field.Flags |= FlagLeftJustify
		case '+':
			field.Flags |= FlagForceSign
		case ' ':
			field.Flags |= FlagSpaceSign
		case '#':
			field.Flags |= FlagAltForm
		case '0':
			field.Flags |= FlagZeroPad
		default:
			break flags
		}
		i++
	}

	// Minimum field width. A negative '*' width means left justification,
	// as if the '-' flag had been given.
	if i < len(format) && format[i] == '*' {
		w := atoiPermissive(args.Next())
		if w < 0 {
			field.Flags |= FlagLeftJustify
			w = -w
		}
		field.Width, field.HasWidth = w, true
		i++
	} else {
		start := i
		for i < len(format) && isDigit(format[i]) {
			i++
		}
		if i > start {
			field.Width, field.HasWidth = atoiPermissive(format[start:i]), true
		}
	}

	// Precision / second field. A bare '.' means zero; a negative '*'
	// precision is treated as absent.
	if i < len(format) && format[i] == '.' {
		i++
		field.HasPrec = true
		if i < len(format) && format[i] == '*' {
			p := atoiPermissive(args.Next())
			if p < 0 {
				field.HasPrec = false
			} else {
				field.Prec = p
			}
			i++
		} else {
			start := i
			for i < len(format) && isDigit(format[i]) {
				i++
			}
			field.Prec = atoiPermissive(format[start:i])
		}
	}

	// C length modifiers carry no meaning here but are accepted.
	for i < len(format) && isLengthModifier(format[i]) {
		i++
	}

	if i >= len(format) {
		return field, 0, &MalformedSpecifierError{Spec: format}
	}

	conv := format[i]
	kind, ok := kindByConv[conv]
	if !ok {
		return field, 0, &UnknownConversionError{Conversion: conv}
	}
	field.Kind = kind
	field.Conv = conv

	return field, i + 1, nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLengthModifier(c byte) bool {
	switch c {
	case 'h', 'l', 'L', 'q', 'j', 'z', 't':
		return true
	}
	return false
}

// atoiPermissive converts without failing; garbage degrades to zero.
func atoiPermissive(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
