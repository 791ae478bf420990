package numfmt

// Sign is the sign scanned off the front of an argument.
type Sign int

const (
	Positive Sign = iota
	Negative
)

// InPrefix records what was scanned off the front of one raw argument:
// leading whitespace, an optional sign and, for integer kinds, an optional
// radix prefix. Offset points at the first byte of the numeric payload
// (or the end of the string when there is no payload at all; the analyzers
// synthesize a zero value for that case).
type InPrefix struct {
	Offset      int
	Sign        Sign
	Radix       int
	RadixPrefix string
}

// ScanPrefix derives the InPrefix for arg under the given conversion kind.
// It never fails. Non-numeric kinds use the argument verbatim, so their
// prefix is empty. Integer kinds auto-detect the radix the way strtol with
// base 0 does: "0x"/"0X" selects hex and a remaining leading zero selects
// octal.
func ScanPrefix(arg string, kind Kind) InPrefix {
	pre := InPrefix{Sign: Positive, Radix: 10}
	if !kind.Numeric() {
		return pre
	}

	i := 0
	for i < len(arg) && isSpace(arg[i]) {
		i++
	}

	if i < len(arg) && (arg[i] == '+' || arg[i] == '-') {
		if arg[i] == '-' {
			pre.Sign = Negative
		}
		i++
	}

	if kind.Integer() && i < len(arg) && arg[i] == '0' {
		if i+1 < len(arg) && (arg[i+1] == 'x' || arg[i+1] == 'X') {
			pre.Radix = 16
			pre.RadixPrefix = arg[i : i+2]
			i += 2
		} else {
			pre.Radix = 8
			pre.RadixPrefix = arg[i : i+1]
			i++
		}
	}

	pre.Offset = i
	return pre
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
