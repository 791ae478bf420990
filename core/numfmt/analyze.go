package numfmt

import "strings"

// Special tags payloads that bypass digit assembly.
type Special int

const (
	SpecialNone Special = iota
	SpecialNaN
	SpecialInf
	SpecialNegZero
)

// Span marks a half-open [Start, End) byte range within a payload.
type Span struct {
	Start, End int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// FloatAnalysis is the classified, already-rounded decomposition of one
// floating point payload. The spans index the original payload; Digits and
// DecPos hold the normalized result every builder works from: all
// significant digits with an implied decimal point DecPos digits from the
// left (DecPos may be negative or exceed len(Digits); the missing
// positions are zeros). Rounding is applied here exactly once, downstream
// stages never re-round.
type FloatAnalysis struct {
	Special Special

	IntSpan         Span
	FracSpan        Span
	ExpSpan         Span
	HasDecimalPoint bool
	ExpNegative     bool

	// RoundedFracCount is the number of fractional digits retained when a
	// fractional limit was requested, -1 otherwise.
	RoundedFracCount int

	Digits []byte
	DecPos int
}

// Zero reports whether the analyzed value is exactly zero.
func (a FloatAnalysis) Zero() bool {
	return len(a.Digits) == 0
}

const (
	// inputExpLimit bounds the exponent folded into DecPos so the fold
	// itself cannot overflow.
	inputExpLimit = 1 << 20

	// decPosBound is the widest decimal-point position a payload can put
	// to use. Values past it saturate the way strtod does: to infinity
	// above, to zero below.
	decPosBound = inputExpLimit / 2
)

// AnalyzeFloat scans the numeric payload of one argument and classifies it.
//
// The scan follows strtod's partial-parse semantics: digits, at most one
// decimal point, and at most one well-formed exponent are consumed;
// anything after the last valid position is ignored, never an error. An
// empty or garbled payload yields the zero value.
//
// Exactly one of maxSig/maxFrac should be >= 0: maxSig limits significant
// digits (for the exponential and general forms), maxFrac limits digits
// after the decimal point (for the fixed form). Rounding is
// half-away-from-zero, performed as a digit-string increment so values
// wider than native floats stay exact. negative tells the analyzer the
// prefix scanner saw a '-', so a zero result can be tagged as negative
// zero rather than collapsed.
func AnalyzeFloat(payload string, negative bool, maxSig, maxFrac int) FloatAnalysis {
	a := FloatAnalysis{RoundedFracCount: -1}

	switch {
	case hasFold(payload, "nan"):
		a.Special = SpecialNaN
		return a
	case hasFold(payload, "inf"), hasFold(payload, "infinity"):
		a.Special = SpecialInf
		return a
	}

	i := 0
	a.IntSpan.Start = i
	for i < len(payload) && isDigit(payload[i]) {
		i++
	}
	a.IntSpan.End = i

	if i < len(payload) && payload[i] == '.' {
		a.HasDecimalPoint = true
		i++
		a.FracSpan.Start = i
		for i < len(payload) && isDigit(payload[i]) {
			i++
		}
		a.FracSpan.End = i
	}

	// An exponent is only valid after at least one digit and must itself
	// carry digits; otherwise the marker is trailing garbage and the scan
	// ends at the last valid position.
	if a.IntSpan.Len()+a.FracSpan.Len() > 0 && i < len(payload) && (payload[i] == 'e' || payload[i] == 'E') {
		j := i + 1
		expNeg := false
		if j < len(payload) && (payload[j] == '+' || payload[j] == '-') {
			expNeg = payload[j] == '-'
			j++
		}
		start := j
		for j < len(payload) && isDigit(payload[j]) {
			j++
		}
		if j > start {
			a.ExpSpan = Span{Start: start, End: j}
			a.ExpNegative = expNeg
		}
	}

	// Normalize: every significant digit in one string, the decimal point
	// folded into a position, the input exponent folded in on top.
	digits := make([]byte, 0, a.IntSpan.Len()+a.FracSpan.Len()+1)
	digits = append(digits, payload[a.IntSpan.Start:a.IntSpan.End]...)
	digits = append(digits, payload[a.FracSpan.Start:a.FracSpan.End]...)
	decPos := a.IntSpan.Len() + inputExponent(payload, a.ExpSpan, a.ExpNegative)

	for len(digits) > 0 && digits[0] == '0' {
		digits = digits[1:]
		decPos--
	}
	for len(digits) > 0 && digits[len(digits)-1] == '0' {
		digits = digits[:len(digits)-1]
	}

	// Saturate extreme magnitudes instead of materializing them.
	if len(digits) > 0 {
		switch {
		case decPos > decPosBound:
			a.Special = SpecialInf
			return a
		case decPos < -decPosBound:
			digits, decPos = nil, 0
		}
	}

	// Rounding boundary.
	keep := -1
	switch {
	case maxFrac >= 0:
		a.RoundedFracCount = maxFrac
		keep = decPos + maxFrac
		if keep < 0 {
			keep = 0
		}
	case maxSig >= 0:
		keep = maxSig
	}
	if keep >= 0 && keep < len(digits) {
		digits, decPos = roundDigits(digits, decPos, keep)
	}

	if len(digits) == 0 {
		decPos = 0
		if negative {
			a.Special = SpecialNegZero
		}
	}

	a.Digits = digits
	a.DecPos = decPos
	return a
}

// roundDigits truncates digits to length keep, rounding half away from
// zero on the first dropped digit. The carry walks right to left; when it
// runs off the front a new leading digit is inserted (the buffer is sized
// for it up front) and the decimal position shifts by one.
func roundDigits(digits []byte, decPos, keep int) ([]byte, int) {
	roundUp := digits[keep] >= '5'

	out := make([]byte, keep, keep+1)
	copy(out, digits[:keep])

	if roundUp {
		i := len(out) - 1
		for ; i >= 0; i-- {
			if out[i] != '9' {
				out[i]++
				break
			}
			out[i] = '0'
		}
		if i < 0 {
			out = append(out, 0)
			copy(out[1:], out)
			out[0] = '1'
			decPos++
		}
	}

	for len(out) > 0 && out[len(out)-1] == '0' {
		out = out[:len(out)-1]
	}
	return out, decPos
}

func inputExponent(payload string, span Span, negative bool) int {
	exp := 0
	for _, c := range []byte(payload[span.Start:span.End]) {
		exp = exp*10 + int(c-'0')
		if exp > inputExpLimit {
			exp = inputExpLimit
			break
		}
	}
	if negative {
		return -exp
	}
	return exp
}

func hasFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
