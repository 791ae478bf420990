package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/utilware/coreutils/core/numfmt"
	"github.com/utilware/coreutils/core/sizes"
	"github.com/utilware/coreutils/core/vos"
)

// odLineBytes is how many input bytes one output line covers.
const odLineBytes = 16

// odFormat renders one output row per 16-byte block. Every cell covers
// width input bytes and is a fixed number of columns wide, so rows of
// different formats line up under each other.
type odFormat struct {
	// width is the number of input bytes one cell covers.
	width int
	// gap separates the offset column from the first cell.
	gap string
	// cell renders one unit; a short final unit is zero-extended.
	cell func(unit []byte) string
}

// odShortsOctal is the default dump type: 16-bit little-endian words as
// zero-padded octal.
var odShortsOctal = odFormat{
	width: 2,
	gap:   "  ",
	cell: func(unit []byte) string {
		return fmt.Sprintf("  %06o", odWord(unit))
	},
}

// odShortsDecimal renders 16-bit words as signed decimal (-i).
var odShortsDecimal = odFormat{
	width: 2,
	gap:   "  ",
	cell: func(unit []byte) string {
		return fmt.Sprintf("%8d", int16(odWord(unit)))
	},
}

// odBytesOctal renders single bytes as zero-padded octal (-b).
var odBytesOctal = odFormat{
	width: 1,
	gap:   "  ",
	cell: func(unit []byte) string {
		return fmt.Sprintf(" %03o", unit[0])
	},
}

// odBytesChar renders single bytes as printable ASCII, C escapes, or
// octal (-c).
var odBytesChar = odFormat{
	width: 1,
	gap:   " ",
	cell: func(unit []byte) string {
		return fmt.Sprintf("%4s", odChar(unit[0]))
	},
}

// odFloats renders 32-bit little-endian words as shortest-round-trip
// floats (-f).
var odFloats = odFormat{
	width: 4,
	gap:   "",
	cell: func(unit []byte) string {
		var bits uint32
		for i := len(unit) - 1; i >= 0; i-- {
			bits = bits<<8 | uint32(unit[i])
		}
		return fmt.Sprintf("%15s", odFloat32(bits))
	},
}

// Od implements the POSIX od command: files are concatenated in order and
// dumped 16 input bytes per line with file offsets and duplicate-line
// suppression. The default type is 16-bit octal words; -b, -c, -i and -f
// select other types, and giving several prints one row per type under a
// shared offset.
// https://pubs.opengroup.org/onlinepubs/9699919799/utilities/od.html
func Od(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "od [OPTION]... [FILE]...",
		Short: "Dump files in octal and other formats, concatenating them in order.",
	}

	opts := cmd.Flags()
	radix := opts.EnumLong("address-radix", 'A',
		[]string{"d", "o", "x", "n"}, "o",
		"output format for file offsets (d|o|x|n)")
	skipArg := opts.StringLong("skip-bytes", 'j', "", "skip BYTES input bytes first")
	limitArg := opts.StringLong("read-bytes", 'N', "", "limit dump to BYTES input bytes")
	verbose := opts.BoolLong("output-duplicates", 'v', "do not use * to mark line suppression")
	typeBytes := opts.Bool('b', "select octal bytes")
	typeChars := opts.Bool('c', "select printable characters or backslash escapes")
	typeInts := opts.Bool('i', "select signed decimal 2-byte units")
	typeFloats := opts.Bool('f', "select floating point 4-byte units")

	return cmd.RunE(virtOS, func() error {
		var skip, limit uint64
		var err error
		if *skipArg != "" {
			if skip, err = sizes.ParseSize(*skipArg); err != nil {
				return err
			}
		}
		if *limitArg != "" {
			if limit, err = sizes.ParseSize(*limitArg); err != nil {
				return err
			}
		}

		var formats []odFormat
		if *typeChars {
			formats = append(formats, odBytesChar)
		}
		if *typeBytes {
			formats = append(formats, odBytesOctal)
		}
		if *typeInts {
			formats = append(formats, odShortsDecimal)
		}
		if *typeFloats {
			formats = append(formats, odFloats)
		}
		if len(formats) == 0 {
			formats = append(formats, odShortsOctal)
		}

		var readers []io.Reader
		for _, arg := range opts.Args() {
			if arg == "-" {
				readers = append(readers, virtOS.Stdin())
				continue
			}
			fd, err := virtOS.Open(arg)
			if err != nil {
				return err
			}
			defer fd.Close()
			readers = append(readers, fd)
		}
		if len(readers) == 0 {
			readers = append(readers, virtOS.Stdin())
		}

		r := io.Reader(io.MultiReader(readers...))
		if skip > 0 {
			n, err := io.CopyN(io.Discard, r, int64(skip))
			if err != nil && err != io.EOF {
				return err
			}
			if uint64(n) < skip {
				return errors.New("cannot skip past end of combined input")
			}
		}
		if *limitArg != "" {
			r = io.LimitReader(r, int64(limit))
		}

		return odDump(virtOS.Stdout(), r, formats, *radix, skip, *verbose)
	})
}

func odDump(w io.Writer, r io.Reader, formats []odFormat, radix string, offset uint64, verbose bool) error {
	buf := make([]byte, odLineBytes)
	prev := make([]byte, odLineBytes)
	prevValid := false
	starred := false

	for {
		n, err := io.ReadFull(r, buf)
		if n > 0 {
			chunk := buf[:n]
			duplicate := !verbose && prevValid && n == odLineBytes && bytes.Equal(chunk, prev)
			switch {
			case duplicate && starred:
				// Already suppressed.
			case duplicate:
				if _, err := fmt.Fprintln(w, "*"); err != nil {
					return err
				}
				starred = true
			default:
				for fi, format := range formats {
					if _, err := fmt.Fprintln(w, odRow(format, radix, offset, chunk, fi == 0)); err != nil {
						return err
					}
				}
				starred = false
			}

			prevValid = n == odLineBytes
			if prevValid {
				copy(prev, chunk)
			}
			offset += uint64(n)
		}

		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return err
		}
	}

	if radix != "n" {
		if _, err := fmt.Fprintln(w, odOffset(radix, offset)); err != nil {
			return err
		}
	}
	return nil
}

// odRow renders one output row. Only the first row of a block carries the
// offset; further type rows blank it so their cells line up. Short final
// blocks are padded with eight spaces per absent 16-bit word.
func odRow(format odFormat, radix string, offset uint64, chunk []byte, first bool) string {
	var sb strings.Builder
	if radix != "n" {
		if first {
			sb.WriteString(odOffset(radix, offset))
		} else {
			sb.WriteString(strings.Repeat(" ", len(odOffset(radix, offset))))
		}
		sb.WriteString(format.gap)
	}

	for i := 0; i < len(chunk); i += format.width {
		end := i + format.width
		if end > len(chunk) {
			end = len(chunk)
		}
		sb.WriteString(format.cell(chunk[i:end]))
	}

	missingWords := (odLineBytes - len(chunk)) / 2
	sb.WriteString(strings.Repeat(" ", missingWords*8))
	return sb.String()
}

// odWord assembles a little-endian 16-bit word; a lone trailing byte
// zero-extends.
func odWord(unit []byte) uint16 {
	v := uint16(unit[0])
	if len(unit) > 1 {
		v |= uint16(unit[1]) << 8
	}
	return v
}

// odChar names one byte for the -c type: the character itself when
// printable, a C escape when one exists, octal otherwise.
func odChar(b byte) string {
	switch b {
	case 0:
		return `\0`
	case '\a':
		return `\a`
	case '\b':
		return `\b`
	case '\t':
		return `\t`
	case '\n':
		return `\n`
	case '\v':
		return `\v`
	case '\f':
		return `\f`
	case '\r':
		return `\r`
	}
	if b >= 0x20 && b < 0x7f {
		return string(b)
	}
	return fmt.Sprintf("%03o", b)
}

// odFloat32 renders one float32 at eight significant digits with
// trailing zeros stripped: fixed notation when the magnitude allows it,
// exponential otherwise, the exponent bare of sign padding.
func odFloat32(bits uint32) string {
	f := float64(math.Float32frombits(bits))
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	field := numfmt.Field{
		Kind:    numfmt.KindGeneralFloat,
		Conv:    'g',
		Prec:    8,
		HasPrec: true,
	}
	// The widening to float64 is exact, so the 8-digit rounding below is
	// correctly rounded for the original word.
	payload := strconv.FormatFloat(f, 'e', 7, 64)
	return odTrimExponent(numfmt.FormatArg(field, payload))
}

// odTrimExponent rewrites a C-style exponent suffix ("e+07") to the bare
// form ("e7") the -f type prints.
func odTrimExponent(s string) string {
	e := strings.LastIndexByte(s, 'e')
	if e < 0 {
		return s
	}
	mant, exp := s[:e+1], s[e+1:]
	neg := ""
	if len(exp) > 0 && (exp[0] == '+' || exp[0] == '-') {
		if exp[0] == '-' {
			neg = "-"
		}
		exp = exp[1:]
	}
	for len(exp) > 1 && exp[0] == '0' {
		exp = exp[1:]
	}
	return mant + neg + exp
}

func odOffset(radix string, offset uint64) string {
	switch radix {
	case "d":
		return fmt.Sprintf("%07d", offset)
	case "x":
		return fmt.Sprintf("%06x", offset)
	default:
		return fmt.Sprintf("%07o", offset)
	}
}

var _ vos.ProcessFunc = Od

func init() {
	mustAddBinCmd("od", Od)
}
