package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/utilware/coreutils/core/numfmt"
	"github.com/utilware/coreutils/core/vos"
)

// Printf implements the POSIX printf utility.
// https://pubs.opengroup.org/onlinepubs/9699919799/utilities/printf.html
func Printf(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "printf FORMAT [ARGUMENT]...",
		Short: "Format and print data under the control of FORMAT.",
	}

	opts := cmd.Flags()

	return cmd.Run(virtOS, func() int {
		args := opts.Args()
		if len(args) == 0 {
			fmt.Fprintln(virtOS.Stderr(), "printf: missing format string")
			return 1
		}

		format := args[0]
		cursor := numfmt.NewArgCursor(args[1:])
		out := virtOS.Stdout()

		// The format is reused until the arguments run out, as long as
		// each pass consumes at least one of them.
		for {
			before := cursor.Consumed()
			stop, err := writeFormatted(out, format, cursor)
			if err != nil {
				fmt.Fprintf(virtOS.Stderr(), "printf: %v\n", err)
				return 1
			}
			if stop || cursor.Exhausted() || cursor.Consumed() == before {
				break
			}
		}
		return 0
	})
}

// writeFormatted renders one pass of the format string, consuming
// positional arguments through the shared cursor. A \c escape stops all
// output.
func writeFormatted(w io.Writer, format string, cursor *numfmt.ArgCursor) (stop bool, err error) {
	for i := 0; i < len(format); {
		switch format[i] {
		case '%':
			field, n, err := numfmt.ParseSpec(format[i:], cursor)
			if err != nil {
				return false, err
			}
			arg := ""
			if field.Kind != numfmt.KindPercent {
				arg = cursor.Next()
			}
			if _, err := io.WriteString(w, numfmt.FormatArg(field, arg)); err != nil {
				return false, err
			}
			i += n
		case '\\':
			text, n, quit := unescapeAt(format[i:])
			if quit {
				return true, nil
			}
			if _, err := io.WriteString(w, text); err != nil {
				return false, err
			}
			i += n
		default:
			end := strings.IndexAny(format[i:], `%\`)
			if end < 0 {
				end = len(format) - i
			}
			if _, err := io.WriteString(w, format[i:i+end]); err != nil {
				return false, err
			}
			i += end
		}
	}
	return false, nil
}

// unescapeAt decodes one backslash escape at the start of s, returning
// the replacement text and the bytes consumed. quit is set for \c, which
// terminates output entirely. Unrecognized escapes pass through verbatim.
func unescapeAt(s string) (text string, n int, quit bool) {
	if len(s) < 2 {
		return s, len(s), false
	}

	switch c := s[1]; c {
	case 'a':
		return "\a", 2, false
	case 'b':
		return "\b", 2, false
	case 'c':
		return "", 2, true
	case 'f':
		return "\f", 2, false
	case 'n':
		return "\n", 2, false
	case 'r':
		return "\r", 2, false
	case 't':
		return "\t", 2, false
	case 'v':
		return "\v", 2, false
	case '\\':
		return `\`, 2, false
	case '"':
		return `"`, 2, false
	case 'x':
		v, digits := 0, 0
		for digits < 2 && 2+digits < len(s) {
			d, ok := hexDigit(s[2+digits])
			if !ok {
				break
			}
			v = v<<4 | d
			digits++
		}
		if digits == 0 {
			return s[:2], 2, false
		}
		// Escapes name raw bytes, not runes.
		return string([]byte{byte(v)}), 2 + digits, false
	case '0', '1', '2', '3', '4', '5', '6', '7':
		v, digits := 0, 0
		for digits < 3 && 1+digits < len(s) {
			d := s[1+digits]
			if d < '0' || d > '7' {
				break
			}
			v = v<<3 | int(d-'0')
			digits++
		}
		return string([]byte{byte(v)}), 1 + digits, false
	default:
		return s[:2], 2, false
	}
}

func hexDigit(c byte) (int, bool) {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0'), true
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10, true
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

var _ vos.ProcessFunc = Printf

func init() {
	mustAddBinCmd("printf", Printf)
}
