// Package sizes parses byte counts with the unit suffixes the utilities
// accept for flags like head -c and od -j/-N.
package sizes

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrSyntax marks sizes that don't parse at all.
	ErrSyntax = errors.New("invalid size")
	// ErrTooLarge marks sizes that overflow a uint64.
	ErrTooLarge = errors.New("size too large")
)

// ParseSize parses a size string: an optional decimal integer (defaulting
// to 1) followed by an optional unit. Units are b (512), K through Y and
// their KiB-style spellings (powers of 1024), or KB, MB, ... (powers of
// 1000).
func ParseSize(size string) (uint64, error) {
	if size == "" {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, size)
	}

	i := 0
	for i < len(size) && size[i] >= '0' && size[i] <= '9' {
		i++
	}

	number := uint64(1)
	if i > 0 {
		n, err := strconv.ParseUint(size[:i], 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return 0, fmt.Errorf("%w: %q", ErrTooLarge, size)
			}
			return 0, fmt.Errorf("%w: %q", ErrSyntax, size)
		}
		number = n
	}

	var base uint64
	var exponent uint
	switch size[i:] {
	case "":
		base, exponent = 1, 0
	case "b":
		base, exponent = 512, 1
	case "KiB", "kiB", "K", "k":
		base, exponent = 1024, 1
	case "MiB", "miB", "M", "m":
		base, exponent = 1024, 2
	case "GiB", "giB", "G", "g":
		base, exponent = 1024, 3
	case "TiB", "tiB", "T", "t":
		base, exponent = 1024, 4
	case "PiB", "piB", "P", "p":
		base, exponent = 1024, 5
	case "EiB", "eiB", "E", "e":
		base, exponent = 1024, 6
	case "ZiB", "ziB", "Z", "z":
		base, exponent = 1024, 7
	case "YiB", "yiB", "Y", "y":
		base, exponent = 1024, 8
	case "KB", "kB":
		base, exponent = 1000, 1
	case "MB", "mB":
		base, exponent = 1000, 2
	case "GB", "gB":
		base, exponent = 1000, 3
	case "TB", "tB":
		base, exponent = 1000, 4
	case "PB", "pB":
		base, exponent = 1000, 5
	case "EB", "eB":
		base, exponent = 1000, 6
	case "ZB", "zB":
		base, exponent = 1000, 7
	case "YB", "yB":
		base, exponent = 1000, 8
	default:
		return 0, fmt.Errorf("%w: %q", ErrSyntax, size)
	}

	factor := uint64(1)
	for ; exponent > 0; exponent-- {
		if factor > math.MaxUint64/base {
			return 0, fmt.Errorf("%w: %q", ErrTooLarge, size)
		}
		factor *= base
	}

	if number != 0 && factor > math.MaxUint64/number {
		return 0, fmt.Errorf("%w: %q", ErrTooLarge, size)
	}
	return number * factor, nil
}
