package commands

import (
	"bufio"
	"fmt"
	"io"

	"github.com/utilware/coreutils/core/sizes"
	"github.com/utilware/coreutils/core/vos"
)

// Head implements the POSIX head command. Counts given to -n and -c may
// carry size suffixes (K, KiB, MB, ...).
// https://pubs.opengroup.org/onlinepubs/9699919799/utilities/head.html
func Head(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "head [-n LINES | -c BYTES] [FILE]...",
		Short: "Print the first part of each input file to standard output.",
	}

	opts := cmd.Flags()
	lineArg := opts.StringLong("lines", 'n', "", "print the first LINES lines instead of 10")
	byteArg := opts.StringLong("bytes", 'c', "", "print the first BYTES bytes")
	quiet := opts.BoolLong("quiet", 'q', "never print headers giving file names")

	return cmd.RunE(virtOS, func() error {
		lines := uint64(10)
		useBytes := false
		var count uint64
		var err error

		switch {
		case *byteArg != "":
			useBytes = true
			if count, err = sizes.ParseSize(*byteArg); err != nil {
				return err
			}
		case *lineArg != "":
			if lines, err = sizes.ParseSize(*lineArg); err != nil {
				return err
			}
		}

		out := virtOS.Stdout()
		args := opts.Args()

		headOne := func(r io.Reader) error {
			if useBytes {
				_, err := io.CopyN(out, r, int64(count))
				if err == io.EOF {
					return nil
				}
				return err
			}

			br := bufio.NewReader(r)
			for n := uint64(0); n < lines; n++ {
				line, err := br.ReadString('\n')
				if line != "" {
					if _, werr := io.WriteString(out, line); werr != nil {
						return werr
					}
				}
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return err
				}
			}
			return nil
		}

		if len(args) == 0 {
			return headOne(virtOS.Stdin())
		}

		for i, path := range args {
			if len(args) > 1 && !*quiet {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "==> %s <==\n", path)
			}

			fd, err := virtOS.Open(path)
			if err != nil {
				return err
			}
			if err := headOne(fd); err != nil {
				fd.Close()
				return err
			}
			fd.Close()
		}
		return nil
	})
}

var _ vos.ProcessFunc = Head

func init() {
	mustAddBinCmd("head", Head)
}
