package commands

import (
	"io"

	"github.com/utilware/coreutils/core/vos"
)

// Cat implements the POSIX cat command.
// https://pubs.opengroup.org/onlinepubs/9699919799/utilities/cat.html
func Cat(virtOS vos.VOS) int {
	cmd := &SimpleCommand{
		Use:   "cat [FILE]...",
		Short: "Concatenate FILE(s) to standard output.",
	}

	opts := cmd.Flags()

	return cmd.RunE(virtOS, func() error {
		args := opts.Args()
		if len(args) == 0 {
			_, err := io.Copy(virtOS.Stdout(), virtOS.Stdin())
			return err
		}

		for _, arg := range args {
			if arg == "-" {
				if _, err := io.Copy(virtOS.Stdout(), virtOS.Stdin()); err != nil {
					return err
				}
				continue
			}

			fd, err := virtOS.Open(arg)
			if err != nil {
				return err
			}
			_, err = io.Copy(virtOS.Stdout(), fd)
			fd.Close()
			if err != nil {
				return err
			}
		}
		return nil
	})
}

var _ vos.ProcessFunc = Cat

func init() {
	mustAddBinCmd("cat", Cat)
}
