package vostest

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/utilware/coreutils/core/vos"
)

func TestDeterministicOS(t *testing.T) {
	v := NewDeterministicOS([]string{"env"})

	assert.Equal(t, []string{"env"}, v.Args())
	assert.Equal(t, "/root", v.Getenv("HOME"))
	assert.Equal(t, "root", v.Getenv("USER"))
	assert.NotEmpty(t, v.Getenv("PATH"))
}

func TestCommandOutput(t *testing.T) {
	greet := func(v vos.VOS) int {
		fmt.Fprintf(v.Stdout(), "hello %s\n", v.Args()[1])
		return 0
	}

	cmd := Command(greet, "greet", "world")
	out, err := cmd.Output()
	assert.NoError(t, err)
	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Equal(t, "hello world\n", string(out))
}

func TestCommandCombinedOutput(t *testing.T) {
	noisy := func(v vos.VOS) int {
		fmt.Fprint(v.Stdout(), "out")
		fmt.Fprint(v.Stderr(), "err")
		return 3
	}

	cmd := Command(noisy, "noisy")
	out, err := cmd.CombinedOutput()
	assert.NoError(t, err)
	assert.Equal(t, 3, cmd.ExitStatus)
	assert.Equal(t, "outerr", string(out))
}

func TestCommandStdin(t *testing.T) {
	upper := func(v vos.VOS) int {
		data, err := io.ReadAll(v.Stdin())
		if err != nil {
			return 1
		}
		fmt.Fprint(v.Stdout(), strings.ToUpper(string(data)))
		return 0
	}

	cmd := Command(upper, "upper")
	cmd.Stdin = strings.NewReader("quiet")
	out, err := cmd.Output()
	assert.NoError(t, err)
	assert.Equal(t, "QUIET", string(out))
}
