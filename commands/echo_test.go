package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/utilware/coreutils/core/vos/vostest"
)

func TestUnescape(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`a\tb`, "a\tb"},
		{`a\nb`, "a\nb"},
		{`a\\b`, `a\b`},
		{`\x41\x42`, "AB"},
		{`\0101`, "A"},
		{`\08`, `\08`},
		{`no escapes`, "no escapes"},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, unescape(tc.in))
		})
	}
}

func TestEcho(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"plain", []string{"hello", "world"}, "hello world\n"},
		{"empty", nil, "\n"},
		{"no escapes without flag", []string{`a\tb`}, `a\tb` + "\n"},
		{"escapes with flag", []string{"-e", `a\tb`}, "a\tb\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := vostest.Command(Echo, "echo", tc.args...)
			out, err := cmd.Output()
			assert.NoError(t, err)
			assert.Equal(t, 0, cmd.ExitStatus)
			assert.Equal(t, tc.want, string(out))
		})
	}
}
