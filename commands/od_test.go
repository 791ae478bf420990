package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/utilware/coreutils/core/vos/vostest"
)

const alpha = "abcdefghijklmnopqrstuvwxyz\n"

func TestOd(t *testing.T) {
	cases := goldenTestSuite{
		"alpha": {
			Args:  []string{"od", "/test"},
			Files: map[string]string{"/test": alpha},
		},
		// Multiple operands are concatenated before grouping, so the
		// dump is identical to a single file holding both.
		"two-files": {
			Args: []string{"od", "/test1", "/test2"},
			Files: map[string]string{
				"/test1": "abcdefghijklmnop",
				"/test2": "qrstuvwxyz\n",
			},
		},
		"stdin": {
			Args:  []string{"od"},
			Stdin: alpha,
		},
		"dedup": {
			Args:  []string{"od", "/zeros"},
			Files: map[string]string{"/zeros": strings.Repeat("\x00", 32)},
		},
		"no-dedup": {
			Args:  []string{"od", "-v", "/zeros"},
			Files: map[string]string{"/zeros": strings.Repeat("\x00", 32)},
		},
		// Several types render one row each per block, offset on the
		// first row only.
		"multiple-formats": {
			Args:  []string{"od", "-c", "-b"},
			Stdin: alpha,
		},
		"decimal-shorts": {
			Args: []string{"od", "-i"},
			Stdin: "\x00\x00\x01\x00\x02\x00\x03\x00" +
				"\xff\x7f\x00\x80\x01\x80",
		},
		"floats": {
			Args: []string{"od", "-f"},
			Stdin: "\x52\x06\x9e\xbf" + // -1.2345679
				"\x4e\x61\x3c\x4b" + // 12345678
				"\x0f\x9b\x94\xfe" + // -9.8765427e37
				"\x00\x00\x00\x80" + // -0
				"\xff\xff\xff\x7f" + // NaN
				"\x00\x00\x7f\x80", // -1.1663108e-38
		},
	}

	cases.Run(t, Od)
}

func TestOdFloat32(t *testing.T) {
	cases := []struct {
		bits uint32
		want string
	}{
		{0x00000000, "0"},
		{0x80000000, "-0"},
		{0x3f800000, "1"},
		{0xbf9e0652, "-1.2345679"},
		{0x4b3c614e, "12345678"},
		{0xfe949b0f, "-9.8765427e37"},
		{0x807f0000, "-1.1663108e-38"},
		{0x7fffffff, "NaN"},
		{0x7f800000, "inf"},
		{0xff800000, "-inf"},
	}

	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, odFloat32(tc.bits))
		})
	}
}

func TestOdMissingFile(t *testing.T) {
	cmd := vostest.Command(Od, "od", "/does-not-exist")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	assert.NoError(t, cmd.Run())
	assert.NotEqual(t, 0, cmd.ExitStatus, "exit code")
	assert.Empty(t, stdout.String(), "nothing dumped")
	assert.Contains(t, stderr.String(), "od:")
}

func TestOdSkipAndLimit(t *testing.T) {
	cmd := vostest.Command(Od, "od", "-j", "2", "-N", "4", "/f")
	assert.NoError(t, afero.WriteFile(cmd.VOS, "/f", []byte("abcdefgh"), 0644))

	out, err := cmd.Output()
	assert.NoError(t, err)
	assert.Equal(t, 0, cmd.ExitStatus)

	want := "0000002    062143  063145" + strings.Repeat(" ", 48) + "\n" +
		"0000006\n"
	assert.Equal(t, want, string(out))
}

func TestOdSkipPastEnd(t *testing.T) {
	cmd := vostest.Command(Od, "od", "-j", "100", "/f")
	assert.NoError(t, afero.WriteFile(cmd.VOS, "/f", []byte("short"), 0644))

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	assert.NoError(t, cmd.Run())
	assert.Equal(t, 1, cmd.ExitStatus)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "cannot skip past end")
}

func TestOdSkipWholeInput(t *testing.T) {
	// Skipping exactly the input length is fine; only the final offset
	// prints.
	cmd := vostest.Command(Od, "od", "-j", "8", "/f")
	assert.NoError(t, afero.WriteFile(cmd.VOS, "/f", []byte("abcdefgh"), 0644))

	out, err := cmd.Output()
	assert.NoError(t, err)
	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Equal(t, "0000010\n", string(out))
}

func TestOdAddressRadix(t *testing.T) {
	cases := []struct {
		radix string
		want  string
	}{
		{"o", "0000000    061141" + strings.Repeat(" ", 56) + "\n0000002\n"},
		{"d", "0000000    061141" + strings.Repeat(" ", 56) + "\n0000002\n"},
		{"x", "000000    061141" + strings.Repeat(" ", 56) + "\n000002\n"},
		{"n", "  061141" + strings.Repeat(" ", 56) + "\n"},
	}

	for _, tc := range cases {
		t.Run(tc.radix, func(t *testing.T) {
			cmd := vostest.Command(Od, "od", "-A", tc.radix, "/f")
			assert.NoError(t, afero.WriteFile(cmd.VOS, "/f", []byte("ab"), 0644))

			out, err := cmd.Output()
			assert.NoError(t, err)
			assert.Equal(t, tc.want, string(out))
		})
	}
}
