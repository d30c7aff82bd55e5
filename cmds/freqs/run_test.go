package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunExitCodes(t *testing.T) {
	dir, err := ioutil.TempDir("", "freqs-cmd")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	input := filepath.Join(dir, "input.txt")
	require.NoError(t, ioutil.WriteFile(input, []byte("Cat cat dog"), 0600))

	malformed := filepath.Join(dir, "malformed.txt")
	require.NoError(t, ioutil.WriteFile(malformed, []byte{'a', 0xFF}, 0600))

	type tc struct {
		Desc string
		Argv []string
		Code int
	}

	tcs := []tc{
		{
			Desc: "no arguments",
			Argv: nil,
			Code: exitArgs,
		},
		{
			Desc: "missing output argument",
			Argv: []string{input},
			Code: exitArgs,
		},
		{
			Desc: "extra positional argument",
			Argv: []string{input, filepath.Join(dir, "out.txt"), "extra"},
			Code: exitArgs,
		},
		{
			Desc: "help exits clean",
			Argv: []string{"--help"},
			Code: exitOK,
		},
		{
			Desc: "input file does not exist",
			Argv: []string{filepath.Join(dir, "missing.txt"), filepath.Join(dir, "out.txt")},
			Code: exitInputFile,
		},
		{
			// a directory opens fine but reading it fails
			Desc: "input opens but cannot be read",
			Argv: []string{dir, filepath.Join(dir, "out.txt")},
			Code: exitInputFile,
		},
		{
			Desc: "output directory does not exist",
			Argv: []string{input, filepath.Join(dir, "no", "such", "out.txt")},
			Code: exitOutputFile,
		},
		{
			Desc: "malformed input",
			Argv: []string{malformed, filepath.Join(dir, "out.txt")},
			Code: exitFileFormat,
		},
		{
			Desc: "valid input",
			Argv: []string{input, filepath.Join(dir, "out.txt")},
			Code: exitOK,
		},
	}

	for i, tc := range tcs {
		assert.Equal(t, tc.Code, run(tc.Argv), "case %d: %s", i, tc.Desc)
	}
}

func TestRunReport(t *testing.T) {
	dir, err := ioutil.TempDir("", "freqs-cmd")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	type tc struct {
		Desc     string
		Src      []byte
		Expected string
	}

	tcs := []tc{
		{
			Desc:     "counts ranked, first occurrence rendered",
			Src:      []byte("Cat cat dog"),
			Expected: "2 Cat\n1 dog\n",
		},
		{
			Desc:     "cyrillic ties break on the folded key",
			Src:      []byte("Мама мыла раму"),
			Expected: "1 Мама\n1 мыла\n1 раму\n",
		},
		{
			Desc:     "empty input leaves an empty output file",
			Src:      nil,
			Expected: "",
		},
	}

	for i, tc := range tcs {
		input := filepath.Join(dir, fmt.Sprintf("input%d.txt", i))
		output := filepath.Join(dir, fmt.Sprintf("output%d.txt", i))
		require.NoError(t, ioutil.WriteFile(input, tc.Src, 0600), "case %d: %s", i, tc.Desc)

		require.Equal(t, exitOK, run([]string{input, output}), "case %d: %s", i, tc.Desc)

		written, err := ioutil.ReadFile(output)
		require.NoError(t, err, "case %d: %s", i, tc.Desc)
		assert.Equal(t, tc.Expected, string(written), "case %d: %s", i, tc.Desc)
	}
}

func TestRunTruncatesStaleOutput(t *testing.T) {
	// The output file is created before the input is read, so a failing run
	// leaves it empty rather than keeping a previous run's report.
	dir, err := ioutil.TempDir("", "freqs-cmd")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	input := filepath.Join(dir, "input.txt")
	require.NoError(t, ioutil.WriteFile(input, []byte{'a', 0xFF}, 0600))

	output := filepath.Join(dir, "output.txt")
	require.NoError(t, ioutil.WriteFile(output, []byte("1 stale\n"), 0600))

	require.Equal(t, exitFileFormat, run([]string{input, output}))

	written, err := ioutil.ReadFile(output)
	require.NoError(t, err)
	assert.Empty(t, string(written))
}
