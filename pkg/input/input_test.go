package input_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caoyingkang/Voronoi-diagram/pkg/input"
	"github.com/caoyingkang/Voronoi-diagram/pkg/voronoi"
)

func TestRead(t *testing.T) {
	t.Parallel()

	sites, err := input.Read(strings.NewReader("3\n0 0\n1.5 -2\n\t-3e2   4\ntrailing words"))
	require.NoError(t, err)
	assert.Equal(t, []voronoi.Site{{X: 0, Y: 0}, {X: 1.5, Y: -2}, {X: -300, Y: 4}}, sites)

	sites, err = input.Read(strings.NewReader("0"))
	require.NoError(t, err)
	assert.Empty(t, sites)
}

func TestRead_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		msg   string
	}{
		{name: "empty", input: "", msg: "missing site count"},
		{name: "bad count", input: "three", msg: `site count "three"`},
		{name: "negative count", input: "-1", msg: "negative site count"},
		{name: "missing y", input: "2\n0 0\n1", msg: "missing y of site 1"},
		{name: "bad x", input: "1\nx 0", msg: `x of site 0 "x"`},
		{name: "not finite", input: "1\n0 NaN", msg: "y of site 0 is not finite"},
		{name: "infinite", input: "1\n+Inf 0", msg: "x of site 0 is not finite"},
		{name: "huge count", input: "4000000000000000000 1 2", msg: "missing x of site 1"},
		{name: "huge count no pairs", input: "1000000000", msg: "missing x of site 0"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := input.Read(strings.NewReader(tt.input))
			require.ErrorIs(t, err, input.ErrMalformedInput)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestWriteThenReadFile(t *testing.T) {
	t.Parallel()

	sites := []voronoi.Site{{X: 0.1, Y: 1e-7}, {X: -12345.678, Y: 3}}

	var buf bytes.Buffer
	require.NoError(t, input.Write(&buf, sites))
	assert.Equal(t, "2\n0.1 1e-07\n-12345.678 3\n", buf.String())

	path := filepath.Join(t.TempDir(), "sites.txt")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	got, err := input.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sites, got)
}

func TestReadFile_Errors(t *testing.T) {
	t.Parallel()

	_, err := input.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(path, []byte("2\n1 1\n"), 0o600))
	_, err = input.ReadFile(path)
	require.ErrorIs(t, err, input.ErrMalformedInput)
	assert.Contains(t, err.Error(), path)
}
