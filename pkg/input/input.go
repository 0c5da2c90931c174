// Package input reads site lists: a count n followed by n whitespace
// separated "x y" pairs.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/caoyingkang/Voronoi-diagram/pkg/voronoi"
)

// ErrMalformedInput is returned for input that does not follow the format.
var ErrMalformedInput = errors.New("malformed site input")

const maxPrealloc = 1 << 12

// Read parses a site list from r. Anything after the n-th pair is ignored.
func Read(r io.Reader) ([]voronoi.Site, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	token := func(what string) (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", fmt.Errorf("read %s: %w", what, err)
			}
			return "", fmt.Errorf("%w: missing %s", ErrMalformedInput, what)
		}
		return sc.Text(), nil
	}

	tok, err := token("site count")
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return nil, fmt.Errorf("%w: site count %q", ErrMalformedInput, tok)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative site count %d", ErrMalformedInput, n)
	}

	// the count is not trusted until the pairs are there
	sites := make([]voronoi.Site, 0, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		var coords [2]float64
		for c, axis := range [2]string{"x", "y"} {
			what := fmt.Sprintf("%s of site %d", axis, i)
			tok, err := token(what)
			if err != nil {
				return nil, err
			}
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s %q", ErrMalformedInput, what, tok)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: %s is not finite", ErrMalformedInput, what)
			}
			coords[c] = v
		}
		sites = append(sites, voronoi.Site{X: coords[0], Y: coords[1]})
	}

	return sites, nil
}

// ReadFile parses the site list stored at path.
func ReadFile(path string) ([]voronoi.Site, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sites: %w", err)
	}
	defer f.Close()

	sites, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sites, nil
}

// Write stores sites in the format accepted by Read.
func Write(w io.Writer, sites []voronoi.Site) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, len(sites))
	for _, s := range sites {
		fmt.Fprintf(bw, "%s %s\n",
			strconv.FormatFloat(s.X, 'g', -1, 64),
			strconv.FormatFloat(s.Y, 'g', -1, 64))
	}
	return bw.Flush()
}
