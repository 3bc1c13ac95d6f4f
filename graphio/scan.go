package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

// Summary describes a graph file without the cost of building a graph.
type Summary struct {
	// Nodes is the number of distinct node IDs mentioned in the file.
	Nodes int
	// Edges is the number of edge lines. Duplicates are not folded:
	// Scan never builds adjacency, so it cannot tell a repeat apart.
	Edges int
	// Weighted reports whether any edge line carried a weight field.
	Weighted bool
}

// Scan summarizes the edge-list file at path. Distinct node IDs are
// tracked in a compressed bitmap, so scanning a large file stays cheap
// regardless of how dense its ID space is.
func Scan(path string) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, err
	}
	defer f.Close()

	r, closer, err := decompress(f, path)
	if err != nil {
		return Summary{}, err
	}
	if closer != nil {
		defer closer()
	}
	return ScanFrom(r)
}

// ScanFrom summarizes edge-list lines from r.
func ScanFrom(r io.Reader) (Summary, error) {
	var sum Summary
	ids := roaring.New()

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Split(text, ",")
		if len(fields) > 3 {
			return Summary{}, fmt.Errorf("%w: line %d: %q", ErrBadFormat, line, text)
		}
		u, err := parseNode(fields[0], line)
		if err != nil {
			return Summary{}, err
		}
		ids.Add(uint32(u))
		if len(fields) == 1 {
			continue
		}
		v, err := parseNode(fields[1], line)
		if err != nil {
			return Summary{}, err
		}
		ids.Add(uint32(v))
		sum.Edges++
		if len(fields) == 3 {
			sum.Weighted = true
		}
	}
	if err := sc.Err(); err != nil {
		return Summary{}, err
	}
	sum.Nodes = int(ids.GetCardinality())
	if sum.Nodes == 0 {
		return Summary{}, ErrEmptyGraph
	}
	return sum, nil
}
