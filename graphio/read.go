package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/gonx/core"
)

// Sentinel errors for graph files.
var (
	// ErrBadFormat is returned for a line that does not parse under
	// the requested graph variant.
	ErrBadFormat = errors.New("graphio: malformed line")

	// ErrEmptyGraph is returned when a file declares no nodes at all.
	ErrEmptyGraph = errors.New("graphio: file contains no graph")

	// ErrFileExists is returned by Write when the target is already
	// present; overwriting a graph file is never silent.
	ErrFileExists = errors.New("graphio: file already exists")
)

// Read parses the edge-list file at path into a fresh graph built with
// the given options. Files ending in .gz or .zst are decompressed on
// the fly.
func Read(path string, opts ...core.GraphOption) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, closer, err := decompress(f, path)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		defer closer()
	}
	return ReadFrom(r, opts...)
}

// ReadFrom parses edge-list lines from r into a fresh graph built with
// the given options. The weighted axis of the options dictates the
// line shape: a weighted graph requires "u,v,w" lines, an unweighted
// one "u,v". Either kind accepts bare "u" lines for isolated nodes.
func ReadFrom(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	g, err := core.New(opts...)
	if err != nil {
		return nil, err
	}

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Split(text, ",")
		switch len(fields) {
		case 1:
			u, err := parseNode(fields[0], line)
			if err != nil {
				return nil, err
			}
			if _, err = g.AddNode(u); err != nil {
				return nil, fmt.Errorf("graphio: line %d: %w", line, err)
			}
		case 2:
			if g.Weighted() {
				return nil, fmt.Errorf("%w: line %d: missing weight on a weighted graph", ErrBadFormat, line)
			}
			u, v, err := parseEndpoints(fields, line)
			if err != nil {
				return nil, err
			}
			if _, err = g.AddEdge(u, v); err != nil {
				return nil, fmt.Errorf("graphio: line %d: %w", line, err)
			}
		case 3:
			if !g.Weighted() {
				return nil, fmt.Errorf("%w: line %d: weight on an unweighted graph", ErrBadFormat, line)
			}
			u, v, err := parseEndpoints(fields, line)
			if err != nil {
				return nil, err
			}
			w, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: bad weight %q", ErrBadFormat, line, fields[2])
			}
			if _, err = g.AddEdgeWeight(u, v, w); err != nil {
				return nil, fmt.Errorf("graphio: line %d: %w", line, err)
			}
		default:
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadFormat, line, text)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if g.NodeCount() == 0 {
		return nil, ErrEmptyGraph
	}
	return g, nil
}

func parseNode(s string, line int) (core.NodeID, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil || core.NodeID(n) >= core.MaxNodeID {
		return 0, fmt.Errorf("%w: line %d: bad node ID %q", ErrBadFormat, line, s)
	}
	return core.NodeID(n), nil
}

func parseEndpoints(fields []string, line int) (core.NodeID, core.NodeID, error) {
	u, err := parseNode(fields[0], line)
	if err != nil {
		return 0, 0, err
	}
	v, err := parseNode(fields[1], line)
	if err != nil {
		return 0, 0, err
	}
	return u, v, nil
}

// decompress wraps r according to the file extension of path. The
// returned closer, when non-nil, releases decompressor state.
func decompress(r io.Reader, path string) (io.Reader, func(), error) {
	switch {
	case strings.HasSuffix(path, ".gz"):
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return zr, func() { zr.Close() }, nil
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, err
		}
		return zr, zr.Close, nil
	default:
		return r, nil, nil
	}
}
