package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/gonx/core"
)

// Write stores g at path in edge-list form, compressing when the path
// ends in .gz or .zst. An existing file is never overwritten; Write
// fails with ErrFileExists instead.
func Write(g *core.Graph, path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrFileExists, path)
		}
		return err
	}

	w, flush, err := compress(f, path)
	if err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	werr := WriteTo(g, w)
	if flush != nil {
		if err := flush(); err != nil && werr == nil {
			werr = err
		}
	}
	if err := f.Close(); err != nil && werr == nil {
		werr = err
	}
	if werr != nil {
		os.Remove(path)
	}
	return werr
}

// WriteTo emits g to w in edge-list form: one line per edge, plus one
// bare line per isolated node. Undirected edges appear once with the
// smaller endpoint first.
func WriteTo(g *core.Graph, w io.Writer) error {
	bw := bufio.NewWriter(w)
	nodes := g.Nodes()
	for {
		u, ok := nodes.Next()
		if !ok {
			break
		}
		isolated, err := isIsolated(g, u)
		if err != nil {
			return err
		}
		if isolated {
			if _, err := fmt.Fprintf(bw, "%d\n", u); err != nil {
				return err
			}
			continue
		}
		it, err := g.Neighbors(u)
		if err != nil {
			return err
		}
		for {
			v, weight, ok := it.Next()
			if !ok {
				break
			}
			// Undirected edges show up from both endpoints; emit each
			// once, from the smaller one.
			if !g.Directed() && u > v {
				continue
			}
			if err := writeEdge(bw, g, u, v, weight); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func writeEdge(w io.Writer, g *core.Graph, u, v core.NodeID, weight float64) error {
	var err error
	if g.Weighted() {
		_, err = fmt.Fprintf(w, "%d,%d,%s\n", u, v, strconv.FormatFloat(weight, 'g', -1, 64))
	} else {
		_, err = fmt.Fprintf(w, "%d,%d\n", u, v)
	}
	return err
}

func isIsolated(g *core.Graph, v core.NodeID) (bool, error) {
	if g.Directed() {
		out, err := g.OutDegree(v)
		if err != nil {
			return false, err
		}
		in, err := g.InDegree(v)
		if err != nil {
			return false, err
		}
		return out == 0 && in == 0, nil
	}
	deg, err := g.Degree(v)
	if err != nil {
		return false, err
	}
	return deg == 0, nil
}

// compress wraps w according to the file extension of path. The
// returned flush, when non-nil, finalizes the compressed stream.
func compress(w io.Writer, path string) (io.Writer, func() error, error) {
	switch {
	case strings.HasSuffix(path, ".gz"):
		zw := gzip.NewWriter(w)
		return zw, zw.Close, nil
	case strings.HasSuffix(path, ".zst"):
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, nil, err
		}
		return zw, zw.Close, nil
	default:
		return w, nil, nil
	}
}
