package core

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/gonx/alloc"
	"github.com/katalvlaran/gonx/uhash"
)

// NodeID identifies a node. IDs are plain integers chosen by the caller;
// the graph attaches no meaning to them beyond identity.
type NodeID uint32

// MaxNodeID is the exclusive upper bound on node IDs. AddNode and the
// edge insertion methods reject any ID at or above it.
const MaxNodeID NodeID = 1 << 31

// Sentinel errors returned by Graph methods.
var (
	// ErrNodeRange reports a node ID at or above MaxNodeID.
	ErrNodeRange = errors.New("core: node ID out of range")
	// ErrNodeNotFound reports an operation on a node absent from the graph.
	ErrNodeNotFound = errors.New("core: node not found")
	// ErrEdgeNotFound reports an edge lookup that matched no edge.
	ErrEdgeNotFound = errors.New("core: edge not found")
	// ErrEmptyGraph reports a node selection from a graph with no nodes.
	ErrEmptyGraph = errors.New("core: graph has no nodes")
	// ErrDirectedGraph reports an undirected-only operation on a directed graph.
	ErrDirectedGraph = errors.New("core: operation requires an undirected graph")
	// ErrUndirectedGraph reports a directed-only operation on an undirected graph.
	ErrUndirectedGraph = errors.New("core: operation requires a directed graph")
	// ErrWeightedGraph reports an unweighted-only operation on a weighted graph.
	ErrWeightedGraph = errors.New("core: operation requires an unweighted graph")
	// ErrUnweightedGraph reports a weighted-only operation on an unweighted graph.
	ErrUnweightedGraph = errors.New("core: operation requires a weighted graph")
)

// defaultGraphSeed seeds the graph RNG when the caller passes no seed.
const defaultGraphSeed int64 = 1

// GraphOption configures a Graph at construction time.
type GraphOption func(*graphOptions)

type graphOptions struct {
	directed  bool
	selfLoops bool
	weighted  bool
	alloc     alloc.Allocator
	seed      int64
}

// WithDirected makes every edge one-way from its source to its target.
func WithDirected() GraphOption {
	return func(o *graphOptions) { o.directed = true }
}

// WithSelfLoops permits edges whose endpoints coincide. Without it,
// AddEdge treats a self-loop as a no-op and HasEdge reports false.
func WithSelfLoops() GraphOption {
	return func(o *graphOptions) { o.selfLoops = true }
}

// WithWeighted attaches a float64 weight to every edge. Weighted graphs
// use AddEdgeWeight instead of AddEdge.
func WithWeighted() GraphOption {
	return func(o *graphOptions) { o.weighted = true }
}

// WithAllocator meters all internal allocation through a. Defaults to
// alloc.Unlimited().
func WithAllocator(a alloc.Allocator) GraphOption {
	return func(o *graphOptions) { o.alloc = a }
}

// WithSeed fixes the RNG used by RandomNode and by the hash tables
// backing the adjacency structure. Seed 0 selects a stable default.
func WithSeed(seed int64) GraphOption {
	return func(o *graphOptions) { o.seed = seed }
}

// Graph is an in-memory graph over NodeID keys. The zero value is not
// usable; construct with New.
type Graph struct {
	directed  bool
	selfLoops bool
	weighted  bool

	alloc alloc.Allocator
	rng   *rand.Rand

	nodes *uhash.Dict[NodeID, *record]
	edges int
}

// New builds an empty graph. Options select the variant; see the
// package documentation for the four axes.
func New(opts ...GraphOption) (*Graph, error) {
	o := graphOptions{alloc: alloc.Unlimited(), seed: defaultGraphSeed}
	for _, opt := range opts {
		opt(&o)
	}
	if o.seed == 0 {
		o.seed = defaultGraphSeed
	}
	rng := rand.New(rand.NewSource(o.seed))
	nodes, err := uhash.NewDict[NodeID, *record](
		uhash.WithAllocator(o.alloc),
		uhash.WithSeed(rng.Int63()),
	)
	if err != nil {
		return nil, err
	}
	return &Graph{
		directed:  o.directed,
		selfLoops: o.selfLoops,
		weighted:  o.weighted,
		alloc:     o.alloc,
		rng:       rng,
		nodes:     nodes,
	}, nil
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether edges carry weights.
func (g *Graph) Weighted() bool { return g.weighted }

// AllowsSelfLoops reports whether edges may join a node to itself.
func (g *Graph) AllowsSelfLoops() bool { return g.selfLoops }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return g.nodes.Len() }

// EdgeCount returns the number of edges. An undirected edge counts
// once, as does a self-loop.
func (g *Graph) EdgeCount() int { return g.edges }
