// Package graphio reads and writes graphs as edge-list files.
//
// The format is one edge per line, both node IDs delimited by a comma,
// with an optional weight as a third field:
//
//	node1,node2[,weight]
//
// A line holding a single node ID declares an isolated node. Lines
// starting with '#' are comments and blank lines are ignored:
//
//	# a weighted graph with one isolated node
//	0,1,3.14159
//	1,2,2.71828
//	42
//
// Whether a file is read as directed, weighted or loop-allowing is
// decided by the core.GraphOption values the caller passes, not by the
// file: a weighted graph demands a weight on every edge line, an
// unweighted one rejects any. Files ending in .gz or .zst are
// decompressed transparently on read and compressed on write.
package graphio
