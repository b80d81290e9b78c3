package core

import "errors"

var (
	// ErrIndexOutOfRange indicates a node position outside [0, Size()).
	ErrIndexOutOfRange = errors.New("core: node index out of range")
	// ErrEmptyGraph indicates an operation that requires at least one node
	// was invoked on an empty graph.
	ErrEmptyGraph = errors.New("core: graph has no nodes")
	// ErrNeighborIndex indicates an iterator step index outside the current
	// node's outdegree.
	ErrNeighborIndex = errors.New("core: neighbor index out of range")
)
