package dag

import (
	"fmt"
	"strings"
	"sync"
)

// Graph is a collection of vertices and their directed edges.
// All operations on the graph are concurrency-safe.
type Graph struct {
	// mutex protects the nodes map during concurrent access.
	mutex sync.RWMutex
	// nodes stores all vertices keyed by their unique ID.
	nodes map[string]*node
	// order keeps insertion order so that traversals are deterministic.
	order []string
}

// node is a single vertex. It is unexported so that callers interact with the
// graph through string IDs only.
type node struct {
	id string
	// callees holds the vertices this one has an edge to (successors).
	callees map[string]*node
	// calleeOrder keeps callees in insertion order.
	calleeOrder []string
}

// CycleError reports a caller cycle. Path starts and ends with the same ID.
type CycleError struct {
	Path []string
}

// Error implements the error interface for CycleError.
func (e *CycleError) Error() string {
	return fmt.Sprintf("caller cycle detected: %s", strings.Join(e.Path, " -> "))
}
