// Package dag holds the caller graph of a model: executables as vertices and
// caller -> callee relationships as edges. The traversal engine walks direct
// callers recursively, which only terminates when the graph is acyclic, so the
// graph is checked with DetectCycles before any walk starts.
package dag
