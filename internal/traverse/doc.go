// Package traverse walks the relationships of a loaded model and populates a
// diagram.Graph. There is one strategy per report: event to task mappings
// (flat and grouped by task), exclusive areas and port connections.
//
// The graph is passed into every call and the engine keeps no per-graph
// state, so one Engine can fill several graphs, e.g. one per exclusive area.
// Only model-integrity faults are returned as errors; missing optional
// information becomes a placeholder node.
package traverse
