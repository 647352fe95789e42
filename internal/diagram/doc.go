// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package diagram is the in-memory graph a report is assembled into before it
// is handed to a renderer: clusters that box related elements, nodes with a
// label and style hints, cluster-scoped directed edges and a flat legend.
//
// # Identity and reuse
//
// Node identifiers are derived from content (an element's name, or its id when
// it has none) or supplied by the caller for synthetic nodes. They are unique
// across the whole graph: asking for a node whose identifier is already
// registered returns the existing node unchanged, wherever it was first
// created. Cluster identifiers are unique within their parent cluster, and
// asking for an existing one returns it. A second registration is a reuse
// signal, never an error.
//
// Edges are not deduplicated; two mappings between the same pair of elements
// are two edges.
//
// A Graph has exactly one writer, the traversal engine of the running report,
// and is discarded once rendered. It is not safe for concurrent mutation.
package diagram
