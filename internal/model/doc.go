// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model wraps a loaded AUTOSAR RTE configuration document and exposes
// the lookups the rest of the tool needs: identifier lookups, XPath pattern
// queries and an ownership index.
//
// # Core Concepts
//
//   - Element: a read-only view of one XML element. Identity is carried by the
//     `id` and `name` attributes; display fields may be attributes or child
//     element text.
//
//   - Index: the parsed document plus two maps built once at load time. The
//     ownership map records, for every identified element below a software
//     component or BSW module, which aggregate owns it. The partition map records
//     which partition hosts each aggregate.
//
//   - Path: a named XPath pattern. Arguments are substituted as quoted XPath
//     literals, so identifiers containing quotes cannot break the expression.
//
// Owners are resolved through the index rather than by climbing a fixed number
// of parent levels, so deeper or shallower nesting in the source model does not
// change the result.
//
// The Index never mutates the document. Lookups that match nothing return empty
// results; deciding whether emptiness is a fault is left to the caller.
package model
