// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Index: the loaded document together with the lookup
// maps built in a single pass over it.
package model

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/specialistvlad/rtegraph/internal/ctxlog"
)

// ErrEmptyDocument is returned when the input holds no root element.
var ErrEmptyDocument = errors.New("model document has no root element")

// Index is the loaded, read-only model with its identifier, ownership and
// partition maps.
type Index struct {
	root Element

	byID       map[string]*xmlquery.Node
	owners     map[*xmlquery.Node]*xmlquery.Node
	partitions map[*xmlquery.Node]*xmlquery.Node

	// exprs caches compiled XPath expressions keyed by their expanded text.
	mu    sync.Mutex
	exprs map[string]*xpath.Expr
}

// Stats summarizes an Index for log records.
type Stats struct {
	Elements   int
	Identified int
	Owned      int
	Duplicates int
}

// Load reads and indexes the model file at path.
func Load(ctx context.Context, path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model %s: %w", path, err)
	}
	defer f.Close()

	ix, err := Parse(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", path, err)
	}
	return ix, nil
}

// Parse reads and indexes a model document.
func Parse(ctx context.Context, r io.Reader) (*Index, error) {
	logger := ctxlog.FromContext(ctx)

	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse model xml: %w", err)
	}

	var root *xmlquery.Node
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			root = c
			break
		}
	}
	if root == nil {
		return nil, ErrEmptyDocument
	}

	ix := &Index{
		root:       newElement(root),
		byID:       make(map[string]*xmlquery.Node),
		owners:     make(map[*xmlquery.Node]*xmlquery.Node),
		partitions: make(map[*xmlquery.Node]*xmlquery.Node),
		exprs:      make(map[string]*xpath.Expr),
	}

	var stats Stats
	ix.index(root, nil, nil, &stats)
	if stats.Duplicates > 0 {
		logger.Warn("Model contains duplicate identifiers, first occurrence wins.", "duplicates", stats.Duplicates)
	}
	logger.Debug("Model indexed.", "root", root.Data, "elements", stats.Elements, "identified", stats.Identified, "owned", stats.Owned)
	return ix, nil
}

// index walks the subtree below n, tracking the innermost aggregate and
// partition seen on the way down.
func (ix *Index) index(n, owner, partition *xmlquery.Node, stats *Stats) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}
		stats.Elements++

		childOwner, childPartition := owner, partition
		switch c.Data {
		case TagPartition:
			childPartition = c
		case TagSwComponent, TagBswModule:
			childOwner = c
			if partition != nil {
				ix.partitions[c] = partition
			}
		}

		if owner != nil && childOwner != c {
			ix.owners[c] = owner
			stats.Owned++
		}

		if id := c.SelectAttr("id"); id != "" {
			stats.Identified++
			if _, seen := ix.byID[id]; seen {
				stats.Duplicates++
			} else {
				ix.byID[id] = c
			}
		}

		ix.index(c, childOwner, childPartition, stats)
	}
}

// ByID returns the first element carrying the given id attribute.
func (ix *Index) ByID(id string) (Element, bool) {
	n, ok := ix.byID[id]
	if !ok {
		return Element{}, false
	}
	return newElement(n), true
}

// OwnerOf returns the software component or BSW module enclosing el.
func (ix *Index) OwnerOf(el Element) (Element, bool) {
	if el.node == nil {
		return Element{}, false
	}
	owner, ok := ix.owners[el.node]
	if !ok {
		return Element{}, false
	}
	return newElement(owner), true
}

// PartitionOf returns the partition hosting an aggregate.
func (ix *Index) PartitionOf(owner Element) (Element, bool) {
	if owner.node == nil {
		return Element{}, false
	}
	p, ok := ix.partitions[owner.node]
	if !ok {
		return Element{}, false
	}
	return newElement(p), true
}

// Query evaluates an absolute pattern against the whole document.
func (ix *Index) Query(p Path, args ...string) ([]Element, error) {
	return ix.QueryFrom(ix.root, p, args...)
}

// QueryOne returns the first match of an absolute pattern.
func (ix *Index) QueryOne(p Path, args ...string) (Element, bool, error) {
	els, err := ix.Query(p, args...)
	if err != nil || len(els) == 0 {
		return Element{}, false, err
	}
	return els[0], true, nil
}

// QueryFrom evaluates a pattern with el as the context node. Relative patterns
// select below el; absolute patterns ignore it.
func (ix *Index) QueryFrom(el Element, p Path, args ...string) ([]Element, error) {
	if el.node == nil {
		return nil, nil
	}
	expr, err := ix.compile(p.expand(args...))
	if err != nil {
		return nil, err
	}
	nodes := xmlquery.QuerySelectorAll(el.node, expr)
	out := make([]Element, 0, len(nodes))
	for _, n := range nodes {
		if n.Type == xmlquery.ElementNode {
			out = append(out, newElement(n))
		}
	}
	return out, nil
}

func (ix *Index) compile(text string) (*xpath.Expr, error) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if expr, ok := ix.exprs[text]; ok {
		return expr, nil
	}
	expr, err := xpath.Compile(text)
	if err != nil {
		return nil, fmt.Errorf("compile xpath %q: %w", text, err)
	}
	ix.exprs[text] = expr
	return expr, nil
}
