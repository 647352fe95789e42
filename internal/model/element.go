// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Element, the read-only handle on a single XML element of
// the loaded model.
package model

import (
	"strings"

	"github.com/antchfx/xmlquery"
)

// Element tags used by the lookups and the ownership index.
const (
	TagPartition        = "Partition"
	TagTask             = "Task"
	TagInterrupt        = "Interrupt"
	TagSwComponent      = "SwComponent"
	TagBswModule        = "BswModule"
	TagRunnable         = "Runnable"
	TagBswEntity        = "Entity"
	TagEvent            = "Event"
	TagTaskEventMapping = "TaskEventMapping"
	TagExclusiveArea    = "ExclusiveArea"
	TagProvidePort      = "ProvidePort"
	TagRequirePort      = "RequirePort"
)

// Element is a read-only view of one element of the model document. The zero
// value is the "not found" element.
type Element struct {
	node *xmlquery.Node
}

func newElement(n *xmlquery.Node) Element {
	return Element{node: n}
}

// IsZero reports whether e refers to no element.
func (e Element) IsZero() bool {
	return e.node == nil
}

// Tag returns the element's local name.
func (e Element) Tag() string {
	if e.node == nil {
		return ""
	}
	return e.node.Data
}

// ID returns the `id` attribute.
func (e Element) ID() string {
	return e.Attr("id")
}

// Name returns the `name` field.
func (e Element) Name() string {
	return e.Field("name")
}

// Identity returns the name of the element, or its id when it is unnamed.
func (e Element) Identity() string {
	if name := e.Name(); name != "" {
		return name
	}
	return e.ID()
}

// Attr returns the value of the named attribute, or "" when it is absent.
func (e Element) Attr(name string) string {
	if e.node == nil {
		return ""
	}
	return e.node.SelectAttr(name)
}

// Field returns a display field of the element. Attributes take precedence;
// otherwise the trimmed text of the first child element with that tag is used.
func (e Element) Field(name string) string {
	if e.node == nil {
		return ""
	}
	if v := e.node.SelectAttr(name); v != "" {
		return v
	}
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == name {
			return strings.TrimSpace(c.InnerText())
		}
	}
	return ""
}

// Parent returns the enclosing element.
func (e Element) Parent() (Element, bool) {
	if e.node == nil {
		return Element{}, false
	}
	for p := e.node.Parent; p != nil; p = p.Parent {
		if p.Type == xmlquery.ElementNode {
			return newElement(p), true
		}
	}
	return Element{}, false
}

// Children returns the direct child elements with the given tag, in document order.
func (e Element) Children(tag string) []Element {
	if e.node == nil {
		return nil
	}
	var out []Element
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == tag {
			out = append(out, newElement(c))
		}
	}
	return out
}

// String is used in log records.
func (e Element) String() string {
	if e.node == nil {
		return "<none>"
	}
	return e.Tag() + "(" + e.Identity() + ")"
}
