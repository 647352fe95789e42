// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file holds the XPath patterns the resolver and the traversal engine
// query the model with. Every %s placeholder receives a quoted XPath literal.
package model

import (
	"fmt"
	"strings"
)

// Path is an XPath pattern with %s placeholders for literal arguments.
type Path string

// Absolute patterns, evaluated from the document root.
const (
	PathRunnableByID    Path = "//SwComponent/Runnables/Runnable[@id=%s]"
	PathBswEntityByID   Path = "//BswModule//Entities/Entity[@id=%s]"
	PathTaskByName      Path = "//Tasks/Task[@name=%s]"
	PathInterruptByName Path = "//Interrupts/Interrupt[@name=%s]"
	PathEvents          Path = "//Events/Event"
	PathExecutableMaps  Path = "//Events/Event/TaskEventMapping[@executableRef=%s]"
	PathExclusiveAreas  Path = "//ExclusiveAreas/ExclusiveArea"
	PathProvidePorts    Path = "//ProvidePorts/ProvidePort"
	PathSwComponents    Path = "//SwComponents/SwComponent"
	PathBswModules      Path = "//BswModules/BswModule"
	PathRunnables       Path = "//SwComponent/Runnables/Runnable"
	PathBswEntities     Path = "//BswModule//Entities/Entity"
)

// Relative patterns, evaluated from an element.
const (
	PathEventMappings   Path = "TaskEventMapping"
	PathOwnProvidePorts Path = "ProvidePorts/ProvidePort"
	PathDirectCallers   Path = "DirectCallers/Caller"
	PathRunsInside      Path = "RunsInside"
	PathCanEnter        Path = "CanEnter"
)

// InstanceKind names one of the four port connection kinds.
type InstanceKind string

const (
	VariableInstance  InstanceKind = "Variable"
	OperationInstance InstanceKind = "Operation"
	ModeInstance      InstanceKind = "Mode"
	TriggerInstance   InstanceKind = "Trigger"
)

// InstanceKinds lists the connection kinds in rendering order.
var InstanceKinds = []InstanceKind{VariableInstance, OperationInstance, ModeInstance, TriggerInstance}

// ConnectedTag is the provide-port child element referencing a connected instance.
func (k InstanceKind) ConnectedTag() string {
	return "Connected" + string(k) + "Instance"
}

// InstanceTag is the require-port child element declaring an instance.
func (k InstanceKind) InstanceTag() string {
	return string(k) + "Instance"
}

// RequireInstancePath returns the pattern locating an instance of kind k, by
// id, below the require ports of the given aggregate tag.
func RequireInstancePath(ownerTag string, k InstanceKind) Path {
	return Path(fmt.Sprintf("//%s/RequirePorts/RequirePort/%s[@id=%%s]", ownerTag, k.InstanceTag()))
}

// expand substitutes every placeholder with a quoted literal.
func (p Path) expand(args ...string) string {
	if len(args) == 0 {
		return string(p)
	}
	lits := make([]any, len(args))
	for i, a := range args {
		lits[i] = literal(a)
	}
	return fmt.Sprintf(string(p), lits...)
}

// literal quotes s as an XPath 1.0 string literal. XPath has no escape
// sequences, so values holding both quote characters are built with concat().
func literal(s string) string {
	switch {
	case !strings.Contains(s, "'"):
		return "'" + s + "'"
	case !strings.Contains(s, `"`):
		return `"` + s + `"`
	}
	parts := strings.Split(s, "'")
	var sb strings.Builder
	sb.WriteString("concat(")
	for i, part := range parts {
		if i > 0 {
			sb.WriteString(`, "'", `)
		}
		sb.WriteString("'" + part + "'")
	}
	sb.WriteString(")")
	return sb.String()
}
