package resolve

import (
	"strconv"

	"github.com/specialistvlad/rtegraph/internal/model"
)

// ExecutableKind tells runnables and BSW module entities apart.
type ExecutableKind int

const (
	KindRunnable ExecutableKind = iota
	KindBswEntity
)

// String returns the kind in lower case, as used in log records.
func (k ExecutableKind) String() string {
	if k == KindBswEntity {
		return "bsw_entity"
	}
	return "runnable"
}

// Executable is a runnable or BSW module entity together with the software
// component or BSW module that owns it.
type Executable struct {
	Element model.Element
	Owner   model.Element
	Kind    ExecutableKind
}

// ID returns the identifier references use for the executable.
func (x Executable) ID() string {
	return x.Element.ID()
}

// ContextKind classifies what a task name resolved to.
type ContextKind int

const (
	ContextUnknown ContextKind = iota
	ContextTask
	ContextInterrupt
)

// String returns the kind in lower case, as used in log records.
func (k ContextKind) String() string {
	switch k {
	case ContextTask:
		return "task"
	case ContextInterrupt:
		return "interrupt"
	default:
		return "unknown"
	}
}

// Context is the scheduling context a mapping points at: an OS task, an ISR,
// or the unknown-task sentinel.
type Context struct {
	Kind    ContextKind
	Element model.Element
	// Name is the name that was looked up.
	Name string
}

// Known reports whether the context resolved to a task or an interrupt.
func (c Context) Known() bool {
	return c.Kind != ContextUnknown
}

// Mapping is one task-event mapping of the model.
type Mapping struct {
	Element       model.Element
	EventName     string
	ExecutableRef string
	MappedToTask  bool
	TaskName      string
	Position      string
}

func decodeMapping(el model.Element) Mapping {
	m := Mapping{
		Element:       el,
		EventName:     el.Field("eventName"),
		ExecutableRef: el.Field("executableRef"),
		TaskName:      el.Field("taskName"),
		Position:      el.Field("position"),
	}
	m.MappedToTask, _ = strconv.ParseBool(el.Field("mappedToTask"))
	if m.EventName == "" {
		if event, ok := el.Parent(); ok {
			m.EventName = event.Identity()
		}
	}
	return m
}

// RequirePort is the require port declaring a connected instance.
type RequirePort struct {
	Port     model.Element
	Instance model.Element
	Owner    model.Element
}

// DisplayName returns the port name, or its bare identifier when the model
// leaves the name empty.
func (p RequirePort) DisplayName() string {
	if name := p.Port.Name(); name != "" {
		return name
	}
	if id := p.Port.ID(); id != "" {
		return id
	}
	return p.Instance.ID()
}
