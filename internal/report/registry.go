package report

import (
	"errors"
	"fmt"
	"slices"
)

// All selects every registered report.
const All = "all"

// ErrUnknownReport is returned when a report name is not registered.
var ErrUnknownReport = errors.New("unknown report")

// Options configure report construction.
type Options struct {
	// Split renders one document per exclusive area.
	Split bool
}

// Factory creates a report from options.
type Factory func(Options) Report

// Registry maps report names to factories, in registration order.
type Registry struct {
	factories map[string]Factory
	order     []string
}

// NewRegistry returns a registry holding the built-in reports.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.Register(EventTask, func(Options) Report { return NewEventTask() })
	r.Register(EventTaskGrouped, func(Options) Report { return NewEventTaskGrouped() })
	r.Register(ExclusiveAreas, func(o Options) Report { return NewExclusiveAreas(o.Split) })
	r.Register(PortMapping, func(Options) Report { return NewPortMapping() })
	return r
}

// Register adds a report factory. Registering a name twice panics.
func (r *Registry) Register(name string, f Factory) {
	if _, exists := r.factories[name]; exists || name == All {
		panic(fmt.Sprintf("report with name '%s' already registered", name))
	}
	r.factories[name] = f
	r.order = append(r.order, name)
}

// Names returns the registered report names in registration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

// Select returns the report registered under name, or every report for All.
func (r *Registry) Select(name string, opts Options) ([]Report, error) {
	if name == All {
		out := make([]Report, 0, len(r.order))
		for _, n := range r.order {
			out = append(out, r.factories[n](opts))
		}
		return out, nil
	}
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w %q, expected one of %v or %q", ErrUnknownReport, name, r.order, All)
	}
	return []Report{f(opts)}, nil
}
