package resolve

import (
	"context"
	"fmt"

	"github.com/specialistvlad/rtegraph/internal/ctxlog"
	"github.com/specialistvlad/rtegraph/internal/dag"
	"github.com/specialistvlad/rtegraph/internal/model"
)

// Resolver resolves model references against one loaded index.
type Resolver struct {
	ix *model.Index
}

// New returns a Resolver reading from ix.
func New(ix *model.Index) *Resolver {
	return &Resolver{ix: ix}
}

// Index returns the model index the resolver reads from.
func (r *Resolver) Index() *model.Index {
	return r.ix
}

// Executable resolves ref as a runnable id, then as a BSW module entity id.
// A reference found in neither namespace is an integrity fault.
func (r *Resolver) Executable(ref string) (Executable, error) {
	lookups := []struct {
		path model.Path
		kind ExecutableKind
	}{
		{model.PathRunnableByID, KindRunnable},
		{model.PathBswEntityByID, KindBswEntity},
	}

	for _, l := range lookups {
		el, found, err := r.ix.QueryOne(l.path, ref)
		if err != nil {
			return Executable{}, fmt.Errorf("resolve executable %q: %w", ref, err)
		}
		if !found {
			continue
		}
		owner, ok := r.ix.OwnerOf(el)
		if !ok {
			return Executable{}, &IntegrityError{Kind: "owner of executable", Ref: ref, Namespaces: []string{model.TagSwComponent, model.TagBswModule}}
		}
		return Executable{Element: el, Owner: owner, Kind: l.kind}, nil
	}

	return Executable{}, &IntegrityError{
		Kind:       "executable",
		Ref:        ref,
		Namespaces: []string{model.TagRunnable, model.TagBswEntity},
	}
}

// TaskOrInterrupt resolves a task name against the tasks, then the interrupts.
// A name found in neither yields the unknown context, not an error.
func (r *Resolver) TaskOrInterrupt(name string) (Context, error) {
	if name == "" {
		return Context{Kind: ContextUnknown}, nil
	}

	task, found, err := r.ix.QueryOne(model.PathTaskByName, name)
	if err != nil {
		return Context{}, fmt.Errorf("resolve task %q: %w", name, err)
	}
	if found {
		return Context{Kind: ContextTask, Element: task, Name: name}, nil
	}

	isr, found, err := r.ix.QueryOne(model.PathInterruptByName, name)
	if err != nil {
		return Context{}, fmt.Errorf("resolve interrupt %q: %w", name, err)
	}
	if found {
		return Context{Kind: ContextInterrupt, Element: isr, Name: name}, nil
	}
	return Context{Kind: ContextUnknown, Name: name}, nil
}

// Events returns every event of the model in document order.
func (r *Resolver) Events() ([]model.Element, error) {
	events, err := r.ix.Query(model.PathEvents)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// Mappings returns the task-event mappings declared by event.
func (r *Resolver) Mappings(event model.Element) ([]Mapping, error) {
	els, err := r.ix.QueryFrom(event, model.PathEventMappings)
	if err != nil {
		return nil, fmt.Errorf("mappings of %s: %w", event, err)
	}
	return decodeMappings(els), nil
}

// MappingsOf returns every task-event mapping referencing the executable id.
func (r *Resolver) MappingsOf(executableID string) ([]Mapping, error) {
	els, err := r.ix.Query(model.PathExecutableMaps, executableID)
	if err != nil {
		return nil, fmt.Errorf("mappings of executable %q: %w", executableID, err)
	}
	return decodeMappings(els), nil
}

func decodeMappings(els []model.Element) []Mapping {
	out := make([]Mapping, 0, len(els))
	for _, el := range els {
		out = append(out, decodeMapping(el))
	}
	return out
}

// Callers resolves the direct callers declared on x. Every declared caller
// must resolve.
func (r *Resolver) Callers(x Executable) ([]Executable, error) {
	refs, err := r.ix.QueryFrom(x.Element, model.PathDirectCallers)
	if err != nil {
		return nil, fmt.Errorf("callers of %s: %w", x.Element, err)
	}

	out := make([]Executable, 0, len(refs))
	for _, ref := range refs {
		caller, err := r.Executable(ref.Attr("ref"))
		if err != nil {
			return nil, fmt.Errorf("caller of %s: %w", x.Element, err)
		}
		out = append(out, caller)
	}
	return out, nil
}

// RequirePort resolves a connected instance id of the given kind to the
// require port declaring it. BSW module require ports are searched first.
func (r *Resolver) RequirePort(kind model.InstanceKind, instanceID string) (RequirePort, error) {
	for _, ownerTag := range []string{model.TagBswModule, model.TagSwComponent} {
		inst, found, err := r.ix.QueryOne(model.RequireInstancePath(ownerTag, kind), instanceID)
		if err != nil {
			return RequirePort{}, fmt.Errorf("resolve %s instance %q: %w", kind, instanceID, err)
		}
		if !found {
			continue
		}
		port, _ := inst.Parent()
		owner, _ := r.ix.OwnerOf(inst)
		return RequirePort{Port: port, Instance: inst, Owner: owner}, nil
	}

	return RequirePort{}, &IntegrityError{
		Kind:       string(kind) + " instance",
		Ref:        instanceID,
		Namespaces: []string{model.TagBswModule + "/" + model.TagRequirePort, model.TagSwComponent + "/" + model.TagRequirePort},
	}
}

// CheckCallerCycles builds the caller graph of every runnable and BSW entity
// and reports the first caller cycle as an integrity fault.
func (r *Resolver) CheckCallerCycles(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	g := dag.New()

	for _, p := range []model.Path{model.PathRunnables, model.PathBswEntities} {
		callees, err := r.ix.Query(p)
		if err != nil {
			return fmt.Errorf("list executables: %w", err)
		}
		for _, callee := range callees {
			g.AddNode(callee.ID())
			refs, err := r.ix.QueryFrom(callee, model.PathDirectCallers)
			if err != nil {
				return fmt.Errorf("callers of %s: %w", callee, err)
			}
			for _, ref := range refs {
				if err := g.AddEdge(ref.Attr("ref"), callee.ID()); err != nil {
					return fmt.Errorf("%w: %w", ErrIntegrity, err)
				}
			}
		}
	}

	if err := g.DetectCycles(); err != nil {
		return fmt.Errorf("%w: %w", ErrIntegrity, err)
	}
	logger.Debug("Caller graph is acyclic.", "executables", g.Len())
	return nil
}
