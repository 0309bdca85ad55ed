package toolloop

// Registry is the fixed, ordered set of tools an agent instance is
// configured with. It is built once per agent and read-only during a run;
// the name index backs dispatch so an unknown name is an explicit miss, not
// a fallthrough.
type Registry struct {
	tools []*Tool
	index map[string]*Tool
}

// NewRegistry builds a registry preserving the given tool order. Later tools
// replace earlier ones with the same name.
func NewRegistry(tools ...*Tool) *Registry {
	r := &Registry{index: make(map[string]*Tool, len(tools))}
	for _, t := range tools {
		r.Register(t)
	}
	return r
}

// Register appends a tool, replacing any previous tool with the same name in
// place so registry order stays stable.
func (r *Registry) Register(t *Tool) {
	name := t.Name()
	if _, ok := r.index[name]; ok {
		for i, existing := range r.tools {
			if existing.Name() == name {
				r.tools[i] = t
				break
			}
		}
	} else {
		r.tools = append(r.tools, t)
	}
	r.index[name] = t
}

// Get returns the tool registered under name.
func (r *Registry) Get(name string) (*Tool, bool) {
	t, ok := r.index[name]
	return t, ok
}

// Lookup is Get with an error for callers that want one.
func (r *Registry) Lookup(name string) (*Tool, error) {
	t, ok := r.index[name]
	if !ok {
		return nil, ErrToolNotFound
	}
	return t, nil
}

func (r *Registry) Len() int {
	return len(r.tools)
}

// All returns the tools in registration order.
func (r *Registry) All() []*Tool {
	return r.tools
}

// Definitions returns every tool's definition in registration order, the
// order they are advertised to the model.
func (r *Registry) Definitions() []ToolDefinition {
	defs := make([]ToolDefinition, 0, len(r.tools))
	for _, t := range r.tools {
		defs = append(defs, t.Definition())
	}
	return defs
}
