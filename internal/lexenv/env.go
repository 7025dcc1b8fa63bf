// Package lexenv implements the Env type from spec.md §3: an immutable
// snapshot mapping names to the globally unique slot id of their binding
// site. Extending an Env shadows; equality is by content, not identity, so
// two Envs built from the same sequence of bindings compare equal.
package lexenv

// Env is a persistent mapping from name to slot id. The zero value is the
// empty environment.
type Env struct {
	bindings map[string]int
}

// Empty returns the empty environment (no bindings).
func Empty() *Env {
	return &Env{bindings: map[string]int{}}
}

// Extend returns a new Env that layers name→slot over e, shadowing any
// existing binding of name. e is left unmodified; Envs are logically
// immutable snapshots that may be shared across IR nodes.
func (e *Env) Extend(name string, slot int) *Env {
	next := make(map[string]int, len(e.bindings)+1)
	for k, v := range e.bindings {
		next[k] = v
	}
	next[name] = slot
	return &Env{bindings: next}
}

// ExtendAll extends e with multiple bindings in order, later entries
// shadowing earlier ones — used by the Environment Resolver when a single
// lambda introduces more than one binding (LamOneOneCont's arg then cont).
func (e *Env) ExtendAll(names []string, slots []int) *Env {
	next := make(map[string]int, len(e.bindings)+len(names))
	for k, v := range e.bindings {
		next[k] = v
	}
	for i, name := range names {
		next[name] = slots[i]
	}
	return &Env{bindings: next}
}

// Get returns the slot id bound to name, and whether name is bound at all.
// A (0, false) result means the name is assumed to refer to a runtime
// global (spec.md §4.6, §9).
func (e *Env) Get(name string) (int, bool) {
	if e == nil {
		return 0, false
	}
	slot, ok := e.bindings[name]
	return slot, ok
}

// Names returns the bound names in the order their slot ids were assigned,
// the order the emitter's environment descriptor table relies on
// (spec.md §4.8 item 2).
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.bindings))
	for k := range e.bindings {
		names = append(names, k)
	}
	sortBySlot(names, e.bindings)
	return names
}

// Slots returns the slot ids in the same order as Names.
func (e *Env) Slots() []int {
	names := e.Names()
	slots := make([]int, len(names))
	for i, n := range names {
		slots[i] = e.bindings[n]
	}
	return slots
}

// Equal reports content equality: two Envs are equal iff they bind exactly
// the same names to exactly the same slot ids (spec.md §3: "Env equality
// is by content").
func (e *Env) Equal(other *Env) bool {
	if e == nil || other == nil {
		var a, b map[string]int
		if e != nil {
			a = e.bindings
		}
		if other != nil {
			b = other.bindings
		}
		return len(a) == 0 && len(b) == 0
	}
	if len(e.bindings) != len(other.bindings) {
		return false
	}
	for k, v := range e.bindings {
		if ov, ok := other.bindings[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

func sortBySlot(names []string, bindings map[string]int) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && bindings[names[j-1]] > bindings[names[j]]; j-- {
			names[j-1], names[j] = names[j], names[j-1]
		}
	}
}
