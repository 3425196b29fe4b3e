// --- trycatch/internal/scope/resolver.go ---

package scope

import (
	"github.com/v4rm4n/trycatch/internal/fault"
)

type Value any

type Scope struct {
	Parent  *Scope
	Symbols map[string]Value
}

func newScope(parent *Scope) *Scope {
	return &Scope{Parent: parent, Symbols: make(map[string]Value)}
}

// Resolver walks names outward through nested scopes, then globals, then
// builtins.
type Resolver struct {
	Builtins    *Scope
	GlobalScope *Scope
	Current     *Scope
}

func NewResolver(builtins map[string]Value) *Resolver {
	root := newScope(nil)
	for name, v := range builtins {
		root.Symbols[name] = v
	}
	global := newScope(root)
	return &Resolver{
		Builtins:    root,
		GlobalScope: global,
		Current:     global,
	}
}

func (r *Resolver) EnterScope() {
	r.Current = newScope(r.Current)
}

// ExitScope never pops past the global scope.
func (r *Resolver) ExitScope() {
	if r.Current != r.GlobalScope {
		r.Current = r.Current.Parent
	}
}

func (r *Resolver) Define(name string, v Value) {
	r.Current.Symbols[name] = v
}

func (r *Resolver) Lookup(name string) (Value, bool) {
	curr := r.Current
	for curr != nil {
		if v, ok := curr.Symbols[name]; ok {
			return v, true
		}
		curr = curr.Parent
	}
	return nil, false
}

// Resolve is Lookup for callers that treat an unbound name as a NameError.
func (r *Resolver) Resolve(name string) (Value, error) {
	if v, ok := r.Lookup(name); ok {
		return v, nil
	}
	return nil, fault.Newf(fault.NameError, "name '%s' is not defined", name)
}
