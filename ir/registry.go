package ir

import "slices"

// Registry is an insertion-ordered name to value mapping where the first
// insertion of a name wins.
type Registry[V any] struct {
	names  []string
	values map[string]V
}

// NewRegistry returns an empty registry.
func NewRegistry[V any]() *Registry[V] {
	return &Registry[V]{values: make(map[string]V)}
}

// Insert adds value under name and reports whether it was stored. A name that
// is already present keeps its original value.
func (r *Registry[V]) Insert(name string, value V) bool {
	if _, ok := r.values[name]; ok {
		return false
	}
	if r.values == nil {
		r.values = make(map[string]V)
	}
	r.names = append(r.names, name)
	r.values[name] = value
	return true
}

// Remove deletes name and reports whether it was present. The remaining
// names keep their relative order.
func (r *Registry[V]) Remove(name string) bool {
	if r == nil {
		return false
	}
	if _, ok := r.values[name]; !ok {
		return false
	}
	delete(r.values, name)
	r.names = slices.DeleteFunc(r.names, func(n string) bool { return n == name })
	return true
}

// Get returns the value stored under name.
func (r *Registry[V]) Get(name string) (V, bool) {
	if r == nil {
		var zero V
		return zero, false
	}
	v, ok := r.values[name]
	return v, ok
}

// Has reports whether name is registered.
func (r *Registry[V]) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Names returns the registered names in insertion order.
func (r *Registry[V]) Names() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.names...)
}

// Len returns the number of registered names.
func (r *Registry[V]) Len() int {
	if r == nil {
		return 0
	}
	return len(r.names)
}

// Each calls fn for every entry in insertion order.
func (r *Registry[V]) Each(fn func(name string, value V)) {
	if r == nil {
		return
	}
	for _, name := range r.names {
		fn(name, r.values[name])
	}
}

// Types is the registry of named types.
type Types = Registry[Type]

// SecuritySchemes is the registry of supported security schemes.
type SecuritySchemes = Registry[SecurityScheme]
