// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package cstr

// Registry is an immutable set of constants indexed by their text. A registry
// is safe for concurrent use.
type Registry struct {
	index  map[string]Const
	values []Const
}

// NewRegistry builds a registry from the given constants. Constants with the
// same text are only recorded once.
//
// NewRegistry panics if any of the constants is not NUL-terminated.
func NewRegistry(values ...Const) *Registry {
	r := new(Registry)
	r.index = make(map[string]Const, len(values))
	r.values = make([]Const, 0, len(values))
	for _, v := range values {
		v.mustBeTerminated()
		s := v.String()
		if _, ok := r.index[s]; ok {
			continue
		}
		r.index[s] = v
		r.values = append(r.values, v)
	}
	return r
}

// Lookup returns the constant with the given text.
func (r *Registry) Lookup(text string) (Const, bool) {
	v, ok := r.index[text]
	return v, ok
}

// Len returns the number of constants.
func (r *Registry) Len() int { return len(r.values) }

// All returns the constants in the order they were added.
func (r *Registry) All() []Const {
	all := make([]Const, len(r.values))
	copy(all, r.values)
	return all
}
