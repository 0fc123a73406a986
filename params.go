package vobject

import (
	"maps"
	"slices"

	"github.com/ghettovoice/vobject/internal/grammar"
)

// Params maps a parameter name to its value.
//
// Names are kept as written, a parameter given without a value
// (like WORK in "TEL;WORK:...") has an empty value.
type Params map[string]string

// Get returns the value of the parameter.
func (ps Params) Get(name string) (string, bool) {
	v, ok := ps[name]
	return v, ok
}

// Set sets the parameter replacing any previous value.
func (ps Params) Set(name, value string) Params {
	ps[name] = value
	return ps
}

// Has checks whether the parameter is present.
func (ps Params) Has(name string) bool {
	_, ok := ps[name]
	return ok
}

// Del deletes the parameter.
func (ps Params) Del(name string) Params {
	delete(ps, name)
	return ps
}

// Keys returns the parameter names in sorted order.
func (ps Params) Keys() []string {
	return slices.Sorted(maps.Keys(ps))
}

// Clone returns a copy of the map.
func (ps Params) Clone() Params {
	if ps == nil {
		return nil
	}
	return maps.Clone(ps)
}

// Equal reports whether both maps hold the same parameters.
// Nil and empty maps are equal.
func (ps Params) Equal(other Params) bool {
	return maps.Equal(ps, other)
}

// IsValid checks that every name is a valid token and every value
// can be rendered either bare or quoted.
func (ps Params) IsValid() bool {
	for k, v := range ps {
		if !grammar.IsName(k) || !grammar.IsQSafe(v) {
			return false
		}
	}
	return true
}
