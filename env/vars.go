package env

import "iter"

// Vars is a key/value mapping that preserves insertion order.
//
// Re-inserting an existing key overwrites its value but keeps the key at its
// original position. Order is semantically meaningful: it survives parsing,
// merging, and resolution.
type Vars struct {
	keys []string
	vals map[string]string
}

// NewVars returns an empty ordered mapping.
func NewVars() *Vars {
	return &Vars{vals: make(map[string]string)}
}

// Set inserts or overwrites the value for key. A key seen before keeps its
// original position.
func (v *Vars) Set(key, value string) {
	if v.vals == nil {
		v.vals = make(map[string]string)
	}

	if _, ok := v.vals[key]; !ok {
		v.keys = append(v.keys, key)
	}

	v.vals[key] = value
}

// Get returns the value for key and whether it is present.
func (v *Vars) Get(key string) (string, bool) {
	val, ok := v.vals[key]

	return val, ok
}

// GetOr returns the value for key, or fallback when absent.
func (v *Vars) GetOr(key, fallback string) string {
	if val, ok := v.vals[key]; ok {
		return val
	}

	return fallback
}

// Has reports whether key is present.
func (v *Vars) Has(key string) bool {
	_, ok := v.vals[key]

	return ok
}

// Len returns the number of keys.
func (v *Vars) Len() int {
	return len(v.keys)
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (v *Vars) Keys() []string {
	keys := make([]string, len(v.keys))
	copy(keys, v.keys)

	return keys
}

// All returns an iterator over all key/value pairs in insertion order.
func (v *Vars) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, key := range v.keys {
			if !yield(key, v.vals[key]) {
				return
			}
		}
	}
}

// Clone returns an independent copy of the mapping.
func (v *Vars) Clone() *Vars {
	c := &Vars{
		keys: make([]string, len(v.keys)),
		vals: make(map[string]string, len(v.vals)),
	}

	copy(c.keys, v.keys)

	for key, val := range v.vals {
		c.vals[key] = val
	}

	return c
}

// Merge inserts every pair of other into v in other's insertion order,
// overwriting values of keys already present.
func (v *Vars) Merge(other *Vars) {
	if other == nil {
		return
	}

	for key, val := range other.All() {
		v.Set(key, val)
	}
}

// Map returns the mapping as a plain map. Order is lost; intended for
// interoperating with order-agnostic consumers.
func (v *Vars) Map() map[string]string {
	m := make(map[string]string, len(v.vals))

	for key, val := range v.vals {
		m[key] = val
	}

	return m
}
