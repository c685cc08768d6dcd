package objects

import "sort"

// ApplyOverlay merges an overlay's object types into table in place.
// Each overlay key fully replaces the table entry: fields the previous
// definition had and the overlay omits are gone afterwards. Applying the
// same overlay twice leaves the table unchanged the second time.
func ApplyOverlay(table Table, overlay Overlay) {
	if overlay == nil {
		return
	}
	for key, o := range overlay.OverlayObjects() {
		c := o.Clone()
		c.Key = key
		table[key] = c
	}
}

// Registry is a frozen object-type table. It is safe for concurrent reads
// and has no mutating methods.
type Registry struct {
	objects  map[Key]ObjectType
	overlays []string
}

// Build copies generic, applies overlays in order (last one wins per key)
// and freezes the result. A nil generic table starts empty.
func Build(generic Table, overlays ...Overlay) *Registry {
	table := make(Table, len(generic))
	for k, o := range generic {
		c := o.Clone()
		c.Key = k
		table[k] = c
	}

	var names []string
	for _, ov := range overlays {
		if ov == nil {
			continue
		}
		ApplyOverlay(table, ov)
		names = append(names, ov.OverlayName())
	}

	return &Registry{objects: table, overlays: names}
}

// Lookup returns a snapshot of the object type for key.
func (r *Registry) Lookup(key Key) (ObjectType, bool) {
	o, ok := r.objects[key]
	if !ok {
		return ObjectType{}, false
	}
	return o.Clone(), true
}

// Has reports whether key is registered.
func (r *Registry) Has(key Key) bool {
	_, ok := r.objects[key]
	return ok
}

// Resolve returns snapshots for keys in the given order. Keys with no
// registry entry are dropped without error.
func (r *Registry) Resolve(keys []Key) []ObjectType {
	out := make([]ObjectType, 0, len(keys))
	for _, k := range keys {
		if o, ok := r.Lookup(k); ok {
			out = append(out, o)
		}
	}
	return out
}

// Keys returns all registered keys sorted alphabetically.
func (r *Registry) Keys() []Key {
	keys := make([]Key, 0, len(r.objects))
	for k := range r.objects {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Len returns the number of registered object types.
func (r *Registry) Len() int { return len(r.objects) }

// Overlays returns the names of the overlays applied, in application order.
func (r *Registry) Overlays() []string {
	return append([]string(nil), r.overlays...)
}

// DanglingRef is a relationship whose target has no registry entry.
type DanglingRef struct {
	From   Key          `json:"from"`
	Kind   RelationKind `json:"kind"`
	Target Key          `json:"target"`
}

// Dangling lists every relationship whose target is not registered, sorted
// by source key then target. Dangling references are allowed; this only
// makes them visible.
func (r *Registry) Dangling() []DanglingRef {
	var out []DanglingRef
	for _, k := range r.Keys() {
		for _, rel := range r.objects[k].Relationships {
			if !r.Has(rel.Target) {
				out = append(out, DanglingRef{From: k, Kind: rel.Kind, Target: rel.Target})
			}
		}
	}
	return out
}

// Target resolves a relationship's target. The bool is false for a
// dangling reference.
func (r *Registry) Target(rel Relationship) (ObjectType, bool) {
	return r.Lookup(rel.Target)
}
