package field

// Handle identifies a field registered with a Lookup. Handles are
// non-owning: the registry and the scene control the field's lifetime, the
// holder of a handle only reads through it.
type Handle uint32

// NoHandle is the zero handle; it never resolves.
const NoHandle Handle = 0

// Lookup resolves field handles. The space package's worlds implement it;
// Registry is a standalone implementation for scenes that manage their own
// storage.
type Lookup interface {
	Resolve(h Handle) (Posed3, bool)
}

// Registry is a plain id-to-field lookup.
type Registry struct {
	next   Handle
	fields map[Handle]Posed3
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{fields: make(map[Handle]Posed3)}
}

// Add registers a field and returns its handle.
func (r *Registry) Add(f Posed3) Handle {
	r.next++
	if r.next == NoHandle {
		r.next = 1
	}
	r.fields[r.next] = f
	return r.next
}

// Remove drops a field; outstanding handles stop resolving.
func (r *Registry) Remove(h Handle) {
	delete(r.fields, h)
}

// Resolve returns the field for a handle, if it is still registered.
func (r *Registry) Resolve(h Handle) (Posed3, bool) {
	f, ok := r.fields[h]
	return f, ok
}
