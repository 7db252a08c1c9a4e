package jsonapi

// RootKey is the reserved registry key naming the descriptor of the entity being
// serialized at the current level.
const RootKey = "root"

// ResourceDescriptor names a resource type and the collection URL its members live under.
type ResourceDescriptor struct {
	Type          string
	CollectionURL string
}

// ResourceURL returns the URL of the member of the collection identified by id.
func (d ResourceDescriptor) ResourceURL(id string) string {
	return d.CollectionURL + "/" + id
}

// TypeRegistry maps relation keys to resource descriptors, plus an optional root
// descriptor for the entity currently being serialized.
//
// A TypeRegistry is immutable once built. Deriving a child registry for a relationship
// rebinds only the root; the relation entries are shared read-only with the parent, so
// sibling branches of one serialization never observe each other's root.
type TypeRegistry struct {
	root      ResourceDescriptor
	hasRoot   bool
	relations map[string]ResourceDescriptor
}

// NewTypeRegistry builds a registry from descriptors keyed by relation name. The entry
// under RootKey, if any, becomes the root descriptor. The map is copied, so later changes
// by the caller do not leak into the registry.
func NewTypeRegistry(descriptors map[string]ResourceDescriptor) TypeRegistry {
	r := TypeRegistry{relations: make(map[string]ResourceDescriptor, len(descriptors))}
	for key, d := range descriptors {
		if key == RootKey {
			r.root = d
			r.hasRoot = true
			continue
		}
		r.relations[key] = d
	}
	return r
}

// Root returns the descriptor for the current level, if one is bound.
func (r TypeRegistry) Root() (ResourceDescriptor, bool) {
	return r.root, r.hasRoot
}

// Lookup returns the descriptor registered under key. Looking up RootKey returns the
// root binding of this registry.
func (r TypeRegistry) Lookup(key string) (ResourceDescriptor, bool) {
	if key == RootKey {
		return r.Root()
	}
	d, ok := r.relations[key]
	return d, ok
}

// WithRoot returns a registry equal to r except that its root is d.
func (r TypeRegistry) WithRoot(d ResourceDescriptor) TypeRegistry {
	return TypeRegistry{root: d, hasRoot: true, relations: r.relations}
}

// Derive returns the registry used to serialize the relationship stored under key: the
// same relation entries with the root rebound to key's descriptor. It reports false when
// key is not registered.
func (r TypeRegistry) Derive(key string) (TypeRegistry, bool) {
	d, ok := r.Lookup(key)
	if !ok {
		return TypeRegistry{}, false
	}
	return r.WithRoot(d), true
}

// Len returns the number of relation entries, not counting the root.
func (r TypeRegistry) Len() int {
	return len(r.relations)
}
