package active

import "sync"

// The registry is process-wide state: it is what lets a relationship name
// a target that has not been declared yet. Reads are concurrent,
// registrations are serialized, and the last registration for a name wins.
var registry = struct {
	sync.RWMutex
	resources map[string]*Resource
}{resources: make(map[string]*Resource)}

// Register stores resource under the underscored form of name, replacing
// any earlier registration. New calls it for every declared resource;
// calling it directly is only useful to alias an existing resource.
func Register(name string, resource *Resource) {
	key := underscore(name)
	registry.Lock()
	defer registry.Unlock()
	registry.resources[key] = resource
}

// Resolve looks a resource up by any underscored or camel-cased variant of
// its registered name.
func Resolve(name string) (*Resource, bool) {
	key := underscore(name)
	registry.RLock()
	defer registry.RUnlock()
	resource, exists := registry.resources[key]
	return resource, exists
}

// ResetRegistry forgets every registration. Tests use it to start from a
// clean slate.
func ResetRegistry() {
	registry.Lock()
	defer registry.Unlock()
	registry.resources = make(map[string]*Resource)
}
