package forgecs

import "reflect"

// ResourceManager holds World-global singletons keyed by type: one value of
// each Go type at a time, independent of any entity or archetype. Used for
// things like a render target, a frame clock, or an asset cache that every
// system needs but that isn't itself a component.
type ResourceManager struct {
	items map[reflect.Type]any
}

// NewResourceManager returns an empty ResourceManager.
func NewResourceManager() *ResourceManager {
	return &ResourceManager{items: make(map[reflect.Type]any)}
}

// Insert stores value as the resource of type T, overwriting any existing
// one. Stores a copy; callers that need shared mutation should use InsertRef.
func Insert[T any](r *ResourceManager, value T) {
	r.items[reflect.TypeFor[T]()] = value
}

// InsertRef stores value by pointer as the resource of type T, so later
// mutations through the stored pointer are visible to every caller of
// GetResourceRef.
func InsertRef[T any](r *ResourceManager, value *T) {
	r.items[reflect.TypeFor[T]()] = value
}

// GetResource returns the resource of type T inserted via Insert, or
// (zero, false) if none is present or it was inserted via InsertRef instead.
func GetResource[T any](r *ResourceManager) (T, bool) {
	v, ok := r.items[reflect.TypeFor[T]()]
	if !ok {
		return *new(T), false
	}
	t, ok := v.(T)
	return t, ok
}

// GetResourceRef returns the pointer stored via InsertRef for type T, or
// (nil, false) if none is present or it was inserted via Insert instead.
func GetResourceRef[T any](r *ResourceManager) (*T, bool) {
	v, ok := r.items[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	p, ok := v.(*T)
	return p, ok
}

// HasResource reports whether a resource of type T is present, regardless of
// whether it was inserted by value or by reference.
func HasResource[T any](r *ResourceManager) bool {
	_, ok := r.items[reflect.TypeFor[T]()]
	return ok
}

// RemoveResource drops the resource of type T, if any. Named RemoveResource
// rather than Remove to avoid colliding with the component-level Remove[T].
func RemoveResource[T any](r *ResourceManager) {
	delete(r.items, reflect.TypeFor[T]())
}

// Clear drops every resource.
func (r *ResourceManager) Clear() {
	clear(r.items)
}
