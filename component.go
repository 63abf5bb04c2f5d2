package forgecs

import (
	"fmt"
	"reflect"
)

// componentInfo records what a TypeRegistry knows about a registered
// component type: its reflected type (for byte-level (de)construction) and
// its fixed size in bytes.
type componentInfo struct {
	typ  reflect.Type
	size uintptr
	name string
}

// typeRegistry maps a Go type identity to a dense ComponentTypeID. It lives
// on a World, not at package scope: a ComponentTypeID is only meaningful
// within the World that assigned it.
type typeRegistry struct {
	byType map[reflect.Type]ComponentTypeID
	infos  []componentInfo
}

func newTypeRegistry() *typeRegistry {
	return &typeRegistry{byType: make(map[reflect.Type]ComponentTypeID)}
}

// register assigns the next dense ID to t, or returns its existing ID if t
// was registered before. Idempotent.
func (r *typeRegistry) register(t reflect.Type) ComponentTypeID {
	if id, ok := r.byType[t]; ok {
		return id
	}
	if len(r.infos) >= maxComponentTypes {
		panic(fmt.Sprintf("forgecs: cannot register component %s: maximum of %d component types reached", t, maxComponentTypes))
	}
	id := ComponentTypeID(len(r.infos))
	r.byType[t] = id
	r.infos = append(r.infos, componentInfo{typ: t, size: t.Size(), name: t.String()})
	return id
}

func (r *typeRegistry) tryID(t reflect.Type) (ComponentTypeID, bool) {
	id, ok := r.byType[t]
	return id, ok
}

func (r *typeRegistry) sizeOf(id ComponentTypeID) uintptr {
	return r.infos[id].size
}

func (r *typeRegistry) typeOf(id ComponentTypeID) reflect.Type {
	return r.infos[id].typ
}

func (r *typeRegistry) nameOf(id ComponentTypeID) string {
	return r.infos[id].name
}

// RegisterType registers T on w and returns its ComponentTypeID. Calling it
// again for the same T is a no-op that returns the existing ID.
func RegisterType[T any](w *World) ComponentTypeID {
	return w.types.register(reflect.TypeFor[T]())
}

// MustID returns T's ComponentTypeID on w, panicking if T was never
// registered. Intended for strict contexts where an unregistered type is a
// programmer error, not a runtime condition to recover from.
func MustID[T any](w *World) ComponentTypeID {
	id, ok := TryID[T](w)
	if !ok {
		panic(fmt.Errorf("%w: %s", ErrUnregisteredType, reflect.TypeFor[T]()))
	}
	return id
}

// TryID returns T's ComponentTypeID on w and whether T has been registered.
func TryID[T any](w *World) (ComponentTypeID, bool) {
	return w.types.tryID(reflect.TypeFor[T]())
}
