// Package forgecs implements a headless, archetype-based Entity-Component-System
// runtime: dense component type registration, generation-guarded entity handles,
// column-store archetypes with memoized migration edges, cached queries, and the
// resource/system/plugin composition fabric an application wires on top of it.
package forgecs

import "errors"

// Sentinel errors for the composition-time and structural-change failure kinds
// described by the error handling design. Runtime structural operations such as
// Add, Remove, Get, and Despawn stay panic-free and report failure by returning
// false/nil instead of one of these; these sentinels surface from the strict and
// composition-time paths (MustID, CreateWithComponents, SystemManager.Add,
// PluginManager.BuildAll) where a caller needs to distinguish failure causes.
var (
	ErrUnregisteredType    = errors.New("forgecs: component type not registered")
	ErrEntityNotLive       = errors.New("forgecs: entity is not live")
	ErrDuplicateComponent  = errors.New("forgecs: component already present on entity")
	ErrMissingComponent    = errors.New("forgecs: component not present on entity")
	ErrArchetypeInsert     = errors.New("forgecs: failed to insert row into archetype")
	ErrDuplicateSystemName = errors.New("forgecs: duplicate system name")
	ErrDuplicatePluginName = errors.New("forgecs: duplicate plugin name")
	ErrUnknownDependency   = errors.New("forgecs: unknown plugin dependency")
	ErrDependencyCycle     = errors.New("forgecs: plugin dependency cycle")
)
