package forgecs

// CreateWithComponents builds an entity whose signature is exactly the set
// of types of the supplied values, locating or creating the destination
// archetype in one step rather than migrating component-by-component.
// Fails if two values share a type, or if any value's type was never
// registered via RegisterType.
func (w *World) CreateWithComponents(values ...any) (Entity, error) {
	data := make(map[ComponentTypeID][]byte, len(values))
	sig := make([]ComponentTypeID, 0, len(values))
	for _, v := range values {
		t, bytes := anyBytes(v)
		id, ok := w.types.tryID(t)
		if !ok {
			return Entity{}, ErrUnregisteredType
		}
		if _, dup := data[id]; dup {
			return Entity{}, ErrDuplicateComponent
		}
		data[id] = bytes
		sig = append(sig, id)
	}
	sig = sortedSignature(sig)
	a := w.getOrCreateArchetype(sig)
	e := w.entities.create()
	row, err := a.appendRow(e, data)
	if err != nil {
		w.entities.destroy(e)
		return Entity{}, ErrArchetypeInsert
	}
	w.directory[e] = EntityRecord{Archetype: a.id, Row: row}
	return e, nil
}

// Add migrates e to the archetype reached by adding component type T,
// populated with value. It fails (returns nil, false) if e is dead, T is
// unregistered, or e already carries a T. On failure the entity's current
// archetype is left untouched: the destination row is appended before the
// source row is removed, so a destination insert failure never mutates the
// source (spec's "add<T> rollback" open question, see DESIGN.md).
func Add[T any](w *World, e Entity, value T) (*T, bool) {
	record, live := w.liveRecord(e)
	if !live {
		return nil, false
	}
	id, ok := TryID[T](w)
	if !ok {
		return nil, false
	}
	src := w.archetypes[record.Archetype]
	if src.HasComponentType(id) {
		return nil, false
	}

	destSig, destID := w.addTransition(src, id)

	data := src.peekRow(record.Row)
	data[id] = valueBytes(value)
	dest := w.getOrCreateArchetypeAt(destID, destSig)
	row, err := dest.appendRow(e, data)
	if err != nil {
		return nil, false
	}

	movedEntity, moved := src.removeRow(record.Row)
	w.directory[e] = EntityRecord{Archetype: dest.id, Row: row}
	if moved {
		w.directory[movedEntity] = EntityRecord{Archetype: src.id, Row: record.Row}
	}

	return bytesToValue[T](dest.componentBytes(row, id)), true
}

// Remove migrates e to the archetype reached by dropping component type T.
// It fails if e is dead, T is unregistered, or e doesn't carry a T. Same
// insert-before-remove ordering as Add guards the source on failure.
func Remove[T any](w *World, e Entity) bool {
	record, live := w.liveRecord(e)
	if !live {
		return false
	}
	id, ok := TryID[T](w)
	if !ok {
		return false
	}
	src := w.archetypes[record.Archetype]
	if !src.HasComponentType(id) {
		return false
	}

	destSig, destID := w.removeTransition(src, id)

	data := src.peekRow(record.Row)
	delete(data, id)
	dest := w.getOrCreateArchetypeAt(destID, destSig)
	row, err := dest.appendRow(e, data)
	if err != nil {
		return false
	}

	movedEntity, moved := src.removeRow(record.Row)
	w.directory[e] = EntityRecord{Archetype: dest.id, Row: row}
	if moved {
		w.directory[movedEntity] = EntityRecord{Archetype: src.id, Row: record.Row}
	}
	return true
}

// addTransition returns the (possibly newly computed) destination signature
// and ArchetypeID for adding id to src, consulting and populating src's
// memoized edge cache. A hit turns a repeated identical migration into an
// O(1) lookup instead of a fresh signature sort and hash.
func (w *World) addTransition(src *Archetype, id ComponentTypeID) ([]ComponentTypeID, ArchetypeID) {
	if destID, ok := src.getAddEdge(id); ok {
		return w.archetypes[destID].componentTypes, destID
	}
	destSig := insertSorted(src.componentTypes, id)
	destID := signatureID(destSig)
	src.setAddEdge(id, destID)
	return destSig, destID
}

func (w *World) removeTransition(src *Archetype, id ComponentTypeID) ([]ComponentTypeID, ArchetypeID) {
	if destID, ok := src.getRemoveEdge(id); ok {
		return w.archetypes[destID].componentTypes, destID
	}
	destSig := removeSorted(src.componentTypes, id)
	destID := signatureID(destSig)
	src.setRemoveEdge(id, destID)
	return destSig, destID
}

// getOrCreateArchetypeAt is like World.getOrCreateArchetype but used from the
// migration path, where the caller already knows the signature's canonical
// ID (computed once via addTransition/removeTransition) and wants to avoid
// recomputing it on every call.
func (w *World) getOrCreateArchetypeAt(id ArchetypeID, sig []ComponentTypeID) *Archetype {
	if a, ok := w.archetypes[id]; ok {
		return a
	}
	return w.getOrCreateArchetype(sig)
}

// Get returns a pointer to e's T component, or (nil, false) if e is dead, T
// is unregistered, or e has no T. The pointer is stable until the next
// structural change affecting e's archetype.
func Get[T any](w *World, e Entity) (*T, bool) {
	record, live := w.liveRecord(e)
	if !live {
		return nil, false
	}
	id, ok := TryID[T](w)
	if !ok {
		return nil, false
	}
	a := w.archetypes[record.Archetype]
	if !a.HasComponentType(id) {
		return nil, false
	}
	return bytesToValue[T](a.componentBytes(record.Row, id)), true
}

// Has reports whether e carries a live T component.
func Has[T any](w *World, e Entity) bool {
	record, live := w.liveRecord(e)
	if !live {
		return false
	}
	id, ok := TryID[T](w)
	if !ok {
		return false
	}
	return w.archetypes[record.Archetype].HasComponentType(id)
}
