package forgecs

// QueryResult is one row yielded by a QuerySystem: a stable reference into
// an archetype, resolved lazily via GetResult so it survives being stored
// briefly without pinning a live pointer into column storage.
type QueryResult struct {
	Entity    Entity
	Archetype ArchetypeID
	Row       int
}

// GetResult resolves r's T component on w, or (nil, false) if r's archetype
// doesn't carry a T (which shouldn't happen for a QuerySystem that required
// T, but can for a raw World.Query result joined against an unrelated set).
func GetResult[T any](w *World, r QueryResult) (*T, bool) {
	id, ok := TryID[T](w)
	if !ok {
		return nil, false
	}
	a, ok := w.archetypes[r.Archetype]
	if !ok || !a.HasComponentType(id) {
		return nil, false
	}
	return bytesToValue[T](a.componentBytes(r.Row, id)), true
}

// QuerySystem is a cached selector: it holds a required component-type set,
// an optional excluded set, and the list of archetypes currently matching
// both, refreshed lazily when the World's topology has advanced past the
// version last seen.
type QuerySystem struct {
	required        []ComponentTypeID
	requiredMask    ArchetypeID
	excludedMask    ArchetypeID
	hasExclude      bool
	cachedArches    []*Archetype
	lastSeenVersion uint32
	everResolved    bool
}

// NewQuerySystem builds a QuerySystem requiring every type in types. Pass it
// to World.RegisterQuerySystem so it can be discovered alongside the World
// it queries, though its cache refresh is self-driven via the World's
// topology version and doesn't require registration to work correctly.
func NewQuerySystem(types ...ComponentTypeID) *QuerySystem {
	return &QuerySystem{
		required:     append([]ComponentTypeID(nil), types...),
		requiredMask: signatureID(types),
	}
}

// WithExclude narrows q to archetypes that carry none of the given types, in
// addition to carrying every required type. Returns q for chaining with
// NewQuerySystem. Must be called before the first Query/MatchedArchetypeCount
// call; it does not itself invalidate an already-resolved cache.
func (q *QuerySystem) WithExclude(types ...ComponentTypeID) *QuerySystem {
	q.excludedMask = signatureID(types)
	q.hasExclude = len(types) > 0
	return q
}

// Invalidate forces the next Query call to rescan every archetype,
// regardless of the World's topology version.
func (q *QuerySystem) Invalidate() {
	q.everResolved = false
}

func (q *QuerySystem) matches(a *Archetype) bool {
	if !a.id.contains(q.requiredMask) {
		return false
	}
	if q.hasExclude && intersectsAny(a.id, q.excludedMask) {
		return false
	}
	return true
}

func (q *QuerySystem) ensureFresh(w *World) {
	if q.everResolved && q.lastSeenVersion == w.topologyVersion {
		return
	}
	q.cachedArches = q.cachedArches[:0]
	for _, a := range w.archList {
		if q.matches(a) {
			q.cachedArches = append(q.cachedArches, a)
		}
	}
	q.lastSeenVersion = w.topologyVersion
	q.everResolved = true
}

// Query refreshes the cache if stale, then returns every matching row across
// every cached archetype.
func (q *QuerySystem) Query(w *World) []QueryResult {
	q.ensureFresh(w)
	var out []QueryResult
	for _, a := range q.cachedArches {
		for row, e := range a.entities {
			out = append(out, QueryResult{Entity: e, Archetype: a.id, Row: row})
		}
	}
	return out
}

// MatchedArchetypeCount returns how many archetypes the cache currently
// lists, refreshing first if stale. Exposed for tests that assert cache
// coherence without depending on row contents.
func (q *QuerySystem) MatchedArchetypeCount(w *World) int {
	q.ensureFresh(w)
	return len(q.cachedArches)
}
