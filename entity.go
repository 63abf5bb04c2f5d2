package forgecs

import "math"

// Entity is an opaque 64-bit handle: a recyclable index paired with a
// generation counter. Two entities compare equal only if both fields match.
// Entity is a value type: freely copied, carrying no ownership.
type Entity struct {
	Index      uint32
	Generation uint32
}

// entityManager issues and recycles Entity handles. Between calls to clear,
// a freed index is never handed back out with the same generation, so a
// stale Entity copy cannot alias the slot after it is reused. clear resets
// every generation to zero, so a handle issued before it can equal one
// issued after it.
type entityManager struct {
	generations []uint32
	live        []bool
	free        []uint32
}

func newEntityManager() *entityManager {
	return &entityManager{}
}

// create mints a fresh Entity, reusing a released index when one is free.
func (m *entityManager) create() Entity {
	var idx uint32
	if n := len(m.free); n > 0 {
		idx = m.free[n-1]
		m.free = m.free[:n-1]
	} else {
		idx = uint32(len(m.generations))
		m.generations = append(m.generations, 0)
		m.live = append(m.live, false)
	}
	m.live[idx] = true
	return Entity{Index: idx, Generation: m.generations[idx]}
}

// destroy releases e's index back to the freelist and bumps its generation,
// unless the generation has saturated, in which case the index is left off
// the freelist permanently rather than risk a generation wraparound
// aliasing a stale handle.
func (m *entityManager) destroy(e Entity) bool {
	if !m.isAlive(e) {
		return false
	}
	idx := e.Index
	m.live[idx] = false
	if m.generations[idx] == math.MaxUint32 {
		return true
	}
	m.generations[idx]++
	m.free = append(m.free, idx)
	return true
}

// isAlive reports whether e refers to a slot that is both allocated and on
// its current generation.
func (m *entityManager) isAlive(e Entity) bool {
	if int(e.Index) >= len(m.generations) {
		return false
	}
	return m.live[e.Index] && m.generations[e.Index] == e.Generation
}

// clear empties all bookkeeping; every previously issued Entity becomes
// non-live.
func (m *entityManager) clear() {
	m.generations = m.generations[:0]
	m.live = m.live[:0]
	m.free = m.free[:0]
}
