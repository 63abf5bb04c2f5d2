package forgecs_test

import (
	"testing"

	"github.com/kaelstrom/forgecs"
)

func TestCreateDespawn(t *testing.T) {
	w := forgecs.NewWorld(forgecs.WorldConfig{})
	e1 := w.Create()
	e2 := w.Create()

	if e1.Index == e2.Index {
		t.Fatalf("expected distinct indices, got %d and %d", e1.Index, e2.Index)
	}
	if w.EntityCount() != 2 {
		t.Fatalf("expected 2 live entities, got %d", w.EntityCount())
	}

	if !w.Despawn(e1) {
		t.Fatal("expected Despawn(e1) to succeed")
	}
	if w.Despawn(e1) {
		t.Fatal("expected second Despawn(e1) to fail, entity already dead")
	}
	if w.EntityCount() != 1 {
		t.Fatalf("expected 1 live entity after despawn, got %d", w.EntityCount())
	}
}

func TestStaleHandleSafety(t *testing.T) {
	w := forgecs.NewWorld(forgecs.WorldConfig{})
	type Position struct{ X, Y float64 }
	forgecs.RegisterType[Position](w)

	e := w.Create()
	forgecs.MustAdd(w, e, Position{X: 1, Y: 2})
	w.Despawn(e)

	e2 := w.Create()
	if e2.Index != e.Index {
		t.Fatalf("expected recycled index %d, got %d", e.Index, e2.Index)
	}
	if e2.Generation == e.Generation {
		t.Fatal("expected recycled slot to carry a new generation")
	}

	if _, ok := forgecs.Get[Position](w, e); ok {
		t.Fatal("expected stale handle to fail Get even though its index was recycled")
	}
	if forgecs.Has[Position](w, e) {
		t.Fatal("expected stale handle to report Has == false")
	}
}

func TestSwapRemoveFixesUpDirectory(t *testing.T) {
	w := forgecs.NewWorld(forgecs.WorldConfig{})
	type Marker struct{ N int }
	forgecs.RegisterType[Marker](w)

	entities := make([]forgecs.Entity, 5)
	for i := range entities {
		e := w.Create()
		forgecs.MustAdd(w, e, Marker{N: i})
		entities[i] = e
	}

	w.Despawn(entities[1])

	for i, e := range entities {
		if i == 1 {
			continue
		}
		m, ok := forgecs.Get[Marker](w, e)
		if !ok {
			t.Fatalf("entity %d unexpectedly dead after sibling despawn", i)
		}
		if m.N != i {
			t.Fatalf("entity %d's component corrupted after swap-remove: got N=%d", i, m.N)
		}
	}
}
