package forgecs_test

import (
	"testing"

	"github.com/kaelstrom/forgecs"
)

type frameClock struct{ Frame int }
type assetCache struct{ Loaded int }

func TestResourceInsertGet(t *testing.T) {
	r := forgecs.NewResourceManager()
	forgecs.Insert(r, frameClock{Frame: 1})

	got, ok := forgecs.GetResource[frameClock](r)
	if !ok || got.Frame != 1 {
		t.Fatalf("expected frameClock{1}, got %+v ok=%v", got, ok)
	}
}

func TestResourceInsertOverwrites(t *testing.T) {
	r := forgecs.NewResourceManager()
	forgecs.Insert(r, frameClock{Frame: 1})
	forgecs.Insert(r, frameClock{Frame: 2})

	got, _ := forgecs.GetResource[frameClock](r)
	if got.Frame != 2 {
		t.Fatalf("expected second Insert to overwrite, got %+v", got)
	}
}

func TestResourceInsertRefSharesMutation(t *testing.T) {
	r := forgecs.NewResourceManager()
	clock := &frameClock{Frame: 0}
	forgecs.InsertRef(r, clock)

	got, ok := forgecs.GetResourceRef[frameClock](r)
	if !ok {
		t.Fatal("expected GetResourceRef to find the inserted pointer")
	}
	got.Frame = 42
	if clock.Frame != 42 {
		t.Fatalf("expected mutation through the returned pointer to be visible, got %d", clock.Frame)
	}
}

func TestResourceHasAndRemove(t *testing.T) {
	r := forgecs.NewResourceManager()
	if forgecs.HasResource[assetCache](r) {
		t.Fatal("expected Has to be false before Insert")
	}
	forgecs.Insert(r, assetCache{Loaded: 3})
	if !forgecs.HasResource[assetCache](r) {
		t.Fatal("expected Has to be true after Insert")
	}
	forgecs.RemoveResource[assetCache](r)
	if forgecs.HasResource[assetCache](r) {
		t.Fatal("expected Has to be false after Remove")
	}
}

func TestResourceClear(t *testing.T) {
	r := forgecs.NewResourceManager()
	forgecs.Insert(r, frameClock{Frame: 1})
	forgecs.Insert(r, assetCache{Loaded: 1})
	r.Clear()
	if forgecs.HasResource[frameClock](r) || forgecs.HasResource[assetCache](r) {
		t.Fatal("expected Clear to drop every resource")
	}
}

func TestResourceWrongKindMiss(t *testing.T) {
	r := forgecs.NewResourceManager()
	forgecs.InsertRef(r, &frameClock{Frame: 1})

	if _, ok := forgecs.GetResource[frameClock](r); ok {
		t.Fatal("expected GetResource to miss a resource inserted via InsertRef")
	}
}
