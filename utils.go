package forgecs

import (
	"reflect"
	"sort"
	"unsafe"
)

// valueBytes copies v's in-memory representation into an owned byte slice.
func valueBytes[T any](v T) []byte {
	size := unsafe.Sizeof(v)
	if size == 0 {
		return []byte{}
	}
	src := unsafe.Slice((*byte)(unsafe.Pointer(&v)), size)
	buf := make([]byte, size)
	copy(buf, src)
	return buf
}

// anyBytes reflects over a boxed value to get its type and an owned copy of
// its raw bytes, for the type-erased CreateWithComponents path where the
// caller supplies values as `any`.
func anyBytes(v any) (reflect.Type, []byte) {
	rv := reflect.ValueOf(v)
	t := rv.Type()
	size := t.Size()
	if size == 0 {
		return t, []byte{}
	}
	holder := reflect.New(t)
	holder.Elem().Set(rv)
	src := unsafe.Slice((*byte)(holder.UnsafePointer()), size)
	buf := make([]byte, size)
	copy(buf, src)
	return t, buf
}

// bytesToValue reinterprets raw component bytes as *T. The returned pointer
// aliases buf; callers that need it to outlive buf's owner must copy.
func bytesToValue[T any](buf []byte) *T {
	return (*T)(unsafe.Pointer(unsafe.SliceData(buf)))
}

// sortedSignature returns a sorted copy of ids with no duplicate check
// beyond what the caller already guarantees.
func sortedSignature(ids []ComponentTypeID) []ComponentTypeID {
	sig := make([]ComponentTypeID, len(ids))
	copy(sig, ids)
	sort.Slice(sig, func(i, j int) bool { return sig[i] < sig[j] })
	return sig
}

// insertSorted returns a new sorted slice with id inserted, assuming sig is
// already sorted and does not contain id.
func insertSorted(sig []ComponentTypeID, id ComponentTypeID) []ComponentTypeID {
	out := make([]ComponentTypeID, 0, len(sig)+1)
	inserted := false
	for _, t := range sig {
		if !inserted && id < t {
			out = append(out, id)
			inserted = true
		}
		out = append(out, t)
	}
	if !inserted {
		out = append(out, id)
	}
	return out
}

// removeSorted returns a new sorted slice with id removed, assuming sig is
// sorted and contains id.
func removeSorted(sig []ComponentTypeID, id ComponentTypeID) []ComponentTypeID {
	out := make([]ComponentTypeID, 0, len(sig)-1)
	for _, t := range sig {
		if t != id {
			out = append(out, t)
		}
	}
	return out
}
