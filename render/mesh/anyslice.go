package mesh

import (
	"fmt"
	"reflect"
	"unsafe"
)

// AnySlice wraps a concrete vertex or index slice behind a uniform
// accessor so asset storage and buffer uploads do not need a type
// switch per layout.
type AnySlice struct {
	v reflect.Value
}

// MakeAnySlice wraps slice. It panics when the argument is not a slice.
func MakeAnySlice(slice any) AnySlice {
	v := reflect.ValueOf(slice)
	if v.Kind() != reflect.Slice {
		panic(fmt.Sprintf("mesh: expected a slice, got %s", v.Kind()))
	}
	return AnySlice{v: v}
}

func (s AnySlice) Len() int {
	if !s.v.IsValid() {
		return 0
	}
	return s.v.Len()
}

// ElementSize reports the in-memory size of one element in bytes.
func (s AnySlice) ElementSize() int {
	return int(s.v.Type().Elem().Size())
}

// ElementType reports the element type, which the layout builder walks
// for vertex attribute tags.
func (s AnySlice) ElementType() reflect.Type {
	return s.v.Type().Elem()
}

// Interface returns the wrapped slice as its original type.
func (s AnySlice) Interface() any {
	return s.v.Interface()
}

// Bytes views the backing array as raw bytes for queue uploads. The
// view aliases the slice memory, so the caller must not hold it past
// the next mutation.
func (s AnySlice) Bytes() []byte {
	n := s.Len()
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(s.v.UnsafePointer()), n*s.ElementSize())
}
