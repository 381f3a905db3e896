package bitset

import (
	"fmt"
	"reflect"
)

// assertf panics on a contract violation when built with the bitsetcheck
// tag. Release builds compile the check out; violating a precondition
// there is undefined behavior.
func assertf(cond bool, format string, args ...any) {
	if checksEnabled && !cond {
		panic(fmt.Sprintf("bitset: "+format, args...))
	}
}

func assertTriviallyCopyable(t reflect.Type) {
	if !checksEnabled {
		return
	}
	if !triviallyCopyable(t) {
		panic(fmt.Sprintf("bitset: %v is not trivially copyable", t))
	}
}

// triviallyCopyable reports whether a value of type t is fully described
// by its raw bytes, with no indirection anywhere in its representation.
func triviallyCopyable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return triviallyCopyable(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !triviallyCopyable(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
