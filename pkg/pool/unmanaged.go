package pool

import (
	"reflect"
	"sync"
)

var unmanagedCache sync.Map // reflect.Type -> bool

// IsUnmanaged reports whether values of T contain no pointers, meaning they
// can be copied byte-for-byte and a recycled array of them cannot keep other
// objects alive. The result is computed once per type.
func IsUnmanaged[T any]() bool {
	t := reflect.TypeFor[T]()
	if v, ok := unmanagedCache.Load(t); ok {
		return v.(bool)
	}
	res := pointerFree(t)
	unmanagedCache.Store(t, res)
	return res
}

func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
