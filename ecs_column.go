package kinetic

import (
	"reflect"
)

// Component columns are typed slices held as any. These helpers are the
// only place that touches them through reflection; queries type-assert the
// slice directly.

func makeColumn(elem reflect.Type) any {
	return reflect.MakeSlice(reflect.SliceOf(elem), 0, 1).Interface()
}

func columnGet(column any, r row) reflect.Value {
	return reflect.ValueOf(column).Index(int(r))
}

func columnSet(column any, r row, val reflect.Value) {
	reflect.ValueOf(column).Index(int(r)).Set(val)
}

// columnGrow appends one zero value and returns the new slice header.
func columnGrow(column any, elem reflect.Type) any {
	return reflect.Append(reflect.ValueOf(column), reflect.Zero(elem)).Interface()
}
