package kinetic

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumn_Make(t *testing.T) {
	type position struct{ X, Y float32 }

	c := makeColumn(reflect.TypeOf(position{}))
	assert.IsType(t, []position{}, c)
	assert.Empty(t, c)
}

func TestColumn_GrowGetSet(t *testing.T) {
	intType := reflect.TypeOf(0)
	c := makeColumn(intType)
	for i := 0; i < 5; i++ {
		c = columnGrow(c, intType)
		columnSet(c, row(i), reflect.ValueOf(i*10))
	}
	require.Len(t, c, 5)

	assert.EqualValues(t, 20, columnGet(c, 2).Int())

	columnSet(c, 2, reflect.ValueOf(99))
	assert.Equal(t, []int{0, 10, 99, 30, 40}, c)

	c = columnGrow(c, intType)
	assert.Equal(t, 0, c.([]int)[5], "grown rows are zeroed")
}

func TestColumn_Panics(t *testing.T) {
	ints := []int{1, 2}

	assert.Panics(t, func() { columnGet(ints, 10) }, "out of range")
	assert.Panics(t, func() { columnSet(ints, 0, reflect.ValueOf("wrong")) }, "type mismatch on set")
}
