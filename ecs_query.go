package kinetic

import (
	"reflect"
)

// Queries iterate every entity that has all the requested components.
// Types passed as optionals may be missing, in which case Map receives nil.
type Query1[A any] struct{ ecs *Ecs }
type Query2[A, B any] struct{ ecs *Ecs }
type Query3[A, B, C any] struct{ ecs *Ecs }

func MakeQuery1[A any](cmd *Commands) Query1[A]       { return Query1[A]{ecs: cmd.app.ecs} }
func MakeQuery2[A, B any](cmd *Commands) Query2[A, B] { return Query2[A, B]{ecs: cmd.app.ecs} }
func MakeQuery3[A, B, C any](cmd *Commands) Query3[A, B, C] {
	return Query3[A, B, C]{ecs: cmd.app.ecs}
}

// column is one component slice of an archetype. Nil data means the
// component is optional and absent from this archetype.
type column[T any] struct {
	data []T
}

func (c column[T]) at(r row) *T {
	if c.data == nil {
		return nil
	}
	return &c.data[r]
}

func lookupColumn[T any](ecs *Ecs, arch *archetype, opt set[componentId]) (column[T], bool) {
	id := componentIdOf[T](ecs)
	if data, ok := arch.componentData[id]; ok {
		return column[T]{data: data.([]T)}, true
	}
	if _, ok := opt[id]; ok {
		return column[T]{}, true
	}
	return column[T]{}, false
}

func (q Query1[A]) Map(m func(EntityId, *A) bool, optionals ...any) {
	opt := identifyOptionals(q.ecs, optionals...)

	for _, arch := range q.ecs.archetypes {
		colA, ok := lookupColumn[A](q.ecs, arch, opt)
		if !ok {
			continue
		}
		for entityId, row := range arch.entities {
			if !m(entityId, colA.at(row)) {
				return
			}
		}
	}
}

func (q Query2[A, B]) Map(m func(EntityId, *A, *B) bool, optionals ...any) {
	opt := identifyOptionals(q.ecs, optionals...)

	for _, arch := range q.ecs.archetypes {
		colA, ok := lookupColumn[A](q.ecs, arch, opt)
		if !ok {
			continue
		}
		colB, ok := lookupColumn[B](q.ecs, arch, opt)
		if !ok {
			continue
		}
		for entityId, row := range arch.entities {
			if !m(entityId, colA.at(row), colB.at(row)) {
				return
			}
		}
	}
}

func (q Query3[A, B, C]) Map(m func(EntityId, *A, *B, *C) bool, optionals ...any) {
	opt := identifyOptionals(q.ecs, optionals...)

	for _, arch := range q.ecs.archetypes {
		colA, ok := lookupColumn[A](q.ecs, arch, opt)
		if !ok {
			continue
		}
		colB, ok := lookupColumn[B](q.ecs, arch, opt)
		if !ok {
			continue
		}
		colC, ok := lookupColumn[C](q.ecs, arch, opt)
		if !ok {
			continue
		}
		for entityId, row := range arch.entities {
			if !m(entityId, colA.at(row), colB.at(row), colC.at(row)) {
				return
			}
		}
	}
}

// GetComponent returns a pointer into the component storage of one entity.
// The pointer is valid until the next command flush.
func GetComponent[T any](cmd *Commands, entityId EntityId) (*T, bool) {
	ecs := cmd.app.ecs
	archId, ok := ecs.entityIndex[entityId]
	if !ok {
		return nil, false
	}
	arch := ecs.archetypes[archId]
	data, ok := arch.componentData[componentIdOf[T](ecs)]
	if !ok {
		return nil, false
	}
	return &data.([]T)[arch.entities[entityId]], true
}

func identifyOptionals(ecs *Ecs, components ...any) set[componentId] {
	res := make(set[componentId])
	for _, c := range components {
		t, _ := componentValue(c)
		res[ecs.getComponentId(t)] = struct{}{}
	}
	return res
}

func componentIdOf[T any](ecs *Ecs) componentId {
	return ecs.getComponentId(reflect.TypeOf((*T)(nil)).Elem())
}
