package prism

import (
	"reflect"
)

// Queries iterate entities that carry all the requested component types.
// A component type passed in `optionals` may be absent, in which case the
// callback receives nil for it. Map stops early when the callback returns
// false. Pointers handed to the callback alias archetype storage, so edits
// are visible immediately.
type Query1[A any] struct{ ecs *Ecs }
type Query2[A, B any] struct{ ecs *Ecs }
type Query3[A, B, C any] struct{ ecs *Ecs }
type Query4[A, B, C, D any] struct{ ecs *Ecs }

func MakeQuery1[A any](cmd *Commands) Query1[A]             { return Query1[A]{ecs: cmd.app.ecs} }
func MakeQuery2[A, B any](cmd *Commands) Query2[A, B]       { return Query2[A, B]{ecs: cmd.app.ecs} }
func MakeQuery3[A, B, C any](cmd *Commands) Query3[A, B, C] { return Query3[A, B, C]{ecs: cmd.app.ecs} }
func MakeQuery4[A, B, C, D any](cmd *Commands) Query4[A, B, C, D] {
	return Query4[A, B, C, D]{ecs: cmd.app.ecs}
}

func (q Query1[A]) Map(m func(EntityId, *A) bool, optionals ...any) {
	id1 := identifyComponents1[A](q.ecs)
	opt := identifyOptionals(q.ecs, optionals...)

	for _, arch := range q.ecs.archetypes {
		var comps1 []A
		missingA := false
		if compData, ok := arch.componentData[id1]; ok {
			comps1 = compData.([]A)
		} else if _, ok := opt[id1]; ok {
			missingA = true
		} else {
			continue
		}

		for entityId, row := range arch.entities {
			var a *A
			if !missingA {
				a = &comps1[row]
			}

			if !m(entityId, a) {
				return
			}
		}
	}
}

func (q Query2[A, B]) Map(m func(EntityId, *A, *B) bool, optionals ...any) {
	id1, id2 := identifyComponents2[A, B](q.ecs)
	opt := identifyOptionals(q.ecs, optionals...)

	for _, arch := range q.ecs.archetypes {
		var comps1 []A
		missingA := false
		if compData, ok := arch.componentData[id1]; ok {
			comps1 = compData.([]A)
		} else if _, ok := opt[id1]; ok {
			missingA = true
		} else {
			continue
		}

		var comps2 []B
		missingB := false
		if compData, ok := arch.componentData[id2]; ok {
			comps2 = compData.([]B)
		} else if _, ok := opt[id2]; ok {
			missingB = true
		} else {
			continue
		}

		for entityId, row := range arch.entities {
			var a *A
			if !missingA {
				a = &comps1[row]
			}

			var b *B
			if !missingB {
				b = &comps2[row]
			}

			if !m(entityId, a, b) {
				return
			}
		}
	}
}

func (q Query3[A, B, C]) Map(m func(EntityId, *A, *B, *C) bool, optionals ...any) {
	id1, id2, id3 := identifyComponents3[A, B, C](q.ecs)
	opt := identifyOptionals(q.ecs, optionals...)

	for _, arch := range q.ecs.archetypes {
		var comps1 []A
		missingA := false
		if compData, ok := arch.componentData[id1]; ok {
			comps1 = compData.([]A)
		} else if _, ok := opt[id1]; ok {
			missingA = true
		} else {
			continue
		}

		var comps2 []B
		missingB := false
		if compData, ok := arch.componentData[id2]; ok {
			comps2 = compData.([]B)
		} else if _, ok := opt[id2]; ok {
			missingB = true
		} else {
			continue
		}

		var comps3 []C
		missingC := false
		if compData, ok := arch.componentData[id3]; ok {
			comps3 = compData.([]C)
		} else if _, ok := opt[id3]; ok {
			missingC = true
		} else {
			continue
		}

		for entityId, row := range arch.entities {
			var a *A
			if !missingA {
				a = &comps1[row]
			}

			var b *B
			if !missingB {
				b = &comps2[row]
			}

			var c *C
			if !missingC {
				c = &comps3[row]
			}

			if !m(entityId, a, b, c) {
				return
			}
		}
	}
}

func (q Query4[A, B, C, D]) Map(m func(EntityId, *A, *B, *C, *D) bool, optionals ...any) {
	id1, id2, id3, id4 := identifyComponents4[A, B, C, D](q.ecs)
	opt := identifyOptionals(q.ecs, optionals...)

	for _, arch := range q.ecs.archetypes {
		var comps1 []A
		missingA := false
		if compData, ok := arch.componentData[id1]; ok {
			comps1 = compData.([]A)
		} else if _, ok := opt[id1]; ok {
			missingA = true
		} else {
			continue
		}

		var comps2 []B
		missingB := false
		if compData, ok := arch.componentData[id2]; ok {
			comps2 = compData.([]B)
		} else if _, ok := opt[id2]; ok {
			missingB = true
		} else {
			continue
		}

		var comps3 []C
		missingC := false
		if compData, ok := arch.componentData[id3]; ok {
			comps3 = compData.([]C)
		} else if _, ok := opt[id3]; ok {
			missingC = true
		} else {
			continue
		}

		var comps4 []D
		missingD := false
		if compData, ok := arch.componentData[id4]; ok {
			comps4 = compData.([]D)
		} else if _, ok := opt[id4]; ok {
			missingD = true
		} else {
			continue
		}

		for entityId, row := range arch.entities {
			var a *A
			if !missingA {
				a = &comps1[row]
			}

			var b *B
			if !missingB {
				b = &comps2[row]
			}

			var c *C
			if !missingC {
				c = &comps3[row]
			}

			var d *D
			if !missingD {
				d = &comps4[row]
			}

			if !m(entityId, a, b, c, d) {
				return
			}
		}
	}
}

func identifyOptionals(ecs *Ecs, components ...any) set[componentId] {
	res := make(set[componentId])
	for _, c := range components {
		cType := reflect.TypeOf(c)
		if cType.Kind() == reflect.Pointer {
			cType = cType.Elem()
		}
		res[ecs.getComponentId(cType)] = struct{}{}
	}

	return res
}

func identifyComponents1[A any](ecs *Ecs) componentId {
	var a A
	return ecs.getComponentId(reflect.TypeOf(a))
}

func identifyComponents2[A, B any](ecs *Ecs) (componentId, componentId) {
	var a A
	var b B
	return ecs.getComponentId(reflect.TypeOf(a)), ecs.getComponentId(reflect.TypeOf(b))
}

func identifyComponents3[A, B, C any](ecs *Ecs) (componentId, componentId, componentId) {
	var a A
	var b B
	var c C
	return ecs.getComponentId(reflect.TypeOf(a)), ecs.getComponentId(reflect.TypeOf(b)), ecs.getComponentId(reflect.TypeOf(c))
}

func identifyComponents4[A, B, C, D any](ecs *Ecs) (componentId, componentId, componentId, componentId) {
	var a A
	var b B
	var c C
	var d D
	return ecs.getComponentId(reflect.TypeOf(a)), ecs.getComponentId(reflect.TypeOf(b)), ecs.getComponentId(reflect.TypeOf(c)), ecs.getComponentId(reflect.TypeOf(d))
}
