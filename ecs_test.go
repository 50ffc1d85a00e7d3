package prism

import (
	"reflect"
	"testing"
)

func TestEcs_NewEcs(t *testing.T) {
	ecs := newEcs()

	if len(ecs.archetypes) != 0 {
		t.Errorf("Expected archetypes to be empty, got %v", ecs.archetypes)
	}
	if len(ecs.entityIndex) != 0 {
		t.Errorf("Expected entityIndex to be empty, got %v", ecs.entityIndex)
	}
	if ecs.entityIdCounter != 0 {
		t.Errorf("Expected entityIdCounter to be 0, got %v", ecs.entityIdCounter)
	}
	if ecs.componentIdCounter != 0 {
		t.Errorf("Expected componentIdCounter to be 0, got %v", ecs.componentIdCounter)
	}
}

func TestEcs_AddEntity(t *testing.T) {
	ecs := newEcs()

	entityId := ecs.addEntity()
	if _, ok := ecs.entityIndex[entityId]; !ok {
		t.Errorf("Expected entityId %v to be in entityIndex", entityId)
	}

	type Position struct {
		X, Y float64
	}

	entityId2 := ecs.addEntity(Position{X: 1, Y: 2})
	if _, ok := ecs.entityIndex[entityId2]; !ok {
		t.Errorf("Expected entityId %v to be in entityIndex", entityId2)
	}

	archId1 := ecs.entityIndex[entityId]
	archId2 := ecs.entityIndex[entityId2]
	if archId1 == archId2 {
		t.Errorf("Entities with different components ended up in the same archetype")
	}
}

func TestEcs_AddComponents(t *testing.T) {
	type Position struct{ X, Y float64 }
	type Velocity struct{ X, Y float64 }
	type Health struct{ Points int }
	type Frozen struct{ Until float64 }

	ecs := newEcs()

	entityId := ecs.addEntity(Position{X: 13, Y: 37})
	ecs.addComponents(entityId, Velocity{X: 1}, Health{Points: 100})
	ecs.addComponents(entityId, &Frozen{Until: 2})

	archId := ecs.entityIndex[entityId]
	arch := ecs.archetypes[archId]
	if len(arch.componentData) != 4 {
		t.Errorf("Expected archetype with 4 components, got %d", len(arch.componentData))
	}
}

func TestEcs_AddComponentsToUnknownEntityIsNoop(t *testing.T) {
	type Position struct{ X, Y float64 }

	ecs := newEcs()
	ecs.addComponents(EntityId(999), Position{})

	if len(ecs.entityIndex) != 0 {
		t.Errorf("Expected no entities, got %d", len(ecs.entityIndex))
	}
}

func TestEcs_AddInvalidComponentShouldPanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on invalid component type")
		}
	}()

	ecs := newEcs()
	ecs.addEntity(123)
}

func TestEcs_ComponentRegistration(t *testing.T) {
	type Position struct{ X, Y float64 }

	ecs := newEcs()
	id1 := ecs.getComponentId(reflect.TypeOf(Position{}))
	id2 := ecs.getComponentId(reflect.TypeOf(Position{}))

	if id1 != id2 {
		t.Errorf("expected component IDs to be equal")
	}

	tp := ecs.componentIdTypeMap[id1]
	if tp != reflect.TypeOf(Position{}) {
		t.Errorf("expected Position type, got %s", tp.Name())
	}
}

func TestEcs_ArchetypeKeyExtension(t *testing.T) {
	key := dedupAndSortArchetypeKey([]componentId{3, 1, 2, 1, 3})
	expected := archetypeKey{1, 2, 3}

	for i, v := range key {
		if v != expected[i] {
			t.Errorf("dedup: expected %v, got %v", expected, key)
		}
	}

	key = combineArchetypeKeys([]componentId{1, 2, 3}, []componentId{4, 3, 2, 1})
	expected = archetypeKey{1, 2, 3, 4}

	for i, v := range key {
		if v != expected[i] {
			t.Errorf("combine: expected %v, got %v", expected, key)
		}
	}
}

func TestEcs_RemoveEntity(t *testing.T) {
	type Position struct{ X, Y float64 }

	ecs := newEcs()
	id := ecs.addEntity(Position{1, 2})
	ecs.removeEntity(id)

	if _, ok := ecs.entityIndex[id]; ok {
		t.Errorf("entity not removed")
	}
	if ecs.entityCount() != 0 {
		t.Errorf("expected entity count 0, got %d", ecs.entityCount())
	}
}

func TestEcs_RemoveUnknownEntityIsNoop(t *testing.T) {
	ecs := newEcs()
	id := ecs.addEntity()
	ecs.removeEntity(id)
	ecs.removeEntity(id) // second removal must not panic
}

func TestEcs_RemoveComponents(t *testing.T) {
	type Position struct{ X, Y float64 }
	type Velocity struct{ X, Y float64 }

	ecs := newEcs()
	id := ecs.addEntity(Position{X: 3, Y: 4}, Velocity{X: 1})
	ecs.removeComponents(id, Velocity{})

	arch := ecs.archetypes[ecs.entityIndex[id]]
	if len(arch.componentData) != 1 {
		t.Errorf("Expected archetype with 1 component, got %d", len(arch.componentData))
	}

	// The surviving component keeps its value across the move.
	posId := ecs.getComponentId(reflect.TypeOf(Position{}))
	pos := arch.componentData[posId].([]Position)[arch.entities[id]]
	if pos.X != 3 || pos.Y != 4 {
		t.Errorf("Position lost in move, got %+v", pos)
	}
}

func TestEcs_RecycledRowsAreReused(t *testing.T) {
	type Position struct{ X, Y float64 }

	ecs := newEcs()
	first := ecs.addEntity(Position{X: 1})
	arch := ecs.archetypes[ecs.entityIndex[first]]
	firstRow := arch.entities[first]

	ecs.removeEntity(first)
	second := ecs.addEntity(Position{X: 2})

	if arch.entities[second] != firstRow {
		t.Errorf("expected recycled row %d, got %d", firstRow, arch.entities[second])
	}
}
