package prism

import (
	"testing"
)

func TestQuery_Map(t *testing.T) {
	type Comp1 struct{ a int }
	type Comp2 struct{ b float32 }
	type Comp3 struct{}

	ecs := newEcs()
	ecs.addEntity(Comp1{a: 1})                                 // comp1 only                       -- shouldn't match
	id2 := ecs.addEntity(Comp1{a: 2}, Comp2{b: 1.37})          // comp1 & comp2                    -- should match
	id3 := ecs.addEntity(Comp1{a: 3}, Comp2{b: 4.20}, Comp3{}) // comp1 & comp2 + something extra  -- should match
	ecs.addEntity(Comp1{a: 4}, Comp3{})                        // comp1 + something extra          -- shouldn't match
	ecs.addEntity(Comp2{b: 3.14})                              // comp2 only                       -- shouldn't match

	query := Query2[Comp1, Comp2]{ecs: ecs}

	gotA := map[EntityId]Comp1{}
	gotB := map[EntityId]Comp2{}
	query.Map(func(entityId EntityId, comp1 *Comp1, comp2 *Comp2) bool {
		gotA[entityId] = *comp1
		gotB[entityId] = *comp2
		return true
	})

	if len(gotA) != 2 {
		t.Fatalf("Unexpected number of results, got %v", len(gotA))
	}
	if gotA[id2] != (Comp1{a: 2}) || gotA[id3] != (Comp1{a: 3}) {
		t.Errorf("Unexpected A components: %v", gotA)
	}
	if gotB[id2] != (Comp2{b: 1.37}) || gotB[id3] != (Comp2{b: 4.20}) {
		t.Errorf("Unexpected B components: %v", gotB)
	}
}

func TestQuery_MapOptional(t *testing.T) {
	type Comp1 struct{ a int }
	type Comp2 struct{ b float32 }

	ecs := newEcs()
	bare := ecs.addEntity(Comp1{a: 1})
	full := ecs.addEntity(Comp1{a: 2}, Comp2{b: 5})

	query := Query2[Comp1, Comp2]{ecs: ecs}

	seen := map[EntityId]bool{}
	query.Map(func(entityId EntityId, comp1 *Comp1, comp2 *Comp2) bool {
		seen[entityId] = comp2 != nil
		return true
	}, Comp2{})

	if len(seen) != 2 {
		t.Fatalf("Expected 2 results with optional Comp2, got %v", len(seen))
	}
	if seen[bare] {
		t.Errorf("Expected nil Comp2 for entity without it")
	}
	if !seen[full] {
		t.Errorf("Expected non-nil Comp2 for entity carrying it")
	}
}

func TestQuery_MapStopsEarly(t *testing.T) {
	type Comp1 struct{ a int }

	ecs := newEcs()
	ecs.addEntity(Comp1{a: 1})
	ecs.addEntity(Comp1{a: 2})
	ecs.addEntity(Comp1{a: 3})

	query := Query1[Comp1]{ecs: ecs}

	numResults := 0
	query.Map(func(entityId EntityId, comp1 *Comp1) bool {
		numResults += 1
		return false
	})

	if numResults != 1 {
		t.Errorf("Expected early exit after 1 result, got %v", numResults)
	}
}

func TestQuery_MapWritesAliasStorage(t *testing.T) {
	type Comp1 struct{ a int }

	ecs := newEcs()
	ecs.addEntity(Comp1{a: 1})

	query := Query1[Comp1]{ecs: ecs}
	query.Map(func(entityId EntityId, comp1 *Comp1) bool {
		comp1.a = 42
		return true
	})

	query.Map(func(entityId EntityId, comp1 *Comp1) bool {
		if comp1.a != 42 {
			t.Errorf("Write through query pointer did not persist, got %v", comp1.a)
		}
		return true
	})
}
