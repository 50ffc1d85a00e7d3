package prism

import (
	"fmt"
	"slices"
)

// Stage is a named slot in the frame. Systems registered in the same stage
// run in registration order; buffered commands flush between stages.
type Stage struct {
	Name string
}

var (
	Prelude    = Stage{Name: "Prelude"}
	PreUpdate  = Stage{Name: "PreUpdate"}
	Update     = Stage{Name: "Update"}
	PostUpdate = Stage{Name: "PostUpdate"}
	PreRender  = Stage{Name: "PreRender"}
	Render     = Stage{Name: "Render"}
	PostRender = Stage{Name: "PostRender"}
	Finale     = Stage{Name: "Finale"}
)

type systemScheduleBuilder struct {
	inStage Stage
	once    bool
	system  systemFn
}

// System starts a schedule builder for the given system function.
// The default stage is Update.
//
//	app.UseSystem(System(spawnScene).InStage(Prelude).RunOnce())
func System(system systemFn) systemScheduleBuilder {
	return systemScheduleBuilder{
		system:  system,
		inStage: Update,
	}
}

func (sched systemScheduleBuilder) InStage(s Stage) systemScheduleBuilder {
	return systemScheduleBuilder{
		system:  sched.system,
		inStage: s,
		once:    sched.once,
	}
}

// RunOnce schedules the system for the first frame only. Startup systems
// run before the stage's per-frame systems on that frame.
func (sched systemScheduleBuilder) RunOnce() systemScheduleBuilder {
	return systemScheduleBuilder{
		system:  sched.system,
		inStage: sched.inStage,
		once:    true,
	}
}

type stagePosition int

const (
	stageBefore stagePosition = iota
	stageAfter
)

type stagePositionBuilder struct {
	position stagePosition
	target   Stage
}

func BeforeStage(s Stage) stagePositionBuilder {
	return stagePositionBuilder{
		position: stageBefore,
		target:   s,
	}
}

func AfterStage(s Stage) stagePositionBuilder {
	return stagePositionBuilder{
		position: stageAfter,
		target:   s,
	}
}

// UseStage inserts a custom stage relative to an existing one.
func (app *App) UseStage(stage Stage, where stagePositionBuilder) *App {
	stageIdx := -1
	for i, s := range app.stages {
		if s.Name == where.target.Name {
			stageIdx = i
			break
		}
	}
	if stageIdx == -1 {
		panic(fmt.Sprintf("Stage %v not found", where.target.Name))
	}

	insertAt := stageIdx
	if where.position == stageAfter {
		insertAt = stageIdx + 1
	}

	app.stages = slices.Insert(app.stages, insertAt, stage)
	app.initStage(stage)

	return app
}

func (app *App) UseSystem(system systemScheduleBuilder) *App {
	name := system.inStage.Name
	if _, ok := app.systems[name]; !ok {
		panic(fmt.Sprintf("Stage %v doesn't exist", name))
	}

	if system.once {
		app.systemsOnce[name] = append(app.systemsOnce[name], system.system)
	} else {
		app.systems[name] = append(app.systems[name], system.system)
	}
	return app
}

func (app *App) initStage(stage Stage) {
	if _, ok := app.systems[stage.Name]; ok {
		return
	}
	app.systems[stage.Name] = make([]systemFn, 0)
	app.systemsOnce[stage.Name] = make([]systemFn, 0)
}
