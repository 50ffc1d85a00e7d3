package prism

import (
	"reflect"
)

// AppBuilder assembles an App from modules. Modules are installed in the
// order they were added, so a module may rely on resources installed by
// an earlier one.
type AppBuilder struct {
	app     *App
	modules []Module
}

func NewAppBuilder() *AppBuilder {
	app := &App{
		resources:   make(map[reflect.Type]any),
		systems:     make(map[string][]systemFn),
		systemsOnce: make(map[string][]systemFn),
		ecs:         newEcs(),
	}

	for _, stage := range []Stage{Prelude, PreUpdate, Update, PostUpdate, PreRender, Render, PostRender, Finale} {
		app.stages = append(app.stages, stage)
		app.initStage(stage)
	}

	return &AppBuilder{app: app}
}

func (b *AppBuilder) UseModule(modules ...Module) *AppBuilder {
	b.modules = append(b.modules, modules...)

	return b
}

func (b *AppBuilder) Build() *App {
	app := b.app
	commands := &Commands{app: app}

	for _, module := range b.modules {
		module.Install(app, commands)
	}

	return app
}
