package prism

import (
	"time"
)

// Time tracks wall clock time per frame. Dt is the time since the previous
// frame; on the first frame it measures from module install. Elapsed
// accumulates Dt over the run.
type Time struct {
	Time       time.Time
	Dt         time.Duration
	Elapsed    time.Duration
	FrameCount uint64
}

type TimeModule struct {
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Time{
		Time: time.Now(),
	})
	app.UseSystem(System(timeSystem).InStage(Prelude))
}

func timeSystem(timeResource *Time) {
	now := time.Now()

	timeResource.Dt = now.Sub(timeResource.Time)
	timeResource.Elapsed += timeResource.Dt
	timeResource.Time = now
	timeResource.FrameCount += 1
}
