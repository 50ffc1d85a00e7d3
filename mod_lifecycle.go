package prism

// LifetimeComponent removes its entity once TimeLeft (seconds) runs out.
// Useful for transient spawns like timed demo annotations.
type LifetimeComponent struct {
	TimeLeft float32
}

type LifecycleModule struct{}

func (mod LifecycleModule) Install(app *App, cmd *Commands) {
	expire := func(time *Time, cmd *Commands) {
		dt := float32(time.Dt.Seconds())
		if dt <= 0 {
			return
		}
		MakeQuery1[LifetimeComponent](cmd).Map(func(eid EntityId, lt *LifetimeComponent) bool {
			lt.TimeLeft -= dt
			if lt.TimeLeft <= 0 {
				app.Logger().Debugf("Lifetime expired, removing entity %v", eid)
				cmd.RemoveEntity(eid)
			}
			return true
		})
	}
	app.UseSystem(System(expire).InStage(PostUpdate))
}
