package prism

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
)

// Profiler collects named CPU timings and counters for the current frame.
// Scopes print in first-seen order so the dump stays stable from frame to
// frame.
type Profiler struct {
	scopes     map[string]time.Duration
	startTimes map[string]time.Time
	counts     map[string]int
	order      []string
}

func NewProfiler() *Profiler {
	return &Profiler{
		scopes:     make(map[string]time.Duration),
		startTimes: make(map[string]time.Time),
		counts:     make(map[string]int),
		order:      make([]string, 0),
	}
}

func (p *Profiler) BeginScope(name string) {
	p.startTimes[name] = time.Now()
	for _, n := range p.order {
		if n == name {
			return
		}
	}
	p.order = append(p.order, name)
}

func (p *Profiler) EndScope(name string) {
	if start, ok := p.startTimes[name]; ok {
		p.scopes[name] = time.Since(start)
	}
}

func (p *Profiler) SetCount(name string, count int) {
	p.counts[name] = count
}

// Reset zeroes the timings but keeps scope order and counters.
func (p *Profiler) Reset() {
	for k := range p.scopes {
		p.scopes[k] = 0
	}
}

func (p *Profiler) StatsString() string {
	var sb strings.Builder

	sb.WriteString("Timings (CPU):\n")
	for _, name := range p.order {
		dur := p.scopes[name]
		ms := float64(dur.Microseconds()) / 1000.0
		sb.WriteString(fmt.Sprintf("  %-15s: %.2f ms\n", name, ms))
	}

	sb.WriteString("\nStats:\n")
	keys := make([]string, 0, len(p.counts))
	for k := range p.counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("  %-15s: %d\n", k, p.counts[k]))
	}

	return sb.String()
}

// ProfilerModule installs the Profiler resource and a Finale system that
// dumps stats on Tab, or at debug level when the app is quitting.
type ProfilerModule struct{}

func (mod ProfilerModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewProfiler())

	inputType := reflect.TypeOf(Input{})
	app.UseSystem(System(func(prof *Profiler) {
		prof.SetCount("entities", app.ecs.entityCount())

		if res, ok := app.resources[inputType]; ok {
			if res.(*Input).JustPressed[KeyTab] {
				app.Logger().Infof("Profiler stats:\n%s", prof.StatsString())
			}
		}
		if app.quitting {
			app.Logger().Debugf("Profiler stats at exit:\n%s", prof.StatsString())
		}

		prof.Reset()
	}).InStage(Finale))
}
