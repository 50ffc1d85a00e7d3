package main

import (
	"flag"
	"runtime"

	"github.com/prism3d/prism"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "prism.toml", "Path to the TOML config file")
	presetPath := flag.String("preset", "", "Scene preset JSON to load at startup")
	headless := flag.Bool("headless", false, "Render one frame to a PNG and exit")
	out := flag.String("out", "", "Snapshot output path, overrides the config")
	side := flag.Int("side", 0, "Override the grid side length")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	config, err := prism.LoadConfig(*configPath)
	if err != nil {
		panic(err)
	}

	preset := prism.DefaultScenePreset()
	if *presetPath != "" {
		preset, err = prism.LoadScenePreset(*presetPath)
		if err != nil {
			panic(err)
		}
	}
	if *side > 0 {
		preset.Side = int32(*side)
	}

	builder := prism.NewAppBuilder().UseModule(
		prism.LoggingModule{Prefix: "prism", Debug: *debug || config.Debug},
		prism.TimeModule{},
		prism.AssetServerModule{},
		prism.ProfilerModule{},
		prism.LifecycleModule{},
		prism.SceneModule{Preset: preset},
	)

	backend := config.Render.Backend
	if *headless {
		backend = string(prism.RendererPreview)
	}

	switch backend {
	case string(prism.RendererPreview):
		output := config.Render.SnapshotPath
		if *out != "" {
			output = *out
		}
		builder.UsePreview(output, config.Window.Width, config.Window.Height, config.Render.SnapshotScale)
	default:
		builder.
			UseWGPU(config.Window.Width, config.Window.Height, config.Window.Title).
			UseModule(prism.PresetsModule{Path: config.Render.PresetPath})
	}

	builder.Build().Run()
}
