package prism

import (
	"errors"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the viewer settings read from a TOML file. Zero values in
// the file fall back to DefaultConfig at load time.
type Config struct {
	Window WindowConfig `toml:"window"`
	Render RenderConfig `toml:"render"`
	Debug  bool         `toml:"debug"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type RenderConfig struct {
	Backend       string `toml:"backend"`
	SnapshotPath  string `toml:"snapshot_path"`
	SnapshotScale int    `toml:"snapshot_scale"`
	PresetPath    string `toml:"preset_path"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "Prism",
		},
		Render: RenderConfig{
			Backend:       string(RendererWGPU),
			SnapshotPath:  "snapshot.png",
			SnapshotScale: 1,
			PresetPath:    "scene_preset.json",
		},
	}
}

// LoadConfig layers a TOML file over the defaults. A missing file is not
// an error; the defaults are returned unchanged.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	bytes, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return config, err
	}
	if err := toml.Unmarshal(bytes, &config); err != nil {
		return config, err
	}
	return config, nil
}

// SaveConfig writes the config as TOML, usable as a starting point for
// hand edits.
func SaveConfig(filename string, config Config) error {
	bytes, err := toml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, bytes, 0644)
}
