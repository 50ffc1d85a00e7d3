package prism

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestPreviewModule_WritesSnapshotAndExits(t *testing.T) {
	out := filepath.Join(t.TempDir(), "snap.png")

	app := NewAppBuilder().UseModule(
		AssetServerModule{},
		SceneModule{Preset: DefaultScenePreset()},
		PreviewModule{OutputPath: out, Width: 96, Height: 54},
	).Build()

	// The preview renderer exits after its single frame, so Run returns.
	app.Run()

	fd, err := os.Open(out)
	if err != nil {
		t.Fatalf("Snapshot not written: %v", err)
	}
	defer fd.Close()

	img, err := png.Decode(fd)
	if err != nil {
		t.Fatalf("Snapshot is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 96 || img.Bounds().Dy() != 54 {
		t.Errorf("Unexpected snapshot size %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestPreviewModule_ScaleUpsamples(t *testing.T) {
	out := filepath.Join(t.TempDir(), "snap2x.png")

	app := NewAppBuilder().UseModule(
		AssetServerModule{},
		SceneModule{Preset: DefaultScenePreset()},
		PreviewModule{OutputPath: out, Width: 64, Height: 36, Scale: 2},
	).Build()

	app.Run()

	fd, err := os.Open(out)
	if err != nil {
		t.Fatalf("Snapshot not written: %v", err)
	}
	defer fd.Close()

	img, err := png.Decode(fd)
	if err != nil {
		t.Fatalf("Snapshot is not a valid PNG: %v", err)
	}
	if img.Bounds().Dx() != 128 || img.Bounds().Dy() != 72 {
		t.Errorf("Expected the 2x upscale, got %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}
