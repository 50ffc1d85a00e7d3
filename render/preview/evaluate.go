// Package preview renders frames without a GPU. It runs the same
// per-instance and per-vertex math the shaders run, on a worker pool,
// and rasterizes the result into an image for snapshot output.
package preview

import (
	"runtime"
	"sync"

	"github.com/alitto/pond/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/prism3d/prism/render/core"
	"github.com/prism3d/prism/render/mesh"
)

// Evaluator fans pure per-element evaluation out over a worker pool.
// Results are written by index, so output order never depends on
// scheduling.
type Evaluator struct {
	pool    pond.Pool
	workers int
}

func NewEvaluator() *Evaluator {
	n := runtime.NumCPU()
	return &Evaluator{
		pool:    pond.NewPool(n),
		workers: n,
	}
}

// Close stops the pool after draining submitted work.
func (e *Evaluator) Close() {
	e.pool.StopAndWait()
}

// GridInstances decodes all side^3 instances of a grid.
func (e *Evaluator) GridInstances(side int32, layout core.CellLayout) []core.Instance {
	total := int(side) * int(side) * int(side)
	out := make([]core.Instance, total)
	e.parallel(total, func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = core.DecodeInstance(side, int32(i), layout)
		}
	})
	return out
}

// GridColors evaluates the grid fragment color for every instance.
func (e *Evaluator) GridColors(instances []core.Instance, side int32, shading core.GridShading) []mgl32.Vec4 {
	out := make([]mgl32.Vec4, len(instances))
	e.parallel(len(instances), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = core.GridColor(instances[i].Cell, side, shading)
		}
	})
	return out
}

// ShadeBall evaluates the lit vertex color for every sphere vertex.
func (e *Evaluator) ShadeBall(verts []mesh.ShadedVertex, light mgl32.Vec3) []mgl32.Vec4 {
	out := make([]mgl32.Vec4, len(verts))
	e.parallel(len(verts), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = core.BallColor(mgl32.Vec3(verts[i].Normal), light)
		}
	})
	return out
}

// Transform runs points through the world to clip transform.
func (e *Evaluator) Transform(cam core.CameraState, points []mgl32.Vec4) []mgl32.Vec4 {
	out := make([]mgl32.Vec4, len(points))
	e.parallel(len(points), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = core.ToClipSpace(cam.Perspective, cam.View, points[i])
		}
	})
	return out
}

func (e *Evaluator) parallel(n int, fn func(start, end int)) {
	if n == 0 {
		return
	}
	chunk := (n + e.workers - 1) / e.workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		start := start // capture per iteration; go.mod's go < 1.22 keeps loop vars shared
		wg.Add(1)
		e.pool.Submit(func() {
			defer wg.Done()
			fn(start, end)
		})
	}
	wg.Wait()
}
