package prism

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRendererSelection_SecondRendererPanics(t *testing.T) {
	builder := NewAppBuilder()
	builder.UsePreview("out.png", 64, 64, 1)

	require.Panics(t, func() {
		builder.UseWGPU(640, 480, "win")
	})
}

func TestRendererSelection_SameRendererTwiceIsAllowed(t *testing.T) {
	builder := NewAppBuilder()
	builder.UsePreview("out.png", 64, 64, 1)

	require.NotPanics(t, func() {
		builder.UsePreview("again.png", 64, 64, 1)
	})
}
