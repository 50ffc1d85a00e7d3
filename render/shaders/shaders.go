// Package shaders embeds the WGSL sources for the viewer's three
// pipelines. The grid shader exposes two vertex entry points (one per
// instance index decode) and two fragment entry points (constant and
// gradient shading) so the passes pick variants at pipeline build time.
package shaders

import _ "embed"

//go:embed grid.wgsl
var GridWGSL string

//go:embed ball.wgsl
var BallWGSL string

//go:embed lines.wgsl
var LinesWGSL string
