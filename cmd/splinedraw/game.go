package main

import (
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/splinepad/spline"
	"github.com/splinepad/spline/internal/svgdoc"
)

var (
	curveColor  = color.White
	markerColor = color.RGBA{R: 0xff, A: 0xff}
)

// game collects control points from mouse clicks and redraws the spline
// through them every frame.
type game struct {
	log     *slog.Logger
	width   int
	height  int
	sampler spline.Sampler

	// points only ever grows.
	points []spline.Point
	// samples is refilled on every Draw.
	samples []spline.Point
	tick    int
}

func newGame(log *slog.Logger, width, height int, sampler spline.Sampler, points []spline.Point) *game {
	return &game{
		log:     log,
		width:   width,
		height:  height,
		sampler: sampler,
		points:  points,
	}
}

func (g *game) Update() error {
	g.tick = (g.tick + 1) % 255
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.log.Info("adding point", "x", x, "y", y)
		g.points = append(g.points, spline.Pt(float64(x), float64(y)))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: uint8(10 + g.tick/20), A: 0xff})

	segs := spline.Interpolate(g.points)
	g.samples = g.sampler.Sample(g.samples, segs)
	if len(g.points) == 2 {
		g.log.Debug("two point spline", "points", g.points, "segments", segs, "samples", len(g.samples))
	}

	for l := range spline.Polyline(g.samples) {
		vector.StrokeLine(screen,
			float32(l.P0.X), float32(l.P0.Y),
			float32(l.P1.X), float32(l.P1.Y),
			1, curveColor, true)
	}
	window := spline.Rect{X1: float64(g.width), Y1: float64(g.height)}
	for _, pt := range g.points {
		if !window.Contains(pt) {
			continue
		}
		r := spline.Marker(pt.Round(), svgdoc.MarkerSize)
		vector.StrokeRect(screen,
			float32(r.X0), float32(r.Y0),
			float32(r.Width()), float32(r.Height()),
			1, markerColor, false)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
