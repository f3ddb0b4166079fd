// Command splinedraw draws a clamped cubic spline through points added with
// the mouse.
//
// Left click adds a point, Escape quits. With -svg, the spline through the
// points given by -points is written to a file instead and no window is
// opened.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/splinepad/spline"
	"github.com/splinepad/spline/internal/svgdoc"
)

func main() {
	width := flag.Int("width", 800, "window width in pixels")
	height := flag.Int("height", 600, "window height in pixels")
	samples := flag.Int("samples", spline.SampleCount, "samples per segment")
	debug := flag.Bool("debug", false, "verbose/debug logging")
	points := flag.String("points", "", `initial points, as "x,y x,y ..."`)
	svgPath := flag.String("svg", "", "write the spline as SVG to this file and exit")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	if *debug {
		spline.SetLogger(log)
	}

	if err := run(log, *width, *height, *samples, *points, *svgPath); err != nil {
		log.Error("splinedraw failed", "err", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger, width, height, samples int, points, svgPath string) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", width, height)
	}
	if samples < 2 {
		return fmt.Errorf("need at least 2 samples per segment, got %d", samples)
	}
	pts, err := svgdoc.ParsePoints(points)
	if err != nil {
		return fmt.Errorf("parsing -points: %w", err)
	}

	if svgPath != "" {
		return writeSVG(log, svgPath, width, height, pts)
	}

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("splinedraw")
	ebiten.SetTPS(60)
	g := newGame(log, width, height, spline.Sampler{N: samples}, pts)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func writeSVG(log *slog.Logger, path string, width, height int, pts []spline.Point) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := svgdoc.Write(f, width, height, pts); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	log.Info("wrote svg", "path", path, "points", len(pts))
	return nil
}
