package gameboy

import (
	"fmt"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// maxFrameTimes bounds the recording so a long session doesn't grow
// without limit; at 60 FPS this covers a few minutes.
const maxFrameTimes = 1 << 14

func (g *GameBoy) recordFrameTime(d time.Duration) {
	if !g.recordFrameTimes || len(g.frameTimes) >= maxFrameTimes {
		return
	}
	g.frameTimes = append(g.frameTimes, d)
}

// WriteFrameTimePlot renders the recorded frame times as a line plot
// and writes it to path. The image format follows the file extension
// (png, svg, pdf, ...). Requires WithFrameTimes.
func (g *GameBoy) WriteFrameTimePlot(path string) error {
	g.Lock()
	defer g.Unlock()

	if len(g.frameTimes) == 0 {
		return fmt.Errorf("no frame times recorded")
	}

	p := plot.New()
	p.Title.Text = "Frame times"
	p.X.Label.Text = "frame"
	p.Y.Label.Text = "milliseconds"

	pts := make(plotter.XYs, len(g.frameTimes))
	for i, d := range g.frameTimes {
		pts[i].X = float64(i)
		pts[i].Y = float64(d.Microseconds()) / 1000
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(plotter.NewGrid(), line)

	return p.Save(10*vg.Inch, 4*vg.Inch, path)
}
