package post_processing

import (
	"fmt"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/notargets/gofd/utils"
)

type PlotOptions struct {
	Title          string
	XLabel, YLabel string
	Width, Height  vg.Length // 8x6 inches when zero
	Exact          Exact     // optional
}

/*
SavePNG draws the selected time levels over the whole grid to a PNG file. With
no frames it draws the first and the last level. Exact solutions, when given,
are drawn dashed at the same times.
*/
func SavePNG(p Marched, filename string, opts PlotOptions, frames ...int) (err error) {
	var (
		U, E  utils.Matrix
		x     = p.Grid()
		times = p.Times()
		pl    = plot.New()
	)
	if U, err = FullHistory(p); err != nil {
		return
	}
	if len(frames) == 0 {
		frames = []int{0, len(times) - 1}
	}
	if opts.Exact != nil {
		if E, err = opts.Exact.Sample(x, times); err != nil {
			return
		}
	}
	pl.Title.Text = opts.Title
	pl.X.Label.Text = orDefault(opts.XLabel, "x")
	pl.Y.Label.Text = orDefault(opts.YLabel, "U")
	for i, n := range frames {
		if n < 0 || n >= len(times) {
			return fmt.Errorf("frame %d outside the history of %d levels", n, len(times))
		}
		line, err := plotter.NewLine(xys(x, U.Row(n).Data()))
		if err != nil {
			return err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = plotutil.Color(i)
		pl.Add(line)
		pl.Legend.Add(fmt.Sprintf("t = %.3g", times[n]), line)
		if opts.Exact == nil {
			continue
		}
		exact, err := plotter.NewLine(xys(x, E.Row(n).Data()))
		if err != nil {
			return err
		}
		exact.LineStyle.Color = plotutil.Color(i)
		exact.LineStyle.Dashes = plotutil.Dashes(1)
		pl.Add(exact)
		pl.Legend.Add(fmt.Sprintf("exact t = %.3g", times[n]), exact)
	}
	if opts.Width == 0 || opts.Height == 0 {
		opts.Width, opts.Height = 8*vg.Inch, 6*vg.Inch
	}
	return pl.Save(opts.Width, opts.Height, filename)
}

func xys(x, f []float64) (pts plotter.XYs) {
	pts = make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X, pts[i].Y = x[i], f[i]
	}
	return
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// LiveChart animates the history in a window, one level every graphDelay
func LiveChart(p Marched, exact Exact, graphDelay time.Duration) (err error) {
	var (
		U, E     utils.Matrix
		x        = p.Grid()
		times    = p.Times()
		hasExact bool
	)
	if U, err = FullHistory(p); err != nil {
		return
	}
	fmin, fmax := Bounds(U)
	if exact != nil {
		if E, err = exact.Sample(x, times); err != nil {
			return
		}
		hasExact = true
		fmin, fmax = Bounds(U, E)
	}
	lc := utils.NewLineChart(1280, 1024, x[0], x[len(x)-1], fmin, fmax)
	for n := range times {
		if hasExact {
			lc.Plot(0, x, E.Row(n).Data(), 0.7, "Exact")
		}
		lc.Plot(graphDelay, x, U.Row(n).Data(), -0.7, "U")
	}
	return
}
