package main

import (
	"errors"
	"math"
	"time"

	"github.com/kosmit147/zenith2d"
	"github.com/kosmit147/zenith2d/engine"
)

// orange is the fill color of the solid rectangle.
var orange = zenith.Hex("#ffa500")

// demo draws one of every primitive the renderer supports and spins a
// triangle and a star so the difference between modes is visible.
type demo struct {
	angle float64
	subs  []engine.Subscription
}

func newDemo() *demo {
	return &demo{}
}

func (d *demo) Init(ctx *engine.Context) error {
	d.subs = append(d.subs, ctx.Events.Subscribe(engine.KindKeyPressed, func(ev engine.Event) {
		r := ctx.Renderer
		switch ev.(engine.KeyPressed).Key {
		case "H":
			if r.RenderingAlgorithm() == zenith.Software {
				r.SetRenderingAlgorithm(zenith.Hardware)
			} else {
				r.SetRenderingAlgorithm(zenith.Software)
			}
			ctx.Logger.Info("zenithdemo: rendering algorithm", "value", r.RenderingAlgorithm())
		case "F":
			if r.FillAlgorithm() == zenith.BoundaryFill {
				r.SetFillAlgorithm(zenith.FloodFill)
			} else {
				r.SetFillAlgorithm(zenith.BoundaryFill)
			}
			ctx.Logger.Info("zenithdemo: fill algorithm", "value", r.FillAlgorithm())
		case "Escape":
			ctx.Quit()
		}
	}))
	return nil
}

func (d *demo) Update(_ *engine.Context, dt time.Duration) error {
	d.angle = math.Mod(d.angle+dt.Seconds()*math.Pi/2, 2*math.Pi)
	return nil
}

func (d *demo) Draw(ctx *engine.Context) error {
	r := ctx.Renderer
	w, h := r.Backend().Size()
	sx, sy := float64(w)/800, float64(h)/600

	at := func(x, y float64) zenith.Point { return zenith.Pt(x*sx, y*sy) }

	// Fan of lines.
	var lines []zenith.Line
	for i := range 12 {
		a := float64(i) * math.Pi / 24
		o := at(60, 60)
		lines = append(lines, zenith.Line{From: o, To: o.Add(zenith.Pt(math.Cos(a), math.Sin(a)).Mul(120 * sx))})
	}

	var errs []error
	errs = append(errs,
		r.DrawLines(lines, zenith.White),
		r.DrawPoints([]zenith.Point{at(220, 40), at(230, 40), at(240, 40)}, zenith.Yellow),
		r.DrawLineStrip([]zenith.Point{at(200, 80), at(240, 140), at(280, 80), at(320, 140)}, zenith.Cyan),

		r.DrawRect(zenith.R(360*sx, 40*sy, 120*sx, 80*sy), zenith.White),
		r.FillRect(zenith.R(500*sx, 40*sy, 120*sx, 80*sy), orange),

		r.DrawCircle(zenith.Circle{Center: at(120, 260), Radius: 60 * sx}, zenith.Red),
		r.FillCircle(zenith.Circle{Center: at(280, 260), Radius: 60 * sx}, zenith.Green),
		r.DrawEllipse(zenith.Ellipse{Center: at(460, 260), RadiusX: 90 * sx, RadiusY: 45 * sy}, zenith.Blue),
		r.FillEllipse(zenith.Ellipse{Center: at(660, 260), RadiusX: 90 * sx, RadiusY: 45 * sy}, zenith.Magenta),
	)

	tri := zenith.Triangle{A: at(120, 400), B: at(200, 540), C: at(40, 540)}
	spun := zenith.Rotate(tri, d.angle, tri.A.Add(tri.B).Add(tri.C).Div(3))
	errs = append(errs,
		zenith.Fill(r, spun, zenith.Yellow),
		zenith.Draw(r, zenith.Translate(spun, zenith.Pt(200*sx, 0)), zenith.White),
		r.FillPolygon(star(at(520, 470), 70*sx, 30*sx, d.angle), zenith.Cyan),
		r.DrawPolygon(star(at(700, 470), 70*sx, 30*sx, -d.angle), zenith.Red),
	)
	return errors.Join(errs...)
}

func (d *demo) Shutdown(ctx *engine.Context) {
	for _, s := range d.subs {
		ctx.Events.Unsubscribe(s)
	}
	d.subs = nil
}

// star returns the vertices of a five-pointed star rotated by angle.
func star(center zenith.Point, outer, inner, angle float64) []zenith.Point {
	points := make([]zenith.Point, 0, 10)
	for i := range 10 {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := angle + float64(i)*math.Pi/5 - math.Pi/2
		points = append(points, center.Add(zenith.Pt(math.Cos(a), math.Sin(a)).Mul(r)))
	}
	return points
}
