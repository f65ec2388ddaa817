package www

import (
	"errors"
	"image/color"
	"log/slog"
	"net/http"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"marnewatch/engine/db"
)

const graphWindow = 24 * time.Hour

// GraphHandler renders the last day of recorded player counts as a PNG
// chart. Responds 503 when the history store is disabled.
func (router *Router) GraphHandler(w http.ResponseWriter, r *http.Request) {
	cycles, err := db.RecentCycles(time.Now().Add(-graphWindow))
	if err != nil {
		if errors.Is(err, db.ErrDisabled) {
			http.Error(w, "history store disabled", http.StatusServiceUnavailable)
			return
		}
		slog.Error("failed to load cycle history", "error", err)
		http.Error(w, "failed to load cycle history", http.StatusInternalServerError)
		return
	}

	if len(cycles) == 0 {
		http.Error(w, "no cycles recorded yet", http.StatusNotFound)
		return
	}

	p := plot.New()
	p.Title.Text = "Players"
	p.X.Label.Text = "Time"
	p.X.Tick.Marker = plot.TimeTicks{Format: "15:04"}
	p.Y.Label.Text = "Players"
	p.Y.Min = 0

	currentLine, _ := plotter.NewLine(cyclePlotPoints(cycles, func(c db.CycleSchema) int { return c.CurrentPlayers }))
	currentLine.LineStyle.Width = vg.Points(2)
	currentLine.LineStyle.Color = color.RGBA{R: 0x2e, G: 0x8b, B: 0x57, A: 255}
	p.Add(currentLine)
	p.Legend.Add("current", currentLine)

	maxLine, _ := plotter.NewLine(cyclePlotPoints(cycles, func(c db.CycleSchema) int { return c.MaxPlayers }))
	maxLine.LineStyle.Width = vg.Points(2)
	maxLine.LineStyle.Color = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 255}
	p.Add(maxLine)
	p.Legend.Add("max", maxLine)

	canvas := vgimg.PngCanvas{Canvas: vgimg.NewWith(
		vgimg.UseWH(25*vg.Centimeter, 12*vg.Centimeter),
		vgimg.UseBackgroundColor(color.Transparent),
	)}
	p.Draw(draw.New(canvas))

	w.Header().Set("Content-Type", "image/png")
	if _, err := canvas.WriteTo(w); err != nil {
		slog.Error("failed to write graph", "error", err)
	}
}

func cyclePlotPoints(cycles []db.CycleSchema, value func(db.CycleSchema) int) plotter.XYs {
	plotPoints := make(plotter.XYs, len(cycles))
	for i, cycle := range cycles {
		plotPoints[i].X = float64(cycle.StartTime.Unix())
		plotPoints[i].Y = float64(value(cycle))
	}
	return plotPoints
}
