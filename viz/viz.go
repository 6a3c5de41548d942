// Package viz renders a debug view of the grid alignment: detected onsets
// against the raw and synced eighth-note grids on a shared timeline.
package viz

import (
	"fmt"

	"github.com/fogleman/gg"
)

const (
	imgWidth   = 1400
	imgHeight  = 260
	marginX    = 40.0
	laneHeight = 60.0
)

type lane struct {
	label   string
	times   []float64
	r, g, b float64
}

// RenderAlignment writes a PNG with one lane per sequence: onsets, raw grid,
// synced grid. Each time value becomes a vertical tick scaled to the track
// duration.
func RenderAlignment(path string, onsets, raw, synced []float64, duration float64) error {
	if duration <= 0 {
		return fmt.Errorf("duration must be positive, got %v", duration)
	}
	dc := gg.NewContext(imgWidth, imgHeight)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	lanes := []lane{
		{"onsets", onsets, 0.85, 0.2, 0.2},
		{"raw grid", raw, 0.2, 0.2, 0.85},
		{"synced grid", synced, 0.1, 0.6, 0.2},
	}
	for i, l := range lanes {
		top := 30.0 + float64(i)*laneHeight
		dc.SetRGB(0.75, 0.75, 0.75)
		dc.SetLineWidth(1)
		dc.DrawLine(marginX, top+laneHeight/2, imgWidth-marginX, top+laneHeight/2)
		dc.Stroke()

		dc.SetRGB(l.r, l.g, l.b)
		dc.SetLineWidth(2)
		for _, t := range l.times {
			x := marginX + t/duration*(imgWidth-2*marginX)
			dc.DrawLine(x, top, x, top+laneHeight-16)
			dc.Stroke()
		}
		dc.SetRGB(0.1, 0.1, 0.1)
		dc.DrawString(l.label, marginX, top-4)
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("saving alignment png: %w", err)
	}
	return nil
}
