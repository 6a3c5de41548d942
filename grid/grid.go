// Package grid builds the eighth-note time grid a drum track is quantized
// against and syncs it to the detected onsets.
package grid

import (
	"errors"
	"fmt"

	"github.com/m-lyon/porcaro/model"
	"github.com/m-lyon/porcaro/util"
)

var ErrNegativeMeasureStart = errors.New("measure start cannot be negative")

// Build generates the raw, evenly spaced eighth note grid spanning the track.
// The grid is anchored so that anchorTime (the time of the anchoring onset)
// lands on the declared start beat; points before it fill back to the start of
// that measure.
//
// Fails with ErrNegativeMeasureStart when the declared start beat places the
// start of the measure before time zero: the start_beat/anchor parameters are
// inconsistent with the detected onset and must be corrected, not clamped.
func Build(meta model.SongMetadata, anchorTime float64) ([]float64, error) {
	startBeat, err := meta.TimeSignature.EighthNoteBeat(meta.StartBeat)
	if err != nil {
		return nil, err
	}
	eighth := meta.BPM.EighthNote()
	offset := (startBeat - 1) * eighth
	measureStart := anchorTime - offset
	if measureStart < 0 {
		return nil, fmt.Errorf(
			"%w: anchor %.4fs with start-beat offset %.4fs; check the start_beat and anchor parameters",
			ErrNegativeMeasureStart, anchorTime, offset)
	}
	var g []float64
	for k := 0; ; k++ {
		t := measureStart + float64(k)*eighth
		if t >= meta.Duration {
			break
		}
		g = append(g, t)
	}
	return g, nil
}

// Sync snaps the evenly spaced grid onto the detected onsets. A grid point
// with an onset within tolerance of its drift-adjusted position is moved to
// that onset and the drift accumulator updated, so the grid tracks gradual
// tempo drift; otherwise it falls back to one eighth note after the previous
// synced point. The first grid point is fixed as-is.
//
// Both g and onsetTimes must be sorted ascending. Single forward pass.
func Sync(g, onsetTimes []float64, tolerance, eighthNote float64) []float64 {
	if len(g) == 0 {
		return nil
	}
	synced := make([]float64, len(g))
	synced[0] = g[0]
	drift := 0.0
	cursor := 0
	for i := 1; i < len(g); i++ {
		target := g[i]
		for cursor < len(onsetTimes) && onsetTimes[cursor] < target-tolerance {
			cursor++
		}
		if cursor < len(onsetTimes) && util.Abs(onsetTimes[cursor]-(target+drift)) <= tolerance {
			drift += onsetTimes[cursor] - (target + drift)
			synced[i] = target + drift
		} else {
			synced[i] = synced[i-1] + eighthNote
		}
	}
	return synced
}
