package grid

import (
	"errors"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/m-lyon/porcaro/model"
	"github.com/m-lyon/porcaro/util"
)

// maxAnchorCandidates bounds the brute-force anchor search: pickup notes and
// noise hits before the first down-beat are expected within the first handful
// of onsets, not twenty bars in.
const maxAnchorCandidates = 20

var log = logrus.WithField("component", "grid")

// EstimateAnchor searches candidate anchor onsets 0..19 and returns the index
// whose synced grid aligns with the most onsets. Candidates whose grid would
// start before time zero are skipped. Earliest offset wins ties.
func EstimateAnchor(meta model.SongMetadata, onsetTimes []float64) (int, error) {
	if len(onsetTimes) == 0 {
		return 0, errors.New("cannot estimate anchor: no onsets")
	}
	limit := util.Min(maxAnchorCandidates, len(onsetTimes))
	tolerance := meta.BPM.ThirtySecondNote()
	eighth := meta.BPM.EighthNote()

	best, bestScore := -1, -1
	var firstErr error
	for n := 0; n < limit; n++ {
		g, err := Build(meta, onsetTimes[n])
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		synced := Sync(g, onsetTimes, tolerance, eighth)
		score := countAligned(synced, onsetTimes)
		if score > bestScore {
			best, bestScore = n, score
		}
	}
	if best < 0 {
		return 0, firstErr
	}
	log.WithFields(logrus.Fields{"offset": best, "aligned": bestScore}).
		Info("anchor offset estimated")
	return best, nil
}

// countAligned counts grid points coinciding with an onset, both rounded to
// 1e-8s. Both inputs are sorted ascending.
func countAligned(g, onsetTimes []float64) int {
	count := 0
	j := 0
	for _, t := range g {
		gt := roundTime(t)
		for j < len(onsetTimes) && roundTime(onsetTimes[j]) < gt {
			j++
		}
		if j < len(onsetTimes) && roundTime(onsetTimes[j]) == gt {
			count++
			j++
		}
	}
	return count
}

func roundTime(t float64) float64 {
	return math.Round(t*1e8) / 1e8
}
