package subdivision

import (
	"github.com/sirupsen/logrus"

	"github.com/m-lyon/porcaro/model"
	"github.com/m-lyon/porcaro/tempo"
	"github.com/m-lyon/porcaro/util"
)

var log = logrus.WithField("component", "subdivision")

// maxNotesPerInterval is the densest straight pattern: four thirty-seconds.
const maxNotesPerInterval = 4

// Match is the result of fitting observed onsets to one subdivision: the
// summed |predicted - observed| distance, the chosen slot durations, and the
// instrument labels assigned to each slot. A nil Notes entry is a rest slot.
type Match struct {
	Distance  float64
	Durations []model.Duration
	Notes     []model.Labels
}

// Add combines two matches over successive intervals: distances sum, slots
// concatenate in time order.
func (m Match) Add(other Match) Match {
	durs := make([]model.Duration, 0, len(m.Durations)+len(other.Durations))
	durs = append(durs, m.Durations...)
	durs = append(durs, other.Durations...)
	notes := make([]model.Labels, 0, len(m.Notes)+len(other.Notes))
	notes = append(notes, m.Notes...)
	notes = append(notes, other.Notes...)
	return Match{
		Distance:  m.Distance + other.Distance,
		Durations: durs,
		Notes:     notes,
	}
}

// MatchStraight fits the onsets within one eighth-note interval to the best
// straight subdivision. Zero onsets yield a single eighth rest at distance 0.
// More than four onsets is a data-quality degradation: the cluster is reduced
// to its four most distinct members and the number dropped is returned so the
// caller can surface a warning.
func MatchStraight(start, end float64, ts tempo.TimeSignature, events []model.OnsetEvent) (Match, int) {
	if len(events) == 0 {
		return Match{
			Distance:  0,
			Durations: []model.Duration{model.Eighth},
			Notes:     []model.Labels{nil},
		}, 0
	}
	dropped := 0
	if len(events) > maxNotesPerInterval {
		dropped = len(events) - maxNotesPerInterval
		log.WithFields(logrus.Fields{"onsets": len(events), "dropped": dropped}).
			Warn("more than 4 onsets in one eighth-note interval, dropping least distinct")
		events = reduceMostDistinct(events, maxNotesPerInterval)
	}
	set := NewStraightSet(start, end, ts)
	return closestMatch(events, set.ByNoteCount(len(events))), dropped
}

// MatchTuplet fits the onsets within a two-eighth-note span to the best
// triplet subdivision. Returns ok=false when the onset count has no tuplet
// candidates (only 2 and 3 note tuplets exist).
func MatchTuplet(start, end float64, ts tempo.TimeSignature, events []model.OnsetEvent) (Match, bool) {
	set := NewTupletSet(start, end, ts)
	candidates := set.ByNoteCount(len(events))
	if candidates == nil {
		return Match{}, false
	}
	return closestMatch(events, candidates), true
}

// closestMatch selects the minimum-distance candidate. Candidates and events
// have equal note counts by construction; distance pairs predicted and
// observed times element-wise over the sorted sequences. The first minimal
// candidate in table order wins ties.
func closestMatch(events []model.OnsetEvent, candidates []Subdivision) Match {
	best := -1
	bestDist := 0.0
	for i, c := range candidates {
		d := 0.0
		for j, t := range c.Times {
			d += util.Abs(events[j].PeakTime - t)
		}
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	chosen := candidates[best]
	notes := make([]model.Labels, len(chosen.Durations))
	k := 0
	for i := range chosen.Durations {
		if !chosen.Rests[i] {
			notes[i] = events[k].Labels
			k++
		}
	}
	return Match{Distance: bestDist, Durations: chosen.Durations, Notes: notes}
}

// reduceMostDistinct keeps the n most distinct onsets by iteratively dropping
// the first member of the closest-spaced pair.
func reduceMostDistinct(events []model.OnsetEvent, n int) []model.OnsetEvent {
	reduced := make([]model.OnsetEvent, len(events))
	copy(reduced, events)
	for len(reduced) > n {
		gaps := util.Diffs(model.Times(reduced))
		drop := util.ArgMin(gaps)
		reduced = append(reduced[:drop], reduced[drop+1:]...)
	}
	return reduced
}
