// Package transcribe drives the grid-matching pipeline: it anchors and syncs
// the eighth-note grid, fits every interval to its best subdivision, and
// flattens the winning matches into a notatable (duration, labels) stream.
package transcribe

import (
	"errors"
	"fmt"
	"sort"

	"github.com/m-lyon/porcaro/grid"
	"github.com/m-lyon/porcaro/model"
	"github.com/m-lyon/porcaro/subdivision"
)

var ErrUnsortedOnsets = errors.New("onsets must be sorted by peak time")

// LabelPolicy decides what happens to onsets the classifier assigned no
// confident label to.
type LabelPolicy int

const (
	// PlaceholderUnlabeled keeps unlabeled onsets, tagging them with
	// model.PlaceholderLabel. Matches the production prediction path, which
	// force-assigns the argmax label.
	PlaceholderUnlabeled LabelPolicy = iota
	// DropUnlabeled removes unlabeled onsets before matching.
	DropUnlabeled
)

// AutoAnchor requests the brute-force anchor search over the first onsets.
const AutoAnchor = -1

type Options struct {
	Policy LabelPolicy
	// Anchor is the index of the onset the grid is anchored to, or AutoAnchor
	// to search for the best-aligning one.
	Anchor int
}

func DefaultOptions() Options {
	return Options{Policy: PlaceholderUnlabeled, Anchor: AutoAnchor}
}

// Warning records a lossy degradation: Dropped onsets were discarded from
// grid interval Interval because more than four fell inside it.
type Warning struct {
	Interval int
	Dropped  int
}

func (w Warning) String() string {
	return fmt.Sprintf("interval %d: dropped %d of a >4-onset cluster", w.Interval, w.Dropped)
}

// Result is the flattened transcription stream plus the grids it was matched
// against. Durations and Notes are parallel; a nil Notes entry is a rest.
type Result struct {
	Anchor    int
	Raw       []float64
	Synced    []float64
	Durations []model.Duration
	Notes     []model.Labels
	Warnings  []Warning
}

// Run transcribes one track's onset sequence. Precondition violations (bad
// metadata, unsorted onsets, infeasible anchor) fail immediately; data-quality
// issues degrade with a Warning instead.
func Run(onsets []model.OnsetEvent, meta model.SongMetadata, opts Options) (*Result, error) {
	if err := meta.Validate(); err != nil {
		return nil, err
	}
	if !sortedByTime(onsets) {
		return nil, ErrUnsortedOnsets
	}
	events := applyPolicy(onsets, opts.Policy)
	if len(events) == 0 {
		return nil, errors.New("no onsets to transcribe")
	}
	times := model.Times(events)

	anchor := opts.Anchor
	if anchor == AutoAnchor {
		var err error
		anchor, err = grid.EstimateAnchor(meta, times)
		if err != nil {
			return nil, err
		}
	} else if anchor < 0 || anchor >= len(times) {
		return nil, fmt.Errorf("anchor index %d out of range for %d onsets", anchor, len(times))
	}

	raw, err := grid.Build(meta, times[anchor])
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("empty grid: anchor lies beyond the track duration")
	}
	synced := grid.Sync(raw, times, meta.BPM.ThirtySecondNote(), meta.BPM.EighthNote())

	res := &Result{Anchor: anchor, Raw: raw, Synced: synced}
	matchIntervals(res, events, times, meta)
	return res, nil
}

// matchIntervals walks the synced grid in non-overlapping strides of two
// eighth-note intervals, comparing the summed straight matches against the
// tuplet match over the full span. The stride layout keeps each onset
// assigned to exactly one winning match. Tolerance is zero throughout: the
// sync step already absorbed timing slop.
//
// A virtual end point one eighth note past the last grid point closes the
// final interval, so an onset landing exactly on the last grid point still
// gets matched.
func matchIntervals(res *Result, events []model.OnsetEvent, times []float64, meta model.SongMetadata) {
	ts := meta.TimeSignature
	g := make([]float64, 0, len(res.Synced)+1)
	g = append(g, res.Synced...)
	g = append(g, res.Synced[len(res.Synced)-1]+meta.BPM.EighthNote())
	for i := 0; i+1 < len(g); i += 2 {
		start, mid := g[i], g[i+1]
		first := window(events, times, start, mid)
		m1, d1 := subdivision.MatchStraight(start, mid, ts, first)

		if i+2 >= len(g) {
			// trailing lone interval: no two-eighth span to fit a tuplet over
			res.record(m1, Warning{Interval: i, Dropped: d1})
			break
		}

		end := g[i+2]
		second := window(events, times, mid, end)
		m2, d2 := subdivision.MatchStraight(mid, end, ts, second)
		straight := m1.Add(m2)

		span := window(events, times, start, end)
		if tuplet, ok := subdivision.MatchTuplet(start, end, ts, span); ok && tuplet.Distance < straight.Distance {
			res.record(tuplet)
			continue
		}
		res.record(straight,
			Warning{Interval: i, Dropped: d1},
			Warning{Interval: i + 1, Dropped: d2})
	}
}

func (r *Result) record(m subdivision.Match, warnings ...Warning) {
	r.Durations = append(r.Durations, m.Durations...)
	r.Notes = append(r.Notes, m.Notes...)
	for _, w := range warnings {
		if w.Dropped > 0 {
			r.Warnings = append(r.Warnings, w)
		}
	}
}

// window returns the onsets with peak time in [start, end). Binary search
// over the sorted peak times.
func window(events []model.OnsetEvent, times []float64, start, end float64) []model.OnsetEvent {
	lo := sort.SearchFloat64s(times, start)
	hi := sort.SearchFloat64s(times, end)
	return events[lo:hi]
}

func applyPolicy(onsets []model.OnsetEvent, policy LabelPolicy) []model.OnsetEvent {
	res := make([]model.OnsetEvent, 0, len(onsets))
	for _, o := range onsets {
		if len(o.Labels) == 0 {
			if policy == DropUnlabeled {
				continue
			}
			o.Labels = model.Labels{model.PlaceholderLabel}
		}
		res = append(res, o)
	}
	return res
}

func sortedByTime(onsets []model.OnsetEvent) bool {
	for i := 1; i < len(onsets); i++ {
		if onsets[i].PeakTime < onsets[i-1].PeakTime {
			return false
		}
	}
	return true
}
