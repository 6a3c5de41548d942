// Package subdivision enumerates the rhythmic patterns an eighth-note
// interval can resolve to and fits observed onsets against them.
package subdivision

import (
	"github.com/m-lyon/porcaro/model"
	"github.com/m-lyon/porcaro/tempo"
)

// Subdivision is one candidate rhythmic pattern for a grid interval. Its
// slots exactly tile the interval; rest slots fill the gaps before and
// between sounded notes so the durations always sum to the interval length.
type Subdivision struct {
	// Pattern is the slot occupancy mask, e.g. "0101" for a sixteenth on the
	// second thirty-second slot plus a thirty-second on the fourth.
	Pattern string
	// Times holds the predicted absolute time of each sounded slot.
	Times []float64
	// Durations lists every slot in order, rests included.
	Durations []model.Duration
	// Rests marks which Durations entries are rest slots.
	Rests []bool
}

type slot struct {
	dur  model.Duration
	rest bool
}

func hit(d model.Duration) slot  { return slot{d, false} }
func rest(d model.Duration) slot { return slot{d, true} }

type table struct {
	start float64
	bpm   tempo.BPM
}

// pattern assembles a Subdivision from tiling slots; predicted times are the
// cumulative slot offsets at the table's local tempo.
func (t table) pattern(mask string, slots ...slot) Subdivision {
	durs := make([]model.Duration, len(slots))
	rests := make([]bool, len(slots))
	var times []float64
	offset := 0.0
	for i, s := range slots {
		durs[i] = s.dur
		rests[i] = s.rest
		if !s.rest {
			times = append(times, t.start+offset)
		}
		offset += s.dur.Seconds(t.bpm)
	}
	return Subdivision{Pattern: mask, Times: times, Durations: durs, Rests: rests}
}

// StraightSet enumerates the straight (non-tuplet) subdivisions of a single
// eighth-note interval. The local tempo is derived from the interval length
// so the predicted times tolerate tempo drift across the track.
type StraightSet struct {
	table
}

func NewStraightSet(start, end float64, ts tempo.TimeSignature) StraightSet {
	return StraightSet{table{start, tempo.FromEighthNote(end-start, ts)}}
}

// ByNoteCount returns every straight candidate producing exactly n sounded
// notes, in mask order. Mask order is also the tie-break order: on equal
// distance the earlier candidate wins.
func (s StraightSet) ByNoteCount(n int) []Subdivision {
	switch n {
	case 1:
		return []Subdivision{
			s.pattern("0001", rest(model.DottedSixteenth), hit(model.ThirtySecond)),
			s.pattern("0010", rest(model.Sixteenth), hit(model.Sixteenth)),
			s.pattern("0100", rest(model.ThirtySecond), hit(model.DottedSixteenth)),
			s.pattern("1000", hit(model.Eighth)),
		}
	case 2:
		return []Subdivision{
			s.pattern("0011", rest(model.Sixteenth), hit(model.ThirtySecond), hit(model.ThirtySecond)),
			s.pattern("0101", rest(model.ThirtySecond), hit(model.Sixteenth), hit(model.ThirtySecond)),
			s.pattern("0110", rest(model.ThirtySecond), hit(model.ThirtySecond), hit(model.Sixteenth)),
			s.pattern("1001", hit(model.DottedSixteenth), hit(model.ThirtySecond)),
			s.pattern("1010", hit(model.Sixteenth), hit(model.Sixteenth)),
			s.pattern("1100", hit(model.ThirtySecond), hit(model.DottedSixteenth)),
		}
	case 3:
		return []Subdivision{
			s.pattern("0111", rest(model.ThirtySecond), hit(model.ThirtySecond), hit(model.ThirtySecond), hit(model.ThirtySecond)),
			s.pattern("1011", hit(model.Sixteenth), hit(model.ThirtySecond), hit(model.ThirtySecond)),
			s.pattern("1101", hit(model.ThirtySecond), hit(model.Sixteenth), hit(model.ThirtySecond)),
			s.pattern("1110", hit(model.ThirtySecond), hit(model.ThirtySecond), hit(model.Sixteenth)),
		}
	case 4:
		return []Subdivision{
			s.pattern("1111", hit(model.ThirtySecond), hit(model.ThirtySecond), hit(model.ThirtySecond), hit(model.ThirtySecond)),
		}
	}
	return nil
}

// TupletSet enumerates eighth-note-triplet subdivisions of a span of TWO
// eighth-note intervals. One-note tuplets are omitted: a single note over two
// eighths is always better represented straight.
type TupletSet struct {
	table
}

func NewTupletSet(start, end float64, ts tempo.TimeSignature) TupletSet {
	return TupletSet{table{start, tempo.FromEighthNote((end-start)/2, ts)}}
}

func (s TupletSet) ByNoteCount(n int) []Subdivision {
	switch n {
	case 2:
		return []Subdivision{
			s.pattern("011", rest(model.EighthTriplet), hit(model.EighthTriplet), hit(model.EighthTriplet)),
			s.pattern("101", hit(model.EighthTriplet), rest(model.EighthTriplet), hit(model.EighthTriplet)),
			s.pattern("110", hit(model.EighthTriplet), hit(model.EighthTriplet), rest(model.EighthTriplet)),
		}
	case 3:
		return []Subdivision{
			s.pattern("111", hit(model.EighthTriplet), hit(model.EighthTriplet), hit(model.EighthTriplet)),
		}
	}
	return nil
}
