// Package sheet assembles a matched (duration, labels) stream into measures
// of drum notation and serializes the result to MusicXML and standard MIDI.
package sheet

import (
	"fmt"

	"github.com/m-lyon/porcaro/model"
	"github.com/m-lyon/porcaro/tempo"
)

// displayPitch maps instrument labels to their staff position on a standard
// five-line drum staff.
var displayPitch = map[string]struct {
	Step   string
	Octave int
}{
	model.KickDrum:    {"F", 4},
	model.SnareDrum:   {"C", 5},
	model.SnareXStick: {"C", 5},
	model.HiHatClosed: {"G", 5},
	model.HiHatOpen:   {"G", 5},
	model.HiHat:       {"G", 5},
	model.RideCymbal:  {"G", 5},
	model.CrashCymbal: {"A", 5},
	model.HighTom:     {"E", 5},
	model.MidTom:      {"D", 5},
	model.FloorTom:    {"A", 4},
	model.Tom:         {"E", 5},
}

// noteheads for the labels that don't use the default oval.
var noteheads = map[string]string{
	model.HiHatClosed: "x",
	model.HiHatOpen:   "circle-x",
	model.HiHat:       "x",
	model.RideCymbal:  "x",
}

// Event is one notated slot: a rest (nil Labels), a single percussion note,
// or a chord of simultaneous notes sharing the duration.
type Event struct {
	Duration model.Duration
	Labels   model.Labels
}

func (e Event) IsRest() bool { return len(e.Labels) == 0 }

type Measure struct {
	Events []Event
}

// Score is the measure-organized notation for one transcribed track.
type Score struct {
	Title         string
	Composer      string
	BPM           tempo.BPM
	TimeSignature tempo.TimeSignature
	Measures      []Measure
}

// Build groups the flattened stream into measures of beatsInMeasure * 2
// eighth-note units, padding the final partial measure with eighth rests.
// Mismatched stream lengths are a precondition violation.
func Build(durations []model.Duration, notes []model.Labels, meta model.SongMetadata, title string) (*Score, error) {
	if len(durations) != len(notes) {
		return nil, fmt.Errorf("mismatched stream lengths: %d durations, %d note slots", len(durations), len(notes))
	}
	if err := meta.TimeSignature.Validate(); err != nil {
		return nil, err
	}
	capacity := meta.TimeSignature.BeatsInMeasure * 2 * model.TicksPerEighth

	score := &Score{
		Title:         title,
		Composer:      "porcaro",
		BPM:           meta.BPM,
		TimeSignature: meta.TimeSignature,
	}
	var current Measure
	filled := 0
	for i, d := range durations {
		ticks := d.Ticks()
		if filled+ticks > capacity {
			return nil, fmt.Errorf("event %d (%v) straddles a measure boundary", i, d)
		}
		current.Events = append(current.Events, Event{Duration: d, Labels: notes[i]})
		filled += ticks
		if filled == capacity {
			score.Measures = append(score.Measures, current)
			current = Measure{}
			filled = 0
		}
	}
	if filled > 0 {
		// the matcher tiles whole eighth intervals, so the remainder is a
		// whole number of eighth rests
		for ; filled+model.Eighth.Ticks() <= capacity; filled += model.Eighth.Ticks() {
			current.Events = append(current.Events, Event{Duration: model.Eighth})
		}
		if filled != capacity {
			return nil, fmt.Errorf("cannot pad final measure: %d of %d ticks filled", filled, capacity)
		}
		score.Measures = append(score.Measures, current)
	}
	return score, nil
}
