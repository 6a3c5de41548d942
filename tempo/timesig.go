package tempo

import (
	"errors"
	"fmt"
)

var (
	ErrBadNoteValue   = errors.New("note value must be a power of two")
	ErrBeatOutOfRange = errors.New("beat position outside the measure")
)

// TimeSignature is a (beats-in-measure, note-value) pair, e.g. 4/4.
type TimeSignature struct {
	BeatsInMeasure int
	NoteValue      int
}

func (ts TimeSignature) String() string {
	return fmt.Sprintf("%d/%d", ts.BeatsInMeasure, ts.NoteValue)
}

func (ts TimeSignature) Validate() error {
	if ts.BeatsInMeasure < 1 {
		return fmt.Errorf("time signature %v: beats in measure must be positive", ts)
	}
	if ts.NoteValue < 1 || ts.NoteValue&(ts.NoteValue-1) != 0 {
		return fmt.Errorf("time signature %v: %w", ts, ErrBadNoteValue)
	}
	return nil
}

// EighthNoteBeat converts a 1-indexed beat position within the measure
// (fractional for sub-beats) into an eighth-note-unit position, also
// 1-indexed. For 4/4, beat 1.5 is the second eighth note (position 2).
func (ts TimeSignature) EighthNoteBeat(pos float64) (float64, error) {
	if err := ts.Validate(); err != nil {
		return 0, err
	}
	if pos < 1 {
		return 0, fmt.Errorf("%w: position %v is before the start of the measure", ErrBeatOutOfRange, pos)
	}
	eighthsPerBeat := 8 / float64(ts.NoteValue)
	eighthPos := (pos-1)*eighthsPerBeat + 1
	totalEighths := float64(ts.BeatsInMeasure) * eighthsPerBeat
	if eighthPos > totalEighths {
		return 0, fmt.Errorf("%w: %v > %v", ErrBeatOutOfRange, eighthPos, totalEighths)
	}
	return eighthPos, nil
}
