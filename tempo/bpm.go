package tempo

import "fmt"

// BPM is a tempo in beats per minute. It's a bare float64 so it compares
// directly against numeric thresholds (bpm < 110).
type BPM float64

func (b BPM) String() string {
	return fmt.Sprintf("%v BPM", float64(b))
}

// EighthNote returns the duration of an eighth note in seconds.
func (b BPM) EighthNote() float64 {
	return 60 / float64(b) / 2
}

// EighthNoteTriplet returns the duration of an eighth note triplet in seconds.
func (b BPM) EighthNoteTriplet() float64 {
	return 60 / float64(b) / 3
}

func (b BPM) DottedEighthNote() float64 {
	return b.EighthNote() * 1.5
}

// SixteenthNote returns the duration of a sixteenth note in seconds.
func (b BPM) SixteenthNote() float64 {
	return 60 / float64(b) / 4
}

// SixteenthNoteTriplet returns the duration of a sixteenth note triplet
// (one sixlet step) in seconds.
func (b BPM) SixteenthNoteTriplet() float64 {
	return 60 / float64(b) / 6
}

func (b BPM) DottedSixteenthNote() float64 {
	return b.SixteenthNote() * 1.5
}

// ThirtySecondNote returns the duration of a thirty-second note in seconds.
func (b BPM) ThirtySecondNote() float64 {
	return 60 / float64(b) / 8
}

func (b BPM) DottedThirtySecondNote() float64 {
	return b.ThirtySecondNote() * 1.5
}

// FromEighthNote derives the tempo from an observed eighth note duration and a
// time signature.
//
// NOTE: this assumes the upstream tempo estimation takes the time signature
// into account, when in fact it may just assume 4/4. Needs testing against
// e.g. 6/8 material.
func FromEighthNote(duration float64, ts TimeSignature) BPM {
	return BPM((60 / duration) * (float64(ts.NoteValue) / 8))
}
