package model

import "github.com/m-lyon/porcaro/tempo"

// TicksPerEighth is the metric resolution used throughout: 24 ticks per eighth
// note (48 per quarter). Every duration in the subdivision tables has an exact
// integer tick length at this resolution, so measure bookkeeping never
// accumulates float error.
const TicksPerEighth = 24

// Duration is a notated note length.
type Duration int

const (
	Eighth Duration = iota
	Sixteenth
	ThirtySecond
	DottedEighth
	DottedSixteenth
	DottedThirtySecond
	EighthTriplet
	SixteenthTriplet
)

// Ticks returns the metric length at TicksPerEighth resolution.
func (d Duration) Ticks() int {
	switch d {
	case Eighth:
		return 24
	case Sixteenth:
		return 12
	case ThirtySecond:
		return 6
	case DottedEighth:
		return 36
	case DottedSixteenth:
		return 18
	case DottedThirtySecond:
		return 9
	case EighthTriplet:
		return 16
	case SixteenthTriplet:
		return 8
	}
	panic("unknown duration")
}

// Quarters returns the length in quarter notes.
func (d Duration) Quarters() float64 {
	return float64(d.Ticks()) / (2 * TicksPerEighth)
}

// Seconds returns the length in seconds at the given tempo.
func (d Duration) Seconds(bpm tempo.BPM) float64 {
	return float64(d.Ticks()) / TicksPerEighth * bpm.EighthNote()
}

// Tuplet returns the tuplet ratio (actual-in-the-time-of-normal) for tuplet
// durations: 3:2 for triplets, 6:4 for sixlets.
func (d Duration) Tuplet() (actual, normal int, ok bool) {
	switch d {
	case EighthTriplet:
		return 3, 2, true
	case SixteenthTriplet:
		return 6, 4, true
	}
	return 0, 0, false
}

// BaseType returns the notated base note type name. Tuplet durations report
// the base value the tuplet ratio applies to.
func (d Duration) BaseType() string {
	switch d {
	case Eighth, DottedEighth, EighthTriplet:
		return "eighth"
	case Sixteenth, DottedSixteenth, SixteenthTriplet:
		return "16th"
	case ThirtySecond, DottedThirtySecond:
		return "32nd"
	}
	panic("unknown duration")
}

// Dots returns the number of augmentation dots.
func (d Duration) Dots() int {
	switch d {
	case DottedEighth, DottedSixteenth, DottedThirtySecond:
		return 1
	}
	return 0
}

func (d Duration) String() string {
	switch d {
	case Eighth:
		return "eighth"
	case Sixteenth:
		return "sixteenth"
	case ThirtySecond:
		return "thirty-second"
	case DottedEighth:
		return "dotted eighth"
	case DottedSixteenth:
		return "dotted sixteenth"
	case DottedThirtySecond:
		return "dotted thirty-second"
	case EighthTriplet:
		return "eighth triplet"
	case SixteenthTriplet:
		return "sixteenth triplet"
	}
	return "unknown"
}
