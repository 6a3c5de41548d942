package model

import (
	"fmt"

	"github.com/m-lyon/porcaro/tempo"
)

// SongMetadata aggregates what the matcher needs to know about one track.
// Constructed once per transcription request, never mutated.
type SongMetadata struct {
	BPM           tempo.BPM
	TimeSignature tempo.TimeSignature
	// Duration is the track length in seconds.
	Duration   float64
	SampleRate float64
	// StartBeat is the user-declared beat of the first anchored onset,
	// 1-indexed within the measure: 1 is the first down-beat, 1.5 the second
	// eighth note in 4/4.
	StartBeat float64
}

func (m SongMetadata) Validate() error {
	if m.BPM <= 0 {
		return fmt.Errorf("bpm must be positive, got %v", m.BPM)
	}
	if err := m.TimeSignature.Validate(); err != nil {
		return err
	}
	if m.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %v", m.Duration)
	}
	if m.StartBeat < 1 {
		return fmt.Errorf("start beat must be >= 1, got %v", m.StartBeat)
	}
	return nil
}
