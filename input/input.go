// Package input decodes and validates the onsets document handed to the CLI
// by the onset-detector + classifier stage.
package input

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"

	"github.com/m-lyon/porcaro/model"
	"github.com/m-lyon/porcaro/tempo"
)

var validate = validator.New()

// Document is the JSON interchange format for one track's detected onsets
// plus its song metadata.
type Document struct {
	Title         string  `json:"title"`
	BPM           float64 `json:"bpm" validate:"required,gt=0"`
	TimeSignature TimeSig `json:"time_signature"`
	Duration      float64 `json:"duration" validate:"required,gt=0"`
	SampleRate    float64 `json:"sample_rate" validate:"gte=0"`
	StartBeat     float64 `json:"start_beat" validate:"gte=1"`
	Onsets        []Onset `json:"onsets" validate:"required,min=1,dive"`
}

type TimeSig struct {
	BeatsInMeasure int `json:"beats_in_measure" validate:"required,min=1"`
	NoteValue      int `json:"note_value" validate:"required,min=1"`
}

type Onset struct {
	PeakTime float64  `json:"peak_time" validate:"gte=0"`
	Labels   []string `json:"labels"`
}

// Decode reads and validates a Document. A missing start_beat defaults to 1
// (the first down-beat). Validation failures are configuration errors and
// fail immediately.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding onsets document: %w", err)
	}
	if doc.StartBeat == 0 {
		doc.StartBeat = 1
	}
	if err := validate.Struct(doc); err != nil {
		return nil, fmt.Errorf("invalid onsets document: %w", err)
	}
	return &doc, nil
}

// Metadata converts the document header into the core's typed metadata.
func (d *Document) Metadata() model.SongMetadata {
	return model.SongMetadata{
		BPM: tempo.BPM(d.BPM),
		TimeSignature: tempo.TimeSignature{
			BeatsInMeasure: d.TimeSignature.BeatsInMeasure,
			NoteValue:      d.TimeSignature.NoteValue,
		},
		Duration:   d.Duration,
		SampleRate: d.SampleRate,
		StartBeat:  d.StartBeat,
	}
}

// Events converts the onset list into core onset events, preserving order.
func (d *Document) Events() []model.OnsetEvent {
	events := make([]model.OnsetEvent, len(d.Onsets))
	for i, o := range d.Onsets {
		events[i] = model.OnsetEvent{PeakTime: o.PeakTime, Labels: model.Labels(o.Labels)}
	}
	return events
}
