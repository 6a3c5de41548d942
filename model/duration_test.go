package model

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m-lyon/porcaro/tempo"
)

func TestDurationSeconds(t *testing.T) {
	assert := assert.New(t)
	assert.InDelta(0.25, Eighth.Seconds(120), 1e-12)
	assert.InDelta(0.125, Sixteenth.Seconds(120), 1e-12)
	assert.InDelta(0.1875, DottedSixteenth.Seconds(120), 1e-12)
	assert.InDelta(1.0/6, EighthTriplet.Seconds(120), 1e-12)
}

func TestDurationTupletRatios(t *testing.T) {
	actual, normal, ok := EighthTriplet.Tuplet()
	assert.True(t, ok)
	assert.Equal(t, 3, actual)
	assert.Equal(t, 2, normal)

	actual, normal, ok = SixteenthTriplet.Tuplet()
	assert.True(t, ok)
	assert.Equal(t, 6, actual)
	assert.Equal(t, 4, normal)

	_, _, ok = Sixteenth.Tuplet()
	assert.False(t, ok)
}

func TestDurationNotationFields(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("eighth", Eighth.BaseType())
	assert.Equal("16th", DottedSixteenth.BaseType())
	assert.Equal("32nd", ThirtySecond.BaseType())
	assert.Equal(1, DottedEighth.Dots())
	assert.Equal(0, EighthTriplet.Dots())
}

func TestSongMetadataValidate(t *testing.T) {
	meta := SongMetadata{
		BPM:           100,
		TimeSignature: tempo.TimeSignature{BeatsInMeasure: 4, NoteValue: 4},
		Duration:      10,
		SampleRate:    44100,
		StartBeat:     1,
	}
	assert.NoError(t, meta.Validate())

	bad := meta
	bad.BPM = 0
	assert.Error(t, bad.Validate())

	bad = meta
	bad.Duration = -1
	assert.Error(t, bad.Validate())

	bad = meta
	bad.StartBeat = 0.5
	assert.Error(t, bad.Validate())
}
