package tempo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteDurationsAt120(t *testing.T) {
	b := BPM(120)

	assert := assert.New(t)
	assert.InDelta(0.25, b.EighthNote(), 1e-12)
	assert.InDelta(0.125, b.SixteenthNote(), 1e-12)
	assert.InDelta(0.0625, b.ThirtySecondNote(), 1e-12)
	assert.InDelta(0.375, b.DottedEighthNote(), 1e-12)
	assert.InDelta(0.1875, b.DottedSixteenthNote(), 1e-12)
	assert.InDelta(1.0/6, b.EighthNoteTriplet(), 1e-12)
	assert.InDelta(1.0/12, b.SixteenthNoteTriplet(), 1e-12)
}

func TestEighthNoteIsHalfBeat(t *testing.T) {
	for _, bpm := range []BPM{60, 93.5, 120, 178} {
		assert.InDelta(t, 60/float64(bpm)/2, bpm.EighthNote(), 1e-12)
		assert.InDelta(t, bpm.EighthNote()/4, bpm.ThirtySecondNote(), 1e-12)
	}
}

func TestFromEighthNote(t *testing.T) {
	ts := TimeSignature{4, 4}
	b := FromEighthNote(0.25, ts)
	assert.InDelta(t, 120, float64(b), 1e-9)

	// derive then re-derive round trips
	assert.InDelta(t, 0.25, b.EighthNote(), 1e-12)

	// note value scales the conversion
	b = FromEighthNote(0.25, TimeSignature{6, 8})
	assert.InDelta(t, 240, float64(b), 1e-9)
}

func TestComparesAgainstBareNumbers(t *testing.T) {
	b := BPM(96)
	assert.True(t, b < 110)
	assert.True(t, b > 60)
	assert.True(t, b == 96)
}
