package tempo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEighthNoteBeat(t *testing.T) {
	ts := TimeSignature{4, 4}

	cases := []struct {
		pos  float64
		want float64
	}{
		{1, 1},
		{1.5, 2},
		{2, 3},
		{4.5, 8},
	}
	for _, c := range cases {
		got, err := ts.EighthNoteBeat(c.pos)
		require.NoError(t, err)
		assert.InDelta(t, c.want, got, 1e-12)
	}
}

func TestEighthNoteBeatFormula(t *testing.T) {
	// (pos-1)*(8/noteValue) + 1, monotonically increasing in pos
	for _, ts := range []TimeSignature{{4, 4}, {3, 4}, {6, 8}, {2, 2}} {
		prev := 0.0
		for pos := 1.0; pos <= float64(ts.BeatsInMeasure); pos += 0.5 {
			got, err := ts.EighthNoteBeat(pos)
			require.NoError(t, err)
			want := (pos-1)*(8/float64(ts.NoteValue)) + 1
			assert.InDelta(t, want, got, 1e-12)
			assert.Greater(t, got, prev)
			prev = got
		}
	}
}

func TestEighthNoteBeatRejectsPositionBeforeMeasure(t *testing.T) {
	_, err := TimeSignature{4, 4}.EighthNoteBeat(0.5)
	assert.ErrorIs(t, err, ErrBeatOutOfRange)
}

func TestEighthNoteBeatRejectsPositionPastMeasure(t *testing.T) {
	_, err := TimeSignature{4, 4}.EighthNoteBeat(5)
	assert.ErrorIs(t, err, ErrBeatOutOfRange)
}

func TestEighthNoteBeatRejectsBadNoteValue(t *testing.T) {
	_, err := TimeSignature{4, 6}.EighthNoteBeat(1)
	assert.ErrorIs(t, err, ErrBadNoteValue)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, TimeSignature{4, 4}.Validate())
	assert.NoError(t, TimeSignature{7, 8}.Validate())
	assert.Error(t, TimeSignature{0, 4}.Validate())
	assert.ErrorIs(t, TimeSignature{4, 12}.Validate(), ErrBadNoteValue)
}
