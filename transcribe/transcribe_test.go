package transcribe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-lyon/porcaro/grid"
	"github.com/m-lyon/porcaro/model"
	"github.com/m-lyon/porcaro/tempo"
)

func meta120(duration float64) model.SongMetadata {
	return model.SongMetadata{
		BPM:           120,
		TimeSignature: tempo.TimeSignature{BeatsInMeasure: 4, NoteValue: 4},
		Duration:      duration,
		SampleRate:    22050,
		StartBeat:     1,
	}
}

func labeled(label string, times ...float64) []model.OnsetEvent {
	events := make([]model.OnsetEvent, len(times))
	for i, t := range times {
		events[i] = model.OnsetEvent{PeakTime: t, Labels: model.Labels{label}}
	}
	return events
}

func totalTicks(durations []model.Duration) int {
	n := 0
	for _, d := range durations {
		n += d.Ticks()
	}
	return n
}

func TestRunStraightEighthPulse(t *testing.T) {
	// eight kick hits on consecutive eighth notes fill one 4/4 measure
	onsets := labeled(model.KickDrum, 0, 0.25, 0.5, 0.75, 1.0, 1.25, 1.5, 1.75)
	res, err := Run(onsets, meta120(2.0), DefaultOptions())
	require.NoError(t, err)

	assert := assert.New(t)
	assert.Equal(0, res.Anchor)
	require.Len(t, res.Durations, 8)
	for i, d := range res.Durations {
		assert.Equal(model.Eighth, d)
		assert.Equal(model.Labels{model.KickDrum}, res.Notes[i])
	}
	assert.Empty(res.Warnings)
}

func TestRunDurationsTileTheGrid(t *testing.T) {
	onsets := labeled(model.SnareDrum, 0, 0.375, 0.5, 1.0, 1.125, 1.1875, 1.5)
	res, err := Run(onsets, meta120(2.0), DefaultOptions())
	require.NoError(t, err)
	// one interval's worth of ticks per grid point, rests included
	assert.Equal(t, len(res.Synced)*model.TicksPerEighth, totalTicks(res.Durations))
	assert.Len(t, res.Notes, len(res.Durations))
}

func TestRunOffbeatSixteenth(t *testing.T) {
	onsets := []model.OnsetEvent{
		{PeakTime: 0, Labels: model.Labels{model.KickDrum}},
		{PeakTime: 0.375, Labels: model.Labels{model.SnareDrum}},
	}
	res, err := Run(onsets, meta120(1.0), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []model.Duration{
		model.Eighth,
		model.Sixteenth, model.Sixteenth,
		model.Eighth, model.Eighth,
	}, res.Durations)
	assert.Equal(t, model.Labels{model.KickDrum}, res.Notes[0])
	assert.Nil(t, res.Notes[1])
	assert.Equal(t, model.Labels{model.SnareDrum}, res.Notes[2])
	assert.Nil(t, res.Notes[3])
	assert.Nil(t, res.Notes[4])
}

func TestRunTripletBeatsStraight(t *testing.T) {
	// three hits evenly dividing a quarter note
	onsets := labeled(model.RideCymbal, 0, 1.0/6, 1.0/3)
	res, err := Run(onsets, meta120(0.5), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []model.Duration{
		model.EighthTriplet, model.EighthTriplet, model.EighthTriplet,
	}, res.Durations)
	for _, n := range res.Notes {
		assert.Equal(t, model.Labels{model.RideCymbal}, n)
	}
}

func TestRunPlaceholderPolicy(t *testing.T) {
	onsets := []model.OnsetEvent{
		{PeakTime: 0, Labels: model.Labels{model.KickDrum}},
		{PeakTime: 0.25},
	}
	res, err := Run(onsets, meta120(0.5), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.Notes, 2)
	assert.Equal(t, model.Labels{model.PlaceholderLabel}, res.Notes[1])
}

func TestRunDropUnlabeledPolicy(t *testing.T) {
	onsets := []model.OnsetEvent{
		{PeakTime: 0, Labels: model.Labels{model.KickDrum}},
		{PeakTime: 0.25},
	}
	opts := DefaultOptions()
	opts.Policy = DropUnlabeled
	res, err := Run(onsets, meta120(0.5), opts)
	require.NoError(t, err)

	// the unlabeled hit is gone, its interval becomes a rest
	assert.Equal(t, []model.Duration{model.Eighth, model.Eighth}, res.Durations)
	assert.Equal(t, model.Labels{model.KickDrum}, res.Notes[0])
	assert.Nil(t, res.Notes[1])
}

func TestRunDropUnlabeledWithNothingLeft(t *testing.T) {
	opts := DefaultOptions()
	opts.Policy = DropUnlabeled
	_, err := Run([]model.OnsetEvent{{PeakTime: 0.1}}, meta120(1.0), opts)
	assert.Error(t, err)
}

func TestRunWarnsOnDenseCluster(t *testing.T) {
	onsets := labeled(model.SnareDrum, 0, 0.05, 0.06, 0.10, 0.125, 0.25)
	opts := DefaultOptions()
	opts.Anchor = 0
	res, err := Run(onsets, meta120(0.5), opts)
	require.NoError(t, err)

	require.Len(t, res.Warnings, 1)
	assert.Equal(t, 0, res.Warnings[0].Interval)
	assert.Equal(t, 1, res.Warnings[0].Dropped)
	assert.Contains(t, res.Warnings[0].String(), "dropped 1")
}

func TestRunRejectsUnsortedOnsets(t *testing.T) {
	onsets := labeled(model.KickDrum, 0.5, 0.25)
	_, err := Run(onsets, meta120(1.0), DefaultOptions())
	assert.ErrorIs(t, err, ErrUnsortedOnsets)
}

func TestRunRejectsAnchorOutOfRange(t *testing.T) {
	opts := DefaultOptions()
	opts.Anchor = 5
	_, err := Run(labeled(model.KickDrum, 0, 0.25), meta120(1.0), opts)
	assert.Error(t, err)
}

func TestRunPropagatesInfeasibleStartBeat(t *testing.T) {
	meta := meta120(1.0)
	meta.StartBeat = 2
	opts := DefaultOptions()
	opts.Anchor = 0
	_, err := Run(labeled(model.KickDrum, 0.1, 0.35), meta, opts)
	assert.ErrorIs(t, err, grid.ErrNegativeMeasureStart)
}

func TestRunRejectsInvalidMetadata(t *testing.T) {
	meta := meta120(1.0)
	meta.BPM = 0
	_, err := Run(labeled(model.KickDrum, 0), meta, DefaultOptions())
	assert.Error(t, err)
}
