package sheet

import (
	"fmt"
	"io"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/m-lyon/porcaro/model"
)

// smfResolution is the metric resolution of exported MIDI files. A multiple
// of the score's tick unit (24 per eighth = 48 per quarter) so every duration
// converts exactly.
const smfResolution = 480

// percussionChannel is the GM drum channel (channel 10, zero-indexed 9).
const percussionChannel = 9

// gmKey maps instrument labels to General MIDI percussion key numbers.
var gmKey = map[string]uint8{
	model.KickDrum:    36,
	model.SnareDrum:   38,
	model.SnareXStick: 37,
	model.HiHatClosed: 42,
	model.HiHatOpen:   46,
	model.HiHat:       42,
	model.RideCymbal:  51,
	model.CrashCymbal: 49,
	model.HighTom:     48,
	model.MidTom:      47,
	model.FloorTom:    43,
	model.Tom:         47,
}

const noteVelocity = 100

// WriteSMF writes the score as a single-track standard MIDI file: tempo and
// meter meta events followed by channel-10 percussion notes at metric ticks.
// Chord slots become simultaneous notes; rests advance the clock.
func (s *Score) WriteSMF(w io.Writer) error {
	sm := smf.New()
	sm.TimeFormat = smf.MetricTicks(smfResolution)

	var tr smf.Track
	tr.Add(0, smf.MetaMeter(uint8(s.TimeSignature.BeatsInMeasure), uint8(s.TimeSignature.NoteValue)))
	tr.Add(0, smf.MetaTempo(float64(s.BPM)))

	var pending uint32
	for _, m := range s.Measures {
		for _, ev := range m.Events {
			ticks := eventTicks(ev.Duration)
			if ev.IsRest() {
				pending += ticks
				continue
			}
			keys := chordKeys(ev.Labels)
			for i, k := range keys {
				delta := uint32(0)
				if i == 0 {
					delta = pending
				}
				tr.Add(delta, midi.NoteOn(percussionChannel, k, noteVelocity))
			}
			for i, k := range keys {
				delta := uint32(0)
				if i == 0 {
					delta = ticks
				}
				tr.Add(delta, midi.NoteOff(percussionChannel, k))
			}
			pending = 0
		}
	}
	tr.Close(0)
	if err := sm.Add(tr); err != nil {
		return fmt.Errorf("adding smf track: %w", err)
	}
	if _, err := sm.WriteTo(w); err != nil {
		return fmt.Errorf("writing smf: %w", err)
	}
	return nil
}

// eventTicks converts a score duration to SMF ticks.
func eventTicks(d model.Duration) uint32 {
	return uint32(d.Ticks() * smfResolution / (2 * model.TicksPerEighth))
}

// chordKeys resolves labels to GM keys, deduplicating labels that share a key
// (e.g. generic and closed hi-hat) so chords never double-strike.
func chordKeys(labels model.Labels) []uint8 {
	seen := make(map[uint8]bool)
	var keys []uint8
	for _, label := range labels {
		k, ok := gmKey[label]
		if !ok {
			k = gmKey[model.PlaceholderLabel]
		}
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	return keys
}
