package model

// Instrument label vocabulary, as emitted by the hit classifier.
const (
	KickDrum    = "KD"
	SnareDrum   = "SD"
	SnareXStick = "SD_xstick"
	HiHat       = "HH"
	HiHatClosed = "HH_close"
	HiHatOpen   = "HH_open"
	RideCymbal  = "RC"
	CrashCymbal = "CC"
	HighTom     = "HT"
	MidTom      = "MT"
	FloorTom    = "FT"
	Tom         = "TT"
)

// PlaceholderLabel is assigned to onsets the classifier found no confident hit
// for, under the force-assign policy.
const PlaceholderLabel = SnareDrum

// Labels is the set of instrument tags assigned to one onset. A nil Labels in
// a matched note stream marks a rest slot.
type Labels []string

// OnsetEvent is one detected drum hit: its peak time in seconds and the
// classifier's instrument tags. An empty label set means the classifier found
// no confident hit.
type OnsetEvent struct {
	PeakTime float64
	Labels   Labels
}

// Times extracts the peak times of a sorted onset sequence.
func Times(onsets []OnsetEvent) []float64 {
	res := make([]float64, len(onsets))
	for i, o := range onsets {
		res[i] = o.PeakTime
	}
	return res
}
