package sheet

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/m-lyon/porcaro/model"
)

// divisions per quarter note in the MusicXML output. Twice TicksPerEighth,
// which keeps every duration (dotted and tuplet values included) integral.
const xmlDivisions = 48

const xmlHeader = xml.Header +
	`<!DOCTYPE score-partwise PUBLIC "-//Recordare//DTD MusicXML 4.0 Partwise//EN" "http://www.musicxml.org/dtds/partwise.dtd">` + "\n"

type xmlScore struct {
	XMLName  xml.Name   `xml:"score-partwise"`
	Version  string     `xml:"version,attr"`
	Work     *xmlWork   `xml:"work,omitempty"`
	Credit   *xmlCredit `xml:"identification,omitempty"`
	PartList xmlPartList
	Part     xmlPart `xml:"part"`
}

type xmlWork struct {
	XMLName xml.Name `xml:"work"`
	Title   string   `xml:"work-title"`
}

type xmlCredit struct {
	Composer string `xml:"creator"`
}

type xmlPartList struct {
	XMLName xml.Name     `xml:"part-list"`
	Parts   []xmlScorePn `xml:"score-part"`
}

type xmlScorePn struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"part-name"`
}

type xmlPart struct {
	ID       string       `xml:"id,attr"`
	Measures []xmlMeasure `xml:"measure"`
}

type xmlMeasure struct {
	Number     int            `xml:"number,attr"`
	Attributes *xmlAttributes `xml:"attributes,omitempty"`
	Notes      []xmlNote      `xml:"note"`
}

type xmlAttributes struct {
	Divisions int      `xml:"divisions"`
	Time      *xmlTime `xml:"time,omitempty"`
	Clef      *xmlClef `xml:"clef,omitempty"`
}

type xmlTime struct {
	Beats    int `xml:"beats"`
	BeatType int `xml:"beat-type"`
}

type xmlClef struct {
	Sign string `xml:"sign"`
	Line int    `xml:"line,omitempty"`
}

type xmlEmpty struct{}

type xmlUnpitched struct {
	Step   string `xml:"display-step"`
	Octave int    `xml:"display-octave"`
}

type xmlTimeMod struct {
	Actual int `xml:"actual-notes"`
	Normal int `xml:"normal-notes"`
}

// field order follows the MusicXML note element content model
type xmlNote struct {
	Chord     *xmlEmpty     `xml:"chord,omitempty"`
	Rest      *xmlEmpty     `xml:"rest,omitempty"`
	Unpitched *xmlUnpitched `xml:"unpitched,omitempty"`
	Duration  int           `xml:"duration"`
	Type      string        `xml:"type"`
	Dots      []xmlEmpty    `xml:"dot"`
	TimeMod   *xmlTimeMod   `xml:"time-modification,omitempty"`
	Stem      string        `xml:"stem,omitempty"`
	Notehead  string        `xml:"notehead,omitempty"`
}

// WriteMusicXML serializes the score as a partwise MusicXML document. Open
// and closed hi-hat and ride use x-style noteheads, all stems point up, and
// tuplet durations carry an explicit time-modification ratio so rendered
// notation beams and brackets them correctly.
func (s *Score) WriteMusicXML(w io.Writer) error {
	doc := xmlScore{
		Version: "4.0",
		PartList: xmlPartList{
			Parts: []xmlScorePn{{ID: "P1", Name: "Drumset"}},
		},
		Part: xmlPart{ID: "P1"},
	}
	if s.Title != "" {
		doc.Work = &xmlWork{Title: s.Title}
	}
	if s.Composer != "" {
		doc.Credit = &xmlCredit{Composer: s.Composer}
	}
	for i, m := range s.Measures {
		xm := xmlMeasure{Number: i + 1}
		if i == 0 {
			xm.Attributes = &xmlAttributes{
				Divisions: xmlDivisions,
				Time: &xmlTime{
					Beats:    s.TimeSignature.BeatsInMeasure,
					BeatType: s.TimeSignature.NoteValue,
				},
				Clef: &xmlClef{Sign: "percussion", Line: 2},
			}
		}
		for _, ev := range m.Events {
			xm.Notes = append(xm.Notes, eventNotes(ev)...)
		}
		doc.Part.Measures = append(doc.Part.Measures, xm)
	}

	if _, err := io.WriteString(w, xmlHeader); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding musicxml: %w", err)
	}
	return enc.Flush()
}

// eventNotes expands one notated slot into its MusicXML note elements: one
// rest, one unpitched note, or a chord group where every note after the first
// carries the chord marker.
func eventNotes(ev Event) []xmlNote {
	base := xmlNote{
		Duration: scaleTicks(ev.Duration.Ticks()),
		Type:     ev.Duration.BaseType(),
		Dots:     make([]xmlEmpty, ev.Duration.Dots()),
	}
	if actual, normal, ok := ev.Duration.Tuplet(); ok {
		base.TimeMod = &xmlTimeMod{Actual: actual, Normal: normal}
	}
	if ev.IsRest() {
		base.Rest = &xmlEmpty{}
		return []xmlNote{base}
	}
	base.Stem = "up"
	var res []xmlNote
	for i, label := range ev.Labels {
		n := base
		if i > 0 {
			n.Chord = &xmlEmpty{}
		}
		p, ok := displayPitch[label]
		if !ok {
			p = displayPitch[model.PlaceholderLabel]
		}
		n.Unpitched = &xmlUnpitched{Step: p.Step, Octave: p.Octave}
		n.Notehead = noteheads[label]
		res = append(res, n)
	}
	return res
}

// scaleTicks converts score ticks (24 per eighth) to MusicXML divisions
// (48 per quarter). The resolutions coincide, so this is the identity; kept
// as a named conversion so the two units stay distinguishable.
func scaleTicks(ticks int) int {
	return ticks * xmlDivisions / (2 * model.TicksPerEighth)
}
