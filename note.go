package melodraw

import "image/color"

type (
	// Note identifies one of the seven natural notes a stroke can be tagged
	// with. The zero value is not a valid note.
	Note string

	// PaletteEntry pairs a drawing color with the note that sounds when a
	// stroke drawn in that color is replayed.
	PaletteEntry struct {
		Name  string
		Color color.NRGBA
		Note  Note
	}

	// Palette is the fixed ordered list of selectable color/note pairs. It is
	// never mutated by drawing; the control panel only changes which entry is
	// active.
	Palette [PaletteSize]PaletteEntry
)

const PaletteSize = 7

const (
	NoteC Note = "C"
	NoteD Note = "D"
	NoteE Note = "E"
	NoteF Note = "F"
	NoteG Note = "G"
	NoteA Note = "A"
	NoteB Note = "B"
)

// DefaultPalette maps the rainbow to the C major scale, low notes on warm
// colors.
var DefaultPalette = Palette{
	{Name: "Red", Color: color.NRGBA{R: 211, G: 47, B: 47, A: 255}, Note: NoteC},
	{Name: "Orange", Color: color.NRGBA{R: 245, G: 124, B: 0, A: 255}, Note: NoteD},
	{Name: "Yellow", Color: color.NRGBA{R: 251, G: 192, B: 45, A: 255}, Note: NoteE},
	{Name: "Green", Color: color.NRGBA{R: 56, G: 142, B: 60, A: 255}, Note: NoteF},
	{Name: "Blue", Color: color.NRGBA{R: 25, G: 118, B: 210, A: 255}, Note: NoteG},
	{Name: "Indigo", Color: color.NRGBA{R: 48, G: 63, B: 159, A: 255}, Note: NoteA},
	{Name: "Violet", Color: color.NRGBA{R: 123, G: 31, B: 162, A: 255}, Note: NoteB},
}

var midiKeys = map[Note]uint8{
	NoteC: 60,
	NoteD: 62,
	NoteE: 64,
	NoteF: 65,
	NoteG: 67,
	NoteA: 69,
	NoteB: 71,
}

// MIDI returns the MIDI key number of the note, in octave 4 (middle C = 60).
// ok is false for anything that is not one of the seven palette notes.
func (n Note) MIDI() (key uint8, ok bool) {
	key, ok = midiKeys[n]
	return
}
