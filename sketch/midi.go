package sketch

import "melodraw"

type (
	// NoteSender echoes the cues to an external MIDI device, so the replay
	// can drive a hardware or software instrument alongside the bundled
	// samples. Implementations live outside this package; see sketch/gomidi.
	NoteSender interface {
		NoteOn(note melodraw.Note)
		NoteOff(note melodraw.Note)
		Close()
	}

	// NullNoteSender is used when MIDI is not compiled in or no output device
	// was requested.
	NullNoteSender struct{}
)

func (NullNoteSender) NoteOn(melodraw.Note)  {}
func (NullNoteSender) NoteOff(melodraw.Note) {}
func (NullNoteSender) Close()                {}
