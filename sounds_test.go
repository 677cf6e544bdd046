package melodraw

import (
	"encoding/binary"
	"testing"
)

var allNotes = []Note{NoteC, NoteD, NoteE, NoteF, NoteG, NoteA, NoteB}

func TestNoteWaveform(t *testing.T) {
	for _, note := range allNotes {
		pcm, err := NoteWaveform(note)
		if err != nil {
			t.Fatalf("note %v: %v", note, err)
		}
		if len(pcm) == 0 {
			t.Fatalf("note %v: empty waveform", note)
		}
		// 16-bit stereo frames
		if len(pcm)%(2*NumChannels) != 0 {
			t.Errorf("note %v: waveform length %d is not a whole number of frames", note, len(pcm))
		}
	}
}

func TestNoteWaveformUnknownNote(t *testing.T) {
	if _, err := NoteWaveform(Note("H")); err == nil {
		t.Fatal("expected an error for a note with no bundled sound")
	}
}

func buildWav(t *testing.T, format, channels, bits uint16, rate uint32, pcm []byte) []byte {
	t.Helper()
	var buf []byte
	append32 := func(v uint32) { buf = binary.LittleEndian.AppendUint32(buf, v) }
	append16 := func(v uint16) { buf = binary.LittleEndian.AppendUint16(buf, v) }
	buf = append(buf, "RIFF"...)
	append32(uint32(36 + len(pcm)))
	buf = append(buf, "WAVE"...)
	buf = append(buf, "fmt "...)
	append32(16)
	append16(format)
	append16(channels)
	append32(rate)
	append32(rate * uint32(channels) * uint32(bits) / 8)
	append16(channels * bits / 8)
	append16(bits)
	buf = append(buf, "data"...)
	append32(uint32(len(pcm)))
	buf = append(buf, pcm...)
	return buf
}

func TestWavPCM(t *testing.T) {
	pcm := []byte{1, 2, 3, 4}
	got, err := wavPCM(buildWav(t, 1, NumChannels, 16, SampleRate, pcm))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(pcm) {
		t.Fatalf("expected %v, got %v", pcm, got)
	}
}

func TestWavPCMRejectsBadFiles(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"not riff", []byte("OggS this is not a wave file")},
		{"float format", buildWav(t, 3, NumChannels, 16, SampleRate, []byte{0, 0})},
		{"8 bit", buildWav(t, 1, NumChannels, 8, SampleRate, []byte{0, 0})},
		{"mono", buildWav(t, 1, 1, 16, SampleRate, []byte{0, 0})},
		{"wrong rate", buildWav(t, 1, NumChannels, 16, 22050, []byte{0, 0})},
		{"truncated", buildWav(t, 1, NumChannels, 16, SampleRate, []byte{1, 2, 3, 4})[:30]},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := wavPCM(tc.data); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestNoteMIDI(t *testing.T) {
	expected := map[Note]uint8{
		NoteC: 60, NoteD: 62, NoteE: 64, NoteF: 65, NoteG: 67, NoteA: 69, NoteB: 71,
	}
	for note, key := range expected {
		got, ok := note.MIDI()
		if !ok || got != key {
			t.Errorf("note %v: expected key %d, got %d (ok=%v)", note, key, got, ok)
		}
	}
	if _, ok := Note("X").MIDI(); ok {
		t.Error("expected no MIDI key for an unknown note")
	}
}
