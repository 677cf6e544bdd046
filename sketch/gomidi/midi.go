// Package gomidi implements the sketch.NoteSender interface with
// gitlab.com/gomidi/midi, echoing triggered cues to a MIDI output device.
package gomidi

import (
	"fmt"
	"strings"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"melodraw"
	"melodraw/sketch"
)

type RTMIDISender struct {
	driver *rtmididrv.Driver
	out    drivers.Out
	send   func(midi.Message) error
	broker *sketch.Broker
}

const channel = 0
const velocity = 100

// NewSender opens the first MIDI output device whose name starts with prefix
// (case insensitive). The caller falls back to sketch.NullNoteSender if this
// fails; a missing device is an error here, not a silent no-op, so the user
// who asked for MIDI finds out why nothing is reaching their instrument.
func NewSender(broker *sketch.Broker, prefix string) (*RTMIDISender, error) {
	driver, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("opening MIDI driver failed: %w", err)
	}
	outs, err := driver.Outs()
	if err != nil {
		driver.Close()
		return nil, fmt.Errorf("listing MIDI outputs failed: %w", err)
	}
	for _, out := range outs {
		if !strings.HasPrefix(strings.ToLower(out.String()), strings.ToLower(prefix)) {
			continue
		}
		if err := out.Open(); err != nil {
			driver.Close()
			return nil, fmt.Errorf("opening MIDI output %q failed: %w", out.String(), err)
		}
		send, err := midi.SendTo(out)
		if err != nil {
			out.Close()
			driver.Close()
			return nil, fmt.Errorf("connecting to MIDI output %q failed: %w", out.String(), err)
		}
		return &RTMIDISender{driver: driver, out: out, send: send, broker: broker}, nil
	}
	driver.Close()
	return nil, fmt.Errorf("no MIDI output device found with prefix %q", prefix)
}

func (s *RTMIDISender) NoteOn(note melodraw.Note) {
	key, ok := note.MIDI()
	if !ok {
		return
	}
	if err := s.send(midi.NoteOn(channel, key, velocity)); err != nil {
		sketch.TrySend(s.broker.ToModel, sketch.MsgToModel{Data: fmt.Errorf("MIDI note on failed: %w", err)})
	}
}

func (s *RTMIDISender) NoteOff(note melodraw.Note) {
	key, ok := note.MIDI()
	if !ok {
		return
	}
	if err := s.send(midi.NoteOff(channel, key)); err != nil {
		sketch.TrySend(s.broker.ToModel, sketch.MsgToModel{Data: fmt.Errorf("MIDI note off failed: %w", err)})
	}
}

func (s *RTMIDISender) Close() {
	if s.out != nil && s.out.IsOpen() {
		s.out.Close()
	}
	if s.driver != nil {
		s.driver.Close()
	}
}
