//go:build cgo

package cmd

import (
	"log"

	"melodraw/sketch"
	"melodraw/sketch/gomidi"
)

// NewNoteSender connects to the MIDI output device matching the name prefix,
// or returns the null sender when no device was requested or the connection
// fails.
func NewNoteSender(broker *sketch.Broker, prefix string) sketch.NoteSender {
	if prefix == "" {
		return sketch.NullNoteSender{}
	}
	sender, err := gomidi.NewSender(broker, prefix)
	if err != nil {
		log.Printf("MIDI disabled: %v", err)
		return sketch.NullNoteSender{}
	}
	return sender
}
