//go:build !cgo

package cmd

import (
	"log"

	"melodraw/sketch"
)

// with no cgo, we cannot use MIDI, so return the null sender
func NewNoteSender(broker *sketch.Broker, prefix string) sketch.NoteSender {
	if prefix != "" {
		log.Printf("MIDI disabled: melodraw was built without cgo")
	}
	return sketch.NullNoteSender{}
}
