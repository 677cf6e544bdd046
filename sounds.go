package melodraw

import (
	"bytes"
	"embed"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

// The bundled note sounds: one short pre-rendered sample per palette note,
// 16-bit little-endian stereo PCM at 44100 Hz inside a plain RIFF/WAVE
// container.

//go:embed sounds/*.wav
var sounds embed.FS

const (
	SampleRate  = 44100
	NumChannels = 2
)

// NoteWaveform resolves a note to its bundled sound asset and returns the raw
// PCM data, ready to be handed to an AudioContext. A missing or malformed
// asset is an error; callers are expected to log it and carry on silently.
func NoteWaveform(n Note) ([]byte, error) {
	name := "sounds/" + strings.ToLower(string(n)) + ".wav"
	data, err := sounds.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("no sound asset for note %q: %w", n, err)
	}
	pcm, err := wavPCM(data)
	if err != nil {
		return nil, fmt.Errorf("sound asset for note %q: %w", n, err)
	}
	return pcm, nil
}

// wavPCM extracts the data chunk from a RIFF/WAVE file, checking that the
// format chunk describes the PCM encoding the audio backend is configured
// for. Refer to: http://www-mmsp.ece.mcgill.ca/Documents/AudioFormats/WAVE/WAVE.html
func wavPCM(data []byte) ([]byte, error) {
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, errors.New("not a RIFF/WAVE file")
	}
	var fmtSeen bool
	var pcm []byte
	rest := data[12:]
	for len(rest) >= 8 {
		id := string(rest[0:4])
		size := int(binary.LittleEndian.Uint32(rest[4:8]))
		rest = rest[8:]
		if size > len(rest) {
			return nil, fmt.Errorf("%s chunk truncated", id)
		}
		switch id {
		case "fmt ":
			if size < 16 {
				return nil, errors.New("fmt chunk too short")
			}
			var h struct {
				Format         uint16
				NumChannels    uint16
				SampleRate     uint32
				AvgBytesPerSec uint32
				BlockAlign     uint16
				BitsPerSample  uint16
			}
			if err := binary.Read(bytes.NewReader(rest[:16]), binary.LittleEndian, &h); err != nil {
				return nil, err
			}
			if h.Format != 1 || h.BitsPerSample != 16 {
				return nil, fmt.Errorf("unsupported encoding (format %d, %d bits)", h.Format, h.BitsPerSample)
			}
			if h.NumChannels != NumChannels || h.SampleRate != SampleRate {
				return nil, fmt.Errorf("expected %d ch %d Hz, got %d ch %d Hz", NumChannels, SampleRate, h.NumChannels, h.SampleRate)
			}
			fmtSeen = true
		case "data":
			pcm = rest[:size]
		}
		// chunks are word aligned
		if size%2 == 1 {
			size++
		}
		if size > len(rest) {
			break
		}
		rest = rest[size:]
	}
	if !fmtSeen || pcm == nil {
		return nil, errors.New("missing fmt or data chunk")
	}
	return pcm, nil
}
