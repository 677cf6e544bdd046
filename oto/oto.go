// Package oto implements the melodraw audio interfaces on top of
// github.com/ebitengine/oto/v3.
package oto

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"

	"melodraw"
)

type (
	Context struct {
		context *oto.Context
		ready   chan struct{}
	}

	cue struct {
		context *Context
		pcm     []byte

		mutex  sync.Mutex
		player *oto.Player
	}
)

// NewContext opens the audio device with the sample format of the bundled
// note sounds. The device may not be ready immediately; the first cue to play
// waits for it.
func NewContext() (*Context, error) {
	options := &oto.NewContextOptions{
		SampleRate:   melodraw.SampleRate,
		ChannelCount: melodraw.NumChannels,
		Format:       oto.FormatSignedInt16LE,
	}
	context, ready, err := oto.NewContext(options)
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	return &Context{context: context, ready: ready}, nil
}

func (c *Context) NewCue(pcm []byte) melodraw.AudioCue {
	return &cue{context: c, pcm: pcm}
}

// Close suspends the audio device; oto contexts cannot be closed outright.
func (c *Context) Close() error {
	if err := c.context.Suspend(); err != nil {
		return fmt.Errorf("cannot suspend oto context: %w", err)
	}
	return nil
}

func (c *cue) Play() {
	<-c.context.ready
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.player == nil {
		c.player = c.context.context.NewPlayer(bytes.NewReader(c.pcm))
	}
	c.player.Play()
}

func (c *cue) Stop() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.player == nil {
		return
	}
	c.player.Pause()
	c.player.Close()
	c.player = nil
}
