package melodraw

// AudioCue is a single loaded sound, ready to play. Play starts playback from
// the beginning of the sample; Stop halts it. Both are safe to call from any
// goroutine and Stop is an idempotent no-op on a cue that is not playing.
type AudioCue interface {
	Play()
	Stop()
}

// AudioContext is the audio device the cues play through. NewCue wraps raw
// PCM data (16-bit LE, NumChannels channels, SampleRate Hz) into a playable
// cue. There is no mixing model in melodraw: the caller is responsible for
// stopping the previous cue before playing the next one.
type AudioContext interface {
	NewCue(pcm []byte) AudioCue
	Close() error
}
