package sketch

import (
	"time"

	"melodraw"
)

type (
	// CuePlayer is the sound half of melodraw, run in its own goroutine. It
	// drains the broker's ToPlayer channel: PlayCueMsg resolves the note to
	// its bundled waveform and starts it on the audio device, preempting and
	// silencing whatever cue was playing before; StopCueMsg silences the
	// current cue. Every cue owns its auto-stop timer: the cue is stopped
	// cueDuration after it started, unless a newer cue preempted it first, in
	// which case the pending stop is canceled along with the cue. Failures
	// (missing asset, bad waveform) are posted to the model as alerts and
	// playback state is otherwise undisturbed.
	CuePlayer struct {
		broker *Broker
		audio  melodraw.AudioContext
		midi   NoteSender

		cue       melodraw.AudioCue
		note      melodraw.Note
		stopTimer *time.Timer
	}

	// cueDoneMsg is posted back to the player's own channel by the auto-stop
	// timer. The cue field identifies which cue the timer belonged to, so a
	// stale timer firing after its cue was preempted is ignored.
	cueDoneMsg struct {
		cue melodraw.AudioCue
	}
)

// cueDuration is how long a triggered note rings before it is automatically
// stopped.
const cueDuration = 600 * time.Millisecond

func NewCuePlayer(broker *Broker, audio melodraw.AudioContext, midi NoteSender) *CuePlayer {
	return &CuePlayer{broker: broker, audio: audio, midi: midi}
}

// Run processes messages until the broker asks the player to close. Meant to
// be run in a goroutine of its own; FinishedPlayer is closed on the way out.
func (p *CuePlayer) Run() {
	defer close(p.broker.FinishedPlayer)
	for {
		select {
		case msg := <-p.broker.ToPlayer:
			p.ProcessMsg(msg)
		case <-p.broker.ClosePlayer:
			p.stopCue()
			p.midi.Close()
			return
		}
	}
}

// ProcessMsg handles a single cue player message. Exported so tests can drive
// the player synchronously; the application only talks to it through the
// broker.
func (p *CuePlayer) ProcessMsg(msg any) {
	switch msg := msg.(type) {
	case PlayCueMsg:
		p.playCue(msg.Note)
	case StopCueMsg:
		p.stopCue()
	case cueDoneMsg:
		if msg.cue == p.cue {
			p.stopCue()
		}
	}
}

func (p *CuePlayer) playCue(note melodraw.Note) {
	p.stopCue()
	pcm, err := melodraw.NoteWaveform(note)
	if err != nil {
		TrySend(p.broker.ToModel, MsgToModel{Data: err})
		return
	}
	cue := p.audio.NewCue(pcm)
	p.cue = cue
	p.note = note
	cue.Play()
	p.midi.NoteOn(note)
	p.stopTimer = time.AfterFunc(cueDuration, func() {
		TrySend(p.broker.ToPlayer, any(cueDoneMsg{cue: cue}))
	})
}

func (p *CuePlayer) stopCue() {
	if p.stopTimer != nil {
		p.stopTimer.Stop()
		p.stopTimer = nil
	}
	if p.cue != nil {
		p.cue.Stop()
		p.midi.NoteOff(p.note)
		p.cue = nil
	}
}
