package sketch

import (
	"testing"

	"melodraw"
)

type (
	fakeAudioContext struct {
		cues []*fakeCue
	}

	fakeCue struct {
		pcm     []byte
		playing bool
		stops   int
	}

	fakeNoteSender struct {
		events []string
	}
)

func (c *fakeAudioContext) NewCue(pcm []byte) melodraw.AudioCue {
	cue := &fakeCue{pcm: pcm}
	c.cues = append(c.cues, cue)
	return cue
}

func (c *fakeAudioContext) Close() error { return nil }

func (c *fakeCue) Play() { c.playing = true }
func (c *fakeCue) Stop() {
	c.playing = false
	c.stops++
}

func (s *fakeNoteSender) NoteOn(note melodraw.Note) {
	s.events = append(s.events, "on:"+string(note))
}

func (s *fakeNoteSender) NoteOff(note melodraw.Note) {
	s.events = append(s.events, "off:"+string(note))
}

func (s *fakeNoteSender) Close() {}

func newTestPlayer() (*CuePlayer, *fakeAudioContext, *fakeNoteSender, *Broker) {
	broker := NewBroker()
	audio := &fakeAudioContext{}
	midi := &fakeNoteSender{}
	return NewCuePlayer(broker, audio, midi), audio, midi, broker
}

func TestPlayCueStartsWaveform(t *testing.T) {
	player, audio, midi, _ := newTestPlayer()
	player.ProcessMsg(PlayCueMsg{Note: melodraw.NoteC})
	if len(audio.cues) != 1 {
		t.Fatalf("expected one cue, got %d", len(audio.cues))
	}
	if !audio.cues[0].playing {
		t.Fatal("expected the cue to be playing")
	}
	if len(audio.cues[0].pcm) == 0 {
		t.Fatal("expected the cue to carry waveform data")
	}
	if len(midi.events) != 1 || midi.events[0] != "on:C" {
		t.Fatalf("expected a single note-on for C, got %v", midi.events)
	}
}

func TestNewCuePreemptsPrevious(t *testing.T) {
	player, audio, midi, _ := newTestPlayer()
	player.ProcessMsg(PlayCueMsg{Note: melodraw.NoteC})
	player.ProcessMsg(PlayCueMsg{Note: melodraw.NoteD})
	if len(audio.cues) != 2 {
		t.Fatalf("expected two cues, got %d", len(audio.cues))
	}
	if audio.cues[0].playing {
		t.Error("expected the first cue to be silenced")
	}
	if !audio.cues[1].playing {
		t.Error("expected the second cue to be playing")
	}
	expected := []string{"on:C", "off:C", "on:D"}
	if len(midi.events) != len(expected) {
		t.Fatalf("expected events %v, got %v", expected, midi.events)
	}
	for i, e := range expected {
		if midi.events[i] != e {
			t.Fatalf("expected events %v, got %v", expected, midi.events)
		}
	}
}

func TestAutoStopSilencesOwnCueOnly(t *testing.T) {
	player, audio, _, _ := newTestPlayer()
	player.ProcessMsg(PlayCueMsg{Note: melodraw.NoteC})
	first := player.cue
	player.ProcessMsg(PlayCueMsg{Note: melodraw.NoteD})

	// the first cue's timer firing late must not touch the second cue
	player.ProcessMsg(cueDoneMsg{cue: first})
	if !audio.cues[1].playing {
		t.Fatal("stale auto-stop silenced the current cue")
	}
	if audio.cues[0].stops != 1 {
		t.Fatalf("expected the preempted cue stopped exactly once, got %d", audio.cues[0].stops)
	}

	player.ProcessMsg(cueDoneMsg{cue: player.cue})
	if audio.cues[1].playing {
		t.Fatal("expected the auto-stop to silence its own cue")
	}
}

func TestStopCueMsg(t *testing.T) {
	player, audio, _, _ := newTestPlayer()
	player.ProcessMsg(StopCueMsg{})
	player.ProcessMsg(PlayCueMsg{Note: melodraw.NoteE})
	player.ProcessMsg(StopCueMsg{})
	if audio.cues[0].playing {
		t.Fatal("expected StopCueMsg to silence the cue")
	}
	player.ProcessMsg(StopCueMsg{})
	if audio.cues[0].stops != 1 {
		t.Fatalf("expected a single stop, got %d", audio.cues[0].stops)
	}
}

func TestUnknownNoteReportsError(t *testing.T) {
	player, audio, _, broker := newTestPlayer()
	player.ProcessMsg(PlayCueMsg{Note: melodraw.Note("H")})
	if len(audio.cues) != 0 {
		t.Fatal("expected no cue for an unknown note")
	}
	select {
	case msg := <-broker.ToModel:
		if _, ok := msg.Data.(error); !ok {
			t.Fatalf("expected an error message to the model, got %T", msg.Data)
		}
	default:
		t.Fatal("expected the failure to be reported to the model")
	}
}

func TestRunSilencesCueOnShutdown(t *testing.T) {
	player, audio, _, broker := newTestPlayer()
	player.ProcessMsg(PlayCueMsg{Note: melodraw.NoteG})
	go player.Run()
	broker.ClosePlayer <- struct{}{}
	// FinishedPlayer closing happens after the shutdown cleanup
	<-broker.FinishedPlayer
	if len(audio.cues) != 1 || audio.cues[0].playing {
		t.Fatal("expected the cue to be silenced on shutdown")
	}
}
