package sketch

import "melodraw"

type (
	// Broker carries the messages between the model, which lives on the GUI
	// goroutine, and the cue player goroutine. Communication is one channel
	// per recipient; the channels are buffered and senders use TrySend so
	// neither side ever blocks the other.
	//
	// For closing the cue player, ClosePlayer has a capacity of 1, so a close
	// request can always be posted without blocking; if the channel is already
	// full, someone else has already requested the closure and dropping the
	// message is fine. FinishedPlayer is never sent to, only closed, so
	// "<-FinishedPlayer" waits until the player has cleaned up.
	Broker struct {
		ToModel  chan MsgToModel
		ToPlayer chan any

		ClosePlayer    chan struct{}
		FinishedPlayer chan struct{}
	}

	// MsgToModel is a message sent to the model, processed on the GUI
	// goroutine. Data is usually an error from the cue player.
	MsgToModel struct {
		Data any
	}

	// PlayCueMsg asks the cue player to sound the note, preempting whatever
	// cue is currently playing.
	PlayCueMsg struct {
		Note melodraw.Note
	}

	// StopCueMsg asks the cue player to silence the current cue, if any.
	StopCueMsg struct{}
)

func NewBroker() *Broker {
	return &Broker{
		ToModel:        make(chan MsgToModel, 1024),
		ToPlayer:       make(chan any, 1024),
		ClosePlayer:    make(chan struct{}, 1),
		FinishedPlayer: make(chan struct{}),
	}
}

// TrySend is a helper function to send a value to a channel if it is not full.
// It is guaranteed to be non-blocking. Returns true if the value was sent,
// false otherwise.
func TrySend[T any](c chan<- T, v T) bool {
	select {
	case c <- v:
	default:
		return false
	}
	return true
}
