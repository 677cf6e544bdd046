package sketch

type (
	// Action describes a user action that can be performed on the model,
	// initiated by calling the Do() method, usually from a button press or a
	// key binding. Action advertises whether it is enabled, so the UI can
	// gray out buttons when the underlying action is not allowed. The
	// underlying Doer can optionally implement the Enabler interface to
	// decide if the action is enabled; if it does not, the action is always
	// allowed.
	Action struct {
		doer Doer
	}

	Doer interface {
		Do()
	}

	Enabler interface {
		Enabled() bool
	}
)

func MakeAction(doer Doer) Action {
	return Action{doer: doer}
}

func (a Action) Do() {
	e, ok := a.doer.(Enabler)
	if ok && !e.Enabled() {
		return
	}
	if a.doer != nil {
		a.doer.Do()
	}
}

func (a Action) Enabled() bool {
	if a.doer == nil {
		return false
	}
	e, ok := a.doer.(Enabler)
	if !ok {
		return true
	}
	return e.Enabled()
}

// playDrawing
type playDrawing Model

func (m *Model) PlayDrawing() Action { return MakeAction((*playDrawing)(m)) }
func (m *playDrawing) Enabled() bool { return len(m.d.Strokes) > 0 }
func (m *playDrawing) Do()           { (*Model)(m).playDrawing() }

// stopPlayback
type stopPlayback Model

func (m *Model) StopPlayback() Action { return MakeAction((*stopPlayback)(m)) }
func (m *stopPlayback) Do()           { (*Model)(m).stopPlayback() }

// clearCanvas
type clearCanvas Model

func (m *Model) ClearCanvas() Action { return MakeAction((*clearCanvas)(m)) }
func (m *clearCanvas) Enabled() bool { return len(m.d.Strokes) > 0 || m.d.Active.Drawing }
func (m *clearCanvas) Do()           { (*Model)(m).clearCanvas() }
