package sketch

type (
	Bool struct {
		BoolData
	}

	BoolData interface {
		Value() bool
		Enabled() bool
		setValue(bool)
	}

	Playing Model
)

func (v Bool) Toggle() {
	v.Set(!v.Value())
}

func (v Bool) Set(value bool) {
	if v.Enabled() && v.Value() != value {
		v.setValue(value)
	}
}

// Model methods

func (m *Model) Playing() *Playing { return (*Playing)(m) }

// Playing methods

func (m *Playing) Bool() Bool  { return Bool{m} }
func (m *Playing) Value() bool { return m.play.playing }
func (m *Playing) setValue(val bool) {
	if val {
		(*Model)(m).playDrawing()
	} else {
		(*Model)(m).stopPlayback()
	}
}
func (m *Playing) Enabled() bool { return m.play.playing || len(m.d.Strokes) > 0 }
