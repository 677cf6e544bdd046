package sketch

import (
	"fmt"

	"melodraw"
)

// Model implements the mutable state of the melodraw GUI: the completed
// strokes, the stroke being drawn, the active palette selection and the
// playback session. It is owned by the GUI goroutine; the canvas gesture
// handlers and the animation tick both run there, so the model needs no
// locking. The cue player runs in its own goroutine and is reached only
// through the broker.
type (
	modelData struct {
		Strokes      []melodraw.Stroke
		Active       activeStroke
		PaletteIndex int
	}

	// activeStroke is the "maybe in-progress stroke": either no stroke is
	// being drawn (Drawing false, Stroke meaningless) or exactly one is
	// (Drawing true, Stroke has at least one point).
	activeStroke struct {
		Stroke  melodraw.Stroke
		Drawing bool
	}

	// playSession is the ephemeral state of one playback: which stroke the
	// reveal cursor is on and how many ticks it has received. It is reset
	// whenever playback starts, stops or is cleared.
	playSession struct {
		playing bool
		index   int
		ticks   int
	}

	Model struct {
		d       modelData
		play    playSession
		palette melodraw.Palette
		alerts  []Alert
		broker  *Broker
	}
)

// Playback constants: a tick every 20 ms, each stroke revealing over
// ticksPerStroke ticks, so about one second per stroke.
const (
	TickInterval   = 20 // milliseconds
	ticksPerStroke = 50
)

func NewModel(broker *Broker) *Model {
	return &Model{
		broker:  broker,
		palette: melodraw.DefaultPalette,
	}
}

func (m *Model) Broker() *Broker { return m.broker }

// Palette returns the fixed list of selectable color/note pairs.
func (m *Model) Palette() melodraw.Palette { return m.palette }

// Strokes returns the completed strokes in draw order. The slice is owned by
// the model; callers on the GUI goroutine may read it but not hold on to it
// across events.
func (m *Model) Strokes() []melodraw.Stroke { return m.d.Strokes }

// ActiveStroke returns the stroke currently being drawn, if any.
func (m *Model) ActiveStroke() (melodraw.Stroke, bool) {
	return m.d.Active.Stroke, m.d.Active.Drawing
}

// StartStroke begins a new stroke at p using the active palette color and
// note. A freshly started stroke renders fully, so its progress starts at 1.
// If a stroke is somehow still in progress (a Press without a preceding
// Release can happen on pointer cancel), it is committed first.
func (m *Model) StartStroke(p melodraw.Point) {
	if m.d.Active.Drawing {
		m.EndStroke()
	}
	entry := m.palette[m.d.PaletteIndex]
	m.d.Active = activeStroke{
		Stroke: melodraw.Stroke{
			Color:    entry.Color,
			Note:     entry.Note,
			Points:   []melodraw.Point{p},
			Progress: 1,
		},
		Drawing: true,
	}
}

// AddPoint appends p to the stroke being drawn. No-op when no stroke is in
// progress.
func (m *Model) AddPoint(p melodraw.Point) {
	if !m.d.Active.Drawing {
		return
	}
	m.d.Active.Stroke.Points = append(m.d.Active.Stroke.Points, p)
}

// EndStroke commits the stroke being drawn to the completed list. No-op when
// no stroke is in progress.
func (m *Model) EndStroke() {
	if !m.d.Active.Drawing {
		return
	}
	m.d.Strokes = append(m.d.Strokes, m.d.Active.Stroke)
	m.d.Active = activeStroke{}
}

// Tick advances the playback animation by one step: the stroke under the
// reveal cursor gains 1/ticksPerStroke of progress, and on completing it
// triggers its note cue and moves the cursor to the next stroke. Ticks
// received while no playback is running have no effect.
func (m *Model) Tick() {
	if !m.play.playing {
		return
	}
	if m.play.index >= len(m.d.Strokes) {
		m.play = playSession{}
		return
	}
	stroke := &m.d.Strokes[m.play.index]
	m.play.ticks++
	stroke.Progress = float32(m.play.ticks) / ticksPerStroke
	if m.play.ticks < ticksPerStroke {
		return
	}
	stroke.Progress = 1
	TrySend(m.broker.ToPlayer, any(PlayCueMsg{Note: stroke.Note}))
	m.play.index++
	m.play.ticks = 0
	if m.play.index >= len(m.d.Strokes) {
		m.play = playSession{}
	}
}

func (m *Model) playDrawing() {
	for i := range m.d.Strokes {
		m.d.Strokes[i].Progress = 0
	}
	m.play = playSession{playing: len(m.d.Strokes) > 0}
}

// stopPlayback cancels the animation session and silences the ringing cue, if
// any. Stroke progress stays wherever the animation left it; only an explicit
// replay resets it.
func (m *Model) stopPlayback() {
	if m.play.playing {
		TrySend(m.broker.ToPlayer, any(StopCueMsg{}))
	}
	m.play = playSession{}
}

func (m *Model) clearCanvas() {
	m.stopPlayback()
	m.d.Strokes = nil
	m.d.Active = activeStroke{}
}

// ProcessMsg handles a message from the broker, on the GUI goroutine.
func (m *Model) ProcessMsg(msg MsgToModel) {
	switch data := msg.Data.(type) {
	case error:
		m.Alerts().Add(data.Error(), Error)
	case string:
		m.Alerts().Add(data, Info)
	default:
		m.Alerts().Add(fmt.Sprintf("unexpected message to model: %v", data), Warning)
	}
}
