package gioui

import (
	"image"
	"time"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"melodraw/sketch"
)

type (
	// Sketcher is the Gio front-end. It owns the model: the window event
	// loop, the canvas gesture handlers and the animation tick all run on the
	// goroutine inside Main, so the model is never touched concurrently.
	Sketcher struct {
		Theme        *material.Theme
		Canvas       *Canvas
		ControlPanel *ControlPanel
		PopupAlert   *AlertsState

		preferences Preferences

		*sketch.Model
	}

	C = layout.Context
	D = layout.Dimensions
)

func NewSketcher(model *sketch.Model) *Sketcher {
	s := &Sketcher{
		Theme:        material.NewTheme(),
		Canvas:       NewCanvas(model),
		ControlPanel: NewControlPanel(model),
		PopupAlert:   NewAlertsState(),
		preferences:  MakePreferences(),
		Model:        model,
	}
	s.Theme.Shaper = text.NewShaper(text.WithCollection(fontCollection))
	if s.preferences.YmlError != nil {
		model.Alerts().Add(s.preferences.YmlError.Error(), sketch.Warning)
	}
	return s
}

// Main runs the window event loop until the window is closed. The animation
// ticker exists only while a playback session is running; every model
// mutation, whether from a gesture, a key, a broker message or a tick,
// happens here.
func (s *Sketcher) Main() {
	w := new(app.Window)
	w.Option(app.Title("Melodraw"))
	w.Option(app.Size(s.preferences.WindowSize()))
	if s.preferences.Window.Maximized {
		w.Option(app.Maximized.Option())
	}

	events := make(chan event.Event)
	acks := make(chan struct{})
	go func() {
		for {
			ev := w.Event()
			events <- ev
			<-acks
			if _, ok := ev.(app.DestroyEvent); ok {
				return
			}
		}
	}()

	var ops op.Ops
	var ticker *time.Ticker
	var tickChan <-chan time.Time
	for {
		select {
		case msg := <-s.Broker().ToModel:
			s.ProcessMsg(msg)
			w.Invalidate()
		case <-tickChan:
			s.Tick()
			w.Invalidate()
		case e := <-events:
			switch e := e.(type) {
			case app.DestroyEvent:
				acks <- struct{}{}
				if ticker != nil {
					ticker.Stop()
				}
				return
			case app.FrameEvent:
				gtx := app.NewContext(&ops, e)
				s.Layout(gtx)
				e.Frame(gtx.Ops)
				acks <- struct{}{}
			default:
				acks <- struct{}{}
			}
		}
		playing := s.Playing().Value()
		if playing && ticker == nil {
			ticker = time.NewTicker(sketch.TickInterval * time.Millisecond)
			tickChan = ticker.C
		} else if !playing && ticker != nil {
			ticker.Stop()
			ticker = nil
			tickChan = nil
		}
	}
}

func (s *Sketcher) Layout(gtx C) {
	defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, backgroundColor)
	event.Op(gtx.Ops, s)

	layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Flexed(1, func(gtx C) D {
			return layout.UniformInset(unit.Dp(4)).Layout(gtx, s.Canvas.Layout)
		}),
		layout.Rigid(func(gtx C) D {
			return s.ControlPanel.Layout(gtx, s)
		}),
	)
	alerts := Alerts(s.Alerts(), s.Theme, s.PopupAlert)
	alerts.Layout(gtx)

	// top level input handler for the global key bindings
	for {
		ev, ok := gtx.Event(
			key.Filter{Name: "", Optional: key.ModAlt | key.ModCommand | key.ModShift | key.ModShortcut | key.ModSuper},
		)
		if !ok {
			break
		}
		if e, ok := ev.(key.Event); ok {
			s.KeyEvent(e)
		}
	}
}
