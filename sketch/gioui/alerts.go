package gioui

import (
	"image"
	"image/color"
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"melodraw/sketch"
)

type (
	// AlertsState animates the transient popup bar showing cue player
	// diagnostics at the bottom of the window.
	AlertsState struct {
		prevUpdate time.Time
	}

	AlertsWidget struct {
		Theme *material.Theme
		Model *sketch.Alerts
		State *AlertsState
	}
)

var alertMargin = layout.UniformInset(unit.Dp(6))
var alertInset = layout.UniformInset(unit.Dp(6))

func NewAlertsState() *AlertsState {
	return &AlertsState{prevUpdate: time.Now()}
}

func Alerts(m *sketch.Alerts, th *material.Theme, st *AlertsState) AlertsWidget {
	return AlertsWidget{Theme: th, Model: m, State: st}
}

func (a *AlertsWidget) Layout(gtx C) D {
	now := time.Now()
	if a.Model.Update(now.Sub(a.State.prevUpdate)) {
		gtx.Execute(op.InvalidateCmd{At: now.Add(50 * time.Millisecond)})
	}
	a.State.prevUpdate = now

	totalY := float64(gtx.Dp(38))
	for alert := range a.Model.Iterate {
		var bg, fg color.NRGBA
		switch alert.Priority {
		case sketch.Warning:
			bg, fg = alertWarningColor, black
		case sketch.Error:
			bg, fg = alertErrorColor, black
		default:
			bg, fg = alertInfoColor, white
		}
		bgWidget := func(gtx C) D {
			paint.FillShape(gtx.Ops, bg, clip.Rect{Max: gtx.Constraints.Min}.Op())
			return D{Size: gtx.Constraints.Min}
		}
		label := material.Body2(a.Theme, alert.Message)
		label.Color = fg
		alertMargin.Layout(gtx, func(gtx C) D {
			return layout.S.Layout(gtx, func(gtx C) D {
				gtx.Constraints.Min.X = gtx.Constraints.Max.X
				recording := op.Record(gtx.Ops)
				dims := layout.Stack{Alignment: layout.Center}.Layout(gtx,
					layout.Expanded(bgWidget),
					layout.Stacked(func(gtx C) D {
						return alertInset.Layout(gtx, label.Layout)
					}),
				)
				macro := recording.Stop()
				delta := float64(dims.Size.Y + gtx.Dp(alertMargin.Bottom))
				op.Offset(image.Pt(0, int(-totalY*alert.FadeLevel+delta*(1-alert.FadeLevel)))).Add(gtx.Ops)
				macro.Add(gtx.Ops)
				totalY += delta * alert.FadeLevel
				return dims
			})
		})
	}
	return D{}
}
