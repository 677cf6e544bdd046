package gioui

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"melodraw"
	"melodraw/sketch"
)

// Canvas renders the drawing and translates pointer drags into stroke
// operations on the model. The drawing lives in a fixed logical coordinate
// space (melodraw.CanvasWidth x CanvasHeight); the widget scales that space
// uniformly to fit its constraints and lets the scaling transform map pointer
// positions back to logical units.
type Canvas struct {
	model *sketch.Model

	dragging bool
	dragID   pointer.ID
}

func NewCanvas(model *sketch.Model) *Canvas {
	return &Canvas{model: model}
}

func (c *Canvas) update(gtx C) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: c,
			Kinds:  pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		switch e.Kind {
		case pointer.Press:
			if e.Buttons&pointer.ButtonPrimary == 0 {
				break
			}
			c.dragging = true
			c.dragID = e.PointerID
			c.model.StartStroke(melodraw.Point{X: e.Position.X, Y: e.Position.Y})
		case pointer.Drag:
			if !c.dragging || e.PointerID != c.dragID {
				break
			}
			c.model.AddPoint(melodraw.Point{X: e.Position.X, Y: e.Position.Y})
		case pointer.Release, pointer.Cancel:
			if !c.dragging || e.PointerID != c.dragID {
				break
			}
			c.dragging = false
			c.model.EndStroke()
		}
	}
}

func (c *Canvas) Layout(gtx C) D {
	size := gtx.Constraints.Max
	if size.X <= 1 || size.Y <= 1 {
		return D{}
	}
	scale := min(float32(size.X)/melodraw.CanvasWidth, float32(size.Y)/melodraw.CanvasHeight)
	offset := f32.Pt(
		(float32(size.X)-melodraw.CanvasWidth*scale)/2,
		(float32(size.Y)-melodraw.CanvasHeight*scale)/2,
	)
	// Everything below happens in logical canvas units; pointer positions
	// arrive already mapped through the inverse of this transform.
	defer op.Affine(f32.Affine2D{}.Scale(f32.Point{}, f32.Pt(scale, scale)).Offset(offset)).Push(gtx.Ops).Pop()
	defer clip.Rect(image.Rect(0, 0, melodraw.CanvasWidth, melodraw.CanvasHeight)).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, canvasColor)
	event.Op(gtx.Ops, c)
	c.update(gtx)

	strokes := c.model.Strokes()
	for i := range strokes {
		drawPolyline(gtx.Ops, strokes[i].Color, strokes[i].Visible())
	}
	if active, ok := c.model.ActiveStroke(); ok {
		drawPolyline(gtx.Ops, active.Color, active.Points)
	}

	var border clip.Path
	border.Begin(gtx.Ops)
	border.MoveTo(f32.Pt(0, 0))
	border.LineTo(f32.Pt(melodraw.CanvasWidth, 0))
	border.LineTo(f32.Pt(melodraw.CanvasWidth, melodraw.CanvasHeight))
	border.LineTo(f32.Pt(0, melodraw.CanvasHeight))
	border.Close()
	paint.FillShape(gtx.Ops, canvasBorderColor,
		clip.Stroke{
			Path:  border.End(),
			Width: canvasBorderWidth / scale,
		}.Op())

	return D{Size: size}
}

// drawPolyline strokes a line through the points. A single point draws
// nothing, matching how an unrevealed stroke stays invisible until its second
// point shows.
func drawPolyline(ops *op.Ops, col color.NRGBA, points []melodraw.Point) {
	if len(points) < 2 {
		return
	}
	var path clip.Path
	path.Begin(ops)
	path.MoveTo(f32.Pt(points[0].X, points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(f32.Pt(p.X, p.Y))
	}
	paint.FillShape(ops, col,
		clip.Stroke{
			Path:  path.End(),
			Width: melodraw.StrokeWidth,
		}.Op())
}
