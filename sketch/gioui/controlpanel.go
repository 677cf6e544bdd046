package gioui

import (
	"image"
	"strconv"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"melodraw"
	"melodraw/sketch"
	"melodraw/version"
)

// ControlPanel is the row below the canvas: one swatch button per palette
// entry, then the play/stop and clear buttons.
type ControlPanel struct {
	model *sketch.Model

	swatches    [melodraw.PaletteSize]widget.Clickable
	swatchTips  [melodraw.PaletteSize]component.TipArea
	playBtn     widget.Clickable
	playBtnTip  component.TipArea
	clearBtn    widget.Clickable
	clearBtnTip component.TipArea
}

func NewControlPanel(model *sketch.Model) *ControlPanel {
	return &ControlPanel{model: model}
}

func (p *ControlPanel) Update(gtx C) {
	for i := range p.swatches {
		for p.swatches[i].Clicked(gtx) {
			p.model.PaletteIndex().Int().Set(i)
		}
	}
	for p.playBtn.Clicked(gtx) {
		p.model.Playing().Bool().Toggle()
	}
	for p.clearBtn.Clicked(gtx) {
		p.model.ClearCanvas().Do()
	}
}

func (p *ControlPanel) Layout(gtx C, s *Sketcher) D {
	p.Update(gtx)
	paint.FillShape(gtx.Ops, panelColor, clip.Rect(image.Rect(0, 0, gtx.Constraints.Max.X, gtx.Constraints.Max.Y)).Op())

	palette := p.model.Palette()
	children := make([]layout.FlexChild, 0, melodraw.PaletteSize+4)
	for i := range palette {
		children = append(children, layout.Rigid(p.swatchWidget(s, i, palette[i])))
	}
	playIcon := icons.AVPlayArrow
	playTip := makeHint("Play drawing", " (%s)", "TogglePlay")
	if p.model.Playing().Value() {
		playIcon = icons.AVStop
		playTip = makeHint("Stop playback", " (%s)", "TogglePlay")
	}
	playBtn := IconButton(s.Theme, &p.playBtn, playIcon, p.model.Playing().Enabled())
	clearBtn := IconButton(s.Theme, &p.clearBtn, icons.ContentDeleteSweep, p.model.ClearCanvas().Enabled())
	children = append(children,
		layout.Flexed(1, func(gtx C) D { return D{Size: gtx.Constraints.Min} }),
		layout.Rigid(func(gtx C) D {
			label := material.Label(s.Theme, unit.Sp(12), version.VersionOrHash)
			label.Color = disabledTextColor
			return layout.UniformInset(unit.Dp(6)).Layout(gtx, label.Layout)
		}),
		layout.Rigid(func(gtx C) D {
			return p.playBtnTip.Layout(gtx, component.PlatformTooltip(s.Theme, playTip), playBtn.Layout)
		}),
		layout.Rigid(func(gtx C) D {
			return p.clearBtnTip.Layout(gtx, component.PlatformTooltip(s.Theme, makeHint("Clear canvas", " (%s)", "ClearCanvas")), clearBtn.Layout)
		}),
	)
	inset := layout.UniformInset(panelInset)
	return inset.Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx, children...)
	})
}

func (p *ControlPanel) swatchWidget(s *Sketcher, index int, entry melodraw.PaletteEntry) layout.Widget {
	return func(gtx C) D {
		hint := makeHint(entry.Name+" / note "+string(entry.Note), " (%s)", "SelectPalette"+strconv.Itoa(index+1))
		tip := component.PlatformTooltip(s.Theme, hint)
		return p.swatchTips[index].Layout(gtx, tip, func(gtx C) D {
			return layout.UniformInset(unit.Dp(2)).Layout(gtx, func(gtx C) D {
				return p.swatches[index].Layout(gtx, func(gtx C) D {
					size := gtx.Dp(swatchSize)
					rect := image.Rect(0, 0, size, size)
					rrect := clip.UniformRRect(rect, gtx.Dp(swatchCorner))
					paint.FillShape(gtx.Ops, entry.Color, rrect.Op(gtx.Ops))
					if p.swatches[index].Hovered() {
						paint.FillShape(gtx.Ops, swatchHoverColor, rrect.Op(gtx.Ops))
					}
					if p.model.PaletteIndex().Value() == index {
						paint.FillShape(gtx.Ops, swatchSelectedColor,
							clip.Stroke{
								Path:  rrect.Path(gtx.Ops),
								Width: float32(gtx.Dp(unit.Dp(2))),
							}.Op())
					}
					return D{Size: rect.Max}
				})
			})
		})
	}
}
