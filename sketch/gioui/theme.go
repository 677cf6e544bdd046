package gioui

import (
	"image/color"

	"gioui.org/font/gofont"
	"gioui.org/text"
	"gioui.org/unit"
)

var fontCollection []text.FontFace = gofont.Collection()

var white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
var black = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
var transparent = color.NRGBA{A: 0}

var backgroundColor = color.NRGBA{R: 30, G: 30, B: 32, A: 255}
var panelColor = color.NRGBA{R: 37, G: 37, B: 38, A: 255}

var canvasColor = white
var canvasBorderColor = black

var primaryColor = color.NRGBA{R: 206, G: 147, B: 216, A: 255}
var disabledTextColor = color.NRGBA{R: 255, G: 255, B: 255, A: 97}

var swatchSelectedColor = white
var swatchHoverColor = color.NRGBA{R: 255, G: 255, B: 255, A: 40}

var alertInfoColor = color.NRGBA{R: 50, G: 50, B: 51, A: 255}
var alertWarningColor = color.NRGBA{R: 251, G: 192, B: 45, A: 255}
var alertErrorColor = color.NRGBA{R: 207, G: 102, B: 121, A: 255}

var canvasBorderWidth = float32(2)
var swatchSize = unit.Dp(36)
var swatchCorner = unit.Dp(6)
var panelInset = unit.Dp(8)
