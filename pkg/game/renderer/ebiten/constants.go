package ebiten

import "image/color"

// Window chrome colours; cell colours come from the renderer package
var (
	colorPanelBackground = color.RGBA{30, 30, 50, 255}
	colorPanelSearching  = color.RGBA{40, 60, 90, 255}
	colorPanelSuccess    = color.RGBA{30, 70, 40, 255}
	colorPanelFailure    = color.RGBA{80, 30, 30, 255}
)

// Status panel layout, in pixels and lines of debug text
const (
	statusLineHeight = 16
	statusLines      = 4
	statusMargin     = 6
)

const (
	gridLineWidth = 1
	inputBuffer   = 64
)
