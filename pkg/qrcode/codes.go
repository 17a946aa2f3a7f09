package qr

import "image/color"

// Print is the house style for cut-and-mount card sheets: deep purple on
// white, keyhole emblem, square orientation (the mount itself provides
// the diagonal turn, which the pre-rotated emblem already compensates).
var Print = Style{
	Size:          600,
	Margin:        0.075,
	CornerRadius:  0.5,
	Overlay:       OverlayKeyhole,
	OverlayRatio:  0.22,
	Foreground:    color.RGBA{R: 74, G: 20, B: 140, A: 255},
	Background:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
	Rotate:        false,
	RecoveryLevel: Highest,
}

// Scan is a plain high-contrast style tuned for reliable decoding: no
// emblem, square orientation, black on white.
var Scan = Style{
	Size:          600,
	Margin:        0.075,
	CornerRadius:  0.35,
	Overlay:       OverlayNone,
	Foreground:    color.RGBA{A: 255},
	Background:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
	Rotate:        false,
	RecoveryLevel: Highest,
}
