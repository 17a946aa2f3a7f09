package qr

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// compose assembles the final Size-by-Size canvas from the module layer
// and the optional emblem tile.
//
// Rotation convention follows imaging: positive angles turn
// counter-clockwise. The emblem is always pasted pre-rotated +45 so that
// the clockwise quarter-diagonal turn applied afterwards, either the
// diamond whole-image turn below or the physical mount of a square
// print, cancels it out and the emblem reads upright.
func (r *Renderer) compose(moduleLayer, emblem image.Image) image.Image {
	size := r.style.Size
	canvas := imaging.New(size, size, r.style.Background)
	inset := 1 - 2*r.style.Margin

	if !r.style.Rotate {
		side := uint(math.Round(float64(size) * inset))
		scaled := resize.Resize(side, side, moduleLayer, resize.Lanczos3)
		canvas = imaging.OverlayCenter(canvas, scaled, 1.0)
		if emblem != nil {
			tilted := imaging.Rotate(emblem, 45, color.Transparent)
			canvas = imaging.OverlayCenter(canvas, tilted, 1.0)
		}
		return canvas
	}

	// Diamond: compose on an inner square sized so its rotated bounding
	// box still fits inside the margin, then turn the whole thing.
	innerSide := uint(math.Round(float64(size) / math.Sqrt2 * inset))
	var inner image.Image = resize.Resize(innerSide, innerSide, moduleLayer, resize.Lanczos3)
	if emblem != nil {
		tilted := imaging.Rotate(emblem, 45, color.Transparent)
		inner = imaging.OverlayCenter(inner, tilted, 1.0)
	}
	diamond := imaging.Rotate(inner, -45, color.Transparent)
	return imaging.OverlayCenter(canvas, diamond, 1.0)
}
