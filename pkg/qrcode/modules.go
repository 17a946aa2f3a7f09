package qr

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// The module layer renders at a fixed box size and the compositor
// rescales it, so module shapes are independent of the output resolution.
const (
	moduleBox   = 12 // pixels per module
	quietBorder = 4  // quiet-zone width in modules
)

// neighbors holds the four orthogonal adjacency probes for one module.
type neighbors struct {
	top, right, bottom, left bool
}

func (m Matrix) neighborsAt(x, y int) neighbors {
	return neighbors{
		top:    m.Filled(x, y-1),
		right:  m.Filled(x+1, y),
		bottom: m.Filled(x, y+1),
		left:   m.Filled(x-1, y),
	}
}

// renderModules draws the module layer: a square of (n + 2*border) * box
// pixels filled with bg (alpha preserved), every dark module drawn in fg
// with its corners selectively rounded by adjacency.
func renderModules(m Matrix, box, border int, radiusRatio float64, fg, bg color.RGBA) image.Image {
	n := m.Size()
	side := (n + 2*border) * box
	dc := gg.NewContext(side, side)
	dc.SetColor(bg)
	dc.Clear()

	dc.SetColor(fg)
	radius := radiusRatio * float64(box)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if !m.Filled(x, y) {
				continue
			}
			px := float64((x + border) * box)
			py := float64((y + border) * box)
			drawModule(dc, px, py, float64(box), radius, m.neighborsAt(x, y))
		}
	}
	return dc.Image()
}

// drawModule rounds every corner first and then squares off the corners
// whose adjacency forbids rounding by patching them with radius-sized
// squares. A corner rounds only when both of its touching orthogonal
// neighbors are empty, so runs of modules fuse into smooth shapes and
// only the true outer corners curve.
func drawModule(dc *gg.Context, x, y, size, radius float64, nb neighbors) {
	if radius <= 0 {
		dc.DrawRectangle(x, y, size, size)
		dc.Fill()
		return
	}

	roundTL := !nb.top && !nb.left
	roundTR := !nb.top && !nb.right
	roundBR := !nb.bottom && !nb.right
	roundBL := !nb.bottom && !nb.left

	switch {
	case roundTL && roundTR && roundBR && roundBL:
		dc.DrawRoundedRectangle(x, y, size, size, radius)
		dc.Fill()
	case !roundTL && !roundTR && !roundBR && !roundBL:
		dc.DrawRectangle(x, y, size, size)
		dc.Fill()
	default:
		dc.DrawRoundedRectangle(x, y, size, size, radius)
		dc.Fill()
		if !roundTL {
			dc.DrawRectangle(x, y, radius, radius)
			dc.Fill()
		}
		if !roundTR {
			dc.DrawRectangle(x+size-radius, y, radius, radius)
			dc.Fill()
		}
		if !roundBR {
			dc.DrawRectangle(x+size-radius, y+size-radius, radius, radius)
			dc.Fill()
		}
		if !roundBL {
			dc.DrawRectangle(x, y+size-radius, radius, radius)
			dc.Fill()
		}
	}
}
