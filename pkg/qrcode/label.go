package qr

import (
	"math"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Label arc geometry as fractions of the emblem span. The band sits
// between the peephole and the disk rim.
const (
	arcRadiusRatio = 0.42
	glyphSizeRatio = 0.16
	maxArcSpan     = 0.85 * math.Pi
)

// glyphPos is one laid-out label character: its measured advance, the
// angular share it occupies on the arc and the polar angle of its center.
type glyphPos struct {
	char  string
	width float64
	span  float64
	angle float64
}

// layoutArc distributes the uppercased label along the arc. The total
// angular span is width/radius capped at maxArcSpan, centered on the top
// of the disk; each character's share is proportional to its measured
// width, so long labels compress instead of colliding or wrapping.
func layoutArc(face font.Face, label string, radius float64) []glyphPos {
	chars := []rune(strings.ToUpper(label))
	if len(chars) == 0 {
		return nil
	}

	widths := make([]float64, len(chars))
	var total float64
	for i, c := range chars {
		widths[i] = float64(font.MeasureString(face, string(c))) / 64
		total += widths[i]
	}
	if total <= 0 {
		return nil
	}

	span := total / radius
	if span > maxArcSpan {
		span = maxArcSpan
	}

	glyphs := make([]glyphPos, len(chars))
	angle := -math.Pi/2 - span/2
	for i, c := range chars {
		share := span * widths[i] / total
		glyphs[i] = glyphPos{
			char:  string(c),
			width: widths[i],
			span:  share,
			angle: angle + share/2,
		}
		angle += share
	}
	return glyphs
}

// drawArcLabel renders the label over the top of the emblem disk, each
// glyph rotated individually so its baseline runs tangent to the arc at
// its polar position.
func (r *Renderer) drawArcLabel(dc *gg.Context, cx, cy, span float64, label string) {
	face := r.fonts.Face(span * glyphSizeRatio)
	radius := span * arcRadiusRatio

	dc.SetFontFace(face)
	dc.SetColor(r.style.Foreground)
	for _, g := range layoutArc(face, label, radius) {
		px := cx + radius*math.Cos(g.angle)
		py := cy + radius*math.Sin(g.angle)
		dc.Push()
		dc.RotateAbout(g.angle+math.Pi/2, px, py)
		dc.DrawStringAnchored(g.char, px, py, 0.5, 0.5)
		dc.Pop()
	}
}
