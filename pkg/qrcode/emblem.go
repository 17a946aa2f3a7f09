package qr

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/fogleman/gg"
)

// Overlay selects the center emblem shape.
type Overlay string

const (
	OverlayKeyhole Overlay = "keyhole"
	OverlayCircle  Overlay = "circle"
	OverlayNone    Overlay = "none"
)

// ParseOverlay resolves a user-facing overlay name.
func ParseOverlay(s string) (Overlay, error) {
	switch Overlay(strings.ToLower(strings.TrimSpace(s))) {
	case OverlayKeyhole:
		return OverlayKeyhole, nil
	case OverlayCircle:
		return OverlayCircle, nil
	case OverlayNone:
		return OverlayNone, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOverlay, s)
}

// Emblem geometry as fractions of the emblem span.
const (
	diskRadiusRatio   = 0.55
	outlineRatio      = 0.06
	outlineMinPx      = 6.0
	peepholeRatio     = 0.15
	peepholeRiseRatio = 0.15
	slotTopHalfRatio  = 0.10
	slotBotHalfRatio  = 0.22
	slotTopDrop       = 0.7  // top edge sits this many peephole radii below its center
	slotBottomRatio   = 0.35 // bottom edge below the emblem center
	emblemTileScale   = 1.25 // tile side over span, room for the outline stroke
)

// renderEmblem draws the emblem onto its own transparent square tile:
// the backdrop disk with outline, the keyhole icon for that kind, and
// the arc label. span is the emblem size in output pixels.
func (r *Renderer) renderEmblem(span float64) image.Image {
	side := int(math.Ceil(span * emblemTileScale))
	dc := gg.NewContext(side, side)
	cx := float64(side) / 2
	cy := float64(side) / 2

	dc.SetColor(r.style.Background)
	dc.DrawCircle(cx, cy, span*diskRadiusRatio)
	dc.FillPreserve()
	dc.SetColor(r.style.Foreground)
	dc.SetLineWidth(math.Max(outlineMinPx, span*outlineRatio))
	dc.Stroke()

	if r.style.Overlay == OverlayKeyhole {
		drawKeyhole(dc, cx, cy, span, r.style.Foreground)
	}

	if label := strings.TrimSpace(r.style.Label); label != "" {
		r.drawArcLabel(dc, cx, cy, span, label)
	}
	return dc.Image()
}

// drawKeyhole fills the peephole circle and the tapered slot under it.
func drawKeyhole(dc *gg.Context, cx, cy, span float64, fg color.RGBA) {
	peepholeR := span * peepholeRatio
	peepholeCY := cy - span*peepholeRiseRatio

	dc.SetColor(fg)
	dc.DrawCircle(cx, peepholeCY, peepholeR)
	dc.Fill()

	topY := peepholeCY + peepholeR*slotTopDrop
	botY := cy + span*slotBottomRatio
	topHalf := span * slotTopHalfRatio
	botHalf := span * slotBotHalfRatio

	dc.MoveTo(cx-topHalf, topY)
	dc.LineTo(cx+topHalf, topY)
	dc.LineTo(cx+botHalf, botY)
	dc.LineTo(cx-botHalf, botY)
	dc.ClosePath()
	dc.Fill()
}
