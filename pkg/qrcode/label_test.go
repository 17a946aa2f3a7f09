package qr

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func arcSpanOf(glyphs []glyphPos) float64 {
	first := glyphs[0]
	last := glyphs[len(glyphs)-1]
	return (last.angle + last.span/2) - (first.angle - first.span/2)
}

func TestLayoutArcEmpty(t *testing.T) {
	assert.Nil(t, layoutArc(basicfont.Face7x13, "", 100))
}

func TestLayoutArcUppercases(t *testing.T) {
	glyphs := layoutArc(basicfont.Face7x13, "abc", 100)
	require.Len(t, glyphs, 3)
	assert.Equal(t, "A", glyphs[0].char)
	assert.Equal(t, "B", glyphs[1].char)
	assert.Equal(t, "C", glyphs[2].char)
}

// A short label spans width/radius and centers on top of the disk.
func TestLayoutArcCentersShortLabel(t *testing.T) {
	glyphs := layoutArc(basicfont.Face7x13, "AB", 100)
	require.Len(t, glyphs, 2)

	// Face7x13 is monospace: both glyphs take equal shares.
	assert.InDelta(t, glyphs[0].span, glyphs[1].span, 1e-9)
	assert.InDelta(t, 14.0/100, arcSpanOf(glyphs), 1e-9)

	// Symmetric about 12 o'clock.
	assert.InDelta(t, -math.Pi, glyphs[0].angle+glyphs[1].angle, 1e-9)
}

// A label too long for the arc compresses into the span cap instead of
// wrapping or colliding with itself.
func TestLayoutArcCapsLongLabel(t *testing.T) {
	label := strings.Repeat("W", 50)
	glyphs := layoutArc(basicfont.Face7x13, label, 20)
	require.Len(t, glyphs, 50)

	assert.InDelta(t, maxArcSpan, arcSpanOf(glyphs), 1e-9)

	first := glyphs[0]
	last := glyphs[len(glyphs)-1]
	center := ((first.angle - first.span/2) + (last.angle + last.span/2)) / 2
	assert.InDelta(t, -math.Pi/2, center, 1e-9)

	// Angles increase monotonically along the arc.
	for i := 1; i < len(glyphs); i++ {
		assert.Greater(t, glyphs[i].angle, glyphs[i-1].angle)
	}
}
