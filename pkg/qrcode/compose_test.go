package qr

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMatrix() Matrix {
	return Matrix{
		{true, false, true},
		{false, true, false},
		{true, false, true},
	}
}

func emblemTestStyle(rotate bool) Style {
	return Style{
		Size:          400,
		Margin:        0.075,
		CornerRadius:  0.35,
		Overlay:       OverlayKeyhole,
		OverlayRatio:  0.3,
		Foreground:    color.RGBA{A: 255},
		Background:    color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Rotate:        rotate,
		RecoveryLevel: Highest,
	}
}

func TestComposeCanvasSizeBothOrientations(t *testing.T) {
	for _, rotate := range []bool{false, true} {
		style := DefaultStyle()
		style.Size = 240
		style.Overlay = OverlayNone
		style.Rotate = rotate

		r, err := New(style)
		require.NoError(t, err)
		img, err := r.RenderMatrix(testMatrix())
		require.NoError(t, err)

		assert.Equal(t, 240, img.Bounds().Dx(), "rotate=%v", rotate)
		assert.Equal(t, 240, img.Bounds().Dy(), "rotate=%v", rotate)
	}
}

func TestDiamondCornersShowBackground(t *testing.T) {
	style := DefaultStyle()
	style.Size = 200
	style.Overlay = OverlayNone
	style.Rotate = true

	r, err := New(style)
	require.NoError(t, err)
	img, err := r.RenderMatrix(testMatrix())
	require.NoError(t, err)

	// The rotated module square never reaches the canvas corners.
	corner := rgbaAt(img, 2, 2)
	assert.Equal(t, style.Background, corner)
}

func TestTransparentBackgroundSurvivesCompositing(t *testing.T) {
	style := DefaultStyle()
	style.Size = 200
	style.Overlay = OverlayNone
	style.Rotate = true
	style.Background = color.RGBA{}

	r, err := New(style)
	require.NoError(t, err)
	img, err := r.RenderMatrix(testMatrix())
	require.NoError(t, err)

	_, _, _, a := img.At(2, 2).RGBA()
	assert.Zero(t, a, "corner stays transparent")

	opaque := false
	for y := 0; y < 200 && !opaque; y++ {
		for x := 0; x < 200; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a > 0xf000 {
				opaque = true
				break
			}
		}
	}
	assert.True(t, opaque, "modules render opaque")
}

func dark(c color.RGBA) bool  { return c.R < 80 && c.A > 200 }
func light(c color.RGBA) bool { return c.R > 200 && c.G > 200 && c.B > 200 }

// In diamond output the emblem pre-rotation and the whole-image turn
// cancel: the keyhole must read upright, slot pointing straight down.
func TestDiamondEmblemReadsUpright(t *testing.T) {
	r, err := New(emblemTestStyle(true))
	require.NoError(t, err)
	img, err := r.RenderMatrix(testMatrix())
	require.NoError(t, err)

	// Emblem span 120px around the canvas center (200,200).
	assert.True(t, dark(rgbaAt(img, 200, 182)), "peephole center")
	assert.True(t, dark(rgbaAt(img, 200, 238)), "slot bottom at 6 o'clock")
	assert.True(t, light(rgbaAt(img, 150, 200)), "disk clear at 9 o'clock")
}

// In square output the emblem alone is pre-rotated a quarter diagonal
// counter-clockwise, so the slot points down-right until the physical
// mount turns it back.
func TestSquareEmblemIsPreRotated(t *testing.T) {
	r, err := New(emblemTestStyle(false))
	require.NoError(t, err)
	img, err := r.RenderMatrix(testMatrix())
	require.NoError(t, err)

	assert.True(t, dark(rgbaAt(img, 227, 227)), "slot bottom swung to 4:30")
	assert.True(t, light(rgbaAt(img, 150, 200)), "disk clear at 9 o'clock")
	assert.True(t, light(rgbaAt(img, 170, 230)), "no upright slot at 7:30")
}

// The circle overlay draws the disk and outline but no icon: the emblem
// center stays background-colored.
func TestCircleOverlayHasNoIcon(t *testing.T) {
	style := emblemTestStyle(true)
	style.Overlay = OverlayCircle

	r, err := New(style)
	require.NoError(t, err)
	img, err := r.RenderMatrix(testMatrix())
	require.NoError(t, err)

	assert.True(t, light(rgbaAt(img, 200, 200)), "disk center clear")
	assert.True(t, light(rgbaAt(img, 200, 182)), "no peephole")
}
