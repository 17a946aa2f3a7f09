// Package qr renders stylized QR code images: adjacency-rounded modules,
// an optional keyhole or circle center emblem with a curved label, and a
// square or diamond output orientation.
package qr

import (
	"fmt"
	"image"
	"image/color"

	"go.uber.org/zap"
)

// Style captures every rendering knob. Colors are typed values here:
// string specs resolve through ParseColor at the configuration edge and
// never inside the engine.
//
// Ratios are trusted as given. Values outside their meaningful ranges
// distort the output rather than erroring.
type Style struct {
	Size          int     // output canvas side in pixels
	Margin        float64 // outer margin as a fraction of Size
	CornerRadius  float64 // module corner radius as a fraction of the module box, 0..0.5
	Overlay       Overlay // center emblem shape
	OverlayRatio  float64 // emblem span as a fraction of Size
	Label         string  // curved text over the emblem, drawn uppercased
	Foreground    color.RGBA
	Background    color.RGBA // may be fully transparent
	Rotate        bool       // true renders the diamond orientation
	RecoveryLevel RecoveryLevel
}

// DefaultStyle is the baseline: keyhole emblem, diamond orientation,
// black on white, maximum error correction.
func DefaultStyle() Style {
	return Style{
		Size:          600,
		Margin:        0.075,
		CornerRadius:  0.35,
		Overlay:       OverlayKeyhole,
		OverlayRatio:  0.22,
		Foreground:    color.RGBA{A: 0xff},
		Background:    color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Rotate:        true,
		RecoveryLevel: Highest,
	}
}

// Renderer renders stylized QR images for one Style. A render call is a
// pure function of the style and payload; the only shared state is the
// font cache, which is read-only once resolved, so a single Renderer is
// safe for concurrent use.
type Renderer struct {
	style     Style
	encoder   Encoder
	fonts     *fontSet
	fontPaths []string
	log       *zap.SugaredLogger
}

// Option customizes a Renderer.
type Option func(*Renderer)

// WithLogger attaches a logger. The default is a nop, so library use
// stays silent.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(r *Renderer) {
		if log != nil {
			r.log = log
		}
	}
}

// WithEncoder substitutes the payload encoder.
func WithEncoder(enc Encoder) Option {
	return func(r *Renderer) { r.encoder = enc }
}

// WithFontPaths puts explicit font files at the front of the label font
// resolution chain.
func WithFontPaths(paths ...string) Option {
	return func(r *Renderer) { r.fontPaths = append(r.fontPaths, paths...) }
}

// New validates the style and builds a Renderer. Validation runs before
// any drawing or I/O, so a bad style can never leave partial output.
func New(style Style, opts ...Option) (*Renderer, error) {
	if style.Size <= 0 {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidStyle, style.Size)
	}
	switch style.Overlay {
	case OverlayKeyhole, OverlayCircle, OverlayNone:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOverlay, style.Overlay)
	}

	r := &Renderer{
		style:   style,
		encoder: standardEncoder{},
		log:     zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.fonts = newFontSet(r.fontPaths, r.log)
	return r, nil
}

// Render encodes the payload and renders the full stylized image.
func (r *Renderer) Render(payload string) (image.Image, error) {
	m, err := r.encoder.Encode(payload, r.style.RecoveryLevel)
	if err != nil {
		return nil, err
	}
	return r.RenderMatrix(m)
}

// RenderMatrix renders an already-encoded module matrix.
func (r *Renderer) RenderMatrix(m Matrix) (image.Image, error) {
	if m.Size() == 0 {
		return nil, fmt.Errorf("empty module matrix")
	}

	layer := renderModules(m, moduleBox, quietBorder, r.style.CornerRadius, r.style.Foreground, r.style.Background)

	var emblem image.Image
	if r.style.Overlay != OverlayNone && r.style.OverlayRatio > 0 {
		emblem = r.renderEmblem(r.style.OverlayRatio * float64(r.style.Size))
	}

	r.log.Debugw("rendering",
		"modules", m.Size(),
		"size", r.style.Size,
		"overlay", r.style.Overlay,
		"rotate", r.style.Rotate,
	)
	return r.compose(layer, emblem), nil
}

// Generate renders the payload and returns the image as PNG bytes.
func (r *Renderer) Generate(payload string) ([]byte, error) {
	img, err := r.Render(payload)
	if err != nil {
		return nil, err
	}
	return encodePNG(img)
}

// WriteFile renders the payload and writes it to path.
func (r *Renderer) WriteFile(payload, path string) error {
	img, err := r.Render(payload)
	if err != nil {
		return err
	}
	return r.SaveImage(img, path)
}
