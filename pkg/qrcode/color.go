package qr

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor resolves a user-facing color spec into an RGBA value. It
// accepts #rgb, #rgba, #rrggbb and #rrggbbaa hex forms, CSS/SVG color
// names, and the literal "transparent". Transparent is only legal where
// the caller permits it (background positions); everywhere else it is
// rejected like any other unknown spec.
//
// Resolution happens at the configuration edge. The renderer itself only
// ever sees typed color values, so an invalid spec fails before any
// drawing begins.
func ParseColor(s string, allowTransparent bool) (color.RGBA, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	switch {
	case spec == "":
		return color.RGBA{}, fmt.Errorf("%w: empty spec", ErrInvalidColor)
	case spec == "transparent":
		if !allowTransparent {
			return color.RGBA{}, fmt.Errorf("%w: %q is not allowed here", ErrInvalidColor, s)
		}
		return color.RGBA{}, nil
	case strings.HasPrefix(spec, "#"):
		return parseHex(spec)
	}
	if c, ok := colornames.Map[spec]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

func parseHex(spec string) (color.RGBA, error) {
	digits := spec[1:]
	switch len(digits) {
	case 3, 4:
		// Shorthand forms double every digit: #fa0 -> #ffaa00.
		var b strings.Builder
		for _, r := range digits {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		digits = b.String()
	case 6, 8:
	default:
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, spec)
	}

	channel := func(i int) (uint8, error) {
		v, err := strconv.ParseUint(digits[i:i+2], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidColor, spec)
		}
		return uint8(v), nil
	}

	c := color.RGBA{A: 0xff}
	var err error
	if c.R, err = channel(0); err != nil {
		return color.RGBA{}, err
	}
	if c.G, err = channel(2); err != nil {
		return color.RGBA{}, err
	}
	if c.B, err = channel(4); err != nil {
		return color.RGBA{}, err
	}
	if len(digits) == 8 {
		if c.A, err = channel(6); err != nil {
			return color.RGBA{}, err
		}
	}
	return c, nil
}
