package cli

import (
	"github.com/spf13/cobra"

	qr "github.com/door66/sigil/pkg/qrcode"
)

// styleFlags are the rendering knobs shared by the render and sheet
// commands. Flags left untouched defer to the loaded configuration.
type styleFlags struct {
	size         int
	margin       float64
	radius       float64
	overlay      string
	overlayRatio float64
	label        string
	fg           string
	bg           string
	level        string
	noRotate     bool
}

func addStyleFlags(cmd *cobra.Command, sf *styleFlags) {
	flags := cmd.Flags()
	flags.IntVar(&sf.size, "size", 0, "canvas side in pixels")
	flags.Float64Var(&sf.margin, "margin", 0, "outer margin as a fraction of the canvas")
	flags.Float64Var(&sf.radius, "radius", 0, "module corner radius as a fraction of the module box (0..0.5)")
	flags.StringVar(&sf.overlay, "overlay", "", "center emblem: keyhole, circle or none")
	flags.Float64Var(&sf.overlayRatio, "overlay-ratio", 0, "emblem span as a fraction of the canvas")
	flags.StringVar(&sf.label, "label", "", "curved text over the emblem")
	flags.StringVar(&sf.fg, "fg", "", "foreground color (hex or name)")
	flags.StringVar(&sf.bg, "bg", "", "background color (hex, name or transparent)")
	flags.StringVar(&sf.level, "level", "", "error correction: low, medium, high or highest")
	flags.BoolVar(&sf.noRotate, "no-rotate", false, "keep the square orientation instead of the diamond")
}

// apply overlays the changed flags onto the base style.
func (sf *styleFlags) apply(cmd *cobra.Command, base qr.Style) (qr.Style, error) {
	style := base
	flags := cmd.Flags()

	if flags.Changed("size") {
		style.Size = sf.size
	}
	if flags.Changed("margin") {
		style.Margin = sf.margin
	}
	if flags.Changed("radius") {
		style.CornerRadius = sf.radius
	}
	if flags.Changed("overlay-ratio") {
		style.OverlayRatio = sf.overlayRatio
	}
	if flags.Changed("label") {
		style.Label = sf.label
	}
	if flags.Changed("overlay") {
		overlay, err := qr.ParseOverlay(sf.overlay)
		if err != nil {
			return qr.Style{}, err
		}
		style.Overlay = overlay
	}
	if flags.Changed("fg") {
		fg, err := qr.ParseColor(sf.fg, false)
		if err != nil {
			return qr.Style{}, err
		}
		style.Foreground = fg
	}
	if flags.Changed("bg") {
		bg, err := qr.ParseColor(sf.bg, true)
		if err != nil {
			return qr.Style{}, err
		}
		style.Background = bg
	}
	if flags.Changed("level") {
		level, err := qr.ParseRecoveryLevel(sf.level)
		if err != nil {
			return qr.Style{}, err
		}
		style.RecoveryLevel = level
	}
	if sf.noRotate {
		style.Rotate = false
	}
	return style, nil
}
