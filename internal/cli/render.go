package cli

import (
	"github.com/spf13/cobra"

	qr "github.com/door66/sigil/pkg/qrcode"
	"github.com/door66/sigil/pkg/logger"
)

type renderOptions struct {
	root   *rootOptions
	style  styleFlags
	output string
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{root: root}
	cmd := &cobra.Command{
		Use:   "render <payload>",
		Short: "Render one stylized QR code to an image file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "qr.png", "output image path (.png, .jpg)")
	addStyleFlags(cmd, &opts.style)
	return cmd
}

func runRender(cmd *cobra.Command, opts *renderOptions, payload string) error {
	style, err := opts.style.apply(cmd, opts.root.cfg.Style)
	if err != nil {
		return err
	}

	log, err := logger.Named("qr")
	if err != nil {
		return err
	}

	r, err := qr.New(style,
		qr.WithLogger(log),
		qr.WithFontPaths(opts.root.cfg.FontPaths...),
	)
	if err != nil {
		return err
	}
	if err := r.WriteFile(payload, opts.output); err != nil {
		return err
	}

	log.Infow("code written", "path", opts.output, "size", style.Size, "overlay", style.Overlay)
	return nil
}
