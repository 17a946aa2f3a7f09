package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/door66/sigil/pkg/logger"
	"github.com/door66/sigil/pkg/sheet"
)

type sheetOptions struct {
	root  *rootOptions
	style styleFlags

	manifest  string
	codeSpecs []string
	output    string
	baseURL   string
	dpi       int
	cols      int
	rows      int
	pageW     float64
	pageH     float64
	cellRatio float64
}

func newSheetCmd(root *rootOptions) *cobra.Command {
	opts := &sheetOptions{root: root}
	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "Lay a batch of codes onto print-ready pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSheet(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.manifest, "manifest", "m", "", "YAML manifest of codes to print")
	flags.StringArrayVar(&opts.codeSpecs, "code", nil, "code as URL|LABEL, repeatable")
	flags.StringVarP(&opts.output, "output", "o", "qr_sheet", "output path stem (pages get .png)")
	flags.StringVar(&opts.baseURL, "base-url", "", "base URL for manifest entries without one")
	flags.IntVar(&opts.dpi, "dpi", 0, "print resolution")
	flags.IntVar(&opts.cols, "cols", 0, "grid columns per page")
	flags.IntVar(&opts.rows, "rows", 0, "grid rows per page")
	flags.Float64Var(&opts.pageW, "page-width", 0, "page width in inches")
	flags.Float64Var(&opts.pageH, "page-height", 0, "page height in inches")
	flags.Float64Var(&opts.cellRatio, "cell-ratio", 0, "code side as a fraction of its grid cell")
	addStyleFlags(cmd, &opts.style)
	return cmd
}

func runSheet(cmd *cobra.Command, opts *sheetOptions) error {
	codes, err := collectCodes(opts)
	if err != nil {
		return err
	}

	style, err := opts.style.apply(cmd, opts.root.cfg.Style)
	if err != nil {
		return err
	}
	layout := applyLayoutFlags(cmd, opts, opts.root.cfg.Sheet)

	log, err := logger.Named("sheet")
	if err != nil {
		return err
	}

	a := sheet.New(layout, style, log)
	written, err := a.Assemble(cmd.Context(), codes, opts.output)
	if err != nil {
		return err
	}
	log.Infow("sheet assembled", "pages", len(written), "codes", len(codes))
	return nil
}

func collectCodes(opts *sheetOptions) ([]sheet.Code, error) {
	switch {
	case opts.manifest != "" && len(opts.codeSpecs) > 0:
		return nil, fmt.Errorf("use either --manifest or --code, not both")
	case opts.manifest != "":
		baseURL := opts.baseURL
		if baseURL == "" {
			baseURL = opts.root.cfg.BaseURL
		}
		return sheet.LoadManifest(opts.manifest, baseURL)
	case len(opts.codeSpecs) > 0:
		return parseCodeSpecs(opts.codeSpecs)
	}
	return nil, fmt.Errorf("nothing to print: pass --manifest or --code")
}

func parseCodeSpecs(specs []string) ([]sheet.Code, error) {
	codes := make([]sheet.Code, 0, len(specs))
	for _, spec := range specs {
		url, label, ok := strings.Cut(spec, "|")
		if !ok || url == "" {
			return nil, fmt.Errorf("bad code spec %q, want URL|LABEL", spec)
		}
		codes = append(codes, sheet.Code{URL: url, Label: label})
	}
	return codes, nil
}

func applyLayoutFlags(cmd *cobra.Command, opts *sheetOptions, base sheet.Layout) sheet.Layout {
	layout := base
	flags := cmd.Flags()
	if flags.Changed("dpi") {
		layout.DPI = opts.dpi
	}
	if flags.Changed("cols") {
		layout.Cols = opts.cols
	}
	if flags.Changed("rows") {
		layout.Rows = opts.rows
	}
	if flags.Changed("page-width") {
		layout.PageWidth = opts.pageW
	}
	if flags.Changed("page-height") {
		layout.PageHeight = opts.pageH
	}
	if flags.Changed("cell-ratio") {
		layout.CellRatio = opts.cellRatio
	}
	return layout
}
