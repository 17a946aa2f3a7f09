// Package sheet lays rendered QR codes onto print-ready page images.
package sheet

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	qr "github.com/door66/sigil/pkg/qrcode"
)

// Layout describes the printed page grid. Inches and DPI resolve to
// pixels at assembly time.
type Layout struct {
	PageWidth  float64 // inches
	PageHeight float64 // inches
	DPI        int
	Margin     float64 // inches, outer page margin
	Gap        float64 // inches, spacing between cells
	Cols       int
	Rows       int
	CellRatio  float64 // code side as a fraction of the cell side
}

// DefaultLayout is US letter at print resolution, 4x5 codes per page.
func DefaultLayout() Layout {
	return Layout{
		PageWidth:  8.5,
		PageHeight: 11,
		DPI:        300,
		Margin:     0.25,
		Gap:        0.05,
		Cols:       4,
		Rows:       5,
		CellRatio:  0.85,
	}
}

// Assembler renders batches of codes onto pages. Pages are always
// flattened onto opaque white, this is a print target.
type Assembler struct {
	layout  Layout
	style   qr.Style
	workers int
	log     *zap.SugaredLogger
}

func New(layout Layout, style qr.Style, log *zap.SugaredLogger) *Assembler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Assembler{
		layout:  layout,
		style:   style,
		workers: runtime.NumCPU(),
		log:     log,
	}
}

// Assemble renders every code and lays them row-major onto pages,
// writing stem.png, stem_page2.png, ... and returning the written
// paths. Codes render in parallel; the first failure cancels the batch.
func (a *Assembler) Assemble(ctx context.Context, codes []Code, stem string) ([]string, error) {
	if len(codes) == 0 {
		return nil, fmt.Errorf("no codes to print")
	}

	px := func(inches float64) int { return int(math.Round(inches * float64(a.layout.DPI))) }
	pageW, pageH := px(a.layout.PageWidth), px(a.layout.PageHeight)
	margin, gap := px(a.layout.Margin), px(a.layout.Gap)

	cols, rows := a.layout.Cols, a.layout.Rows
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("layout needs a positive grid, got %dx%d", cols, rows)
	}
	cellW := (pageW - 2*margin - (cols-1)*gap) / cols
	cellH := (pageH - 2*margin - (rows-1)*gap) / rows
	cell := cellW
	if cellH < cell {
		cell = cellH
	}
	if cell <= 0 {
		return nil, fmt.Errorf("layout leaves no room for codes on a %dx%d page", pageW, pageH)
	}
	side := int(float64(cell) * a.layout.CellRatio)

	rendered := make([]image.Image, len(codes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, code := range codes {
		i, code := i, code
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			style := a.style
			style.Label = code.Label
			r, err := qr.New(style, qr.WithLogger(a.log))
			if err != nil {
				return err
			}
			img, err := r.Render(code.URL)
			if err != nil {
				return fmt.Errorf("render %q: %w", code.Label, err)
			}
			rendered[i] = resize.Resize(uint(side), uint(side), img, resize.Lanczos3)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Center the grid block on the page.
	gridW := cols*cell + (cols-1)*gap
	gridH := rows*cell + (rows-1)*gap
	originX := (pageW - gridW) / 2
	originY := (pageH - gridH) / 2

	perPage := cols * rows
	pageCount := (len(codes) + perPage - 1) / perPage
	written := make([]string, 0, pageCount)
	for p := 0; p < pageCount; p++ {
		page := imaging.New(pageW, pageH, color.White)
		placed := 0
		for idx := 0; idx < perPage; idx++ {
			n := p*perPage + idx
			if n >= len(codes) {
				break
			}
			row, col := idx/cols, idx%cols
			x := originX + col*(cell+gap) + (cell-side)/2
			y := originY + row*(cell+gap) + (cell-side)/2
			page = imaging.Overlay(page, rendered[n], image.Pt(x, y), 1.0)
			placed++
		}

		path := pagePath(stem, p)
		if err := savePage(page, path); err != nil {
			return written, err
		}
		written = append(written, path)
		a.log.Infow("sheet page written", "path", path, "codes", placed)
	}
	return written, nil
}

func pagePath(stem string, page int) string {
	stem = strings.TrimSuffix(stem, ".png")
	if page == 0 {
		return stem + ".png"
	}
	return fmt.Sprintf("%s_page%d.png", stem, page+1)
}

func savePage(page image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("create sheet dir: %w", err)
		}
	}
	if err := gg.SavePNG(path, page); err != nil {
		return fmt.Errorf("write sheet page: %w", err)
	}
	return nil
}
