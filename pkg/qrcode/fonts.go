package qr

import (
	"os"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// System families probed when no explicit font path is configured. The
// embedded Go Regular face backs the chain either way.
var systemFamilies = []string{"DejaVuSans.ttf", "Arial.ttf", "Helvetica.ttf"}

// fontSet resolves the label typeface once per process and hands out
// per-size faces. Resolution is lazy and the result is never mutated
// afterwards, so one fontSet is safe to share between concurrent renders.
type fontSet struct {
	paths []string
	log   *zap.SugaredLogger

	once sync.Once
	font *truetype.Font
}

func newFontSet(paths []string, log *zap.SugaredLogger) *fontSet {
	return &fontSet{paths: paths, log: log}
}

// Face returns the resolved typeface at the given pixel size. It never
// fails: an unusable font degrades the label to a fixed bitmap face, not
// the render to an error.
func (f *fontSet) Face(size float64) font.Face {
	f.once.Do(f.resolve)
	if f.font == nil {
		return basicfont.Face7x13
	}
	return truetype.NewFace(f.font, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// resolve walks the candidate chain: explicit paths, then system fonts
// by family name, then the embedded fallback.
func (f *fontSet) resolve() {
	for _, path := range f.paths {
		if ft := f.parseFile(path); ft != nil {
			f.font = ft
			return
		}
	}
	for _, family := range systemFamilies {
		path, err := findfont.Find(family)
		if err != nil {
			continue
		}
		if ft := f.parseFile(path); ft != nil {
			f.font = ft
			return
		}
	}
	ft, err := truetype.Parse(goregular.TTF)
	if err != nil {
		f.log.Debugw("embedded font failed to parse", "error", err)
		return
	}
	f.font = ft
}

func (f *fontSet) parseFile(path string) *truetype.Font {
	data, err := os.ReadFile(path)
	if err != nil {
		f.log.Debugw("skipping unreadable font", "path", path, "error", err)
		return nil
	}
	ft, err := truetype.Parse(data)
	if err != nil {
		f.log.Debugw("skipping unparseable font", "path", path, "error", err)
		return nil
	}
	return ft
}
