package qr

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

const jpegQuality = 95

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveImage writes img to path, creating parent directories on demand.
// The format follows the extension: .png keeps the alpha channel,
// .jpg/.jpeg flattens everything onto opaque white first. An unsupported
// extension fails before anything is created on disk.
func (r *Renderer) SaveImage(img image.Image, path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png", ".jpg", ".jpeg":
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer out.Close()

	switch ext {
	case ".png":
		err = png.Encode(out, img)
	default:
		if r.style.Background.A < 0xff {
			r.log.Warnw("jpeg cannot carry transparency, flattening onto white", "path", path)
		}
		b := img.Bounds()
		flat := imaging.OverlayCenter(imaging.New(b.Dx(), b.Dy(), color.White), img, 1.0)
		err = jpeg.Encode(out, flat, &jpeg.Options{Quality: jpegQuality})
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", strings.TrimPrefix(ext, "."), err)
	}
	return nil
}
