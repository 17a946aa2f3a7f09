package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qr "github.com/door66/sigil/pkg/qrcode"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	want := qr.DefaultStyle()
	assert.Equal(t, want, cfg.Style)
	assert.Equal(t, 300, cfg.Sheet.DPI)
	assert.Equal(t, 4, cfg.Sheet.Cols)
	assert.False(t, cfg.Debug)
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
settings:
  debug: true
style:
  size: 800
  foreground: "#4a148c"
  background: transparent
  overlay: circle
  rotate: false
sheet:
  cols: 3
  rows: 2
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, 800, cfg.Style.Size)
	assert.Equal(t, color.RGBA{74, 20, 140, 255}, cfg.Style.Foreground)
	assert.Equal(t, color.RGBA{}, cfg.Style.Background)
	assert.Equal(t, qr.OverlayCircle, cfg.Style.Overlay)
	assert.False(t, cfg.Style.Rotate)
	assert.Equal(t, 3, cfg.Sheet.Cols)
	assert.Equal(t, 2, cfg.Sheet.Rows)

	// Untouched keys keep their defaults.
	assert.Equal(t, qr.DefaultStyle().Margin, cfg.Style.Margin)
}

func TestLoadRejectsBadValues(t *testing.T) {
	writeConfig := func(content string) string {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		return path
	}

	_, err := Load(writeConfig("style:\n  foreground: nope\n"))
	assert.ErrorIs(t, err, qr.ErrInvalidColor)

	// Transparent is a background-only color.
	_, err = Load(writeConfig("style:\n  foreground: transparent\n"))
	assert.ErrorIs(t, err, qr.ErrInvalidColor)

	_, err = Load(writeConfig("style:\n  overlay: hexagon\n"))
	assert.ErrorIs(t, err, qr.ErrUnknownOverlay)

	_, err = Load(writeConfig("style:\n  level: ultra\n"))
	assert.ErrorIs(t, err, qr.ErrInvalidStyle)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
