package qr

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

// RecoveryLevel selects how much error-correction redundancy the symbol
// carries. Styled renders default to Highest because the center emblem
// occludes modules and eats into the recovery headroom.
type RecoveryLevel int

const (
	Low RecoveryLevel = iota
	Medium
	High
	Highest
)

// ParseRecoveryLevel resolves a user-facing tier name.
func ParseRecoveryLevel(s string) (RecoveryLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return Low, nil
	case "medium":
		return Medium, nil
	case "high":
		return High, nil
	case "highest":
		return Highest, nil
	}
	return Highest, fmt.Errorf("%w: unknown recovery level %q", ErrInvalidStyle, s)
}

// Matrix is the abstract module grid: true marks a dark module. It knows
// nothing about pixels.
type Matrix [][]bool

// Size returns the side length in modules.
func (m Matrix) Size() int { return len(m) }

// Filled reports whether the module at (x, y) is dark. Coordinates
// outside the matrix read as empty, which is exactly what the corner
// rounding rule needs at the symbol edge.
func (m Matrix) Filled(x, y int) bool {
	if y < 0 || y >= len(m) || x < 0 || x >= len(m[y]) {
		return false
	}
	return m[y][x]
}

// Encoder turns a payload into a module matrix. Encoding is a black box
// to the renderer, so tests and callers can substitute their own.
type Encoder interface {
	Encode(payload string, level RecoveryLevel) (Matrix, error)
}

type standardEncoder struct{}

func (standardEncoder) Encode(payload string, level RecoveryLevel) (Matrix, error) {
	code, err := qrcode.New(payload, toRecovery(level))
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	// The renderer lays down its own quiet zone.
	code.DisableBorder = true
	return Matrix(code.Bitmap()), nil
}

func toRecovery(level RecoveryLevel) qrcode.RecoveryLevel {
	switch level {
	case Low:
		return qrcode.Low
	case Medium:
		return qrcode.Medium
	case High:
		return qrcode.High
	default:
		return qrcode.Highest
	}
}
