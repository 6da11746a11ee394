// SPDX-License-Identifier: MIT

package colorsom

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/kohonen/som"
	"github.com/katalvlaran/kohonen/vector"
)

// CellJSON is the exported form of one cell.
type CellJSON struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Color string `json:"color"`
}

// MapJSON is the exported form of a colour map, cells in traversal order.
type MapJSON struct {
	Cells []CellJSON `json:"cells"`
}

// NewMapJSON reads every cell of m. Weights must be 3-dimensional.
func NewMapJSON(m *som.Map) (MapJSON, error) {
	if m.Dim() != Dimension {
		return MapJSON{}, fmt.Errorf("colorsom.NewMapJSON: dim %d: %w", m.Dim(), ErrNotColorMap)
	}
	out := MapJSON{Cells: make([]CellJSON, 0, m.Len())}
	m.ForEachCell(func(c *som.Cell) {
		p := c.Position()
		out.Cells = append(out.Cells, CellJSON{X: p.X, Y: p.Y, Color: HexColor(c.Weight())})
	})

	return out, nil
}

// ToJSON encodes mj.
func (mj MapJSON) ToJSON() ([]byte, error) {
	return json.Marshal(mj)
}

// channel maps a [0,1] component to 0..255, rounding and clamping, so
// ParseHexColor and HexColor round-trip exactly.
func channel(x float64) uint8 {
	switch {
	case math.IsNaN(x) || x <= 0:
		return 0
	case x >= 1:
		return 255
	default:
		return uint8(math.Round(x * 255))
	}
}

// rgb reads the first three components of v as channels.
func rgb(v *vector.Vector) (r, g, b uint8) {
	var ch [3]uint8
	v.ForEach(func(i int, x float64) {
		if i < len(ch) {
			ch[i] = channel(x)
		}
	})

	return ch[0], ch[1], ch[2]
}

// HexColor formats the first three components of v as "#RRGGBB".
func HexColor(v *vector.Vector) string {
	r, g, b := rgb(v)

	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// ParseHexColor parses "#RRGGBB" (case-insensitive, '#' optional) into a
// 3-dimensional vector with components in [0,1].
func ParseHexColor(s string) (*vector.Vector, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return nil, fmt.Errorf("colorsom.ParseHexColor(%q): %w", s, ErrBadColor)
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("colorsom.ParseHexColor(%q): %w", s, ErrBadColor)
	}

	return vector.New(
		float64(n>>16&0xFF)/255,
		float64(n>>8&0xFF)/255,
		float64(n&0xFF)/255,
	)
}

// Image renders m with one pixel per cell at the cell's position. Cells
// outside width×height are skipped.
func Image(m *som.Map, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("colorsom.Image(%d,%d): %w", width, height, ErrInvalidSize)
	}
	if m.Dim() != Dimension {
		return nil, fmt.Errorf("colorsom.Image: dim %d: %w", m.Dim(), ErrNotColorMap)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	m.ForEachCell(func(c *som.Cell) {
		p := c.Position()
		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			return
		}
		r, g, b := rgb(c.Weight())
		img.SetRGBA(p.X, p.Y, color.RGBA{R: r, G: g, B: b, A: 0xFF})
	})

	return img, nil
}
