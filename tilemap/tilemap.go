// Package tilemap holds tile grids and the atlas that maps tile codes to
// images, plus the ways to produce them: random generation and Tiled maps.
package tilemap

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrInvalidBounds is returned by Generate for negative dimensions or an
// empty code range.
var ErrInvalidBounds = errors.New("tilemap: invalid bounds")

// TileMap is a grid of tile codes indexed as m[y][x].
type TileMap [][]int

// Width returns the number of cells per row.
func (m TileMap) Width() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Height returns the number of rows.
func (m TileMap) Height() int {
	return len(m)
}

// At returns the code at (x, y) and whether the cell exists.
func (m TileMap) At(x, y int) (int, bool) {
	if y < 0 || y >= len(m) || x < 0 || x >= len(m[y]) {
		return 0, false
	}
	return m[y][x], true
}

// Atlas maps a tile code to an image path.
type Atlas map[int]string

// Path returns the image for code, or "" when the atlas has no entry.
func (a Atlas) Path(code int) string {
	return a[code]
}

// Generate returns col rows of row cells, each an independent uniform draw
// from [from, to]. A nil rng uses the package-level source.
func Generate(col, row, from, to int, rng *rand.Rand) (TileMap, error) {
	// span wraps to zero or below when [from,to] holds more than MaxInt values
	span := to - from + 1
	if col < 0 || row < 0 || from > to || span <= 0 {
		return nil, fmt.Errorf("%w: %dx%d in [%d,%d]", ErrInvalidBounds, col, row, from, to)
	}

	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}

	m := make(TileMap, col)
	for i := range m {
		r := make([]int, row)
		for j := range r {
			r[j] = intN(span) + from
		}
		m[i] = r
	}
	return m, nil
}
