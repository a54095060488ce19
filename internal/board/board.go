// Package board describes the fixed duel board: its capacity and how the two
// sides' mass is laid out over its cells.
package board

const (
	Width  = 40
	Height = 20
)

// Board is the capacity provider for a match.
type Board struct {
	width, height int
}

func New() Board { return Board{width: Width, height: Height} }

func (b Board) Capacity() int    { return b.width * b.height }
func (b Board) Dims() (w, h int) { return b.width, b.height }

// Owner tags a single cell.
type Owner uint8

const (
	Empty Owner = iota
	SideA
	SideB
)

// Apportion caps both masses against capacity. A is served first; B gets
// whatever A leaves. The three counts always sum to capacity.
func Apportion(capacity, a, b int) (aCells, bCells, empty int) {
	if capacity < 0 {
		capacity = 0
	}
	aCells = clamp(a, capacity)
	bCells = clamp(b, capacity-aCells)
	empty = capacity - aCells - bCells
	return aCells, bCells, empty
}

// Layout returns the cells in reading order: A's cells from the start, B's
// from the end, empty cells between.
func Layout(capacity, a, b int) []Owner {
	aCells, bCells, empty := Apportion(capacity, a, b)
	cells := make([]Owner, 0, aCells+bCells+empty)
	for i := 0; i < aCells; i++ {
		cells = append(cells, SideA)
	}
	for i := 0; i < empty; i++ {
		cells = append(cells, Empty)
	}
	for i := 0; i < bCells; i++ {
		cells = append(cells, SideB)
	}
	return cells
}

func clamp(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}
