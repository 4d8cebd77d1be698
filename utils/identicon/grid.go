package identicon

import (
	"image/color"
)

// Grid 描画可能なセルグリッド
//
// セルの種類(2値か色か)はグリッドの型で決まります
type Grid interface {
	// Size 行数と列数
	Size() (rows, cols int)
	// ColorAt (row, col)のセルの描画色
	ColorAt(row, col int) color.Color
}

// BinaryGrid 0/1のセルからなるグリッド
type BinaryGrid [GridSize][GridSize]uint8

func (g BinaryGrid) Size() (rows, cols int) {
	return GridSize, GridSize
}

// ColorAt 1は黒、0は白
func (g BinaryGrid) ColorAt(row, col int) color.Color {
	if g[row][col] == 1 {
		return color.Black
	}
	return color.White
}

// Count 1のセルの数
func (g BinaryGrid) Count() int {
	n := 0
	for i := range g {
		for j := range g[i] {
			n += int(g[i][j])
		}
	}
	return n
}

// Cells セルを行優先で平坦化して返します
func (g BinaryGrid) Cells() []uint8 {
	cells := make([]uint8, 0, GridSize*GridSize)
	for i := range g {
		cells = append(cells, g[i][:]...)
	}
	return cells
}

// ColorGrid 色のセルからなるグリッド
type ColorGrid [GridSize][GridSize]Color

func (g ColorGrid) Size() (rows, cols int) {
	return GridSize, GridSize
}

func (g ColorGrid) ColorAt(row, col int) color.Color {
	return g[row][col]
}

// Cells セルを行優先で平坦化して返します
func (g ColorGrid) Cells() []Color {
	cells := make([]Color, 0, GridSize*GridSize)
	for i := range g {
		cells = append(cells, g[i][:]...)
	}
	return cells
}

// Colorize gの1のセルをcolors[(i+j) % len(colors)]に、0のセルをbaseにしたグリッドを返します
func Colorize(g BinaryGrid, base Color, colors []Color) ColorGrid {
	var out ColorGrid
	for i := range g {
		for j := range g[i] {
			if g[i][j] == 1 && len(colors) > 0 {
				out[i][j] = colors[(i+j)%len(colors)]
			} else {
				out[i][j] = base
			}
		}
	}
	return out
}

var (
	_ Grid = BinaryGrid{}
	_ Grid = ColorGrid{}
)
