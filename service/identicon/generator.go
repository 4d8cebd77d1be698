package identicon

import (
	"fmt"

	"github.com/grahamannett/identicon-take-home/utils/identicon"
	"github.com/grahamannett/identicon-take-home/utils/random"
)

// Generator ラベルからidenticonグリッドを生成します
//
// パレットは生成時に一度だけ決まり、以降のGenerateでは共有されます
type Generator struct {
	c       GeneratorConfig
	palette identicon.Palette
}

// NewGenerator Generatorを生成します
//
// グリッドがラベル空間を表現できない場合はidenticon.ErrNotEnoughEntropyを返します
// srcはインデックス未指定時の色選択に使われます。nilの場合はmath/randを使います
func NewGenerator(c GeneratorConfig, src random.Source) (*Generator, error) {
	if err := identicon.CheckEntropy(identicon.GridSize); err != nil {
		return nil, err
	}

	p, err := identicon.BuildPalette(identicon.PaletteOptions{
		NumColors: c.NumColors,
		BaseIndex: c.BaseIndex,
		EndIndex:  c.EndIndex,
		Gradient:  c.Gradient,
	}, src)
	if err != nil {
		return nil, fmt.Errorf("failed to build palette: %w", err)
	}

	return &Generator{c: c, palette: p}, nil
}

// Generate labelのidenticonグリッドを生成します
// coloredがtrueの場合はidenticon.ColorGrid、falseの場合はidenticon.BinaryGridを返します
func (g *Generator) Generate(label string, colored bool) identicon.Grid {
	grid := g.Grid(label)
	if colored {
		return g.ColorGrid(grid)
	}
	return grid
}

// Hash labelの16進ダイジェスト
func (g *Generator) Hash(label string) string {
	return identicon.Hash(label)
}

// BinaryDigest ダイジェストの2進展開
func (g *Generator) BinaryDigest(digest string) (string, error) {
	return identicon.BinaryDigest(digest)
}

// Grid labelの2値グリッド
func (g *Generator) Grid(label string) identicon.BinaryGrid {
	grid, err := identicon.ExpandToGrid(identicon.Hash(label))
	if err != nil {
		// Hashは常に正しいダイジェストを返す
		panic(err)
	}
	return grid
}

// ColorGrid gridをこのGeneratorのパレットで着色します
func (g *Generator) ColorGrid(grid identicon.BinaryGrid) identicon.ColorGrid {
	return g.palette.Colorize(grid)
}

// Palette 使用しているパレット
func (g *Generator) Palette() identicon.Palette {
	return g.palette
}

// Colors ベース色とパターン色
func (g *Generator) Colors() []identicon.Color {
	return g.palette.All()
}

// NumColors 設定された色数
func (g *Generator) NumColors() int {
	return g.c.NumColors
}
