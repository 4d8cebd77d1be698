package identicon

import (
	"fmt"
	"image/color"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"

	"github.com/grahamannett/identicon-take-home/utils/optional"
	"github.com/grahamannett/identicon-take-home/utils/random"
)

// MinColors パレット生成に必要な最小色数
const MinColors = 2

// Color 8bit RGB色
type Color struct {
	R, G, B uint8
}

// RGBA color.Colorの実装。常に不透明です
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex "#rrggbb"形式の文字列を返します
func (c Color) Hex() string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

func (c Color) String() string {
	return c.Hex()
}

var _ color.Color = Color{}

var (
	Black   = Color{0, 0, 0}
	White   = Color{255, 255, 255}
	Red     = Color{255, 0, 0}
	Green   = Color{0, 255, 0}
	Blue    = Color{0, 0, 255}
	Yellow  = Color{255, 255, 0}
	Magenta = Color{255, 0, 255}
	Cyan    = Color{0, 255, 255}
)

// baseColors ベース色プール。初期化後は変更しない
var baseColors = [...]Color{Black, White, Red, Green, Blue, Yellow, Magenta, Cyan}

// BasePool ベース色プールのコピーを返します
func BasePool() []Color {
	return slices.Clone(baseColors[:])
}

// PaletteOptions パレット生成オプション
type PaletteOptions struct {
	// NumColors 色数 (>= MinColors)
	NumColors int
	// BaseIndex ベース色のプール内インデックス。負の値は末尾から数えます
	// 指定しない場合はプール全体から一様に選ばれます
	BaseIndex optional.Of[int]
	// EndIndex グラデーション終端色の、ベース色を除いたプール内インデックス
	// Gradientがfalseの場合は無視されます
	EndIndex optional.Of[int]
	// Gradient ベース色から終端色へのグラデーションを使うかどうか
	Gradient bool
}

// Palette ベース色とパターン色
type Palette struct {
	// Base 背景(0のセル)の色
	Base Color
	// Colors 1のセルに使う色
	Colors []Color
	// End グラデーション終端色。Gradientがfalseの場合はゼロ値
	End Color
	// Gradient グラデーションパレットかどうか
	Gradient bool
}

// All ベース色とパターン色を連結して返します
func (p Palette) All() []Color {
	return append([]Color{p.Base}, p.Colors...)
}

// Contains cがベース色またはパターン色かどうか
func (p Palette) Contains(c Color) bool {
	return c == p.Base || lo.Contains(p.Colors, c)
}

// Colorize gをこのパレットで着色します
func (p Palette) Colorize(g BinaryGrid) ColorGrid {
	return Colorize(g, p.Base, p.Colors)
}

// BuildPalette パレットを生成します
//
// srcはインデックス未指定時の選択に使われます。nilの場合はmath/randを使います
func BuildPalette(opts PaletteOptions, src random.Source) (Palette, error) {
	if opts.NumColors < MinColors {
		return Palette{}, fmt.Errorf("%w: %d colors, need at least %d", ErrInvalidPaletteSize, opts.NumColors, MinColors)
	}
	if src == nil {
		src = random.New()
	}

	pool := BasePool()
	baseIdx, err := pickIndex(opts.BaseIndex, len(pool), src)
	if err != nil {
		return Palette{}, fmt.Errorf("base color: %w", err)
	}
	base := pool[baseIdx]
	pool = slices.Delete(pool, baseIdx, baseIdx+1)

	if !opts.Gradient {
		if opts.NumColors-1 > len(pool) {
			return Palette{}, fmt.Errorf("%w: %d colors, solid palette allows at most %d", ErrInvalidPaletteSize, opts.NumColors, len(pool)+1)
		}
		return Palette{
			Base:   base,
			Colors: slices.Clone(pool[:opts.NumColors-1]),
		}, nil
	}

	endIdx, err := pickIndex(opts.EndIndex, len(pool), src)
	if err != nil {
		return Palette{}, fmt.Errorf("end color: %w", err)
	}
	end := pool[endIdx]
	return Palette{
		Base:     base,
		Colors:   Gradient(base, end, opts.NumColors),
		End:      end,
		Gradient: true,
	}, nil
}

// Gradient fromからtoまでn色の線形補間を返します
// 各チャンネルは0方向に切り捨てられ、先頭はfrom、末尾はtoに一致します
func Gradient(from, to Color, n int) []Color {
	if n < MinColors {
		return nil
	}
	colors := make([]Color, n)
	for i := range n {
		ratio := float64(i) / float64(n-1)
		colors[i] = Color{
			R: lerp(from.R, to.R, ratio),
			G: lerp(from.G, to.G, ratio),
			B: lerp(from.B, to.B, ratio),
		}
	}
	return colors
}

// lerp 各積はFMAに融合させず、float64に丸めてから足します
func lerp(a, b uint8, ratio float64) uint8 {
	return uint8(float64(float64(a)*(1-ratio)) + float64(float64(b)*ratio))
}

// pickIndex idxを長さnのプールに対して解決します
// 負のインデックスは一度だけnを足して末尾から数えます
func pickIndex(idx optional.Of[int], n int, src random.Source) (int, error) {
	if !idx.Valid {
		return src.IntN(n), nil
	}
	i := idx.V
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("%w: %d (pool size %d)", ErrIndexOutOfRange, idx.V, n)
	}
	return i, nil
}
