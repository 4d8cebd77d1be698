package identicon

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"

	"github.com/grahamannett/identicon-take-home/utils/identicon"
)

// Renderer グリッドをラスタ画像に描画します
type Renderer struct {
	size      int
	symmetric bool
}

// NewRenderer Rendererを生成します
func NewRenderer(c WriterConfig) (*Renderer, error) {
	if c.ImageSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidImageSize, c.ImageSize)
	}
	return &Renderer{size: c.ImageSize, symmetric: c.Symmetric}, nil
}

// Size 出力画像の一辺のピクセル数
func (r *Renderer) Size() int {
	return r.size
}

// Render gを白で初期化したsize x sizeのキャンバスに描画します
//
// セル(i, j)は[j*size/cols, (j+1)*size/cols) x [i*size/rows, (i+1)*size/rows)を塗ります
// symmetricの場合は全体を描画した後、左半分を反転して右半分に貼り付けます
func (r *Renderer) Render(g identicon.Grid) *image.NRGBA {
	img := imaging.New(r.size, r.size, color.White)

	rows, cols := g.Size()
	for i := 0; i < rows; i++ {
		y0, y1 := i*r.size/rows, (i+1)*r.size/rows
		for j := 0; j < cols; j++ {
			x0, x1 := j*r.size/cols, (j+1)*r.size/cols
			draw.Draw(img, image.Rect(x0, y0, x1, y1), image.NewUniform(g.ColorAt(i, j)), image.Point{}, draw.Src)
		}
	}

	if r.symmetric {
		half := r.size / 2
		if half == 0 {
			return img
		}
		left := imaging.Crop(img, image.Rect(0, 0, half, r.size))
		img = imaging.Paste(img, imaging.FlipH(left), image.Pt(half, 0))
	}
	return img
}
