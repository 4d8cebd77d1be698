package identicon

import (
	"image"
	"image/draw"

	"github.com/disintegration/imaging"

	"github.com/grahamannett/identicon-take-home/utils/identicon"
)

const defaultSwatchTile = 64

// RenderSwatch パレットの各色を左から順にtile x tileのタイルで並べた画像を返します
// 先頭はベース色です。tile <= 0の場合は64を使います
func RenderSwatch(p identicon.Palette, tile int) *image.NRGBA {
	if tile <= 0 {
		tile = defaultSwatchTile
	}
	colors := p.All()
	img := imaging.New(tile*len(colors), tile, identicon.White)
	for i, c := range colors {
		draw.Draw(img, image.Rect(i*tile, 0, (i+1)*tile, tile), image.NewUniform(c), image.Point{}, draw.Src)
	}
	return img
}
