package identicon

import (
	"errors"

	"github.com/grahamannett/identicon-take-home/utils/optional"
)

var (
	ErrInvalidImageSize = errors.New("invalid image size")
	ErrWriteImage       = errors.New("failed to write image")
)

// GeneratorConfig identiconグリッド生成設定
type GeneratorConfig struct {
	// NumColors パレットの色数
	NumColors int
	// Gradient グラデーションパレットを使うかどうか
	Gradient bool
	// BaseIndex ベース色インデックス。未指定の場合はランダム
	BaseIndex optional.Of[int]
	// EndIndex グラデーション終端色インデックス。未指定の場合はランダム
	EndIndex optional.Of[int]
}

// WriterConfig identicon画像出力設定
type WriterConfig struct {
	// ImageSize 出力画像の一辺のピクセル数
	ImageSize int
	// Symmetric 左半分を右半分に鏡映するかどうか
	Symmetric bool
}

// DefaultGeneratorConfig デフォルトの生成設定
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		NumColors: 4,
		Gradient:  true,
	}
}

// DefaultWriterConfig デフォルトの出力設定
func DefaultWriterConfig() WriterConfig {
	return WriterConfig{
		ImageSize: 256,
		Symmetric: true,
	}
}
