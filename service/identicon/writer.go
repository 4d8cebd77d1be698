package identicon

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/grahamannett/identicon-take-home/utils/identicon"
	"github.com/grahamannett/identicon-take-home/utils/storage"
)

// Writer identicon画像を描画し、必要に応じてストレージに保存します
type Writer struct {
	r      *Renderer
	fs     storage.FileStorage
	logger *zap.Logger
}

// NewWriter Writerを生成します
// fsがnilの場合はカレントディレクトリのLocalFileStorageを使います
func NewWriter(c WriterConfig, fs storage.FileStorage, logger *zap.Logger) (*Writer, error) {
	r, err := NewRenderer(c)
	if err != nil {
		return nil, err
	}
	if fs == nil {
		fs = storage.NewLocalFileStorage("")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{r: r, fs: fs, logger: logger}, nil
}

// GenerateImage gを描画します
//
// keyが空でない場合は、keyの拡張子から決まる形式(不明な場合はPNG)でエンコードして保存します
// 保存に失敗した場合もメモリ上の画像は返され、エラーはErrWriteImageをラップします
func (w *Writer) GenerateImage(g identicon.Grid, key string) (*image.NRGBA, error) {
	img := w.r.Render(g)
	w.logger.Debug("identicon rendered", zap.Int("size", w.r.Size()), zap.Bool("symmetric", w.r.symmetric))

	if key == "" {
		return img, nil
	}
	if err := w.save(img, key); err != nil {
		return img, err
	}
	return img, nil
}

// Generate genでlabelのグリッドを生成し、描画・保存します
func (w *Writer) Generate(gen *Generator, label, key string, colored bool) (*image.NRGBA, error) {
	return w.GenerateImage(gen.Generate(label, colored), key)
}

// WriteSwatch パレットの見本画像を保存します
func (w *Writer) WriteSwatch(p identicon.Palette, tile int, key string) (*image.NRGBA, error) {
	img := RenderSwatch(p, tile)
	if err := w.save(img, key); err != nil {
		return img, err
	}
	return img, nil
}

func (w *Writer) save(img image.Image, key string) error {
	format, err := imaging.FormatFromFilename(key)
	if err != nil {
		format = imaging.PNG
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteImage, key, err)
	}
	if err := w.fs.SaveByKey(&buf, key); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteImage, key, err)
	}

	w.logger.Info("image saved", zap.String("key", key), zap.Stringer("format", format))
	return nil
}
