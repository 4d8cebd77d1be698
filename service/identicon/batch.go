package identicon

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// KeyFunc ラベルから保存先のキーを決める関数
type KeyFunc func(label string) string

// PNGKey "<label>.png"をキーにします
func PNGKey(label string) string {
	return label + ".png"
}

// GenerateAll labelsのidenticonを順に生成・保存します
//
// 最初に失敗したラベルのエラーを返し、残りのラベルは処理しません
func (w *Writer) GenerateAll(ctx context.Context, gen *Generator, labels []string, key KeyFunc, colored bool) error {
	if key == nil {
		key = PNGKey
	}

	for _, label := range labels {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := w.Generate(gen, label, key(label), colored); err != nil {
			return fmt.Errorf("label %q: %w", label, err)
		}
	}

	w.logger.Info("batch generated", zap.Int("count", len(labels)))
	return nil
}
