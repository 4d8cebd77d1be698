package identicon

import (
	"fmt"
	"math/big"
)

const (
	// LabelCharset ラベルに使用できる文字
	LabelCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 "
	// LabelMaxLength ラベルの最大文字数
	LabelMaxLength = 10
)

// CheckEntropy 一辺gridSizeの2値グリッドがラベル空間全体を表現できるか検証します
// 2^(gridSize^2) >= len(LabelCharset)^LabelMaxLength でなければErrNotEnoughEntropyを返します
func CheckEntropy(gridSize int) error {
	if gridSize <= 0 {
		return fmt.Errorf("%w: grid size %d", ErrNotEnoughEntropy, gridSize)
	}
	gridEntropy := new(big.Int).Lsh(big.NewInt(1), uint(gridSize*gridSize))
	labelEntropy := new(big.Int).Exp(big.NewInt(int64(len(LabelCharset))), big.NewInt(LabelMaxLength), nil)
	if gridEntropy.Cmp(labelEntropy) < 0 {
		return fmt.Errorf("%w: 2^%d < %d^%d", ErrNotEnoughEntropy, gridSize*gridSize, len(LabelCharset), LabelMaxLength)
	}
	return nil
}
