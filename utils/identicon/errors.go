package identicon

import "errors"

var (
	// ErrNotEnoughEntropy グリッドが入力ラベル空間を表現できません
	ErrNotEnoughEntropy = errors.New("not enough grid entropy")
	// ErrInvalidPaletteSize パレットの色数が不正です
	ErrInvalidPaletteSize = errors.New("invalid palette size")
	// ErrIndexOutOfRange 色インデックスがプールの範囲外です
	ErrIndexOutOfRange = errors.New("color index out of range")
	// ErrInvalidDigest ダイジェストが64文字の16進文字列ではありません
	ErrInvalidDigest = errors.New("invalid digest")
)
