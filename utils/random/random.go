package random

import (
	"math/rand/v2"
)

// Source 範囲指定の一様な整数乱数源
type Source interface {
	// IntN [0, n)の一様乱数を返します。n <= 0の場合はpanicします
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// New math/randのグローバル乱数源を使用するSourceを返します
func New() Source {
	return globalSource{}
}

// NewSeeded seedで初期化された再現可能なSourceを返します
// 返されるSourceはgoroutine-safeではありません
func NewSeeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Fixed 常に同じ値を返すSource (主にテスト用)
// 値はnで剰余を取ってから返されます
type Fixed int

func (f Fixed) IntN(n int) int {
	v := int(f) % n
	if v < 0 {
		v += n
	}
	return v
}
