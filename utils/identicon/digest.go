package identicon

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	// GridSize グリッドの一辺のセル数
	// SHA-256の出力256bitがちょうど16x16を埋める
	GridSize = 16
	// DigestLength 16進ダイジェストの文字数
	DigestLength = sha256.Size * 2
	// bitsPerHexDigit 16進1文字あたりのビット数
	bitsPerHexDigit = 4
)

// Hash labelのSHA-256ダイジェストを小文字16進文字列で返します
func Hash(label string) string {
	sum := sha256.Sum256([]byte(label))
	return hex.EncodeToString(sum[:])
}

// BinaryDigest 16進ダイジェストを1文字あたり4bit(MSB first)の'0'/'1'文字列に展開します
func BinaryDigest(digest string) (string, error) {
	if len(digest) != DigestLength {
		return "", fmt.Errorf("%w: length %d, want %d", ErrInvalidDigest, len(digest), DigestLength)
	}

	var b strings.Builder
	b.Grow(len(digest) * bitsPerHexDigit)
	for i := 0; i < len(digest); i++ {
		v, ok := hexValue(digest[i])
		if !ok {
			return "", fmt.Errorf("%w: invalid character %q at %d", ErrInvalidDigest, digest[i], i)
		}
		_, _ = fmt.Fprintf(&b, "%04b", v)
	}
	return b.String(), nil
}

// GridFromBits bitsを行優先で16x16のグリッドに並べます
// i番目のビットは(i/GridSize, i%GridSize)に配置され、'1'のみがセルを立てます
func GridFromBits(bits string) BinaryGrid {
	var g BinaryGrid
	for i := 0; i < GridSize*GridSize && i < len(bits); i++ {
		if bits[i] == '1' {
			g[i/GridSize][i%GridSize] = 1
		}
	}
	return g
}

// ExpandToGrid 16進ダイジェストをBinaryGridに展開します
func ExpandToGrid(digest string) (BinaryGrid, error) {
	bits, err := BinaryDigest(digest)
	if err != nil {
		return BinaryGrid{}, err
	}
	return GridFromBits(bits), nil
}

func hexValue(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
