// Copyright (c) 2026 the hanziconv authors
// released under the MIT license

package charmap

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// Transformer streams a conversion over arbitrarily large input without
// buffering it whole. It snapshots the store's mapping at construction, so
// a single stream always sees one consistent table even if the store is
// mutated mid-stream.
type Transformer struct {
	table map[rune]rune
}

var _ transform.Transformer = Transformer{}

// NewTransformer returns a Transformer converting in the given direction
// against the store's current mapping.
func NewTransformer(store *Store, dir Direction) Transformer {
	return Transformer{table: store.mapping().table(dir)}
}

// Reset implements transform.Transformer. The transformer carries no
// per-stream state.
func (t Transformer) Reset() {}

// Transform implements transform.Transformer. Substitutions are strictly
// 1-for-1 on runes; unmapped runes pass through. Malformed input fails with
// ErrInvalidUTF8 rather than being replaced.
func (t Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				err = transform.ErrShortSrc
				return
			}
			err = ErrInvalidUTF8
			return
		}
		if counterpart, ok := t.table[r]; ok {
			r = counterpart
		}
		if nDst+utf8.RuneLen(r) > len(dst) {
			err = transform.ErrShortDst
			return
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += size
	}
	return
}
