// Copyright (c) 2026 the hanziconv authors
// released under the MIT license

package charmap

import "unicode/utf8"

// DecodeBytes validates raw byte input and returns it as text. This is the
// single decode step at the boundary: everything past it operates on
// decoded text only.
func DecodeBytes(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}

// ConvertBytes decodes raw UTF-8 input and converts it, returning
// ErrInvalidUTF8 on malformed input.
func (store *Store) ConvertBytes(b []byte, dir Direction) (string, error) {
	text, err := DecodeBytes(b)
	if err != nil {
		return "", err
	}
	return store.Convert(text, dir), nil
}
