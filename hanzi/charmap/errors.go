// Copyright (c) 2026 the hanziconv authors
// released under the MIT license

package charmap

import "errors"

// Engine errors. All of them are reported synchronously to the caller;
// a mutation that returns an error leaves the store untouched.
var (
	// ErrArityMismatch means the two character groups passed to a mutation
	// flatten to different numbers of characters.
	ErrArityMismatch = errors.New("Simplified and traditional character groups have different lengths")
	// ErrInconsistentMapping means a staged mutation would leave the two
	// inventories with different lengths, breaking their pairing.
	ErrInconsistentMapping = errors.New("Simplified characters don't match up with traditional characters")
	// ErrInvalidUTF8 means raw byte input could not be decoded as UTF-8.
	ErrInvalidUTF8 = errors.New("Input bytes are not valid UTF-8")
)
