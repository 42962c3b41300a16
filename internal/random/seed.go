// Package random provides seed generation helpers.
//
// NewSeed draws a high-entropy seed from crypto/rand for runs that do not
// ask for reproducibility. Stream expands one seed into independent PCG
// states so that parallel workers can each own a deterministic generator.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// ResolveSeed returns seed unchanged when non-zero and a fresh crypto seed
// otherwise. Zero is reserved to mean "pick one for me".
func ResolveSeed(seed int64) (int64, error) {
	if seed != 0 {
		return seed, nil
	}
	for {
		s, err := NewSeed()
		if err != nil {
			return 0, err
		}
		if s != 0 {
			return s, nil
		}
	}
}
