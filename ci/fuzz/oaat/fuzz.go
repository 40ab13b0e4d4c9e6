package oaat

import (
	"jenkins/pkg/hashkit"

	"github.com/pkg/errors"
)

// Fuzz checks that every prefix digest agrees across the entry points
// and that lengths past the key are rejected.
func Fuzz(data []byte) int {
	for n := 0; n <= len(data); n++ {
		sum, err := hashkit.Sum32(data, n)
		if err != nil {
			panic(err)
		}
		if sum != hashkit.Hash(data[:n]) || sum != hashkit.HashString(string(data[:n])) {
			panic("digest mismatch")
		}
	}
	if _, err := hashkit.Sum32(data, len(data)+1); errors.Cause(err) != hashkit.ErrInvalidLength {
		panic("length past the key accepted")
	}
	if len(data) == 0 {
		return 0
	}
	return 1
}
