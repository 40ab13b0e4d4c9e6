package hashkit

import (
	"github.com/pkg/errors"
)

// ErrInvalidLength is returned when the requested length is outside the key.
var ErrInvalidLength = errors.New("hashkit: invalid length")

// Sum32 returns the Jenkins one-at-a-time digest of key[:n].
// n must be within [0, len(key)].
func Sum32(key []byte, n int) (uint32, error) {
	if n < 0 || n > len(key) {
		return 0, errors.Wrapf(ErrInvalidLength, "len %d, available %d", n, len(key))
	}
	return Hash(key[:n]), nil
}

// Hash returns the Jenkins one-at-a-time digest of key.
func Hash(key []byte) uint32 {
	var hash uint32
	for _, b := range key {
		hash += uint32(b)
		hash += hash << 10
		hash ^= hash >> 6
	}
	return finalize(hash)
}

// HashString is Hash over the UTF-8 bytes of s.
func HashString(s string) uint32 {
	var hash uint32
	for i := 0; i < len(s); i++ {
		hash += uint32(s[i])
		hash += hash << 10
		hash ^= hash >> 6
	}
	return finalize(hash)
}

func finalize(hash uint32) uint32 {
	hash += hash << 3
	hash ^= hash >> 11
	hash += hash << 15
	return hash
}
