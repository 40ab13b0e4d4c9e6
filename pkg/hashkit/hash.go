package hashkit

import (
	"sort"

	"github.com/pkg/errors"
)

// constants defines
const (
	HashMethodOneAtATime = "one_at_a_time"

	HashMethodFnv1a64 = "fnv1a_64"
	HashMethodFnv1a32 = "fnv1a_32"
	HashMethodFnv164  = "fnv1_64"
	HashMethodFnv132  = "fnv1_32"

	HashMethodMD5    = "md5"
	HashMethodHsieh  = "hsieh"
	HashMethodMurmur = "murmur"
)

// ErrUnknownMethod is returned for hash method names that are not registered.
var ErrUnknownMethod = errors.New("hashkit: unknown hash method")

// Method hashes a whole key into a 32-bit digest.
type Method func(key []byte) uint32

var methods = map[string]Method{
	HashMethodOneAtATime: Hash,
	HashMethodFnv1a64:    hashFnv1a64,
	HashMethodFnv164:     hashFnv164,
	HashMethodFnv1a32:    hashFnv1a32,
	HashMethodFnv132:     hashFnv132,
	HashMethodMD5:        hashMD5,
	HashMethodHsieh:      hashHsieh,
	HashMethodMurmur:     hashMurmur,
}

// aliases accepted for one_at_a_time, as spelled by twemproxy configs.
var aliases = map[string]string{
	"":            HashMethodOneAtATime,
	"jenkins":     HashMethodOneAtATime,
	"one_on_time": HashMethodOneAtATime,
}

// CanonicalMethod resolves aliases to the registered method name.
func CanonicalMethod(name string) (string, error) {
	if c, ok := aliases[name]; ok {
		name = c
	}
	if _, ok := methods[name]; !ok {
		return "", errors.Wrapf(ErrUnknownMethod, "method %q", name)
	}
	return name, nil
}

// NewMethod returns the hash function registered under name.
// The empty name selects one_at_a_time.
func NewMethod(name string) (Method, error) {
	c, err := CanonicalMethod(name)
	if err != nil {
		return nil, err
	}
	return methods[c], nil
}

// Methods returns the registered method names, sorted.
func Methods() []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewRing creates a ketama ring whose lookups hash keys with method.
func NewRing(method string) (*HashRing, error) {
	hash, err := NewMethod(method)
	if err != nil {
		return nil, err
	}
	return newRingWithHash(hash), nil
}
