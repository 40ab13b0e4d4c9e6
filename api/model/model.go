package model

import (
	"github.com/pkg/errors"
)

// errors
var (
	ErrNoRing = errors.New("ring has no nodes")
)

// Digest is the result of hashing one key.
type Digest struct {
	Method string `json:"method"`
	Value  string `json:"value,omitempty"`
	Len    int    `json:"len"`
	Hash   uint32 `json:"hash"`
	Hex    string `json:"hex"`
}

// Node is the ring node owning a key.
type Node struct {
	Key  string `json:"key"`
	Node string `json:"node"`
}
