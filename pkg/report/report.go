// Package report renders hash digests of text records as CSV.
package report

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"jenkins/pkg/hashkit"

	"github.com/pkg/errors"
)

// Header is the column header line of every layout.
const Header = "value,len,hash"

// Layout selects the column order of the data rows.
type Layout string

// layouts
const (
	// LayoutStandard writes rows as value,len,hash, matching the header.
	LayoutStandard Layout = "standard"
	// LayoutLegacy writes rows as len,hash,value under the value,len,hash header.
	LayoutLegacy Layout = "legacy"
)

// ErrUnknownLayout is returned by ParseLayout for unsupported names.
var ErrUnknownLayout = errors.New("report: unknown layout")

// DefaultSamples are the records hashed when no input is given.
var DefaultSamples = []string{"VOD.L", "hello", "plane", "A", "B", "C", "A", "a", "BT.L", "ARM.L"}

// ParseLayout parses a layout name; empty means LayoutStandard.
func ParseLayout(name string) (Layout, error) {
	switch Layout(strings.ToLower(name)) {
	case "", LayoutStandard:
		return LayoutStandard, nil
	case LayoutLegacy:
		return LayoutLegacy, nil
	}
	return "", errors.Wrapf(ErrUnknownLayout, "layout %q", name)
}

// Record is one hashed value.
type Record struct {
	Value string
	Len   int
	Hash  uint32
}

// NewRecord hashes value with one_at_a_time.
func NewRecord(value string) Record {
	return Record{Value: value, Len: len(value), Hash: hashkit.HashString(value)}
}

// HexHash is the lowercase, unpadded hex digest.
func (r Record) HexHash() string {
	return strconv.FormatUint(uint64(r.Hash), 16)
}

// ReadValues reads one record per line. A trailing \r is stripped.
func ReadValues(r io.Reader) ([]string, error) {
	var values []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		values = append(values, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read values")
	}
	return values, nil
}
