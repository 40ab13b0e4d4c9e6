package report

import (
	"bufio"
	"encoding/csv"
	"io"
	"strconv"

	"jenkins/pkg/hashkit"
	"jenkins/pkg/prom"

	"github.com/pkg/errors"
)

// Writer writes hashed records in a Layout.
type Writer struct {
	layout Layout
	method string
	hash   hashkit.Method

	bw  *bufio.Writer
	csv *csv.Writer
}

// NewWriter returns a Writer hashing values with the named method.
func NewWriter(w io.Writer, layout Layout, method string) (*Writer, error) {
	layout, err := ParseLayout(string(layout))
	if err != nil {
		return nil, err
	}
	name, err := hashkit.CanonicalMethod(method)
	if err != nil {
		return nil, err
	}
	hash, _ := hashkit.NewMethod(name)
	bw := bufio.NewWriter(w)
	return &Writer{
		layout: layout,
		method: name,
		hash:   hash,
		bw:     bw,
		csv:    csv.NewWriter(bw),
	}, nil
}

// WriteHeader writes the header line.
func (w *Writer) WriteHeader() error {
	_, err := w.bw.WriteString(Header + "\n")
	return errors.WithStack(err)
}

// Write hashes value and writes its row.
func (w *Writer) Write(value string) (Record, error) {
	rec := Record{Value: value, Len: len(value), Hash: w.hash([]byte(value))}
	prom.DigestIncr(w.method, rec.Len)
	length := strconv.Itoa(rec.Len)
	if w.layout == LayoutLegacy {
		// legacy rows are never quoted
		_, err := w.bw.WriteString(length + "," + rec.HexHash() + "," + rec.Value + "\n")
		return rec, errors.WithStack(err)
	}
	if err := w.csv.Write([]string{rec.Value, length, rec.HexHash()}); err != nil {
		return rec, errors.WithStack(err)
	}
	w.csv.Flush()
	return rec, errors.WithStack(w.csv.Error())
}

// WriteAll writes the header followed by a row per value.
func (w *Writer) WriteAll(values []string) error {
	if err := w.WriteHeader(); err != nil {
		return err
	}
	for _, v := range values {
		if _, err := w.Write(v); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Flush flushes buffered rows to the underlying writer.
func (w *Writer) Flush() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(w.bw.Flush())
}
