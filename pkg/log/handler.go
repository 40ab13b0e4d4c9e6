package log

import (
	"github.com/pkg/errors"
)

// Handler writes formatted log lines to one sink.
// Implementations must be safe for concurrent Log calls.
type Handler interface {
	Log(lv Level, msg string)
	Close() error
}

// Handlers fans every line out to each handler in order.
type Handlers []Handler

// Log handlers logging.
func (hs Handlers) Log(lv Level, msg string) {
	for _, h := range hs {
		h.Log(lv, msg)
	}
}

// Close closes every handler and returns the first failure.
func (hs Handlers) Close() (err error) {
	for _, h := range hs {
		if e := h.Close(); e != nil && err == nil {
			err = errors.WithStack(e)
		}
	}
	return
}
