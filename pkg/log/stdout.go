package log

import (
	"fmt"
	"io"
	stdlog "log"
	"os"
)

// writerHandler logs into an io.Writer.
type writerHandler struct {
	out *stdlog.Logger
}

// NewStdHandler create a stdout log handler
func NewStdHandler() Handler {
	return NewWriterHandler(os.Stdout)
}

// NewWriterHandler create a log handler printing into w.
func NewWriterHandler(w io.Writer) Handler {
	return &writerHandler{out: stdlog.New(w, "", stdlog.LstdFlags|stdlog.Lshortfile)}
}

func (h *writerHandler) Log(lv Level, msg string) {
	_ = h.out.Output(5, fmt.Sprintf("[%s] %s", lv, msg))
}

func (h *writerHandler) Close() (err error) {
	return
}
