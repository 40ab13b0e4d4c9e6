// Copyright 2016 CodisLabs. All Rights Reserved.
// Licensed under the MIT (MIT-LICENSE.txt) license.

package log

import (
	"fmt"
	stdlog "log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"
)

const (
	dailyRolling = "2006-01-02"
)

type fileHandler struct {
	mu sync.Mutex
	l  *stdlog.Logger

	f        *os.File
	basePath string
	filePath string
	fileFrag string
}

// NewFileHandler new file handler, rolling {basePath}.{date} daily.
func NewFileHandler(basePath string) (Handler, error) {
	if _, file := filepath.Split(basePath); file == "" {
		return nil, errors.Errorf("invalid log base path %q", basePath)
	}
	l := stdlog.New(nil, "", stdlog.LstdFlags|stdlog.Lshortfile)
	f := &fileHandler{l: l, basePath: basePath}
	if err := f.roll(); err != nil {
		return nil, err
	}
	return f, nil
}

func (r *fileHandler) Log(lv Level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_ = r.roll()
	_ = r.l.Output(5, fmt.Sprintf("[%s] %s", lv, msg))
}

func (r *fileHandler) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.f != nil {
		err := r.f.Close()
		r.f = nil
		return err
	}
	return nil
}

func (r *fileHandler) roll() error {
	suffix := time.Now().Format(dailyRolling)
	if r.f != nil {
		if suffix == r.fileFrag {
			return nil
		}
		r.f.Close()
		r.f = nil
	}
	r.fileFrag = suffix
	r.filePath = fmt.Sprintf("%s.%s", r.basePath, r.fileFrag)

	if dir, _ := filepath.Split(r.basePath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return errors.WithStack(err)
		}
	}
	f, err := os.OpenFile(r.filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return errors.WithStack(err)
	}
	r.f = f
	r.l.SetOutput(f)
	return nil
}
