package report

import (
	"os"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
)

// ErrLocked is returned when another process holds the output lock.
var ErrLocked = errors.New("report: output file is locked")

// File is an output file guarded by an exclusive {path}.lock file.
type File struct {
	*os.File
	lock *flock.Flock
}

// CreateFile locks and truncates path for writing.
func CreateFile(path string) (*File, error) {
	lock := flock.New(path + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, errors.Wrapf(err, "lock %s", path)
	}
	if !ok {
		return nil, errors.Wrapf(ErrLocked, "path %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		_ = lock.Unlock()
		return nil, errors.WithStack(err)
	}
	return &File{File: f, lock: lock}, nil
}

// Close closes the file and releases the lock.
func (f *File) Close() error {
	err := f.File.Close()
	if uerr := f.lock.Unlock(); err == nil {
		err = uerr
	}
	return errors.WithStack(err)
}
