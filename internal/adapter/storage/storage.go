package storage

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/renameio/v2"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
)

var (
	ErrInternal = errors.New("internal storage error")
	ErrTxDone   = errors.New("transaction already finished")
)

const (
	FileMode = 0o600
	DirMode  = 0o700
)

// FileContext is a handle on the backing file. Writes made through a
// transaction are only visible after Commit.
type FileContext interface {
	Begin(ctx context.Context) (FileContext, error)
	Commit() error
	Rollback() error
	ReadFile(ctx context.Context) ([]byte, error)
	WriteFile(ctx context.Context, data []byte) error
	RemoveFile(ctx context.Context) error
	Exists(ctx context.Context) (bool, error)
	Path() string
}

// File is the non-transactional handle. Commit and Rollback are no-ops so
// it can be handed to code written against a transaction.
type File struct {
	path string
}

func NewFile(dir, name string) *File {
	return &File{path: filepath.Join(dir, name)}
}

func (f *File) Path() string {
	return f.path
}

// URI returns the file:// URL of the backing file.
func (f *File) URI() string {
	abs, err := filepath.Abs(f.path)
	if err != nil {
		abs = f.path
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String()
}

func (f *File) Commit() error {
	return nil
}

func (f *File) Rollback() error {
	return nil
}

func (f *File) Begin(ctx context.Context) (FileContext, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Tx{file: f}, nil
}

func (f *File) ReadFile(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

func (f *File) WriteFile(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), DirMode); err != nil {
		return err
	}
	return renameio.WriteFile(f.path, data, FileMode)
}

func (f *File) RemoveFile(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := os.Remove(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (f *File) Exists(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, err := os.Stat(f.path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

type pendingOp int

const (
	opNone pendingOp = iota
	opWrite
	opRemove
)

// Tx stages one write or removal of the backing file. The last staged
// operation wins.
type Tx struct {
	file *File
	op   pendingOp
	data []byte
	done bool
}

func (t *Tx) Path() string {
	return t.file.Path()
}

func (t *Tx) Begin(ctx context.Context) (FileContext, error) {
	return t, nil
}

func (t *Tx) ReadFile(ctx context.Context) ([]byte, error) {
	if t.done {
		return nil, ErrTxDone
	}
	switch t.op {
	case opWrite:
		return append([]byte(nil), t.data...), nil
	case opRemove:
		return nil, nil
	}
	return t.file.ReadFile(ctx)
}

func (t *Tx) WriteFile(ctx context.Context, data []byte) error {
	if t.done {
		return ErrTxDone
	}
	t.op = opWrite
	t.data = append([]byte(nil), data...)
	return ctx.Err()
}

func (t *Tx) RemoveFile(ctx context.Context) error {
	if t.done {
		return ErrTxDone
	}
	t.op = opRemove
	t.data = nil
	return ctx.Err()
}

func (t *Tx) Exists(ctx context.Context) (bool, error) {
	if t.done {
		return false, ErrTxDone
	}
	switch t.op {
	case opWrite:
		return true, nil
	case opRemove:
		return false, nil
	}
	return t.file.Exists(ctx)
}

func (t *Tx) Commit() error {
	if t.done {
		return ErrTxDone
	}
	t.done = true

	ctx := context.Background()
	switch t.op {
	case opWrite:
		return t.file.WriteFile(ctx, t.data)
	case opRemove:
		return t.file.RemoveFile(ctx)
	}
	return nil
}

func (t *Tx) Rollback() error {
	if t.done {
		return nil
	}
	t.done = true
	t.op = opNone
	t.data = nil
	return nil
}

func InternalError(err error) error {
	return errors.Join(fmt.Errorf("internal storage error: %w", err), ErrInternal)
}
