package share

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
)

var (
	ErrUnsupportedURI = errors.New("unsupported uri")
)

const filePrefix = "historico-imc-"

// Outbox shares a file by copying it into a directory that some other
// program picks up. Only file:// URIs are accepted.
type Outbox struct {
	Dir    string
	Logger *slog.Logger
}

func NewOutbox(dir string, logger *slog.Logger) *Outbox {
	return &Outbox{Dir: dir, Logger: logger}
}

func (o *Outbox) ShareFile(ctx context.Context, uri, mimeType, subject string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	src, err := localPath(uri)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(o.Dir, 0o700); err != nil {
		return fmt.Errorf("create outbox: %w", err)
	}

	dst := filepath.Join(o.Dir, filePrefix+uuid.NewString()+filepath.Ext(src))
	if err := copyFile(src, dst); err != nil {
		return fmt.Errorf("copy to outbox: %w", err)
	}

	if o.Logger != nil {
		o.Logger.Info("file shared",
			"to", dst,
			"mime_type", mimeType,
			"subject", subject,
		)
	}
	return nil
}

func localPath(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", errors.Join(fmt.Errorf("parse %q: %w", uri, err), ErrUnsupportedURI)
	}
	if u.Scheme != "file" || u.Path == "" {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedURI, uri)
	}
	return filepath.FromSlash(u.Path), nil
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	_, err = io.Copy(out, in)
	return err
}
