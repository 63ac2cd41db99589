package beep

import (
	"errors"
	"github.com/mattn/go-isatty"
	"io"
	"log/slog"
	"os"
)

const bell = "\a"

var (
	ErrReleased = errors.New("beeper already released")
)

// Terminal rings the terminal bell. It stays silent when the output is not
// a terminal, so piped output is not polluted.
type Terminal struct {
	out      io.Writer
	audible  bool
	released bool
	logger   *slog.Logger
}

// Open acquires the bell on f. Release it with Close.
func Open(f *os.File, logger *slog.Logger) *Terminal {
	fd := f.Fd()
	return &Terminal{
		out:     f,
		audible: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
		logger:  logger,
	}
}

func New(w io.Writer, audible bool, logger *slog.Logger) *Terminal {
	return &Terminal{out: w, audible: audible, logger: logger}
}

func (t *Terminal) Audible() bool {
	return t.audible
}

func (t *Terminal) Beep() {
	if t.released || !t.audible {
		return
	}
	if _, err := io.WriteString(t.out, bell); err != nil && t.logger != nil {
		t.logger.Error("failed to play beep", "error", err)
	}
}

func (t *Terminal) Close() error {
	if t.released {
		return ErrReleased
	}
	t.released = true
	return nil
}
