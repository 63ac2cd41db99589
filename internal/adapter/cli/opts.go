package cli

import (
	"github.com/burenotti/go_imc/internal/app/screen"
	"io"
	"log/slog"
)

type Option func(*App)

func Logger(l *slog.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

func Screen(c *screen.Controller) Option {
	return func(a *App) {
		a.screen = c
	}
}

func Input(r io.Reader) Option {
	return func(a *App) {
		a.in = r
	}
}

func Output(w io.Writer) Option {
	return func(a *App) {
		a.out = w
	}
}
