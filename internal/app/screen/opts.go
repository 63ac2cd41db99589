package screen

import (
	"github.com/burenotti/go_imc/internal/app/historyapp"
	"log/slog"
	"time"
)

type Option func(*Controller)

func Logger(l *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

func Store(s *historyapp.Store) Option {
	return func(c *Controller) {
		c.store = s
	}
}

func Sharer(s historyapp.Sharer) Option {
	return func(c *Controller) {
		c.sharer = s
	}
}

func WithBeeper(b Beeper) Option {
	return func(c *Controller) {
		c.beeper = b
	}
}

func Clock(now func() time.Time) Option {
	return func(c *Controller) {
		c.now = now
	}
}

func DisplayLimit(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.limit = n
		}
	}
}
