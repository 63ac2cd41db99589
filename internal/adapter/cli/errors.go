package cli

import (
	"errors"
	"github.com/burenotti/go_imc/internal/app/calcapp"
)

var (
	ErrQuit           = errors.New("quit")
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadRequest     = errors.New("bad request")
)

func (a *App) renderError(err error) {
	var verr *calcapp.ValidationError
	if errors.As(err, &verr) {
		for _, field := range []string{calcapp.FieldWeight, calcapp.FieldHeight} {
			if msg := verr.Field(field); msg != "" {
				a.printf("%s\n", errorStyle.Render(fieldLabels[field]+": "+msg))
			}
		}
		return
	}
	a.printf("%s\n", errorStyle.Render(err.Error()))
}
