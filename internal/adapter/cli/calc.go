package cli

import (
	"context"
	"github.com/burenotti/go_imc/internal/app/screen"
	"strings"
)

type CalcRequest struct {
	Args []string `validate:"omitempty,min=2"`
}

func (a *App) MountCalc() {
	a.handle("calc", Command{
		Usage:   "calc [weight height [name...]]",
		Help:    "calculate the BMI and add it to the history",
		Handler: a.Calculate,
	})
}

// Calculate uses the current fields, or fills them from args first. The
// height in args is typed key by key like any other height input.
func (a *App) Calculate(ctx context.Context, args []string) error {
	var req CalcRequest
	if len(args) > 0 {
		req.Args = args
	}
	if err := a.bind(&req); err != nil {
		return err
	}

	if len(req.Args) > 0 {
		a.clearFields()
		a.weight.SetText(req.Args[0])
		for _, r := range req.Args[1] {
			a.height.Type(r)
		}
		a.name.SetText(strings.Join(req.Args[2:], " "))
	}

	res, err := a.screen.Calculate(ctx, screen.Input{
		Name:   a.name.Text(),
		Weight: a.weight.Text(),
		Height: a.height.Text(),
	})
	if err != nil {
		return err
	}

	a.renderResult(res)
	a.renderHistory(a.screen.Rows())
	return nil
}
