package screen

import (
	"context"
	"errors"
	"github.com/burenotti/go_imc/internal/app/calcapp"
	"github.com/burenotti/go_imc/internal/app/historyapp"
	"github.com/burenotti/go_imc/internal/domain/bmi"
	"github.com/burenotti/go_imc/internal/domain/history"
	"github.com/burenotti/go_imc/internal/domain/inputfmt"
	"github.com/burenotti/go_imc/internal/domain/record"
	"github.com/samber/lo"
	"log/slog"
	"time"
)

const (
	MsgHoldToClear  = "Segure para limpar"
	MsgCleared      = "Histórico apagado"
	MsgNothingShare = "Nenhum histórico para compartilhar"
	MsgShared       = "Histórico compartilhado"
	MsgShareFailed  = "Não foi possível compartilhar o histórico"
	MsgNoRecords    = "Nenhuma medição registrada"
)

type NoticeKind string

const (
	NoticeInfo           NoticeKind = "info"
	NoticeNothingToShare NoticeKind = "nothing_to_share"
	NoticeFailure        NoticeKind = "failure"
)

type Notice struct {
	Kind    NoticeKind
	Message string
}

type Beeper interface {
	Beep()
	Close() error
}

type Input struct {
	Name   string
	Weight string
	Height string
}

type Result struct {
	Record         record.Record
	Formatted      string
	Classification string
}

// Row is one line of the history panel. Placeholder rows only carry Name.
type Row struct {
	Placeholder bool
	Name        string
	Date        string
	Time        string
	Weight      float64
	Height      float64
	BMI         string
	Class       string
}

// Controller maps user actions to the history store and the calculator.
// It runs on the caller's event loop and is not safe for concurrent use.
type Controller struct {
	logger    *slog.Logger
	store     *historyapp.Store
	calc      *calcapp.Service
	sharer    historyapp.Sharer
	beeper    Beeper
	formatter *inputfmt.Formatter
	now       func() time.Time
	limit     int
}

func NewController(opt ...Option) *Controller {
	c := &Controller{
		logger:    slog.Default(),
		calc:      calcapp.New(),
		formatter: inputfmt.NewFormatter(),
		now:       time.Now,
		limit:     history.DisplayLimit,
	}
	for _, opt := range opt {
		opt(c)
	}
	c.logger = c.logger.With("component", "screen")
	return c
}

func (c *Controller) HeightFormatter() *inputfmt.Formatter {
	return c.formatter
}

func (c *Controller) Start(ctx context.Context) {
	if err := c.store.Load(ctx); err != nil {
		c.logger.Error("failed to load history", "path", c.store.Path(), "error", err)
		return
	}
	c.logger.Debug("history loaded", "path", c.store.Path(), "records", c.store.Len())
}

// Calculate returns a *calcapp.ValidationError when the input is rejected.
// A failed save is logged and the record stays in memory.
func (c *Controller) Calculate(ctx context.Context, in Input) (Result, error) {
	res, err := c.calc.Calculate(calcapp.Input{Weight: in.Weight, Height: in.Height})
	if err != nil {
		return Result{}, err
	}

	r, err := record.New(in.Name, res.Weight, res.Height, res.BMI, c.now())
	if err != nil {
		return Result{}, err
	}

	if err := c.store.Append(ctx, r); err != nil {
		c.logger.Error("failed to save history", "path", c.store.Path(), "error", err)
	}

	return Result{
		Record:         r,
		Formatted:      res.Formatted(),
		Classification: res.Classification,
	}, nil
}

func (c *Controller) ClearTap() Notice {
	return Notice{Kind: NoticeInfo, Message: MsgHoldToClear}
}

func (c *Controller) ClearLongPress(ctx context.Context) Notice {
	if err := c.store.Clear(ctx); err != nil {
		c.logger.Error("failed to delete history", "path", c.store.Path(), "error", err)
	}
	if c.beeper != nil {
		c.beeper.Beep()
	}
	return Notice{Kind: NoticeInfo, Message: MsgCleared}
}

func (c *Controller) ExportLongPress(ctx context.Context) Notice {
	if c.sharer == nil {
		return Notice{Kind: NoticeFailure, Message: MsgShareFailed}
	}

	err := c.store.Export(ctx, c.sharer)
	switch {
	case err == nil:
		return Notice{Kind: NoticeInfo, Message: MsgShared}
	case errors.Is(err, historyapp.ErrNothingToShare):
		return Notice{Kind: NoticeNothingToShare, Message: MsgNothingShare}
	default:
		c.logger.Error("failed to share history", "path", c.store.Path(), "error", err)
		return Notice{Kind: NoticeFailure, Message: MsgShareFailed}
	}
}

// Rows returns the most recent records first, or a single placeholder row
// when the history is empty.
func (c *Controller) Rows() []Row {
	recent := c.store.Recent(c.limit)
	if len(recent) == 0 {
		return []Row{{Placeholder: true, Name: MsgNoRecords}}
	}
	return lo.Map(recent, func(r record.Record, _ int) Row {
		return Row{
			Name:   r.Name,
			Date:   r.Date,
			Time:   r.Time,
			Weight: r.Weight,
			Height: r.Height,
			BMI:    bmi.Format(r.BMI),
			Class:  bmi.Classify(r.BMI),
		}
	})
}

func (c *Controller) Close() {
	if c.beeper == nil {
		return
	}
	if err := c.beeper.Close(); err != nil {
		c.logger.Warn("failed to release beeper", "error", err)
	}
}
