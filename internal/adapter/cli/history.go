package cli

import (
	"context"
)

func (a *App) MountHistory() {
	a.handle("history", Command{
		Usage:   "history",
		Help:    "show the latest measurements",
		Handler: a.ShowHistory,
	})
	a.handle("clear", Command{
		Usage:   "clear",
		Help:    "tap the clear button",
		Handler: a.ClearTap,
	})
	a.handle("hold-clear", Command{
		Usage:   "hold-clear",
		Help:    "hold the clear button: clears fields and history",
		Handler: a.ClearHold,
	})
	a.handle("export", Command{
		Usage:   "export",
		Help:    "hold the history panel: share the history file",
		Handler: a.Export,
	})
}

func (a *App) ShowHistory(_ context.Context, _ []string) error {
	a.renderHistory(a.screen.Rows())
	return nil
}

func (a *App) ClearTap(_ context.Context, _ []string) error {
	a.renderNotice(a.screen.ClearTap())
	return nil
}

func (a *App) ClearHold(ctx context.Context, _ []string) error {
	a.clearFields()
	a.renderNotice(a.screen.ClearLongPress(ctx))
	a.renderHistory(a.screen.Rows())
	return nil
}

func (a *App) Export(ctx context.Context, _ []string) error {
	a.renderNotice(a.screen.ExportLongPress(ctx))
	return nil
}
