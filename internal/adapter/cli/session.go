package cli

import (
	"context"
)

func (a *App) MountSession() {
	a.handle("help", Command{
		Usage:   "help",
		Help:    "list commands",
		Handler: a.Help,
	})
	a.handle("quit", Command{
		Usage:   "quit",
		Help:    "leave",
		Handler: a.Quit,
	})
}

func (a *App) Help(_ context.Context, _ []string) error {
	rows := make([][]string, 0, len(a.commands))
	for _, name := range a.commandNames() {
		cmd := a.commands[name]
		rows = append(rows, []string{cmd.Usage, cmd.Help})
	}
	a.renderTable([]string{"Comando", "Descrição"}, rows)
	return nil
}

func (a *App) Quit(_ context.Context, _ []string) error {
	return ErrQuit
}
