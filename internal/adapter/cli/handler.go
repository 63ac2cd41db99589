package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"github.com/burenotti/go_imc/internal/app/screen"
	"github.com/go-playground/validator/v10"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
)

const prompt = "imc> "

type HandlerFunc func(ctx context.Context, args []string) error

type Command struct {
	Usage   string
	Help    string
	Handler HandlerFunc
}

// App is the terminal screen. Each input line is one user action and is
// handled to completion before the next one is read.
type App struct {
	logger    *slog.Logger
	screen    *screen.Controller
	in        io.Reader
	out       io.Writer
	commands  map[string]Command
	validator *validator.Validate

	name   *TextField
	weight *TextField
	height *TextField
}

func NewApp(opt ...Option) *App {
	a := &App{
		logger:    slog.Default(),
		in:        os.Stdin,
		out:       os.Stdout,
		commands:  make(map[string]Command),
		validator: validator.New(validator.WithRequiredStructEnabled()),
		name:      NewTextField(),
		weight:    NewTextField(),
		height:    NewTextField(),
	}

	for _, opt := range opt {
		opt(a)
	}

	formatter := a.screen.HeightFormatter()
	a.height.AddTextChangedListener(func(f *TextField) {
		formatter.AfterTextChanged(f)
	})

	a.Mount()
	return a
}

func (a *App) Mount() {
	a.MountFields()
	a.MountCalc()
	a.MountHistory()
	a.MountSession()
}

func (a *App) handle(name string, cmd Command) {
	a.commands[name] = cmd
}

// Run reads commands until EOF, quit or ctx is done. Commands run on the
// caller's goroutine, only reading the input happens in the background.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	done := make(chan error, 1)
	go a.readLines(ctx, lines, done)

	for {
		a.printf("%s", prompt)

		var line string
		select {
		case <-ctx.Done():
			a.printf("\n")
			return nil
		case err := <-done:
			a.printf("\n")
			return err
		case line = <-lines:
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		err := a.Exec(ctx, args)
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			a.renderError(err)
		}
	}
}

// readLines stops sending once ctx is done. A read already blocked on the
// input is abandoned, not interrupted.
func (a *App) readLines(ctx context.Context, lines chan<- string, done chan<- error) {
	scanner := bufio.NewScanner(a.in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
	done <- scanner.Err()
}

// RunArgs runs a single command and renders its error, if any.
func (a *App) RunArgs(ctx context.Context, args []string) error {
	err := a.Exec(ctx, args)
	if err == nil || errors.Is(err, ErrQuit) {
		return nil
	}
	a.renderError(err)
	return err
}

// Exec runs a single command.
func (a *App) Exec(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrUnknownCommand
	}
	cmd, ok := a.commands[strings.ToLower(args[0])]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	a.logger.Debug("command", "name", args[0], "args", len(args)-1)
	return cmd.Handler(ctx, args[1:])
}

func (a *App) bind(i interface{}) error {
	if err := a.validator.Struct(i); err != nil {
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) {
			return ErrBadRequest
		}
		return fmt.Errorf("%w: %s: %s", ErrBadRequest, errs[0].Field(), errs[0].Tag())
	}
	return nil
}

func (a *App) commandNames() []string {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (a *App) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(a.out, format, args...)
}
