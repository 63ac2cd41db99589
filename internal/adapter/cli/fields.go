package cli

import (
	"context"
	"strings"
	"unicode/utf8"
)

// TextField is an in-memory text input. Listeners run after every change,
// including changes made by a listener itself.
type TextField struct {
	text      string
	cursor    int
	listeners []func(*TextField)
}

func NewTextField() *TextField {
	return &TextField{}
}

func (f *TextField) Text() string {
	return f.text
}

func (f *TextField) Cursor() int {
	return f.cursor
}

func (f *TextField) SetText(text string) {
	f.text = text
	if f.cursor > len(text) {
		f.cursor = len(text)
	}
	f.notify()
}

func (f *TextField) SetSelection(pos int) {
	f.cursor = min(max(pos, 0), len(f.text))
}

func (f *TextField) AddTextChangedListener(fn func(*TextField)) {
	f.listeners = append(f.listeners, fn)
}

// Type inserts r at the cursor, like a single keystroke.
func (f *TextField) Type(r rune) {
	s := string(r)
	f.text = f.text[:f.cursor] + s + f.text[f.cursor:]
	f.cursor += len(s)
	f.notify()
}

// Backspace removes the rune before the cursor.
func (f *TextField) Backspace() {
	if f.cursor == 0 {
		return
	}
	_, size := utf8.DecodeLastRuneInString(f.text[:f.cursor])
	f.text = f.text[:f.cursor-size] + f.text[f.cursor:]
	f.cursor -= size
	f.notify()
}

func (f *TextField) Clear() {
	f.cursor = 0
	f.SetText("")
}

func (f *TextField) notify() {
	for _, fn := range f.listeners {
		fn(f)
	}
}

type setFieldRequest struct {
	Text string `validate:"required"`
}

type typeRequest struct {
	Keys string `validate:"required"`
}

func (a *App) MountFields() {
	a.handle("name", Command{
		Usage:   "name <text>",
		Help:    "set the name field",
		Handler: a.SetName,
	})
	a.handle("weight", Command{
		Usage:   "weight <kg>",
		Help:    "set the weight field",
		Handler: a.SetWeight,
	})
	a.handle("height", Command{
		Usage:   "height <keys>",
		Help:    "type keys into the height field",
		Handler: a.TypeHeight,
	})
	a.handle("height-del", Command{
		Usage:   "height-del",
		Help:    "delete the last character of the height field",
		Handler: a.DeleteHeight,
	})
	a.handle("fields", Command{
		Usage:   "fields",
		Help:    "show the input fields",
		Handler: a.ShowFields,
	})
}

func (a *App) SetName(_ context.Context, args []string) error {
	req := setFieldRequest{Text: strings.Join(args, " ")}
	if err := a.bind(&req); err != nil {
		return err
	}
	a.name.Clear()
	a.name.SetText(req.Text)
	a.renderFields()
	return nil
}

func (a *App) SetWeight(_ context.Context, args []string) error {
	req := setFieldRequest{Text: strings.Join(args, "")}
	if err := a.bind(&req); err != nil {
		return err
	}
	a.weight.Clear()
	a.weight.SetText(req.Text)
	a.renderFields()
	return nil
}

func (a *App) TypeHeight(_ context.Context, args []string) error {
	req := typeRequest{Keys: strings.Join(args, "")}
	if err := a.bind(&req); err != nil {
		return err
	}
	for _, r := range req.Keys {
		a.height.Type(r)
	}
	a.renderFields()
	return nil
}

func (a *App) DeleteHeight(_ context.Context, _ []string) error {
	a.height.Backspace()
	a.renderFields()
	return nil
}

func (a *App) ShowFields(_ context.Context, _ []string) error {
	a.renderFields()
	return nil
}

func (a *App) HeightText() string {
	return a.height.Text()
}

func (a *App) clearFields() {
	a.name.Clear()
	a.weight.Clear()
	a.height.Clear()
}
