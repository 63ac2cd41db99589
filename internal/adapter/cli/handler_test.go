package cli_test

import (
	"bytes"
	"context"
	"github.com/burenotti/go_imc/internal/adapter/cli"
	"github.com/burenotti/go_imc/internal/adapter/storage"
	"github.com/burenotti/go_imc/internal/app/historyapp"
	"github.com/burenotti/go_imc/internal/app/messagebus"
	"github.com/burenotti/go_imc/internal/app/screen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"
)

type mockSharer struct {
	calls int
}

func (m *mockSharer) ShareFile(context.Context, string, string, string) error {
	m.calls++
	return nil
}

type testApp struct {
	app        *cli.App
	out        *bytes.Buffer
	store      *historyapp.Store
	sharer     *mockSharer
	controller *screen.Controller
}

func newTestApp(t *testing.T, input string) *testApp {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := historyapp.NewStore(
		storage.NewFile(t.TempDir(), "historico_imc.json"),
		messagebus.New(logger),
		logger,
		"Histórico de IMC",
	)
	sharer := &mockSharer{}
	controller := screen.NewController(
		screen.Logger(logger),
		screen.Store(store),
		screen.Sharer(sharer),
	)
	controller.Start(context.Background())

	out := &bytes.Buffer{}
	app := cli.NewApp(
		cli.Logger(logger),
		cli.Screen(controller),
		cli.Input(strings.NewReader(input)),
		cli.Output(out),
	)
	return &testApp{app: app, out: out, store: store, sharer: sharer, controller: controller}
}

func TestTextField_HeightFormatting(t *testing.T) {
	tests := []struct {
		name string
		keys string
		want string
	}{
		{name: "typical", keys: "165", want: "1.65"},
		{name: "single digit", keys: "1", want: "1"},
		{name: "leading zero", keys: "050", want: "0.50"},
		{name: "invalid lead", keys: "9", want: ""},
		{name: "too many digits", keys: "12345", want: "1.23"},
		{name: "letters ignored", keys: "1a7x2", want: "1.72"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t, "")
			require.NoError(t, ta.app.Exec(context.Background(), []string{"height", tt.keys}))
			assert.Equal(t, tt.want, ta.app.HeightText())
		})
	}
}

func TestTextField_Backspace(t *testing.T) {
	ta := newTestApp(t, "")
	ctx := context.Background()
	require.NoError(t, ta.app.Exec(ctx, []string{"height", "175"}))
	require.NoError(t, ta.app.Exec(ctx, []string{"height-del"}))
	assert.Equal(t, "1.7", ta.app.HeightText())
	require.NoError(t, ta.app.Exec(ctx, []string{"height-del"}))
	assert.Equal(t, "1", ta.app.HeightText(), "dot is dropped with its digit")
}

func TestTextField_Cursor(t *testing.T) {
	f := cli.NewTextField()
	f.SetText("abc")
	f.SetSelection(10)
	assert.Equal(t, 3, f.Cursor())
	f.SetSelection(-1)
	assert.Equal(t, 0, f.Cursor())
	f.Type('x')
	assert.Equal(t, "xabc", f.Text())
	assert.Equal(t, 1, f.Cursor())
}

func TestCalc(t *testing.T) {
	ta := newTestApp(t, "")

	require.NoError(t, ta.app.Exec(context.Background(), []string{"calc", "70", "175", "Ana", "Maria"}))

	assert.Contains(t, ta.out.String(), "IMC: 22.86 (Peso normal)")
	assert.Contains(t, ta.out.String(), "Ana Maria")
	assert.Equal(t, 1, ta.store.Len())
	assert.Equal(t, 1.75, ta.store.Records()[0].Height)
}

func TestCalc_FromFields(t *testing.T) {
	ta := newTestApp(t, "")
	ctx := context.Background()
	require.NoError(t, ta.app.Exec(ctx, []string{"weight", "50"}))
	require.NoError(t, ta.app.Exec(ctx, []string{"height", "160"}))

	require.NoError(t, ta.app.Exec(ctx, []string{"calc"}))

	assert.Contains(t, ta.out.String(), "IMC: 19.53 (Peso normal)")
	assert.Equal(t, "Anônimo", ta.store.Records()[0].Name)
}

func TestCalc_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("missing fields", func(t *testing.T) {
		ta := newTestApp(t, "")
		err := ta.app.RunArgs(ctx, []string{"calc"})
		require.Error(t, err)
		assert.Contains(t, ta.out.String(), "Peso deve ser informado.")
		assert.Contains(t, ta.out.String(), "Altura deve ser informada.")
		assert.Zero(t, ta.store.Len())
	})

	t.Run("zero height", func(t *testing.T) {
		ta := newTestApp(t, "")
		err := ta.app.RunArgs(ctx, []string{"calc", "70", "0"})
		require.Error(t, err)
		assert.Contains(t, ta.out.String(), "Altura não pode ser zero.")
		assert.Zero(t, ta.store.Len())
	})

	t.Run("single arg", func(t *testing.T) {
		ta := newTestApp(t, "")
		err := ta.app.Exec(ctx, []string{"calc", "70"})
		require.ErrorIs(t, err, cli.ErrBadRequest)
	})
}

func TestExec_UnknownCommand(t *testing.T) {
	ta := newTestApp(t, "")
	err := ta.app.Exec(context.Background(), []string{"dance"})
	require.ErrorIs(t, err, cli.ErrUnknownCommand)
}

func TestRun_Script(t *testing.T) {
	script := strings.Join([]string{
		"calc 70 175 Ana",
		"calc 90 180 Bruno",
		"",
		"clear",
		"export",
		"hold-clear",
		"export",
		"bogus",
		"quit",
		"calc 60 160",
	}, "\n")
	ta := newTestApp(t, script)

	require.NoError(t, ta.app.Run(context.Background()))

	out := ta.out.String()
	assert.Contains(t, out, "IMC: 27.78 (Sobrepeso)")
	assert.Contains(t, out, screen.MsgHoldToClear)
	assert.Contains(t, out, screen.MsgShared)
	assert.Contains(t, out, screen.MsgCleared)
	assert.Contains(t, out, screen.MsgNothingShare)
	assert.Contains(t, out, screen.MsgNoRecords)
	assert.Contains(t, out, "unknown command: bogus")
	assert.Equal(t, 1, ta.sharer.calls)
	assert.Zero(t, ta.store.Len(), "commands after quit are not run")

	_, err := os.Stat(ta.store.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestRun_StopsOnCancel(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ta := newTestApp(t, "")
	ta.app = cli.NewApp(
		cli.Logger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		cli.Screen(ta.controller),
		cli.Input(pr),
		cli.Output(ta.out),
	)

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() {
		result <- ta.app.Run(ctx)
	}()

	_, err := pw.Write([]byte("calc 70 175\n"))
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		_, err := os.Stat(ta.store.Path())
		return err == nil
	}, time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-result:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after the context was canceled")
	}
	assert.Equal(t, 1, ta.store.Len())
}

func TestRun_EOF(t *testing.T) {
	ta := newTestApp(t, "help\n")
	require.NoError(t, ta.app.Run(context.Background()))
	assert.Contains(t, ta.out.String(), "hold-clear")
}
