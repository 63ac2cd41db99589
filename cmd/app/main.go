package main

import (
	"context"
	"flag"
	"github.com/burenotti/go_imc/internal/adapter/beep"
	"github.com/burenotti/go_imc/internal/adapter/cli"
	"github.com/burenotti/go_imc/internal/adapter/share"
	"github.com/burenotti/go_imc/internal/adapter/storage"
	"github.com/burenotti/go_imc/internal/app/historyapp"
	"github.com/burenotti/go_imc/internal/app/messagebus"
	"github.com/burenotti/go_imc/internal/app/screen"
	"github.com/burenotti/go_imc/internal/config"
	"github.com/burenotti/go_imc/internal/domain"
	"github.com/burenotti/go_imc/internal/domain/history"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	flag.StringVar(&configPath, "config", "config/config.yaml", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)
	logger := initLogger(cfg)

	bus := messagebus.New(logger)
	bus.Register(history.EventAppended, func(event domain.Event) error {
		e := event.(history.AppendedEvent)
		logger.Info("measurement recorded", "name", e.Record.Name, "bmi", e.Record.BMI, "records", e.Len)
		return nil
	})
	bus.Register(history.EventCleared, func(event domain.Event) error {
		logger.Info("history cleared", "removed", event.(history.ClearedEvent).Removed)
		return nil
	})
	bus.Register(history.EventLoaded, func(event domain.Event) error {
		logger.Debug("history loaded", "records", event.(history.LoadedEvent).Len)
		return nil
	})

	file := storage.NewFile(cfg.Storage.Dir, cfg.Storage.FileName)
	store := historyapp.NewStore(file, bus, logger, cfg.Share.Subject)

	opts := []screen.Option{
		screen.Logger(logger),
		screen.Store(store),
		screen.Sharer(share.NewOutbox(cfg.Share.Dir, logger)),
		screen.DisplayLimit(cfg.Display.Limit),
	}
	if !cfg.Beep.Mute {
		opts = append(opts, screen.WithBeeper(beep.Open(os.Stdout, logger)))
	}
	controller := screen.NewController(opts...)
	defer controller.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	controller.Start(ctx)

	app := cli.NewApp(
		cli.Logger(logger),
		cli.Screen(controller),
	)

	if args := flag.Args(); len(args) > 0 {
		if err := app.RunArgs(ctx, args); err != nil {
			return 1
		}
		return 0
	}

	if err := app.Run(ctx); err != nil {
		logger.Error("input closed with unexpected error", "error", err)
		return 1
	}
	return 0
}

func initLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler
	switch cfg.App.Env {
	case config.Development:
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			AddSource: true,
			Level:     slog.LevelDebug,
		})
	case config.Production:
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			AddSource: false,
			Level:     slog.LevelInfo,
		})
	default:
		panic("invalid env")
	}

	return slog.New(handler)
}
