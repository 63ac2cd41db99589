package historyapp

import (
	"context"
	"errors"
	"fmt"
	"github.com/burenotti/go_imc/internal/adapter/storage"
	recordstorage "github.com/burenotti/go_imc/internal/adapter/storage/records"
	"github.com/burenotti/go_imc/internal/domain"
	"github.com/burenotti/go_imc/internal/domain/history"
	"github.com/burenotti/go_imc/internal/domain/record"
)

type RecordStorage interface {
	List(ctx context.Context) ([]record.Record, error)
	ReplaceAll(ctx context.Context, h *history.History) error
	DeleteAll(ctx context.Context, h *history.History) error
	Exists(ctx context.Context) (bool, error)
	Track(h *history.History)
	CollectEvents() []domain.Event
	Close() error
}

type AtomicContext struct {
	ctx           context.Context
	file          storage.FileContext
	RecordStorage RecordStorage
}

func (a *AtomicContext) Context() context.Context {
	return a.ctx
}

func (a *AtomicContext) Commit() error {
	return a.file.Commit()
}

func (a *AtomicContext) Close() (err error) {
	if closeErr := a.RecordStorage.Close(); closeErr != nil {
		err = errors.Join(err, closeErr)
	}

	if err != nil {
		err = errors.Join(fmt.Errorf("failed to close storage"), err)
	}

	return err
}

func (a *AtomicContext) CollectEvents() []domain.Event {
	return a.RecordStorage.CollectEvents()
}

func NewAtomicContext(ctx context.Context, file storage.FileContext) (*AtomicContext, error) {
	return &AtomicContext{
		ctx:           ctx,
		file:          file,
		RecordStorage: recordstorage.NewJSONStorage(file),
	}, nil
}
