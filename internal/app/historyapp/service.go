package historyapp

import (
	"context"
	"errors"
	"fmt"
	"github.com/burenotti/go_imc/internal/adapter/storage"
	"github.com/burenotti/go_imc/internal/app/unitofwork"
	"github.com/burenotti/go_imc/internal/domain/history"
	"github.com/burenotti/go_imc/internal/domain/record"
	"github.com/r3labs/diff"
	"log/slog"
)

const MimeType = "application/json"

var (
	ErrLoad           = errors.New("history not loaded")
	ErrSave           = errors.New("history not saved")
	ErrDelete         = errors.New("history file not deleted")
	ErrNothingToShare = errors.New("nothing to share")
	ErrShare          = errors.New("history not shared")
)

type Sharer interface {
	ShareFile(ctx context.Context, uri, mimeType, subject string) error
}

// Store keeps the session history and mirrors it to a single JSON file.
// Every mutation rewrites the whole file. Errors are returned to the caller,
// the in-memory history stays authoritative when persisting fails.
type Store struct {
	logger  *slog.Logger
	uow     *unitofwork.UnitOfWork[*AtomicContext]
	uri     string
	path    string
	subject string

	history   *history.History
	persisted []record.Record
	synced    bool
}

func NewStore(file *storage.File, bus unitofwork.MessageBus, logger *slog.Logger, subject string) *Store {
	return &Store{
		logger:  logger,
		uow:     unitofwork.New[*AtomicContext](file, NewAtomicContext, bus, logger),
		uri:     file.URI(),
		path:    file.Path(),
		subject: subject,
		history: history.New(),
	}
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Len() int {
	return s.history.Len()
}

func (s *Store) Records() []record.Record {
	return s.history.Records()
}

func (s *Store) Recent(limit int) []record.Record {
	return s.history.Recent(limit)
}

// Load rebuilds the history from the file. A missing or blank file is an
// empty history. On failure the history is left empty.
func (s *Store) Load(ctx context.Context) error {
	var loaded []record.Record
	err := s.uow.Atomic(ctx, func(ac *AtomicContext) error {
		rs, err := ac.RecordStorage.List(ac.Context())
		if err != nil {
			return err
		}
		s.history.Replace(rs)
		ac.RecordStorage.Track(s.history)
		loaded = rs
		return ac.Commit()
	})
	if err != nil {
		s.history.Replace(nil)
		s.history.PopEvents()
		s.synced = false
		return kindError(ErrLoad, "load history: %w", err)
	}

	s.markSynced(loaded)
	return nil
}

func (s *Store) Save(ctx context.Context) error {
	err := s.uow.Atomic(ctx, func(ac *AtomicContext) error {
		if err := ac.RecordStorage.ReplaceAll(ac.Context(), s.history); err != nil {
			return err
		}
		return ac.Commit()
	})
	if err != nil {
		s.history.PopEvents()
		return kindError(ErrSave, "save history: %w", err)
	}

	s.markSynced(s.history.Records())
	return nil
}

func (s *Store) Append(ctx context.Context, r record.Record) error {
	s.history.Append(r)
	return s.Save(ctx)
}

func (s *Store) Clear(ctx context.Context) error {
	s.history.Clear()
	err := s.uow.Atomic(ctx, func(ac *AtomicContext) error {
		if err := ac.RecordStorage.DeleteAll(ac.Context(), s.history); err != nil {
			return err
		}
		return ac.Commit()
	})
	if err != nil {
		s.history.PopEvents()
		s.synced = false
		return kindError(ErrDelete, "delete history: %w", err)
	}

	s.markSynced(nil)
	return nil
}

// Export writes the current history to the file unless it is already there,
// then hands the file to sharer. An empty history returns ErrNothingToShare
// without calling sharer.
func (s *Store) Export(ctx context.Context, sharer Sharer) error {
	if s.history.IsEmpty() {
		return ErrNothingToShare
	}

	exists, err := s.fileExists(ctx)
	if err != nil {
		return kindError(ErrShare, "stat history: %w", err)
	}

	if !exists || s.stale() {
		if err := s.Save(ctx); err != nil {
			return errors.Join(err, ErrShare)
		}
	}

	if err := sharer.ShareFile(ctx, s.uri, MimeType, s.subject); err != nil {
		return kindError(ErrShare, "share history: %w", err)
	}
	return nil
}

func (s *Store) fileExists(ctx context.Context) (bool, error) {
	var exists bool
	err := s.uow.Atomic(ctx, func(ac *AtomicContext) error {
		var err error
		exists, err = ac.RecordStorage.Exists(ac.Context())
		return err
	})
	return exists, err
}

func (s *Store) stale() bool {
	if !s.synced {
		return true
	}
	changes, err := diff.Diff(s.persisted, s.history.Records())
	if err != nil {
		s.logger.Warn("failed to compare history with saved copy", "error", err)
		return true
	}
	if len(changes) > 0 {
		s.logger.Debug("history differs from saved copy", "changes", len(changes))
		return true
	}
	return false
}

func (s *Store) markSynced(rs []record.Record) {
	s.persisted = append([]record.Record{}, rs...)
	s.synced = true
}

func kindError(kind error, format string, args ...any) error {
	return errors.Join(fmt.Errorf(format, args...), kind)
}
