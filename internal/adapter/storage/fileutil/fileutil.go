package fileutil

import (
	"bytes"
	"github.com/burenotti/go_imc/internal/adapter/storage"
	"github.com/burenotti/go_imc/internal/domain"
	"github.com/burenotti/go_imc/internal/domain/history"
	"sync"
)

type BaseFileStorage struct {
	File   storage.FileContext
	seenMu sync.Mutex
	seen   map[*history.History]struct{}
}

func NewBaseFileStorage(file storage.FileContext) *BaseFileStorage {
	return &BaseFileStorage{
		File: file,
		seen: make(map[*history.History]struct{}),
	}
}

func (s *BaseFileStorage) CollectEvents() []domain.Event {
	s.seenMu.Lock()
	defer s.seenMu.Unlock()

	var events []domain.Event
	for h := range s.seen {
		events = append(events, h.PopEvents()...)
	}
	s.seen = make(map[*history.History]struct{})
	return events
}

// Close forgets seen histories without popping their events.
func (s *BaseFileStorage) Close() {
	s.seenMu.Lock()
	s.seen = make(map[*history.History]struct{})
	s.seenMu.Unlock()
}

func (s *BaseFileStorage) MarkSeen(h *history.History) {
	s.seenMu.Lock()
	s.seen[h] = struct{}{}
	s.seenMu.Unlock()
}

func IsBlank(data []byte) bool {
	return len(bytes.TrimSpace(data)) == 0
}
