package history

import (
	"github.com/burenotti/go_imc/internal/domain"
	"github.com/burenotti/go_imc/internal/domain/record"
	"github.com/samber/lo"
	"time"
)

const (
	EventAppended = "history.appended"
	EventCleared  = "history.cleared"
	EventLoaded   = "history.loaded"

	DisplayLimit = 5
)

// History is the ordered list of records of the current session. Insertion
// order is chronological order.
type History struct {
	domain.Aggregate
	records []record.Record
}

func New() *History {
	return &History{}
}

func (h *History) Append(r record.Record) {
	h.records = append(h.records, r)
	h.PushEvent(AppendedEvent{
		At:     time.Now().UTC(),
		Record: r,
		Len:    len(h.records),
	})
}

func (h *History) Clear() {
	removed := len(h.records)
	h.records = nil
	h.PushEvent(ClearedEvent{
		At:      time.Now().UTC(),
		Removed: removed,
	})
}

// Replace drops the current records and rebuilds the list from rs.
func (h *History) Replace(rs []record.Record) {
	h.records = append([]record.Record(nil), rs...)
	h.PushEvent(LoadedEvent{
		At:  time.Now().UTC(),
		Len: len(h.records),
	})
}

func (h *History) Len() int {
	return len(h.records)
}

func (h *History) IsEmpty() bool {
	return len(h.records) == 0
}

// Records returns a copy of the list in insertion order.
func (h *History) Records() []record.Record {
	return append([]record.Record(nil), h.records...)
}

// Recent returns at most limit records, most recent first.
func (h *History) Recent(limit int) []record.Record {
	if limit <= 0 || len(h.records) == 0 {
		return []record.Record{}
	}
	tail := lo.Subset(h.records, -limit, uint(limit))
	return lo.Reverse(append([]record.Record(nil), tail...))
}

type AppendedEvent struct {
	At     time.Time
	Record record.Record
	Len    int
}

func (e AppendedEvent) Type() string {
	return EventAppended
}

func (e AppendedEvent) PublishedAt() time.Time {
	return e.At
}

type ClearedEvent struct {
	At      time.Time
	Removed int
}

func (e ClearedEvent) Type() string {
	return EventCleared
}

func (e ClearedEvent) PublishedAt() time.Time {
	return e.At
}

type LoadedEvent struct {
	At  time.Time
	Len int
}

func (e LoadedEvent) Type() string {
	return EventLoaded
}

func (e LoadedEvent) PublishedAt() time.Time {
	return e.At
}
