package recordstorage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/burenotti/go_imc/internal/adapter/storage"
	"github.com/burenotti/go_imc/internal/adapter/storage/fileutil"
	"github.com/burenotti/go_imc/internal/domain"
	"github.com/burenotti/go_imc/internal/domain/history"
	"github.com/burenotti/go_imc/internal/domain/record"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

const indent = "    "

var (
	ErrMalformed = errors.New("malformed history file")
)

// recordDTO is the on-disk shape of a record. Pointers tell a missing key
// apart from a zero value.
type recordDTO struct {
	Name   *string  `json:"nome" validate:"required"`
	Date   *string  `json:"data" validate:"required"`
	Time   *string  `json:"hora" validate:"required"`
	Weight *float64 `json:"peso" validate:"required"`
	Height *float64 `json:"altura" validate:"required"`
	BMI    *float64 `json:"imc" validate:"required"`
}

type JSONStorage struct {
	base     *fileutil.BaseFileStorage
	validate *validator.Validate
}

func NewJSONStorage(file storage.FileContext) *JSONStorage {
	return &JSONStorage{
		base:     fileutil.NewBaseFileStorage(file),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *JSONStorage) List(ctx context.Context) ([]record.Record, error) {
	data, err := s.base.File.ReadFile(ctx)
	if err != nil {
		return nil, storage.InternalError(err)
	}
	if fileutil.IsBlank(data) {
		return []record.Record{}, nil
	}

	var items []recordDTO
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, malformed("decode: %w", err)
	}

	result := make([]record.Record, 0, len(items))
	for i := range items {
		if err := s.validate.Struct(&items[i]); err != nil {
			var errs validator.ValidationErrors
			if errors.As(err, &errs) {
				return nil, malformed("item %d: missing %s", i, errs[0].Field())
			}
			return nil, malformed("item %d: %w", i, err)
		}
		result = append(result, fromDTO(items[i]))
	}
	return result, nil
}

func (s *JSONStorage) ReplaceAll(ctx context.Context, h *history.History) error {
	items := lo.Map(h.Records(), func(r record.Record, _ int) recordDTO {
		return toDTO(r)
	})

	data, err := json.MarshalIndent(items, "", indent)
	if err != nil {
		return storage.InternalError(err)
	}

	if err := s.base.File.WriteFile(ctx, data); err != nil {
		return storage.InternalError(err)
	}
	s.base.MarkSeen(h)
	return nil
}

func (s *JSONStorage) DeleteAll(ctx context.Context, h *history.History) error {
	if err := s.base.File.RemoveFile(ctx); err != nil {
		return storage.InternalError(err)
	}
	s.base.MarkSeen(h)
	return nil
}

func (s *JSONStorage) Exists(ctx context.Context) (bool, error) {
	ok, err := s.base.File.Exists(ctx)
	if err != nil {
		return false, storage.InternalError(err)
	}
	return ok, nil
}

// Track marks h as changed by the current unit of work without writing it.
func (s *JSONStorage) Track(h *history.History) {
	s.base.MarkSeen(h)
}

func (s *JSONStorage) CollectEvents() []domain.Event {
	return s.base.CollectEvents()
}

func (s *JSONStorage) Close() error {
	s.base.Close()
	return nil
}

func toDTO(r record.Record) recordDTO {
	return recordDTO{
		Name:   lo.ToPtr(r.Name),
		Date:   lo.ToPtr(r.Date),
		Time:   lo.ToPtr(r.Time),
		Weight: lo.ToPtr(r.Weight),
		Height: lo.ToPtr(r.Height),
		BMI:    lo.ToPtr(r.BMI),
	}
}

func fromDTO(d recordDTO) record.Record {
	return record.Record{
		Name:   *d.Name,
		Date:   *d.Date,
		Time:   *d.Time,
		Weight: *d.Weight,
		Height: *d.Height,
		BMI:    *d.BMI,
	}
}

func malformed(format string, args ...any) error {
	return errors.Join(fmt.Errorf(format, args...), ErrMalformed)
}
