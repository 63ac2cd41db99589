package calcapp

import (
	"errors"
	"github.com/burenotti/go_imc/internal/domain/bmi"
	"github.com/go-playground/validator/v10"
	"math"
	"sort"
	"strconv"
	"strings"
)

const (
	FieldWeight = "weight"
	FieldHeight = "height"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// messages maps a field and the failed validation tag to the text shown
// next to that field.
var messages = map[string]map[string]string{
	FieldWeight: {
		"required": "Peso deve ser informado.",
	},
	FieldHeight: {
		"required": "Altura deve ser informada.",
		"ne":       "Altura não pode ser zero.",
	},
}

type Input struct {
	Weight string
	Height string
}

type measurement struct {
	Weight *float64 `validate:"required"`
	Height *float64 `validate:"required,ne=0"`
}

type Result struct {
	Weight         float64
	Height         float64
	BMI            float64
	Classification string
}

func (r Result) Formatted() string {
	return bmi.Format(r.BMI)
}

// ValidationError holds one message per offending field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

func (e *ValidationError) Field(name string) string {
	return e.Fields[name]
}

type Service struct {
	validate *validator.Validate
}

func New() *Service {
	return &Service{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Calculate parses and validates the raw field contents and returns the
// rounded BMI with its classification.
func (s *Service) Calculate(in Input) (Result, error) {
	m := measurement{
		Weight: parseNumber(in.Weight),
		Height: parseNumber(in.Height),
	}

	if err := s.validate.Struct(&m); err != nil {
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) {
			return Result{}, err
		}
		return Result{}, toValidationError(errs)
	}

	raw, err := bmi.Calculate(*m.Weight, *m.Height)
	if err != nil {
		return Result{}, &ValidationError{Fields: map[string]string{
			FieldHeight: messages[FieldHeight]["ne"],
		}}
	}

	rounded := bmi.Round(raw)
	return Result{
		Weight:         *m.Weight,
		Height:         *m.Height,
		BMI:            rounded,
		Classification: bmi.Classify(rounded),
	}, nil
}

func toValidationError(errs validator.ValidationErrors) *ValidationError {
	out := &ValidationError{Fields: make(map[string]string, len(errs))}
	for _, fe := range errs {
		field := strings.ToLower(fe.Field())
		if _, seen := out.Fields[field]; seen {
			continue
		}
		msg, ok := messages[field][fe.Tag()]
		if !ok {
			msg = fe.Error()
		}
		out.Fields[field] = msg
	}
	return out
}

// parseNumber returns nil for anything that is not a finite number.
func parseNumber(s string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
