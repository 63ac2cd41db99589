package record

import (
	"github.com/burenotti/go_imc/internal/domain/bmi"
	"strings"
	"time"
)

const (
	DateLayout = "02/01/06"
	TimeLayout = "15:04"

	AnonymousName = "Anônimo"
)

// Record is a single calculation result. It is never mutated after New.
type Record struct {
	Name   string  `diff:"name"`
	Date   string  `diff:"date"`
	Time   string  `diff:"time"`
	Weight float64 `diff:"weight"`
	Height float64 `diff:"height"`
	BMI    float64 `diff:"bmi"`
}

func New(name string, weight, height, index float64, at time.Time) (Record, error) {
	if height == 0 {
		return Record{}, bmi.ErrZeroHeight
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = AnonymousName
	}

	return Record{
		Name:   name,
		Date:   at.Format(DateLayout),
		Time:   at.Format(TimeLayout),
		Weight: weight,
		Height: height,
		BMI:    index,
	}, nil
}
