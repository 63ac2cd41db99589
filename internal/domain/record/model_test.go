package record_test

import (
	"github.com/burenotti/go_imc/internal/domain/bmi"
	"github.com/burenotti/go_imc/internal/domain/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	at := time.Date(2026, time.March, 7, 9, 5, 0, 0, time.Local)

	r, err := record.New("  Ana  ", 70, 1.75, 22.86, at)
	require.NoError(t, err)

	assert.Equal(t, record.Record{
		Name:   "Ana",
		Date:   "07/03/26",
		Time:   "09:05",
		Weight: 70,
		Height: 1.75,
		BMI:    22.86,
	}, r)
}

func TestNew_AnonymousName(t *testing.T) {
	r, err := record.New(" ", 70, 1.75, 22.86, time.Now())
	require.NoError(t, err)
	assert.Equal(t, record.AnonymousName, r.Name)
}

func TestNew_ZeroHeight(t *testing.T) {
	_, err := record.New("Ana", 70, 0, 0, time.Now())
	require.ErrorIs(t, err, bmi.ErrZeroHeight)
}

func TestNew_TwentyFourHourClock(t *testing.T) {
	at := time.Date(2025, time.December, 31, 23, 59, 0, 0, time.UTC)
	r, err := record.New("Ana", 70, 1.75, 22.86, at)
	require.NoError(t, err)
	assert.Equal(t, "31/12/25", r.Date)
	assert.Equal(t, "23:59", r.Time)
}
