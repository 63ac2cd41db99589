package calcapp_test

import (
	"github.com/burenotti/go_imc/internal/app/calcapp"
	"github.com/burenotti/go_imc/internal/domain/bmi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestCalculate(t *testing.T) {
	svc := calcapp.New()

	res, err := svc.Calculate(calcapp.Input{Weight: " 70 ", Height: "1.75"})
	require.NoError(t, err)

	assert.Equal(t, 70.0, res.Weight)
	assert.Equal(t, 1.75, res.Height)
	assert.Equal(t, 22.86, res.BMI)
	assert.Equal(t, "22.86", res.Formatted())
	assert.Equal(t, bmi.Normal, res.Classification)
}

func TestCalculate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		in     calcapp.Input
		fields map[string]string
	}{
		{
			name:   "missing weight",
			in:     calcapp.Input{Weight: "", Height: "1.75"},
			fields: map[string]string{calcapp.FieldWeight: "Peso deve ser informado."},
		},
		{
			name:   "invalid weight",
			in:     calcapp.Input{Weight: "abc", Height: "1.75"},
			fields: map[string]string{calcapp.FieldWeight: "Peso deve ser informado."},
		},
		{
			name:   "missing height",
			in:     calcapp.Input{Weight: "70", Height: ""},
			fields: map[string]string{calcapp.FieldHeight: "Altura deve ser informada."},
		},
		{
			name:   "zero height",
			in:     calcapp.Input{Weight: "70", Height: "0"},
			fields: map[string]string{calcapp.FieldHeight: "Altura não pode ser zero."},
		},
		{
			name:   "formatted zero height",
			in:     calcapp.Input{Weight: "70", Height: "0.00"},
			fields: map[string]string{calcapp.FieldHeight: "Altura não pode ser zero."},
		},
		{
			name:   "not finite",
			in:     calcapp.Input{Weight: "NaN", Height: "Inf"},
			fields: map[string]string{
				calcapp.FieldWeight: "Peso deve ser informado.",
				calcapp.FieldHeight: "Altura deve ser informada.",
			},
		},
	}

	svc := calcapp.New()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Calculate(tc.in)
			require.ErrorIs(t, err, calcapp.ErrInvalidInput)

			var verr *calcapp.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.fields, verr.Fields)
		})
	}
}

func TestCalculate_BoundaryClassification(t *testing.T) {
	svc := calcapp.New()

	// 18.5 * 2 * 2 = 74
	res, err := svc.Calculate(calcapp.Input{Weight: "74", Height: "2"})
	require.NoError(t, err)
	assert.Equal(t, 18.5, res.BMI)
	assert.Equal(t, bmi.Normal, res.Classification)

	// 18.49 * 2 * 2 = 73.96
	res, err = svc.Calculate(calcapp.Input{Weight: "73.96", Height: "2"})
	require.NoError(t, err)
	assert.Equal(t, 18.49, res.BMI)
	assert.Equal(t, bmi.Underweight, res.Classification)
}
