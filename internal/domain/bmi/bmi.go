package bmi

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrZeroHeight = errors.New("height must not be zero")
)

const (
	Underweight = "Abaixo do peso"
	Normal      = "Peso normal"
	Overweight  = "Sobrepeso"
	ObesityI    = "Obesidade grau I"
	ObesityII   = "Obesidade grau II"
	ObesityIII  = "Obesidade grau III"
)

// Calculate expects weight in kilograms and height in meters.
func Calculate(weight, height float64) (float64, error) {
	if height == 0 {
		return 0, ErrZeroHeight
	}
	return weight / (height * height), nil
}

func Round(v float64) float64 {
	return math.Round(v*100) / 100
}

// Classify expects a value already rounded to two decimals, so that the
// class always agrees with what Format shows.
func Classify(v float64) string {
	switch {
	case v < 18.5:
		return Underweight
	case v < 24.9:
		return Normal
	case v < 29.9:
		return Overweight
	case v < 34.9:
		return ObesityI
	case v < 39.9:
		return ObesityII
	default:
		return ObesityIII
	}
}

func Format(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
