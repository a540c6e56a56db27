package service

import (
	"math"

	"github.com/younivent/platform/internal/core/domain"
)

// PeriodValue scales a base metric by the coefficient of the selected
// reporting window. Every period in the closed set has a defined multiplier,
// so a valid period never yields an undefined result.
func PeriodValue(base float64, p domain.Period) (float64, error) {
	m, err := p.Multiplier()
	if err != nil {
		return 0, err
	}
	return base * m, nil
}

// PeriodCount scales an integer metric, rounding to the nearest whole number.
func PeriodCount(base int, p domain.Period) (int, error) {
	v, err := PeriodValue(float64(base), p)
	if err != nil {
		return 0, err
	}
	return int(math.Round(v)), nil
}
