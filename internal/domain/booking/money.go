package booking

import (
	"errors"
	"math"
)

var ErrInvalidAmount = errors.New("amount must be a positive number of minor currency units")

// maxMinorAmount keeps major→minor conversion inside float64's exact integer range.
const maxMinorAmount = 1 << 53

// minorTolerance absorbs binary float noise such as 0.1+0.2; anything further
// from a whole minor unit is a fractional paisa.
const minorTolerance = 1e-6

// Money is an amount in minor currency units (paise for INR).
type Money struct {
	minor int64
}

func NewMoney(minor int64) (Money, error) {
	if minor < 0 {
		return Money{}, ErrInvalidAmount
	}
	return Money{minor: minor}, nil
}

// MoneyFromMajor converts a major-unit amount such as 10000.50 into minor units.
// The result must be strictly positive and a whole number of minor units.
func MoneyFromMajor(major float64) (Money, error) {
	if math.IsNaN(major) || math.IsInf(major, 0) {
		return Money{}, ErrInvalidAmount
	}
	scaled := major * 100
	minor := math.Round(scaled)
	if math.Abs(scaled-minor) > minorTolerance*math.Max(1, math.Abs(scaled)/1e6) {
		return Money{}, ErrInvalidAmount
	}
	if minor <= 0 || minor > maxMinorAmount {
		return Money{}, ErrInvalidAmount
	}
	return Money{minor: int64(minor)}, nil
}

func (m Money) Minor() int64 {
	return m.minor
}

func (m Money) Major() float64 {
	return float64(m.minor) / 100
}

func (m Money) IsZero() bool {
	return m.minor == 0
}

func (m Money) Sub(o Money) Money {
	return Money{minor: m.minor - o.minor}
}
