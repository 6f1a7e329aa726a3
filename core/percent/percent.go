// percent implements a simple and straightforward type for percentage values
package percent

import (
	"math"
	"strconv"
	"strings"
)

// Percent is a simple and straightforward type for percentage values
type Percent uint8

func FromInt(n int) Percent {
	switch {
	case n <= 0:
		return Percent(0)
	case n >= 100:
		return Percent(100)
	}
	return Percent(n)
}

func FromFloat(f float64) Percent {
	switch {
	case f <= 0 || math.IsNaN(f) || math.IsInf(f, -1):
		return Percent(0)
	case f >= 100 || math.IsInf(f, 1):
		return Percent(100)
	}
	return Percent(math.Round(f))
}

// FromFraction converts a relative value in the range 0…1 to a percentage.
// Values outside that range are clamped. Useful for callers which carry
// relative sizes as fractions, e.g. column width hints.
func FromFraction(f float64) Percent {
	return FromFloat(f * 100)
}

func FromString(s string) (Percent, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "%")
	n, err := strconv.Atoi(s)
	return Percent(n), err
}

// Fraction returns p as a relative value in the range 0…1.
func (p Percent) Fraction() float64 {
	return float64(p) / 100
}

// IsNone is true for a zero percentage, which callers usually treat as
// "no value given".
func (p Percent) IsNone() bool {
	return p == 0
}

func (p Percent) String() string {
	return strconv.Itoa(int(p)) + "%"
}
