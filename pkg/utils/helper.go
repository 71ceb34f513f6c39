package utils

import (
	"math"
	"strconv"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// RoundMoney rounds to two decimals, half away from zero. Used for booking
// totals so duration-to-hours conversion and the final amount round the same
// way.
func RoundMoney(value float64) float64 {
	return math.Round(value*100) / 100
}
