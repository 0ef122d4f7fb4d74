package rates

import (
	"github.com/suorite/suorite/pkg/calc"
	"github.com/suorite/suorite/pkg/entry"
)

// DefaultWarehouse is the only site with negotiated tables so far.
const DefaultWarehouse = "vantaa"

const (
	tableMin = 94
	tableMax = 150
)

// Hand-authored pay scale: euro per hour by rounded performance percentage.
// The schedule is piecewise, the step widens above 130%.
var normalRates = map[int]float64{
	94: 1.44, 95: 1.49, 96: 1.54, 97: 1.59, 98: 1.64, 99: 1.69,
	100: 1.74, 101: 1.79, 102: 1.84, 103: 1.89, 104: 1.94, 105: 1.99,
	106: 2.04, 107: 2.09, 108: 2.14, 109: 2.19, 110: 2.24, 111: 2.29,
	112: 2.34, 113: 2.39, 114: 2.44, 115: 2.49, 116: 2.54, 117: 2.59,
	118: 2.64, 119: 2.69, 120: 2.74, 121: 2.79, 122: 2.84, 123: 2.89,
	124: 2.94, 125: 2.99, 126: 3.04, 127: 3.09, 128: 3.14, 129: 3.19,
	130: 3.24, 131: 3.30, 132: 3.36, 133: 3.42, 134: 3.48, 135: 3.54,
	136: 3.60, 137: 3.66, 138: 3.72, 139: 3.78, 140: 3.84, 141: 3.90,
	142: 3.96, 143: 4.02, 144: 4.08, 145: 4.14, 146: 4.20, 147: 4.26,
	148: 4.32, 149: 4.38, 150: 4.44,
}

var forkliftRates = map[int]float64{
	94: 1.56, 95: 1.61, 96: 1.66, 97: 1.71, 98: 1.76, 99: 1.81,
	100: 1.86, 101: 1.91, 102: 1.96, 103: 2.01, 104: 2.06, 105: 2.11,
	106: 2.16, 107: 2.21, 108: 2.26, 109: 2.31, 110: 2.36, 111: 2.41,
	112: 2.46, 113: 2.51, 114: 2.56, 115: 2.61, 116: 2.66, 117: 2.71,
	118: 2.76, 119: 2.81, 120: 2.86, 121: 2.91, 122: 2.96, 123: 3.01,
	124: 3.06, 125: 3.11, 126: 3.16, 127: 3.21, 128: 3.26, 129: 3.31,
	130: 3.36, 131: 3.42, 132: 3.48, 133: 3.54, 134: 3.60, 135: 3.66,
	136: 3.72, 137: 3.78, 138: 3.84, 139: 3.90, 140: 3.96, 141: 4.02,
	142: 4.08, 143: 4.14, 144: 4.20, 145: 4.26, 146: 4.32, 147: 4.38,
	148: 4.44, 149: 4.50, 150: 4.56,
}

// RateFor returns the hourly piece-rate wage for a performance percentage.
// The percentage is rounded to the nearest integer, values outside the table
// clamp to its boundaries. An unknown warehouse or category yields 0, which
// means "not priced", not an error.
func RateFor(percent float64, category entry.Category, warehouse string) float64 {
	if warehouse != DefaultWarehouse {
		return 0
	}

	var table map[int]float64
	switch category {
	case entry.CategoryNormal:
		table = normalRates
	case entry.CategoryForklift:
		table = forkliftRates
	default:
		return 0
	}

	key := calc.RoundHalfUp(percent)
	if key < tableMin {
		key = tableMin
	}
	if key > tableMax {
		key = tableMax
	}
	return table[key]
}
