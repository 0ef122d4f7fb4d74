package rates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/suorite/suorite/pkg/entry"
)

func TestRateFor(t *testing.T) {
	assert.Equal(t, 1.74, RateFor(100, entry.CategoryNormal, DefaultWarehouse))
	assert.Equal(t, 1.86, RateFor(100, entry.CategoryForklift, DefaultWarehouse))
}

func TestRateFor_RoundsBeforeLookup(t *testing.T) {
	assert.Equal(t, 1.74, RateFor(100.4, entry.CategoryNormal, DefaultWarehouse))
	assert.Equal(t, 1.79, RateFor(100.6, entry.CategoryNormal, DefaultWarehouse))
}

func TestRateFor_ClampsToTableBounds(t *testing.T) {
	// above the maximum pays the 150% rate
	assert.Equal(t, RateFor(150, entry.CategoryNormal, DefaultWarehouse),
		RateFor(200, entry.CategoryNormal, DefaultWarehouse))
	// below the minimum pays the 94% rate
	assert.Equal(t, RateFor(94, entry.CategoryNormal, DefaultWarehouse),
		RateFor(50, entry.CategoryNormal, DefaultWarehouse))
}

func TestRateFor_UnknownWarehouseIsNotPriced(t *testing.T) {
	assert.Equal(t, 0.0, RateFor(100, entry.CategoryNormal, "oulu"))
}

func TestRateFor_UnknownCategoryIsNotPriced(t *testing.T) {
	assert.Equal(t, 0.0, RateFor(100, entry.Category("crane"), DefaultWarehouse))
}

func TestRatesAreMonotone(t *testing.T) {
	for _, category := range []entry.Category{entry.CategoryNormal, entry.CategoryForklift} {
		previous := 0.0
		for p := 94; p <= 150; p++ {
			rate := RateFor(float64(p), category, DefaultWarehouse)
			assert.Greater(t, rate, previous, "rate at %d%% for %s", p, category)
			previous = rate
		}
	}
}
