package coupon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllReturnsFourStableCoupons(t *testing.T) {
	coupons := All()
	require.Len(t, coupons, 4)

	for i, c := range coupons {
		assert.Equal(t, i+1, c.ID)
		assert.NotEmpty(t, c.Code)
		assert.NotEmpty(t, c.Service)
	}

	assert.Equal(t, "STREAM2025", coupons[0].Code)
	assert.Equal(t, "2025-12-31", coupons[0].ExpiryDate)
	assert.Equal(t, "50% off", coupons[1].Discount)
	assert.Equal(t, "$20 off per month for students", coupons[2].Description)
	assert.Equal(t, "Fitness", coupons[3].Category)
}

func TestAllReturnsCopy(t *testing.T) {
	first := All()
	first[0].Code = "HACKED"

	assert.Equal(t, "STREAM2025", All()[0].Code)
}

func TestParseRejectsMalformedCatalog(t *testing.T) {
	_, err := parse([]byte("- id: [not an int"))
	assert.Error(t, err)
}
