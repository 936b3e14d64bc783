package helpers_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dcaf-labs/drip-sdk/helpers"
)

func TestGetAmountWithSpread(t *testing.T) {
	amount := big.NewInt(100_000)

	assert.Equal(t, big.NewInt(99_500), helpers.GetAmountWithSpread(amount, 50))
	assert.Equal(t, big.NewInt(100_000), helpers.GetAmountWithSpread(amount, 0))
	assert.Equal(t, big.NewInt(50_000), helpers.GetAmountWithSpread(amount, 5_000))
}

func TestGetSpreadAmount(t *testing.T) {
	amount := big.NewInt(100_000)

	spread := helpers.GetSpreadAmount(amount, 50)
	remaining := helpers.GetAmountWithSpread(amount, 50)

	assert.Equal(t, big.NewInt(500), spread)
	assert.Equal(t, amount, new(big.Int).Add(spread, remaining))
}
