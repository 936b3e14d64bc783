package dripsdk_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"

	dripsdk "github.com/dcaf-labs/drip-sdk"
)

func TestDeriveVaultAddress(t *testing.T) {
	tokenAMint := solana.NewWallet().PublicKey()
	tokenBMint := solana.NewWallet().PublicKey()
	protoConfig := solana.NewWallet().PublicKey()

	vault := dripsdk.DeriveVaultAddress(tokenAMint, tokenBMint, protoConfig)
	assert.False(t, vault.IsZero())

	t.Run("same seeds, same address", func(t *testing.T) {
		again := dripsdk.DeriveVaultAddress(tokenAMint, tokenBMint, protoConfig)
		assert.Equal(t, vault, again)
	})

	t.Run("any seed change yields a different address", func(t *testing.T) {
		other := solana.NewWallet().PublicKey()

		assert.NotEqual(t, vault, dripsdk.DeriveVaultAddress(other, tokenBMint, protoConfig))
		assert.NotEqual(t, vault, dripsdk.DeriveVaultAddress(tokenAMint, other, protoConfig))
		assert.NotEqual(t, vault, dripsdk.DeriveVaultAddress(tokenAMint, tokenBMint, other))
	})

	t.Run("mint order matters", func(t *testing.T) {
		swapped := dripsdk.DeriveVaultAddress(tokenBMint, tokenAMint, protoConfig)
		assert.NotEqual(t, vault, swapped)
	})
}

func TestDeriveVaultPeriodAddress(t *testing.T) {
	vault := solana.NewWallet().PublicKey()

	period0 := dripsdk.DeriveVaultPeriodAddress(vault, 0)
	period1 := dripsdk.DeriveVaultPeriodAddress(vault, 1)

	assert.False(t, period0.IsZero())
	assert.NotEqual(t, period0, period1)
	assert.Equal(t, period0, dripsdk.DeriveVaultPeriodAddress(vault, 0))

	t.Run("period id is seeded as a decimal string", func(t *testing.T) {
		// 10 must not collide with 1 followed by 0.
		period10 := dripsdk.DeriveVaultPeriodAddress(vault, 10)
		assert.NotEqual(t, period1, period10)
	})
}

func TestDeriveVaultTokenAddresses(t *testing.T) {
	vault := solana.NewWallet().PublicKey()
	tokenAMint := solana.NewWallet().PublicKey()
	tokenBMint := solana.NewWallet().PublicKey()

	tokenAAccount := dripsdk.DeriveVaultTokenAAddress(vault, tokenAMint)
	tokenBAccount := dripsdk.DeriveVaultTokenBAddress(vault, tokenBMint)

	expectedA, _, err := solana.FindAssociatedTokenAddress(vault, tokenAMint)
	assert.NoError(t, err)
	expectedB, _, err := solana.FindAssociatedTokenAddress(vault, tokenBMint)
	assert.NoError(t, err)

	assert.Equal(t, expectedA, tokenAAccount)
	assert.Equal(t, expectedB, tokenBAccount)
	assert.NotEqual(t, tokenAAccount, tokenBAccount)
}
