package dripsdk_test

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dripsdk "github.com/dcaf-labs/drip-sdk"
	drip "github.com/dcaf-labs/drip-sdk/generated/drip"
	"github.com/dcaf-labs/drip-sdk/types"
)

func validProtoConfigParams() types.InitVaultProtoConfigParams {
	return types.InitVaultProtoConfigParams{
		Granularity:             types.Daily,
		TokenADripTriggerSpread: 50,
		TokenBWithdrawalSpread:  10,
		Admin:                   solana.NewWallet().PublicKey(),
		Creator:                 solana.NewWallet().PublicKey(),
	}
}

func TestGetInitVaultProtoConfigPreview(t *testing.T) {
	dripInstance := dripsdk.NewDrip(nil)

	t.Run("generates a fresh keypair per preview", func(t *testing.T) {
		param := validProtoConfigParams()

		first, err := dripInstance.GetInitVaultProtoConfigPreview(param)
		require.NoError(t, err)
		second, err := dripInstance.GetInitVaultProtoConfigPreview(param)
		require.NoError(t, err)

		assert.False(t, first.VaultProtoConfigKeypair.PublicKey().IsZero())
		assert.NotEqual(t,
			first.VaultProtoConfigKeypair.PublicKey(),
			second.VaultProtoConfigKeypair.PublicKey(),
		)
		assert.Equal(t, param, first.InitVaultProtoConfigParams)
	})

	t.Run("rejects zero granularity", func(t *testing.T) {
		param := validProtoConfigParams()
		param.Granularity = 0

		_, err := dripInstance.GetInitVaultProtoConfigPreview(param)
		assert.ErrorIs(t, err, dripsdk.ErrZeroGranularity)
	})

	t.Run("rejects spreads at or above the bound", func(t *testing.T) {
		param := validProtoConfigParams()
		param.TokenADripTriggerSpread = 5_000

		_, err := dripInstance.GetInitVaultProtoConfigPreview(param)
		assert.ErrorIs(t, err, dripsdk.ErrSpreadTooLarge)

		param = validProtoConfigParams()
		param.TokenBWithdrawalSpread = 9_999

		_, err = dripInstance.GetInitVaultProtoConfigPreview(param)
		assert.ErrorIs(t, err, dripsdk.ErrSpreadTooLarge)
	})
}

func TestInitVaultProtoConfig(t *testing.T) {
	dripInstance := dripsdk.NewDrip(nil)

	param := validProtoConfigParams()
	result, err := dripInstance.InitVaultProtoConfig(param)
	require.NoError(t, err)

	require.Len(t, result.Ixns, 1)
	assert.Equal(t, result.VaultProtoConfigKeypair.PublicKey(), result.VaultProtoConfig)

	ix := result.Ixns[0]
	assert.Equal(t, dripsdk.DripProgramId, ix.ProgramID())

	accounts := ix.Accounts()
	require.Len(t, accounts, 3)

	// proto config account is created with the previewed keypair and must co-sign
	assert.Equal(t, result.VaultProtoConfig, accounts[0].PublicKey)
	assert.True(t, accounts[0].IsSigner)
	assert.True(t, accounts[0].IsWritable)

	assert.Equal(t, param.Creator, accounts[1].PublicKey)
	assert.True(t, accounts[1].IsSigner)

	assert.Equal(t, solana.SystemProgramID, accounts[2].PublicKey)

	t.Run("instruction data round trips through the generated decoder", func(t *testing.T) {
		data, err := ix.Data()
		require.NoError(t, err)
		assert.Equal(t, drip.Instruction_InitVaultProtoConfig.Bytes(), data[:8])

		decoded, err := drip.DecodeInstruction(accounts, data)
		require.NoError(t, err)

		impl, ok := decoded.Impl.(*drip.InitVaultProtoConfig)
		require.True(t, ok)
		assert.Equal(t, param.Granularity.Seconds(), impl.Params.Granularity)
		assert.Equal(t, param.TokenADripTriggerSpread, impl.Params.TokenADripTriggerSpread)
		assert.Equal(t, param.TokenBWithdrawalSpread, impl.Params.TokenBWithdrawalSpread)
		assert.Equal(t, param.Admin, impl.Params.Admin)
	})
}

func validInitVaultPreview() types.InitVaultPreview {
	param := types.InitVaultParams{
		ProtoConfig:    solana.NewWallet().PublicKey(),
		TokenAMint:     solana.NewWallet().PublicKey(),
		TokenBMint:     solana.NewWallet().PublicKey(),
		TreasuryOwner:  solana.NewWallet().PublicKey(),
		MaxSlippageBps: 100,
		Creator:        solana.NewWallet().PublicKey(),
	}

	vault := dripsdk.DeriveVaultAddress(param.TokenAMint, param.TokenBMint, param.ProtoConfig)
	treasury, _, _ := solana.FindAssociatedTokenAddress(param.TreasuryOwner, param.TokenBMint)

	return types.InitVaultPreview{
		InitVaultParams:       param,
		Vault:                 vault,
		TokenAAccount:         dripsdk.DeriveVaultTokenAAddress(vault, param.TokenAMint),
		TokenBAccount:         dripsdk.DeriveVaultTokenBAddress(vault, param.TokenBMint),
		TreasuryTokenBAccount: treasury,
	}
}

func TestInitVaultFromPreview(t *testing.T) {
	dripInstance := dripsdk.NewDrip(nil)

	t.Run("builds the init_vault instruction from a preview", func(t *testing.T) {
		preview := validInitVaultPreview()

		result, err := dripInstance.InitVaultFromPreview(preview)
		require.NoError(t, err)

		require.Len(t, result.Ixns, 1)
		assert.Equal(t, preview.Vault, result.Vault)

		ix := result.Ixns[0]
		assert.Equal(t, dripsdk.DripProgramId, ix.ProgramID())

		accounts := ix.Accounts()
		require.Len(t, accounts, 12)

		assert.Equal(t, preview.Creator, accounts[0].PublicKey)
		assert.True(t, accounts[0].IsSigner)

		assert.Equal(t, preview.Vault, accounts[1].PublicKey)
		assert.True(t, accounts[1].IsWritable)
		assert.False(t, accounts[1].IsSigner)

		assert.Equal(t, preview.ProtoConfig, accounts[2].PublicKey)
		assert.Equal(t, preview.TokenAAccount, accounts[5].PublicKey)
		assert.Equal(t, preview.TokenBAccount, accounts[6].PublicKey)
		assert.Equal(t, preview.TreasuryTokenBAccount, accounts[7].PublicKey)
		assert.Equal(t, solana.SysVarRentPubkey, accounts[11].PublicKey)
	})

	t.Run("setup instructions come first", func(t *testing.T) {
		preview := validInitVaultPreview()
		setupIx := solana.NewInstruction(
			solana.SPLAssociatedTokenAccountProgramID,
			solana.AccountMetaSlice{},
			[]byte{},
		)
		preview.SetupIxns = []solana.Instruction{setupIx}

		result, err := dripInstance.InitVaultFromPreview(preview)
		require.NoError(t, err)

		require.Len(t, result.Ixns, 2)
		assert.Equal(t, solana.SPLAssociatedTokenAccountProgramID, result.Ixns[0].ProgramID())
		assert.Equal(t, dripsdk.DripProgramId, result.Ixns[1].ProgramID())
	})

	t.Run("rejects identical mints", func(t *testing.T) {
		preview := validInitVaultPreview()
		preview.TokenBMint = preview.TokenAMint

		_, err := dripInstance.InitVaultFromPreview(preview)
		assert.ErrorIs(t, err, dripsdk.ErrIdenticalMints)
	})

	t.Run("rejects out-of-range slippage", func(t *testing.T) {
		preview := validInitVaultPreview()
		preview.MaxSlippageBps = 0

		_, err := dripInstance.InitVaultFromPreview(preview)
		assert.ErrorIs(t, err, dripsdk.ErrInvalidSlippage)

		preview = validInitVaultPreview()
		preview.MaxSlippageBps = 10_000

		_, err = dripInstance.InitVaultFromPreview(preview)
		assert.ErrorIs(t, err, dripsdk.ErrInvalidSlippage)
	})

	t.Run("rejects oversized swap whitelist", func(t *testing.T) {
		preview := validInitVaultPreview()
		for range [6]struct{}{} {
			preview.WhitelistedSwaps = append(preview.WhitelistedSwaps, solana.NewWallet().PublicKey())
		}

		_, err := dripInstance.InitVaultFromPreview(preview)
		assert.ErrorIs(t, err, dripsdk.ErrTooManyWhitelistedSwaps)
	})
}
