package dripsdk_test

import (
	"context"
	"os"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/gagliardetto/solana-go/rpc/ws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dripsdk "github.com/dcaf-labs/drip-sdk"
	testUtils "github.com/dcaf-labs/drip-sdk/internal/test/utils"
	"github.com/dcaf-labs/drip-sdk/types"
)

func TestDripLocalnet(t *testing.T) {
	if os.Getenv(testUtils.LocalnetEnvVar) == "" {
		t.Skipf("set %s to run against a local validator with the Drip program deployed", testUtils.LocalnetEnvVar)
	}

	ctx := context.Background()

	conn := rpc.New(testUtils.SurfPoolRPCClient)
	wsClient, err := ws.Connect(ctx, testUtils.SurfPoolWSClient)
	if err != nil {
		t.Fatalf("err creating ws client: %s", err.Error())
	}

	t.Cleanup(func() {
		conn.Close()
		wsClient.Close()
	})

	rootKeypair := solana.NewWallet().PrivateKey
	actors, err := testUtils.SetupTestContext(conn, wsClient, rootKeypair)
	if err != nil {
		t.Fatalf("err from SetupTestContext: %s", err.Error())
	}

	dripInstance := dripsdk.NewDrip(conn)

	var protoConfig solana.PublicKey
	{
		result, err := dripInstance.InitVaultProtoConfig(types.InitVaultProtoConfigParams{
			Granularity:             types.Minutely,
			TokenADripTriggerSpread: 50,
			TokenBWithdrawalSpread:  10,
			Admin:                   actors.Admin.PublicKey(),
			Creator:                 actors.Creator.PublicKey(),
		})
		require.NoError(t, err)

		txnSig, err := dripInstance.SendAndConfirm(
			ctx,
			wsClient,
			result.Ixns,
			actors.Creator,
			result.VaultProtoConfigKeypair,
		)
		require.NoError(t, err)
		assert.NotNil(t, txnSig)

		state, err := dripInstance.FetchVaultProtoConfig(ctx, result.VaultProtoConfig)
		require.NoError(t, err)
		assert.Equal(t, types.Minutely.Seconds(), state.Granularity)
		assert.Equal(t, actors.Admin.PublicKey(), state.Admin)

		protoConfig = result.VaultProtoConfig
	}

	vaultParams := types.InitVaultParams{
		ProtoConfig:    protoConfig,
		TokenAMint:     actors.TokenAMint.PublicKey(),
		TokenBMint:     actors.TokenBMint.PublicKey(),
		TreasuryOwner:  actors.TreasuryOwner.PublicKey(),
		MaxSlippageBps: 100,
		Creator:        actors.Creator.PublicKey(),
	}

	var vault solana.PublicKey
	t.Run("init vault", func(t *testing.T) {
		result, err := dripInstance.InitVault(ctx, vaultParams)
		require.NoError(t, err)

		txnSig, err := dripInstance.SendAndConfirm(
			ctx,
			wsClient,
			result.Ixns,
			actors.Creator,
		)
		require.NoError(t, err)
		assert.NotNil(t, txnSig)

		state, err := dripInstance.FetchVault(ctx, result.Vault)
		require.NoError(t, err)
		assert.Equal(t, protoConfig, state.ProtoConfig)
		assert.Equal(t, vaultParams.TokenAMint, state.TokenAMint)
		assert.Equal(t, vaultParams.TokenBMint, state.TokenBMint)

		vault = result.Vault
	})

	t.Run("init vault again fails before broadcast", func(t *testing.T) {
		_, err := dripInstance.InitVault(ctx, vaultParams)
		assert.ErrorIs(t, err, dripsdk.ErrVaultAlreadyExists)
	})

	t.Run("init vault period", func(t *testing.T) {
		result, err := dripInstance.InitVaultPeriod(ctx, types.InitVaultPeriodParams{
			Vault:    vault,
			PeriodID: 0,
			Creator:  actors.Creator.PublicKey(),
		})
		require.NoError(t, err)

		txnSig, err := dripInstance.SendAndConfirm(
			ctx,
			wsClient,
			result.Ixns,
			actors.Creator,
		)
		require.NoError(t, err)
		assert.NotNil(t, txnSig)

		state, err := dripInstance.FetchVaultPeriod(ctx, result.VaultPeriod)
		require.NoError(t, err)
		assert.Equal(t, vault, state.Vault)
		assert.Equal(t, uint64(0), state.PeriodId)

		periods, err := dripInstance.GetVaultPeriodsByVault(ctx, vault)
		require.NoError(t, err)
		assert.Len(t, periods, 1)
	})

	t.Run("vaults are listed by proto config", func(t *testing.T) {
		vaults, err := dripInstance.GetVaultsByProtoConfig(ctx, protoConfig)
		require.NoError(t, err)
		require.Len(t, vaults, 1)
		assert.Equal(t, vault, vaults[0].PublicKey)
	})
}
