package dripsdk

import (
	"context"
	"errors"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	confirm "github.com/gagliardetto/solana-go/rpc/sendAndConfirmTransaction"
	"github.com/gagliardetto/solana-go/rpc/ws"
	"go.uber.org/zap"

	"github.com/dcaf-labs/drip-sdk/anchor"
	"github.com/dcaf-labs/drip-sdk/constants"
	drip "github.com/dcaf-labs/drip-sdk/generated/drip"
	"github.com/dcaf-labs/drip-sdk/helpers"
	"github.com/dcaf-labs/drip-sdk/types"
)

var (
	ErrVaultAlreadyExists       = errors.New("vault already exists")
	ErrVaultPeriodAlreadyExists = errors.New("vault period already exists")
	ErrZeroGranularity          = errors.New("granularity must be positive")
	ErrSpreadTooLarge           = errors.New("spread exceeds the allowed bound")
	ErrIdenticalMints           = errors.New("token A and token B mints must differ")
	ErrTooManyWhitelistedSwaps  = errors.New("too many whitelisted swaps")
	ErrInvalidSlippage          = errors.New("max slippage must be between 1 and 9999 bps")
)

// Drip SDK class to interact with the Drip program.
type Drip struct {
	conn       *rpc.Client
	commitment rpc.CommitmentType
	logger     *zap.Logger
}

func NewDrip(conn *rpc.Client, opts ...Option) *Drip {
	d := &Drip{
		conn:       conn,
		commitment: rpc.CommitmentConfirmed,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func validateInitVaultProtoConfigParams(param types.InitVaultProtoConfigParams) error {
	if param.Granularity == 0 {
		return ErrZeroGranularity
	}
	if param.TokenADripTriggerSpread >= constants.MaxSpread ||
		param.TokenBWithdrawalSpread >= constants.MaxSpread {
		return fmt.Errorf("%w: must be below %d bps", ErrSpreadTooLarge, constants.MaxSpread)
	}
	return nil
}

// GetInitVaultProtoConfigPreview generates a fresh keypair for the
// to-be-created proto config account and returns it together with the
// params, so the caller knows the resulting address before broadcast.
// Each call yields new key material; previews are never reused.
func (d *Drip) GetInitVaultProtoConfigPreview(
	param types.InitVaultProtoConfigParams,
) (types.InitVaultProtoConfigPreview, error) {

	if err := validateInitVaultProtoConfigParams(param); err != nil {
		return types.InitVaultProtoConfigPreview{}, err
	}

	return types.InitVaultProtoConfigPreview{
		InitVaultProtoConfigParams: param,
		VaultProtoConfigKeypair:    solana.NewWallet().PrivateKey,
	}, nil
}

// buildInitVaultProtoConfigInstruction builds an instruction to initialize a proto config account.
func (d Drip) buildInitVaultProtoConfigInstruction(
	preview types.InitVaultProtoConfigPreview,
) (*drip.Instruction, error) {
	return drip.NewInitVaultProtoConfigInstruction(
		drip.InitVaultProtoConfigParams{
			Granularity:             preview.Granularity.Seconds(),
			TokenADripTriggerSpread: preview.TokenADripTriggerSpread,
			TokenBWithdrawalSpread:  preview.TokenBWithdrawalSpread,
			Admin:                   preview.Admin,
		},
		preview.VaultProtoConfigKeypair.PublicKey(),
		preview.Creator,
		solana.SystemProgramID,
	).ValidateAndBuild()
}

// InitVaultProtoConfig previews and builds the instructions to initialize a
// proto config account. The returned keypair must co-sign the transaction.
func (d *Drip) InitVaultProtoConfig(
	param types.InitVaultProtoConfigParams,
) (types.InitVaultProtoConfigResult, error) {

	preview, err := d.GetInitVaultProtoConfigPreview(param)
	if err != nil {
		return types.InitVaultProtoConfigResult{}, err
	}

	return d.InitVaultProtoConfigFromPreview(preview)
}

// InitVaultProtoConfigFromPreview builds the instructions for a preview the
// caller already holds.
func (d *Drip) InitVaultProtoConfigFromPreview(
	preview types.InitVaultProtoConfigPreview,
) (types.InitVaultProtoConfigResult, error) {

	if err := validateInitVaultProtoConfigParams(preview.InitVaultProtoConfigParams); err != nil {
		return types.InitVaultProtoConfigResult{}, err
	}

	ix, err := d.buildInitVaultProtoConfigInstruction(preview)
	if err != nil {
		return types.InitVaultProtoConfigResult{}, err
	}

	vaultProtoConfig := preview.VaultProtoConfigKeypair.PublicKey()
	d.logger.Debug("built init_vault_proto_config",
		zap.String("vaultProtoConfig", vaultProtoConfig.String()),
	)

	return types.InitVaultProtoConfigResult{
		VaultProtoConfig:        vaultProtoConfig,
		VaultProtoConfigKeypair: preview.VaultProtoConfigKeypair,
		Ixns:                    []solana.Instruction{ix},
	}, nil
}

func validateInitVaultParams(param types.InitVaultParams) error {
	if param.TokenAMint.Equals(param.TokenBMint) {
		return ErrIdenticalMints
	}
	if len(param.WhitelistedSwaps) > constants.MaxWhitelistedSwaps {
		return fmt.Errorf("%w: got %d, max %d",
			ErrTooManyWhitelistedSwaps, len(param.WhitelistedSwaps), constants.MaxWhitelistedSwaps)
	}
	if param.MaxSlippageBps == 0 || param.MaxSlippageBps >= constants.BasisPointMax {
		return ErrInvalidSlippage
	}
	return nil
}

// GetInitVaultPreview derives the full account set for a vault that does not
// exist yet. The proto config must already be on chain, and the vault PDA
// must not: building against an existing vault fails with
// ErrVaultAlreadyExists before anything is broadcast.
func (d *Drip) GetInitVaultPreview(
	ctx context.Context,
	param types.InitVaultParams,
) (types.InitVaultPreview, error) {

	if err := validateInitVaultParams(param); err != nil {
		return types.InitVaultPreview{}, err
	}

	if _, err := d.FetchVaultProtoConfig(ctx, param.ProtoConfig); err != nil {
		return types.InitVaultPreview{}, err
	}

	vault := DeriveVaultAddress(param.TokenAMint, param.TokenBMint, param.ProtoConfig)
	if d.IsVaultExist(ctx, vault) {
		return types.InitVaultPreview{}, fmt.Errorf("vault %s: %w", vault.String(), ErrVaultAlreadyExists)
	}

	treasuryTokenBAccount, createTreasuryIx, err := helpers.GetOrCreateATAInstruction(
		ctx,
		d.conn,
		param.TokenBMint,
		param.TreasuryOwner,
		param.Creator,
	)
	if err != nil {
		return types.InitVaultPreview{}, err
	}

	setupIxns := make([]solana.Instruction, 0, 1)
	if createTreasuryIx != nil {
		setupIxns = append(setupIxns, createTreasuryIx)
	}

	d.logger.Debug("derived vault accounts",
		zap.String("vault", vault.String()),
		zap.String("treasuryTokenBAccount", treasuryTokenBAccount.String()),
	)

	return types.InitVaultPreview{
		InitVaultParams:       param,
		Vault:                 vault,
		TokenAAccount:         DeriveVaultTokenAAddress(vault, param.TokenAMint),
		TokenBAccount:         DeriveVaultTokenBAddress(vault, param.TokenBMint),
		TreasuryTokenBAccount: treasuryTokenBAccount,
		SetupIxns:             setupIxns,
	}, nil
}

// InitVault previews and builds the instructions to initialize a vault.
func (d *Drip) InitVault(
	ctx context.Context,
	param types.InitVaultParams,
) (types.InitVaultResult, error) {

	preview, err := d.GetInitVaultPreview(ctx, param)
	if err != nil {
		return types.InitVaultResult{}, err
	}

	return d.InitVaultFromPreview(preview)
}

// InitVaultFromPreview builds the instructions for a preview the caller
// already holds.
func (d *Drip) InitVaultFromPreview(
	preview types.InitVaultPreview,
) (types.InitVaultResult, error) {

	if err := validateInitVaultParams(preview.InitVaultParams); err != nil {
		return types.InitVaultResult{}, err
	}

	ix, err := drip.NewInitVaultInstruction(
		drip.InitVaultParams{
			MaxSlippageBps:   preview.MaxSlippageBps,
			WhitelistedSwaps: preview.WhitelistedSwaps,
		},
		preview.Creator,
		preview.Vault,
		preview.ProtoConfig,
		preview.TokenAMint,
		preview.TokenBMint,
		preview.TokenAAccount,
		preview.TokenBAccount,
		preview.TreasuryTokenBAccount,
		solana.SystemProgramID,
		solana.TokenProgramID,
		solana.SPLAssociatedTokenAccountProgramID,
		solana.SysVarRentPubkey,
	).ValidateAndBuild()
	if err != nil {
		return types.InitVaultResult{}, err
	}

	ixns := make([]solana.Instruction, 0, 1+len(preview.SetupIxns))
	ixns = append(ixns, preview.SetupIxns...)
	ixns = append(ixns, ix)

	return types.InitVaultResult{
		Vault:                 preview.Vault,
		TokenAAccount:         preview.TokenAAccount,
		TokenBAccount:         preview.TokenBAccount,
		TreasuryTokenBAccount: preview.TreasuryTokenBAccount,
		Ixns:                  ixns,
	}, nil
}

// InitVaultPeriod builds the instructions to initialize the period account
// for the given period id of an existing vault.
func (d *Drip) InitVaultPeriod(
	ctx context.Context,
	param types.InitVaultPeriodParams,
) (types.InitVaultPeriodResult, error) {

	if _, err := d.FetchVault(ctx, param.Vault); err != nil {
		return types.InitVaultPeriodResult{}, err
	}

	vaultPeriod := DeriveVaultPeriodAddress(param.Vault, param.PeriodID)

	existing, err := anchor.NewPgAccounts(
		d.conn,
		func() *drip.VaultPeriodAccount { return &drip.VaultPeriodAccount{} },
	).Fetch(ctx, vaultPeriod, nil)
	if err != nil {
		return types.InitVaultPeriodResult{}, err
	}
	if existing != nil {
		return types.InitVaultPeriodResult{}, fmt.Errorf(
			"vault period %s: %w", vaultPeriod.String(), ErrVaultPeriodAlreadyExists)
	}

	ix, err := drip.NewInitVaultPeriodInstruction(
		drip.InitVaultPeriodParams{
			PeriodId: param.PeriodID,
		},
		vaultPeriod,
		param.Vault,
		param.Creator,
		solana.SystemProgramID,
	).ValidateAndBuild()
	if err != nil {
		return types.InitVaultPeriodResult{}, err
	}

	return types.InitVaultPeriodResult{
		VaultPeriod: vaultPeriod,
		Ixns:        []solana.Instruction{ix},
	}, nil
}

//// ANCHOR: GETTER/FETCHER FUNCTIONS //////

// FetchVaultProtoConfig fetches the proto config state.
func (d *Drip) FetchVaultProtoConfig(ctx context.Context, protoConfig solana.PublicKey) (*drip.VaultProtoConfigAccount, error) {
	protoConfigState, err := anchor.NewPgAccounts(
		d.conn,
		func() *drip.VaultProtoConfigAccount { return &drip.VaultProtoConfigAccount{} },
	).Fetch(
		ctx,
		protoConfig,
		nil,
	)
	if err != nil {
		return nil, err
	}

	if protoConfigState == nil {
		return nil, fmt.Errorf("vault proto config account: %s not found", protoConfig.String())
	}

	return protoConfigState, nil
}

// FetchVault fetches the vault state.
func (d *Drip) FetchVault(ctx context.Context, vault solana.PublicKey) (*drip.VaultAccount, error) {
	vaultState, err := anchor.NewPgAccounts(
		d.conn,
		func() *drip.VaultAccount { return &drip.VaultAccount{} },
	).Fetch(
		ctx,
		vault,
		nil,
	)
	if err != nil {
		return nil, err
	}

	if vaultState == nil {
		return nil, fmt.Errorf("vault account: %s not found", vault.String())
	}

	return vaultState, nil
}

// FetchVaultPeriod fetches the vault period state.
func (d *Drip) FetchVaultPeriod(ctx context.Context, vaultPeriod solana.PublicKey) (*drip.VaultPeriodAccount, error) {
	vaultPeriodState, err := anchor.NewPgAccounts(
		d.conn,
		func() *drip.VaultPeriodAccount { return &drip.VaultPeriodAccount{} },
	).Fetch(
		ctx,
		vaultPeriod,
		nil,
	)
	if err != nil {
		return nil, err
	}

	if vaultPeriodState == nil {
		return nil, fmt.Errorf("vault period account: %s not found", vaultPeriod.String())
	}

	return vaultPeriodState, nil
}

// GetAllVaults retrieves all vault accounts of the program.
func (d *Drip) GetAllVaults(ctx context.Context) ([]anchor.ProgramAccount[*drip.VaultAccount], error) {
	return anchor.NewPgAccounts(
		d.conn,
		func() *drip.VaultAccount { return &drip.VaultAccount{} },
	).All(
		ctx,
		DripProgramId,
		drip.VaultAccountDiscriminator,
		nil,
		d.commitment,
	)
}

// GetVaultsByProtoConfig retrieves all vaults referencing a proto config.
func (d *Drip) GetVaultsByProtoConfig(
	ctx context.Context,
	protoConfig solana.PublicKey,
) ([]anchor.ProgramAccount[*drip.VaultAccount], error) {
	return anchor.NewPgAccounts(
		d.conn,
		func() *drip.VaultAccount { return &drip.VaultAccount{} },
	).All(
		ctx,
		DripProgramId,
		drip.VaultAccountDiscriminator,
		[]rpc.RPCFilter{helpers.VaultsByProtoConfigFilter(protoConfig)},
		d.commitment,
	)
}

// GetVaultPeriodsByVault retrieves all period accounts of a vault.
func (d *Drip) GetVaultPeriodsByVault(
	ctx context.Context,
	vault solana.PublicKey,
) ([]anchor.ProgramAccount[*drip.VaultPeriodAccount], error) {
	return anchor.NewPgAccounts(
		d.conn,
		func() *drip.VaultPeriodAccount { return &drip.VaultPeriodAccount{} },
	).All(
		ctx,
		DripProgramId,
		drip.VaultPeriodAccountDiscriminator,
		[]rpc.RPCFilter{helpers.VaultPeriodsByVaultFilter(vault)},
		d.commitment,
	)
}

func (d *Drip) IsVaultExist(ctx context.Context, vault solana.PublicKey) bool {
	out, err := anchor.NewPgAccounts(
		d.conn,
		func() *drip.VaultAccount { return &drip.VaultAccount{} },
	).Fetch(
		ctx,
		vault,
		nil,
	)
	if err != nil || out == nil {
		return false
	}

	return true
}

// SendAndConfirm signs the instructions with the provided keys, submits the
// transaction and waits for confirmation.
func (d *Drip) SendAndConfirm(
	ctx context.Context,
	wsClient *ws.Client,
	ixns []solana.Instruction,
	payer solana.PrivateKey,
	signers ...solana.PrivateKey,
) (solana.Signature, error) {

	signerMap := make(map[solana.PublicKey]*solana.PrivateKey, 1+len(signers))
	signerMap[payer.PublicKey()] = &payer

	for _, signer := range signers {
		s := signer
		signerMap[s.PublicKey()] = &s
	}

	blockHash, err := d.conn.GetLatestBlockhash(ctx, d.commitment)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("error retrieving blockHash: %s", err.Error())
	}

	txn, err := solana.NewTransaction(
		ixns,
		blockHash.Value.Blockhash,
		solana.TransactionPayer(payer.PublicKey()),
	)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("error building txn: %s", err.Error())
	}

	if _, err := txn.Sign(func(pubkey solana.PublicKey) *solana.PrivateKey {
		return signerMap[pubkey]
	}); err != nil {
		return solana.Signature{}, fmt.Errorf("unable to sign transaction: %w", err)
	}

	rawTxn, _ := txn.MarshalBinary()
	if size := len(rawTxn); size > constants.MaxTxnSize {
		return solana.Signature{}, fmt.Errorf("transaction size %d exceeds the limit", size)
	}

	txnSig, err := confirm.SendAndConfirmTransaction(
		ctx,
		d.conn,
		wsClient,
		txn,
	)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("error from sent txn: %s", err.Error())
	}

	d.logger.Debug("transaction confirmed", zap.String("signature", txnSig.String()))

	return txnSig, nil
}
