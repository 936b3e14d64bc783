package types

import (
	"github.com/gagliardetto/solana-go"
)

type InitVaultProtoConfigParams struct {
	// Drip cadence in seconds.
	Granularity Granularity
	// Spread in bps taken on each drip trigger, paid to the keeper.
	TokenADripTriggerSpread uint16
	// Spread in bps taken on withdrawal, paid to the treasury.
	TokenBWithdrawalSpread uint16
	// Admin of the proto config.
	Admin solana.PublicKey
	// Creator pays rent and signs.
	Creator solana.PublicKey
}

// InitVaultProtoConfigPreview carries the freshly generated keypair of the
// to-be-created proto config account so the caller knows the resulting
// address before the transaction is built or broadcast.
type InitVaultProtoConfigPreview struct {
	InitVaultProtoConfigParams
	VaultProtoConfigKeypair solana.PrivateKey
}

type InitVaultProtoConfigResult struct {
	VaultProtoConfig solana.PublicKey
	// VaultProtoConfigKeypair must co-sign the transaction.
	VaultProtoConfigKeypair solana.PrivateKey
	Ixns                    []solana.Instruction
}

type InitVaultParams struct {
	ProtoConfig solana.PublicKey
	TokenAMint  solana.PublicKey
	TokenBMint  solana.PublicKey
	// TreasuryOwner owns the treasury token B account. Its associated token
	// account is created as part of the transaction when absent.
	TreasuryOwner    solana.PublicKey
	MaxSlippageBps   uint16
	WhitelistedSwaps []solana.PublicKey
	// Creator pays rent and signs.
	Creator solana.PublicKey
}

// InitVaultPreview is the fully derived account set for a vault that does
// not exist yet.
type InitVaultPreview struct {
	InitVaultParams
	Vault                 solana.PublicKey
	TokenAAccount         solana.PublicKey
	TokenBAccount         solana.PublicKey
	TreasuryTokenBAccount solana.PublicKey
	// SetupIxns create the treasury token B account when it is missing.
	SetupIxns []solana.Instruction
}

type InitVaultResult struct {
	Vault                 solana.PublicKey
	TokenAAccount         solana.PublicKey
	TokenBAccount         solana.PublicKey
	TreasuryTokenBAccount solana.PublicKey
	Ixns                  []solana.Instruction
}

type InitVaultPeriodParams struct {
	Vault    solana.PublicKey
	PeriodID uint64
	// Creator pays rent and signs.
	Creator solana.PublicKey
}

type InitVaultPeriodResult struct {
	VaultPeriod solana.PublicKey
	Ixns        []solana.Instruction
}
