package dripsdk

import (
	"strconv"

	"github.com/gagliardetto/solana-go"

	"github.com/dcaf-labs/drip-sdk/constants"
)

// DeriveVaultAddress derives the vault PDA for a mint pair under a proto config.
func DeriveVaultAddress(tokenAMint, tokenBMint, protoConfig solana.PublicKey) solana.PublicKey {
	pda, _, _ := solana.FindProgramAddress(
		[][]byte{
			constants.VaultSeed,
			tokenAMint.Bytes(),
			tokenBMint.Bytes(),
			protoConfig.Bytes(),
		},
		DripProgramId,
	)
	return pda
}

// DeriveVaultPeriodAddress derives the vault period PDA. The period id is
// seeded as its decimal string, matching the on-chain program.
func DeriveVaultPeriodAddress(vault solana.PublicKey, periodID uint64) solana.PublicKey {
	pda, _, _ := solana.FindProgramAddress(
		[][]byte{
			constants.VaultPeriodSeed,
			vault.Bytes(),
			[]byte(strconv.FormatUint(periodID, 10)),
		},
		DripProgramId,
	)
	return pda
}

// DeriveVaultTokenAAddress derives the vault's token A associated token account.
func DeriveVaultTokenAAddress(vault, tokenAMint solana.PublicKey) solana.PublicKey {
	ata, _, _ := solana.FindAssociatedTokenAddress(vault, tokenAMint)
	return ata
}

// DeriveVaultTokenBAddress derives the vault's token B associated token account.
func DeriveVaultTokenBAddress(vault, tokenBMint solana.PublicKey) solana.PublicKey {
	ata, _, _ := solana.FindAssociatedTokenAddress(vault, tokenBMint)
	return ata
}
