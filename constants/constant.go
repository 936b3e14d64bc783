package constants

const (
	BasisPointMax = 10_000

	// Spreads are expressed in basis points and must stay below this bound.
	MaxSpread = 5_000

	MaxWhitelistedSwaps = 5

	MaxTxnSize = 1232
)

var (
	// VaultSeed
	//  seeds = ["drip-v1", token_a_mint, token_b_mint, vault_proto_config]
	VaultSeed = []byte("drip-v1")

	// VaultPeriodSeed
	//  seeds = ["vault_period", vault, period_id]
	VaultPeriodSeed = []byte("vault_period")
)
