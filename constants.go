package dripsdk

import (
	"github.com/gagliardetto/solana-go"

	drip "github.com/dcaf-labs/drip-sdk/generated/drip"
)

var (
	// Drip program ID.
	//  DripProgramId = solana.MustPublicKeyFromBase58("dripTrkvSyQKvkyWg7oi4jmeEGMA5scSYowHArJ9Vwk")
	DripProgramId = drip.ProgramID
)

// SetProgramID overrides the program ID used for address derivation and
// built instructions, e.g. when targeting a non-mainnet deployment.
func SetProgramID(programID solana.PublicKey) {
	DripProgramId = programID
	drip.SetProgramID(programID)
}
