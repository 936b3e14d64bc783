package helpers

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// Memcmp offsets skip the 8-byte account discriminator and any preceding
// fields of the account layout.
var (
	VaultsByProtoConfigFilter = func(protoConfig solana.PublicKey) rpc.RPCFilter {
		return rpc.RPCFilter{
			Memcmp: &rpc.RPCFilterMemcmp{
				Bytes:  protoConfig.Bytes(),
				Offset: 8,
			},
		}
	}

	VaultsByTokenAMintFilter = func(tokenAMint solana.PublicKey) rpc.RPCFilter {
		return rpc.RPCFilter{
			Memcmp: &rpc.RPCFilterMemcmp{
				Bytes:  tokenAMint.Bytes(),
				Offset: 40,
			},
		}
	}

	VaultsByTokenBMintFilter = func(tokenBMint solana.PublicKey) rpc.RPCFilter {
		return rpc.RPCFilter{
			Memcmp: &rpc.RPCFilterMemcmp{
				Bytes:  tokenBMint.Bytes(),
				Offset: 72,
			},
		}
	}

	VaultPeriodsByVaultFilter = func(vault solana.PublicKey) rpc.RPCFilter {
		return rpc.RPCFilter{
			Memcmp: &rpc.RPCFilterMemcmp{
				Bytes:  vault.Bytes(),
				Offset: 8,
			},
		}
	}
)
