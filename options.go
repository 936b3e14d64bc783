package dripsdk

import (
	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"
)

// Option configures a Drip client.
type Option func(*Drip)

// WithCommitment sets the default RPC commitment.
func WithCommitment(commitment rpc.CommitmentType) Option {
	return func(d *Drip) { d.commitment = commitment }
}

// WithLogger sets a custom logger. The client is silent by default.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Drip) { d.logger = logger }
}
