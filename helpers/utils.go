package helpers

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/gagliardetto/solana-go"
	ata "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/dcaf-labs/drip-sdk/constants"
)

// GetOrCreateATAInstruction resolves the associated token account for the
// owner/mint pair. When the account does not exist yet, the returned
// instruction creates it; otherwise the instruction is nil.
func GetOrCreateATAInstruction(
	ctx context.Context,
	conn *rpc.Client,
	tokenMint,
	owner,
	payer solana.PublicKey,
) (solana.PublicKey, *solana.GenericInstruction, error) {

	ataAddr, _, err := solana.FindAssociatedTokenAddress(owner, tokenMint)
	if err != nil {
		return solana.PublicKey{}, nil, fmt.Errorf("err deriving ata for owner %s: %w", owner.String(), err)
	}

	_, err = conn.GetAccountInfo(ctx, ataAddr)
	if err == nil {
		return ataAddr, nil, nil
	}
	if !errors.Is(err, rpc.ErrNotFound) {
		return solana.PublicKey{}, nil, fmt.Errorf("err fetching ata %s: %w", ataAddr.String(), err)
	}

	createIx := ata.NewCreateInstruction(
		payer,
		owner,
		tokenMint,
	).Build()

	data, err := createIx.Data()
	if err != nil {
		return solana.PublicKey{}, nil, err
	}

	return ataAddr, solana.NewInstruction(
		createIx.ProgramID(),
		createIx.Accounts(),
		data,
	), nil
}

// GetAmountWithSpread returns the amount remaining after a bps spread is
// deducted.
// Example:
//
//	GetAmountWithSpread(big.NewInt(100_000), 50) returns 99_500 for a 50 bps spread.
func GetAmountWithSpread(amount *big.Int, spreadBps uint16) *big.Int {
	remaining := new(big.Int).SetUint64(uint64(constants.BasisPointMax - spreadBps))
	return new(big.Int).Div(
		new(big.Int).Mul(amount, remaining),
		big.NewInt(constants.BasisPointMax),
	)
}

// GetSpreadAmount returns the portion of the amount taken by a bps spread.
func GetSpreadAmount(amount *big.Int, spreadBps uint16) *big.Int {
	return new(big.Int).Sub(
		amount,
		GetAmountWithSpread(amount, spreadBps),
	)
}
