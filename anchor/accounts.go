package anchor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	ag_binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

const (
	fetchAttempts = 3
	fetchDelay    = 200 * time.Millisecond
)

// AccountDeserializer is implemented by all generated account types.
type AccountDeserializer interface {
	UnmarshalWithDecoder(decoder *ag_binary.Decoder) error
}

// ProgramAccount pairs a decoded account state with the address it lives at.
type ProgramAccount[T any] struct {
	PublicKey solana.PublicKey
	Account   T
}

// PgAccounts fetches and decodes program-owned accounts of a single type.
type PgAccounts[T AccountDeserializer] struct {
	conn    *rpc.Client
	account func() T
}

func NewPgAccounts[T AccountDeserializer](conn *rpc.Client, account func() T) *PgAccounts[T] {
	return &PgAccounts[T]{
		conn:    conn,
		account: account,
	}
}

// Fetch retrieves and decodes a single account. A nil result with a nil
// error means the account does not exist.
func (pg *PgAccounts[T]) Fetch(
	ctx context.Context,
	address solana.PublicKey,
	opts *rpc.GetAccountInfoOpts,
) (T, error) {
	var zero T

	out, err := retry.DoWithData(
		func() (*rpc.GetAccountInfoResult, error) {
			return pg.conn.GetAccountInfoWithOpts(ctx, address, opts)
		},
		retry.Context(ctx),
		retry.Attempts(fetchAttempts),
		retry.Delay(fetchDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, rpc.ErrNotFound)
		}),
	)
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return zero, nil
		}
		return zero, fmt.Errorf("err fetching account %s: %w", address.String(), err)
	}

	if out == nil || out.Value == nil {
		return zero, nil
	}

	account := pg.account()
	if err := account.UnmarshalWithDecoder(
		ag_binary.NewBorshDecoder(out.Value.Data.GetBinary()),
	); err != nil {
		return zero, fmt.Errorf("err decoding account %s: %w", address.String(), err)
	}

	return account, nil
}

// All retrieves every account of the program whose data starts with the
// given discriminator, optionally narrowed by extra filters.
func (pg *PgAccounts[T]) All(
	ctx context.Context,
	programID solana.PublicKey,
	discriminator [8]byte,
	filters []rpc.RPCFilter,
	commitment rpc.CommitmentType,
) ([]ProgramAccount[T], error) {

	allFilters := make([]rpc.RPCFilter, 0, 1+len(filters))
	allFilters = append(allFilters, rpc.RPCFilter{
		Memcmp: &rpc.RPCFilterMemcmp{
			Offset: 0,
			Bytes:  discriminator[:],
		},
	})
	allFilters = append(allFilters, filters...)

	out, err := retry.DoWithData(
		func() (rpc.GetProgramAccountsResult, error) {
			return pg.conn.GetProgramAccountsWithOpts(
				ctx,
				programID,
				&rpc.GetProgramAccountsOpts{
					Commitment: commitment,
					Filters:    allFilters,
				},
			)
		},
		retry.Context(ctx),
		retry.Attempts(fetchAttempts),
		retry.Delay(fetchDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("err fetching program accounts: %w", err)
	}

	accounts := make([]ProgramAccount[T], 0, len(out))
	for _, keyed := range out {
		account := pg.account()
		if err := account.UnmarshalWithDecoder(
			ag_binary.NewBorshDecoder(keyed.Account.Data.GetBinary()),
		); err != nil {
			return nil, fmt.Errorf("err decoding account %s: %w", keyed.Pubkey.String(), err)
		}
		accounts = append(accounts, ProgramAccount[T]{
			PublicKey: keyed.Pubkey,
			Account:   account,
		})
	}

	return accounts, nil
}
