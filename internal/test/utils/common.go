package testUtils

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	ata "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/gagliardetto/solana-go/rpc"
	confirm "github.com/gagliardetto/solana-go/rpc/sendAndConfirmTransaction"
	"github.com/gagliardetto/solana-go/rpc/ws"

	drip "github.com/dcaf-labs/drip-sdk/generated/drip"
)

type TestActors struct {
	Admin         solana.PrivateKey
	Creator       solana.PrivateKey
	TreasuryOwner solana.PrivateKey
	User          solana.PrivateKey
	TokenAMint    solana.PrivateKey
	TokenBMint    solana.PrivateKey
}

func SetupTestContext(
	conn *rpc.Client,
	wsClient *ws.Client,
	rootKeypair solana.PrivateKey,
) (*TestActors, error) {

	actors := newTestActors()

	// fund rootKeyPair
	{
		if _, err := conn.RequestAirdrop(
			context.Background(),
			rootKeypair.PublicKey(),
			100_000*solana.LAMPORTS_PER_SOL,
			rpc.CommitmentFinalized,
		); err != nil {
			return nil, fmt.Errorf("error: RequestAirdrop - %s", err.Error())
		}
	}

	// fund actors
	{
		pubkeys := []solana.PublicKey{
			actors.Admin.PublicKey(),
			actors.Creator.PublicKey(),
			actors.TreasuryOwner.PublicKey(),
			actors.User.PublicKey(),
		}

		ixns := make([]solana.Instruction, 0, len(pubkeys))

		for _, pubkey := range pubkeys {
			ix := system.NewTransferInstruction(
				1_000*solana.LAMPORTS_PER_SOL,
				rootKeypair.PublicKey(),
				pubkey,
			).Build()
			ixns = append(ixns, ix)
		}

		if _, err := SendAndConfirmTxn(
			conn,
			wsClient,
			ixns,
			rootKeypair,
		); err != nil {
			return nil, err
		}
	}

	// create tokens
	{
		mintAccouts := []solana.PublicKey{
			actors.TokenAMint.PublicKey(),
			actors.TokenBMint.PublicKey(),
		}
		ixns := make([]solana.Instruction, 0, len(mintAccouts)*2)

		lamports, err := conn.GetMinimumBalanceForRentExemption(
			context.Background(),
			token.MINT_SIZE,
			rpc.CommitmentConfirmed,
		)
		if err != nil {
			return nil, fmt.Errorf("err from GetMinimumBalanceForRentExemption: %s", err.Error())
		}

		for _, mint := range mintAccouts {
			createIx := system.NewCreateAccountInstruction(
				lamports,
				token.MINT_SIZE,
				solana.TokenProgramID,
				rootKeypair.PublicKey(),
				mint,
			).Build()
			initIx := token.NewInitializeMint2Instruction(
				Decimals,
				rootKeypair.PublicKey(),
				solana.PublicKey{},
				mint,
			).Build()

			ixns = append(ixns, createIx, initIx)
		}

		if _, err := SendAndConfirmTxn(
			conn,
			wsClient,
			ixns,
			rootKeypair,
			actors.TokenAMint,
			actors.TokenBMint,
		); err != nil {
			return nil, err
		}
	}

	// mint tokens
	{
		recipients := []solana.PublicKey{
			actors.Creator.PublicKey(),
			actors.User.PublicKey(),
		}

		rawAmount := new(big.Int).Mul(
			big.NewInt(100_000_000),
			new(big.Int).Exp(big.NewInt(10), big.NewInt(Decimals), nil),
		)
		if !rawAmount.IsUint64() {
			return nil, errors.New("amount to be minted cannot fit into uint64")
		}

		amount := rawAmount.Uint64()

		ixns := make([]solana.Instruction, 0, len(recipients)*2*2)
		for _, mint := range []solana.PublicKey{
			actors.TokenAMint.PublicKey(),
			actors.TokenBMint.PublicKey(),
		} {
			for _, wallet := range recipients {
				ixns = append(ixns, MintTo(
					amount,
					wallet,
					mint,
					rootKeypair.PublicKey(),
					rootKeypair.PublicKey(),
				)...)
			}
		}

		if _, err := SendAndConfirmTxn(
			conn,
			wsClient,
			ixns,
			rootKeypair,
		); err != nil {
			return nil, err
		}
	}

	return actors, nil
}

func newTestActors() *TestActors {
	return &TestActors{
		Admin:         solana.NewWallet().PrivateKey,
		Creator:       solana.NewWallet().PrivateKey,
		TreasuryOwner: solana.NewWallet().PrivateKey,
		User:          solana.NewWallet().PrivateKey,
		TokenAMint:    solana.NewWallet().PrivateKey,
		TokenBMint:    solana.NewWallet().PrivateKey,
	}
}

func GetVault(
	conn *rpc.Client,
	vault solana.PublicKey,
) (*drip.VaultAccount, error) {
	out, err := conn.GetAccountInfo(context.Background(), vault)
	if err != nil {
		return nil, err
	}
	if out == nil || out.Value == nil {
		return nil, fmt.Errorf("account not found for vault: %s", vault.String())
	}

	var v drip.VaultAccount
	decoder := bin.NewBorshDecoder(out.Value.Data.GetBinary())
	if err := v.UnmarshalWithDecoder(decoder); err != nil {
		return nil, fmt.Errorf("failed to decode vault account: %w", err)
	}

	return &v, nil
}

func SendAndConfirmTxn(
	conn *rpc.Client,
	wsClient *ws.Client,
	ixns []solana.Instruction,
	payer solana.PrivateKey,
	signers ...solana.PrivateKey,
) (solana.Signature, error) {

	signerMap := make(map[solana.PublicKey]*solana.PrivateKey, 1+len(signers))
	signerMap[payer.PublicKey()] = &payer

	for _, signer := range signers {
		s := signer // avoid loop variable capture
		signerMap[s.PublicKey()] = &s
	}

	blockHash, err := conn.GetLatestBlockhash(
		context.Background(),
		rpc.CommitmentConfirmed,
	)
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
	if size := len(rawTxn); size > 1232 {
		return solana.Signature{}, fmt.Errorf("transaction size %d exceeds the limit", size)
	}

	txnSig, err := confirm.SendAndConfirmTransaction(
		context.Background(),
		conn,
		wsClient,
		txn,
	)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("error from sent txn: %s", err.Error())
	}

	return txnSig, nil
}

func MintTo(
	amount uint64,
	wallet, mint, mintAuth, payer solana.PublicKey,
) []solana.Instruction {

	createAtaIx := ata.NewCreateInstruction(
		payer,
		wallet,
		mint,
	).Build()

	ataAddr, _, _ := solana.FindAssociatedTokenAddress(
		wallet,
		mint,
	)

	mintToIx := token.NewMintToInstruction(
		amount,
		mint,
		ataAddr,
		mintAuth,
		nil,
	).Build()

	return []solana.Instruction{
		createAtaIx,
		mintToIx,
	}
}
