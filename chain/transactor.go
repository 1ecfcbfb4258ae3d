package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/params"
)

// Transactor signs and submits transactions from the operator account, the
// account the engine's collaborator contracts see as the router.
type Transactor struct {
	key     *ecdsa.PrivateKey
	address common.Address
	chainID *big.Int

	client *Client
}

// NewTransactor derives the operator account from the given hex private
// key.
func NewTransactor(privateKeyHex string, chainID uint64, client *Client) (*Transactor, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid chain private key: %w", err)
	}

	return &Transactor{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
		chainID: new(big.Int).SetUint64(chainID),
		client:  client,
	}, nil
}

// Address returns the operator account address.
func (t *Transactor) Address() common.Address {
	return t.address
}

// Opts returns fresh transact opts bound to the given context.
func (t *Transactor) Opts(ctx context.Context) (*bind.TransactOpts, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(t.key, t.chainID)
	if err != nil {
		return nil, err
	}
	opts.Context = ctx
	return opts, nil
}

// SendNative transfers value of the native asset from the operator account
// to the destination.
func (t *Transactor) SendNative(ctx context.Context, to common.Address, value *big.Int) error {
	eth := t.client.Backend()

	nonce, err := eth.PendingNonceAt(ctx, t.address)
	if err != nil {
		return err
	}
	gasPrice, err := eth.SuggestGasPrice(ctx)
	if err != nil {
		return err
	}

	tx := types.NewTransaction(nonce, to, value, params.TxGas, gasPrice, nil)
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(t.chainID), t.key)
	if err != nil {
		return err
	}

	return t.Submit(ctx, signed, eth.SendTransaction(ctx, signed))
}

// Submit waits for the transaction to mine and fails on a reverted receipt.
func (t *Transactor) Submit(ctx context.Context, tx *types.Transaction, err error) error {
	if err != nil {
		return err
	}

	receipt, err := bind.WaitMined(ctx, t.client.Backend(), tx)
	if err != nil {
		return err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("transaction (%s) reverted", tx.Hash().Hex())
	}
	return nil
}
