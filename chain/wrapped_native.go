package chain

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/shareswap-labs/shareswap/domain"
)

// WrappedNative is the bound wrapped native asset contract.
type WrappedNative struct {
	address    common.Address
	contract   *bind.BoundContract
	transactor *Transactor
}

var _ domain.WrappedNative = &WrappedNative{}

// NewWrappedNative binds the wrapped native token at the given address.
func NewWrappedNative(address common.Address, client *Client, transactor *Transactor) *WrappedNative {
	eth := client.Backend()
	return &WrappedNative{
		address:    address,
		contract:   bind.NewBoundContract(address, wrappedNativeABI, eth, eth, eth),
		transactor: transactor,
	}
}

// Address implements domain.WrappedNative.
func (w *WrappedNative) Address() common.Address {
	return w.address
}

// Wrap implements domain.WrappedNative.
func (w *WrappedNative) Wrap(ctx context.Context, amount osmomath.Int) error {
	opts, err := w.transactor.Opts(ctx)
	if err != nil {
		return err
	}
	opts.Value = amount.BigInt()

	tx, err := w.contract.Transact(opts, "deposit")
	return w.transactor.Submit(ctx, tx, err)
}

// Unwrap implements domain.WrappedNative. Withdrawal credits the operator
// account, so the native asset is forwarded to the destination afterwards.
func (w *WrappedNative) Unwrap(ctx context.Context, amount osmomath.Int, to common.Address) error {
	opts, err := w.transactor.Opts(ctx)
	if err != nil {
		return err
	}

	tx, err := w.contract.Transact(opts, "withdraw", amount.BigInt())
	if err := w.transactor.Submit(ctx, tx, err); err != nil {
		return err
	}

	if to == w.transactor.Address() {
		return nil
	}
	return w.transactor.SendNative(ctx, to, amount.BigInt())
}
