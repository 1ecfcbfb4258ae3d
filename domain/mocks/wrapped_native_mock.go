package mocks

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/shareswap-labs/shareswap/domain"
)

// NativeMarker identifies the un-wrapped native asset in the bank ledger.
var NativeMarker = common.HexToAddress("0xEeeeeEeeeEeEeeEeEeEeeEEEeeeeEeeeeeeeEEeE")

var _ domain.WrappedNative = &WrappedNativeMock{}

// WrappedNativeMock wraps the NativeMarker pseudo-token 1:1.
type WrappedNativeMock struct {
	Bank  *BankMock
	Token common.Address
}

// NewWrappedNativeMock creates a wrapped-native mock at the given token
// address.
func NewWrappedNativeMock(token common.Address, bank *BankMock) *WrappedNativeMock {
	return &WrappedNativeMock{Bank: bank, Token: token}
}

// Address implements domain.WrappedNative.
func (w *WrappedNativeMock) Address() common.Address {
	return w.Token
}

// Wrap implements domain.WrappedNative.
func (w *WrappedNativeMock) Wrap(ctx context.Context, amount osmomath.Int) error {
	if err := w.Bank.Move(NativeMarker, w.Bank.Router, w.Token, amount); err != nil {
		return err
	}
	w.Bank.Mint(w.Token, w.Bank.Router, amount)
	return nil
}

// Unwrap implements domain.WrappedNative.
func (w *WrappedNativeMock) Unwrap(ctx context.Context, amount osmomath.Int, to common.Address) error {
	w.Bank.Burn(w.Token, w.Bank.Router, amount)
	return w.Bank.Move(NativeMarker, w.Token, to, amount)
}
