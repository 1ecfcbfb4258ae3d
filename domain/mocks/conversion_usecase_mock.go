package mocks

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/shareswap-labs/shareswap/domain"
	"github.com/shareswap-labs/shareswap/domain/mvc"
)

var _ mvc.ConversionUsecase = &ConversionUsecaseMock{}

// ConversionUsecaseMock is a mock implementation of the ConversionUsecase
// interface. The WithSet variants fall back to the plain Funcs when their
// own Func is unset.
type ConversionUsecaseMock struct {
	MintQuoteFunc             func(ctx context.Context, token common.Address, amount osmomath.Int) (osmomath.Int, error)
	MintQuoteWithSetFunc      func(ctx context.Context, set domain.TokenSet, token common.Address, amount osmomath.Int) (osmomath.Int, error)
	RedeemQuoteFunc           func(ctx context.Context, token common.Address, shares osmomath.Int, roundUp bool) (osmomath.Int, error)
	RedeemQuoteWithSetFunc    func(ctx context.Context, set domain.TokenSet, token common.Address, shares osmomath.Int, roundUp bool) (osmomath.Int, error)
	SharesNeededForAmountFunc func(ctx context.Context, token common.Address, amount osmomath.Int) (osmomath.Int, error)
	AmountNeededForSharesFunc func(ctx context.Context, token common.Address, shares osmomath.Int) (osmomath.Int, error)
}

func (m *ConversionUsecaseMock) MintQuote(ctx context.Context, token common.Address, amount osmomath.Int) (osmomath.Int, error) {
	if m.MintQuoteFunc != nil {
		return m.MintQuoteFunc(ctx, token, amount)
	}
	panic("unimplemented")
}

func (m *ConversionUsecaseMock) MintQuoteWithSet(ctx context.Context, set domain.TokenSet, token common.Address, amount osmomath.Int) (osmomath.Int, error) {
	if m.MintQuoteWithSetFunc != nil {
		return m.MintQuoteWithSetFunc(ctx, set, token, amount)
	}
	return m.MintQuote(ctx, token, amount)
}

func (m *ConversionUsecaseMock) RedeemQuote(ctx context.Context, token common.Address, shares osmomath.Int, roundUp bool) (osmomath.Int, error) {
	if m.RedeemQuoteFunc != nil {
		return m.RedeemQuoteFunc(ctx, token, shares, roundUp)
	}
	panic("unimplemented")
}

func (m *ConversionUsecaseMock) RedeemQuoteWithSet(ctx context.Context, set domain.TokenSet, token common.Address, shares osmomath.Int, roundUp bool) (osmomath.Int, error) {
	if m.RedeemQuoteWithSetFunc != nil {
		return m.RedeemQuoteWithSetFunc(ctx, set, token, shares, roundUp)
	}
	return m.RedeemQuote(ctx, token, shares, roundUp)
}

func (m *ConversionUsecaseMock) SharesNeededForAmount(ctx context.Context, token common.Address, amount osmomath.Int) (osmomath.Int, error) {
	if m.SharesNeededForAmountFunc != nil {
		return m.SharesNeededForAmountFunc(ctx, token, amount)
	}
	panic("unimplemented")
}

func (m *ConversionUsecaseMock) AmountNeededForShares(ctx context.Context, token common.Address, shares osmomath.Int) (osmomath.Int, error) {
	if m.AmountNeededForSharesFunc != nil {
		return m.AmountNeededForSharesFunc(ctx, token, shares)
	}
	panic("unimplemented")
}
