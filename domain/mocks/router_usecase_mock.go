package mocks

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/shareswap-labs/shareswap/domain"
	"github.com/shareswap-labs/shareswap/domain/mvc"
)

var _ mvc.RouterUsecase = &RouterUsecaseMock{}

// RouterUsecaseMock is a mock implementation of the RouterUsecase interface.
type RouterUsecaseMock struct {
	QuoteRouteFunc                     func(ctx context.Context, amountIn osmomath.Int, route domain.Route) ([]osmomath.Int, error)
	SwapExactTokensForTokensFunc       func(ctx context.Context, amountIn, minAmountOut osmomath.Int, route domain.Route, to common.Address, deadline time.Time) ([]osmomath.Int, error)
	SwapExactTokensForETHFunc          func(ctx context.Context, amountIn, minAmountOut osmomath.Int, route domain.Route, to common.Address, deadline time.Time) ([]osmomath.Int, error)
	SwapExactETHForTokensFunc          func(ctx context.Context, amountIn, minAmountOut osmomath.Int, route domain.Route, to common.Address, deadline time.Time) ([]osmomath.Int, error)
	QuoteAddLiquidityUnderlyingFunc    func(ctx context.Context, underlying, paired common.Address, kind domain.PoolKind, amount osmomath.Int) (domain.AddLiquidityQuote, error)
	QuoteRemoveLiquidityUnderlyingFunc func(ctx context.Context, underlying, paired common.Address, kind domain.PoolKind, liquidity osmomath.Int) (domain.RemoveLiquidityQuote, error)
	AddLiquidityUnderlyingFunc         func(ctx context.Context, underlying, paired common.Address, kind domain.PoolKind, amount, minLiquidity osmomath.Int, to common.Address, deadline time.Time) (osmomath.Int, error)
	RemoveLiquidityUnderlyingFunc      func(ctx context.Context, underlying, paired common.Address, kind domain.PoolKind, liquidity, minUnderlying, minPaired osmomath.Int, to common.Address, deadline time.Time) (osmomath.Int, osmomath.Int, error)
	AddLiquidityETHFunc                func(ctx context.Context, paired common.Address, kind domain.PoolKind, amount, minLiquidity osmomath.Int, to common.Address, deadline time.Time) (osmomath.Int, error)
	RemoveLiquidityETHFunc             func(ctx context.Context, paired common.Address, kind domain.PoolKind, liquidity, minNative, minPaired osmomath.Int, to common.Address, deadline time.Time) (osmomath.Int, osmomath.Int, error)
	GetConfigFunc                      func() domain.RouterConfig
}

func (m *RouterUsecaseMock) QuoteRoute(ctx context.Context, amountIn osmomath.Int, route domain.Route) ([]osmomath.Int, error) {
	if m.QuoteRouteFunc != nil {
		return m.QuoteRouteFunc(ctx, amountIn, route)
	}
	panic("unimplemented")
}

func (m *RouterUsecaseMock) SwapExactTokensForTokens(ctx context.Context, amountIn, minAmountOut osmomath.Int, route domain.Route, to common.Address, deadline time.Time) ([]osmomath.Int, error) {
	if m.SwapExactTokensForTokensFunc != nil {
		return m.SwapExactTokensForTokensFunc(ctx, amountIn, minAmountOut, route, to, deadline)
	}
	panic("unimplemented")
}

func (m *RouterUsecaseMock) SwapExactTokensForETH(ctx context.Context, amountIn, minAmountOut osmomath.Int, route domain.Route, to common.Address, deadline time.Time) ([]osmomath.Int, error) {
	if m.SwapExactTokensForETHFunc != nil {
		return m.SwapExactTokensForETHFunc(ctx, amountIn, minAmountOut, route, to, deadline)
	}
	panic("unimplemented")
}

func (m *RouterUsecaseMock) SwapExactETHForTokens(ctx context.Context, amountIn, minAmountOut osmomath.Int, route domain.Route, to common.Address, deadline time.Time) ([]osmomath.Int, error) {
	if m.SwapExactETHForTokensFunc != nil {
		return m.SwapExactETHForTokensFunc(ctx, amountIn, minAmountOut, route, to, deadline)
	}
	panic("unimplemented")
}

func (m *RouterUsecaseMock) QuoteAddLiquidityUnderlying(ctx context.Context, underlying, paired common.Address, kind domain.PoolKind, amount osmomath.Int) (domain.AddLiquidityQuote, error) {
	if m.QuoteAddLiquidityUnderlyingFunc != nil {
		return m.QuoteAddLiquidityUnderlyingFunc(ctx, underlying, paired, kind, amount)
	}
	panic("unimplemented")
}

func (m *RouterUsecaseMock) QuoteRemoveLiquidityUnderlying(ctx context.Context, underlying, paired common.Address, kind domain.PoolKind, liquidity osmomath.Int) (domain.RemoveLiquidityQuote, error) {
	if m.QuoteRemoveLiquidityUnderlyingFunc != nil {
		return m.QuoteRemoveLiquidityUnderlyingFunc(ctx, underlying, paired, kind, liquidity)
	}
	panic("unimplemented")
}

func (m *RouterUsecaseMock) AddLiquidityUnderlying(ctx context.Context, underlying, paired common.Address, kind domain.PoolKind, amount, minLiquidity osmomath.Int, to common.Address, deadline time.Time) (osmomath.Int, error) {
	if m.AddLiquidityUnderlyingFunc != nil {
		return m.AddLiquidityUnderlyingFunc(ctx, underlying, paired, kind, amount, minLiquidity, to, deadline)
	}
	panic("unimplemented")
}

func (m *RouterUsecaseMock) RemoveLiquidityUnderlying(ctx context.Context, underlying, paired common.Address, kind domain.PoolKind, liquidity, minUnderlying, minPaired osmomath.Int, to common.Address, deadline time.Time) (osmomath.Int, osmomath.Int, error) {
	if m.RemoveLiquidityUnderlyingFunc != nil {
		return m.RemoveLiquidityUnderlyingFunc(ctx, underlying, paired, kind, liquidity, minUnderlying, minPaired, to, deadline)
	}
	panic("unimplemented")
}

func (m *RouterUsecaseMock) AddLiquidityETH(ctx context.Context, paired common.Address, kind domain.PoolKind, amount, minLiquidity osmomath.Int, to common.Address, deadline time.Time) (osmomath.Int, error) {
	if m.AddLiquidityETHFunc != nil {
		return m.AddLiquidityETHFunc(ctx, paired, kind, amount, minLiquidity, to, deadline)
	}
	panic("unimplemented")
}

func (m *RouterUsecaseMock) RemoveLiquidityETH(ctx context.Context, paired common.Address, kind domain.PoolKind, liquidity, minNative, minPaired osmomath.Int, to common.Address, deadline time.Time) (osmomath.Int, osmomath.Int, error) {
	if m.RemoveLiquidityETHFunc != nil {
		return m.RemoveLiquidityETHFunc(ctx, paired, kind, liquidity, minNative, minPaired, to, deadline)
	}
	panic("unimplemented")
}

func (m *RouterUsecaseMock) GetConfig() domain.RouterConfig {
	if m.GetConfigFunc != nil {
		return m.GetConfigFunc()
	}
	return domain.RouterConfig{}
}
