package mvc

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/shareswap-labs/shareswap/domain"
)

// SwapFn is the shared signature of the three swap execution entry points.
type SwapFn func(ctx context.Context, amountIn, minAmountOut osmomath.Int, route domain.Route, to common.Address, deadline time.Time) ([]osmomath.Int, error)

// RouterUsecase represents the router's usecases: quoting arbitrary
// multi-hop routes mixing real pool swaps with virtual vault legs, and
// executing them.
type RouterUsecase interface {
	// QuoteRoute returns the amounts array for the route: element 0 is
	// amountIn, element i+1 is the computed output of hop i. Read-only.
	QuoteRoute(ctx context.Context, amountIn osmomath.Int, route domain.Route) ([]osmomath.Int, error)

	// SwapExactTokensForTokens quotes the route, enforces minAmountOut and
	// the deadline, then executes every leg, delivering the output to the
	// recipient. Returns the amounts array the execution was held to.
	SwapExactTokensForTokens(ctx context.Context, amountIn, minAmountOut osmomath.Int, route domain.Route, to common.Address, deadline time.Time) ([]osmomath.Int, error)

	// SwapExactTokensForETH is SwapExactTokensForTokens for routes ending
	// in the wrapped native token; the output is unwrapped to the recipient.
	SwapExactTokensForETH(ctx context.Context, amountIn, minAmountOut osmomath.Int, route domain.Route, to common.Address, deadline time.Time) ([]osmomath.Int, error)

	// SwapExactETHForTokens wraps amountIn of the native asset and routes
	// it; the route must start at the wrapped native token.
	SwapExactETHForTokens(ctx context.Context, amountIn, minAmountOut osmomath.Int, route domain.Route, to common.Address, deadline time.Time) ([]osmomath.Int, error)

	// QuoteAddLiquidityUnderlying quotes provisioning liquidity for the
	// (share token, paired token) pool from an underlying vault-native
	// token.
	QuoteAddLiquidityUnderlying(ctx context.Context, underlying, paired common.Address, kind domain.PoolKind, amount osmomath.Int) (domain.AddLiquidityQuote, error)

	// QuoteRemoveLiquidityUnderlying quotes unwinding liquidity of the
	// (share token, paired token) pool back into an underlying token.
	QuoteRemoveLiquidityUnderlying(ctx context.Context, underlying, paired common.Address, kind domain.PoolKind, liquidity osmomath.Int) (domain.RemoveLiquidityQuote, error)

	// AddLiquidityUnderlying deposits the underlying for shares and mints
	// pool liquidity to the recipient. Returns the liquidity received.
	AddLiquidityUnderlying(ctx context.Context, underlying, paired common.Address, kind domain.PoolKind, amount, minLiquidity osmomath.Int, to common.Address, deadline time.Time) (osmomath.Int, error)

	// RemoveLiquidityUnderlying burns pool liquidity and redeems the share
	// side into the underlying, delivering both amounts to the recipient.
	// Returns (underlying amount, paired amount).
	RemoveLiquidityUnderlying(ctx context.Context, underlying, paired common.Address, kind domain.PoolKind, liquidity, minUnderlying, minPaired osmomath.Int, to common.Address, deadline time.Time) (osmomath.Int, osmomath.Int, error)

	// AddLiquidityETH is AddLiquidityUnderlying with the wrapped native
	// token as the underlying: amount of the native asset is wrapped first.
	AddLiquidityETH(ctx context.Context, paired common.Address, kind domain.PoolKind, amount, minLiquidity osmomath.Int, to common.Address, deadline time.Time) (osmomath.Int, error)

	// RemoveLiquidityETH is RemoveLiquidityUnderlying with the wrapped
	// native token as the underlying; the redeemed wrapped amount is
	// unwrapped so the recipient receives the native asset alongside the
	// paired tokens. Returns (native amount, paired amount).
	RemoveLiquidityETH(ctx context.Context, paired common.Address, kind domain.PoolKind, liquidity, minNative, minPaired osmomath.Int, to common.Address, deadline time.Time) (osmomath.Int, osmomath.Int, error)

	// GetConfig returns the router config.
	GetConfig() domain.RouterConfig
}
