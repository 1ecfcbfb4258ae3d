package usecase

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/osmosis-labs/osmosis/osmomath"
	"go.uber.org/zap"

	"github.com/shareswap-labs/shareswap/domain"
)

// Liquidity helpers provision and unwind liquidity for (share token, paired
// token) pools starting from an underlying vault-native token, so callers
// never have to hold the share token themselves. The share side always
// settles through the vault; the paired side moves as plain transfers.

// QuoteAddLiquidityUnderlying implements mvc.RouterUsecase.
func (r *routerUseCase) QuoteAddLiquidityUnderlying(ctx context.Context, underlying, paired common.Address, kind domain.PoolKind, amount osmomath.Int) (domain.AddLiquidityQuote, error) {
	shares, err := r.conversion.MintQuote(ctx, underlying, amount)
	if err != nil {
		return domain.AddLiquidityQuote{}, err
	}

	shareToken := r.tokens.ShareToken()

	reserveShare, reservePaired, supply, err := r.pairReserves(ctx, shareToken, paired, kind)
	if err != nil {
		return domain.AddLiquidityQuote{}, err
	}

	// Pro-rata against current reserves: the paired amount matches the share
	// side, the liquidity out is the minimum of the two pro-rata figures.
	pairedAmount := shares.Mul(reservePaired).Quo(reserveShare)
	liquidity := osmomath.MinInt(
		shares.Mul(supply).Quo(reserveShare),
		pairedAmount.Mul(supply).Quo(reservePaired),
	)

	return domain.AddLiquidityQuote{
		Shares:       shares,
		PairedAmount: pairedAmount,
		Liquidity:    liquidity,
	}, nil
}

// QuoteRemoveLiquidityUnderlying implements mvc.RouterUsecase.
func (r *routerUseCase) QuoteRemoveLiquidityUnderlying(ctx context.Context, underlying, paired common.Address, kind domain.PoolKind, liquidity osmomath.Int) (domain.RemoveLiquidityQuote, error) {
	if liquidity.IsNil() || !liquidity.IsPositive() {
		return domain.RemoveLiquidityQuote{}, domain.ErrInvalidAmount
	}

	shareToken := r.tokens.ShareToken()

	reserveShare, reservePaired, supply, err := r.pairReserves(ctx, shareToken, paired, kind)
	if err != nil {
		return domain.RemoveLiquidityQuote{}, err
	}

	shareAmount := liquidity.Mul(reserveShare).Quo(supply)
	pairedAmount := liquidity.Mul(reservePaired).Quo(supply)

	underlyingAmount, err := r.conversion.RedeemQuote(ctx, underlying, shareAmount, false)
	if err != nil {
		return domain.RemoveLiquidityQuote{}, err
	}

	return domain.RemoveLiquidityQuote{
		UnderlyingAmount: underlyingAmount,
		PairedAmount:     pairedAmount,
	}, nil
}

// AddLiquidityUnderlying implements mvc.RouterUsecase. The caller must have
// funded the router with amount of the underlying and the quoted paired
// amount beforehand.
func (r *routerUseCase) AddLiquidityUnderlying(ctx context.Context, underlying, paired common.Address, kind domain.PoolKind, amount, minLiquidity osmomath.Int, to common.Address, deadline time.Time) (osmomath.Int, error) {
	if err := r.checkDeadline(deadline); err != nil {
		return osmomath.Int{}, err
	}

	quote, err := r.QuoteAddLiquidityUnderlying(ctx, underlying, paired, kind, amount)
	if err != nil {
		return osmomath.Int{}, err
	}
	if !minLiquidity.IsNil() && quote.Liquidity.LT(minLiquidity) {
		return osmomath.Int{}, domain.InsufficientOutputError{MinAmountOut: minLiquidity, ActualAmountOut: quote.Liquidity}
	}

	shareToken := r.tokens.ShareToken()

	pool, err := r.pools.EnsurePool(ctx, shareToken, paired, kind)
	if err != nil {
		return osmomath.Int{}, err
	}

	sharesBefore, err := r.bank.BalanceOf(ctx, shareToken, r.routerAddress)
	if err != nil {
		return osmomath.Int{}, err
	}
	if err := r.vault.Deposit(ctx, underlying, amount); err != nil {
		return osmomath.Int{}, err
	}
	sharesAfter, err := r.bank.BalanceOf(ctx, shareToken, r.routerAddress)
	if err != nil {
		return osmomath.Int{}, err
	}
	minted := sharesAfter.Sub(sharesBefore)

	if err := r.bank.Transfer(ctx, shareToken, pool.Address(), minted); err != nil {
		return osmomath.Int{}, domain.TransferFailureError{Token: shareToken, To: pool.Address(), Err: err}
	}
	if err := r.bank.Transfer(ctx, paired, pool.Address(), quote.PairedAmount); err != nil {
		return osmomath.Int{}, domain.TransferFailureError{Token: paired, To: pool.Address(), Err: err}
	}

	// The liquidity token is the pool itself; measure what lands on the
	// recipient.
	liquidityBefore, err := r.bank.BalanceOf(ctx, pool.Address(), to)
	if err != nil {
		return osmomath.Int{}, err
	}
	if err := pool.Mint(ctx, to); err != nil {
		return osmomath.Int{}, err
	}
	liquidityAfter, err := r.bank.BalanceOf(ctx, pool.Address(), to)
	if err != nil {
		return osmomath.Int{}, err
	}

	liquidity := liquidityAfter.Sub(liquidityBefore)

	r.logger.Debug("added liquidity from underlying",
		zap.String("underlying", underlying.Hex()),
		zap.String("paired", paired.Hex()),
		zap.String("amount", amount.String()),
		zap.String("liquidity", liquidity.String()),
	)

	return liquidity, nil
}

// RemoveLiquidityUnderlying implements mvc.RouterUsecase. The caller must
// have funded the router with the liquidity tokens beforehand; both outputs
// are delivered to the recipient.
func (r *routerUseCase) RemoveLiquidityUnderlying(ctx context.Context, underlying, paired common.Address, kind domain.PoolKind, liquidity, minUnderlying, minPaired osmomath.Int, to common.Address, deadline time.Time) (osmomath.Int, osmomath.Int, error) {
	if err := r.checkDeadline(deadline); err != nil {
		return osmomath.Int{}, osmomath.Int{}, err
	}

	quote, err := r.QuoteRemoveLiquidityUnderlying(ctx, underlying, paired, kind, liquidity)
	if err != nil {
		return osmomath.Int{}, osmomath.Int{}, err
	}
	if !minUnderlying.IsNil() && quote.UnderlyingAmount.LT(minUnderlying) {
		return osmomath.Int{}, osmomath.Int{}, domain.InsufficientOutputError{MinAmountOut: minUnderlying, ActualAmountOut: quote.UnderlyingAmount}
	}
	if !minPaired.IsNil() && quote.PairedAmount.LT(minPaired) {
		return osmomath.Int{}, osmomath.Int{}, domain.InsufficientOutputError{MinAmountOut: minPaired, ActualAmountOut: quote.PairedAmount}
	}

	shareToken := r.tokens.ShareToken()

	address := r.pools.PoolFor(shareToken, paired, kind)
	exists, err := r.pools.Exists(ctx, address)
	if err != nil {
		return osmomath.Int{}, osmomath.Int{}, err
	}
	if !exists {
		return osmomath.Int{}, osmomath.Int{}, domain.PoolNotFoundError{Pool: address, TokenA: shareToken, TokenB: paired, Kind: kind}
	}
	pool := r.pools.Pool(address)

	if err := r.bank.Transfer(ctx, address, address, liquidity); err != nil {
		return osmomath.Int{}, osmomath.Int{}, domain.TransferFailureError{Token: address, To: address, Err: err}
	}

	sharesBefore, err := r.bank.BalanceOf(ctx, shareToken, r.routerAddress)
	if err != nil {
		return osmomath.Int{}, osmomath.Int{}, err
	}
	pairedBefore, err := r.bank.BalanceOf(ctx, paired, r.routerAddress)
	if err != nil {
		return osmomath.Int{}, osmomath.Int{}, err
	}

	if err := pool.Burn(ctx, r.routerAddress); err != nil {
		return osmomath.Int{}, osmomath.Int{}, err
	}

	sharesAfter, err := r.bank.BalanceOf(ctx, shareToken, r.routerAddress)
	if err != nil {
		return osmomath.Int{}, osmomath.Int{}, err
	}
	pairedAfter, err := r.bank.BalanceOf(ctx, paired, r.routerAddress)
	if err != nil {
		return osmomath.Int{}, osmomath.Int{}, err
	}

	shares := sharesAfter.Sub(sharesBefore)
	pairedAmount := pairedAfter.Sub(pairedBefore)

	underlyingBefore, err := r.bank.BalanceOf(ctx, underlying, to)
	if err != nil {
		return osmomath.Int{}, osmomath.Int{}, err
	}
	if err := r.vault.Withdraw(ctx, underlying, shares, to); err != nil {
		return osmomath.Int{}, osmomath.Int{}, err
	}
	underlyingAfter, err := r.bank.BalanceOf(ctx, underlying, to)
	if err != nil {
		return osmomath.Int{}, osmomath.Int{}, err
	}

	if err := r.bank.Transfer(ctx, paired, to, pairedAmount); err != nil {
		return osmomath.Int{}, osmomath.Int{}, domain.TransferFailureError{Token: paired, To: to, Err: err}
	}

	return underlyingAfter.Sub(underlyingBefore), pairedAmount, nil
}

// AddLiquidityETH implements mvc.RouterUsecase. The caller must have funded
// the router with amount of the native asset; it is wrapped and then
// provisioned exactly like an AddLiquidityUnderlying call with the wrapped
// token as the underlying.
func (r *routerUseCase) AddLiquidityETH(ctx context.Context, paired common.Address, kind domain.PoolKind, amount, minLiquidity osmomath.Int, to common.Address, deadline time.Time) (osmomath.Int, error) {
	if err := r.checkDeadline(deadline); err != nil {
		return osmomath.Int{}, err
	}

	if err := r.wrappedNative.Wrap(ctx, amount); err != nil {
		return osmomath.Int{}, err
	}
	return r.AddLiquidityUnderlying(ctx, r.wrappedNative.Address(), paired, kind, amount, minLiquidity, to, deadline)
}

// RemoveLiquidityETH implements mvc.RouterUsecase. Unwinds into the wrapped
// native token on the router's own account, unwraps that amount to the
// recipient and forwards the paired tokens.
func (r *routerUseCase) RemoveLiquidityETH(ctx context.Context, paired common.Address, kind domain.PoolKind, liquidity, minNative, minPaired osmomath.Int, to common.Address, deadline time.Time) (osmomath.Int, osmomath.Int, error) {
	nativeAmount, pairedAmount, err := r.RemoveLiquidityUnderlying(ctx, r.wrappedNative.Address(), paired, kind, liquidity, minNative, minPaired, r.routerAddress, deadline)
	if err != nil {
		return osmomath.Int{}, osmomath.Int{}, err
	}

	if err := r.wrappedNative.Unwrap(ctx, nativeAmount, to); err != nil {
		return osmomath.Int{}, osmomath.Int{}, err
	}
	if err := r.bank.Transfer(ctx, paired, to, pairedAmount); err != nil {
		return osmomath.Int{}, osmomath.Int{}, domain.TransferFailureError{Token: paired, To: to, Err: err}
	}
	return nativeAmount, pairedAmount, nil
}

// pairReserves loads the (share, paired) pool's reserves in pair order plus
// its liquidity supply, failing on undeployed or empty pools.
func (r *routerUseCase) pairReserves(ctx context.Context, shareToken, paired common.Address, kind domain.PoolKind) (reserveShare, reservePaired, supply osmomath.Int, err error) {
	address := r.pools.PoolFor(shareToken, paired, kind)

	exists, err := r.pools.Exists(ctx, address)
	if err != nil {
		return osmomath.Int{}, osmomath.Int{}, osmomath.Int{}, err
	}
	if !exists {
		return osmomath.Int{}, osmomath.Int{}, osmomath.Int{}, domain.PoolNotFoundError{Pool: address, TokenA: shareToken, TokenB: paired, Kind: kind}
	}
	pool := r.pools.Pool(address)

	reserve0, reserve1, _, err := pool.GetReserves(ctx)
	if err != nil {
		return osmomath.Int{}, osmomath.Int{}, osmomath.Int{}, err
	}
	supply, err = pool.TotalSupply(ctx)
	if err != nil {
		return osmomath.Int{}, osmomath.Int{}, osmomath.Int{}, err
	}
	if supply.IsZero() || reserve0.IsZero() || reserve1.IsZero() {
		return osmomath.Int{}, osmomath.Int{}, osmomath.Int{}, domain.ErrNoPoolLiquidity
	}

	if token0, _ := domain.SortTokens(shareToken, paired); token0 == shareToken {
		return reserve0, reserve1, supply, nil
	}
	return reserve1, reserve0, supply, nil
}
