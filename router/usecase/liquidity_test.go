package usecase

import (
	"time"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/shareswap-labs/shareswap/domain"
	"github.com/shareswap-labs/shareswap/domain/mocks"
)

func (s *RouterUsecaseTestSuite) TestQuoteAddLiquidityUnderlying() {
	s.registerPool(shareToken, pairedToken, domain.PoolKindVolatile, e18(1_000), e18(1_000))

	quote, err := s.router.QuoteAddLiquidityUnderlying(s.ctx, tokenA, pairedToken, domain.PoolKindVolatile, e18(10))
	s.Require().NoError(err)

	// $1 token, 1:1 rate, balanced reserves: everything comes out 1:1.
	s.Require().Equal(e18(10), quote.Shares)
	s.Require().Equal(e18(10), quote.PairedAmount)
	s.Require().Equal(e18(10), quote.Liquidity)
}

func (s *RouterUsecaseTestSuite) TestQuoteAddLiquidityUnderlying_MissingPool() {
	_, err := s.router.QuoteAddLiquidityUnderlying(s.ctx, tokenA, pairedToken, domain.PoolKindVolatile, e18(10))

	var notFoundErr domain.PoolNotFoundError
	s.Require().ErrorAs(err, &notFoundErr)
}

func (s *RouterUsecaseTestSuite) TestAddLiquidityUnderlying() {
	s.registerPool(shareToken, pairedToken, domain.PoolKindVolatile, e18(1_000), e18(1_000))
	s.bank.Mint(tokenA, routerAddr, e18(10))
	s.bank.Mint(pairedToken, routerAddr, e18(10))

	liquidity, err := s.router.AddLiquidityUnderlying(s.ctx, tokenA, pairedToken, domain.PoolKindVolatile, e18(10), e18(10), recipientAddr, s.deadline())
	s.Require().NoError(err)
	s.Require().Equal(e18(10), liquidity)

	poolAddress := s.pools.PoolFor(shareToken, pairedToken, domain.PoolKindVolatile)
	s.Require().Equal(e18(10), s.bank.Balance(poolAddress, recipientAddr))

	// The router ends flat.
	s.Require().True(s.bank.Balance(tokenA, routerAddr).IsZero())
	s.Require().True(s.bank.Balance(pairedToken, routerAddr).IsZero())
	s.Require().True(s.bank.Balance(shareToken, routerAddr).IsZero())
}

func (s *RouterUsecaseTestSuite) TestAddLiquidityUnderlying_MinLiquidity() {
	s.registerPool(shareToken, pairedToken, domain.PoolKindVolatile, e18(1_000), e18(1_000))
	s.bank.Mint(tokenA, routerAddr, e18(10))
	s.bank.Mint(pairedToken, routerAddr, e18(10))

	_, err := s.router.AddLiquidityUnderlying(s.ctx, tokenA, pairedToken, domain.PoolKindVolatile, e18(10), e18(11), recipientAddr, s.deadline())

	var insufficientErr domain.InsufficientOutputError
	s.Require().ErrorAs(err, &insufficientErr)

	// Checks fire before any movement.
	s.Require().Equal(e18(10), s.bank.Balance(tokenA, routerAddr))
	s.Require().Equal(e18(10), s.bank.Balance(pairedToken, routerAddr))
}

func (s *RouterUsecaseTestSuite) TestAddLiquidityUnderlying_ExpiredDeadline() {
	_, err := s.router.AddLiquidityUnderlying(s.ctx, tokenA, pairedToken, domain.PoolKindVolatile, e18(10), osmomath.ZeroInt(), recipientAddr, testNow.Add(-time.Second))

	var deadlineErr domain.ExpiredDeadlineError
	s.Require().ErrorAs(err, &deadlineErr)
}

// Round trip: provision from the underlying, then unwind the liquidity back
// into the underlying. The unwind must deliver exactly its quote.
func (s *RouterUsecaseTestSuite) TestRemoveLiquidityUnderlying() {
	s.registerPool(shareToken, pairedToken, domain.PoolKindVolatile, e18(1_000), e18(1_000))
	s.bank.Mint(tokenA, routerAddr, e18(10))
	s.bank.Mint(pairedToken, routerAddr, e18(10))

	liquidity, err := s.router.AddLiquidityUnderlying(s.ctx, tokenA, pairedToken, domain.PoolKindVolatile, e18(10), osmomath.ZeroInt(), recipientAddr, s.deadline())
	s.Require().NoError(err)

	// Hand the liquidity back to the router for the unwind.
	poolAddress := s.pools.PoolFor(shareToken, pairedToken, domain.PoolKindVolatile)
	s.Require().NoError(s.bank.Move(poolAddress, recipientAddr, routerAddr, liquidity))

	quote, err := s.router.QuoteRemoveLiquidityUnderlying(s.ctx, tokenA, pairedToken, domain.PoolKindVolatile, liquidity)
	s.Require().NoError(err)

	underlying, paired, err := s.router.RemoveLiquidityUnderlying(s.ctx, tokenA, pairedToken, domain.PoolKindVolatile, liquidity, quote.UnderlyingAmount, quote.PairedAmount, recipientAddr, s.deadline())
	s.Require().NoError(err)

	s.Require().Equal(quote.UnderlyingAmount, underlying)
	s.Require().Equal(quote.PairedAmount, paired)
	s.Require().Equal(underlying, s.bank.Balance(tokenA, recipientAddr))
	s.Require().Equal(paired, s.bank.Balance(pairedToken, recipientAddr))

	// The router ends flat.
	s.Require().True(s.bank.Balance(shareToken, routerAddr).IsZero())
	s.Require().True(s.bank.Balance(pairedToken, routerAddr).IsZero())
	s.Require().True(s.bank.Balance(poolAddress, routerAddr).IsZero())
}

func (s *RouterUsecaseTestSuite) TestRemoveLiquidityUnderlying_MinUnderlying() {
	s.registerPool(shareToken, pairedToken, domain.PoolKindVolatile, e18(1_000), e18(1_000))

	quote, err := s.router.QuoteRemoveLiquidityUnderlying(s.ctx, tokenA, pairedToken, domain.PoolKindVolatile, e18(10))
	s.Require().NoError(err)

	_, _, err = s.router.RemoveLiquidityUnderlying(s.ctx, tokenA, pairedToken, domain.PoolKindVolatile, e18(10), quote.UnderlyingAmount.AddRaw(1), quote.PairedAmount, recipientAddr, s.deadline())

	var insufficientErr domain.InsufficientOutputError
	s.Require().ErrorAs(err, &insufficientErr)
}

func (s *RouterUsecaseTestSuite) TestQuoteRemoveLiquidityUnderlying_NonPositive() {
	_, err := s.router.QuoteRemoveLiquidityUnderlying(s.ctx, tokenA, pairedToken, domain.PoolKindVolatile, osmomath.ZeroInt())
	s.Require().ErrorIs(err, domain.ErrInvalidAmount)
}

// Native-asset entry: the native input is wrapped and provisioned with the
// wrapped token as the underlying.
func (s *RouterUsecaseTestSuite) TestAddLiquidityETH() {
	s.registerPool(shareToken, pairedToken, domain.PoolKindVolatile, e18(1_000), e18(1_000))
	s.bank.Mint(mocks.NativeMarker, routerAddr, e18(1))
	s.bank.Mint(pairedToken, routerAddr, e18(3_000))

	liquidity, err := s.router.AddLiquidityETH(s.ctx, pairedToken, domain.PoolKindVolatile, e18(1), osmomath.ZeroInt(), recipientAddr, s.deadline())
	s.Require().NoError(err)

	// $3000 wrapped native at a 1:1 rate: one native unit mints 3000 shares.
	s.Require().Equal(e18(3_000), liquidity)

	poolAddress := s.pools.PoolFor(shareToken, pairedToken, domain.PoolKindVolatile)
	s.Require().Equal(e18(3_000), s.bank.Balance(poolAddress, recipientAddr))

	// The router ends flat.
	s.Require().True(s.bank.Balance(mocks.NativeMarker, routerAddr).IsZero())
	s.Require().True(s.bank.Balance(wethToken, routerAddr).IsZero())
	s.Require().True(s.bank.Balance(shareToken, routerAddr).IsZero())
	s.Require().True(s.bank.Balance(pairedToken, routerAddr).IsZero())
}

func (s *RouterUsecaseTestSuite) TestAddLiquidityETH_ExpiredDeadline() {
	s.bank.Mint(mocks.NativeMarker, routerAddr, e18(1))

	_, err := s.router.AddLiquidityETH(s.ctx, pairedToken, domain.PoolKindVolatile, e18(1), osmomath.ZeroInt(), recipientAddr, testNow.Add(-time.Second))

	var deadlineErr domain.ExpiredDeadlineError
	s.Require().ErrorAs(err, &deadlineErr)

	// Nothing was wrapped.
	s.Require().Equal(e18(1), s.bank.Balance(mocks.NativeMarker, routerAddr))
}

// Native-asset unwind: the liquidity burns back into wrapped native plus
// paired, and the wrapped side reaches the recipient as the native asset.
func (s *RouterUsecaseTestSuite) TestRemoveLiquidityETH() {
	s.registerPool(shareToken, pairedToken, domain.PoolKindVolatile, e18(1_000), e18(1_000))
	s.bank.Mint(mocks.NativeMarker, routerAddr, e18(1))
	s.bank.Mint(pairedToken, routerAddr, e18(3_000))

	liquidity, err := s.router.AddLiquidityETH(s.ctx, pairedToken, domain.PoolKindVolatile, e18(1), osmomath.ZeroInt(), recipientAddr, s.deadline())
	s.Require().NoError(err)

	// Hand the liquidity back to the router for the unwind.
	poolAddress := s.pools.PoolFor(shareToken, pairedToken, domain.PoolKindVolatile)
	s.Require().NoError(s.bank.Move(poolAddress, recipientAddr, routerAddr, liquidity))

	quote, err := s.router.QuoteRemoveLiquidityUnderlying(s.ctx, wethToken, pairedToken, domain.PoolKindVolatile, liquidity)
	s.Require().NoError(err)

	native, paired, err := s.router.RemoveLiquidityETH(s.ctx, pairedToken, domain.PoolKindVolatile, liquidity, quote.UnderlyingAmount, quote.PairedAmount, recipientAddr, s.deadline())
	s.Require().NoError(err)

	s.Require().Equal(quote.UnderlyingAmount, native)
	s.Require().Equal(native, s.bank.Balance(mocks.NativeMarker, recipientAddr))
	s.Require().Equal(paired, s.bank.Balance(pairedToken, recipientAddr))

	// The router ends flat.
	s.Require().True(s.bank.Balance(wethToken, routerAddr).IsZero())
	s.Require().True(s.bank.Balance(shareToken, routerAddr).IsZero())
	s.Require().True(s.bank.Balance(pairedToken, routerAddr).IsZero())
}
