package usecase_test

import (
	"context"
	"errors"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/stretchr/testify/suite"

	"github.com/shareswap-labs/shareswap/domain"
	"github.com/shareswap-labs/shareswap/domain/mocks"
	"github.com/shareswap-labs/shareswap/domain/mvc"
	"github.com/shareswap-labs/shareswap/log"
	poolsusecase "github.com/shareswap-labs/shareswap/pools/usecase"
)

var (
	routerAddr  = common.HexToAddress("0x1000000000000000000000000000000000000001")
	factoryAddr = common.HexToAddress("0x1000000000000000000000000000000000000002")
	implAddr    = common.HexToAddress("0x1000000000000000000000000000000000000003")

	tokenX = common.HexToAddress("0x3000000000000000000000000000000000000001")
	tokenY = common.HexToAddress("0x3000000000000000000000000000000000000002")
)

func e18(n int64) osmomath.Int {
	return osmomath.NewInt(n).Mul(sdkmath.NewIntWithDecimal(1, 18))
}

type PoolsUsecaseTestSuite struct {
	suite.Suite

	ctx context.Context

	bank    *mocks.BankMock
	factory *mocks.FactoryMock
	pools   mvc.PoolsUsecase
}

func TestPoolsUsecaseTestSuite(t *testing.T) {
	suite.Run(t, new(PoolsUsecaseTestSuite))
}

func (s *PoolsUsecaseTestSuite) SetupTest() {
	s.ctx = context.Background()

	s.bank = mocks.NewBankMock(routerAddr)
	s.factory = mocks.NewFactoryMock()

	pools, err := poolsusecase.NewPoolsUsecase(factoryAddr, implAddr, s.factory, s.factory.PoolClient, 0, log.NewNopLogger())
	s.Require().NoError(err)
	s.pools = pools
}

func (s *PoolsUsecaseTestSuite) registerPool(kind domain.PoolKind, reserveX, reserveY osmomath.Int) *mocks.PoolMock {
	address := s.pools.PoolFor(tokenX, tokenY, kind)

	token0, token1 := domain.SortTokens(tokenX, tokenY)
	reserve0, reserve1 := reserveX, reserveY
	if token0 != tokenX {
		reserve0, reserve1 = reserveY, reserveX
	}

	pool := mocks.NewPoolMock(address, token0, token1, reserve0, reserve1, s.bank)
	s.factory.Register(pool, kind)
	return pool
}

// The locator must be symmetric in the pair and distinct per kind.
func (s *PoolsUsecaseTestSuite) TestPoolFor_Deterministic() {
	volatile := s.pools.PoolFor(tokenX, tokenY, domain.PoolKindVolatile)
	s.Require().Equal(volatile, s.pools.PoolFor(tokenY, tokenX, domain.PoolKindVolatile))

	stable := s.pools.PoolFor(tokenX, tokenY, domain.PoolKindStable)
	s.Require().Equal(stable, s.pools.PoolFor(tokenY, tokenX, domain.PoolKindStable))

	s.Require().NotEqual(volatile, stable)
	s.Require().NotEqual(common.Address{}, volatile)
}

func (s *PoolsUsecaseTestSuite) TestExists() {
	address := s.pools.PoolFor(tokenX, tokenY, domain.PoolKindVolatile)

	exists, err := s.pools.Exists(s.ctx, address)
	s.Require().NoError(err)
	s.Require().False(exists)

	s.registerPool(domain.PoolKindVolatile, e18(100), e18(100))

	exists, err = s.pools.Exists(s.ctx, address)
	s.Require().NoError(err)
	s.Require().True(exists)
}

// A positive existence answer is cached; a negative one is re-checked every
// time because the pool may be created later.
func (s *PoolsUsecaseTestSuite) TestExists_CachesPositiveOnly() {
	address := s.pools.PoolFor(tokenX, tokenY, domain.PoolKindVolatile)

	exists, err := s.pools.Exists(s.ctx, address)
	s.Require().NoError(err)
	s.Require().False(exists)

	s.registerPool(domain.PoolKindVolatile, e18(100), e18(100))

	exists, err = s.pools.Exists(s.ctx, address)
	s.Require().NoError(err)
	s.Require().True(exists)

	// Cached: the factory no longer gets asked.
	s.factory.IsPoolErr = errors.New("rpc down")
	exists, err = s.pools.Exists(s.ctx, address)
	s.Require().NoError(err)
	s.Require().True(exists)

	// A never-seen address still hits the failing factory.
	other := s.pools.PoolFor(tokenX, tokenY, domain.PoolKindStable)
	_, err = s.pools.Exists(s.ctx, other)
	s.Require().Error(err)
}

func (s *PoolsUsecaseTestSuite) TestGetAmountOutByKind_SilentZero() {
	out, err := s.pools.GetAmountOutByKind(s.ctx, e18(1), tokenX, tokenY, domain.PoolKindVolatile)
	s.Require().NoError(err)
	s.Require().True(out.IsZero())
}

func (s *PoolsUsecaseTestSuite) TestGetAmountOutByKind_Quotes() {
	pool := s.registerPool(domain.PoolKindVolatile, e18(1_000), e18(1_000))

	expected, err := pool.GetAmountOut(s.ctx, e18(1), tokenX)
	s.Require().NoError(err)

	out, err := s.pools.GetAmountOutByKind(s.ctx, e18(1), tokenX, tokenY, domain.PoolKindVolatile)
	s.Require().NoError(err)
	s.Require().Equal(expected, out)
	s.Require().True(out.IsPositive())
}

// The two-sided lookup picks whichever pool kind pays more.
func (s *PoolsUsecaseTestSuite) TestGetAmountOut_PicksBetterSide() {
	s.registerPool(domain.PoolKindVolatile, e18(1_000), e18(1_000))
	// Deeper reserves on the output side make the stable pool pay better.
	s.registerPool(domain.PoolKindStable, e18(1_000), e18(2_000))

	out, kind, found, err := s.pools.GetAmountOut(s.ctx, e18(1), tokenX, tokenY)
	s.Require().NoError(err)
	s.Require().True(found)
	s.Require().Equal(domain.PoolKindStable, kind)

	volatileOut, err := s.pools.GetAmountOutByKind(s.ctx, e18(1), tokenX, tokenY, domain.PoolKindVolatile)
	s.Require().NoError(err)
	s.Require().True(out.GT(volatileOut))
}

func (s *PoolsUsecaseTestSuite) TestGetAmountOut_NoPools() {
	_, _, found, err := s.pools.GetAmountOut(s.ctx, e18(1), tokenX, tokenY)
	s.Require().NoError(err)
	s.Require().False(found)
}

func (s *PoolsUsecaseTestSuite) TestEnsurePool_Existing() {
	registered := s.registerPool(domain.PoolKindVolatile, e18(100), e18(100))

	pool, err := s.pools.EnsurePool(s.ctx, tokenX, tokenY, domain.PoolKindVolatile)
	s.Require().NoError(err)
	s.Require().Equal(registered.Address(), pool.Address())
}

func (s *PoolsUsecaseTestSuite) TestEnsurePool_CreatesMissing() {
	expected := s.pools.PoolFor(tokenX, tokenY, domain.PoolKindVolatile)

	s.factory.CreatePoolFn = func(ctx context.Context, tokenA, tokenB common.Address, kind domain.PoolKind) (common.Address, error) {
		s.registerPool(kind, osmomath.ZeroInt(), osmomath.ZeroInt())
		return expected, nil
	}

	pool, err := s.pools.EnsurePool(s.ctx, tokenX, tokenY, domain.PoolKindVolatile)
	s.Require().NoError(err)
	s.Require().Equal(expected, pool.Address())

	// Now cached as existing.
	exists, err := s.pools.Exists(s.ctx, expected)
	s.Require().NoError(err)
	s.Require().True(exists)
}

func (s *PoolsUsecaseTestSuite) TestEnsurePool_AddressMismatch() {
	s.factory.CreatePoolFn = func(ctx context.Context, tokenA, tokenB common.Address, kind domain.PoolKind) (common.Address, error) {
		return common.HexToAddress("0xdead000000000000000000000000000000000000"), nil
	}

	_, err := s.pools.EnsurePool(s.ctx, tokenX, tokenY, domain.PoolKindVolatile)
	s.Require().Error(err)
}
