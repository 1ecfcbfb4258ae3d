package usecase

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/shareswap-labs/shareswap/domain"
	"github.com/shareswap-labs/shareswap/domain/mvc"
	"github.com/shareswap-labs/shareswap/log"
)

const defaultPoolExistenceCacheSize = 2048

var missingPoolQuoteCounter = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "shareswap_quote_missing_pool_total",
		Help: "Number of real-pool quote legs that resolved to an undeployed pool and yielded a silent zero.",
	},
	[]string{"kind"},
)

func init() {
	prometheus.MustRegister(missingPoolQuoteCounter)
}

type poolsUseCase struct {
	factoryAddress common.Address
	initCodeHash   common.Hash

	factory    domain.PoolFactory
	poolClient domain.PoolClientFn

	// Caches positive isPool answers only: a pool deployed once stays
	// deployed, while an absent pool may be created later.
	existenceCache *lru.Cache[common.Address, struct{}]

	logger log.Logger
}

var _ mvc.PoolsUsecase = &poolsUseCase{}

// NewPoolsUsecase creates the pool locator/access usecase. implementation
// is the factory's clone deployment template; cacheSize bounds the
// pool-existence cache (0 selects the default).
func NewPoolsUsecase(factoryAddress, implementation common.Address, factory domain.PoolFactory, poolClient domain.PoolClientFn, cacheSize int, logger log.Logger) (mvc.PoolsUsecase, error) {
	if cacheSize <= 0 {
		cacheSize = defaultPoolExistenceCacheSize
	}
	existenceCache, err := lru.New[common.Address, struct{}](cacheSize)
	if err != nil {
		return nil, err
	}

	return &poolsUseCase{
		factoryAddress: factoryAddress,
		initCodeHash:   crypto.Keccak256Hash(cloneInitCode(implementation)),
		factory:        factory,
		poolClient:     poolClient,
		existenceCache: existenceCache,
		logger:         logger,
	}, nil
}

// PoolFor implements mvc.PoolsUsecase. The address is derived with no
// external call: CREATE2 over the factory, a salt of the canonical pair
// plus the kind flag, and the clone init-code hash.
func (p *poolsUseCase) PoolFor(tokenA, tokenB common.Address, kind domain.PoolKind) common.Address {
	token0, token1 := domain.SortTokens(tokenA, tokenB)

	packed := make([]byte, 0, 2*common.AddressLength+1)
	packed = append(packed, token0.Bytes()...)
	packed = append(packed, token1.Bytes()...)
	if kind.IsStable() {
		packed = append(packed, 1)
	} else {
		packed = append(packed, 0)
	}

	salt := crypto.Keccak256Hash(packed)
	return crypto.CreateAddress2(p.factoryAddress, salt, p.initCodeHash.Bytes())
}

// Pool implements mvc.PoolsUsecase.
func (p *poolsUseCase) Pool(address common.Address) domain.Pool {
	return p.poolClient(address)
}

// Exists implements mvc.PoolsUsecase.
func (p *poolsUseCase) Exists(ctx context.Context, pool common.Address) (bool, error) {
	if _, ok := p.existenceCache.Get(pool); ok {
		return true, nil
	}

	isPool, err := p.factory.IsPool(ctx, pool)
	if err != nil {
		return false, err
	}
	if isPool {
		p.existenceCache.Add(pool, struct{}{})
	}
	return isPool, nil
}

// GetAmountOut implements mvc.PoolsUsecase. Two-sided lookup: quotes both
// candidate pools and returns whichever yields the larger output, defaulting
// to zero/false when neither exists.
func (p *poolsUseCase) GetAmountOut(ctx context.Context, amountIn osmomath.Int, tokenIn, tokenOut common.Address) (osmomath.Int, domain.PoolKind, bool, error) {
	bestOut := osmomath.ZeroInt()
	bestKind := domain.PoolKindVolatile
	found := false

	for _, kind := range []domain.PoolKind{domain.PoolKindStable, domain.PoolKindVolatile} {
		out, exists, err := p.amountOutByKind(ctx, amountIn, tokenIn, tokenOut, kind)
		if err != nil {
			return osmomath.Int{}, 0, false, err
		}
		if exists && (!found || out.GT(bestOut)) {
			bestOut = out
			bestKind = kind
			found = true
		}
	}

	return bestOut, bestKind, found, nil
}

// GetAmountOutByKind implements mvc.PoolsUsecase. An undeployed pool yields
// a zero amount rather than an error; the zero then deterministically fails
// the caller's output-minimum check.
func (p *poolsUseCase) GetAmountOutByKind(ctx context.Context, amountIn osmomath.Int, tokenIn, tokenOut common.Address, kind domain.PoolKind) (osmomath.Int, error) {
	out, exists, err := p.amountOutByKind(ctx, amountIn, tokenIn, tokenOut, kind)
	if err != nil {
		return osmomath.Int{}, err
	}
	if !exists {
		missingPoolQuoteCounter.WithLabelValues(kind.String()).Inc()
		p.logger.Debug("no pool for quoted leg",
			zap.String("token_in", tokenIn.Hex()),
			zap.String("token_out", tokenOut.Hex()),
			zap.String("kind", kind.String()),
		)
		return osmomath.ZeroInt(), nil
	}
	return out, nil
}

// EnsurePool implements mvc.PoolsUsecase.
func (p *poolsUseCase) EnsurePool(ctx context.Context, tokenA, tokenB common.Address, kind domain.PoolKind) (domain.Pool, error) {
	address := p.PoolFor(tokenA, tokenB, kind)

	exists, err := p.Exists(ctx, address)
	if err != nil {
		return nil, err
	}
	if exists {
		return p.poolClient(address), nil
	}

	created, err := p.factory.CreatePool(ctx, tokenA, tokenB, kind)
	if err != nil {
		return nil, err
	}
	if created != address {
		return nil, fmt.Errorf("factory deployed pool at (%s), locator computed (%s)", created.Hex(), address.Hex())
	}

	p.existenceCache.Add(address, struct{}{})
	return p.poolClient(address), nil
}

func (p *poolsUseCase) amountOutByKind(ctx context.Context, amountIn osmomath.Int, tokenIn, tokenOut common.Address, kind domain.PoolKind) (osmomath.Int, bool, error) {
	address := p.PoolFor(tokenIn, tokenOut, kind)

	exists, err := p.Exists(ctx, address)
	if err != nil {
		return osmomath.Int{}, false, err
	}
	if !exists {
		return osmomath.ZeroInt(), false, nil
	}

	out, err := p.poolClient(address).GetAmountOut(ctx, amountIn, tokenIn)
	if err != nil {
		return osmomath.Int{}, false, err
	}
	return out, true, nil
}

// cloneInitCode is the EIP-1167 minimal proxy deployment bytecode for the
// given implementation, the template the factory deploys every pool with.
func cloneInitCode(implementation common.Address) []byte {
	code := make([]byte, 0, 55)
	code = append(code, 0x3d, 0x60, 0x2d, 0x80, 0x60, 0x0a, 0x3d, 0x39, 0x81, 0xf3)
	code = append(code, 0x36, 0x3d, 0x3d, 0x37, 0x3d, 0x3d, 0x3d, 0x36, 0x3d, 0x73)
	code = append(code, implementation.Bytes()...)
	code = append(code, 0x5a, 0xf4, 0x3d, 0x82, 0x80, 0x3e, 0x90, 0x3d, 0x91, 0x60, 0x2b, 0x57, 0xfd, 0x5b, 0xf3)
	return code
}
