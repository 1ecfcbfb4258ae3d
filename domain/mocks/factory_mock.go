package mocks

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/shareswap-labs/shareswap/domain"
)

var _ domain.PoolFactory = &FactoryMock{}

// FactoryMock is an in-memory pool registry. Pools are registered at the
// addresses the deterministic locator computes for them, so lookups through
// either path agree.
type FactoryMock struct {
	mu sync.Mutex

	pools  map[common.Address]*PoolMock
	byPair map[pairKey]common.Address

	// CreatePoolFn overrides pool creation. If nil, CreatePool fails.
	CreatePoolFn func(ctx context.Context, tokenA, tokenB common.Address, kind domain.PoolKind) (common.Address, error)

	// IsPoolErr, if set, fails every IsPool call.
	IsPoolErr error
}

type pairKey struct {
	token0 common.Address
	token1 common.Address
	kind   domain.PoolKind
}

// NewFactoryMock creates an empty factory mock.
func NewFactoryMock() *FactoryMock {
	return &FactoryMock{
		pools:  make(map[common.Address]*PoolMock),
		byPair: make(map[pairKey]common.Address),
	}
}

// Register adds a deployed pool to the registry.
func (f *FactoryMock) Register(pool *PoolMock, kind domain.PoolKind) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pools[pool.Addr] = pool
	f.byPair[pairKey{token0: pool.T0, token1: pool.T1, kind: kind}] = pool.Addr
}

// PoolAt returns the registered pool at the address, or nil.
func (f *FactoryMock) PoolAt(address common.Address) *PoolMock {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pools[address]
}

// PoolClient is a domain.PoolClientFn over the registry. Unregistered
// addresses yield an unusableNilPool whose every method fails, matching a
// call against an address with no code.
func (f *FactoryMock) PoolClient(address common.Address) domain.Pool {
	if pool := f.PoolAt(address); pool != nil {
		return pool
	}
	return unusableNilPool{addr: address}
}

// IsPool implements domain.PoolFactory.
func (f *FactoryMock) IsPool(ctx context.Context, pool common.Address) (bool, error) {
	if f.IsPoolErr != nil {
		return false, f.IsPoolErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.pools[pool]
	return ok, nil
}

// GetPool implements domain.PoolFactory.
func (f *FactoryMock) GetPool(ctx context.Context, tokenA, tokenB common.Address, kind domain.PoolKind) (common.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	token0, token1 := sortPair(tokenA, tokenB)
	return f.byPair[pairKey{token0: token0, token1: token1, kind: kind}], nil
}

// CreatePool implements domain.PoolFactory.
func (f *FactoryMock) CreatePool(ctx context.Context, tokenA, tokenB common.Address, kind domain.PoolKind) (common.Address, error) {
	if f.CreatePoolFn != nil {
		return f.CreatePoolFn(ctx, tokenA, tokenB, kind)
	}
	return common.Address{}, fmt.Errorf("pool creation not configured")
}

func sortPair(a, b common.Address) (common.Address, common.Address) {
	if bytes.Compare(a.Bytes(), b.Bytes()) > 0 {
		return b, a
	}
	return a, b
}

type unusableNilPool struct {
	addr common.Address
}

var _ domain.Pool = unusableNilPool{}

func (p unusableNilPool) err() error {
	return fmt.Errorf("no pool deployed at (%s)", p.addr.Hex())
}

func (p unusableNilPool) Address() common.Address { return p.addr }

func (p unusableNilPool) Token0(ctx context.Context) (common.Address, error) {
	return common.Address{}, p.err()
}

func (p unusableNilPool) Token1(ctx context.Context) (common.Address, error) {
	return common.Address{}, p.err()
}

func (p unusableNilPool) GetReserves(ctx context.Context) (osmomath.Int, osmomath.Int, uint64, error) {
	return osmomath.Int{}, osmomath.Int{}, 0, p.err()
}

func (p unusableNilPool) TotalSupply(ctx context.Context) (osmomath.Int, error) {
	return osmomath.Int{}, p.err()
}

func (p unusableNilPool) GetAmountOut(ctx context.Context, amountIn osmomath.Int, tokenIn common.Address) (osmomath.Int, error) {
	return osmomath.Int{}, p.err()
}

func (p unusableNilPool) Swap(ctx context.Context, amount0Out, amount1Out osmomath.Int, to common.Address, data []byte) error {
	return p.err()
}

func (p unusableNilPool) Mint(ctx context.Context, to common.Address) error {
	return p.err()
}

func (p unusableNilPool) Burn(ctx context.Context, to common.Address) error {
	return p.err()
}
