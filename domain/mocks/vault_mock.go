package mocks

import (
	"context"
	"fmt"
	"sync"

	sdkmath "cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/shareswap-labs/shareswap/domain"
)

var _ domain.Vault = &VaultMock{}

var (
	mockPricePrecision     = sdkmath.NewIntWithDecimal(1, 30)
	mockBasisPointsDivisor = osmomath.NewInt(10_000)
)

type tokenPrice struct {
	min osmomath.Int
	max osmomath.Int
}

// VaultMock is a stateful share-token vault backed by a BankMock. Deposits
// and withdrawals run the same pricing pipeline the live vault runs, so an
// executed virtual leg settles exactly at its conservative quote under
// unchanged state.
type VaultMock struct {
	mu sync.Mutex

	Bank       *BankMock
	Addr       common.Address
	ShareToken common.Address
	Accounting common.Address
	Rate       *ShareRateMock

	prices    map[common.Address]tokenPrice
	decimals  map[common.Address]int
	whitelist []common.Address

	// Flat fee schedules in basis points.
	DepositFeeBps  int64
	WithdrawFeeBps int64

	totalValueMin osmomath.Int
	totalValueMax osmomath.Int
	basketSupply  osmomath.Int

	// WhitelistErr, if set, fails WhitelistedTokens.
	WhitelistErr error
}

// NewVaultMock creates an empty vault. Prices, decimals, whitelist and
// totals are configured through the With* helpers.
func NewVaultMock(addr, shareToken, accounting common.Address, bank *BankMock) *VaultMock {
	return &VaultMock{
		Bank:          bank,
		Addr:          addr,
		ShareToken:    shareToken,
		Accounting:    accounting,
		Rate:          NewShareRateMock(),
		prices:        make(map[common.Address]tokenPrice),
		decimals:      map[common.Address]int{accounting: 18},
		totalValueMin: osmomath.ZeroInt(),
		totalValueMax: osmomath.ZeroInt(),
		basketSupply:  osmomath.ZeroInt(),
	}
}

// WithToken whitelists a token with the given min/max oracle prices
// (30 decimals) and ERC20 decimals.
func (v *VaultMock) WithToken(token common.Address, minPrice, maxPrice osmomath.Int, tokenDecimals int) *VaultMock {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.prices[token] = tokenPrice{min: minPrice, max: maxPrice}
	v.decimals[token] = tokenDecimals
	v.whitelist = append(v.whitelist, token)
	return v
}

// WithTotals seeds AUM accounting state.
func (v *VaultMock) WithTotals(totalValueMin, totalValueMax, basketSupply osmomath.Int) *VaultMock {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.totalValueMin = totalValueMin
	v.totalValueMax = totalValueMax
	v.basketSupply = basketSupply
	return v
}

// MinPrice implements domain.Vault.
func (v *VaultMock) MinPrice(ctx context.Context, token common.Address) (osmomath.Int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	price, ok := v.prices[token]
	if !ok {
		return osmomath.Int{}, fmt.Errorf("no price for token (%s)", token.Hex())
	}
	return price.min, nil
}

// MaxPrice implements domain.Vault.
func (v *VaultMock) MaxPrice(ctx context.Context, token common.Address) (osmomath.Int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	price, ok := v.prices[token]
	if !ok {
		return osmomath.Int{}, fmt.Errorf("no price for token (%s)", token.Hex())
	}
	return price.max, nil
}

// AdjustForDecimals implements domain.Vault.
func (v *VaultMock) AdjustForDecimals(ctx context.Context, amount osmomath.Int, tokenDiv, tokenMul common.Address) (osmomath.Int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.adjustForDecimals(amount, tokenDiv, tokenMul), nil
}

func (v *VaultMock) adjustForDecimals(amount osmomath.Int, tokenDiv, tokenMul common.Address) osmomath.Int {
	divDecimals, ok := v.decimals[tokenDiv]
	if !ok {
		divDecimals = 18
	}
	mulDecimals, ok := v.decimals[tokenMul]
	if !ok {
		mulDecimals = 18
	}
	return amount.Mul(sdkmath.NewIntWithDecimal(1, mulDecimals)).Quo(sdkmath.NewIntWithDecimal(1, divDecimals))
}

// DepositFeeBasisPoints implements domain.Vault.
func (v *VaultMock) DepositFeeBasisPoints(ctx context.Context, token common.Address, accountingDelta osmomath.Int) (osmomath.Int, error) {
	return osmomath.NewInt(v.DepositFeeBps), nil
}

// WithdrawFeeBasisPoints implements domain.Vault.
func (v *VaultMock) WithdrawFeeBasisPoints(ctx context.Context, token common.Address, accountingDelta osmomath.Int) (osmomath.Int, error) {
	return osmomath.NewInt(v.WithdrawFeeBps), nil
}

// WhitelistedTokens implements domain.Vault.
func (v *VaultMock) WhitelistedTokens(ctx context.Context) ([]common.Address, error) {
	if v.WhitelistErr != nil {
		return nil, v.WhitelistErr
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]common.Address, len(v.whitelist))
	copy(out, v.whitelist)
	return out, nil
}

// AccountingToken implements domain.Vault.
func (v *VaultMock) AccountingToken(ctx context.Context) (common.Address, error) {
	return v.Accounting, nil
}

// TotalValue implements domain.Vault.
func (v *VaultMock) TotalValue(ctx context.Context, maximize bool) (osmomath.Int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if maximize {
		return v.totalValueMax, nil
	}
	return v.totalValueMin, nil
}

// BasketSupply implements domain.Vault.
func (v *VaultMock) BasketSupply(ctx context.Context) (osmomath.Int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.basketSupply, nil
}

// Deposit implements domain.Vault. Runs the mint pipeline: minimum price,
// deposit fee, pro-rata basket units against maximized AUM, shares at the
// current exchange rate rounded down.
func (v *VaultMock) Deposit(ctx context.Context, token common.Address, amount osmomath.Int) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	price, ok := v.prices[token]
	if !ok {
		return fmt.Errorf("token (%s) not whitelisted", token.Hex())
	}
	if !amount.IsPositive() {
		return fmt.Errorf("deposit amount must be positive")
	}

	accounting := v.adjustForDecimals(amount.Mul(price.min).Quo(mockPricePrecision), token, v.Accounting)
	afterFee := accounting.Mul(mockBasisPointsDivisor.SubRaw(v.DepositFeeBps)).Quo(mockBasisPointsDivisor)

	basket := afterFee
	if !v.totalValueMax.IsZero() && !v.basketSupply.IsZero() {
		basket = afterFee.Mul(v.basketSupply).Quo(v.totalValueMax)
	}

	shares := v.Rate.sharesForAmount(basket, false)

	if err := v.Bank.Move(token, v.Bank.Router, v.Addr, amount); err != nil {
		return err
	}
	v.Bank.Mint(v.ShareToken, v.Bank.Router, shares)

	v.basketSupply = v.basketSupply.Add(basket)
	v.totalValueMin = v.totalValueMin.Add(afterFee)
	v.totalValueMax = v.totalValueMax.Add(afterFee)
	return nil
}

// Withdraw implements domain.Vault. Runs the redeem pipeline: minimized
// AUM, maximum price, withdrawal fee, everything rounded down.
func (v *VaultMock) Withdraw(ctx context.Context, token common.Address, shares osmomath.Int, receiver common.Address) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	price, ok := v.prices[token]
	if !ok {
		return fmt.Errorf("token (%s) not whitelisted", token.Hex())
	}
	if !shares.IsPositive() {
		return fmt.Errorf("share amount must be positive")
	}
	if v.basketSupply.IsZero() {
		return fmt.Errorf("vault has zero basket supply")
	}

	basket := v.Rate.amountForShares(shares, false)
	accounting := basket.Mul(v.totalValueMin).Quo(v.basketSupply)
	raw := v.adjustForDecimals(accounting.Mul(mockPricePrecision).Quo(price.max), v.Accounting, token)
	out := raw.Mul(mockBasisPointsDivisor.SubRaw(v.WithdrawFeeBps)).Quo(mockBasisPointsDivisor)

	v.Bank.Burn(v.ShareToken, v.Bank.Router, shares)
	if err := v.Bank.Move(token, v.Addr, receiver, out); err != nil {
		return err
	}

	v.basketSupply = v.basketSupply.Sub(basket)
	v.totalValueMin = v.totalValueMin.Sub(accounting)
	v.totalValueMax = v.totalValueMax.Sub(accounting)
	return nil
}

var _ domain.ShareRate = &ShareRateMock{}

// ShareRateMock converts between share and basket units at a configurable
// rational exchange rate: one share is worth RateNum/RateDen basket units.
type ShareRateMock struct {
	mu sync.Mutex

	RateNum osmomath.Int
	RateDen osmomath.Int
}

// NewShareRateMock creates a 1:1 rate mock.
func NewShareRateMock() *ShareRateMock {
	return &ShareRateMock{
		RateNum: osmomath.OneInt(),
		RateDen: osmomath.OneInt(),
	}
}

// SetRate updates the exchange rate. Used to simulate rate drift between
// quote time and execution time.
func (r *ShareRateMock) SetRate(num, den osmomath.Int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.RateNum = num
	r.RateDen = den
}

// SharesForAmount implements domain.ShareRate.
func (r *ShareRateMock) SharesForAmount(ctx context.Context, amount osmomath.Int, roundUp bool) (osmomath.Int, error) {
	return r.sharesForAmount(amount, roundUp), nil
}

// AmountForShares implements domain.ShareRate.
func (r *ShareRateMock) AmountForShares(ctx context.Context, shares osmomath.Int, roundUp bool) (osmomath.Int, error) {
	return r.amountForShares(shares, roundUp), nil
}

func (r *ShareRateMock) sharesForAmount(amount osmomath.Int, roundUp bool) osmomath.Int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return mulDiv(amount, r.RateDen, r.RateNum, roundUp)
}

func (r *ShareRateMock) amountForShares(shares osmomath.Int, roundUp bool) osmomath.Int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return mulDiv(shares, r.RateNum, r.RateDen, roundUp)
}

func mulDiv(amount, num, den osmomath.Int, roundUp bool) osmomath.Int {
	product := amount.Mul(num)
	if roundUp {
		return product.Add(den.SubRaw(1)).Quo(den)
	}
	return product.Quo(den)
}
