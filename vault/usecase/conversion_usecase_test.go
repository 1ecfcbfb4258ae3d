package usecase_test

import (
	"context"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"
	"github.com/osmosis-labs/osmosis/osmomath"
	"github.com/stretchr/testify/suite"

	"github.com/shareswap-labs/shareswap/domain"
	"github.com/shareswap-labs/shareswap/domain/mocks"
	"github.com/shareswap-labs/shareswap/domain/mvc"
	"github.com/shareswap-labs/shareswap/log"
	tokensusecase "github.com/shareswap-labs/shareswap/tokens/usecase"
	vaultusecase "github.com/shareswap-labs/shareswap/vault/usecase"
)

var (
	routerAddr      = common.HexToAddress("0x1000000000000000000000000000000000000001")
	vaultAddr       = common.HexToAddress("0x1000000000000000000000000000000000000004")
	shareToken      = common.HexToAddress("0x2000000000000000000000000000000000000001")
	accountingToken = common.HexToAddress("0x2000000000000000000000000000000000000002")

	// 18-decimal token with a spread oracle: $0.99 bid, $1.01 ask.
	spreadToken = common.HexToAddress("0x3000000000000000000000000000000000000001")
	// 6-decimal stable token priced flat at $1.
	sixDecToken = common.HexToAddress("0x3000000000000000000000000000000000000002")
	// Token the vault has never whitelisted.
	strangerToken = common.HexToAddress("0x3000000000000000000000000000000000000009")
)

func e18(n int64) osmomath.Int {
	return osmomath.NewInt(n).Mul(sdkmath.NewIntWithDecimal(1, 18))
}

func e6(n int64) osmomath.Int {
	return osmomath.NewInt(n).Mul(sdkmath.NewIntWithDecimal(1, 6))
}

// cents expresses a price of n cents with 30 decimals of precision.
func cents(n int64) osmomath.Int {
	return osmomath.NewInt(n).Mul(sdkmath.NewIntWithDecimal(1, 28))
}

type ConversionUsecaseTestSuite struct {
	suite.Suite

	ctx context.Context

	bank   *mocks.BankMock
	vault  *mocks.VaultMock
	tokens mvc.TokenSetUsecase

	conversion mvc.ConversionUsecase
}

func TestConversionUsecaseTestSuite(t *testing.T) {
	suite.Run(t, new(ConversionUsecaseTestSuite))
}

// SetupTest seeds a deliberately uneven vault: oracle spread on one token, a
// 6-decimal token, non-zero fees, AUM above basket supply and a share rate
// of 1.05 basket units per share. The conservatism properties must hold in
// exactly this kind of state.
func (s *ConversionUsecaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	logger := log.NewNopLogger()

	s.bank = mocks.NewBankMock(routerAddr)
	s.vault = mocks.NewVaultMock(vaultAddr, shareToken, accountingToken, s.bank).
		WithToken(spreadToken, cents(99), cents(101), 18).
		WithToken(sixDecToken, cents(100), cents(100), 6).
		WithTotals(e18(1_000_000), e18(1_010_000), e18(1_000_000))
	s.vault.DepositFeeBps = 25
	s.vault.WithdrawFeeBps = 25
	s.vault.Rate.SetRate(osmomath.NewInt(21), osmomath.NewInt(20))

	s.tokens = tokensusecase.NewTokenSetUsecase(shareToken, s.vault, logger)
	s.Require().NoError(s.tokens.Refresh(s.ctx))

	s.conversion = vaultusecase.NewConversionUsecase(s.vault, s.vault.Rate, s.tokens, logger)
}

// neutralize flattens the vault to fee-free, spread-free, 1:1 state so exact
// figures can be asserted.
func (s *ConversionUsecaseTestSuite) neutralize() {
	s.vault.DepositFeeBps = 0
	s.vault.WithdrawFeeBps = 0
	s.vault.Rate.SetRate(osmomath.OneInt(), osmomath.OneInt())
	s.vault.WithToken(spreadToken, cents(100), cents(100), 18)
	s.vault.WithTotals(e18(1_000_000), e18(1_000_000), e18(1_000_000))
}

func (s *ConversionUsecaseTestSuite) TestMintQuote_Validation() {
	_, err := s.conversion.MintQuote(s.ctx, spreadToken, osmomath.ZeroInt())
	s.Require().ErrorIs(err, domain.ErrInvalidAmount)

	_, err = s.conversion.MintQuote(s.ctx, spreadToken, osmomath.NewInt(-1))
	s.Require().ErrorIs(err, domain.ErrInvalidAmount)

	_, err = s.conversion.MintQuote(s.ctx, strangerToken, e18(1))

	var unsupportedErr domain.UnsupportedTokenError
	s.Require().ErrorAs(err, &unsupportedErr)
	s.Require().Equal(strangerToken, unsupportedErr.Token)
}

func (s *ConversionUsecaseTestSuite) TestRedeemQuote_Validation() {
	_, err := s.conversion.RedeemQuote(s.ctx, spreadToken, osmomath.ZeroInt(), false)
	s.Require().ErrorIs(err, domain.ErrInvalidAmount)

	_, err = s.conversion.RedeemQuote(s.ctx, strangerToken, e18(1), false)

	var unsupportedErr domain.UnsupportedTokenError
	s.Require().ErrorAs(err, &unsupportedErr)
}

func (s *ConversionUsecaseTestSuite) TestRedeemQuote_ZeroBasketSupply() {
	s.vault.WithTotals(e18(1_000_000), e18(1_010_000), osmomath.ZeroInt())

	_, err := s.conversion.RedeemQuote(s.ctx, spreadToken, e18(1), false)
	s.Require().ErrorIs(err, domain.ErrZeroBasketSupply)
}

// In a flat vault every pipeline stage is exact, so the quote equals the
// input and roundUp mode exceeds floor mode by exactly the one indivisible
// safety unit.
func (s *ConversionUsecaseTestSuite) TestQuotes_FlatVaultExact() {
	s.neutralize()

	in := osmomath.NewInt(123_456_789_123_456_789)

	minted, err := s.conversion.MintQuote(s.ctx, spreadToken, in)
	s.Require().NoError(err)
	s.Require().Equal(in, minted)

	floor, err := s.conversion.RedeemQuote(s.ctx, spreadToken, in, false)
	s.Require().NoError(err)
	s.Require().Equal(in, floor)

	ceil, err := s.conversion.RedeemQuote(s.ctx, spreadToken, in, true)
	s.Require().NoError(err)
	s.Require().Equal(floor.AddRaw(1), ceil)
}

func (s *ConversionUsecaseTestSuite) TestRedeemQuote_RoundUpNeverBelowFloor() {
	for _, shares := range []osmomath.Int{
		osmomath.NewInt(1),
		osmomath.NewInt(999),
		e18(1),
		e18(12_345),
	} {
		floor, err := s.conversion.RedeemQuote(s.ctx, spreadToken, shares, false)
		s.Require().NoError(err)

		ceil, err := s.conversion.RedeemQuote(s.ctx, spreadToken, shares, true)
		s.Require().NoError(err)

		s.Require().True(ceil.GTE(floor), "roundUp (%s) below floor (%s) for shares (%s)", ceil, floor, shares)
	}
}

// Depositing and immediately redeeming must never be profitable: the mint
// quote prices at the bid, the redeem quote prices at the ask, and both
// fee legs apply.
func (s *ConversionUsecaseTestSuite) TestMintThenRedeem_NeverProfitable() {
	for _, amount := range []osmomath.Int{e18(1), e18(777), e18(100_000)} {
		minted, err := s.conversion.MintQuote(s.ctx, spreadToken, amount)
		s.Require().NoError(err)

		back, err := s.conversion.RedeemQuote(s.ctx, spreadToken, minted, false)
		s.Require().NoError(err)

		s.Require().True(back.LTE(amount), "round trip of (%s) returned (%s)", amount, back)
	}
}

// Redeeming the shares the inverse quote asks for must yield at least the
// requested amount under unchanged state, without gross overshoot.
func (s *ConversionUsecaseTestSuite) TestSharesNeededForAmount_Sufficient() {
	for _, tc := range []struct {
		token  common.Address
		amount osmomath.Int
	}{
		{token: spreadToken, amount: e18(1)},
		{token: spreadToken, amount: e18(54_321)},
		{token: sixDecToken, amount: e6(1)},
		{token: sixDecToken, amount: e6(987_654)},
	} {
		shares, err := s.conversion.SharesNeededForAmount(s.ctx, tc.token, tc.amount)
		s.Require().NoError(err)

		out, err := s.conversion.RedeemQuote(s.ctx, tc.token, shares, false)
		s.Require().NoError(err)

		s.Require().True(out.GTE(tc.amount), "redeeming (%s) shares yields (%s), need (%s)", shares, out, tc.amount)

		// The margin stays within about a percent.
		s.Require().True(out.LTE(tc.amount.MulRaw(102).QuoRaw(100)), "overshoot: (%s) for requested (%s)", out, tc.amount)
	}
}

// Depositing the amount the inverse quote asks for must mint at least the
// requested share amount under unchanged state.
func (s *ConversionUsecaseTestSuite) TestAmountNeededForShares_Sufficient() {
	for _, tc := range []struct {
		token  common.Address
		shares osmomath.Int
	}{
		{token: spreadToken, shares: e18(1)},
		{token: spreadToken, shares: e18(54_321)},
		{token: sixDecToken, shares: e18(3)},
	} {
		amount, err := s.conversion.AmountNeededForShares(s.ctx, tc.token, tc.shares)
		s.Require().NoError(err)

		minted, err := s.conversion.MintQuote(s.ctx, tc.token, amount)
		s.Require().NoError(err)

		s.Require().True(minted.GTE(tc.shares), "depositing (%s) mints (%s), need (%s)", amount, minted, tc.shares)
	}
}

// The executed deposit must settle exactly at the floor quote when state is
// unchanged between quote and execution.
func (s *ConversionUsecaseTestSuite) TestMintQuote_MatchesExecutedDeposit() {
	amount := e18(250)
	s.bank.Mint(spreadToken, routerAddr, amount)

	quoted, err := s.conversion.MintQuote(s.ctx, spreadToken, amount)
	s.Require().NoError(err)

	s.Require().NoError(s.vault.Deposit(s.ctx, spreadToken, amount))
	s.Require().Equal(quoted, s.bank.Balance(shareToken, routerAddr))
}

// The executed withdrawal must settle exactly at the floor quote when state
// is unchanged between quote and execution.
func (s *ConversionUsecaseTestSuite) TestRedeemQuote_MatchesExecutedWithdraw() {
	shares := e18(250)
	s.bank.Mint(shareToken, routerAddr, shares)
	s.bank.Mint(spreadToken, vaultAddr, e18(1_000_000))

	quoted, err := s.conversion.RedeemQuote(s.ctx, spreadToken, shares, false)
	s.Require().NoError(err)

	receiver := common.HexToAddress("0x4000000000000000000000000000000000000001")
	s.Require().NoError(s.vault.Withdraw(s.ctx, spreadToken, shares, receiver))
	s.Require().Equal(quoted, s.bank.Balance(spreadToken, receiver))
}

// A route evaluation classifies and validates against one pinned snapshot.
// Quotes handed that snapshot must keep honoring it even when the live set
// has since dropped the token; only snapshot-less quotes see the live set.
func (s *ConversionUsecaseTestSuite) TestQuotesWithSet_UsePinnedSnapshot() {
	pinned := s.tokens.Snapshot()

	emptied := vaultusecase.NewConversionUsecase(s.vault, s.vault.Rate, &mocks.TokenSetUsecaseMock{
		Set: domain.NewTokenSet(shareToken, nil),
	}, log.NewNopLogger())

	minted, err := emptied.MintQuoteWithSet(s.ctx, pinned, spreadToken, e18(10))
	s.Require().NoError(err)
	s.Require().True(minted.IsPositive())

	redeemed, err := emptied.RedeemQuoteWithSet(s.ctx, pinned, spreadToken, e18(10), false)
	s.Require().NoError(err)
	s.Require().True(redeemed.IsPositive())

	var unsupportedErr domain.UnsupportedTokenError
	_, err = emptied.MintQuote(s.ctx, spreadToken, e18(10))
	s.Require().ErrorAs(err, &unsupportedErr)

	_, err = emptied.RedeemQuote(s.ctx, spreadToken, e18(10), false)
	s.Require().ErrorAs(err, &unsupportedErr)
}
