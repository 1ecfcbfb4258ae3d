package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/osmosis-labs/osmosis/osmomath"
	"go.uber.org/zap"

	"github.com/shareswap-labs/shareswap/domain"
	"github.com/shareswap-labs/shareswap/domain/mvc"
	"github.com/shareswap-labs/shareswap/log"
)

type routerUseCase struct {
	config        domain.RouterConfig
	routerAddress common.Address

	conversion    mvc.ConversionUsecase
	pools         mvc.PoolsUsecase
	tokens        mvc.TokenSetUsecase
	vault         domain.Vault
	bank          domain.Bank
	wrappedNative domain.WrappedNative

	now    func() time.Time
	logger log.Logger
}

var _ mvc.RouterUsecase = &routerUseCase{}

// NewRouterUsecase creates the path quoter/executor usecase.
func NewRouterUsecase(
	config domain.RouterConfig,
	routerAddress common.Address,
	conversion mvc.ConversionUsecase,
	pools mvc.PoolsUsecase,
	tokens mvc.TokenSetUsecase,
	vault domain.Vault,
	bank domain.Bank,
	wrappedNative domain.WrappedNative,
	logger log.Logger,
) mvc.RouterUsecase {
	return &routerUseCase{
		config:        config,
		routerAddress: routerAddress,
		conversion:    conversion,
		pools:         pools,
		tokens:        tokens,
		vault:         vault,
		bank:          bank,
		wrappedNative: wrappedNative,
		now:           time.Now,
		logger:        logger,
	}
}

// QuoteRoute implements mvc.RouterUsecase. Read-only and side-effect-free;
// may be called standalone for price discovery.
func (r *routerUseCase) QuoteRoute(ctx context.Context, amountIn osmomath.Int, route domain.Route) ([]osmomath.Int, error) {
	return r.quoteRoute(ctx, r.tokens.Snapshot(), amountIn, route)
}

// quoteRoute walks the route against a fixed token-set snapshot,
// dispatching each hop to the leg strategy its classification selects.
func (r *routerUseCase) quoteRoute(ctx context.Context, set domain.TokenSet, amountIn osmomath.Int, route domain.Route) ([]osmomath.Int, error) {
	if len(route) == 0 {
		return nil, domain.ErrInvalidPath
	}
	if r.config.MaxHops > 0 && len(route) > r.config.MaxHops {
		return nil, fmt.Errorf("route of %d hops exceeds the maximum of %d: %w", len(route), r.config.MaxHops, domain.ErrInvalidPath)
	}
	if amountIn.IsNil() || !amountIn.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}

	amounts := make([]osmomath.Int, len(route)+1)
	amounts[0] = amountIn

	for i, hop := range route {
		// A zero from an upstream undeployed pool propagates: the route is
		// already doomed to fail the output-minimum check.
		if amounts[i].IsZero() {
			amounts[i+1] = osmomath.ZeroInt()
			continue
		}

		var (
			out osmomath.Int
			err error
		)
		switch domain.ClassifyHop(hop, set) {
		case domain.LegRedeem:
			out, err = r.conversion.RedeemQuoteWithSet(ctx, set, hop.To, amounts[i], false)
		case domain.LegMint:
			out, err = r.conversion.MintQuoteWithSet(ctx, set, hop.From, amounts[i])
		default:
			out, err = r.pools.GetAmountOutByKind(ctx, amounts[i], hop.From, hop.To, hop.Kind)
		}
		if err != nil {
			return nil, err
		}

		amounts[i+1] = out
	}

	return amounts, nil
}

// SwapExactTokensForTokens implements mvc.RouterUsecase.
func (r *routerUseCase) SwapExactTokensForTokens(ctx context.Context, amountIn, minAmountOut osmomath.Int, route domain.Route, to common.Address, deadline time.Time) ([]osmomath.Int, error) {
	return r.swapExactIn(ctx, amountIn, minAmountOut, route, to, deadline, false, false)
}

// SwapExactTokensForETH implements mvc.RouterUsecase.
func (r *routerUseCase) SwapExactTokensForETH(ctx context.Context, amountIn, minAmountOut osmomath.Int, route domain.Route, to common.Address, deadline time.Time) ([]osmomath.Int, error) {
	return r.swapExactIn(ctx, amountIn, minAmountOut, route, to, deadline, false, true)
}

// SwapExactETHForTokens implements mvc.RouterUsecase.
func (r *routerUseCase) SwapExactETHForTokens(ctx context.Context, amountIn, minAmountOut osmomath.Int, route domain.Route, to common.Address, deadline time.Time) ([]osmomath.Int, error) {
	return r.swapExactIn(ctx, amountIn, minAmountOut, route, to, deadline, true, false)
}

// GetConfig implements mvc.RouterUsecase.
func (r *routerUseCase) GetConfig() domain.RouterConfig {
	return r.config
}

// swapExactIn quotes the route, runs every pre-execution check, then
// executes. All checks use the already-computed amounts array and happen
// strictly before any token movement, so a failing check aborts with zero
// side effects.
func (r *routerUseCase) swapExactIn(ctx context.Context, amountIn, minAmountOut osmomath.Int, route domain.Route, to common.Address, deadline time.Time, wrapIn, unwrapOut bool) ([]osmomath.Int, error) {
	if err := r.checkDeadline(deadline); err != nil {
		return nil, err
	}
	if len(route) == 0 {
		return nil, domain.ErrInvalidPath
	}
	if minAmountOut.IsNil() {
		minAmountOut = osmomath.ZeroInt()
	}

	if wrapIn && route.TokenIn() != r.wrappedNative.Address() {
		return nil, domain.FinalTokenMismatchError{Expected: r.wrappedNative.Address(), Actual: route.TokenIn()}
	}
	if unwrapOut && route.TokenOut() != r.wrappedNative.Address() {
		return nil, domain.FinalTokenMismatchError{Expected: r.wrappedNative.Address(), Actual: route.TokenOut()}
	}

	set := r.tokens.Snapshot()

	amounts, err := r.quoteRoute(ctx, set, amountIn, route)
	if err != nil {
		return nil, err
	}

	finalAmount := amounts[len(amounts)-1]
	if finalAmount.LT(minAmountOut) {
		return nil, domain.InsufficientOutputError{MinAmountOut: minAmountOut, ActualAmountOut: finalAmount}
	}

	if wrapIn {
		if err := r.wrappedNative.Wrap(ctx, amountIn); err != nil {
			return nil, err
		}
	}

	// Deliver the input to wherever the first hop expects it.
	if entry := r.entryDestination(set, route); entry != r.routerAddress {
		if err := r.bank.Transfer(ctx, route.TokenIn(), entry, amountIn); err != nil {
			return nil, domain.TransferFailureError{Token: route.TokenIn(), To: entry, Err: err}
		}
	}

	recipient := to
	if unwrapOut {
		recipient = r.routerAddress
	}

	wrappedBefore := osmomath.ZeroInt()
	if unwrapOut {
		wrappedBefore, err = r.bank.BalanceOf(ctx, r.wrappedNative.Address(), r.routerAddress)
		if err != nil {
			return nil, err
		}
		// When the input token is itself the wrapped native and is still
		// parked on the router, it gets consumed during execution and must
		// not count toward the unwrap delta.
		if route.TokenIn() == r.wrappedNative.Address() && r.entryDestination(set, route) == r.routerAddress {
			wrappedBefore = wrappedBefore.Sub(amountIn)
		}
	}

	if err := r.executeRoute(ctx, set, amounts, route, recipient); err != nil {
		return nil, err
	}

	if unwrapOut {
		wrappedAfter, err := r.bank.BalanceOf(ctx, r.wrappedNative.Address(), r.routerAddress)
		if err != nil {
			return nil, err
		}
		if err := r.wrappedNative.Unwrap(ctx, wrappedAfter.Sub(wrappedBefore), to); err != nil {
			return nil, err
		}
	}

	r.logger.Debug("executed route",
		zap.String("route", route.String()),
		zap.String("amount_in", amountIn.String()),
		zap.String("amount_out", finalAmount.String()),
	)

	return amounts, nil
}

// entryDestination is where amounts[0] must sit before execution starts:
// the router itself when the first or second leg is virtual, otherwise the
// first real pool.
func (r *routerUseCase) entryDestination(set domain.TokenSet, route domain.Route) common.Address {
	if domain.ClassifyHop(route[0], set).IsVirtual() {
		return r.routerAddress
	}
	if len(route) > 1 && domain.ClassifyHop(route[1], set).IsVirtual() {
		return r.routerAddress
	}
	return r.pools.PoolFor(route[0].From, route[0].To, route[0].Kind)
}

func (r *routerUseCase) checkDeadline(deadline time.Time) error {
	if now := r.now(); now.After(deadline) {
		return domain.ExpiredDeadlineError{Deadline: deadline, Now: now}
	}
	return nil
}
