package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/shareswap-labs/shareswap/domain"
)

// executeRoute walks the route leg by leg. Real swaps move funds
// pool-to-pool directly; virtual legs settle against the vault through the
// router's own account and are measured with scoped balance snapshots so
// that each downstream leg works with the amount actually produced, not the
// quoted one.
//
// amounts is the quoted amounts array; only amounts[i+1] of real swap legs
// is consumed (the pool swap interface requires explicit output amounts).
// When the final leg is virtual its output lands on the recipient directly
// and the walk returns early.
func (r *routerUseCase) executeRoute(ctx context.Context, set domain.TokenSet, amounts []osmomath.Int, route domain.Route, recipient common.Address) error {
	for i, hop := range route {
		last := i == len(route)-1
		dest := r.destinationFor(set, route, i, recipient)

		switch domain.ClassifyHop(hop, set) {
		case domain.LegMint:
			if err := r.executeMint(ctx, hop, dest); err != nil {
				return err
			}
		case domain.LegRedeem:
			if err := r.executeRedeem(ctx, hop, dest); err != nil {
				return err
			}
			// A redeem pays the destination directly; when it is the final
			// leg there is nothing left to forward.
			if last {
				return nil
			}
		default:
			if i == 0 && r.entryDestination(set, route) == r.routerAddress {
				// The input was parked on the router because a virtual leg
				// follows immediately; the pool still needs it up front.
				pool := r.pools.PoolFor(hop.From, hop.To, hop.Kind)
				if err := r.bank.Transfer(ctx, hop.From, pool, amounts[0]); err != nil {
					return domain.TransferFailureError{Token: hop.From, To: pool, Err: err}
				}
			}
			if err := r.executeSwap(ctx, hop, amounts[i+1], dest); err != nil {
				return err
			}
		}
	}
	return nil
}

// destinationFor is where leg i's output must go: the recipient on the final
// leg, the router when the next leg is virtual, otherwise straight to the
// next leg's pool.
func (r *routerUseCase) destinationFor(set domain.TokenSet, route domain.Route, i int, recipient common.Address) common.Address {
	if i == len(route)-1 {
		return recipient
	}
	next := route[i+1]
	if domain.ClassifyHop(next, set).IsVirtual() {
		return r.routerAddress
	}
	return r.pools.PoolFor(next.From, next.To, next.Kind)
}

// executeMint deposits the router's entire balance of the input token and
// forwards the freshly minted shares, measured as a balance delta, to the
// destination.
func (r *routerUseCase) executeMint(ctx context.Context, hop domain.Hop, dest common.Address) error {
	amountIn, err := r.bank.BalanceOf(ctx, hop.From, r.routerAddress)
	if err != nil {
		return err
	}

	sharesBefore, err := r.bank.BalanceOf(ctx, hop.To, r.routerAddress)
	if err != nil {
		return err
	}

	if err := r.vault.Deposit(ctx, hop.From, amountIn); err != nil {
		return err
	}

	if dest == r.routerAddress {
		return nil
	}

	sharesAfter, err := r.bank.BalanceOf(ctx, hop.To, r.routerAddress)
	if err != nil {
		return err
	}
	minted := sharesAfter.Sub(sharesBefore)

	if err := r.bank.Transfer(ctx, hop.To, dest, minted); err != nil {
		return domain.TransferFailureError{Token: hop.To, To: dest, Err: err}
	}
	return nil
}

// executeRedeem burns the router's entire share balance; the vault pays the
// destination directly in the hop's output token.
func (r *routerUseCase) executeRedeem(ctx context.Context, hop domain.Hop, dest common.Address) error {
	shares, err := r.bank.BalanceOf(ctx, hop.From, r.routerAddress)
	if err != nil {
		return err
	}
	return r.vault.Withdraw(ctx, hop.To, shares, dest)
}

// executeSwap performs one real pool swap. The input is already sitting on
// the pool; the quoted output amount is requested on the side the output
// token occupies in the pool's canonical reserve ordering.
func (r *routerUseCase) executeSwap(ctx context.Context, hop domain.Hop, amountOut osmomath.Int, dest common.Address) error {
	address := r.pools.PoolFor(hop.From, hop.To, hop.Kind)

	exists, err := r.pools.Exists(ctx, address)
	if err != nil {
		return err
	}
	if !exists {
		return domain.PoolNotFoundError{Pool: address, TokenA: hop.From, TokenB: hop.To, Kind: hop.Kind}
	}

	token0, _ := domain.SortTokens(hop.From, hop.To)

	amount0Out := osmomath.ZeroInt()
	amount1Out := osmomath.ZeroInt()
	if hop.To == token0 {
		amount0Out = amountOut
	} else {
		amount1Out = amountOut
	}

	return r.pools.Pool(address).Swap(ctx, amount0Out, amount1Out, dest, nil)
}
