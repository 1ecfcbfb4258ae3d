package types

import (
	"fmt"

	"github.com/shareswap-labs/shareswap/domain"
)

// Handler Errors
var (
	ErrRouteNotSpecified     = fmt.Errorf("route is required: %w", domain.ErrBadParamInput)
	ErrRouteNotValid         = fmt.Errorf("route is invalid - must be a comma-separated list of from:to:kind hops: %w", domain.ErrBadParamInput)
	ErrAmountNotSpecified    = fmt.Errorf("amount is required: %w", domain.ErrBadParamInput)
	ErrAmountNotValid        = fmt.Errorf("amount is invalid - must be a positive integer: %w", domain.ErrBadParamInput)
	ErrMinAmountOutNotValid  = fmt.Errorf("minAmountOut is invalid - must be a non-negative integer: %w", domain.ErrBadParamInput)
	ErrRecipientNotValid     = fmt.Errorf("to is invalid - must be a hex address: %w", domain.ErrBadParamInput)
	ErrDeadlineNotValid      = fmt.Errorf("deadline is invalid - must be a unix timestamp in seconds: %w", domain.ErrBadParamInput)
	ErrTokenNotValid         = fmt.Errorf("token is invalid - must be a hex address: %w", domain.ErrBadParamInput)
	ErrPoolKindNotValid      = fmt.Errorf("kind is invalid - must be volatile or stable: %w", domain.ErrBadParamInput)
	ErrRoundUpNotValid       = fmt.Errorf("roundUp is invalid - must be a boolean: %w", domain.ErrBadParamInput)
	ErrLiquidityNotValid     = fmt.Errorf("liquidity is invalid - must be a positive integer: %w", domain.ErrBadParamInput)
	ErrMinLiquidityNotValid  = fmt.Errorf("minLiquidity is invalid - must be a non-negative integer: %w", domain.ErrBadParamInput)
	ErrMinUnderlyingNotValid = fmt.Errorf("minUnderlying is invalid - must be a non-negative integer: %w", domain.ErrBadParamInput)
	ErrMinPairedNotValid     = fmt.Errorf("minPaired is invalid - must be a non-negative integer: %w", domain.ErrBadParamInput)
)
