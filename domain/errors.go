package domain

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/osmosis-labs/osmosis/osmomath"
)

var (
	// ErrInternalServerError will throw if any Internal Server Error happens
	ErrInternalServerError = errors.New("internal Server Error")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("given Param is not valid")

	// ErrInvalidPath is returned when a route has no hops.
	ErrInvalidPath = errors.New("invalid path: route must contain at least one hop")
	// ErrInvalidAmount is returned when a conversion is requested for a
	// non-positive amount.
	ErrInvalidAmount = errors.New("invalid amount: must be positive")
	// ErrZeroBasketSupply is returned when a redeem-side conversion is
	// requested against a vault with no basket supply.
	ErrZeroBasketSupply = errors.New("vault has zero basket supply")
	// ErrNoPoolLiquidity is returned when a liquidity operation is requested
	// against a pool with no minted liquidity.
	ErrNoPoolLiquidity = errors.New("pool has no liquidity")
)

// InsufficientOutputError is returned when the final quoted amount of a
// route is below the caller's declared minimum. Detected strictly before
// execution begins.
type InsufficientOutputError struct {
	MinAmountOut    osmomath.Int
	ActualAmountOut osmomath.Int
}

func (e InsufficientOutputError) Error() string {
	return fmt.Sprintf("insufficient output amount (%s), min (%s)", e.ActualAmountOut, e.MinAmountOut)
}

// ExpiredDeadlineError is returned when the caller-supplied deadline has
// passed at entry.
type ExpiredDeadlineError struct {
	Deadline time.Time
	Now      time.Time
}

func (e ExpiredDeadlineError) Error() string {
	return fmt.Sprintf("deadline (%s) expired at (%s)", e.Deadline, e.Now)
}

// UnsupportedTokenError is returned when a virtual-leg conversion is
// requested against a token that is not in the vault-native token set.
type UnsupportedTokenError struct {
	Token common.Address
}

func (e UnsupportedTokenError) Error() string {
	return fmt.Sprintf("token (%s) is not vault-native", e.Token.Hex())
}

// TransferFailureError wraps a failed token transfer.
type TransferFailureError struct {
	Token common.Address
	To    common.Address
	Err   error
}

func (e TransferFailureError) Error() string {
	return fmt.Sprintf("transfer of token (%s) to (%s) failed: %s", e.Token.Hex(), e.To.Hex(), e.Err)
}

func (e TransferFailureError) Unwrap() error {
	return e.Err
}

// PoolNotFoundError is returned when a required real-pool leg resolves to
// an address with no deployed pool.
type PoolNotFoundError struct {
	Pool   common.Address
	TokenA common.Address
	TokenB common.Address
	Kind   PoolKind
}

func (e PoolNotFoundError) Error() string {
	return fmt.Sprintf("no %s pool deployed at (%s) for pair (%s, %s)", e.Kind, e.Pool.Hex(), e.TokenA.Hex(), e.TokenB.Hex())
}

// FinalTokenMismatchError is returned when a route's last hop does not end
// in the asset the caller expects.
type FinalTokenMismatchError struct {
	Expected common.Address
	Actual   common.Address
}

func (e FinalTokenMismatchError) Error() string {
	return fmt.Sprintf("route must end in (%s), got (%s)", e.Expected.Hex(), e.Actual.Hex())
}

// GetStatusCode returns the HTTP status code for the given error.
func GetStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if errors.Is(err, ErrInvalidPath) || errors.Is(err, ErrInvalidAmount) || errors.Is(err, ErrNoPoolLiquidity) || errors.Is(err, ErrBadParamInput) {
		return http.StatusBadRequest
	}

	var (
		insufficientOutputError InsufficientOutputError
		expiredDeadlineError    ExpiredDeadlineError
		unsupportedTokenError   UnsupportedTokenError
		finalTokenMismatchError FinalTokenMismatchError
		poolNotFoundError       PoolNotFoundError
	)
	switch {
	case errors.As(err, &insufficientOutputError),
		errors.As(err, &expiredDeadlineError),
		errors.As(err, &unsupportedTokenError),
		errors.As(err, &finalTokenMismatchError):
		return http.StatusBadRequest
	case errors.As(err, &poolNotFoundError):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ResponseError represent the response error struct
type ResponseError struct {
	Message string `json:"message"`
}
