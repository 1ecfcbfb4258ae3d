package mvc

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/shareswap-labs/shareswap/domain"
)

// TokenSetUsecase maintains the vault-native token set.
type TokenSetUsecase interface {
	// Refresh re-reads the vault whitelist. Admin-triggered; never called
	// implicitly during a route evaluation.
	Refresh(ctx context.Context) error

	// Snapshot returns an immutable snapshot of the set. One snapshot must
	// serve a whole route evaluation.
	Snapshot() domain.TokenSet

	// IsVaultNative returns true if the token is currently vault-native.
	IsVaultNative(token common.Address) bool

	// ShareToken returns the share token address.
	ShareToken() common.Address
}
