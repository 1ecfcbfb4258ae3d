package mvc

import "context"

// ChainInfoUsecase surfaces chain liveness for health checking.
type ChainInfoUsecase interface {
	// GetLatestHeight returns the chain's latest block height.
	GetLatestHeight(ctx context.Context) (uint64, error)
}
