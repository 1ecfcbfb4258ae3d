package chain

import (
	"context"

	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/shareswap-labs/shareswap/domain/mvc"
)

// Client wraps the chain JSON-RPC connection shared by all contract
// bindings.
type Client struct {
	eth *ethclient.Client
}

var _ mvc.ChainInfoUsecase = &Client{}

// NewClient dials the chain JSON-RPC endpoint.
func NewClient(ctx context.Context, rpcEndpoint string) (*Client, error) {
	eth, err := ethclient.DialContext(ctx, rpcEndpoint)
	if err != nil {
		return nil, err
	}
	return &Client{eth: eth}, nil
}

// GetLatestHeight implements mvc.ChainInfoUsecase.
func (c *Client) GetLatestHeight(ctx context.Context) (uint64, error) {
	return c.eth.BlockNumber(ctx)
}

// Backend returns the underlying RPC-backed client.
func (c *Client) Backend() *ethclient.Client {
	return c.eth
}

// Close tears down the RPC connection.
func (c *Client) Close() {
	c.eth.Close()
}
