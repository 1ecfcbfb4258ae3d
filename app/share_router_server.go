package main

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/shareswap-labs/shareswap/chain"
	"github.com/shareswap-labs/shareswap/domain"
	"github.com/shareswap-labs/shareswap/domain/mvc"
	"github.com/shareswap-labs/shareswap/log"
	"github.com/shareswap-labs/shareswap/middleware"

	routerhttpdelivery "github.com/shareswap-labs/shareswap/router/delivery/http"
	routerusecase "github.com/shareswap-labs/shareswap/router/usecase"
	systemhttpdelivery "github.com/shareswap-labs/shareswap/system/delivery/http"
	tokenshttpdelivery "github.com/shareswap-labs/shareswap/tokens/delivery/http"
	tokensusecase "github.com/shareswap-labs/shareswap/tokens/usecase"
	conversionusecase "github.com/shareswap-labs/shareswap/vault/usecase"

	poolsusecase "github.com/shareswap-labs/shareswap/pools/usecase"
)

// tokenSetRefreshInterval bounds how stale the vault whitelist snapshot can
// get between manual refreshes.
const tokenSetRefreshInterval = 15 * time.Minute

// ShareRouterServer defines an interface for the share router server.
// It wires the chain-bound collaborators into the routing usecases and
// exposes the quoting and execution endpoints.
type ShareRouterServer interface {
	GetTokenSetUsecase() mvc.TokenSetUsecase
	GetRouterUsecase() mvc.RouterUsecase
	GetLogger() log.Logger
	Shutdown(context.Context) error
	Start(context.Context) error
}

type shareRouterServer struct {
	tokenSetUsecase mvc.TokenSetUsecase
	routerUsecase   mvc.RouterUsecase
	chainClient     *chain.Client
	e               *echo.Echo
	serverAddress   string
	logger          log.Logger
}

// GetTokenSetUsecase implements ShareRouterServer.
func (s *shareRouterServer) GetTokenSetUsecase() mvc.TokenSetUsecase {
	return s.tokenSetUsecase
}

// GetRouterUsecase implements ShareRouterServer.
func (s *shareRouterServer) GetRouterUsecase() mvc.RouterUsecase {
	return s.routerUsecase
}

// GetLogger implements ShareRouterServer.
func (s *shareRouterServer) GetLogger() log.Logger {
	return s.logger
}

// Shutdown implements ShareRouterServer.
func (s *shareRouterServer) Shutdown(ctx context.Context) error {
	defer s.chainClient.Close()
	return s.e.Shutdown(ctx)
}

// Start implements ShareRouterServer.
func (s *shareRouterServer) Start(ctx context.Context) error {
	go s.refreshTokenSetLoop(ctx)

	s.logger.Info("Starting share router server", zap.String("address", s.serverAddress))
	return s.e.Start(s.serverAddress)
}

// refreshTokenSetLoop re-reads the vault whitelist on an interval so that
// newly listed tokens start classifying as vault-native without a restart.
func (s *shareRouterServer) refreshTokenSetLoop(ctx context.Context) {
	ticker := time.NewTicker(tokenSetRefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.tokenSetUsecase.Refresh(ctx); err != nil {
				s.logger.Error("error refreshing vault-native token set", zap.Error(err))
			}
		}
	}
}

// NewShareRouterServer creates a new share router server.
func NewShareRouterServer(ctx context.Context, config domain.Config, logger log.Logger) (ShareRouterServer, error) {
	// Setup echo server
	e := echo.New()
	middleware := middleware.InitMiddleware(config.CORS)
	e.Use(middleware.CORS)
	e.Use(middleware.InstrumentMiddleware)
	e.Use(middleware.TraceWithParamsMiddleware("shareswap"))

	contracts, err := parseContracts(config.Contracts)
	if err != nil {
		return nil, err
	}

	// Dial the chain and ensure the node is reachable.
	chainClient, err := chain.NewClient(ctx, config.ChainRPCEndpoint)
	if err != nil {
		return nil, err
	}
	latestHeight, err := chainClient.GetLatestHeight(ctx)
	if err != nil {
		return nil, fmt.Errorf("error connecting to the chain RPC endpoint: %w", err)
	}
	logger.Info("Connected to chain", zap.Uint64("latest_height", latestHeight))

	transactor, err := chain.NewTransactor(config.ChainPrivateKey, config.ChainID, chainClient)
	if err != nil {
		return nil, err
	}
	if transactor.Address() != contracts.router {
		return nil, fmt.Errorf("operator account %s does not match the configured router account %s", transactor.Address().Hex(), contracts.router.Hex())
	}

	// Chain-bound collaborators.
	bank := chain.NewBank(chainClient, transactor)
	vault := chain.NewVault(contracts.vault, chainClient, transactor)
	shareRate := chain.NewShareRateClient(contracts.shareRate, chainClient)
	factory := chain.NewFactory(contracts.poolFactory, chainClient, transactor)
	poolClient := chain.NewPoolClientFn(chainClient, transactor)
	wrappedNative := chain.NewWrappedNative(contracts.wrappedNative, chainClient, transactor)

	// Initialize the token set and load the vault whitelist.
	tokenSetUsecase := tokensusecase.NewTokenSetUsecase(contracts.shareToken, vault, logger)
	if err := tokenSetUsecase.Refresh(ctx); err != nil {
		return nil, fmt.Errorf("error loading the vault whitelist: %w", err)
	}

	conversionUsecase := conversionusecase.NewConversionUsecase(vault, shareRate, tokenSetUsecase, logger)

	poolsUsecase, err := poolsusecase.NewPoolsUsecase(contracts.poolFactory, contracts.poolImplementation, factory, poolClient, config.Router.PoolExistenceCacheSize, logger)
	if err != nil {
		return nil, err
	}

	routerUsecase := routerusecase.NewRouterUsecase(*config.Router, contracts.router, conversionUsecase, poolsUsecase, tokenSetUsecase, vault, bank, wrappedNative, logger)

	// HTTP handlers
	routerhttpdelivery.NewRouterHandler(e, routerUsecase, conversionUsecase, poolsUsecase, logger)
	tokenshttpdelivery.NewTokensHandler(e, tokenSetUsecase, logger)
	systemhttpdelivery.NewSystemHandler(e, config, logger, chainClient)

	return &shareRouterServer{
		tokenSetUsecase: tokenSetUsecase,
		routerUsecase:   routerUsecase,
		chainClient:     chainClient,
		e:               e,
		serverAddress:   config.ServerAddress,
		logger:          logger,
	}, nil
}

// contractAddresses is ContractsConfig with the hex strings parsed.
type contractAddresses struct {
	vault              common.Address
	shareToken         common.Address
	shareRate          common.Address
	poolFactory        common.Address
	poolImplementation common.Address
	wrappedNative      common.Address
	router             common.Address
}

func parseContracts(config *domain.ContractsConfig) (contractAddresses, error) {
	if config == nil {
		return contractAddresses{}, fmt.Errorf("contracts config is not set")
	}

	var (
		parsed contractAddresses
		fields = []struct {
			name string
			hex  string
			dst  *common.Address
		}{
			{"vault", config.Vault, &parsed.vault},
			{"share-token", config.ShareToken, &parsed.shareToken},
			{"share-rate", config.ShareRate, &parsed.shareRate},
			{"pool-factory", config.PoolFactory, &parsed.poolFactory},
			{"pool-implementation", config.PoolImplementation, &parsed.poolImplementation},
			{"wrapped-native", config.WrappedNative, &parsed.wrappedNative},
			{"router", config.Router, &parsed.router},
		}
	)

	for _, field := range fields {
		if !common.IsHexAddress(field.hex) {
			return contractAddresses{}, fmt.Errorf("contract address %s is not a valid hex address: %q", field.name, field.hex)
		}
		*field.dst = common.HexToAddress(field.hex)
	}

	return parsed, nil
}
