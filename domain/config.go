package domain

// Config defines the config for the share router server.
type Config struct {
	// Defines the web server configuration.
	ServerAddress string `mapstructure:"server-address"`

	// Defines the logger configuration.
	LoggerFilename     string `mapstructure:"logger-filename"`
	LoggerIsProduction bool   `mapstructure:"logger-is-production"`
	LoggerLevel        string `mapstructure:"logger-level"`

	// Chain JSON-RPC endpoint the collaborator bindings dial.
	ChainRPCEndpoint string `mapstructure:"chain-rpc-endpoint"`
	ChainID          uint64 `mapstructure:"chain-id"`

	// ChainPrivateKey is the hex private key of the operator account that
	// signs transactions. Never serialized back out.
	ChainPrivateKey string `mapstructure:"chain-private-key" json:"-"`

	// Contracts holds the injected collaborator addresses.
	Contracts *ContractsConfig `mapstructure:"contracts"`

	// Router encapsulates the router config.
	Router *RouterConfig `mapstructure:"router"`

	CORS *CORSConfig `mapstructure:"cors"`

	OTEL *OTELConfig `mapstructure:"otel"`
}

// ContractsConfig holds the addresses of the external collaborators. All
// addresses are hex-encoded. These were hard-coded constants in earlier
// deployments; injecting them enables multi-deployment and test doubles.
type ContractsConfig struct {
	// Vault is the share-token vault.
	Vault string `mapstructure:"vault"`
	// ShareToken is the wrapped share token.
	ShareToken string `mapstructure:"share-token"`
	// ShareRate is the share/basket exchange-rate helper.
	ShareRate string `mapstructure:"share-rate"`
	// PoolFactory is the deterministic pool factory.
	PoolFactory string `mapstructure:"pool-factory"`
	// PoolImplementation is the factory's clone deployment template.
	PoolImplementation string `mapstructure:"pool-implementation"`
	// WrappedNative is the wrapped native asset (e.g. WETH).
	WrappedNative string `mapstructure:"wrapped-native"`
	// Router is the account the engine moves funds through.
	Router string `mapstructure:"router"`
}

// RouterConfig defines the config for the router.
type RouterConfig struct {
	// MaxHops is the maximum number of hops accepted in a single route.
	MaxHops int `mapstructure:"max-hops"`

	// EnableExecution enables the swap execution endpoints. Quoting is
	// always available.
	EnableExecution bool `mapstructure:"enable-execution"`

	// PoolExistenceCacheSize bounds the isPool lookup cache.
	PoolExistenceCacheSize int `mapstructure:"pool-existence-cache-size"`
}

// CORSConfig defines the config for the CORS middleware.
type CORSConfig struct {
	// Specifies Access-Control-Allow-Headers header value.
	AllowedHeaders string `mapstructure:"allowed-headers"`
	// Specifies Access-Control-Allow-Methods header value.
	AllowedMethods string `mapstructure:"allowed-methods"`
	// Specifies Access-Control-Allow-Origin header value.
	AllowedOrigin string `mapstructure:"allowed-origin"`
}

// OTELConfig represents OpenTelemetry configuration.
type OTELConfig struct {
	// The DSN to use for sentry. If empty, sentry is disabled.
	DSN string `mapstructure:"dsn"`
	// The sample rate for event submission in the range [0.0, 1.0].
	SampleRate float64 `mapstructure:"sample-rate"`
	// Environment name for sentry events.
	Environment string `mapstructure:"environment"`
}
