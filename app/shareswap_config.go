package main

import (
	"github.com/shareswap-labs/shareswap/domain"
)

// DefaultConfig defines the default config for the share router server.
var DefaultConfig = domain.Config{
	ServerAddress: ":9092",

	LoggerFilename:     "shareswap.log",
	LoggerIsProduction: true,
	LoggerLevel:        "info",

	ChainRPCEndpoint: "http://localhost:8545",
	ChainID:          8453,

	Router: &domain.RouterConfig{
		MaxHops:                5,
		EnableExecution:        false,
		PoolExistenceCacheSize: 2048,
	},

	CORS: &domain.CORSConfig{
		AllowedHeaders: "Origin, Accept, Content-Type, X-Requested-With, X-Server-Time, Accept-Language",
		AllowedMethods: "HEAD, GET, POST",
		AllowedOrigin:  "*",
	},

	OTEL: &domain.OTELConfig{
		DSN:         "",
		SampleRate:  0.2,
		Environment: "production",
	},
}
