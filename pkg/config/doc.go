// Package config loads memkit configuration.
//
// The configuration has three sections:
//   - Pool: registry options (concurrency, retention cap, ring size)
//   - Logging: level, encoding and outputs of the zap logger
//   - Metrics: whether to export pool statistics to Prometheus
//
// # Usage
//
//	cfg, err := config.Load("memkit.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	reg := pool.NewRegistry(pool.WithOptions(cfg.Pool.Options()))
//
// # Environment Overrides
//
// Every key can be overridden with a MEMKIT_ variable, upper-cased with dots
// replaced by underscores:
//
//	MEMKIT_POOL_CONCURRENT=true
//	MEMKIT_LOGGING_LEVEL=debug
//	MEMKIT_LOGGING_OUTPUT_PATHS=stdout,/var/log/memkit.log
//
// Environment values take precedence over the file, which takes precedence over
// Default.
package config
