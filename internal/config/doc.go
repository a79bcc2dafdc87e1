// Package config handles configuration loading, parsing, and validation.
//
// Values are resolved in this order, highest precedence first: WALLET_*
// environment variables, variables from a .env file, a config.yaml file,
// and built-in defaults. The result is validated with struct tags before
// it is returned.
package config
