// Package config handles configuration loading, parsing, and validation
// from environment variables and optional .env/config files. It provides
// type-safe access to application settings needed by different components
// while keeping configuration details separate from business logic.
//
// Configuration is loaded once at process start and passed explicitly into
// component constructors; nothing in this package is mutable global state.
package config
