// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-pass-autofill/models"
)

// StructuredConfig is the top-level configuration container for the
// go-pass-autofill agent. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the local agent
	// secret, session token parameters, and autofill defaults.
	App App `envPrefix:"APP_"`

	// Host holds the address and timeout of the privileged helper
	// process endpoint (the credential source RPC collaborator).
	Host Host `envPrefix:"HOST_"`

	// Bridge holds the address and timeouts of the page agent bridge
	// through which fill instructions reach page frames.
	Bridge Bridge `envPrefix:"BRIDGE_"`

	// Storage holds configuration for the local persistence backend
	// (usage statistics and foreign-fill policies).
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the local
	// popup-facing HTTP API.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Stores maps store IDs to password-store definitions. Only the
	// JSON configuration file can populate this field.
	Stores map[string]models.Store `json:"stores"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control hashing,
// popup sessions, and autofill defaults.
type App struct {
	// AgentSecret is the local secret from which the usage-statistics
	// HMAC key is derived. Must be kept confidential; generated on
	// first run when absent.
	// Env: APP_AGENT_SECRET
	AgentSecret string `env:"AGENT_SECRET"`

	// PairingKey is the shared secret a popup client must present to
	// obtain a session token.
	// Env: APP_PAIRING_KEY
	PairingKey string `env:"PAIRING_KEY"`

	// TokenSignKey is the secret key used to sign and verify session
	// tokens. Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued session
	// token and validated on every authenticated popup request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid
	// after issuance (e.g. "8h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// DefaultUsername is the login used when an entry has neither a
	// login-aliased line nor a store-level username.
	// Env: APP_DEFAULT_USERNAME
	DefaultUsername string `env:"DEFAULT_USERNAME"`

	// EnableOTP globally toggles one-time-password parsing. Stores and
	// entries may override it.
	// Env: APP_ENABLE_OTP
	EnableOTP bool `env:"ENABLE_OTP"`

	// AutoSubmit globally requests form submission after a successful
	// fill. Stores and entries may override it.
	// Env: APP_AUTO_SUBMIT
	AutoSubmit bool `env:"AUTO_SUBMIT"`

	// UsageDebounce is the window within which repeat uses of the same
	// credential refresh the last-used timestamp without incrementing
	// the usage counter (e.g. "30s").
	// Env: APP_USAGE_DEBOUNCE
	UsageDebounce time.Duration `env:"USAGE_DEBOUNCE"`

	// ClipboardClearDelay is how long copied secrets stay on the
	// clipboard before a best-effort clear. Zero disables clearing.
	// Env: APP_CLIPBOARD_CLEAR_DELAY
	ClipboardClearDelay time.Duration `env:"CLIPBOARD_CLEAR_DELAY"`

	// Version is the semantic version string of the running agent.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Host holds connection settings for the privileged helper process.
type Host struct {
	// Address is the HTTP endpoint of the helper process, in
	// "host:port" or full URL form.
	// Env: HOST_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for one helper
	// round-trip. A timed-out round-trip is terminal for the action.
	// Env: HOST_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Bridge holds connection settings for the page agent bridge.
type Bridge struct {
	// Address is the HTTP endpoint of the extension bridge.
	// Env: BRIDGE_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for one bridge
	// round-trip (frame enumeration, fill, focus-or-submit).
	// Env: BRIDGE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// InjectTimeout is the bounded wait for page agent script
	// injection; an injection that does not resolve within it is
	// treated as failed, not hung.
	// Env: BRIDGE_INJECT_TIMEOUT
	InjectTimeout time.Duration `env:"INJECT_TIMEOUT"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database that keeps
// usage statistics and foreign-fill policies.
type DB struct {
	// DSN is the SQLite database path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the popup-facing API.
type Server struct {
	// HTTPAddress is the TCP address on which the local HTTP API
	// listens, in "host:port" format (e.g. "127.0.0.1:39127").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single
	// inbound request before the server cancels it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// BadgeRefreshInterval defines how often the per-origin badge
	// cache is refreshed in the background.
	// Env: WORKERS_BADGE_REFRESH_INTERVAL
	BadgeRefreshInterval time.Duration `env:"BADGE_REFRESH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the agent
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
