package config

import "errors"

// Validation errors returned by [AgentConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidHostConfigs indicates invalid helper-process settings
	// (for example, a missing address).
	ErrInvalidHostConfigs = errors.New("invalid helper host configuration")
	// ErrInvalidBridgeConfigs indicates invalid page agent bridge
	// settings (for example, a missing address).
	ErrInvalidBridgeConfigs = errors.New("invalid bridge configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing agent secret or token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrNoStoresConfigured indicates that the configuration defines no
	// password stores, leaving the agent nothing to list.
	ErrNoStoresConfigured = errors.New("no password stores configured")
)
