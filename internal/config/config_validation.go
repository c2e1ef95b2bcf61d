// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Only structural checks belong here; runtime-view requirements are
// enforced by [AgentConfig.validate] after defaults are applied.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *AgentConfig) validate() error {
	if cfg.App.AgentSecret == "" || cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Host.Address == "" {
		return ErrInvalidHostConfigs
	}

	if cfg.Bridge.Address == "" {
		return ErrInvalidBridgeConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if len(cfg.Stores) == 0 {
		return ErrNoStoresConfigured
	}

	return nil
}
