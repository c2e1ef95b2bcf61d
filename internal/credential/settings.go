package credential

import "github.com/MKhiriev/go-pass-autofill/models"

// Setting resolution: per-entry settings (parsed from the entry body)
// override per-store settings, which override the global configuration.
// All resolvers are pure functions of their inputs and never fail.

// resolveBool walks the entry → store → global chain for one boolean
// setting. A nil pointer means "not set at this level".
func resolveBool(entry, store *bool, global bool) bool {
	if entry != nil {
		return *entry
	}
	if store != nil {
		return *store
	}
	return global
}

// EffectiveAutoSubmit resolves whether a successful fill should submit the
// form for the given credential.
func EffectiveAutoSubmit(cred models.Credential, store models.Store, global bool) bool {
	return resolveBool(cred.Settings.AutoSubmit, store.Settings.AutoSubmit, global)
}

// EffectiveEnableOTP resolves whether one-time-password handling is enabled
// for the given credential.
func EffectiveEnableOTP(cred models.Credential, store models.Store, global bool) bool {
	return resolveBool(cred.Settings.EnableOTP, store.Settings.EnableOTP, global)
}

// EffectiveUsername resolves the fallback login name for a store: store
// setting over global default. Returns "" when neither is configured.
func EffectiveUsername(store models.Store, global string) string {
	if store.Settings.Username != nil && *store.Settings.Username != "" {
		return *store.Settings.Username
	}
	return global
}
