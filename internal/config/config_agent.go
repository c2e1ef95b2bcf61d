package config

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-autofill/models"
)

// AgentApp holds application-level settings derived from the shared
// structured config.
type AgentApp struct {
	// AgentSecret is the local secret the usage-hashing key is derived from.
	AgentSecret string
	// PairingKey is the shared secret required to pair a popup client.
	PairingKey string
	// TokenSignKey signs popup session tokens.
	TokenSignKey string
	// TokenIssuer is the "iss" claim of issued session tokens.
	TokenIssuer string
	// TokenDuration is the session token lifetime.
	TokenDuration time.Duration
	// DefaultUsername is the fallback login name.
	DefaultUsername string
	// EnableOTP globally toggles one-time-password parsing.
	EnableOTP bool
	// AutoSubmit globally requests submission after a successful fill.
	AutoSubmit bool
	// UsageDebounce is the usage-counter debounce window.
	UsageDebounce time.Duration
	// ClipboardClearDelay is the delay before copied secrets are cleared.
	ClipboardClearDelay time.Duration
	// Version is the agent version string.
	Version string
}

// AgentHost holds helper-process connection settings.
type AgentHost struct {
	// Address is the helper process endpoint.
	Address string
	// RequestTimeout bounds one helper round-trip.
	RequestTimeout time.Duration
}

// AgentBridge holds page agent bridge connection settings.
type AgentBridge struct {
	// Address is the extension bridge endpoint.
	Address string
	// RequestTimeout bounds one bridge round-trip.
	RequestTimeout time.Duration
	// InjectTimeout bounds page agent script injection.
	InjectTimeout time.Duration
}

// AgentDB contains local database connection settings.
type AgentDB struct {
	// DSN is the SQLite database path.
	DSN string
}

// AgentStorage groups local storage backend settings.
type AgentStorage struct {
	// DB holds local database settings.
	DB AgentDB
}

// AgentServer holds popup API listener settings.
type AgentServer struct {
	// HTTPAddress is the popup API listen address.
	HTTPAddress string
	// RequestTimeout bounds one inbound popup request.
	RequestTimeout time.Duration
}

// AgentWorkers contains background worker settings.
type AgentWorkers struct {
	// BadgeRefreshInterval defines how often the badge cache refreshes.
	BadgeRefreshInterval time.Duration
}

// AgentConfig is the top-level agent configuration assembled from
// [StructuredConfig].
type AgentConfig struct {
	// App contains application-level settings.
	App AgentApp
	// Host contains helper-process connection settings.
	Host AgentHost
	// Bridge contains page agent bridge settings.
	Bridge AgentBridge
	// Storage contains local storage settings.
	Storage AgentStorage
	// Server contains popup API settings.
	Server AgentServer
	// Workers contains background job settings.
	Workers AgentWorkers
	// Stores maps store IDs to password-store definitions.
	Stores map[string]models.Store
}

// Defaults applied by GetAgentConfig when the merged configuration leaves
// a value unset.
const (
	DefaultTokenDuration       = 8 * time.Hour
	DefaultUsageDebounce       = 30 * time.Second
	DefaultInjectTimeout       = 500 * time.Millisecond
	DefaultRequestTimeout      = 30 * time.Second
	DefaultBadgeRefreshTimeout = time.Minute
)

// GetAgentConfig builds and validates the agent config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the agent runtime, applies defaults for unset durations,
// and validates the resulting [AgentConfig].
func GetAgentConfig() (*AgentConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	agentCfg := &AgentConfig{
		App: AgentApp{
			AgentSecret:         cfg.App.AgentSecret,
			PairingKey:          cfg.App.PairingKey,
			TokenSignKey:        cfg.App.TokenSignKey,
			TokenIssuer:         cfg.App.TokenIssuer,
			TokenDuration:       cfg.App.TokenDuration,
			DefaultUsername:     cfg.App.DefaultUsername,
			EnableOTP:           cfg.App.EnableOTP,
			AutoSubmit:          cfg.App.AutoSubmit,
			UsageDebounce:       cfg.App.UsageDebounce,
			ClipboardClearDelay: cfg.App.ClipboardClearDelay,
			Version:             cfg.App.Version,
		},
		Host: AgentHost{
			Address:        cfg.Host.Address,
			RequestTimeout: cfg.Host.RequestTimeout,
		},
		Bridge: AgentBridge{
			Address:        cfg.Bridge.Address,
			RequestTimeout: cfg.Bridge.RequestTimeout,
			InjectTimeout:  cfg.Bridge.InjectTimeout,
		},
		Storage: AgentStorage{
			DB: AgentDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Server: AgentServer{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Workers: AgentWorkers{BadgeRefreshInterval: cfg.Workers.BadgeRefreshInterval},
		Stores:  cfg.Stores,
	}
	agentCfg.applyDefaults()

	return agentCfg, agentCfg.validate()
}

func (cfg *AgentConfig) applyDefaults() {
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.UsageDebounce == 0 {
		cfg.App.UsageDebounce = DefaultUsageDebounce
	}
	if cfg.Host.RequestTimeout == 0 {
		cfg.Host.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Bridge.RequestTimeout == 0 {
		cfg.Bridge.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Bridge.InjectTimeout == 0 {
		cfg.Bridge.InjectTimeout = DefaultInjectTimeout
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.BadgeRefreshInterval == 0 {
		cfg.Workers.BadgeRefreshInterval = DefaultBadgeRefreshTimeout
	}
}
