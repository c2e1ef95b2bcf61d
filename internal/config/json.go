package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-pass-autofill/models"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly duration parsing. It is the schema of the optional
// configuration file referenced by the CONFIG env variable or -c flag.
type StructuredJSONConfig struct {
	App struct {
		AgentSecret         string   `json:"agent_secret"`
		PairingKey          string   `json:"pairing_key"`
		TokenSignKey        string   `json:"token_sign_key"`
		TokenIssuer         string   `json:"token_issuer"`
		TokenDuration       Duration `json:"token_duration"`
		DefaultUsername     string   `json:"default_username"`
		EnableOTP           bool     `json:"enable_otp"`
		AutoSubmit          bool     `json:"auto_submit"`
		UsageDebounce       Duration `json:"usage_debounce"`
		ClipboardClearDelay Duration `json:"clipboard_clear_delay"`
	} `json:"app,omitempty"`

	Host struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"host,omitempty"`

	Bridge struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
		InjectTimeout  Duration `json:"inject_timeout"`
	} `json:"bridge,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		BadgeRefreshInterval Duration `json:"badge_refresh_interval"`
	} `json:"workers,omitempty"`

	Stores map[string]models.Store `json:"stores,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			AgentSecret:         jsonCfg.App.AgentSecret,
			PairingKey:          jsonCfg.App.PairingKey,
			TokenSignKey:        jsonCfg.App.TokenSignKey,
			TokenIssuer:         jsonCfg.App.TokenIssuer,
			TokenDuration:       time.Duration(jsonCfg.App.TokenDuration),
			DefaultUsername:     jsonCfg.App.DefaultUsername,
			EnableOTP:           jsonCfg.App.EnableOTP,
			AutoSubmit:          jsonCfg.App.AutoSubmit,
			UsageDebounce:       time.Duration(jsonCfg.App.UsageDebounce),
			ClipboardClearDelay: time.Duration(jsonCfg.App.ClipboardClearDelay),
		},
		Host: Host{
			Address:        jsonCfg.Host.Address,
			RequestTimeout: time.Duration(jsonCfg.Host.RequestTimeout),
		},
		Bridge: Bridge{
			Address:        jsonCfg.Bridge.Address,
			RequestTimeout: time.Duration(jsonCfg.Bridge.RequestTimeout),
			InjectTimeout:  time.Duration(jsonCfg.Bridge.InjectTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Workers: Workers{
			BadgeRefreshInterval: time.Duration(jsonCfg.Workers.BadgeRefreshInterval),
		},
		Stores:       jsonCfg.Stores,
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
