package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a popup API address in format [host]:[port]
//	-host-address helper process address in format [host]:[port]
//	-bridge-address page agent bridge address in format [host]:[port]
//	-d local database DSN
//	-c/-config json file path with configs
//	-agent-secret local usage-hashing secret
//	-pairing-key popup pairing key
//	-token-sign-key session token signing key
//	-token-issuer session token issuer name
//	-token-duration session token duration (e.g., "8h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-inject-timeout page agent injection timeout (e.g., "500ms")
//	-default-username fallback login name
//	-usage-debounce usage counter debounce window (e.g., "30s")
func ParseFlags() *StructuredConfig {
	var serverAddress, hostAddress, bridgeAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var agentSecret string
	var pairingKey string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var injectTimeout time.Duration
	var defaultUsername string
	var usageDebounce time.Duration

	flag.Var(&serverAddress, "a", "Popup API net address host:port")
	flag.Var(&hostAddress, "host-address", "Helper process net address host:port")
	flag.Var(&bridgeAddress, "bridge-address", "Page agent bridge net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Local database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&agentSecret, "agent-secret", "", "Usage-hashing secret")
	flag.StringVar(&pairingKey, "pairing-key", "", "Popup pairing key")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Session token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Session token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Session token duration (e.g., 8h, 30m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&injectTimeout, "inject-timeout", 0, "Page agent injection timeout (e.g., 500ms)")
	flag.StringVar(&defaultUsername, "default-username", "", "Fallback login name")
	flag.DurationVar(&usageDebounce, "usage-debounce", 0, "Usage counter debounce window (e.g., 30s)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			AgentSecret:     agentSecret,
			PairingKey:      pairingKey,
			TokenSignKey:    tokenSignKey,
			TokenIssuer:     tokenIssuer,
			TokenDuration:   tokenDuration,
			DefaultUsername: defaultUsername,
			UsageDebounce:   usageDebounce,
		},
		Host: Host{
			Address:        hostAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Bridge: Bridge{
			Address:        bridgeAddress.String(),
			RequestTimeout: requestTimeout,
			InjectTimeout:  injectTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
