package models

// PairRequest is the pairing handshake sent by the popup to obtain a
// session token for the local API.
type PairRequest struct {
	// ClientID identifies the extension instance requesting pairing.
	ClientID string `json:"client_id"`

	// PairingKey is the shared secret displayed by the agent on first
	// run and entered once in the extension options.
	PairingKey string `json:"pairing_key"`
}

// PairResponse carries the issued session token.
type PairResponse struct {
	Token string `json:"token"`
}

// LoginsRequest describes a ranked-listing query from the popup.
type LoginsRequest struct {
	// Origin is the scheme+host+port of the active tab.
	Origin string `json:"origin"`

	// Query is the raw search string; empty for the initial listing.
	Query string `json:"query"`

	// CurrentDomainOnly restricts the listing to candidates relevant
	// to Origin (recently used or in the current host).
	CurrentDomainOnly bool `json:"current_domain_only"`
}

// LoginsResponse is the ranked candidate listing.
type LoginsResponse struct {
	Logins []*LoginCandidate `json:"logins"`
	Length int               `json:"length"`
}

// FillActionRequest asks the agent to fill the selected credential
// into the active tab.
type FillActionRequest struct {
	Origin  string   `json:"origin"`
	StoreID string   `json:"store_id"`
	Login   string   `json:"login"`
	Fields  []string `json:"fields"`
}

// FillActionResponse reports which fields were filled.
type FillActionResponse struct {
	FilledFields []string `json:"filled_fields"`
}

// CopyActionRequest asks the agent to copy one credential field to the
// system clipboard.
type CopyActionRequest struct {
	Origin  string `json:"origin"`
	StoreID string `json:"store_id"`
	Login   string `json:"login"`
	Field   string `json:"field"`
}

// BadgeResponse carries the per-origin count of matching credentials
// shown on the extension badge.
type BadgeResponse struct {
	Origin string `json:"origin"`
	Count  int    `json:"count"`
}
