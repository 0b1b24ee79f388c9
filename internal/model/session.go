package model

// SessionResponse represents response for GET /wallet/session
type SessionResponse struct {
	Address           *string `json:"address"`
	Connected         bool    `json:"connected"`
	Display           string  `json:"display"`
	ProviderAvailable bool    `json:"providerAvailable"`
	IsAdmin           bool    `json:"isAdmin"`
}

// ConnectRequest represents request for POST /wallet/connect.
// An empty Address asks the wallet provider for accounts instead.
type ConnectRequest struct {
	Address string `json:"address"`
}

// AdminCheckResponse represents response for GET /admin/check
type AdminCheckResponse struct {
	Address string `json:"address"`
	IsAdmin bool   `json:"isAdmin"`
}
