package bank

// AuthorizationRequest is the wire shape sent to the acquiring bank.
type AuthorizationRequest struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	Currency   string `json:"currency"`
	Amount     int64  `json:"amount"`
	Cvv        string `json:"cvv"`
}

// AuthorizationResponse is the bank's answer to an authorization.
// AuthorizationCode may be absent; unknown fields are tolerated. The
// gateway's own payment identifier stays authoritative regardless of
// anything the bank sends back.
type AuthorizationResponse struct {
	Authorized        bool   `json:"authorized"`
	AuthorizationCode string `json:"authorization_code,omitempty"`
}
