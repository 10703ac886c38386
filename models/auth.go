package models

// TokenResponse is the response from the OAuth token endpoint used to
// authenticate subsequent API calls
type TokenResponse struct {
	Scope       string `json:"scope,omitempty"`
	AccessToken string `json:"access_token" validate:"required"`
	TokenType   string `json:"token_type,omitempty"`
	AppID       string `json:"app_id,omitempty"`
	ExpiresIn   int    `json:"expires_in,omitempty"`
	Nonce       string `json:"nonce,omitempty"`
}
