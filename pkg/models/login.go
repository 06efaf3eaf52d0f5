package models

// LoginParam is the parameter payload of the Login command.
type LoginParam struct {
	User UserCredentials `json:"User"`
}

type UserCredentials struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

// TokenValue wraps the success payload of Login.
type TokenValue struct {
	Token TokenInfo `json:"Token"`
}

// TokenInfo carries the session token and its lease in seconds.
type TokenInfo struct {
	Name      string `json:"name"`
	LeaseTime int    `json:"leaseTime"`
}
