package model

import "github.com/golang-jwt/jwt/v5"

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the admin token.
type LoginResponse struct {
	Token   string `json:"token"`
	AdminID string `json:"adminId"`
}

// ClientRegisterResponse carries the client-scoped token issued at
// onboarding. The engine keys caches and sockets by ClientID.
type ClientRegisterResponse struct {
	ClientID string `json:"clientId"`
	Token    string `json:"token"`
}

// AdminClaims are JWT claims for the operations/admin role.
type AdminClaims struct {
	AdminID string `json:"adminId"`
	jwt.RegisteredClaims
}

// ClientClaims are JWT claims scoped to a single client.
type ClientClaims struct {
	ClientID string `json:"clientId"`
	jwt.RegisteredClaims
}
