// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignupRequest is the body of POST /signup.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`

	// RememberMe selects the long-lived token lifetime.
	RememberMe bool `json:"rememberMe"`
}

// AuthResult is what signup and login hand back to the transport layer:
// the affected user and the freshly issued token.
type AuthResult struct {
	User  User
	Token Token
}

// SignupResponse is the JSON body of a successful POST /signup.
type SignupResponse struct {
	Success bool        `json:"success"`
	User    UserSummary `json:"user"`
	Token   string      `json:"token"`
}

// LoginResponse is the JSON body of a successful POST /login.
type LoginResponse struct {
	Success bool         `json:"success"`
	User    UserSnapshot `json:"user"`
	Token   string       `json:"token"`
}

// ProfileResponse is the JSON body of GET /profile.
type ProfileResponse struct {
	Success bool    `json:"success"`
	User    Profile `json:"user"`
}

// MessageResponse is used for plain acknowledgements and for errors.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
