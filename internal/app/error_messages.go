// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings shared by the server handlers
// and the client adapter.
//
// The client maps error responses back to service errors by these exact
// strings, so they are part of the HTTP contract.
package app

const (
	// MsgAllFieldsRequired is returned by signup when a field is blank.
	MsgAllFieldsRequired = "All fields are required."

	// MsgEmailPasswordRequired is returned by login when email or password
	// is blank.
	MsgEmailPasswordRequired = "Email and password are required."

	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "Invalid request body."

	// MsgUserAlreadyExists is returned when signup hits a registered email.
	MsgUserAlreadyExists = "User already exists with this email."

	// MsgLoginUserNotFound is returned by login for an unknown email.
	MsgLoginUserNotFound = "User Not Found"

	// MsgInvalidCredentials is returned by login on a password mismatch.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgUserNotFound is returned by profile and game completion when the
	// session's user no longer exists.
	MsgUserNotFound = "User not found."

	// MsgSomethingWentWrong is the generic 500 message.
	MsgSomethingWentWrong = "Something went wrong. Please try again."

	// MsgProfileFailed is returned when the profile cannot be loaded.
	MsgProfileFailed = "Something went wrong while retrieving profile data."

	// MsgUserVerified is the body of GET /protected.
	MsgUserVerified = "User Verified"

	// MsgLoggedOut is the body of POST /logout.
	MsgLoggedOut = "Logged out successfully"

	// MsgLeaderboardRetrieved accompanies a successful leaderboard.
	MsgLeaderboardRetrieved = "Top 10 users retrieved successfully."

	// MsgLeaderboardFailed is returned when the leaderboard query fails.
	MsgLeaderboardFailed = "Could not retrieve leaderboard. Please try again."

	// MsgInvalidGameCompletion is returned when gameId or score is invalid.
	MsgInvalidGameCompletion = "A game id and a non-negative score are required."

	// MsgGameCompletionFailed is returned when the reward cannot be saved.
	MsgGameCompletionFailed = "Could not record game completion. Please try again."

	// MsgNoToken is returned when a protected route gets no token.
	MsgNoToken = "Unauthorized: no token provided"

	// MsgInvalidToken is returned for a malformed, expired or revoked token.
	MsgInvalidToken = "Unauthorized: invalid or expired token"

	// MsgMethodNotAllowed is returned by the method check middleware.
	MsgMethodNotAllowed = "Method not allowed"
)
