// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/fraud-shield/internal/service"
)

// ErrUserQuit is returned by [TUI.Run] when the user leaves with ctrl+c.
var ErrUserQuit = errors.New("user quit")

const msgServerUnavailable = "No network or the server is unavailable"

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrServerUnavailable):
		return msgServerUnavailable
	case errors.Is(err, service.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, service.ErrWrongPassword):
		return "Invalid credentials"
	case errors.Is(err, service.ErrEmailAlreadyRegistered):
		return "User already exists"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Please check the entered data"
	case errors.Is(err, service.ErrRewardAlreadyClaimed):
		return "Reward already claimed"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgServerUnavailable
	}

	return err.Error()
}

func isSessionError(err error) bool {
	return service.IsUnauthorized(err) || errors.Is(err, service.ErrNotLoggedIn)
}
