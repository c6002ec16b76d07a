// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/fraud-shield/internal/adapter"
	"github.com/MKhiriev/fraud-shield/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, adapter.ErrRequestFailed) {
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	msg := ""
	var respErr *adapter.ResponseError
	if errors.As(err, &respErr) {
		msg = respErr.Message
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		if msg == app.MsgInvalidCredentials {
			return ErrWrongPassword
		}
		return fmt.Errorf("%w: %s", ErrInvalidDataProvided, msg)

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgLoginUserNotFound:
			return ErrUserNotFound
		case app.MsgNoToken:
			return ErrNoToken
		}
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrNotFound):
		return ErrUserNotFound

	case errors.Is(err, adapter.ErrConflict):
		return ErrEmailAlreadyRegistered
	}

	return err
}
