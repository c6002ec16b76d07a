// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"
	"testing"

	"github.com/MKhiriev/fraud-shield/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func score(v float64) *float64 { return &v }

func TestNewRequestValidator(t *testing.T) {
	require.NotNil(t, NewRequestValidator())
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "a string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.SignupRequest)(nil)), ErrUnsupportedType)
}

func TestValidate_Signup(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.SignupRequest
		wantErr error
	}{
		{name: "valid", req: models.SignupRequest{Username: "alice", Email: "alice@x.com", Password: "pw123"}},
		{name: "missing username", req: models.SignupRequest{Email: "alice@x.com", Password: "pw"}, wantErr: ErrEmptyUsername},
		{name: "blank username", req: models.SignupRequest{Username: "   ", Email: "alice@x.com", Password: "pw"}, wantErr: ErrEmptyUsername},
		{name: "missing email", req: models.SignupRequest{Username: "alice", Password: "pw"}, wantErr: ErrEmptyEmail},
		{name: "missing password", req: models.SignupRequest{Username: "alice", Email: "alice@x.com"}, wantErr: ErrEmptyPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			// pointer form behaves the same
			req := tt.req
			ptrErr := v.Validate(ctx, &req)
			assert.Equal(t, err, ptrErr)
		})
	}
}

func TestValidate_Login(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.LoginRequest{Email: "a@x.com", Password: "pw"}))
	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Password: "pw"}), ErrEmptyEmail)
	assert.ErrorIs(t, v.Validate(ctx, &models.LoginRequest{Email: "a@x.com"}), ErrEmptyPassword)
}

func TestValidate_GameCompletion(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.GameCompletion
		wantErr error
	}{
		{name: "valid", req: models.GameCompletion{GameID: "g1", Score: score(10)}},
		{name: "zero score", req: models.GameCompletion{GameID: "g1", Score: score(0)}},
		{name: "fractional score", req: models.GameCompletion{GameID: "g1", Score: score(7.5)}},
		{name: "missing game", req: models.GameCompletion{Score: score(10)}, wantErr: ErrEmptyGameID},
		{name: "missing score", req: models.GameCompletion{GameID: "g1"}, wantErr: ErrMissingScore},
		{name: "negative score", req: models.GameCompletion{GameID: "g1", Score: score(-1)}, wantErr: ErrInvalidScore},
		{name: "NaN score", req: models.GameCompletion{GameID: "g1", Score: score(math.NaN())}, wantErr: ErrInvalidScore},
		{name: "infinite score", req: models.GameCompletion{GameID: "g1", Score: score(math.Inf(1))}, wantErr: ErrInvalidScore},
		{name: "max score", req: models.GameCompletion{GameID: "g1", Score: score(MaxScore)}},
		{name: "score above max", req: models.GameCompletion{GameID: "g1", Score: score(MaxScore + 0.5)}, wantErr: ErrInvalidScore},
		{name: "score past int64 range", req: models.GameCompletion{GameID: "g1", Score: score(1e20)}, wantErr: ErrInvalidScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, &tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_FieldScoping(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	req := models.SignupRequest{Email: "a@x.com"}
	assert.NoError(t, v.Validate(ctx, req, FieldEmail))
	assert.ErrorIs(t, v.Validate(ctx, req, FieldUsername), ErrEmptyUsername)
	assert.ErrorIs(t, v.Validate(ctx, req, "unknown"), ErrUnknownField)
}
