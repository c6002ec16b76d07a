// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "testKey", contextKey("testKey").String())
	assert.Equal(t, "userID", UserIDCtxKey.String())
	assert.Equal(t, "email", EmailCtxKey.String())
}

func TestWithSession(t *testing.T) {
	ctx := WithSession(context.Background(), "0190-user", "alice@x.com")

	userID, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "0190-user", userID)

	email, ok := GetEmailFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "alice@x.com", email)
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	userID, ok := GetUserIDFromContext(context.Background())

	assert.False(t, ok)
	assert.Empty(t, userID)
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	userID, ok := GetUserIDFromContext(ctx)

	assert.False(t, ok)
	assert.Empty(t, userID)
}

func TestGetUserIDFromContext_Empty(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "")

	_, ok := GetUserIDFromContext(ctx)

	assert.False(t, ok)
}

func TestGetUserIDFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("otherKey"), "id")

	_, ok := GetUserIDFromContext(ctx)

	assert.False(t, ok)
}
