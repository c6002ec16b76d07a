// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validServerConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.TokenSignKey = "secret"
	cfg.Storage.DB.DSN = "postgres://localhost/shield"
	return cfg
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "missing sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "zero signup lifetime", mutate: func(c *StructuredConfig) { c.App.SignupTokenDuration = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "bcrypt cost too low", mutate: func(c *StructuredConfig) { c.App.BcryptCost = 3 }, wantErr: ErrInvalidAppConfigs},
		{name: "bcrypt cost too high", mutate: func(c *StructuredConfig) { c.App.BcryptCost = 32 }, wantErr: ErrInvalidAppConfigs},
		{name: "missing dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "missing http address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	base := newClientConfig(defaultConfig())
	assert.NoError(t, base.validate())

	memory := *base
	memory.Storage.DSN = "file::memory:"
	assert.ErrorIs(t, memory.validate(), ErrInvalidStorageConfigs)

	noAddr := *base
	noAddr.Adapter.HTTPAddress = ""
	assert.ErrorIs(t, noAddr.validate(), ErrInvalidAdapterConfigs)

	negative := *base
	negative.Game.QuizDwell = -1
	assert.ErrorIs(t, negative.validate(), ErrInvalidGameConfigs)
}

// TestClientConfig_DoesNotNeedServerSecrets verifies that the client view is
// valid without a token sign key or credential store DSN.
func TestClientConfig_DoesNotNeedServerSecrets(t *testing.T) {
	cfg := newClientConfig(defaultConfig())

	assert.NoError(t, cfg.validate())
	assert.Equal(t, DefaultLocalDSN, cfg.Storage.DSN)
	assert.Equal(t, DefaultAdapterTimeout, cfg.Adapter.RequestTimeout)
}
