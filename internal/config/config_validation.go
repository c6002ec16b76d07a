// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

const (
	minBcryptCost = 4
	maxBcryptCost = 31
)

// validate checks the server invariants of the merged [StructuredConfig]
// before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return fmt.Errorf("%w: token sign key and issuer are required", ErrInvalidAppConfigs)
	}

	if cfg.App.TokenDuration <= 0 || cfg.App.RememberMeTokenDuration <= 0 || cfg.App.SignupTokenDuration <= 0 {
		return fmt.Errorf("%w: token durations must be positive", ErrInvalidAppConfigs)
	}

	if cfg.App.BcryptCost < minBcryptCost || cfg.App.BcryptCost > maxBcryptCost {
		return fmt.Errorf("%w: bcrypt cost %d out of range", ErrInvalidAppConfigs, cfg.App.BcryptCost)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DSN == "" || strings.Contains(cfg.Storage.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Game.StoryDwell < 0 || cfg.Game.EndDelay < 0 || cfg.Game.QuizDwell < 0 {
		return ErrInvalidGameConfigs
	}

	return nil
}
