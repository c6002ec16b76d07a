// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied before any other source.
const (
	DefaultTokenIssuer             = "fraud-shield"
	DefaultTokenDuration           = 7 * time.Hour
	DefaultRememberMeTokenDuration = 30 * 24 * time.Hour
	DefaultSignupTokenDuration     = time.Hour
	DefaultBcryptCost              = 10
	DefaultLogLevel                = "debug"

	DefaultHTTPAddress   = "localhost:8080"
	DefaultMongoDatabase = "fraud_shield"
	DefaultSubjectPrefix = "fraudshield"

	DefaultAdapterAddress = "http://localhost:8080"
	DefaultAdapterTimeout = 10 * time.Second
	DefaultLocalDSN       = "fraud-shield-client.db"

	DefaultStoryDwell = 2 * time.Second
	DefaultEndDelay   = 2 * time.Second
	DefaultQuizDwell  = 3 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:             DefaultTokenIssuer,
			TokenDuration:           DefaultTokenDuration,
			RememberMeTokenDuration: DefaultRememberMeTokenDuration,
			SignupTokenDuration:     DefaultSignupTokenDuration,
			BcryptCost:              DefaultBcryptCost,
			LogLevel:                DefaultLogLevel,
		},
		Storage: Storage{
			DB:    DB{MongoDatabase: DefaultMongoDatabase},
			Local: Local{DSN: DefaultLocalDSN},
		},
		Events: Events{SubjectPrefix: DefaultSubjectPrefix},
		Server: Server{HTTPAddress: DefaultHTTPAddress},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterTimeout,
		},
		Game: Game{
			StoryDwell: DefaultStoryDwell,
			EndDelay:   DefaultEndDelay,
			QuizDwell:  DefaultQuizDwell,
		},
	}
}
