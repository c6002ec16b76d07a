package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey            string   `json:"token_sign_key"`
		TokenIssuer             string   `json:"token_issuer"`
		TokenDuration           Duration `json:"token_duration"`
		RememberMeTokenDuration Duration `json:"remember_me_token_duration"`
		SignupTokenDuration     Duration `json:"signup_token_duration"`
		BcryptCost              int      `json:"bcrypt_cost"`
		LogLevel                string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN           string `json:"dsn"`
			MongoDatabase string `json:"mongo_database"`
		} `json:"db,omitempty"`

		Redis struct {
			Address  string `json:"address"`
			Password string `json:"password"`
			DB       int    `json:"db"`
		} `json:"redis,omitempty"`

		Local struct {
			DSN string `json:"dsn"`
		} `json:"local,omitempty"`
	} `json:"storage,omitempty"`

	Events struct {
		NATSURL       string `json:"nats_url"`
		SubjectPrefix string `json:"subject_prefix"`
	} `json:"events,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Game struct {
		StoryDwell Duration `json:"story_dwell"`
		EndDelay   Duration `json:"end_delay"`
		QuizDwell  Duration `json:"quiz_dwell"`
	} `json:"game,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:            jsonCfg.App.TokenSignKey,
			TokenIssuer:             jsonCfg.App.TokenIssuer,
			TokenDuration:           time.Duration(jsonCfg.App.TokenDuration),
			RememberMeTokenDuration: time.Duration(jsonCfg.App.RememberMeTokenDuration),
			SignupTokenDuration:     time.Duration(jsonCfg.App.SignupTokenDuration),
			BcryptCost:              jsonCfg.App.BcryptCost,
			LogLevel:                jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:           jsonCfg.Storage.DB.DSN,
				MongoDatabase: jsonCfg.Storage.DB.MongoDatabase,
			},
			Redis: Redis{
				Address:  jsonCfg.Storage.Redis.Address,
				Password: jsonCfg.Storage.Redis.Password,
				DB:       jsonCfg.Storage.Redis.DB,
			},
			Local: Local{
				DSN: jsonCfg.Storage.Local.DSN,
			},
		},
		Events: Events{
			NATSURL:       jsonCfg.Events.NATSURL,
			SubjectPrefix: jsonCfg.Events.SubjectPrefix,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Game: Game{
			StoryDwell: time.Duration(jsonCfg.Game.StoryDwell),
			EndDelay:   time.Duration(jsonCfg.Game.EndDelay),
			QuizDwell:  time.Duration(jsonCfg.Game.QuizDwell),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
