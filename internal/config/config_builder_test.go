package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenSignKey: "key"}},
		&StructuredConfig{App: App{TokenIssuer: "issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "key", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
}

// TestBuild_LaterSourceWins verifies that a later non-zero value overrides an
// earlier one while zero values leave it untouched.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenIssuer: "first", BcryptCost: 10}},
		&StructuredConfig{App: App{TokenIssuer: "second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "second", cfg.App.TokenIssuer)
	assert.Equal(t, 10, cfg.App.BcryptCost)
}

// TestBuild_Precedence verifies defaults < JSON < env < flags.
func TestBuild_Precedence(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-key")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env")

	payload := StructuredJSONConfig{}
	payload.App.TokenIssuer = "json-issuer"
	payload.App.TokenSignKey = "json-key"
	payload.Storage.Redis.Address = "json-redis:6379"
	path := writeTempJSONConfig(t, payload)

	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags([]string{"-token-sign-key", "flag-key", "-c", path}).
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "env-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "flag-key", cfg.App.TokenSignKey)
	assert.Equal(t, "json-redis:6379", cfg.Storage.Redis.Address)
	assert.Equal(t, "postgres://env", cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, DefaultRememberMeTokenDuration, cfg.App.RememberMeTokenDuration)
	assert.Equal(t, DefaultBcryptCost, cfg.App.BcryptCost)
	require.NoError(t, cfg.validate())
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_TokenLifetimes(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	require.Len(t, b.configs, 1)

	assert.Equal(t, 7*time.Hour, b.configs[0].App.TokenDuration)
	assert.Equal(t, 30*24*time.Hour, b.configs[0].App.RememberMeTokenDuration)
	assert.Equal(t, time.Hour, b.configs[0].App.SignupTokenDuration)
	assert.Equal(t, 2*time.Second, b.configs[0].Game.StoryDwell)
	assert.Equal(t, 3*time.Second, b.configs[0].Game.QuizDwell)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")
	t.Setenv("EVENTS_NATS_URL", "nats://localhost:4222")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
	assert.Equal(t, "nats://localhost:4222", b.configs[0].Events.NATSURL)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
}

func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-a", "not-an-address"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.TokenIssuer = "json-issuer"
	payload.Storage.Redis.Address = "localhost:6379"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-issuer", b.configs[0].App.TokenIssuer)
	assert.Equal(t, "localhost:6379", b.configs[0].Storage.Redis.Address)
}

func TestWithJSON_PlacedAfterDefaults(t *testing.T) {
	clearEnvVars(t)
	payload := StructuredJSONConfig{}
	payload.App.TokenIssuer = "json-issuer"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder().
		withDefaults().
		withFlags([]string{"-c", path}).
		withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "json-issuer", b.configs[1].App.TokenIssuer)
	assert.Equal(t, path, b.configs[2].JSONFilePath)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.TokenIssuer = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/first.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[0].App.TokenIssuer)
}
