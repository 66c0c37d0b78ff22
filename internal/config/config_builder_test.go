package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validTestConfig returns a config that passes validation.
func validTestConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenSignKey:  "secret",
			TokenIssuer:   "notekeeper",
			TokenDuration: time.Hour,
			BcryptCost:    4,
		},
		Storage: Storage{DB: DB{Driver: DriverPostgres, DSN: "postgres://localhost/notes"}},
		Server:  Server{HTTPAddress: ":8080"},
	}
}

// TestBuild_MergesInPriorityOrder verifies that earlier sources win for
// non-zero fields and later sources only fill the gaps.
func TestBuild_MergesInPriorityOrder(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Auth: Auth{TokenSignKey: "from-env"}},
		&StructuredConfig{Auth: Auth{TokenSignKey: "from-flags", TokenIssuer: "issuer-from-flags"}},
		validTestConfig(),
	)

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Auth.TokenSignKey)
	assert.Equal(t, "issuer-from-flags", cfg.Auth.TokenIssuer)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
}

// TestBuild_DefaultsFillEmptyFields verifies that withDefaults only supplies
// values no other source has set.
func TestBuild_DefaultsFillEmptyFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Auth:    Auth{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/notes"}},
	})
	b.withDefaults()

	cfg, err := b.build()

	require.NoError(t, err)
	assert.Equal(t, "secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "notekeeper", cfg.Auth.TokenIssuer)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
}

// TestBuild_PropagatesSourceError verifies that an error recorded by a source
// stage fails the whole build.
func TestBuild_PropagatesSourceError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("boom")

	cfg, err := b.build()

	assert.Nil(t, cfg)
	require.Error(t, err)
}

// TestValidate_MissingSignKey verifies that an empty token sign key is
// rejected.
func TestValidate_MissingSignKey(t *testing.T) {
	cfg := validTestConfig()
	cfg.Auth.TokenSignKey = ""

	assert.ErrorIs(t, cfg.validate(), ErrInvalidAuthConfigs)
}

// TestValidate_MissingDSN verifies that an empty DSN is rejected.
func TestValidate_MissingDSN(t *testing.T) {
	cfg := validTestConfig()
	cfg.Storage.DB.DSN = ""

	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
}

// TestValidate_UnsupportedDriver verifies that unknown drivers are rejected.
func TestValidate_UnsupportedDriver(t *testing.T) {
	cfg := validTestConfig()
	cfg.Storage.DB.Driver = "oracle"

	assert.ErrorIs(t, cfg.validate(), ErrUnsupportedDBDriver)
}

// TestValidate_SQLiteDriverAccepted verifies the sqlite driver passes
// validation.
func TestValidate_SQLiteDriverAccepted(t *testing.T) {
	cfg := validTestConfig()
	cfg.Storage.DB.Driver = DriverSQLite
	cfg.Storage.DB.DSN = "file:notes.db"

	assert.NoError(t, cfg.validate())
}

// TestValidate_MissingHTTPAddress verifies that an empty HTTP address is
// rejected.
func TestValidate_MissingHTTPAddress(t *testing.T) {
	cfg := validTestConfig()
	cfg.Server.HTTPAddress = ""

	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
}
