package utils

import (
	"context"
	"testing"

	"github.com/notekeeper/notekeeper/models"
	"github.com/stretchr/testify/assert"
)

// TestGetAuthUserFromContext_Present verifies type-safe retrieval of the
// authenticated identity.
func TestGetAuthUserFromContext_Present(t *testing.T) {
	want := models.AuthUser{ID: 42, Role: models.RoleAdmin}
	ctx := context.WithValue(context.Background(), AuthUserCtxKey, want)

	got, ok := GetAuthUserFromContext(ctx)

	assert.True(t, ok)
	assert.Equal(t, want, got)
}

// TestGetAuthUserFromContext_Missing verifies the ok flag for empty contexts.
func TestGetAuthUserFromContext_Missing(t *testing.T) {
	_, ok := GetAuthUserFromContext(context.Background())
	assert.False(t, ok)
}

// TestGetAuthUserFromContext_WrongType verifies the ok flag when the key
// holds an unexpected type.
func TestGetAuthUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), AuthUserCtxKey, int64(42))
	_, ok := GetAuthUserFromContext(ctx)
	assert.False(t, ok)
}
