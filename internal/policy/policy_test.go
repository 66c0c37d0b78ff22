// SPDX-License-Identifier: Apache-2.0

package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notekeeper/notekeeper/models"
)

func TestEvaluate(t *testing.T) {
	owner := models.AuthUser{ID: 7, Role: models.RoleUser}
	stranger := models.AuthUser{ID: 8, Role: models.RoleUser}
	admin := models.AuthUser{ID: 1, Role: models.RoleAdmin}

	tests := []struct {
		name        string
		action      Action
		actor       models.AuthUser
		ownerID     int64
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "list users as admin",
			action:      ActionListAllUsers,
			actor:       admin,
			wantAllowed: true,
		},
		{
			name:       "list users as regular user",
			action:     ActionListAllUsers,
			actor:      owner,
			wantReason: ReasonAdminRequired,
		},
		{
			name:        "list notes as regular user",
			action:      ActionReadCollection,
			actor:       stranger,
			wantAllowed: true,
		},
		{
			name:        "create note as regular user",
			action:      ActionCreate,
			actor:       stranger,
			wantAllowed: true,
		},
		{
			name:        "read own note",
			action:      ActionReadItem,
			actor:       owner,
			ownerID:     owner.ID,
			wantAllowed: true,
		},
		{
			name:       "read someone else's note",
			action:     ActionReadItem,
			actor:      stranger,
			ownerID:    owner.ID,
			wantReason: ReasonAccessDenied,
		},
		{
			name:        "read someone else's note as admin",
			action:      ActionReadItem,
			actor:       admin,
			ownerID:     owner.ID,
			wantAllowed: true,
		},
		{
			name:        "update own note",
			action:      ActionUpdate,
			actor:       owner,
			ownerID:     owner.ID,
			wantAllowed: true,
		},
		{
			name:       "update someone else's note",
			action:     ActionUpdate,
			actor:      stranger,
			ownerID:    owner.ID,
			wantReason: ReasonAccessDenied,
		},
		{
			name:        "delete someone else's note as admin",
			action:      ActionDelete,
			actor:       admin,
			ownerID:     owner.ID,
			wantAllowed: true,
		},
		{
			name:       "delete someone else's note",
			action:     ActionDelete,
			actor:      stranger,
			ownerID:    owner.ID,
			wantReason: ReasonAccessDenied,
		},
		{
			name:       "unknown action denied",
			action:     Action(99),
			actor:      admin,
			wantReason: ReasonAccessDenied,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Evaluate(test.action, test.actor, test.ownerID)

			assert.Equal(t, test.wantAllowed, got.Allowed)
			assert.Equal(t, test.wantReason, got.Reason)
		})
	}
}

func TestEvaluateAdminCannotBeImpersonatedByOwnerID(t *testing.T) {
	// Owning a resource never grants admin-only actions.
	actor := models.AuthUser{ID: 42, Role: models.RoleUser}

	got := Evaluate(ActionListAllUsers, actor, actor.ID)

	assert.False(t, got.Allowed)
	assert.Equal(t, ReasonAdminRequired, got.Reason)
}
