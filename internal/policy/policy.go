// SPDX-License-Identifier: Apache-2.0

// Package policy implements the access-control decision function of the
// notekeeper server. It is pure: no I/O, no store lookups, no clock — every
// decision is a function of the actor's identity, the action, and the
// target's owner. This keeps the rules independently testable and lets both
// HTTP middleware and services share one source of truth.
//
// Existence checks are deliberately outside this package: a missing resource
// is reported as not-found to any authenticated caller before ownership is
// evaluated, so only ownership (not existence) is protected by these rules.
package policy

import "github.com/notekeeper/notekeeper/models"

// Action enumerates the operations subject to access control.
type Action int

const (
	// ActionListAllUsers lists every account. Admin only.
	ActionListAllUsers Action = iota

	// ActionReadCollection lists notes. Allowed for any authenticated
	// actor; the result set is scoped by role at the store level (admins
	// see all notes, users see only their own).
	ActionReadCollection

	// ActionReadItem reads a single note.
	ActionReadItem

	// ActionCreate creates a note. Allowed for any authenticated actor;
	// the resource owner is forced to the actor regardless of the request
	// payload.
	ActionCreate

	// ActionUpdate mutates a single note.
	ActionUpdate

	// ActionDelete removes a single note.
	ActionDelete
)

// Deny reasons surfaced to clients in 403 responses.
const (
	ReasonAdminRequired = "Access denied. Admin privileges required."
	ReasonAccessDenied  = "Access denied"
)

// Decision is the outcome of an access-control evaluation. When Allowed is
// false, Reason carries a message suitable for a 403 response body.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Evaluate applies the role and ownership rules, in order:
//
//  1. ActionListAllUsers: allowed iff the actor is an admin.
//  2. ActionReadCollection: always allowed (scoping happens in the store).
//  3. ActionReadItem / ActionUpdate / ActionDelete: allowed iff the actor
//     owns the target or is an admin.
//  4. ActionCreate: always allowed.
//
// ownerID identifies the owner of the target resource; it is ignored for
// collection-level actions and for ActionCreate.
func Evaluate(action Action, actor models.AuthUser, ownerID int64) Decision {
	switch action {
	case ActionListAllUsers:
		if actor.Role == models.RoleAdmin {
			return allow()
		}
		return deny(ReasonAdminRequired)

	case ActionReadCollection, ActionCreate:
		return allow()

	case ActionReadItem, ActionUpdate, ActionDelete:
		if actor.ID == ownerID || actor.Role == models.RoleAdmin {
			return allow()
		}
		return deny(ReasonAccessDenied)
	}

	return deny(ReasonAccessDenied)
}
