// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role is the capability level of an actor.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleWorker Role = "worker"
)

// Actor identifies who is performing an operation. It is passed explicitly
// into every engine call instead of being read from a stored session.
type Actor struct {
	Name string `json:"name" validate:"required"`
	Role Role   `json:"role" validate:"oneof=admin worker"`
}

// IsAdmin reports whether the actor has administrator capability.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Scope returns the sync scope the actor is entitled to: everything for
// admins, only their own records for everyone else.
func (a Actor) Scope() SyncScope {
	if a.IsAdmin() {
		return ScopeAll()
	}
	return ScopeOwner(a.Name)
}
