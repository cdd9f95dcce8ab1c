// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "slices"

// AuthorityUser is granted to every identity resolved from the user store.
const AuthorityUser = "ROLE_USER"

// Identity is the authenticated principal attached to a request.
// It is a plain value: authorization decisions are made against the
// Authorities capability set, not against a type hierarchy.
type Identity struct {
	UserID      int64    `json:"id"`
	Username    string   `json:"username"`
	Authorities []string `json:"authorities"`
}

// NewIdentity builds the identity of a stored user with the default
// authority set.
func NewIdentity(user User) Identity {
	return Identity{
		UserID:      user.UserID,
		Username:    user.Username,
		Authorities: []string{AuthorityUser},
	}
}

// HasAuthority reports whether the identity was granted authority.
func (i Identity) HasAuthority(authority string) bool {
	return slices.Contains(i.Authorities, authority)
}
