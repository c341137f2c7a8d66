// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminSubject is the "sub" claim of every admin session token.
const AdminSubject = "admin"

// Token wraps an admin session JWT.
//
// It embeds [jwt.RegisteredClaims] so it can be passed straight to
// [jwt.ParseWithClaims]; the signed compact form is kept in SignedString.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation (header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// ExpiresIn reports how long the token stays valid counting from now.
// It returns zero for tokens without an expiry or already expired ones.
func (t *Token) ExpiresIn(now time.Time) time.Duration {
	if t.ExpiresAt == nil {
		return 0
	}

	left := t.ExpiresAt.Sub(now)
	if left < 0 {
		return 0
	}

	return left
}
