// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// StoredSession is a persisted authentication session. The token is kept
// sealed; only the client process holding the seal key can recover it.
type StoredSession struct {
	// Username the token was issued for. Primary key of the local store.
	Username string

	// SealedToken is the encrypted session token (nonce || ciphertext).
	SealedToken []byte

	// Salt is the Argon2id salt used to derive the sealing key.
	Salt []byte

	// AccountURL is the default account resolved when the token was issued.
	AccountURL string

	CreatedAt time.Time
	UpdatedAt time.Time
}
