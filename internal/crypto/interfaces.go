// Package crypto seals session tokens for storage at rest. A key-encryption
// key is derived from a passphrase with Argon2id and the token is encrypted
// with AES-256-GCM.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/token_sealer_mock.go -package=mock

// TokenSealer encrypts and decrypts session tokens.
//
// Sealing scheme:
//
//	Salt   = random 16 bytes
//	KEK    = Argon2id(passphrase, salt)
//	Sealed = nonce || AES-GCM(KEK, token, aad = username)
type TokenSealer interface {
	// Seal encrypts token for username with a key derived from passphrase.
	// It returns the sealed blob and the fresh salt; both must be stored to
	// open the token later.
	Seal(token, username, passphrase string) (sealed, salt []byte, err error)

	// Open reverses Seal. It fails with ErrOpen when the passphrase, the
	// username or the blob does not match.
	Open(sealed, salt []byte, username, passphrase string) (string, error)
}
