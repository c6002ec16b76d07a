package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns passwords into salted one-way hashes and checks
// candidates against them. It knows nothing about users or storage.
type PasswordHasher interface {
	// Hash returns a salted hash of password suitable for storage.
	Hash(password string) (string, error)

	// Compare returns nil when password matches hash, ErrPasswordMismatch
	// when it does not, and another error when hash is malformed.
	Compare(hash, password string) error
}
