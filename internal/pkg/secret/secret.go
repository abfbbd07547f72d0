package secret

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed = errors.New("key hashing failed")
	ErrMismatch      = errors.New("key does not match")
	ErrEmptyKey      = errors.New("empty key")
)

const DefaultCost = bcrypt.DefaultCost

// HashKey produces the value stored in OPS_API_KEY_HASH.
func HashKey(key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(key), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func CompareKey(hashedKey, key string) error {
	if hashedKey == "" || key == "" {
		return ErrEmptyKey
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedKey), []byte(key))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return err
	}

	return nil
}
