package utils

import (
	"errors"

	"github.com/matthewhartstonge/argon2"
)

// passwordConfig is a variable so tests can trade hash strength for speed.
var passwordConfig = argon2.DefaultConfig()

var ErrEmptyPassword = errors.New("password must not be empty")

func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	encoded, err := passwordConfig.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// VerifyPassword reports a mismatch, not an error, for a malformed stored hash.
func VerifyPassword(encodedHash, password string) bool {
	if encodedHash == "" {
		return false
	}
	ok, err := argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
	return err == nil && ok
}
