package apikey

import (
	"crypto/rand"
	"encoding/base64"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("api key hashing failed")
	ErrGenerationFailed = errors.New("api key generation failed")
	ErrMismatch         = errors.New("api key mismatch")
	ErrInvalidKey       = errors.New("invalid api key")
)

const (
	DefaultCost = bcrypt.DefaultCost
	keyBytes    = 24
	prefix      = "fdy_"
)

// Generate returns a fresh plain-text key and its bcrypt hash. The plain key is
// shown to the caller once and never stored.
func Generate() (plain string, hash string, err error) {
	buf := make([]byte, keyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", ErrGenerationFailed
	}
	plain = prefix + base64.RawURLEncoding.EncodeToString(buf)

	hash, err = Hash(plain)
	if err != nil {
		return "", "", err
	}
	return plain, hash, nil
}

func Hash(key string) (string, error) {
	if key == "" {
		return "", ErrInvalidKey
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(key), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func Compare(hashedKey, key string) error {
	if hashedKey == "" || key == "" {
		return ErrInvalidKey
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
