package utils

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// PasswordScheme controls how account passwords are stored and compared.
type PasswordScheme interface {
	Encode(password string) (string, error)
	Matches(password, stored string) bool
}

// PlainTextPasswords stores passwords verbatim and compares them exactly.
// This is the default and keeps the stored value identical to what the client
// sent. It is not safe for a real deployment.
type PlainTextPasswords struct{}

func (PlainTextPasswords) Encode(password string) (string, error) {
	return password, nil
}

func (PlainTextPasswords) Matches(password, stored string) bool {
	return password == stored
}

// BcryptPasswords hashes passwords with bcrypt.
type BcryptPasswords struct {
	Cost int
}

// Encode hashes a password using bcrypt
func (b BcryptPasswords) Encode(password string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// Matches checks if a password matches a hash
func (BcryptPasswords) Matches(password, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

// ParsePasswordScheme maps a configuration value to a PasswordScheme.
func ParsePasswordScheme(name string) (PasswordScheme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "plain":
		return PlainTextPasswords{}, nil
	case "bcrypt":
		return BcryptPasswords{}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", name)
	}
}
