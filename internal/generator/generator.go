// Package generator produces random passwords that satisfy every character
// class the scorer rewards.
package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// Character class sets. Disjoint; the specials set matches the one the
// scoring rules accept.
const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	specialChars   = "!@#$%^&*"
)

// DefaultLength is the password length used when the caller does not ask
// for a specific one.
const DefaultLength = 12

// MinLength is the shortest password that can still hold one character
// from each of the four classes.
const MinLength = 4

// ErrLengthTooShort is returned when the requested length cannot fit the
// four mandatory character classes.
var ErrLengthTooShort = errors.New("password length must be at least 4")

// Generate returns a random password of the requested length containing at
// least one uppercase letter, one lowercase letter, one digit, and one
// special character. Coverage is guaranteed by construction: one character
// is drawn from each class, the remainder from the union of all classes,
// and the result is shuffled.
func Generate(length int) (string, error) {
	if length < MinLength {
		return "", ErrLengthTooShort
	}

	password := make([]byte, 0, length)

	// One character from each required class
	for _, set := range []string{uppercaseChars, lowercaseChars, digitChars, specialChars} {
		c, err := randomChar(set)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	// Fill the rest from the union of all classes
	allChars := uppercaseChars + lowercaseChars + digitChars + specialChars
	for i := MinLength; i < length; i++ {
		c, err := randomChar(allChars)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	// Shuffle so the class-guaranteed characters are not predictably placed
	if err := shuffle(password); err != nil {
		return "", err
	}

	return string(password), nil
}

// randomChar returns one character drawn uniformly from s
func randomChar(s string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(s))))
	if err != nil {
		return 0, fmt.Errorf("failed to draw random character: %v", err)
	}
	return s[n.Int64()], nil
}

// shuffle performs a uniform Fisher-Yates shuffle of b in place
func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return fmt.Errorf("failed to shuffle password: %v", err)
		}
		j := n.Int64()
		b[i], b[j] = b[j], b[i]
	}
	return nil
}
