package signup

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	DigitChars     = "0123456789"
	SymbolChars    = "^$*.[]{}()?!@#%&/,><:;|_~=+-"
)

// maxPasswordDraws bounds the redraws done to satisfy RequireEachClass.
const maxPasswordDraws = 100

// The provider insists on a password at sign up even though members only
// ever verify with emailed codes. The generated password is thrown away.
type PasswordPolicy struct {
	Length           int
	Uppercase        bool
	Lowercase        bool
	Digits           bool
	Symbols          bool
	RequireEachClass bool
}

var DefaultPasswordPolicy = PasswordPolicy{
	Length:           16,
	Uppercase:        true,
	Lowercase:        true,
	Digits:           true,
	Symbols:          true,
	RequireEachClass: true,
}

func (p PasswordPolicy) classes() []string {
	var classes []string
	if p.Uppercase {
		classes = append(classes, UppercaseChars)
	}
	if p.Lowercase {
		classes = append(classes, LowercaseChars)
	}
	if p.Digits {
		classes = append(classes, DigitChars)
	}
	if p.Symbols {
		classes = append(classes, SymbolChars)
	}
	return classes
}

// Charset is every character a generated password can contain.
func (p PasswordPolicy) Charset() string {
	return strings.Join(p.classes(), "")
}

// GeneratePassword draws policy.Length characters uniformly from the policy's
// charset using random. Pass crypto/rand.Reader outside of tests.
func GeneratePassword(random io.Reader, policy PasswordPolicy) (string, error) {
	if random == nil {
		random = rand.Reader
	}

	charset := policy.Charset()
	if charset == "" {
		return "", errors.New("password policy allows no characters")
	}
	if len(charset) > 256 {
		return "", fmt.Errorf("password charset of %d characters is too large", len(charset))
	}
	if policy.Length <= 0 {
		return "", fmt.Errorf("invalid password length %d", policy.Length)
	}
	if policy.RequireEachClass && policy.Length < len(policy.classes()) {
		return "", fmt.Errorf("password length %d cannot hold %d required character classes", policy.Length, len(policy.classes()))
	}

	for range maxPasswordDraws {
		pwd, err := drawPassword(random, charset, policy.Length)
		if err != nil {
			return "", err
		}

		if !policy.RequireEachClass || hasEveryClass(pwd, policy.classes()) {
			return pwd, nil
		}
	}

	return "", fmt.Errorf("no password with every character class after %d draws", maxPasswordDraws)
}

func drawPassword(random io.Reader, charset string, length int) (string, error) {
	var b strings.Builder
	b.Grow(length)
	for range length {
		idx, err := uniformIndex(random, len(charset))
		if err != nil {
			return "", err
		}
		b.WriteByte(charset[idx])
	}

	return b.String(), nil
}

// uniformIndex returns a value in [0, n) for n <= 256. Bytes at or above the
// largest multiple of n are rejected so every index is equally likely.
func uniformIndex(random io.Reader, n int) (int, error) {
	limit := 256 - (256 % n)

	var buf [1]byte
	for {
		_, err := io.ReadFull(random, buf[:])
		if err != nil {
			return 0, fmt.Errorf("failed to read randomness: %w", err)
		}
		if int(buf[0]) < limit {
			return int(buf[0]) % n, nil
		}
	}
}

func hasEveryClass(pwd string, classes []string) bool {
	for _, class := range classes {
		if !strings.ContainsAny(pwd, class) {
			return false
		}
	}
	return true
}
