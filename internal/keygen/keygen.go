// Package keygen derives and verifies SuperCut license keys. Keys are
// deterministic for a licensee email, so support can regenerate a lost key
// from the email alone.
package keygen

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base32"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProductCode identifies the licensed product inside the key derivation.
const ProductCode = "SUPERCUT-1"

const (
	groupLen   = 5
	groupCount = 5
)

// ErrInvalidEmail rejects licensee addresses that cannot hold a key.
var ErrInvalidEmail = errors.New("licensee email is not valid")

// ErrKeyMismatch is returned by Verify when the key does not belong to the
// email.
var ErrKeyMismatch = errors.New("license key does not match this email")

// keyEncoding is unpadded base32; keys stay in A-Z2-7 so they survive
// retyping from a phone screen.
var keyEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Generator derives license keys with a product secret.
type Generator struct {
	secret []byte
}

// NewGenerator creates a generator around the given signing secret.
func NewGenerator(secret string) *Generator {
	return &Generator{secret: []byte(secret)}
}

// NormalizeEmail lowercases and trims an address the way key derivation
// sees it, so "  Alice@Example.COM " and "alice@example.com" license the
// same person.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 || strings.Contains(email[at+1:], "@") {
		return "", fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return email, nil
}

// Generate derives the license key for a licensee email, formatted as five
// dash-separated groups of five base32 characters.
func (g *Generator) Generate(email string) (string, error) {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return "", err
	}

	mac := hmac.New(sha256.New, g.secret)
	mac.Write([]byte(ProductCode))
	mac.Write([]byte{0})
	mac.Write([]byte(normalized))

	encoded := keyEncoding.EncodeToString(mac.Sum(nil))

	groups := make([]string, groupCount)
	for i := range groups {
		groups[i] = encoded[i*groupLen : (i+1)*groupLen]
	}
	return strings.Join(groups, "-"), nil
}

// Verify checks a key against an email. Key comparison ignores case,
// spacing and dashes, so a retyped key still verifies.
func (g *Generator) Verify(email, key string) error {
	expected, err := g.Generate(email)
	if err != nil {
		return err
	}

	if canonicalKey(key) != canonicalKey(expected) {
		return ErrKeyMismatch
	}
	return nil
}

func canonicalKey(key string) string {
	key = strings.ToUpper(key)
	key = strings.ReplaceAll(key, "-", "")
	key = strings.ReplaceAll(key, " ", "")
	return key
}

// License is an issued key with its audit fields, shown and copied by the
// keygen window.
type License struct {
	Serial   string    `json:"serial"`
	Email    string    `json:"email"`
	Key      string    `json:"key"`
	IssuedAt time.Time `json:"issued_at"`
}

// Issue generates the key for an email and wraps it in a uuid-stamped
// issuance record.
func (g *Generator) Issue(email string) (License, error) {
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return License{}, err
	}

	key, err := g.Generate(normalized)
	if err != nil {
		return License{}, err
	}

	return License{
		Serial:   uuid.NewString(),
		Email:    normalized,
		Key:      key,
		IssuedAt: time.Now().UTC(),
	}, nil
}

// String formats the record the way it is copied to the clipboard.
func (l License) String() string {
	return fmt.Sprintf("email: %s\nkey: %s\nserial: %s", l.Email, l.Key, l.Serial)
}
