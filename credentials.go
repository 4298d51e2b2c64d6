package carbontrack

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Credential storage: PBKDF2-SHA256 with a random salt, persisted in the user
// record as "salthex$hashhex". Consumed by the presentation layer only to
// gate first access and goal setting.
const (
	credIterations = 100000
	credSaltSize   = 16
	credKeySize    = 32
)

func hashCredential(password string, salt []byte) string {
	key := pbkdf2.Key([]byte(password), salt, credIterations, credKeySize, sha256.New)
	return hex.EncodeToString(salt) + "$" + hex.EncodeToString(key)
}

// Register creates a default record for a new user with its credential set.
// It rejects empty credentials, passwords shorter than 6 characters, and
// usernames that already have a record.
func (s *Store) Register(username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("username and password cannot be empty")
	}
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters long")
	}
	if s.Exists(username) {
		return fmt.Errorf("username %q already exists", username)
	}

	salt := make([]byte, credSaltSize)
	if _, err := rand.Read(salt); err != nil {
		return fmt.Errorf("could not generate salt: %w", err)
	}

	r := NewRecord()
	r.Credential = hashCredential(password, salt)
	if err := s.Save(username, r); err != nil {
		return fmt.Errorf("could not save new user record: %w", err)
	}
	return nil
}

// Verify checks a password against the stored credential. An unknown user or
// a record without a credential verifies as false.
func (s *Store) Verify(username, password string) bool {
	if !s.Exists(username) {
		return false
	}
	cred := s.Load(username).Credential
	saltHex, wantHex, ok := strings.Cut(cred, "$")
	if !ok {
		return false
	}
	salt, err := hex.DecodeString(saltHex)
	if err != nil {
		return false
	}
	got := hashCredential(password, salt)
	return subtle.ConstantTimeCompare([]byte(got), []byte(saltHex+"$"+wantHex)) == 1
}
