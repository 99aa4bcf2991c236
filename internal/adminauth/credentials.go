// Package adminauth hashes and verifies the operator credentials loaded
// from ADMIN_CREDENTIALS, per spec.md §4.2.3/§6.
package adminauth

import (
	"golang.org/x/crypto/bcrypt"
)

// Store is a username -> bcrypt hash credential table, built once at
// startup from config.AdminCredentials and never mutated afterward.
type Store struct {
	hashes map[string][]byte
}

// NewStore hashes every plaintext password in creds at load time, matching
// the teacher's pattern of hashing once and comparing on every login.
func NewStore(creds map[string]string) (*Store, error) {
	hashes := make(map[string][]byte, len(creds))
	for user, pass := range creds {
		hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashes[user] = hash
	}
	return &Store{hashes: hashes}, nil
}

// Verify reports whether username/password match a stored credential.
// A missing username still runs bcrypt.CompareHashAndPassword against a
// dummy hash, so that the time taken does not reveal whether the username
// exists.
func (s *Store) Verify(username, password string) bool {
	hash, ok := s.hashes[username]
	if !ok {
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}

var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("no-such-user"), bcrypt.DefaultCost)
