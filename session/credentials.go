package session

import (
	"crypto/subtle"

	"github.com/rpupo63/portfolio-site/errs"
)

// Credentials is the single shared admin login.
type Credentials struct {
	Username string
	Password string
}

// Check compares both values exactly. An unconfigured credential never matches.
func (c Credentials) Check(username, password string) error {
	if c.Username == "" || c.Password == "" {
		return errs.NewAuthError()
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(c.Password)) == 1
	if !userOK || !passOK {
		return errs.NewAuthError()
	}
	return nil
}
