package i

import "github.com/beka-birhanu/maze-solver-api/identity"

// Authenticator registers users and signs them in, returning a bearer
// token on success.
type Authenticator interface {
	Register(username, password string) error
	SignIn(username, password string) (*identity.User, string, error)
}
