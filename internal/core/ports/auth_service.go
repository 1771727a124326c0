package ports

import "context"

// AuthService verifies credentials and issues bearer tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (token string, err error)
}
