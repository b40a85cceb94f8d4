package ports

import (
	"context"
	"time"
)

// SignupInput carries the fields accepted at registration.
type SignupInput struct {
	Email    string
	Password string
	Name     string
}

// EditAccountInput lists the only fields an account may change after creation.
// Nil means "not supplied"; anything outside this structure is rejected at the
// boundary before the service runs.
type EditAccountInput struct {
	Name     *string
	Password *string
}

// AccountView is the public projection of an account. It never carries the
// password hash.
type AccountView struct {
	ID        string     `json:"id"`
	Name      string     `json:"name,omitempty"`
	Email     string     `json:"email"`
	Active    bool       `json:"active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// AccountService defines the authentication and account-management use cases.
type AccountService interface {
	Signup(ctx context.Context, input SignupInput) (*AccountView, error)
	// Login returns a signed access token bound to the account id.
	Login(ctx context.Context, email, password string) (string, *AccountView, error)
	Edit(ctx context.Context, accountID string, input EditAccountInput) (*AccountView, error)
	// Logout revokes the token identified by jti. Idempotent.
	Logout(ctx context.Context, jti string) error
	ListAccounts(ctx context.Context) ([]AccountView, error)
}
