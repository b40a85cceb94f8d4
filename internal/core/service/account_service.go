package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/devportfolio/portfolio-api/internal/core/domain"
	"github.com/devportfolio/portfolio-api/internal/core/ports"
	"github.com/devportfolio/portfolio-api/internal/core/token"
)

// AccountService implements signup, login, profile edit, and logout.
type AccountService struct {
	users    ports.UserRepository
	issuer   *token.Issuer
	registry ports.RevocationRegistry
	clock    ports.Clock
	log      zerolog.Logger
}

func NewAccountService(
	users ports.UserRepository,
	issuer *token.Issuer,
	registry ports.RevocationRegistry,
	clock ports.Clock,
	log zerolog.Logger,
) *AccountService {
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}
	return &AccountService{users: users, issuer: issuer, registry: registry, clock: clock, log: log}
}

// Signup registers a new account. Email uniqueness is enforced by the store's
// unique index, so concurrent signups with the same email cannot race past a
// read check.
func (s *AccountService) Signup(ctx context.Context, input ports.SignupInput) (*ports.AccountView, error) {
	if input.Email == "" {
		return nil, domain.NewValidationError("email", "is required")
	}
	if input.Password == "" {
		return nil, domain.NewValidationError("password", "is required")
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("account created")
	return accountView(created), nil
}

// Login verifies credentials and issues an access token bound to the account
// id. A wrong password surfaces domain.ErrInvalidCredentials, an unknown email
// domain.ErrUserNotFound.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, *ports.AccountView, error) {
	if email == "" || password == "" {
		return "", nil, domain.NewValidationError("credentials", "email and password are required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if !VerifyPassword(user.PasswordHash, password) {
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, _, err := s.issuer.Issue(user.ID)
	if err != nil {
		return "", nil, err
	}

	now := s.clock()
	user.LastLogin = &now
	user.UpdatedAt = now
	if err := s.users.Update(ctx, user); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to stamp last login")
	}

	s.log.Info().Str("user_id", user.ID).Msg("login succeeded")
	return signed, accountView(user), nil
}

// Edit applies the allow-listed field changes to an account. A new password is
// re-hashed; a new name is stored verbatim when non-empty. Validation completes
// before any write, keeping the update all-or-nothing.
func (s *AccountService) Edit(ctx context.Context, accountID string, input ports.EditAccountInput) (*ports.AccountView, error) {
	user, err := s.users.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if input.Password != nil {
		if *input.Password == "" {
			return nil, domain.NewValidationError("password", "must not be empty")
		}
	}
	if input.Name != nil && *input.Name == "" {
		return nil, domain.NewValidationError("name", "must not be empty")
	}

	if input.Password != nil {
		hash, err := HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	user.UpdatedAt = s.clock()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("account updated")
	return accountView(user), nil
}

// Logout revokes the token's jti. Revoking the same jti twice is a no-op.
func (s *AccountService) Logout(ctx context.Context, jti string) error {
	if err := s.registry.Revoke(ctx, jti); err != nil {
		return err
	}
	s.log.Info().Str("jti", jti).Msg("token revoked")
	return nil
}

// ListAccounts returns the public projection of every account.
func (s *AccountService) ListAccounts(ctx context.Context) ([]ports.AccountView, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]ports.AccountView, 0, len(users))
	for _, u := range users {
		views = append(views, *accountView(u))
	}
	return views, nil
}

func accountView(u *domain.User) *ports.AccountView {
	return &ports.AccountView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Active:    u.Active,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}
