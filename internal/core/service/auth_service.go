package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bookstore/identity-service/internal/core/domain"
	"github.com/bookstore/identity-service/internal/core/ports"
)

// EventSink accepts authentication events for asynchronous, best-effort
// delivery. Enqueue must never block the caller beyond buffer capacity.
type EventSink interface {
	Enqueue(event domain.AuthEvent)
}

// AuthService implements registration and login.
type AuthService struct {
	users  ports.UserRepository
	roles  ports.RoleRepository
	events EventSink
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, roles ports.RoleRepository, events EventSink, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, roles: roles, events: events, log: log}
}

// Register creates a user with a hashed password and the resolved default
// role. An unrecognized requested role leaves the user with no role attached.
// The registered event is enqueued only after the store write commits.
func (s *AuthService) Register(ctx context.Context, username, email, password, role string) (*domain.User, error) {
	if username == "" || email == "" || password == "" {
		return nil, domain.ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	requested := domain.ResolveRequestedRole(role)
	if name := requested.Name(); name != "" {
		// Attach only when the role record exists; a missing bootstrap role
		// degrades to a roleless user rather than failing registration.
		if _, err := s.roles.FindByName(ctx, name); err == nil {
			user.AddRole(name)
		} else if !errors.Is(err, domain.ErrRoleNotFound) {
			return nil, err
		}
	} else {
		s.log.Warn().Str("email", email).Str("requested_role", role).Msg("unrecognized role requested, registering without role")
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.events.Enqueue(domain.AuthEvent{
		Kind:     domain.EventRegistered,
		UserID:   created.ID,
		Email:    created.Email,
		Username: created.Username,
		Time:     time.Now().UTC(),
	})

	return created, nil
}

// Login verifies credentials and records the login time. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	user.LastLogin = &now
	user.UpdatedAt = now
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.events.Enqueue(domain.AuthEvent{
		Kind:   domain.EventLoggedIn,
		UserID: user.ID,
		Email:  user.Email,
		Time:   now,
	})

	return user, nil
}
