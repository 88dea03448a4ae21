package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bookstore/identity-service/internal/core/domain"
)

func seedUser(t *testing.T, users *stubUserRepo, email string, roles ...string) *domain.User {
	t.Helper()
	created, err := users.Create(context.Background(), &domain.User{
		Username: "u",
		Email:    email,
		Roles:    roles,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return created
}

func TestRoleService_AssignRoles(t *testing.T) {
	users := newStubUserRepo()
	svc := NewRoleService(users, newStubRoleRepo(domain.RoleUser, domain.RoleAdmin))
	u := seedUser(t, users, "alice@x.com", domain.RoleUser)

	if err := svc.AssignRoles(context.Background(), u.ID, []string{domain.RoleAdmin}); err != nil {
		t.Fatalf("AssignRoles returned error: %v", err)
	}

	stored, _ := users.FindByID(context.Background(), u.ID)
	if !stored.HasRole(domain.RoleUser) || !stored.HasRole(domain.RoleAdmin) {
		t.Fatalf("unexpected roles: %v", stored.Roles)
	}
}

func TestRoleService_AssignRoles_Idempotent(t *testing.T) {
	users := newStubUserRepo()
	svc := NewRoleService(users, newStubRoleRepo(domain.RoleUser, domain.RoleAdmin))
	u := seedUser(t, users, "bob@x.com", domain.RoleUser)

	if err := svc.AssignRoles(context.Background(), u.ID, []string{domain.RoleUser, domain.RoleUser}); err != nil {
		t.Fatalf("AssignRoles returned error: %v", err)
	}

	stored, _ := users.FindByID(context.Background(), u.ID)
	if len(stored.Roles) != 1 {
		t.Fatalf("re-adding a role must be a no-op, got %v", stored.Roles)
	}
}

func TestRoleService_AssignRoles_UserNotFound(t *testing.T) {
	svc := NewRoleService(newStubUserRepo(), newStubRoleRepo(domain.RoleUser))

	if err := svc.AssignRoles(context.Background(), "missing", []string{domain.RoleUser}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestRoleService_AssignRoles_RoleNotFound_NothingPersisted(t *testing.T) {
	users := newStubUserRepo()
	svc := NewRoleService(users, newStubRoleRepo(domain.RoleUser, domain.RoleAdmin))
	u := seedUser(t, users, "carol@x.com")

	// One valid name, one missing: all-or-nothing means even the valid one
	// must not stick.
	err := svc.AssignRoles(context.Background(), u.ID, []string{domain.RoleAdmin, "AUDITOR"})
	if !errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}

	stored, _ := users.FindByID(context.Background(), u.ID)
	if len(stored.Roles) != 0 {
		t.Fatalf("partial assignment persisted: %v", stored.Roles)
	}
}

type unavailableRoleRepo struct {
	err error
}

func (r *unavailableRoleRepo) FindByName(_ context.Context, _ string) (*domain.Role, error) {
	return nil, r.err
}

func (r *unavailableRoleRepo) Create(_ context.Context, _ *domain.Role) (*domain.Role, error) {
	return nil, r.err
}

func TestRoleService_AssignRoles_StoreOutageIsNotRoleNotFound(t *testing.T) {
	users := newStubUserRepo()
	outage := errors.New("connection reset by peer")
	svc := NewRoleService(users, &unavailableRoleRepo{err: outage})
	u := seedUser(t, users, "dave@x.com")

	err := svc.AssignRoles(context.Background(), u.ID, []string{domain.RoleUser})
	if errors.Is(err, domain.ErrRoleNotFound) {
		t.Fatalf("store outage must not be reported as a missing role: %v", err)
	}
	if !errors.Is(err, outage) {
		t.Fatalf("expected the store error to propagate, got %v", err)
	}

	stored, _ := users.FindByID(context.Background(), u.ID)
	if len(stored.Roles) != 0 {
		t.Fatalf("nothing must persist on a store outage: %v", stored.Roles)
	}
}

func TestRoleService_CreateRole(t *testing.T) {
	svc := NewRoleService(newStubUserRepo(), newStubRoleRepo(domain.RoleUser))

	role, err := svc.CreateRole(context.Background(), "AUDITOR")
	if err != nil {
		t.Fatalf("CreateRole returned error: %v", err)
	}
	if role.Name != "AUDITOR" || role.ID == "" {
		t.Fatalf("unexpected role: %+v", role)
	}

	if _, err := svc.CreateRole(context.Background(), "AUDITOR"); !errors.Is(err, domain.ErrRoleExists) {
		t.Fatalf("expected ErrRoleExists, got %v", err)
	}
}
