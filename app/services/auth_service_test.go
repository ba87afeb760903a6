package services

import (
	"errors"
	"testing"

	"RestoPos/app/models"
)

func TestSelectWaiter(t *testing.T) {
	env := newTestEnv(t)

	waiter, err := env.auth.SelectWaiter("1", "1111")
	if err != nil {
		t.Fatalf("select waiter: %v", err)
	}
	if waiter.Name != "Nabil" || waiter.Role != models.RoleManager {
		t.Fatalf("unexpected waiter %+v", waiter)
	}

	if _, err := env.auth.SelectWaiter("1", "9999"); !errors.Is(err, ErrAuth) {
		t.Fatalf("expected ErrAuth for wrong PIN, got %v", err)
	}
	if _, err := env.auth.SelectWaiter("99", "1111"); !errors.Is(err, ErrReference) {
		t.Fatalf("expected ErrReference for unknown waiter, got %v", err)
	}
}

func TestAuthorizeOverride(t *testing.T) {
	env := newTestEnv(t)

	role, err := env.auth.AuthorizeOverride("4714")
	if err != nil {
		t.Fatalf("authorize override: %v", err)
	}
	if role != models.RoleAdmin {
		t.Fatalf("expected ADMIN, got %s", role)
	}

	role, err = env.auth.AuthorizeOverride("0000")
	if err != nil {
		t.Fatalf("authorize override: %v", err)
	}
	if role != models.RoleManager {
		t.Fatalf("expected MANAGER, got %s", role)
	}

	if _, err := env.auth.AuthorizeOverride("1234"); !errors.Is(err, ErrAuth) {
		t.Fatalf("expected ErrAuth, got %v", err)
	}
}
