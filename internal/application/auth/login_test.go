package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/DiegoRoNa/uptask-api/internal/domain"
	domerrors "github.com/DiegoRoNa/uptask-api/internal/domain/errors"
)

func seedUser(t *testing.T, users *fakeUserRepo, email string, confirmed bool) *domain.User {
	t.Helper()
	user := &domain.User{
		ID:           domain.NewUserID(uuid.New()),
		Name:         "Diego",
		Email:        email,
		PasswordHash: "hashed:password123",
		Confirmed:    confirmed,
	}
	if err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func newLoginUC(users *fakeUserRepo, tokens *fakeTokenRepo, enqueuer *fakeEnqueuer) *Login {
	return NewLogin(users, tokens, fakeHasher{}, fakeIssuer{}, enqueuer, 0, 0)
}

func TestLoginSuccess(t *testing.T) {
	users := newFakeUserRepo()
	user := seedUser(t, users, "diego@example.com", true)
	uc := newLoginUC(users, newFakeTokenRepo(), &fakeEnqueuer{})

	result, err := uc.Execute(context.Background(), LoginInput{
		Email:    "diego@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.SessionToken != "session:"+user.ID.String() {
		t.Errorf("unexpected session token %q", result.SessionToken)
	}
}

func TestLoginUnknownAccount(t *testing.T) {
	uc := newLoginUC(newFakeUserRepo(), newFakeTokenRepo(), &fakeEnqueuer{})

	_, err := uc.Execute(context.Background(), LoginInput{Email: "nobody@example.com", Password: "x"})
	if !errors.Is(err, domerrors.ErrAccountNotFound) {
		t.Errorf("got %v, want ErrAccountNotFound", err)
	}
}

func TestLoginUnconfirmedReissuesToken(t *testing.T) {
	users := newFakeUserRepo()
	seedUser(t, users, "diego@example.com", false)
	tokens := newFakeTokenRepo()
	enqueuer := &fakeEnqueuer{}
	uc := newLoginUC(users, tokens, enqueuer)

	_, err := uc.Execute(context.Background(), LoginInput{
		Email:    "diego@example.com",
		Password: "password123",
	})
	if !errors.Is(err, domerrors.ErrUnconfirmed) {
		t.Fatalf("got %v, want ErrUnconfirmed", err)
	}
	if tokens.count() != 1 {
		t.Errorf("expected a fresh confirmation token, have %d", tokens.count())
	}
	sent := enqueuer.lastSent()
	if sent == nil || sent.kind != "confirmation" {
		t.Errorf("confirmation email not reissued: %+v", sent)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	users := newFakeUserRepo()
	seedUser(t, users, "diego@example.com", true)
	uc := newLoginUC(users, newFakeTokenRepo(), &fakeEnqueuer{})

	_, err := uc.Execute(context.Background(), LoginInput{
		Email:    "diego@example.com",
		Password: "not the password",
	})
	if !errors.Is(err, domerrors.ErrInvalidCredentials) {
		t.Errorf("got %v, want ErrInvalidCredentials", err)
	}
}
