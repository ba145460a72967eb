package auth

import (
	"context"
	"errors"
	"testing"

	domerrors "github.com/DiegoRoNa/uptask-api/internal/domain/errors"
)

func TestRegisterUser(t *testing.T) {
	users := newFakeUserRepo()
	tokens := newFakeTokenRepo()
	enqueuer := &fakeEnqueuer{}
	uc := NewRegisterUser(users, tokens, fakeHasher{}, enqueuer, 0)

	result, err := uc.Execute(context.Background(), RegisterUserInput{
		Name:     "Diego",
		Email:    "diego@example.com",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if result.User.Confirmed {
		t.Error("new account must start unconfirmed")
	}
	if result.User.PasswordHash == "password123" {
		t.Error("password must be stored hashed")
	}
	if tokens.count() != 1 {
		t.Errorf("expected one confirmation token, have %d", tokens.count())
	}
	sent := enqueuer.lastSent()
	if sent == nil || sent.kind != "confirmation" || sent.email != "diego@example.com" {
		t.Errorf("confirmation email not enqueued: %+v", sent)
	}
	if sent != nil && sent.token == "" {
		t.Error("enqueued email carries no token")
	}
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	tokens := newFakeTokenRepo()
	uc := NewRegisterUser(users, tokens, fakeHasher{}, &fakeEnqueuer{}, 0)

	input := RegisterUserInput{Name: "Diego", Email: "diego@example.com", Password: "password123"}
	if _, err := uc.Execute(context.Background(), input); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	_, err := uc.Execute(context.Background(), input)
	if !errors.Is(err, domerrors.ErrUserExists) {
		t.Errorf("duplicate email: got %v, want ErrUserExists", err)
	}
}
