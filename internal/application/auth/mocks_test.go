package auth

import (
	"context"
	"sync"
	"time"

	"github.com/DiegoRoNa/uptask-api/internal/domain"
)

// In-memory fakes for the ports this package depends on.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User // keyed by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.users[user.ID.String()] = &cp
	return nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, userID domain.UserID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID.String()]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) UpdateProfile(ctx context.Context, userID domain.UserID, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[userID.String()]; ok {
		u.Name = name
		u.Email = email
	}
	return nil
}

func (r *fakeUserRepo) UpdatePassword(ctx context.Context, userID domain.UserID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[userID.String()]; ok {
		u.PasswordHash = passwordHash
	}
	return nil
}

func (r *fakeUserRepo) SetConfirmed(ctx context.Context, userID domain.UserID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[userID.String()]; ok {
		u.Confirmed = true
	}
	return nil
}

type storedToken struct {
	userID    domain.UserID
	purpose   domain.TokenPurpose
	expiresAt time.Time
}

type fakeTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]storedToken // keyed by hash
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]storedToken)}
}

func (r *fakeTokenRepo) Create(ctx context.Context, userID domain.UserID, purpose domain.TokenPurpose, tokenHash string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[tokenHash] = storedToken{userID: userID, purpose: purpose, expiresAt: expiresAt}
	return nil
}

// GetByHash mirrors storage semantics: expired rows are invisible.
func (r *fakeTokenRepo) GetByHash(ctx context.Context, tokenHash string, purpose domain.TokenPurpose) (*domain.OneTimeToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.tokens[tokenHash]
	if !ok || st.purpose != purpose || time.Now().After(st.expiresAt) {
		return nil, nil
	}
	return &domain.OneTimeToken{
		UserID:    st.userID,
		Purpose:   st.purpose,
		ExpiresAt: st.expiresAt,
	}, nil
}

func (r *fakeTokenRepo) Delete(ctx context.Context, tokenHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, tokenHash)
	return nil
}

func (r *fakeTokenRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tokens)
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Verify(password, encoded string) bool {
	return encoded == "hashed:"+password
}

type fakeIssuer struct{}

func (fakeIssuer) IssueSession(userID string, expiresInSeconds int64) (string, error) {
	return "session:" + userID, nil
}

func (fakeIssuer) ValidateSession(tokenString string) (string, error) {
	return "", nil
}

type sentEmail struct {
	kind  string // "confirmation" or "reset"
	name  string
	email string
	token string
}

type fakeEnqueuer struct {
	mu   sync.Mutex
	sent []sentEmail
}

func (q *fakeEnqueuer) EnqueueConfirmationEmail(ctx context.Context, name, email, token string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.sent = append(q.sent, sentEmail{kind: "confirmation", name: name, email: email, token: token})
	return nil
}

func (q *fakeEnqueuer) EnqueuePasswordResetEmail(ctx context.Context, name, email, token string) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.sent = append(q.sent, sentEmail{kind: "reset", name: name, email: email, token: token})
	return nil
}

func (q *fakeEnqueuer) lastSent() *sentEmail {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.sent) == 0 {
		return nil
	}
	return &q.sent[len(q.sent)-1]
}
