package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/MTrazona/aurum-platform-admin-sub000/internal/config"
	"github.com/MTrazona/aurum-platform-admin-sub000/internal/model"
)

type fakeUserRepo struct {
	byEmail    map[string]*model.User
	byUsername map[string]*model.User
	byID       map[string]*model.User
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	r := &fakeUserRepo{
		byEmail:    map[string]*model.User{},
		byUsername: map[string]*model.User{},
		byID:       map[string]*model.User{},
	}
	for _, u := range users {
		r.put(u)
	}
	return r
}

func (r *fakeUserRepo) put(u *model.User) {
	r.byEmail[u.Email] = u
	r.byUsername[u.Username] = u
	r.byID[u.ID.String()] = u
}

func (r *fakeUserRepo) Create(ctx context.Context, user *model.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.put(user)
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if u, ok := r.byID[id]; ok {
		return u, nil
	}
	return nil, errors.New("record not found")
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, errors.New("record not found")
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if u, ok := r.byUsername[username]; ok {
		return u, nil
	}
	return nil, errors.New("record not found")
}

func (r *fakeUserRepo) List(ctx context.Context, page, limit int) ([]model.User, int64, error) {
	var users []model.User
	for _, u := range r.byID {
		users = append(users, *u)
	}
	return users, int64(len(users)), nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *model.User) error {
	r.put(user)
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if u, ok := r.byID[id]; ok {
		delete(r.byID, id)
		delete(r.byEmail, u.Email)
		delete(r.byUsername, u.Username)
		return nil
	}
	return errors.New("record not found")
}

type fakeTokenRepo struct {
	byToken map[string]*model.RefreshToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{byToken: map[string]*model.RefreshToken{}}
}

func (r *fakeTokenRepo) Create(ctx context.Context, token *model.RefreshToken) error {
	r.byToken[token.Token] = token
	return nil
}

func (r *fakeTokenRepo) GetByToken(ctx context.Context, token string) (*model.RefreshToken, error) {
	if t, ok := r.byToken[token]; ok {
		return t, nil
	}
	return nil, errors.New("record not found")
}

func (r *fakeTokenRepo) DeleteByToken(ctx context.Context, token string) error {
	delete(r.byToken, token)
	return nil
}

func (r *fakeTokenRepo) DeleteForUser(ctx context.Context, userID uuid.UUID) error {
	for k, t := range r.byToken {
		if t.UserID == userID {
			delete(r.byToken, k)
		}
	}
	return nil
}

func (r *fakeTokenRepo) DeleteExpired(ctx context.Context) error {
	now := time.Now()
	for k, t := range r.byToken {
		if now.After(t.ExpiresAt) {
			delete(r.byToken, k)
		}
	}
	return nil
}

type passthroughTxm struct{}

func (passthroughTxm) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

func newTestUserService(t *testing.T, users ...*model.User) (UserService, *fakeTokenRepo) {
	t.Helper()
	tokens := newFakeTokenRepo()
	cfg := &config.Config{JWTSecret: "test-secret"}
	return NewUserService(newFakeUserRepo(users...), tokens, passthroughTxm{}, cfg), tokens
}

func staffUser(t *testing.T, role string) *model.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	return &model.User{
		ID:       uuid.New(),
		Username: "alice",
		Email:    "alice@example.com",
		Password: string(hashed),
		Role:     role,
	}
}

func TestCreateUserValidation(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Username: "bob", Email: "bob@example.com", Password: "secret1", Role: "superuser",
	})
	require.Error(t, err)

	_, err = svc.CreateUser(context.Background(), CreateUserRequest{
		Username: "bob", Email: "not-an-email", Password: "secret1", Role: "admin",
	})
	require.Error(t, err)

	resp, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Username: "bob", Email: "bob@example.com", Password: "secret1", Role: "reviewer",
	})
	require.NoError(t, err)
	assert.Equal(t, "reviewer", resp.Role)

	// Duplicate username rejected.
	_, err = svc.CreateUser(context.Background(), CreateUserRequest{
		Username: "bob", Email: "bob2@example.com", Password: "secret1", Role: "reviewer",
	})
	require.Error(t, err)
}

func TestLoginIssuesSignedTokenPair(t *testing.T) {
	user := staffUser(t, "admin")
	svc, tokens := newTestUserService(t, user)

	_, err := svc.Login(context.Background(), LoginUserRequest{Email: "alice@example.com", Password: "wrong"})
	require.Error(t, err)

	pair, err := svc.Login(context.Background(), LoginUserRequest{Email: "alice@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	// The access token carries the identity claims the middleware reads.
	parsed, err := jwt.Parse(pair.AccessToken, func(tok *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, user.ID.String(), claims["sub"])
	assert.Equal(t, "admin", claims["role"])

	// The refresh token is persisted for later rotation.
	_, err = tokens.GetByToken(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
}

func TestRefreshRotatesToken(t *testing.T) {
	user := staffUser(t, "supervisor")
	svc, tokens := newTestUserService(t, user)

	pair, err := svc.Login(context.Background(), LoginUserRequest{Email: "alice@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	rotated, err := svc.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, rotated.RefreshToken)

	// The old token is revoked the moment the rotation lands.
	_, err = tokens.GetByToken(context.Background(), pair.RefreshToken)
	require.Error(t, err)
	_, err = svc.Refresh(context.Background(), pair.RefreshToken)
	require.Error(t, err)
}

func TestRefreshRejectsExpiredToken(t *testing.T) {
	user := staffUser(t, "reviewer")
	svc, tokens := newTestUserService(t, user)

	expired := &model.RefreshToken{
		UserID:    user.ID,
		Token:     "stale-token",
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, tokens.Create(context.Background(), expired))

	_, err := svc.Refresh(context.Background(), "stale-token")
	require.Error(t, err)

	// The expired row is cleaned up on rejection.
	_, err = tokens.GetByToken(context.Background(), "stale-token")
	require.Error(t, err)
}

func TestLogoutRevokesToken(t *testing.T) {
	user := staffUser(t, "admin")
	svc, tokens := newTestUserService(t, user)

	pair, err := svc.Login(context.Background(), LoginUserRequest{Email: "alice@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), pair.RefreshToken))
	_, err = tokens.GetByToken(context.Background(), pair.RefreshToken)
	require.Error(t, err)
}

func TestDeleteUserRevokesSessions(t *testing.T) {
	user := staffUser(t, "reviewer")
	svc, tokens := newTestUserService(t, user)

	pair, err := svc.Login(context.Background(), LoginUserRequest{Email: "alice@example.com", Password: "correct-horse"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(context.Background(), user.ID.String()))
	_, err = tokens.GetByToken(context.Background(), pair.RefreshToken)
	require.Error(t, err)
	_, err = svc.GetUserByID(context.Background(), user.ID.String())
	require.Error(t, err)
}
