package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"socialnet-backend/internal/domains/user/model"
)

type fakeRepository struct {
	users     []model.User
	createErr error
}

func (f *fakeRepository) List(_ context.Context) ([]model.User, error) {
	return f.users, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (f *fakeRepository) Create(_ context.Context, user *model.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeRepository) Update(_ context.Context, user *model.User) error {
	for i := range f.users {
		if f.users[i].ID == user.ID {
			f.users[i] = *user
			return nil
		}
	}
	return model.ErrUserNotFound
}

func (f *fakeRepository) Delete(_ context.Context, id uuid.UUID) error {
	for i := range f.users {
		if f.users[i].ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return model.ErrUserNotFound
}

func validCreateRequest() model.CreateUserRequest {
	return model.CreateUserRequest{
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "s3cret-pass",
		FirstName: "Alice",
		LastName:  "Nguyen",
	}
}

func TestCreate_HashesPassword(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewUserService(repo)

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	require.Len(t, repo.users, 1)
	stored := repo.users[0]
	assert.NotEqual(t, "s3cret-pass", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret-pass")))
	assert.Equal(t, "alice", resp.Username)
	assert.NotEqual(t, uuid.Nil, resp.ID)
}

func TestCreate_ValidationFailures(t *testing.T) {
	svc := NewUserService(&fakeRepository{})

	tests := []struct {
		name   string
		mutate func(*model.CreateUserRequest)
	}{
		{"missing username", func(r *model.CreateUserRequest) { r.Username = "" }},
		{"short username", func(r *model.CreateUserRequest) { r.Username = "ab" }},
		{"malformed email", func(r *model.CreateUserRequest) { r.Email = "not-an-email" }},
		{"short password", func(r *model.CreateUserRequest) { r.Password = "short" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)

			_, err := svc.Create(context.Background(), req)
			require.Error(t, err)
		})
	}
}

func TestCreate_DuplicateUsername(t *testing.T) {
	repo := &fakeRepository{createErr: model.ErrUsernameTaken}
	svc := NewUserService(repo)

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, model.ErrUsernameTaken)
}

func TestUpdate_BlankPasswordKeepsHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("original-pass"), bcrypt.MinCost)
	require.NoError(t, err)

	existing := model.User{
		ID:        uuid.New(),
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  string(hash),
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	repo := &fakeRepository{users: []model.User{existing}}
	svc := NewUserService(repo)

	resp, err := svc.Update(context.Background(), existing.ID, model.UpdateUserRequest{
		Username: "alice2",
		Email:    "alice2@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice2", resp.Username)
	assert.Equal(t, string(hash), repo.users[0].Password)
}

func TestUpdate_NewPasswordRehashed(t *testing.T) {
	existing := model.User{
		ID:       uuid.New(),
		Username: "alice",
		Email:    "alice@example.com",
		Password: "old-hash",
	}
	repo := &fakeRepository{users: []model.User{existing}}
	svc := NewUserService(repo)

	_, err := svc.Update(context.Background(), existing.ID, model.UpdateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "brand-new-pass",
	})
	require.NoError(t, err)

	stored := repo.users[0]
	assert.NotEqual(t, "old-hash", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("brand-new-pass")))
}

func TestUpdate_UnknownUser(t *testing.T) {
	svc := NewUserService(&fakeRepository{})

	_, err := svc.Update(context.Background(), uuid.New(), model.UpdateUserRequest{
		Username: "ghost",
		Email:    "ghost@example.com",
	})
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestGetByID_OmitsPassword(t *testing.T) {
	existing := model.User{
		ID:       uuid.New(),
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hash",
	}
	svc := NewUserService(&fakeRepository{users: []model.User{existing}})

	resp, err := svc.GetByID(context.Background(), existing.ID)
	require.NoError(t, err)

	assert.Equal(t, existing.Username, resp.Username)
	assert.Equal(t, existing.Email, resp.Email)
}

func TestDelete(t *testing.T) {
	existing := model.User{ID: uuid.New(), Username: "alice"}
	repo := &fakeRepository{users: []model.User{existing}}
	svc := NewUserService(repo)

	require.NoError(t, svc.Delete(context.Background(), existing.ID))
	assert.ErrorIs(t, svc.Delete(context.Background(), existing.ID), model.ErrUserNotFound)
}
