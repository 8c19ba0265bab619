package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialnet-backend/internal/domains/friendship/model"
)

type fakeRepository struct {
	friendships []model.Friendship
	createErr   error
}

func (f *fakeRepository) Create(_ context.Context, friendship *model.Friendship) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.friendships = append(f.friendships, *friendship)
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*model.Friendship, error) {
	for i := range f.friendships {
		if f.friendships[i].ID == id {
			fs := f.friendships[i]
			return &fs, nil
		}
	}
	return nil, model.ErrFriendshipNotFound
}

func (f *fakeRepository) UpdateStatus(_ context.Context, id uuid.UUID, status model.Status) error {
	for i := range f.friendships {
		if f.friendships[i].ID == id {
			f.friendships[i].Status = status
			return nil
		}
	}
	return model.ErrFriendshipNotFound
}

func TestSendRequest_StartsPending(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewFriendshipService(repo)

	resp, err := svc.SendRequest(context.Background(), model.FriendshipRequest{
		UserID:   uuid.New(),
		FriendID: uuid.New(),
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusPending, resp.Status)
	assert.NotEqual(t, uuid.Nil, resp.ID)
	require.Len(t, repo.friendships, 1)
	assert.Equal(t, model.StatusPending, repo.friendships[0].Status)
}

func TestSendRequest_RejectsSelf(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewFriendshipService(repo)
	userID := uuid.New()

	_, err := svc.SendRequest(context.Background(), model.FriendshipRequest{
		UserID:   userID,
		FriendID: userID,
	})

	assert.ErrorIs(t, err, model.ErrSelfFriendship)
	assert.Empty(t, repo.friendships)
}

func TestSendRequest_MissingIDs(t *testing.T) {
	tests := []struct {
		name string
		req  model.FriendshipRequest
	}{
		{"missing friendId", model.FriendshipRequest{UserID: uuid.New()}},
		{"missing userId", model.FriendshipRequest{FriendID: uuid.New()}},
		{"both missing", model.FriendshipRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			svc := NewFriendshipService(repo)

			_, err := svc.SendRequest(context.Background(), tt.req)
			require.Error(t, err)
			assert.Empty(t, repo.friendships, "zero UUID must be rejected before storage")
		})
	}
}

func TestSendRequest_DuplicatePair(t *testing.T) {
	repo := &fakeRepository{createErr: model.ErrFriendshipExists}
	svc := NewFriendshipService(repo)

	_, err := svc.SendRequest(context.Background(), model.FriendshipRequest{
		UserID:   uuid.New(),
		FriendID: uuid.New(),
	})
	assert.ErrorIs(t, err, model.ErrFriendshipExists)
}

func TestUpdateStatus_Accept(t *testing.T) {
	existing := model.Friendship{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		FriendID:  uuid.New(),
		Status:    model.StatusPending,
		CreatedAt: time.Now().UTC(),
	}
	repo := &fakeRepository{friendships: []model.Friendship{existing}}
	svc := NewFriendshipService(repo)

	resp, err := svc.UpdateStatus(context.Background(), existing.ID, model.FriendshipUpdateRequest{
		Status: model.StatusAccepted,
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusAccepted, resp.Status)
	assert.Equal(t, model.StatusAccepted, repo.friendships[0].Status)
}

func TestUpdateStatus_UnknownValue(t *testing.T) {
	svc := NewFriendshipService(&fakeRepository{})

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), model.FriendshipUpdateRequest{
		Status: "blocked",
	})
	assert.ErrorIs(t, err, model.ErrInvalidStatus)
}

func TestUpdateStatus_UnknownFriendship(t *testing.T) {
	svc := NewFriendshipService(&fakeRepository{})

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), model.FriendshipUpdateRequest{
		Status: model.StatusRejected,
	})
	assert.ErrorIs(t, err, model.ErrFriendshipNotFound)
}
