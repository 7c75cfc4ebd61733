package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/Tastrnet/mainversion-sub000/internal/data/entity"
	"github.com/Tastrnet/mainversion-sub000/internal/data/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type followerFixture struct {
	service    FollowerService
	users      *fakeUserRepo
	edges      *fakeFollowerRepo
	activities *fakeActivityRepo
}

func newFollowerFixture() *followerFixture {
	users := &fakeUserRepo{byID: map[uuid.UUID]*entity.User{}}
	edges := &fakeFollowerRepo{edges: map[string]struct{}{}}
	activities := &fakeActivityRepo{}

	repo := &repository.Repository{
		User:     users,
		Follower: edges,
		Activity: activities,
	}

	return &followerFixture{
		service:    NewFollowerService(repo, fakeMedia{}, zap.NewNop()),
		users:      users,
		edges:      edges,
		activities: activities,
	}
}

func (f *followerFixture) addUser(username string) *entity.User {
	user := &entity.User{
		Base:     entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Username: username,
		IsActive: true,
	}
	f.users.byID[user.ID] = user
	return user
}

func TestFollowRecordsEdgeAndActivity(t *testing.T) {
	f := newFollowerFixture()
	alice := f.addUser("alice")
	bob := f.addUser("bob")

	require.NoError(t, f.service.Follow(context.Background(), alice.ID.String(), bob.ID.String()))

	following, _ := f.edges.IsFollowing(context.Background(), alice.ID, bob.ID)
	assert.True(t, following)

	require.Len(t, f.activities.created, 1)
	assert.Equal(t, entity.ActivityFollowedUser, f.activities.created[0].Type)
	assert.Equal(t, bob.ID, *f.activities.created[0].TargetUserID)
}

func TestFollowSelfRejected(t *testing.T) {
	f := newFollowerFixture()
	alice := f.addUser("alice")

	err := f.service.Follow(context.Background(), alice.ID.String(), alice.ID.String())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot follow yourself")
}

func TestFollowIsIdempotent(t *testing.T) {
	f := newFollowerFixture()
	alice := f.addUser("alice")
	bob := f.addUser("bob")

	ctx := context.Background()
	require.NoError(t, f.service.Follow(ctx, alice.ID.String(), bob.ID.String()))
	require.NoError(t, f.service.Follow(ctx, alice.ID.String(), bob.ID.String()))

	// Second follow must not record a duplicate activity
	assert.Len(t, f.activities.created, 1)
}

func TestFollowUnknownUser(t *testing.T) {
	f := newFollowerFixture()
	alice := f.addUser("alice")

	err := f.service.Follow(context.Background(), alice.ID.String(), uuid.New().String())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestUnfollowIsNoOpWhenNotFollowing(t *testing.T) {
	f := newFollowerFixture()
	alice := f.addUser("alice")
	bob := f.addUser("bob")

	assert.NoError(t, f.service.Unfollow(context.Background(), alice.ID.String(), bob.ID.String()))
}
