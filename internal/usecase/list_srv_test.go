package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/Tastrnet/mainversion-sub000/internal/data/entity"
	"github.com/Tastrnet/mainversion-sub000/internal/data/repository"
	"github.com/Tastrnet/mainversion-sub000/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type listFixture struct {
	service     ListService
	lists       *fakeListRepo
	entries     *fakeListRestaurantRepo
	likes       *fakeListLikeRepo
	activities  *fakeActivityRepo
	restaurants *fakeRestaurantRepo
}

func newListFixture() *listFixture {
	lists := &fakeListRepo{byID: map[uuid.UUID]*entity.List{}}
	entries := &fakeListRestaurantRepo{}
	likes := &fakeListLikeRepo{likes: map[string]struct{}{}}
	activities := &fakeActivityRepo{}
	restaurants := &fakeRestaurantRepo{byID: map[uuid.UUID]*entity.Restaurant{}}

	repo := &repository.Repository{
		List:           lists,
		ListRestaurant: entries,
		ListLike:       likes,
		Activity:       activities,
		Restaurant:     restaurants,
	}

	return &listFixture{
		service:     NewListService(repo, zap.NewNop()),
		lists:       lists,
		entries:     entries,
		likes:       likes,
		activities:  activities,
		restaurants: restaurants,
	}
}

func (f *listFixture) addRestaurant(name string) *entity.Restaurant {
	restaurant := testRestaurant(name, 52.52, 13.405)
	f.restaurants.byID[restaurant.ID] = restaurant
	return restaurant
}

func (f *listFixture) addList(userID uuid.UUID, name string, wantToTry bool) *entity.List {
	list := &entity.List{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		UserID:       userID,
		Name:         name,
		IsWantToTry:  wantToTry,
	}
	f.lists.byID[list.ID] = list
	return list
}

func TestAddRestaurantAssignsSequentialPositions(t *testing.T) {
	f := newListFixture()
	owner := uuid.New()
	list := f.addList(owner, "Date night", false)

	first := f.addRestaurant("First")
	second := f.addRestaurant("Second")

	ctx := context.Background()
	require.NoError(t, f.service.AddRestaurant(ctx, list.ID.String(), owner.String(),
		&request.AddListEntryRequest{RestaurantID: first.ID.String()}))
	require.NoError(t, f.service.AddRestaurant(ctx, list.ID.String(), owner.String(),
		&request.AddListEntryRequest{RestaurantID: second.ID.String()}))

	require.Len(t, f.entries.entries, 2)
	assert.Equal(t, 1, f.entries.entries[0].Position)
	assert.Equal(t, 2, f.entries.entries[1].Position)
}

func TestAddRestaurantRejectsDuplicate(t *testing.T) {
	f := newListFixture()
	owner := uuid.New()
	list := f.addList(owner, "Favorites", false)
	restaurant := f.addRestaurant("Only Once")

	ctx := context.Background()
	req := &request.AddListEntryRequest{RestaurantID: restaurant.ID.String()}

	require.NoError(t, f.service.AddRestaurant(ctx, list.ID.String(), owner.String(), req))

	err := f.service.AddRestaurant(ctx, list.ID.String(), owner.String(), req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already in list")
	assert.Len(t, f.entries.entries, 1)
}

func TestAddRestaurantRequiresOwnership(t *testing.T) {
	f := newListFixture()
	owner := uuid.New()
	stranger := uuid.New()
	list := f.addList(owner, "Private picks", false)
	restaurant := f.addRestaurant("Bistro")

	err := f.service.AddRestaurant(context.Background(), list.ID.String(), stranger.String(),
		&request.AddListEntryRequest{RestaurantID: restaurant.ID.String()})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unauthorized")
}

func TestSaveToWantToTryCreatesListOnce(t *testing.T) {
	f := newListFixture()
	user := uuid.New()
	first := f.addRestaurant("First")
	second := f.addRestaurant("Second")

	ctx := context.Background()
	require.NoError(t, f.service.SaveToWantToTry(ctx, user.String(), first.ID.String()))
	require.NoError(t, f.service.SaveToWantToTry(ctx, user.String(), second.ID.String()))

	wantToTryLists := 0
	for _, list := range f.lists.byID {
		if list.IsWantToTry {
			wantToTryLists++
			assert.Equal(t, entity.WantToTryName, list.Name)
		}
	}
	assert.Equal(t, 1, wantToTryLists)
	assert.Len(t, f.entries.entries, 2)
}

func TestCreateListRejectsReservedName(t *testing.T) {
	f := newListFixture()

	_, err := f.service.CreateList(context.Background(), uuid.New().String(),
		&request.CreateListRequest{Name: entity.WantToTryName})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reserved")
}

func TestWantToTryCannotBeRenamedOrDeleted(t *testing.T) {
	f := newListFixture()
	owner := uuid.New()
	list := f.addList(owner, entity.WantToTryName, true)

	ctx := context.Background()
	newName := "My saves"

	_, err := f.service.UpdateList(ctx, list.ID.String(), owner.String(),
		&request.UpdateListRequest{Name: &newName})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be renamed")

	err = f.service.DeleteList(ctx, list.ID.String(), owner.String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be deleted")
}

func TestCreateListRecordsActivity(t *testing.T) {
	f := newListFixture()
	owner := uuid.New()

	list, err := f.service.CreateList(context.Background(), owner.String(),
		&request.CreateListRequest{Name: "Brunch spots"})

	require.NoError(t, err)
	require.Len(t, f.activities.created, 1)
	assert.Equal(t, entity.ActivityListCreated, f.activities.created[0].Type)
	assert.Equal(t, list.ID, f.activities.created[0].ListID.String())
}

func TestLikeListIsIdempotent(t *testing.T) {
	f := newListFixture()
	owner := uuid.New()
	liker := uuid.New()
	list := f.addList(owner, "Hidden gems", false)

	ctx := context.Background()
	require.NoError(t, f.service.LikeList(ctx, list.ID.String(), liker.String()))
	require.NoError(t, f.service.LikeList(ctx, list.ID.String(), liker.String()))

	count, _ := f.likes.CountByListID(ctx, list.ID)
	assert.Equal(t, int64(1), count)

	likeActivities := 0
	for _, activity := range f.activities.created {
		if activity.Type == entity.ActivityListLiked {
			likeActivities++
		}
	}
	assert.Equal(t, 1, likeActivities)
}

func TestLikeOwnListRejected(t *testing.T) {
	f := newListFixture()
	owner := uuid.New()
	list := f.addList(owner, "Self promo", false)

	err := f.service.LikeList(context.Background(), list.ID.String(), owner.String())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot like your own list")
}
