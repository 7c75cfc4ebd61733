package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tastrnet/mainversion-sub000/internal/data/entity"
	"github.com/Tastrnet/mainversion-sub000/internal/data/repository"
	"github.com/Tastrnet/mainversion-sub000/pkg/geo"

	"github.com/google/uuid"
)

// In-memory fakes for the repository interfaces. Each embeds the interface
// so only the methods a test path touches need an implementation; anything
// else panics, which is exactly what we want in a unit test.

type fakeRestaurantRepo struct {
	repository.RestaurantRepository

	byID      map[uuid.UUID]*entity.Restaurant
	nearby    []*repository.NearbyRow
	nearbyErr error
	box       []*entity.Restaurant
	boxErr    error
}

func (f *fakeRestaurantRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	return f.byID[id], nil
}

func (f *fakeRestaurantRepo) FindNearby(_ context.Context, _, _, _ float64, _ int, _ []string) ([]*repository.NearbyRow, error) {
	return f.nearby, f.nearbyErr
}

func (f *fakeRestaurantRepo) FindInBoundingBox(_ context.Context, _ geo.BoundingBox, _ int) ([]*entity.Restaurant, error) {
	return f.box, f.boxErr
}

func (f *fakeRestaurantRepo) UpdateRating(_ context.Context, id uuid.UUID, rating float64, reviewCount int64) error {
	if restaurant, ok := f.byID[id]; ok {
		restaurant.Rating = rating
		restaurant.ReviewCount = reviewCount
	}
	return nil
}

type fakeReviewRepo struct {
	repository.ReviewRepository

	reviews []*entity.Review
}

func (f *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	f.reviews = append(f.reviews, review)
	return nil
}

func (f *fakeReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	for _, review := range f.reviews {
		if review.ID == id {
			return review, nil
		}
	}
	return nil, nil
}

func (f *fakeReviewRepo) GetRestaurantStats(_ context.Context, restaurantID uuid.UUID) (float64, int64, error) {
	var sum float64
	var count int64
	for _, review := range f.reviews {
		if review.RestaurantID == restaurantID && review.IsPublic {
			sum += review.OverallRating
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return sum / float64(count), count, nil
}

type fakeCuisineRepo struct {
	repository.CuisineRepository

	rows []*entity.Cuisine
}

func (f *fakeCuisineRepo) FindAll(_ context.Context) ([]*entity.Cuisine, error) {
	return f.rows, nil
}

type fakeUserRepo struct {
	repository.UserRepository

	byID map[uuid.UUID]*entity.User
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return f.byID[id], nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range f.byID {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, user := range f.byID {
		if strings.EqualFold(user.Username, username) {
			return user, nil
		}
	}
	return nil, nil
}

type fakeSessionRepo struct {
	repository.SessionRepository

	sessions map[uuid.UUID]*entity.Session
}

func (f *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	f.sessions[session.Token] = session
	return nil
}

func (f *fakeSessionRepo) Revoke(_ context.Context, token string) error {
	id, err := uuid.Parse(token)
	if err != nil {
		return err
	}
	delete(f.sessions, id)
	return nil
}

type fakeListRepo struct {
	repository.ListRepository

	byID map[uuid.UUID]*entity.List
}

func (f *fakeListRepo) Create(_ context.Context, list *entity.List) error {
	f.byID[list.ID] = list
	return nil
}

func (f *fakeListRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.List, error) {
	return f.byID[id], nil
}

func (f *fakeListRepo) FindWantToTry(_ context.Context, userID uuid.UUID) (*entity.List, error) {
	for _, list := range f.byID {
		if list.UserID == userID && list.IsWantToTry {
			return list, nil
		}
	}
	return nil, nil
}

func (f *fakeListRepo) Update(_ context.Context, list *entity.List) error {
	if _, ok := f.byID[list.ID]; !ok {
		return fmt.Errorf("list %s not found", list.ID)
	}
	f.byID[list.ID] = list
	return nil
}

func (f *fakeListRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.byID, id)
	return nil
}

type fakeListRestaurantRepo struct {
	repository.ListRestaurantRepository

	entries []*entity.ListRestaurant
}

func (f *fakeListRestaurantRepo) Add(_ context.Context, entry *entity.ListRestaurant) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeListRestaurantRepo) FindEntry(_ context.Context, listID, restaurantID uuid.UUID) (*entity.ListRestaurant, error) {
	for _, entry := range f.entries {
		if entry.ListID == listID && entry.RestaurantID == restaurantID {
			return entry, nil
		}
	}
	return nil, nil
}

func (f *fakeListRestaurantRepo) FindByListID(_ context.Context, listID uuid.UUID) ([]*entity.ListRestaurant, error) {
	var result []*entity.ListRestaurant
	for _, entry := range f.entries {
		if entry.ListID == listID {
			result = append(result, entry)
		}
	}
	return result, nil
}

func (f *fakeListRestaurantRepo) MaxPosition(_ context.Context, listID uuid.UUID) (int, error) {
	max := 0
	for _, entry := range f.entries {
		if entry.ListID == listID && entry.Position > max {
			max = entry.Position
		}
	}
	return max, nil
}

type fakeListLikeRepo struct {
	repository.ListLikeRepository

	likes map[string]struct{}
}

func likeKey(listID, userID uuid.UUID) string {
	return listID.String() + ":" + userID.String()
}

func (f *fakeListLikeRepo) Like(_ context.Context, like *entity.ListLike) (bool, error) {
	key := likeKey(like.ListID, like.UserID)
	if _, ok := f.likes[key]; ok {
		return false, nil
	}
	f.likes[key] = struct{}{}
	return true, nil
}

func (f *fakeListLikeRepo) Unlike(_ context.Context, listID, userID uuid.UUID) error {
	delete(f.likes, likeKey(listID, userID))
	return nil
}

func (f *fakeListLikeRepo) CountByListID(_ context.Context, listID uuid.UUID) (int64, error) {
	var count int64
	for key := range f.likes {
		if key[:36] == listID.String() {
			count++
		}
	}
	return count, nil
}

type fakeFollowerRepo struct {
	repository.FollowerRepository

	edges map[string]struct{}
}

func edgeKey(followerID, followeeID uuid.UUID) string {
	return followerID.String() + ":" + followeeID.String()
}

func (f *fakeFollowerRepo) Follow(_ context.Context, edge *entity.Follower) (bool, error) {
	key := edgeKey(edge.FollowerID, edge.FolloweeID)
	if _, ok := f.edges[key]; ok {
		return false, nil
	}
	f.edges[key] = struct{}{}
	return true, nil
}

func (f *fakeFollowerRepo) Unfollow(_ context.Context, followerID, followeeID uuid.UUID) error {
	delete(f.edges, edgeKey(followerID, followeeID))
	return nil
}

func (f *fakeFollowerRepo) IsFollowing(_ context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	_, ok := f.edges[edgeKey(followerID, followeeID)]
	return ok, nil
}

type fakeActivityRepo struct {
	repository.ActivityRepository

	created []*entity.Activity
}

func (f *fakeActivityRepo) Create(_ context.Context, activity *entity.Activity) error {
	f.created = append(f.created, activity)
	return nil
}

func (f *fakeActivityRepo) DeleteByListID(_ context.Context, listID uuid.UUID) error {
	return nil
}

// fakeMedia satisfies MediaStore with deterministic URLs.
type fakeMedia struct{}

func (fakeMedia) PresignUpload(bucket, key, _ string) (string, error) {
	return "https://example.test/" + bucket + "/" + key + "?upload", nil
}

func (fakeMedia) PresignDownload(bucket, key string) (string, error) {
	if key == "" {
		return "", nil
	}
	return "https://example.test/" + bucket + "/" + key, nil
}

func (fakeMedia) DeleteObject(_, _ string) error {
	return nil
}
