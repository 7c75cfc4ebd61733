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

func intPtr(v int) *int { return &v }

func TestComputeOverall(t *testing.T) {
	tests := []struct {
		name    string
		ratings []*int
		want    float64
		wantErr bool
	}{
		{
			name:    "all four ratings",
			ratings: []*int{intPtr(4), intPtr(5), intPtr(3), intPtr(4)},
			want:    4.0,
		},
		{
			name:    "mean rounded to one decimal",
			ratings: []*int{intPtr(5), intPtr(4), intPtr(4)},
			want:    4.3,
		},
		{
			name:    "single rating",
			ratings: []*int{intPtr(2), nil, nil, nil},
			want:    2.0,
		},
		{
			name:    "half rounds up",
			ratings: []*int{intPtr(4), intPtr(5)},
			want:    4.5,
		},
		{
			name:    "no ratings is an error",
			ratings: []*int{nil, nil, nil, nil},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := computeOverall(tt.ratings...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParseVisitDate(t *testing.T) {
	visitDate, err := parseVisitDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, 2024, visitDate.Year())
	assert.Equal(t, time.March, visitDate.Month())
	assert.Equal(t, 15, visitDate.Day())
}

func TestParseVisitDateDefaultsToToday(t *testing.T) {
	visitDate, err := parseVisitDate("")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), visitDate, 25*time.Hour)
}

func TestParseVisitDateRejectsFuture(t *testing.T) {
	future := time.Now().AddDate(0, 0, 2).Format("2006-01-02")

	_, err := parseVisitDate(future)
	assert.Error(t, err)
}

func TestParseVisitDateRejectsGarbage(t *testing.T) {
	_, err := parseVisitDate("15/03/2024")
	assert.Error(t, err)
}

func TestCreateReviewUpdatesRollupAndActivity(t *testing.T) {
	author := &entity.User{
		Base:     entity.Base{ID: uuid.New()},
		Username: "alice",
		IsActive: true,
	}
	restaurant := testRestaurant("Rollup Cafe", 52.52, 13.405)

	reviews := &fakeReviewRepo{}
	activities := &fakeActivityRepo{}
	restaurants := &fakeRestaurantRepo{byID: map[uuid.UUID]*entity.Restaurant{restaurant.ID: restaurant}}

	repo := &repository.Repository{
		User:       &fakeUserRepo{byID: map[uuid.UUID]*entity.User{author.ID: author}},
		Restaurant: restaurants,
		Review:     reviews,
		Activity:   activities,
	}

	service := NewReviewService(repo, nil, fakeMedia{}, zap.NewNop())

	resp, err := service.CreateReview(context.Background(), author.ID.String(), &request.CreateReviewRequest{
		RestaurantID:  restaurant.ID.String(),
		FoodRating:    intPtr(5),
		ServiceRating: intPtr(4),
	})

	require.NoError(t, err)
	assert.InDelta(t, 4.5, resp.OverallRating, 1e-9)
	assert.Equal(t, "alice", resp.Username)
	assert.True(t, resp.IsPublic)

	// Denormalized rollup refreshed from public reviews
	assert.InDelta(t, 4.5, restaurant.Rating, 1e-9)
	assert.Equal(t, int64(1), restaurant.ReviewCount)

	require.Len(t, activities.created, 1)
	assert.Equal(t, entity.ActivityReviewCreated, activities.created[0].Type)
}

func TestCreateReviewPrivateSkipsActivity(t *testing.T) {
	author := &entity.User{Base: entity.Base{ID: uuid.New()}, Username: "bob", IsActive: true}
	restaurant := testRestaurant("Quiet Place", 52.52, 13.405)

	activities := &fakeActivityRepo{}
	repo := &repository.Repository{
		User:       &fakeUserRepo{byID: map[uuid.UUID]*entity.User{author.ID: author}},
		Restaurant: &fakeRestaurantRepo{byID: map[uuid.UUID]*entity.Restaurant{restaurant.ID: restaurant}},
		Review:     &fakeReviewRepo{},
		Activity:   activities,
	}

	service := NewReviewService(repo, nil, fakeMedia{}, zap.NewNop())

	isPublic := false
	_, err := service.CreateReview(context.Background(), author.ID.String(), &request.CreateReviewRequest{
		RestaurantID: restaurant.ID.String(),
		FoodRating:   intPtr(3),
		IsPublic:     &isPublic,
	})

	require.NoError(t, err)
	assert.Empty(t, activities.created)

	// Private reviews do not move the public rollup either
	assert.Zero(t, restaurant.Rating)
	assert.Zero(t, restaurant.ReviewCount)
}

func TestCreateReviewRequiresAtLeastOneRating(t *testing.T) {
	author := &entity.User{Base: entity.Base{ID: uuid.New()}, Username: "carol", IsActive: true}
	restaurant := testRestaurant("No Ratings", 52.52, 13.405)

	repo := &repository.Repository{
		User:       &fakeUserRepo{byID: map[uuid.UUID]*entity.User{author.ID: author}},
		Restaurant: &fakeRestaurantRepo{byID: map[uuid.UUID]*entity.Restaurant{restaurant.ID: restaurant}},
		Review:     &fakeReviewRepo{},
		Activity:   &fakeActivityRepo{},
	}

	service := NewReviewService(repo, nil, fakeMedia{}, zap.NewNop())

	_, err := service.CreateReview(context.Background(), author.ID.String(), &request.CreateReviewRequest{
		RestaurantID: restaurant.ID.String(),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one rating")
}
