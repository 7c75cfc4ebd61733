package usecase

import (
	"context"
	"sort"
	"testing"

	"github.com/Tastrnet/mainversion-sub000/internal/data/entity"
	"github.com/Tastrnet/mainversion-sub000/internal/data/repository"
	"github.com/Tastrnet/mainversion-sub000/internal/dto/request"
	"github.com/Tastrnet/mainversion-sub000/pkg/geo"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func ptrFloat(v float64) *float64 { return &v }

func testRestaurant(name string, lat, lng float64) *entity.Restaurant {
	return &entity.Restaurant{
		Base:      entity.Base{ID: uuid.New()},
		Name:      name,
		Latitude:  ptrFloat(lat),
		Longitude: ptrFloat(lng),
	}
}

func TestMergeNearbyDedupsKeepingCloser(t *testing.T) {
	origin := geo.Point{Lat: 52.52, Lng: 13.405}

	shared := testRestaurant("Trattoria", 52.5215, 13.406)

	// The RPC reports a larger distance than the haversine recomputation
	// of the same row coming through the box query.
	rpcRows := []*repository.NearbyRow{
		{Restaurant: *shared, DistanceMeters: 900},
	}
	boxRows := []*entity.Restaurant{shared}

	merged := mergeNearby(rpcRows, boxRows, origin, 2000)

	require.Len(t, merged, 1)
	assert.Equal(t, shared.ID, merged[0].restaurant.ID)
	assert.Less(t, merged[0].distance, 900.0)
}

func TestMergeNearbyDropsRowsWithoutCoordinates(t *testing.T) {
	origin := geo.Point{Lat: 52.52, Lng: 13.405}

	noCoords := &entity.Restaurant{
		Base: entity.Base{ID: uuid.New()},
		Name: "Ghost Kitchen",
	}

	merged := mergeNearby(nil, []*entity.Restaurant{noCoords}, origin, 2000)
	assert.Empty(t, merged)
}

func TestMergeNearbyDropsBoxRowsOutsideRadius(t *testing.T) {
	origin := geo.Point{Lat: 52.52, Lng: 13.405}

	// A box corner can be ~sqrt(2)*radius away from the center.
	corner := testRestaurant("Corner Case", 52.538, 13.432)

	merged := mergeNearby(nil, []*entity.Restaurant{corner}, origin, 2000)
	assert.Empty(t, merged)
}

func TestMergeNearbyUnionsBothSources(t *testing.T) {
	origin := geo.Point{Lat: 52.52, Lng: 13.405}

	onlyRPC := testRestaurant("RPC Only", 52.521, 13.404)
	onlyBox := testRestaurant("Box Only", 52.519, 13.406)

	rpcRows := []*repository.NearbyRow{
		{Restaurant: *onlyRPC, DistanceMeters: 130},
	}
	boxRows := []*entity.Restaurant{onlyBox}

	merged := mergeNearby(rpcRows, boxRows, origin, 2000)
	assert.Len(t, merged, 2)
}

func TestSortByDistanceOrdering(t *testing.T) {
	near := testRestaurant("Near", 0, 0)
	far := testRestaurant("Far", 0, 0)
	farBetterRated := testRestaurant("Acclaimed", 0, 0)
	farBetterRated.Rating = 4.8

	candidates := []nearbyCandidate{
		{restaurant: far, distance: 500},
		{restaurant: near, distance: 100},
		{restaurant: farBetterRated, distance: 500},
	}

	sortByDistance(candidates)

	assert.Equal(t, "Near", candidates[0].restaurant.Name)
	// Distance tie broken by rating descending
	assert.Equal(t, "Acclaimed", candidates[1].restaurant.Name)
	assert.Equal(t, "Far", candidates[2].restaurant.Name)

	assert.True(t, sort.SliceIsSorted(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	}))
}

// sortByPopularity mirrors the ORDER BY clause of FindPopular and
// FindFeatured so the popularity ordering contract stays pinned here.
func sortByPopularity(restaurants []*entity.Restaurant) {
	sort.Slice(restaurants, func(i, j int) bool {
		if restaurants[i].ReviewCount != restaurants[j].ReviewCount {
			return restaurants[i].ReviewCount > restaurants[j].ReviewCount
		}
		if restaurants[i].Rating != restaurants[j].Rating {
			return restaurants[i].Rating > restaurants[j].Rating
		}
		return restaurants[i].Name < restaurants[j].Name
	})
}

func TestSortByPopularityOrdering(t *testing.T) {
	a := testRestaurant("Alpha", 0, 0)
	a.ReviewCount = 10
	a.Rating = 4.0

	b := testRestaurant("Beta", 0, 0)
	b.ReviewCount = 10
	b.Rating = 4.5

	c := testRestaurant("Gamma", 0, 0)
	c.ReviewCount = 25
	c.Rating = 3.0

	restaurants := []*entity.Restaurant{a, b, c}
	sortByPopularity(restaurants)

	assert.Equal(t, "Gamma", restaurants[0].Name)
	assert.Equal(t, "Beta", restaurants[1].Name)
	assert.Equal(t, "Alpha", restaurants[2].Name)
}

func TestNearbyFallsBackWhenRPCFails(t *testing.T) {
	origin := geo.Point{Lat: 52.52, Lng: 13.405}
	inRange := testRestaurant("Fallback Hit", origin.Lat+0.001, origin.Lng)

	repo := &repository.Repository{
		Restaurant: &fakeRestaurantRepo{
			nearbyErr: assert.AnError,
			box:       []*entity.Restaurant{inRange},
		},
		Cuisine: &fakeCuisineRepo{},
	}

	service := NewRestaurantService(repo, nil, zap.NewNop())

	results, err := service.Nearby(context.Background(), &request.NearbyRequest{
		Latitude:  origin.Lat,
		Longitude: origin.Lng,
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Fallback Hit", results[0].Name)
	assert.Greater(t, results[0].DistanceMeters, 0.0)
}

func TestNearbyAcceptsZeroCoordinate(t *testing.T) {
	// Latitude 0 / longitude 0 are real places (equator, prime meridian)
	// and must not be treated as missing values.
	origin := geo.Point{Lat: 0, Lng: 6.73}
	inRange := testRestaurant("Gulf of Guinea", origin.Lat+0.001, origin.Lng)

	repo := &repository.Repository{
		Restaurant: &fakeRestaurantRepo{box: []*entity.Restaurant{inRange}},
		Cuisine:    &fakeCuisineRepo{},
	}

	service := NewRestaurantService(repo, nil, zap.NewNop())

	results, err := service.Nearby(context.Background(), &request.NearbyRequest{
		Latitude:  origin.Lat,
		Longitude: origin.Lng,
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Gulf of Guinea", results[0].Name)
}

func TestNearbyFailsOnlyWhenBothSourcesFail(t *testing.T) {
	repo := &repository.Repository{
		Restaurant: &fakeRestaurantRepo{
			nearbyErr: assert.AnError,
			boxErr:    assert.AnError,
		},
		Cuisine: &fakeCuisineRepo{},
	}

	service := NewRestaurantService(repo, nil, zap.NewNop())

	_, err := service.Nearby(context.Background(), &request.NearbyRequest{
		Latitude:  52.52,
		Longitude: 13.405,
	})

	assert.Error(t, err)
}

func TestNearbyFiltersByCuisineEquivalence(t *testing.T) {
	origin := geo.Point{Lat: 52.52, Lng: 13.405}

	ramen := testRestaurant("Ramen Bar", origin.Lat+0.001, origin.Lng)
	ramen.Cuisines = []string{"Ramen"}

	steak := testRestaurant("Steakhouse", origin.Lat+0.001, origin.Lng)
	steak.Cuisines = []string{"Steak"}

	japanese := "Japanese"
	repo := &repository.Repository{
		Restaurant: &fakeRestaurantRepo{
			box: []*entity.Restaurant{ramen, steak},
		},
		Cuisine: &fakeCuisineRepo{rows: []*entity.Cuisine{
			{ID: uuid.New(), Name: "Ramen", Parent1: &japanese},
		}},
	}

	service := NewRestaurantService(repo, nil, zap.NewNop())

	results, err := service.Nearby(context.Background(), &request.NearbyRequest{
		Latitude:  origin.Lat,
		Longitude: origin.Lng,
		Cuisine:   "japanese",
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Ramen Bar", results[0].Name)
}

func TestNearbyTruncatesToLimit(t *testing.T) {
	origin := geo.Point{Lat: 52.52, Lng: 13.405}

	var boxRows []*entity.Restaurant
	for i := 0; i < 5; i++ {
		boxRows = append(boxRows, testRestaurant("R", origin.Lat+float64(i)*0.0001, origin.Lng))
	}

	repo := &repository.Repository{
		Restaurant: &fakeRestaurantRepo{box: boxRows},
		Cuisine:    &fakeCuisineRepo{},
	}

	service := NewRestaurantService(repo, nil, zap.NewNop())

	results, err := service.Nearby(context.Background(), &request.NearbyRequest{
		Latitude:  origin.Lat,
		Longitude: origin.Lng,
		Limit:     3,
	})

	require.NoError(t, err)
	assert.Len(t, results, 3)
}
