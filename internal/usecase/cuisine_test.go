package usecase

import (
	"testing"

	"github.com/Tastrnet/mainversion-sub000/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func cuisineTable() []*entity.Cuisine {
	return []*entity.Cuisine{
		{ID: uuid.New(), Name: "Ramen", Parent1: strPtr("Japanese"), Parent2: strPtr("Noodles")},
		{ID: uuid.New(), Name: "Sushi", Parent1: strPtr("Japanese")},
		{ID: uuid.New(), Name: "Pho", Parent1: strPtr("Vietnamese"), Parent2: strPtr("Noodles")},
		{ID: uuid.New(), Name: "Japanese"},
	}
}

func TestExpandCuisineIncludesChildren(t *testing.T) {
	set := expandCuisine(cuisineTable(), "Japanese")

	assert.Contains(t, set, "japanese")
	assert.Contains(t, set, "ramen")
	assert.Contains(t, set, "sushi")
	assert.NotContains(t, set, "pho")
}

func TestExpandCuisineSecondaryParent(t *testing.T) {
	set := expandCuisine(cuisineTable(), "noodles")

	assert.Contains(t, set, "noodles")
	assert.Contains(t, set, "ramen")
	assert.Contains(t, set, "pho")
	assert.NotContains(t, set, "sushi")
}

func TestExpandCuisineIsCaseInsensitive(t *testing.T) {
	lower := expandCuisine(cuisineTable(), "japanese")
	upper := expandCuisine(cuisineTable(), "JAPANESE")

	assert.Equal(t, lower, upper)
}

func TestExpandCuisineEmptySelection(t *testing.T) {
	assert.Empty(t, expandCuisine(cuisineTable(), "  "))
}

func TestMatchesCuisine(t *testing.T) {
	set := expandCuisine(cuisineTable(), "Japanese")

	ramenBar := &entity.Restaurant{Cuisines: []string{"Ramen", "Bar Food"}}
	steakhouse := &entity.Restaurant{Cuisines: []string{"Steak"}}
	unlisted := &entity.Restaurant{}

	assert.True(t, matchesCuisine(ramenBar, set))
	assert.False(t, matchesCuisine(steakhouse, set))
	assert.False(t, matchesCuisine(unlisted, set))

	// Empty set means no filter at all
	assert.True(t, matchesCuisine(steakhouse, nil))
}

func TestSetToSlice(t *testing.T) {
	assert.Nil(t, setToSlice(nil))

	set := map[string]struct{}{"a": {}, "b": {}}
	assert.ElementsMatch(t, []string{"a", "b"}, setToSlice(set))
}
