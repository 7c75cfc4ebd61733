package usecase

import (
	"strings"

	"github.com/Tastrnet/mainversion-sub000/internal/data/entity"
)

// expandCuisine builds the set of cuisine names equivalent to the selected
// value: the value itself, every category whose name matches it, and every
// category that lists it among its parent columns. Names are lowercased so
// matching is case-insensitive.
func expandCuisine(cuisines []*entity.Cuisine, selected string) map[string]struct{} {
	selected = strings.ToLower(strings.TrimSpace(selected))
	set := map[string]struct{}{}
	if selected == "" {
		return set
	}

	set[selected] = struct{}{}

	for _, cuisine := range cuisines {
		name := strings.ToLower(cuisine.Name)
		if name == selected {
			continue
		}

		for _, parent := range cuisine.Parents() {
			if strings.ToLower(parent) == selected {
				set[name] = struct{}{}
				break
			}
		}
	}

	return set
}

// matchesCuisine reports whether any of the restaurant's cuisines is in the
// equivalence set. An empty set means no filter.
func matchesCuisine(restaurant *entity.Restaurant, set map[string]struct{}) bool {
	if len(set) == 0 {
		return true
	}

	for _, cuisine := range restaurant.Cuisines {
		if _, ok := set[strings.ToLower(cuisine)]; ok {
			return true
		}
	}

	return false
}

// setToSlice flattens the equivalence set for SQL array-overlap filters.
func setToSlice(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}

	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	return names
}
