package catalog

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/matst80/humidor/pkg/types"
)

func sortValue(item types.CatalogItem, key types.SortKey) any {
	switch key {
	case types.SortByPrice:
		return item.Price
	case types.SortByRating:
		return item.Rating
	case types.SortByRarity:
		return item.Rarity.Severity()
	case types.SortByYear:
		return item.Year
	}
	return fold(item.Name)
}

func TestFilterProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("identity state keeps every item", prop.ForAll(
		func(items []types.CatalogItem, key types.SortKey, dir types.SortDirection) bool {
			state := types.DefaultFilterState()
			state.SortKey = key
			state.SortDirection = dir
			res := ApplyFilters(items, state)
			if len(res) != len(items) {
				return false
			}
			a, b := ids(items), ids(res)
			slices.Sort(a)
			slices.Sort(b)
			return slices.Equal(a, b)
		},
		genItems(), genSortKey(), genDirection(),
	))

	properties.Property("filtering is idempotent", prop.ForAll(
		func(items []types.CatalogItem, rarity types.Rarity, key types.SortKey, dir types.SortDirection, featured bool) bool {
			state := types.DefaultFilterState()
			state.Rarities = []string{string(rarity)}
			state.SortKey = key
			state.SortDirection = dir
			state.FeaturedOnly = featured
			once := ApplyFilters(items, state)
			twice := ApplyFilters(once, state)
			return slices.Equal(ids(once), ids(twice))
		},
		genItems(),
		gen.OneConstOf(toAny(types.AllRarities())...),
		genSortKey(), genDirection(), gen.Bool(),
	))

	properties.Property("equal keys keep input order", prop.ForAll(
		func(items []types.CatalogItem, key types.SortKey, dir types.SortDirection) bool {
			state := types.DefaultFilterState()
			state.SortKey = key
			state.SortDirection = dir
			position := make(map[string]int, len(items))
			for i, it := range items {
				position[it.Id] = i
			}
			res := ApplyFilters(items, state)
			for i := 1; i < len(res); i++ {
				if sortValue(res[i-1], key) == sortValue(res[i], key) && position[res[i-1].Id] > position[res[i].Id] {
					return false
				}
			}
			return true
		},
		genItems(), genSortKey(), genDirection(),
	))

	properties.Property("price never changes categorical membership", prop.ForAll(
		func(items []types.CatalogItem, origin types.Origin, rarity types.Rarity, price int) bool {
			state := types.DefaultFilterState()
			state.Origins = []string{string(origin)}
			state.Rarities = []string{string(rarity)}
			for _, it := range items {
				changed := it
				changed.Price = float64(price)
				if Matches(it, state) != Matches(changed, state) {
					return false
				}
			}
			return true
		},
		genItems(),
		gen.OneConstOf(toAny(types.AllOrigins())...),
		gen.OneConstOf(toAny(types.AllRarities())...),
		gen.IntRange(0, 10000),
	))

	properties.TestingRun(t)
}
