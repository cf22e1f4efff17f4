package catalog

import (
	"slices"
	"testing"

	"github.com/matst80/humidor/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestIdentityFilterKeepsEverythingSortedByName(t *testing.T) {
	items := loungeItems()
	res := ApplyFilters(items, types.DefaultFilterState())
	expected := []string{"c3", "c1", "c7", "c6", "c8", "c5", "c9", "c4", "c2", "c10"}
	assert.Equal(t, expected, ids(res))
}

func TestRareByPriceAscending(t *testing.T) {
	items := loungeItems()
	state := types.DefaultFilterState()
	state.Rarities = []string{string(types.RarityRare)}
	state.SortKey = types.SortByPrice

	res := ApplyFilters(items, state)
	assert.Equal(t, []string{"c7", "c2", "c4"}, ids(res))
	for i := 1; i < len(res); i++ {
		if res[i-1].Price > res[i].Price {
			t.Errorf("Expected non decreasing price, got %v before %v", res[i-1].Price, res[i].Price)
		}
	}
}

func TestDescendingKeepsTieOrder(t *testing.T) {
	state := types.DefaultFilterState()
	state.Rarities = []string{string(types.RarityRare)}
	state.SortKey = types.SortByPrice
	state.SortDirection = types.Descending

	res := ApplyFilters(loungeItems(), state)
	assert.Equal(t, []string{"c2", "c4", "c7"}, ids(res))
}

func TestSortByRaritySeverity(t *testing.T) {
	state := types.DefaultFilterState()
	state.SortKey = types.SortByRarity

	res := ApplyFilters(loungeItems(), state)
	assert.Equal(t, []string{"c3", "c5", "c8", "c9", "c6", "c10", "c2", "c4", "c7", "c1"}, ids(res))

	state.SortDirection = types.Descending
	res = ApplyFilters(loungeItems(), state)
	assert.Equal(t, []string{"c1", "c2", "c4", "c7", "c6", "c10", "c3", "c5", "c8", "c9"}, ids(res))
}

func TestSortByYear(t *testing.T) {
	state := types.DefaultFilterState()
	state.SortKey = types.SortByYear

	res := ApplyFilters(loungeItems(), state)
	assert.Equal(t, []string{"c5", "c8", "c3", "c10", "c2", "c4", "c6", "c9", "c1", "c7"}, ids(res))
}

func TestSortByRating(t *testing.T) {
	state := types.DefaultFilterState()
	state.SortKey = types.SortByRating
	state.SortDirection = types.Descending

	res := ApplyFilters(loungeItems(), state)
	if res[0].Id != "c1" {
		t.Errorf("Expected c1 first, got %s", res[0].Id)
	}
	if res[len(res)-1].Id != "c8" {
		t.Errorf("Expected c8 last, got %s", res[len(res)-1].Id)
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	state := types.DefaultFilterState()
	state.Search = "CEDAR"
	assert.Equal(t, []string{"c3", "c1", "c10"}, ids(ApplyFilters(loungeItems(), state)))

	state.Search = "PADRÓN"
	assert.Equal(t, []string{"c2"}, ids(ApplyFilters(loungeItems(), state)))

	state.Search = "  fuente "
	assert.Equal(t, []string{"c3", "c4"}, ids(ApplyFilters(loungeItems(), state)))
}

func TestAxesCombineWithAnd(t *testing.T) {
	state := types.DefaultFilterState()
	state.Origins = []string{string(types.OriginNicaragua)}
	state.Strengths = []string{string(types.StrengthFull)}
	assert.Equal(t, []string{"c6", "c9", "c2"}, ids(ApplyFilters(loungeItems(), state)))

	state.PriceTiers = []string{string(types.PriceTierLuxury)}
	assert.Equal(t, []string{"c2"}, ids(ApplyFilters(loungeItems(), state)))
}

func TestSelectionIsSetMembership(t *testing.T) {
	state := types.DefaultFilterState()
	state.Origins = []string{"Cub", string(types.OriginHonduras)}
	assert.Equal(t, []string{"c10"}, ids(ApplyFilters(loungeItems(), state)))
}

func TestFlags(t *testing.T) {
	state := types.DefaultFilterState()
	state.FeaturedOnly = true
	assert.Equal(t, []string{"c1", "c4"}, ids(ApplyFilters(loungeItems(), state)))

	state = types.DefaultFilterState()
	state.FavoritesOnly = true
	assert.Empty(t, ApplyFilters(loungeItems(), state))

	items := types.MarkFavorites(loungeItems(), []string{"c5", "c4"})
	assert.Equal(t, []string{"c5", "c4"}, ids(ApplyFilters(items, state)))

	state.FeaturedOnly = true
	assert.Equal(t, []string{"c4"}, ids(ApplyFilters(items, state)))
}

func TestNoMatchReturnsEmpty(t *testing.T) {
	state := types.DefaultFilterState()
	state.Origins = []string{string(types.OriginMexico)}
	res := ApplyFilters(loungeItems(), state)
	if res == nil {
		t.Errorf("Expected empty slice, got nil")
	}
	if len(res) != 0 {
		t.Errorf("Expected no items, got %d", len(res))
	}
	assert.Empty(t, ApplyFilters(nil, types.DefaultFilterState()))
}

func TestInputIsNotMutated(t *testing.T) {
	items := loungeItems()
	before := slices.Clone(items)
	state := types.DefaultFilterState()
	state.Rarities = []string{string(types.RarityRare), string(types.RarityCommon)}
	state.SortKey = types.SortByPrice
	stateBefore := state.CacheKey()

	res := ApplyFilters(items, state)
	res[0].Name = "changed"

	assert.Equal(t, before, items)
	assert.Equal(t, stateBefore, state.CacheKey())
	assert.Equal(t, []string{string(types.RarityRare), string(types.RarityCommon)}, state.Rarities)
}

func TestMatches(t *testing.T) {
	items := loungeItems()
	state := types.DefaultFilterState()
	state.Search = "espresso"
	if !Matches(items[5], state) {
		t.Errorf("Expected %s to match", items[5].Id)
	}
	if Matches(items[0], state) {
		t.Errorf("Expected %s not to match", items[0].Id)
	}
}
