package catalog

import (
	"cmp"
	"slices"

	"github.com/matst80/humidor/pkg/types"
)

type sortEntry struct {
	item *types.CatalogItem
	name string
}

type entryCompare func(a, b *sortEntry) int

func compareName(a, b *sortEntry) int {
	return cmp.Compare(a.name, b.name)
}

func comparePrice(a, b *sortEntry) int {
	return cmp.Compare(a.item.Price, b.item.Price)
}

func compareRating(a, b *sortEntry) int {
	return cmp.Compare(a.item.Rating, b.item.Rating)
}

func compareRarity(a, b *sortEntry) int {
	return cmp.Compare(a.item.Rarity.Severity(), b.item.Rarity.Severity())
}

func compareYear(a, b *sortEntry) int {
	return cmp.Compare(a.item.Year, b.item.Year)
}

var comparers = map[types.SortKey]entryCompare{
	types.SortByName:   compareName,
	types.SortByPrice:  comparePrice,
	types.SortByRating: compareRating,
	types.SortByRarity: compareRarity,
	types.SortByYear:   compareYear,
}

// SortItems sorts items in place. The sort is stable; unknown keys sort by name.
func SortItems(items []types.CatalogItem, key types.SortKey, direction types.SortDirection) {
	fn, ok := comparers[key]
	if !ok {
		key = types.SortByName
		fn = compareName
	}
	entries := make([]sortEntry, len(items))
	for i := range items {
		entries[i].item = &items[i]
		if key == types.SortByName {
			entries[i].name = fold(items[i].Name)
		}
	}
	desc := direction == types.Descending
	slices.SortStableFunc(entries, func(a, b sortEntry) int {
		if desc {
			return fn(&b, &a)
		}
		return fn(&a, &b)
	})
	sorted := make([]types.CatalogItem, len(entries))
	for i := range entries {
		sorted[i] = *entries[i].item
	}
	copy(items, sorted)
}
