package catalog

import (
	"github.com/matst80/humidor/pkg/types"
)

// ApplyFilters returns the items passing every active predicate in state,
// ordered by the state's sort key and direction. Neither items nor state is
// modified. Equal sort keys keep their input order in both directions.
func ApplyFilters(items []types.CatalogItem, state types.FilterState) []types.CatalogItem {
	q := newQuery(state)
	ret := make([]types.CatalogItem, 0, len(items))
	for i := range items {
		if q.matches(&items[i]) {
			ret = append(ret, items[i])
		}
	}
	SortItems(ret, state.SortKey, state.SortDirection)
	return ret
}
