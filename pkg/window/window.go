package window

import (
	"math"

	"github.com/matst80/humidor/pkg/types"
)

// Range is a half open index range [Start, End).
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (r Range) Len() int {
	return max(r.End-r.Start, 0)
}

// Clamp limits r to [0, total]. An inverted range becomes empty.
func (r Range) Clamp(total int) Range {
	start := min(max(r.Start, 0), total)
	end := min(max(r.End, start), total)
	return Range{Start: start, End: end}
}

type Item struct {
	Index  int               `json:"index"`
	Item   types.CatalogItem `json:"item"`
	Height float64           `json:"height"`
}

// Offset is the distance from the top of the list to this item.
func (i Item) Offset() float64 {
	return float64(i.Index) * i.Height
}

// WindowFor returns the items inside rng, each tagged with its absolute index
// and layout height. Out of bounds parts of rng are dropped.
func WindowFor(items []types.CatalogItem, rng Range, itemHeight float64) []Item {
	rng = rng.Clamp(len(items))
	ret := make([]Item, 0, rng.Len())
	for i := rng.Start; i < rng.End; i++ {
		ret = append(ret, Item{Index: i, Item: items[i], Height: itemHeight})
	}
	return ret
}

// VisibleRange is the range covering a viewport scrolled to scrollTop, padded
// by overscan items on both sides.
func VisibleRange(scrollTop, viewportHeight, itemHeight float64, overscan, total int) Range {
	if itemHeight <= 0 || total <= 0 {
		return Range{}
	}
	scrollTop = max(scrollTop, 0)
	viewportHeight = max(viewportHeight, 0)
	overscan = max(overscan, 0)
	start := int(math.Floor(scrollTop/itemHeight)) - overscan
	end := int(math.Ceil((scrollTop+viewportHeight)/itemHeight)) + overscan
	return Range{Start: start, End: end}.Clamp(total)
}

func TotalHeight(total int, itemHeight float64) float64 {
	return float64(max(total, 0)) * max(itemHeight, 0)
}
