package types

import (
	"slices"
	"strings"
)

type SortKey string

const (
	SortByName   SortKey = "name"
	SortByPrice  SortKey = "price"
	SortByRating SortKey = "rating"
	SortByRarity SortKey = "rarity"
	SortByYear   SortKey = "year"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortByName, SortByPrice, SortByRating, SortByRarity, SortByYear:
		return true
	}
	return false
}

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

func (d SortDirection) Valid() bool {
	return d == Ascending || d == Descending
}

// Axis names a categorical attribute a FilterState can restrict.
type Axis string

const (
	AxisOrigin    Axis = "origin"
	AxisStrength  Axis = "strength"
	AxisPriceTier Axis = "price"
	AxisRarity    Axis = "rarity"
)

// FilterState is owned by the caller and passed by value. An empty selection
// on an axis means every value on that axis is included.
type FilterState struct {
	Origins       []string      `json:"origins" schema:"origin"`
	Strengths     []string      `json:"strengths" schema:"strength"`
	PriceTiers    []string      `json:"priceTiers" schema:"price"`
	Rarities      []string      `json:"rarities" schema:"rarity"`
	Search        string        `json:"search" schema:"q"`
	SortKey       SortKey       `json:"sortKey" schema:"sort"`
	SortDirection SortDirection `json:"sortDirection" schema:"dir"`
	FavoritesOnly bool          `json:"favoritesOnly" schema:"favorites"`
	FeaturedOnly  bool          `json:"featuredOnly" schema:"featured"`
}

func DefaultFilterState() FilterState {
	return FilterState{
		Origins:       []string{},
		Strengths:     []string{},
		PriceTiers:    []string{},
		Rarities:      []string{},
		SortKey:       SortByName,
		SortDirection: Ascending,
	}
}

func (s *FilterState) Sanitize() {
	if !s.SortKey.Valid() {
		s.SortKey = SortByName
	}
	if !s.SortDirection.Valid() {
		s.SortDirection = Ascending
	}
	s.Search = strings.TrimSpace(s.Search)
	s.Origins = dedupe(s.Origins)
	s.Strengths = dedupe(s.Strengths)
	s.PriceTiers = dedupe(s.PriceTiers)
	s.Rarities = dedupe(s.Rarities)
}

// IsIdentity reports whether no inclusion predicate is active. Sorting still applies.
func (s FilterState) IsIdentity() bool {
	return len(s.Origins) == 0 &&
		len(s.Strengths) == 0 &&
		len(s.PriceTiers) == 0 &&
		len(s.Rarities) == 0 &&
		strings.TrimSpace(s.Search) == "" &&
		!s.FavoritesOnly &&
		!s.FeaturedOnly
}

func (s FilterState) Selection(axis Axis) []string {
	switch axis {
	case AxisOrigin:
		return s.Origins
	case AxisStrength:
		return s.Strengths
	case AxisPriceTier:
		return s.PriceTiers
	case AxisRarity:
		return s.Rarities
	}
	return nil
}

// WithSelection returns a copy of s with the selection for axis replaced.
func (s FilterState) WithSelection(axis Axis, values []string) FilterState {
	values = slices.Clone(values)
	switch axis {
	case AxisOrigin:
		s.Origins = values
	case AxisStrength:
		s.Strengths = values
	case AxisPriceTier:
		s.PriceTiers = values
	case AxisRarity:
		s.Rarities = values
	}
	return s
}

// ToggleValue adds value to the axis selection, or removes it if already selected.
func (s FilterState) ToggleValue(axis Axis, value string) FilterState {
	current := s.Selection(axis)
	if idx := slices.Index(current, value); idx >= 0 {
		return s.WithSelection(axis, slices.Delete(slices.Clone(current), idx, idx+1))
	}
	return s.WithSelection(axis, append(slices.Clone(current), value))
}

// Reset clears every predicate but keeps the chosen sort order.
func (s FilterState) Reset() FilterState {
	ret := DefaultFilterState()
	ret.SortKey = s.SortKey
	ret.SortDirection = s.SortDirection
	return ret
}

// CacheKey is a canonical representation, equal for states that filter and sort identically.
func (s FilterState) CacheKey() string {
	sb := strings.Builder{}
	write := func(name string, values []string) {
		sorted := dedupe(values)
		slices.Sort(sorted)
		sb.WriteString(name)
		sb.WriteByte('=')
		sb.WriteString(strings.Join(sorted, "|"))
		sb.WriteByte(';')
	}
	write("o", s.Origins)
	write("s", s.Strengths)
	write("p", s.PriceTiers)
	write("r", s.Rarities)
	sb.WriteString("q=")
	sb.WriteString(strings.ToLower(strings.TrimSpace(s.Search)))
	sb.WriteString(";sort=")
	sb.WriteString(string(s.SortKey))
	sb.WriteByte(':')
	sb.WriteString(string(s.SortDirection))
	if s.FavoritesOnly {
		sb.WriteString(";fav")
	}
	if s.FeaturedOnly {
		sb.WriteString(";feat")
	}
	return sb.String()
}

func dedupe(values []string) []string {
	ret := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || slices.Contains(ret, v) {
			continue
		}
		ret = append(ret, v)
	}
	return ret
}
