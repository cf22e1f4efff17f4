package types

// Origin is the country a cigar is rolled in.
type Origin string

const (
	OriginCuba              Origin = "Cuba"
	OriginDominicanRepublic Origin = "Dominican Republic"
	OriginNicaragua         Origin = "Nicaragua"
	OriginHonduras          Origin = "Honduras"
	OriginMexico            Origin = "Mexico"
	OriginEcuador           Origin = "Ecuador"
	OriginBrazil            Origin = "Brazil"
	OriginCameroon          Origin = "Cameroon"
	OriginIndonesia         Origin = "Indonesia"
	OriginUnitedStates      Origin = "United States"
)

var origins = []Origin{
	OriginCuba,
	OriginDominicanRepublic,
	OriginNicaragua,
	OriginHonduras,
	OriginMexico,
	OriginEcuador,
	OriginBrazil,
	OriginCameroon,
	OriginIndonesia,
	OriginUnitedStates,
}

type Strength string

const (
	StrengthMild       Strength = "Mild"
	StrengthMildMedium Strength = "Mild-Medium"
	StrengthMedium     Strength = "Medium"
	StrengthMediumFull Strength = "Medium-Full"
	StrengthFull       Strength = "Full"
)

var strengths = []Strength{
	StrengthMild,
	StrengthMildMedium,
	StrengthMedium,
	StrengthMediumFull,
	StrengthFull,
}

type PriceTier string

const (
	PriceTierValue        PriceTier = "Value"
	PriceTierPremium      PriceTier = "Premium"
	PriceTierLuxury       PriceTier = "Luxury"
	PriceTierUltraPremium PriceTier = "Ultra Premium"
)

var priceTiers = []PriceTier{
	PriceTierValue,
	PriceTierPremium,
	PriceTierLuxury,
	PriceTierUltraPremium,
}

// Rarity is ordered by Severity, not by name.
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityLimited   Rarity = "Limited"
	RarityRare      Rarity = "Rare"
	RarityUltraRare Rarity = "Ultra Rare"
)

var rarities = []Rarity{
	RarityCommon,
	RarityLimited,
	RarityRare,
	RarityUltraRare,
}

const (
	MinRating = 1.0
	MaxRating = 5.0
)

func (o Origin) Valid() bool    { return contains(origins, o) }
func (s Strength) Valid() bool  { return contains(strengths, s) }
func (p PriceTier) Valid() bool { return contains(priceTiers, p) }
func (r Rarity) Valid() bool    { return contains(rarities, r) }

// Severity returns the position of r in Common < Limited < Rare < Ultra Rare,
// or -1 for a value outside the enumeration.
func (r Rarity) Severity() int {
	for i, v := range rarities {
		if v == r {
			return i
		}
	}
	return -1
}

func AllOrigins() []Origin       { return clone(origins) }
func AllStrengths() []Strength   { return clone(strengths) }
func AllPriceTiers() []PriceTier { return clone(priceTiers) }
func AllRarities() []Rarity      { return clone(rarities) }

// CatalogItem is one product in the lounge catalog. Items are treated as
// immutable values once loaded.
type CatalogItem struct {
	Id             string    `json:"id"`
	Name           string    `json:"name"`
	Brand          string    `json:"brand"`
	Description    string    `json:"description"`
	TastingNotes   []string  `json:"tastingNotes"`
	Origin         Origin    `json:"origin"`
	Strength       Strength  `json:"strength"`
	PriceTier      PriceTier `json:"priceTier"`
	Rarity         Rarity    `json:"rarity"`
	Rating         float64   `json:"rating"`
	Price          float64   `json:"price"`
	Year           int       `json:"year"`
	Featured       bool      `json:"featured"`
	LimitedEdition bool      `json:"limitedEdition"`
	Favorite       bool      `json:"favorite,omitempty"`
}

// SearchFields returns the free text fields the search string is matched against.
func (c *CatalogItem) SearchFields() []string {
	ret := make([]string, 0, 3+len(c.TastingNotes))
	ret = append(ret, c.Name, c.Brand, c.Description)
	return append(ret, c.TastingNotes...)
}

// MarkFavorites returns a copy of items where every item whose id is in ids
// has Favorite set. Items not in ids keep their current flag.
func MarkFavorites(items []CatalogItem, ids []string) []CatalogItem {
	lookup := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		lookup[id] = struct{}{}
	}
	ret := make([]CatalogItem, len(items))
	for i, item := range items {
		if _, ok := lookup[item.Id]; ok {
			item.Favorite = true
		}
		ret[i] = item
	}
	return ret
}

type ItemMap map[string]CatalogItem

func NewItemMap(items []CatalogItem) ItemMap {
	ret := make(ItemMap, len(items))
	for _, item := range items {
		ret[item.Id] = item
	}
	return ret
}

func (m ItemMap) Get(id string) (CatalogItem, bool) {
	item, ok := m[id]
	return item, ok
}

func contains[T comparable](list []T, value T) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

func clone[T any](list []T) []T {
	ret := make([]T, len(list))
	copy(ret, list)
	return ret
}
