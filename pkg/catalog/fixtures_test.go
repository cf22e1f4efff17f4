package catalog

import (
	"fmt"
	"reflect"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/matst80/humidor/pkg/types"
)

func item(id, name string, rarity types.Rarity, price float64) types.CatalogItem {
	return types.CatalogItem{
		Id:        id,
		Name:      name,
		Brand:     "Lounge",
		Origin:    types.OriginCuba,
		Strength:  types.StrengthMedium,
		PriceTier: types.PriceTierPremium,
		Rarity:    rarity,
		Rating:    4,
		Price:     price,
		Year:      2020,
	}
}

func loungeItems() []types.CatalogItem {
	return []types.CatalogItem{
		{Id: "c1", Name: "Cohiba Behike 56", Brand: "Cohiba", Description: "Rich and creamy", TastingNotes: []string{"cedar", "honey"}, Origin: types.OriginCuba, Strength: types.StrengthMediumFull, PriceTier: types.PriceTierUltraPremium, Rarity: types.RarityUltraRare, Rating: 4.9, Price: 95, Year: 2010, Featured: true, LimitedEdition: true},
		{Id: "c2", Name: "Padrón 1964 Anniversary", Brand: "Padrón", Description: "Box pressed maduro", TastingNotes: []string{"cocoa", "coffee"}, Origin: types.OriginNicaragua, Strength: types.StrengthFull, PriceTier: types.PriceTierLuxury, Rarity: types.RarityRare, Rating: 4.7, Price: 24, Year: 1994},
		{Id: "c3", Name: "arturo fuente hemingway", Brand: "Arturo Fuente", Description: "Perfecto shape", TastingNotes: []string{"cedar", "spice"}, Origin: types.OriginDominicanRepublic, Strength: types.StrengthMedium, PriceTier: types.PriceTierPremium, Rarity: types.RarityCommon, Rating: 4.5, Price: 14, Year: 1983},
		{Id: "c4", Name: "Opus X", Brand: "Arturo Fuente", Description: "Dominican grown wrapper", TastingNotes: []string{"pepper", "leather"}, Origin: types.OriginDominicanRepublic, Strength: types.StrengthFull, PriceTier: types.PriceTierLuxury, Rarity: types.RarityRare, Rating: 4.8, Price: 24, Year: 1995, Featured: true},
		{Id: "c5", Name: "Montecristo No. 2", Brand: "Montecristo", Description: "Classic torpedo", TastingNotes: []string{"earth", "coffee"}, Origin: types.OriginCuba, Strength: types.StrengthMedium, PriceTier: types.PriceTierPremium, Rarity: types.RarityCommon, Rating: 4.4, Price: 18, Year: 1935},
		{Id: "c6", Name: "Liga Privada No. 9", Brand: "Drew Estate", Description: "Broadleaf maduro", TastingNotes: []string{"chocolate", "espresso"}, Origin: types.OriginNicaragua, Strength: types.StrengthFull, PriceTier: types.PriceTierPremium, Rarity: types.RarityLimited, Rating: 4.6, Price: 16, Year: 2007},
		{Id: "c7", Name: "Davidoff Winston Churchill", Brand: "Davidoff", Description: "Elegant blend", TastingNotes: []string{"cream", "nuts"}, Origin: types.OriginDominicanRepublic, Strength: types.StrengthMildMedium, PriceTier: types.PriceTierLuxury, Rarity: types.RarityRare, Rating: 4.3, Price: 21, Year: 2013},
		{Id: "c8", Name: "Macanudo Cafe", Brand: "Macanudo", Description: "Smooth everyday smoke", TastingNotes: []string{"cream"}, Origin: types.OriginDominicanRepublic, Strength: types.StrengthMild, PriceTier: types.PriceTierValue, Rarity: types.RarityCommon, Rating: 3.9, Price: 8, Year: 1971},
		{Id: "c9", Name: "Oliva Serie V", Brand: "Oliva", Description: "Ligero blend", TastingNotes: []string{"pepper", "oak"}, Origin: types.OriginNicaragua, Strength: types.StrengthFull, PriceTier: types.PriceTierPremium, Rarity: types.RarityCommon, Rating: 4.2, Price: 11, Year: 2007},
		{Id: "c10", Name: "Rocky Patel Vintage 1990", Brand: "Rocky Patel", Description: "Aged Honduran wrapper", TastingNotes: []string{"cedar", "sweet"}, Origin: types.OriginHonduras, Strength: types.StrengthMedium, PriceTier: types.PriceTierValue, Rarity: types.RarityLimited, Rating: 4.0, Price: 9, Year: 1990},
	}
}

func ids(items []types.CatalogItem) []string {
	ret := make([]string, len(items))
	for i, it := range items {
		ret[i] = it.Id
	}
	return ret
}

func genItem(idx int) gopter.Gen {
	return gopter.CombineGens(
		gen.OneConstOf(toAny(types.AllOrigins())...),
		gen.OneConstOf(toAny(types.AllStrengths())...),
		gen.OneConstOf(toAny(types.AllPriceTiers())...),
		gen.OneConstOf(toAny(types.AllRarities())...),
		gen.IntRange(1, 5),
		gen.IntRange(1, 20),
		gen.IntRange(1990, 1995),
		gen.Bool(),
		gen.OneConstOf("Alpha", "beta", "Gamma", "alpha", "Delta"),
	).Map(func(v []any) types.CatalogItem {
		return types.CatalogItem{
			Id:        fmt.Sprintf("i%d", idx),
			Name:      v[8].(string),
			Origin:    v[0].(types.Origin),
			Strength:  v[1].(types.Strength),
			PriceTier: v[2].(types.PriceTier),
			Rarity:    v[3].(types.Rarity),
			Rating:    float64(v[4].(int)),
			Price:     float64(v[5].(int)),
			Year:      v[6].(int),
			Featured:  v[7].(bool),
		}
	})
}

// genItems produces lists with unique ids and deliberately colliding sort keys.
func genItems() gopter.Gen {
	return gen.IntRange(0, 30).FlatMap(func(v any) gopter.Gen {
		n := v.(int)
		gens := make([]gopter.Gen, n)
		for i := range gens {
			gens[i] = genItem(i)
		}
		return gopter.CombineGens(gens...).Map(func(vals []any) []types.CatalogItem {
			ret := make([]types.CatalogItem, len(vals))
			for i, x := range vals {
				ret[i] = x.(types.CatalogItem)
			}
			return ret
		})
	}, reflect.TypeOf([]types.CatalogItem{}))
}

func genSortKey() gopter.Gen {
	return gen.OneConstOf(types.SortByName, types.SortByPrice, types.SortByRating, types.SortByRarity, types.SortByYear)
}

func genDirection() gopter.Gen {
	return gen.OneConstOf(types.Ascending, types.Descending)
}

func toAny[T any](values []T) []any {
	ret := make([]any, len(values))
	for i, v := range values {
		ret[i] = v
	}
	return ret
}
