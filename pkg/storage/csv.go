package storage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/matst80/humidor/pkg/types"
)

var ErrMissingColumn = errors.New("missing column")

var csvColumns = []string{
	"id", "name", "brand", "description", "tasting_notes", "origin", "strength",
	"price_tier", "rarity", "rating", "price", "year", "featured", "limited_edition",
}

// ReadCatalogCsv parses a semicolon separated catalog export. The first row
// names the columns; tasting notes are comma separated within their cell.
func ReadCatalogCsv(r io.Reader) ([]types.CatalogItem, error) {
	csvReader := csv.NewReader(r)
	csvReader.Comma = ';'
	csvReader.TrimLeadingSpace = true

	header, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, c := range csvColumns {
		if _, ok := index[c]; !ok {
			return nil, fmt.Errorf("%s: %w", c, ErrMissingColumn)
		}
	}

	items := make([]types.CatalogItem, 0)
	for line := 2; ; line++ {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		item, err := itemFromRecord(record, index)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func itemFromRecord(record []string, index map[string]int) (types.CatalogItem, error) {
	get := func(name string) string {
		return strings.TrimSpace(record[index[name]])
	}
	rating, err := strconv.ParseFloat(get("rating"), 64)
	if err != nil {
		return types.CatalogItem{}, fmt.Errorf("rating: %w", err)
	}
	price, err := strconv.ParseFloat(get("price"), 64)
	if err != nil {
		return types.CatalogItem{}, fmt.Errorf("price: %w", err)
	}
	year, err := strconv.Atoi(get("year"))
	if err != nil {
		return types.CatalogItem{}, fmt.Errorf("year: %w", err)
	}
	notes := make([]string, 0)
	for _, n := range strings.Split(get("tasting_notes"), ",") {
		if n = strings.TrimSpace(n); n != "" {
			notes = append(notes, n)
		}
	}
	return types.CatalogItem{
		Id:             get("id"),
		Name:           get("name"),
		Brand:          get("brand"),
		Description:    get("description"),
		TastingNotes:   notes,
		Origin:         types.Origin(get("origin")),
		Strength:       types.Strength(get("strength")),
		PriceTier:      types.PriceTier(get("price_tier")),
		Rarity:         types.Rarity(get("rarity")),
		Rating:         rating,
		Price:          price,
		Year:           year,
		Featured:       parseFlag(get("featured")),
		LimitedEdition: parseFlag(get("limited_edition")),
	}, nil
}

func parseFlag(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "yes", "y", "x":
		return true
	}
	return false
}
