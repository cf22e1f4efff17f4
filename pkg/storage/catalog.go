package storage

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/matst80/humidor/pkg/types"
)

var (
	ErrMissingId     = errors.New("missing id")
	ErrDuplicateId   = errors.New("duplicate id")
	ErrInvalidEnum   = errors.New("value outside enumeration")
	ErrRatingRange   = errors.New("rating out of range")
	ErrNegativePrice = errors.New("negative price")
)

// LoadCatalog reads a catalog file, gzipped when the name ends in .gz, and
// validates it before handing it out.
func (d *DiskStorage) LoadCatalog(name string) ([]types.CatalogItem, error) {
	items := make([]types.CatalogItem, 0)
	var err error
	if strings.HasSuffix(name, ".gz") {
		err = d.LoadGzippedJson(&items, name)
	} else {
		err = d.LoadJson(&items, name)
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", name, err)
	}
	if err = Validate(items); err != nil {
		return nil, err
	}
	log.Printf("loaded %d catalog items from %s", len(items), name)
	return items, nil
}

func (d *DiskStorage) SaveCatalog(items []types.CatalogItem, name string) error {
	if err := Validate(items); err != nil {
		return err
	}
	if strings.HasSuffix(name, ".gz") {
		return d.SaveGzippedJson(items, name)
	}
	return d.SaveJson(items, name)
}

// Validate reports every item that breaks the catalog invariants the filter
// engine relies on.
func Validate(items []types.CatalogItem) error {
	var errs []error
	seen := make(map[string]int, len(items))
	for i := range items {
		item := &items[i]
		if item.Id == "" {
			errs = append(errs, fmt.Errorf("item %d: %w", i, ErrMissingId))
		} else if first, ok := seen[item.Id]; ok {
			errs = append(errs, fmt.Errorf("item %d (%s), first seen at %d: %w", i, item.Id, first, ErrDuplicateId))
		} else {
			seen[item.Id] = i
		}
		if !item.Origin.Valid() {
			errs = append(errs, fmt.Errorf("item %s origin %q: %w", item.Id, item.Origin, ErrInvalidEnum))
		}
		if !item.Strength.Valid() {
			errs = append(errs, fmt.Errorf("item %s strength %q: %w", item.Id, item.Strength, ErrInvalidEnum))
		}
		if !item.PriceTier.Valid() {
			errs = append(errs, fmt.Errorf("item %s price tier %q: %w", item.Id, item.PriceTier, ErrInvalidEnum))
		}
		if !item.Rarity.Valid() {
			errs = append(errs, fmt.Errorf("item %s rarity %q: %w", item.Id, item.Rarity, ErrInvalidEnum))
		}
		if item.Rating < types.MinRating || item.Rating > types.MaxRating {
			errs = append(errs, fmt.Errorf("item %s rating %v: %w", item.Id, item.Rating, ErrRatingRange))
		}
		if item.Price < 0 {
			errs = append(errs, fmt.Errorf("item %s price %v: %w", item.Id, item.Price, ErrNegativePrice))
		}
	}
	return errors.Join(errs...)
}
