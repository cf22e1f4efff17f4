package storage

import (
	"errors"
	"strings"
	"testing"

	"github.com/matst80/humidor/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCsv = `id;name;brand;description;tasting_notes;origin;strength;price_tier;rarity;rating;price;year;featured;limited_edition
rp-1990;Vintage 1990;Rocky Patel;Aged wrapper;cedar, sweet;Honduras;Medium;Value;Limited;4.0;9.5;1990;0;no
cohiba-56;Behike 56;Cohiba;"Rich; creamy";cedar,honey;Cuba;Medium-Full;Ultra Premium;Ultra Rare;4.9;95;2010;1;yes
`

func TestReadCatalogCsv(t *testing.T) {
	items, err := ReadCatalogCsv(strings.NewReader(sampleCsv))
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, []string{"cedar", "sweet"}, items[0].TastingNotes)
	assert.Equal(t, types.OriginHonduras, items[0].Origin)
	assert.False(t, items[0].Featured)

	assert.Equal(t, "Rich; creamy", items[1].Description)
	assert.Equal(t, types.RarityUltraRare, items[1].Rarity)
	assert.Equal(t, 95.0, items[1].Price)
	assert.True(t, items[1].Featured)
	assert.True(t, items[1].LimitedEdition)
	assert.NoError(t, Validate(items))
}

func TestReadCatalogCsvErrors(t *testing.T) {
	_, err := ReadCatalogCsv(strings.NewReader("id;name\nx;y\n"))
	assert.True(t, errors.Is(err, ErrMissingColumn))

	broken := strings.Replace(sampleCsv, ";4.0;", ";four;", 1)
	_, err = ReadCatalogCsv(strings.NewReader(broken))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}
