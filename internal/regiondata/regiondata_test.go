package regiondata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/addressdata/internal/model"
)

func TestEveryEntryParsesWithMatchingID(t *testing.T) {
	for key, blob := range Map() {
		rec, err := model.ParseRecord([]byte(blob))
		require.NoError(t, err, "key %s", key)
		assert.Equal(t, key, rec.ID, "id must match the key it is stored under")
	}
}

func TestCountriesIndex(t *testing.T) {
	countries := Countries()
	require.NotEmpty(t, countries)

	for _, cc := range countries {
		_, ok := Map()["data/"+cc]
		assert.True(t, ok, "country %s listed in index but has no record", cc)
	}
}

func TestCanadaSubdivisions(t *testing.T) {
	rec, err := model.ParseRecord([]byte(Map()["data/CA"]))
	require.NoError(t, err)

	assert.Equal(t, "en", rec.Language)
	assert.Equal(t,
		[]string{"AB", "BC", "MB", "NB", "NL", "NT", "NS", "NU", "ON", "PE", "QC", "SK", "YT"},
		rec.SubKeys,
	)
	assert.Len(t, rec.SubNames, len(rec.SubKeys))
}

func TestCanadaFrenchVariant(t *testing.T) {
	rec, err := model.ParseRecord([]byte(Map()["data/CA--fr"]))
	require.NoError(t, err)

	assert.Equal(t, "data/CA--fr", rec.ID)
	assert.Equal(t, "fr", rec.Language)
	assert.Contains(t, rec.SubNames, "Colombie-Britannique")
}

func TestKazakhstanPostalPattern(t *testing.T) {
	rec, err := model.ParseRecord([]byte(Map()["data/KZ"]))
	require.NoError(t, err)

	require.NotNil(t, rec.PostalPattern)
	assert.Equal(t, `\d{6}`, rec.PostalPattern.String())
}
