package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecord_Full(t *testing.T) {
	rec, err := ParseRecord([]byte(`{
		"id": "data/CA",
		"key": "CA",
		"name": "CANADA",
		"fmt": "%N%n%O%n%A%n%C %S %Z",
		"require": "ACSZ",
		"zip": "[ABCEGHJKLMNPRSTVXY]\\d[ABCEGHJ-NPRSTV-Z] ?\\d[ABCEGHJ-NPRSTV-Z]\\d",
		"zipex": "H3Z 2Y7,V8X 3X4",
		"lang": "en",
		"languages": "en~fr",
		"sub_keys": "AB~BC~QC",
		"sub_names": "Alberta~British Columbia~Quebec"
	}`))
	require.NoError(t, err)

	assert.Equal(t, "data/CA", rec.ID)
	assert.Equal(t, "CANADA", rec.Name)
	assert.Equal(t, "%N%n%O%n%A%n%C %S %Z", rec.Format)
	assert.Equal(t, []string{"A", "C", "S", "Z"}, rec.Required)
	assert.Equal(t, "en", rec.Language)
	assert.Equal(t, []string{"en", "fr"}, rec.Languages)
	assert.Equal(t, []string{"AB", "BC", "QC"}, rec.SubKeys)
	assert.Equal(t, []string{"Alberta", "British Columbia", "Quebec"}, rec.SubNames)

	require.NotNil(t, rec.PostalPattern)
	assert.True(t, rec.PostalPattern.MatchString("H3Z 2Y7"))
	assert.False(t, rec.PostalPattern.MatchString("90210"))
}

func TestParseRecord_EmptyObjectIsValid(t *testing.T) {
	rec, err := ParseRecord([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, rec.ID)
	assert.Empty(t, rec.Format)
	assert.Nil(t, rec.Required)
	assert.Nil(t, rec.PostalPattern)
}

func TestParseRecord_Malformed(t *testing.T) {
	for _, in := range []string{":", "", "{", `["data/XA"]`} {
		_, err := ParseRecord([]byte(in))
		assert.Error(t, err, "input %q", in)
	}
}

func TestParseRecord_BadPostalPattern(t *testing.T) {
	_, err := ParseRecord([]byte(`{"id":"data/XX","zip":"("}`))
	require.Error(t, err)
}

func TestParseRecord_KazakhstanPostalPattern(t *testing.T) {
	rec, err := ParseRecord([]byte(`{"id":"data/KZ","zip":"\\d{6}"}`))
	require.NoError(t, err)
	require.NotNil(t, rec.PostalPattern)
	assert.Equal(t, `\d{6}`, rec.PostalPattern.String())
	assert.True(t, rec.PostalPattern.MatchString("040900"))
}

func TestMergeDefaults(t *testing.T) {
	rec, err := ParseRecord([]byte(`{"id":"data/XA"}`))
	require.NoError(t, err)
	assert.Empty(t, rec.Format)
	assert.Empty(t, rec.Required)

	merged := rec.MergeDefaults()
	assert.Equal(t, "%N%n%O%n%A%n%C", merged.Format)
	assert.Equal(t, []string{"A", "C"}, merged.Required)
	assert.Nil(t, merged.PostalPattern)

	// The original record is untouched.
	assert.Empty(t, rec.Format)
	assert.Empty(t, rec.Required)
}

func TestMergeDefaults_ExplicitFieldsWin(t *testing.T) {
	rec, err := ParseRecord([]byte(`{"id":"data/DE","fmt":"%N%n%O%n%A%n%Z %C","require":"ACZ"}`))
	require.NoError(t, err)

	merged := rec.MergeDefaults()
	assert.Equal(t, "%N%n%O%n%A%n%Z %C", merged.Format)
	assert.Equal(t, []string{"A", "C", "Z"}, merged.Required)
}
