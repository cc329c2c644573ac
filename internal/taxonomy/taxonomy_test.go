package taxonomy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountryList(t *testing.T) {
	list := CountryList()
	require.Len(t, list, 8)

	// Stable order by code so dropdowns render deterministically.
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].Code, list[i].Code)
	}
	for _, c := range list {
		assert.NotEmpty(t, c.Name, "country %s has no name", c.Code)
		assert.Len(t, c.Cities, 6, "country %s city list", c.Code)
	}
}

func TestIsValidCity(t *testing.T) {
	assert.True(t, IsValidCity("BJ", "Cotonou"))
	assert.True(t, IsValidCity("TG", "Lomé"))
	assert.False(t, IsValidCity("BJ", "Lomé"), "city from another country")
	assert.False(t, IsValidCity("XX", "Cotonou"), "unknown country")
	assert.False(t, IsValidCity("BJ", ""))
}

func TestCountryName(t *testing.T) {
	assert.Equal(t, "Bénin", CountryName("BJ"))
	assert.Equal(t, "XX", CountryName("XX"), "unknown codes pass through")
}

func TestProfileTypes(t *testing.T) {
	require.Len(t, ProfileTypes, 8)
	for _, pt := range ProfileTypes {
		assert.True(t, IsValidProfileType(pt.Value))
		assert.NotEmpty(t, pt.Label)
	}
	assert.False(t, IsValidProfileType("startup"))
	assert.False(t, IsValidProfileType(""))

	got := GetProfileType("freelance")
	require.NotNil(t, got)
	assert.Equal(t, "freelance", got.Value)
	assert.Nil(t, GetProfileType("nope"))
}

func TestFilterTagsByQuery(t *testing.T) {
	got := FilterTags("déve", "")
	require.NotEmpty(t, got)
	for _, tag := range got {
		assert.Contains(t, strings.ToLower(tag.Value), "déve")
	}

	// Case-insensitive substring match.
	upper := FilterTags("DÉVE", "")
	assert.Equal(t, got, upper)
}

func TestFilterTagsByCategory(t *testing.T) {
	got := FilterTags("", "tech")
	require.NotEmpty(t, got)
	for _, tag := range got {
		assert.Equal(t, "tech", tag.Category)
	}
}

func TestFilterTagsCombined(t *testing.T) {
	got := FilterTags("web", "tech")
	require.NotEmpty(t, got)
	for _, tag := range got {
		assert.Equal(t, "tech", tag.Category)
		assert.Contains(t, strings.ToLower(tag.Value), "web")
	}

	// A query that only matches outside the category yields nothing.
	assert.Empty(t, FilterTags("Couture", "tech"))
}

func TestFilterTagsNoFilters(t *testing.T) {
	assert.Equal(t, AvailableTags, FilterTags("", ""))
}

func TestFindTag(t *testing.T) {
	tag := FindTag("Python")
	require.NotNil(t, tag)
	assert.Equal(t, "tech", tag.Category)
	assert.Nil(t, FindTag("COBOL"))
}
