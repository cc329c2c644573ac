package services

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/Hop-Syder/nexus-connect-t4/internal/models"
)

func validDraft() *models.EntrepreneurCreate {
	return &models.EntrepreneurCreate{
		ProfileType: "freelance",
		FirstName:   "Awa",
		LastName:    "Diallo",
		Description: "Développeuse web freelance à Cotonou",
		Tags:        []string{"Web", "Développement"},
		Phone:       "+229 97 00 00 00",
		Whatsapp:    "+229 97 00 00 00",
		Email:       "awa@example.com",
		Location:    "BJ",
		City:        "Cotonou",
	}
}

func TestBuildListFilterEmpty(t *testing.T) {
	assert.Equal(t, bson.M{}, BuildListFilter(ListParams{}))
}

func TestBuildListFilterSearch(t *testing.T) {
	filter := BuildListFilter(ListParams{Search: "couture"})

	or, ok := filter["$or"].(bson.A)
	require.True(t, ok)
	assert.Len(t, or, 5)
	first, ok := or[0].(bson.M)
	require.True(t, ok)
	assert.Equal(t, bson.M{"$regex": "couture", "$options": "i"}, first["firstName"])
}

func TestBuildListFilterCombined(t *testing.T) {
	filter := BuildListFilter(ListParams{
		Location:    "BJ",
		City:        "Cotonou",
		ProfileType: "artisan",
		Tags:        []string{"Couture", "Mode"},
		MinRating:   4,
	})

	assert.Equal(t, "BJ", filter["location"])
	assert.Equal(t, "Cotonou", filter["city"])
	assert.Equal(t, "artisan", filter["profileType"])
	assert.Equal(t, bson.M{"$in": []string{"Couture", "Mode"}}, filter["tags"])
	assert.Equal(t, bson.M{"$gte": 4.0}, filter["rating"])
	assert.NotContains(t, filter, "$or")
}

func TestSortSpec(t *testing.T) {
	assert.Equal(t, "createdAt", sortSpec(ListParams{})[0].Key)
	assert.Equal(t, "rating", sortSpec(ListParams{Sort: "rating"})[0].Key)
	assert.Equal(t, "rating", sortSpec(ListParams{Sort: "relevance", Search: "x"})[0].Key)
	assert.Equal(t, "createdAt", sortSpec(ListParams{Sort: "relevance"})[0].Key)
}

func TestValidateProfileOK(t *testing.T) {
	assert.NoError(t, ValidateProfile(validDraft()))
}

func TestValidateProfileRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.EntrepreneurCreate)
	}{
		{"unknown profile type", func(d *models.EntrepreneurCreate) { d.ProfileType = "startup" }},
		{"empty description", func(d *models.EntrepreneurCreate) { d.Description = "" }},
		{"description over cap", func(d *models.EntrepreneurCreate) { d.Description = strings.Repeat("é", models.MaxDescriptionLength+1) }},
		{"no tags", func(d *models.EntrepreneurCreate) { d.Tags = nil }},
		{"too many tags", func(d *models.EntrepreneurCreate) { d.Tags = []string{"a", "b", "c", "d", "e", "f"} }},
		{"missing first name", func(d *models.EntrepreneurCreate) { d.FirstName = " " }},
		{"missing last name", func(d *models.EntrepreneurCreate) { d.LastName = "" }},
		{"missing phone", func(d *models.EntrepreneurCreate) { d.Phone = "" }},
		{"missing whatsapp", func(d *models.EntrepreneurCreate) { d.Whatsapp = "" }},
		{"bad email", func(d *models.EntrepreneurCreate) { d.Email = "not-an-email" }},
		{"unknown country", func(d *models.EntrepreneurCreate) { d.Location = "FR" }},
		{"city outside country", func(d *models.EntrepreneurCreate) { d.City = "Lomé" }},
		{"oversized logo", func(d *models.EntrepreneurCreate) { d.Logo = inlineLogo(models.MaxLogoBytes + 1) }},
		{"bad portfolio type", func(d *models.EntrepreneurCreate) {
			d.Portfolio = []models.PortfolioItem{{Type: "video", Value: "x"}}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := validDraft()
			tc.mutate(draft)
			assert.Error(t, ValidateProfile(draft))
		})
	}
}

// inlineLogo builds a data URI the way the wizard encodes an attached file.
func inlineLogo(rawBytes int) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(make([]byte, rawBytes))
}

func TestValidateProfileMeasuresDecodedLogo(t *testing.T) {
	// A file at exactly the cap inflates past it once base64-encoded; the
	// server must measure the payload, not the string.
	draft := validDraft()
	draft.Logo = inlineLogo(models.MaxLogoBytes)
	require.Greater(t, len(draft.Logo), models.MaxLogoBytes)
	assert.NoError(t, ValidateProfile(draft))

	draft.Logo = inlineLogo(models.MaxLogoBytes + 1)
	assert.Error(t, ValidateProfile(draft))
}

func TestValidateProfileAllowsLogoURL(t *testing.T) {
	draft := validDraft()
	draft.Logo = "https://res.cloudinary.com/nexus-connect/logos/awa.png"
	assert.NoError(t, ValidateProfile(draft))
}

func TestValidateProfileDescriptionAtCap(t *testing.T) {
	draft := validDraft()
	draft.Description = strings.Repeat("é", models.MaxDescriptionLength)
	assert.NoError(t, ValidateProfile(draft), "exactly 200 characters is allowed")
}

func TestSplitName(t *testing.T) {
	first, last := SplitName("Awa Diallo")
	assert.Equal(t, "Awa", first)
	assert.Equal(t, "Diallo", last)

	first, last = SplitName("Jean Baptiste Kouassi")
	assert.Equal(t, "Jean", first)
	assert.Equal(t, "Baptiste Kouassi", last)

	first, last = SplitName("Madonna")
	assert.Equal(t, "Madonna", first)
	assert.Empty(t, last)

	first, last = SplitName("  ")
	assert.Empty(t, first)
	assert.Empty(t, last)
}
