// Package directory is the public search view over published profiles. It
// only builds query parameters and renders what the backend returns; all
// filtering happens server-side.
package directory

import (
	"context"
	"regexp"
	"sync"

	"github.com/Hop-Syder/nexus-connect-t4/internal/apiclient"
	"github.com/Hop-Syder/nexus-connect-t4/internal/models"
)

// AllLocations is the sentinel meaning "no country filter". It is resolved
// here and never sent to the backend.
const AllLocations = "all"

// resultLimit caps every listing request.
const resultLimit = 50

// wa.me links take the number as digits only, no plus sign or spaces.
var nonDigits = regexp.MustCompile(`\D`)

// Filters are the directory's active filter values, as chosen in the UI.
type Filters struct {
	Location    string
	City        string
	ProfileType string
	MinRating   float64
}

// Component holds the search state: the current query, filters, and the last
// result set returned by the backend.
type Component struct {
	api *apiclient.Client

	mu      sync.Mutex
	search  string
	filters Filters
	results []models.EntrepreneurPublic
	loading bool
	loaded  bool
}

// New creates an empty directory bound to the API client.
func New(api *apiclient.Client) *Component {
	return &Component{api: api}
}

// SetSearch records the free-text query.
func (c *Component) SetSearch(query string) {
	c.mu.Lock()
	c.search = query
	c.mu.Unlock()
}

// SetLocation records the country filter and always clears the city, since
// the city choices depend on the country. The "all" sentinel unsets both.
func (c *Component) SetLocation(countryCode string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if countryCode == AllLocations {
		countryCode = ""
	}
	c.filters.Location = countryCode
	c.filters.City = ""
}

// SetCity records the city filter. It only makes sense with a country set.
func (c *Component) SetCity(city string) {
	c.mu.Lock()
	c.filters.City = city
	c.mu.Unlock()
}

// SetProfileType records the profile-type filter. "all" unsets it.
func (c *Component) SetProfileType(profileType string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if profileType == AllLocations {
		profileType = ""
	}
	c.filters.ProfileType = profileType
}

// SetMinRating records the minimum rating filter. Zero unsets it.
func (c *Component) SetMinRating(rating float64) {
	c.mu.Lock()
	c.filters.MinRating = rating
	c.mu.Unlock()
}

// ClearFilters resets every filter but keeps the free-text query.
func (c *Component) ClearFilters() {
	c.mu.Lock()
	c.filters = Filters{}
	c.mu.Unlock()
}

// Filters returns the active filter values.
func (c *Component) Filters() Filters {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters
}

// Search runs exactly one listing request with the current query and filters
// and replaces the result set with whatever came back.
func (c *Component) Search(ctx context.Context) error {
	c.mu.Lock()
	q := apiclient.ListQuery{
		Search:      c.search,
		Location:    c.filters.Location,
		City:        c.filters.City,
		ProfileType: c.filters.ProfileType,
		MinRating:   c.filters.MinRating,
		Limit:       resultLimit,
	}
	c.loading = true
	c.mu.Unlock()

	results, err := c.api.ListEntrepreneurs(ctx, q)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		return err
	}
	c.results = results
	c.loaded = true
	return nil
}

// Results returns the last result set, verbatim from the backend.
func (c *Component) Results() []models.EntrepreneurPublic {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.results
}

// Loading reports whether a listing request is in flight.
func (c *Component) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Empty reports whether a completed fetch returned zero results. It is false
// while loading and before the first fetch, so the caller can distinguish
// "no results" from "not searched yet".
func (c *Component) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded && !c.loading && len(c.results) == 0
}

// RevealWhatsApp fetches one listing's contact info and returns a wa.me
// deep-link. Contact data is fetched on every call, never cached.
func (c *Component) RevealWhatsApp(ctx context.Context, id string) (string, error) {
	info, err := c.api.RevealContact(ctx, id)
	if err != nil {
		return "", err
	}
	number := nonDigits.ReplaceAllString(info.Whatsapp, "")
	return "https://wa.me/" + number, nil
}

// RevealEmail fetches one listing's contact info and returns a mailto link.
func (c *Component) RevealEmail(ctx context.Context, id string) (string, error) {
	info, err := c.api.RevealContact(ctx, id)
	if err != nil {
		return "", err
	}
	return "mailto:" + info.Email, nil
}
