package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Hop-Syder/nexus-connect-t4/internal/database"
	"github.com/Hop-Syder/nexus-connect-t4/internal/models"
	"github.com/Hop-Syder/nexus-connect-t4/internal/taxonomy"
)

// ErrAlreadyHasProfile is returned when a user tries to publish a second profile.
var ErrAlreadyHasProfile = errors.New("user already has a profile")

// ErrNotFound is returned when no entrepreneur matches the given id.
var ErrNotFound = errors.New("entrepreneur not found")

// profileViewsKey is the Redis counter behind the totalViews stat.
const profileViewsKey = "stats:profile_views"

// ListParams are the directory list/filter parameters. Empty fields are
// unfiltered; the backend ANDs every populated filter.
type ListParams struct {
	Search      string
	Location    string
	City        string
	ProfileType string
	Tags        []string
	MinRating   float64
	Sort        string // createdAt (default), rating, relevance
	Limit       int64
	Skip        int64
}

// BuildListFilter translates list parameters into a Mongo filter document.
// Free-text search is a case-insensitive OR across the name, company, activity
// and description fields.
func BuildListFilter(p ListParams) bson.M {
	filter := bson.M{}

	if p.Search != "" {
		regex := bson.M{"$regex": p.Search, "$options": "i"}
		filter["$or"] = bson.A{
			bson.M{"firstName": regex},
			bson.M{"lastName": regex},
			bson.M{"companyName": regex},
			bson.M{"activityName": regex},
			bson.M{"description": regex},
		}
	}
	if p.Location != "" {
		filter["location"] = p.Location
	}
	if p.City != "" {
		filter["city"] = p.City
	}
	if p.ProfileType != "" {
		filter["profileType"] = p.ProfileType
	}
	if len(p.Tags) > 0 {
		filter["tags"] = bson.M{"$in": p.Tags}
	}
	if p.MinRating > 0 {
		filter["rating"] = bson.M{"$gte": p.MinRating}
	}

	return filter
}

// sortSpec picks the sort field for a list query. Relevance falls back to
// rating until text scoring is wired to a text index.
func sortSpec(p ListParams) bson.D {
	field := "createdAt"
	if p.Sort == "rating" || (p.Sort == "relevance" && p.Search != "") {
		field = "rating"
	}
	return bson.D{{Key: field, Value: -1}}
}

// ValidateProfile re-checks every draft invariant server-side. Client-side
// wizard checks are UX only.
func ValidateProfile(in *models.EntrepreneurCreate) error {
	if !taxonomy.IsValidProfileType(in.ProfileType) {
		return fmt.Errorf("invalid profile type %q", in.ProfileType)
	}
	if in.Description == "" || len([]rune(in.Description)) > models.MaxDescriptionLength {
		return fmt.Errorf("description is required and must be %d characters or less", models.MaxDescriptionLength)
	}
	if len(in.Tags) == 0 || len(in.Tags) > models.MaxTags {
		return fmt.Errorf("between 1 and %d tags are required", models.MaxTags)
	}
	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return errors.New("first name and last name are required")
	}
	if in.Phone == "" || in.Whatsapp == "" || in.Email == "" {
		return errors.New("phone, whatsapp and email are required")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return errors.New("invalid email address")
	}
	if _, ok := taxonomy.Countries[in.Location]; !ok {
		return fmt.Errorf("unknown country code %q", in.Location)
	}
	if !taxonomy.IsValidCity(in.Location, in.City) {
		return fmt.Errorf("city %q does not belong to country %q", in.City, in.Location)
	}
	if logoSize(in.Logo) > models.MaxLogoBytes {
		return errors.New("logo exceeds the 2MB limit")
	}
	for _, item := range in.Portfolio {
		if item.Type != "image" && item.Type != "link" {
			return fmt.Errorf("invalid portfolio item type %q", item.Type)
		}
	}
	return nil
}

// logoSize returns the byte size of the image behind a logo value. Inline
// data URIs are measured by their decoded payload, not the base64 string, so
// the cap matches what the client measured before encoding. Plain URLs carry
// no payload.
func logoSize(logo string) int {
	if !strings.HasPrefix(logo, "data:") {
		return 0
	}
	idx := strings.Index(logo, ";base64,")
	if idx < 0 {
		return len(logo)
	}
	payload := logo[idx+len(";base64,"):]
	size := len(payload) / 4 * 3
	if strings.HasSuffix(payload, "==") {
		size -= 2
	} else if strings.HasSuffix(payload, "=") {
		size--
	}
	return size
}

// CreateEntrepreneur persists a completed wizard draft as a published profile
// and flips the owner's hasProfile flag. One profile per user.
func CreateEntrepreneur(ctx context.Context, userID string, in *models.EntrepreneurCreate) (*models.Entrepreneur, error) {
	if err := ValidateProfile(in); err != nil {
		return nil, err
	}

	col := database.DB.Collection(database.EntrepreneursCollection)
	if err := col.FindOne(ctx, bson.M{"userId": userID}).Err(); err == nil {
		return nil, ErrAlreadyHasProfile
	} else if err != mongo.ErrNoDocuments {
		return nil, err
	}

	now := time.Now().UTC()
	ent := &models.Entrepreneur{
		ID:           uuid.NewString(),
		UserID:       userID,
		ProfileType:  in.ProfileType,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		CompanyName:  in.CompanyName,
		ActivityName: in.ActivityName,
		Logo:         in.Logo,
		Description:  in.Description,
		Tags:         in.Tags,
		Phone:        in.Phone,
		Whatsapp:     in.Whatsapp,
		Email:        in.Email,
		Location:     in.Location,
		City:         in.City,
		Website:      in.Website,
		Portfolio:    in.Portfolio,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := col.InsertOne(ctx, ent); err != nil {
		return nil, err
	}

	users := database.DB.Collection(database.UsersCollection)
	if _, err := users.UpdateOne(ctx, bson.M{"id": userID}, bson.M{"$set": bson.M{"hasProfile": true}}); err != nil {
		return nil, err
	}

	// Published profiles change the landing-page counters
	Cache.Delete(ctx, "stats")

	return ent, nil
}

// ListEntrepreneurs runs a directory query with contact fields projected out.
func ListEntrepreneurs(ctx context.Context, p ListParams) ([]models.EntrepreneurPublic, error) {
	if p.Limit <= 0 || p.Limit > 50 {
		p.Limit = 50
	}

	opts := options.Find().
		SetProjection(bson.M{"_id": 0, "phone": 0, "whatsapp": 0, "email": 0, "userId": 0}).
		SetSort(sortSpec(p)).
		SetSkip(p.Skip).
		SetLimit(p.Limit)

	cursor, err := database.DB.Collection(database.EntrepreneursCollection).Find(ctx, BuildListFilter(p), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := make([]models.EntrepreneurPublic, 0, p.Limit)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// GetEntrepreneur fetches one public profile and counts the view.
func GetEntrepreneur(ctx context.Context, id string) (*models.EntrepreneurPublic, error) {
	opts := options.FindOne().SetProjection(bson.M{"_id": 0, "phone": 0, "whatsapp": 0, "email": 0, "userId": 0})

	var ent models.EntrepreneurPublic
	err := database.DB.Collection(database.EntrepreneursCollection).
		FindOne(ctx, bson.M{"id": id}, opts).Decode(&ent)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	// Best effort; a failed counter must not fail the read
	database.RedisClient.Incr(ctx, profileViewsKey)

	return &ent, nil
}

// GetContactInfo returns the contact fields of exactly one listing. This is
// the only path that exposes them.
func GetContactInfo(ctx context.Context, id string) (*models.ContactInfo, error) {
	opts := options.FindOne().SetProjection(bson.M{"_id": 0, "phone": 1, "whatsapp": 1, "email": 1})

	var info models.ContactInfo
	err := database.DB.Collection(database.EntrepreneursCollection).
		FindOne(ctx, bson.M{"id": id}, opts).Decode(&info)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// GetEntrepreneurByUser returns the full profile owned by a user.
func GetEntrepreneurByUser(ctx context.Context, userID string) (*models.Entrepreneur, error) {
	var ent models.Entrepreneur
	err := database.DB.Collection(database.EntrepreneursCollection).
		FindOne(ctx, bson.M{"userId": userID}, options.FindOne().SetProjection(bson.M{"_id": 0})).Decode(&ent)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &ent, nil
}

// UpdateEntrepreneur replaces an existing profile's editable fields. Only the
// owner may update.
func UpdateEntrepreneur(ctx context.Context, id, userID string, in *models.EntrepreneurCreate) (*models.Entrepreneur, error) {
	if err := ValidateProfile(in); err != nil {
		return nil, err
	}

	col := database.DB.Collection(database.EntrepreneursCollection)

	var existing models.Entrepreneur
	err := col.FindOne(ctx, bson.M{"id": id}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if existing.UserID != userID {
		return nil, errors.New("not authorized to update this profile")
	}

	update := bson.M{
		"profileType":  in.ProfileType,
		"firstName":    in.FirstName,
		"lastName":     in.LastName,
		"companyName":  in.CompanyName,
		"activityName": in.ActivityName,
		"logo":         in.Logo,
		"description":  in.Description,
		"tags":         in.Tags,
		"phone":        in.Phone,
		"whatsapp":     in.Whatsapp,
		"email":        in.Email,
		"location":     in.Location,
		"city":         in.City,
		"website":      in.Website,
		"portfolio":    in.Portfolio,
		"updatedAt":    time.Now().UTC(),
	}
	if _, err := col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": update}); err != nil {
		return nil, err
	}

	var updated models.Entrepreneur
	if err := col.FindOne(ctx, bson.M{"id": id}, options.FindOne().SetProjection(bson.M{"_id": 0})).Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// GetStats returns the landing-page counters, served from the Redis cache when
// fresh.
func GetStats(ctx context.Context) (*models.Stats, error) {
	var stats models.Stats
	if hit, _ := Cache.Get(ctx, "stats", &stats); hit {
		return &stats, nil
	}

	users, err := database.DB.Collection(database.UsersCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	profiles, err := database.DB.Collection(database.EntrepreneursCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	views, _ := database.RedisClient.Get(ctx, profileViewsKey).Int64()

	stats = models.Stats{
		TotalUsers:    users,
		TotalProfiles: profiles,
		TotalViews:    views,
	}
	Cache.Set(ctx, "stats", &stats, StatsCacheTTL)
	return &stats, nil
}

// SplitName splits a provider display name into first and last components.
func SplitName(name string) (first, last string) {
	parts := strings.SplitN(strings.TrimSpace(name), " ", 2)
	if len(parts) > 0 {
		first = parts[0]
	}
	if len(parts) > 1 {
		last = parts[1]
	}
	return first, last
}
