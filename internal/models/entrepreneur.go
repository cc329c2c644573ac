package models

import "time"

const (
	// MaxDescriptionLength is the hard cap on profile descriptions.
	MaxDescriptionLength = 200
	// MaxTags is the maximum number of skill tags on a profile.
	MaxTags = 5
	// MaxLogoBytes is the inline logo size cap (2 MB).
	MaxLogoBytes = 2 * 1024 * 1024
)

// PortfolioItem is an image or external link attached to a profile.
type PortfolioItem struct {
	Type  string `bson:"type" json:"type"` // "image" or "link"
	Value string `bson:"value" json:"value"`
}

// EntrepreneurCreate is the payload accepted by the create/update endpoints:
// a completed wizard draft sent whole.
type EntrepreneurCreate struct {
	ProfileType  string          `json:"profileType"`
	FirstName    string          `json:"firstName,omitempty"`
	LastName     string          `json:"lastName,omitempty"`
	CompanyName  string          `json:"companyName,omitempty"`
	ActivityName string          `json:"activityName,omitempty"`
	Logo         string          `json:"logo,omitempty"` // data URI or URL
	Description  string          `json:"description"`
	Tags         []string        `json:"tags"`
	Phone        string          `json:"phone"`
	Whatsapp     string          `json:"whatsapp"`
	Email        string          `json:"email"`
	Location     string          `json:"location"` // country code
	City         string          `json:"city"`
	Website      string          `json:"website,omitempty"`
	Portfolio    []PortfolioItem `json:"portfolio,omitempty"`
}

// Entrepreneur is the persisted profile record, owned by the backend once
// published. Contact fields live here but are projected out of listings.
type Entrepreneur struct {
	ID           string          `bson:"id" json:"id"`
	UserID       string          `bson:"userId" json:"userId"`
	ProfileType  string          `bson:"profileType" json:"profileType"`
	FirstName    string          `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName     string          `bson:"lastName,omitempty" json:"lastName,omitempty"`
	CompanyName  string          `bson:"companyName,omitempty" json:"companyName,omitempty"`
	ActivityName string          `bson:"activityName,omitempty" json:"activityName,omitempty"`
	Logo         string          `bson:"logo,omitempty" json:"logo,omitempty"`
	Description  string          `bson:"description" json:"description"`
	Tags         []string        `bson:"tags" json:"tags"`
	Phone        string          `bson:"phone" json:"phone"`
	Whatsapp     string          `bson:"whatsapp" json:"whatsapp"`
	Email        string          `bson:"email" json:"email"`
	Location     string          `bson:"location" json:"location"`
	City         string          `bson:"city" json:"city"`
	Website      string          `bson:"website,omitempty" json:"website,omitempty"`
	Portfolio    []PortfolioItem `bson:"portfolio,omitempty" json:"portfolio,omitempty"`
	Rating       float64         `bson:"rating" json:"rating"`
	ReviewCount  int             `bson:"reviewCount" json:"reviewCount"`
	IsPremium    bool            `bson:"isPremium" json:"isPremium"`
	CreatedAt    time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// EntrepreneurPublic is the directory listing projection: everything except the
// raw contact fields, which are fetched separately on demand.
type EntrepreneurPublic struct {
	ID           string          `bson:"id" json:"id"`
	ProfileType  string          `bson:"profileType" json:"profileType"`
	FirstName    string          `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName     string          `bson:"lastName,omitempty" json:"lastName,omitempty"`
	CompanyName  string          `bson:"companyName,omitempty" json:"companyName,omitempty"`
	ActivityName string          `bson:"activityName,omitempty" json:"activityName,omitempty"`
	Logo         string          `bson:"logo,omitempty" json:"logo,omitempty"`
	Description  string          `bson:"description" json:"description"`
	Tags         []string        `bson:"tags" json:"tags"`
	Location     string          `bson:"location" json:"location"`
	City         string          `bson:"city" json:"city"`
	Website      string          `bson:"website,omitempty" json:"website,omitempty"`
	Portfolio    []PortfolioItem `bson:"portfolio,omitempty" json:"portfolio,omitempty"`
	Rating       float64         `bson:"rating" json:"rating"`
	ReviewCount  int             `bson:"reviewCount" json:"reviewCount"`
	IsPremium    bool            `bson:"isPremium" json:"isPremium"`
	CreatedAt    time.Time       `bson:"createdAt" json:"createdAt"`
}

// ContactInfo is the on-demand contact reveal payload.
type ContactInfo struct {
	Phone    string `bson:"phone" json:"phone"`
	Whatsapp string `bson:"whatsapp" json:"whatsapp"`
	Email    string `bson:"email" json:"email"`
}

// Stats are the aggregate counters shown on the landing page.
type Stats struct {
	TotalUsers    int64 `json:"totalUsers"`
	TotalProfiles int64 `json:"totalProfiles"`
	TotalViews    int64 `json:"totalViews"`
	TotalProblems int64 `json:"totalProblems"`
}
