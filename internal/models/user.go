package models

import "time"

// User is the identity record stored in MongoDB. IDs are application-generated
// UUID strings kept in the "id" field (Mongo's _id is left to the driver).
type User struct {
	ID         string    `bson:"id" json:"id"`
	Email      string    `bson:"email" json:"email"`
	Password   string    `bson:"password" json:"-"` // argon2id hash; empty for provider-only accounts
	FirstName  string    `bson:"firstName,omitempty" json:"firstName,omitempty"`
	LastName   string    `bson:"lastName,omitempty" json:"lastName,omitempty"`
	GoogleID   string    `bson:"googleId,omitempty" json:"-"`
	HasProfile bool      `bson:"hasProfile" json:"hasProfile"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// UserResponse is the public view of a user returned by the auth endpoints.
type UserResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
	HasProfile bool   `json:"hasProfile"`
}

// Public returns the response projection of a user.
func (u *User) Public() UserResponse {
	return UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		HasProfile: u.HasProfile,
	}
}

// TokenResponse is returned after a successful credential exchange: the bearer
// token plus the user it belongs to.
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
}
