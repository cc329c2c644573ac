package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Hop-Syder/nexus-connect-t4/internal/database"
	"github.com/Hop-Syder/nexus-connect-t4/internal/models"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// FindUserByID looks a user up by application id.
func FindUserByID(ctx context.Context, id string) (*models.User, error) {
	return findUser(ctx, bson.M{"id": id})
}

// FindUserByEmail looks a user up by email.
func FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return findUser(ctx, bson.M{"email": email})
}

func findUser(ctx context.Context, filter bson.M) (*models.User, error) {
	var user models.User
	err := database.DB.Collection(database.UsersCollection).
		FindOne(ctx, filter, options.FindOne().SetProjection(bson.M{"_id": 0})).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a new identity record. passwordHash may be empty for
// provider-only accounts.
func CreateUser(ctx context.Context, email, passwordHash, firstName, lastName, googleID string) (*models.User, error) {
	user := &models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Password:  passwordHash,
		FirstName: firstName,
		LastName:  lastName,
		GoogleID:  googleID,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := database.DB.Collection(database.UsersCollection).InsertOne(ctx, user); err != nil {
		return nil, err
	}
	Cache.Delete(ctx, "stats")
	return user, nil
}

// SetGoogleID records the provider uid on an existing account the first time
// the user signs in through the provider.
func SetGoogleID(ctx context.Context, userID, googleID string) error {
	_, err := database.DB.Collection(database.UsersCollection).
		UpdateOne(ctx, bson.M{"id": userID}, bson.M{"$set": bson.M{"googleId": googleID}})
	return err
}
