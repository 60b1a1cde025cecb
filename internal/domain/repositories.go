package domain

import (
	"context"
)

// UserRepository provides access to user profiles
type UserRepository interface {
	// GetUser returns the public profile of a user (GET /users/{id})
	GetUser(ctx context.Context, id string) (User, error)

	// UpdateProfile writes the session owner's profile and returns the
	// server's representation (PUT /users/profile)
	UpdateProfile(ctx context.Context, token string, fields ProfileUpdate) (User, error)

	// DeleteProfile removes the session owner's account (DELETE /users/profile)
	DeleteProfile(ctx context.Context, token string) error
}

// PhotoRepository provides access to a user's photos
type PhotoRepository interface {
	// GetUserPhotos returns the photos of a user in server order (GET /users/{id}/photos)
	GetUserPhotos(ctx context.Context, token, userID string) ([]Photo, error)

	// PublishPhoto uploads a new photo (POST /photos)
	PublishPhoto(ctx context.Context, token string, photo NewPhoto) (Photo, error)

	// UpdatePhoto retitles a photo (PUT /photos/{id})
	UpdatePhoto(ctx context.Context, token string, patch PhotoPatch) (Photo, error)

	// DeletePhoto removes a photo (DELETE /photos/{id})
	DeletePhoto(ctx context.Context, token, id string) error
}

// Session supplies the opaque bearer token and the identity it belongs to.
// The token is forwarded unchanged; it is never parsed or refreshed.
type Session interface {
	Token() string
	UserID() string

	// Clear forgets the local session context (after account deletion)
	Clear() error
}
