package domain

// Store handles the local cache (BoltDB + memory).
// It only ever holds the last successfully fetched server state and is
// read once on startup to seed the in-memory stores.
type Store interface {
	// === Profiles ===
	GetProfile(userID string) (User, bool)
	SaveProfile(user User) error
	InvalidateProfile(userID string)

	// === Photos (keyed by owner) ===
	GetPhotos(ownerID string) ([]Photo, bool)
	SavePhotos(ownerID string, photos []Photo) error
	InvalidatePhotos(ownerID string)

	InvalidateAll()

	Close() error
}
