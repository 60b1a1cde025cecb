package state

import "github.com/mmcdole/foto/internal/domain"

// Completion messages. Each carries the request ID it was dispatched with
// and Err when the remote call failed.

// ProfileLoadedMsg completes FetchProfile
type ProfileLoadedMsg struct {
	RequestID string
	UserID    string
	User      domain.User
	Err       error
}

// ProfileUpdatedMsg completes UpdateProfile
type ProfileUpdatedMsg struct {
	RequestID string
	User      domain.User
	Err       error
}

// ProfileDeletedMsg completes DeleteProfile
type ProfileDeletedMsg struct {
	RequestID string
	UserID    string
	Err       error
}

// PhotosLoadedMsg completes FetchPhotos
type PhotosLoadedMsg struct {
	RequestID string
	OwnerID   string
	Photos    []domain.Photo
	Err       error
}

// PhotoPublishedMsg completes PublishPhoto
type PhotoPublishedMsg struct {
	RequestID string
	Photo     domain.Photo
	Err       error
}

// PhotoUpdatedMsg completes UpdatePhoto
type PhotoUpdatedMsg struct {
	RequestID string
	Patch     domain.PhotoPatch
	Photo     domain.Photo
	Err       error
}

// PhotoDeletedMsg completes DeletePhoto
type PhotoDeletedMsg struct {
	RequestID string
	PhotoID   string
	Err       error
}
