package domain

import "strings"

// User is the profile entity returned by the API
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profileImage"` // Stored filename, resolve with adapter.UploadURL
}

// IsEmpty reports whether u is the empty entity {}
func (u User) IsEmpty() bool {
	return u == User{}
}

// Photo is a single published photo
type Photo struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Image    string `json:"image"`  // Stored filename, resolve with adapter.UploadURL
	UserID   string `json:"userId"` // Owner
	UserName string `json:"userName,omitempty"`
}

// ProfileUpdate carries the fields edited by the profile owner.
// Empty fields are left out of the request.
type ProfileUpdate struct {
	Name      string
	Bio       string
	Password  string
	ImagePath string // Local file to upload as the new profile image
}

// IsEmpty reports whether no field was edited
func (p ProfileUpdate) IsEmpty() bool {
	return strings.TrimSpace(p.Name) == "" &&
		strings.TrimSpace(p.Bio) == "" &&
		p.Password == "" &&
		strings.TrimSpace(p.ImagePath) == ""
}

// NewPhoto is the input for publishing a photo
type NewPhoto struct {
	Title     string
	ImagePath string
}

// PhotoPatch is the partial update sent when retitling a photo.
// The image is never re-submitted.
type PhotoPatch struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
