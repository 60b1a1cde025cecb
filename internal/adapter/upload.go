package adapter

import "strings"

// Upload categories used by the API's static file server
const (
	UploadUsers  = "users"
	UploadPhotos = "photos"
)

// UploadURL resolves a stored image filename to its display URL:
// base + "/" + category + "/" + filename.
// Returns "" when there is no filename.
func UploadURL(base, category, filename string) string {
	if filename == "" {
		return ""
	}
	return strings.TrimRight(base, "/") + "/" + category + "/" + filename
}
