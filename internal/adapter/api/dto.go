package api

// userDTO mirrors a user document as returned by the API
type userDTO struct {
	MongoID      string `json:"_id"`
	ID           string `json:"id"`
	Name         string `json:"name"`
	Bio          string `json:"bio"`
	ProfileImage string `json:"profileImage"`
}

// photoDTO mirrors a photo document as returned by the API
type photoDTO struct {
	MongoID  string `json:"_id"`
	ID       string `json:"id"`
	Title    string `json:"title"`
	Image    string `json:"image"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
}

// photoEnvelope covers responses that wrap the photo next to a message,
// e.g. {"photo": {...}, "message": "..."}
type photoEnvelope struct {
	Photo   *photoDTO `json:"photo"`
	Message string    `json:"message"`
	photoDTO
}

// errorList is the validation failure shape: {"errors": ["...", ...]}
type errorList struct {
	Errors []string `json:"errors"`
}

// updatePhotoRequest is the PUT /photos/{id} body
type updatePhotoRequest struct {
	Title string `json:"title"`
	ID    string `json:"id"`
}
