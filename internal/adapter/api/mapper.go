package api

import "github.com/mmcdole/foto/internal/domain"

// firstNonEmpty prefers the document id (_id) over a plain id field
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// mapUser converts a user document to a domain user
func mapUser(d userDTO) domain.User {
	return domain.User{
		ID:           firstNonEmpty(d.MongoID, d.ID),
		Name:         d.Name,
		Bio:          d.Bio,
		ProfileImage: d.ProfileImage,
	}
}

func mapPhoto(d photoDTO) domain.Photo {
	return domain.Photo{
		ID:       firstNonEmpty(d.MongoID, d.ID),
		Title:    d.Title,
		Image:    d.Image,
		UserID:   d.UserID,
		UserName: d.UserName,
	}
}

// mapPhotos keeps server order
func mapPhotos(ds []photoDTO) []domain.Photo {
	photos := make([]domain.Photo, 0, len(ds))
	for _, d := range ds {
		photos = append(photos, mapPhoto(d))
	}
	return photos
}

func mapEnvelope(e photoEnvelope) domain.Photo {
	if e.Photo != nil {
		return mapPhoto(*e.Photo)
	}
	return mapPhoto(e.photoDTO)
}
