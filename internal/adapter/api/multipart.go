package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"

	"github.com/mmcdole/foto/internal/domain"
)

// profileImageField is the multipart field for a new profile image
const profileImageField = "profileImage"

// formPayload is an encoded multipart body
type formPayload struct {
	body        io.Reader
	contentType string
}

// photoForm builds the POST /photos body: the title, the image file under
// the configured field and, in legacy mode, the extra "photo" text field.
// With no image path the file part is left out and the server decides.
func (c *Client) photoForm(p domain.NewPhoto) (formPayload, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("title", p.Title); err != nil {
		return formPayload{}, fmt.Errorf("failed to write title field: %w", err)
	}
	if path := strings.TrimSpace(p.ImagePath); path != "" {
		if err := writeFile(w, c.fs, c.photoField, path); err != nil {
			return formPayload{}, err
		}
	}
	if c.legacyPhotoField {
		if err := w.WriteField("photo", legacyPhotoValue); err != nil {
			return formPayload{}, fmt.Errorf("failed to write photo field: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return formPayload{}, fmt.Errorf("failed to close multipart body: %w", err)
	}

	return formPayload{body: &buf, contentType: w.FormDataContentType()}, nil
}

// profileForm builds the PUT /users/profile body from the edited fields
func (c *Client) profileForm(f domain.ProfileUpdate) (formPayload, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := []struct{ key, value string }{
		{"name", strings.TrimSpace(f.Name)},
		{"bio", strings.TrimSpace(f.Bio)},
		{"password", f.Password},
	}
	for _, field := range fields {
		if field.value == "" {
			continue
		}
		if err := w.WriteField(field.key, field.value); err != nil {
			return formPayload{}, fmt.Errorf("failed to write %s field: %w", field.key, err)
		}
	}
	if path := strings.TrimSpace(f.ImagePath); path != "" {
		if err := writeFile(w, c.fs, profileImageField, path); err != nil {
			return formPayload{}, err
		}
	}
	if err := w.Close(); err != nil {
		return formPayload{}, fmt.Errorf("failed to close multipart body: %w", err)
	}

	return formPayload{body: &buf, contentType: w.FormDataContentType()}, nil
}

// writeFile adds a file part with a sniffed Content-Type
func writeFile(w *multipart.Writer, fs afero.Fs, field, path string) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("failed to read image %s: %w", path, err)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filepath.Base(path)))
	header.Set("Content-Type", mimetype.Detect(data).String())

	part, err := w.CreatePart(header)
	if err != nil {
		return fmt.Errorf("failed to create %s part: %w", field, err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("failed to write %s part: %w", field, err)
	}
	return nil
}
