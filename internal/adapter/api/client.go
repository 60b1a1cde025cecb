package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/mmcdole/foto/internal/domain"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultPhotoField = "image"
	userAgent         = "foto/1.0"
	legacyPhotoValue  = "undefined"
)

// Client implements domain.UserRepository and domain.PhotoRepository
// against the photo-sharing REST API
type Client struct {
	baseURL          string
	httpClient       *http.Client
	fs               afero.Fs
	photoField       string
	legacyPhotoField bool
	logger           *slog.Logger
}

var (
	_ domain.UserRepository  = (*Client)(nil)
	_ domain.PhotoRepository = (*Client)(nil)
)

// Options tune the client; zero values pick defaults
type Options struct {
	Timeout          time.Duration
	PhotoField       string   // multipart field for the image file
	LegacyPhotoField bool     // also send the "photo" text field
	Fs               afero.Fs // source of upload files, OS filesystem when nil
	Logger           *slog.Logger
}

// NewClient creates a new API client rooted at baseURL (e.g. http://host/api)
func NewClient(baseURL string, opts Options) *Client {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if strings.TrimSpace(opts.PhotoField) == "" {
		opts.PhotoField = defaultPhotoField
	}
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		fs:               opts.Fs,
		photoField:       opts.PhotoField,
		legacyPhotoField: opts.LegacyPhotoField,
		logger:           opts.Logger,
	}
}

// request describes one API call
type request struct {
	op          string // logical operation, used in errors
	method      string
	path        string
	token       string
	body        io.Reader
	contentType string
}

// doRequest performs the HTTP exchange and classifies failures.
// A body carrying a non-empty "errors" list is a ValidationError whatever
// the status code.
func (c *Client) doRequest(ctx context.Context, r request) ([]byte, error) {
	reqURL := c.baseURL + r.path

	req, err := http.NewRequestWithContext(ctx, r.method, reqURL, r.body)
	if err != nil {
		return nil, &domain.RequestFailure{Op: r.op, Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	c.logger.Debug("api request", "method", r.method, "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("api request failed", "op", r.op, "error", err)
		return nil, &domain.RequestFailure{Op: r.op, Err: fmt.Errorf("%w: %v", domain.ErrServerOffline, err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.RequestFailure{Op: r.op, Status: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if verr := parseErrorList(body); verr != nil {
		c.logger.Debug("api validation error", "op", r.op, "status", resp.StatusCode, "errors", verr.Errors)
		return nil, verr
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, &domain.RequestFailure{Op: r.op, Status: resp.StatusCode, Err: domain.ErrAuthFailed}
	case resp.StatusCode == http.StatusNotFound:
		return nil, &domain.RequestFailure{Op: r.op, Status: resp.StatusCode, Err: domain.ErrNotFound}
	case resp.StatusCode >= http.StatusBadRequest:
		c.logger.Error("api request error", "op", r.op, "status", resp.StatusCode, "body", string(body))
		return nil, &domain.RequestFailure{Op: r.op, Status: resp.StatusCode, Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
	}

	return body, nil
}

// parseErrorList returns a ValidationError when body is {"errors": [..non-empty..]}
func parseErrorList(body []byte) *domain.ValidationError {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}
	var list errorList
	if err := json.Unmarshal(trimmed, &list); err != nil || len(list.Errors) == 0 {
		return nil
	}
	return &domain.ValidationError{Errors: list.Errors}
}

func decode(op string, body []byte, dest interface{}) error {
	if err := json.Unmarshal(body, dest); err != nil {
		return &domain.RequestFailure{Op: op, Err: fmt.Errorf("failed to parse response: %w", err)}
	}
	return nil
}

// GetUser returns the public profile of a user
func (c *Client) GetUser(ctx context.Context, id string) (domain.User, error) {
	op := "GET /users/{id}"
	body, err := c.doRequest(ctx, request{
		op:     op,
		method: http.MethodGet,
		path:   "/users/" + url.PathEscape(id),
	})
	if err != nil {
		return domain.User{}, err
	}

	var dto userDTO
	if err := decode(op, body, &dto); err != nil {
		return domain.User{}, err
	}
	return mapUser(dto), nil
}

// UpdateProfile sends the edited fields as multipart form data
func (c *Client) UpdateProfile(ctx context.Context, token string, fields domain.ProfileUpdate) (domain.User, error) {
	op := "PUT /users/profile"
	form, err := c.profileForm(fields)
	if err != nil {
		return domain.User{}, &domain.RequestFailure{Op: op, Err: err}
	}

	body, err := c.doRequest(ctx, request{
		op:          op,
		method:      http.MethodPut,
		path:        "/users/profile",
		token:       token,
		body:        form.body,
		contentType: form.contentType,
	})
	if err != nil {
		return domain.User{}, err
	}

	var dto userDTO
	if err := decode(op, body, &dto); err != nil {
		return domain.User{}, err
	}
	return mapUser(dto), nil
}

// DeleteProfile removes the session owner's account
func (c *Client) DeleteProfile(ctx context.Context, token string) error {
	_, err := c.doRequest(ctx, request{
		op:     "DELETE /users/profile",
		method: http.MethodDelete,
		path:   "/users/profile",
		token:  token,
	})
	return err
}

// GetUserPhotos returns a user's photos in server order
func (c *Client) GetUserPhotos(ctx context.Context, token, userID string) ([]domain.Photo, error) {
	op := "GET /users/{id}/photos"
	body, err := c.doRequest(ctx, request{
		op:     op,
		method: http.MethodGet,
		path:   "/users/" + url.PathEscape(userID) + "/photos",
		token:  token,
	})
	if err != nil {
		return nil, err
	}

	var dtos []photoDTO
	if err := decode(op, body, &dtos); err != nil {
		return nil, err
	}
	return mapPhotos(dtos), nil
}

// PublishPhoto uploads a new photo as multipart form data
func (c *Client) PublishPhoto(ctx context.Context, token string, photo domain.NewPhoto) (domain.Photo, error) {
	op := "POST /photos"
	form, err := c.photoForm(photo)
	if err != nil {
		return domain.Photo{}, &domain.RequestFailure{Op: op, Err: err}
	}

	body, err := c.doRequest(ctx, request{
		op:          op,
		method:      http.MethodPost,
		path:        "/photos",
		token:       token,
		body:        form.body,
		contentType: form.contentType,
	})
	if err != nil {
		return domain.Photo{}, err
	}

	var env photoEnvelope
	if err := decode(op, body, &env); err != nil {
		return domain.Photo{}, err
	}
	return mapEnvelope(env), nil
}

// UpdatePhoto retitles a photo; the image is not re-submitted
func (c *Client) UpdatePhoto(ctx context.Context, token string, patch domain.PhotoPatch) (domain.Photo, error) {
	op := "PUT /photos/{id}"
	payload, err := json.Marshal(updatePhotoRequest{Title: patch.Title, ID: patch.ID})
	if err != nil {
		return domain.Photo{}, &domain.RequestFailure{Op: op, Err: err}
	}

	body, err := c.doRequest(ctx, request{
		op:          op,
		method:      http.MethodPut,
		path:        "/photos/" + url.PathEscape(patch.ID),
		token:       token,
		body:        bytes.NewReader(payload),
		contentType: "application/json",
	})
	if err != nil {
		return domain.Photo{}, err
	}

	var env photoEnvelope
	if err := decode(op, body, &env); err != nil {
		return domain.Photo{}, err
	}
	updated := mapEnvelope(env)
	if updated.ID == "" {
		// Some servers only answer with a message; the request is the truth then
		updated.ID = patch.ID
		updated.Title = patch.Title
	}
	return updated, nil
}

// DeletePhoto removes a photo
func (c *Client) DeletePhoto(ctx context.Context, token, id string) error {
	_, err := c.doRequest(ctx, request{
		op:     "DELETE /photos/{id}",
		method: http.MethodDelete,
		path:   "/photos/" + url.PathEscape(id),
		token:  token,
	})
	return err
}
