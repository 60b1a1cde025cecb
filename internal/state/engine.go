package state

import (
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/mmcdole/foto/internal/domain"
)

// Operator-facing texts
const (
	GenericFailure = "Something went wrong. Please try again."

	ProfileUpdatedText = "Profile updated successfully!"
	AccountDeletedText = "Account deleted successfully!"
	PhotoPublishedText = "Photo published successfully!"
	PhotoUpdatedText   = "Photo updated successfully!"
	PhotoDeletedText   = "Photo deleted successfully!"
)

const defaultTimeout = 30 * time.Second

// ErrorText returns what the operator sees for err: the first server
// validation error, or GenericFailure for anything else.
func ErrorText(err error) string {
	if err == nil {
		return ""
	}
	if verr, ok := domain.AsValidation(err); ok {
		return verr.First()
	}
	return GenericFailure
}

// Options configure an Engine
type Options struct {
	Users   domain.UserRepository
	Photos  domain.PhotoRepository
	Session domain.Session
	Cache   domain.Store // optional

	Timeout      time.Duration // per remote call, default 30s
	MessageDelay time.Duration // transient message lifetime, default 2s
	Logger       *slog.Logger

	// NewRequestID overrides request ID generation, uuid by default
	NewRequestID func() string
}

// Engine owns the profile screen state. Dispatch methods and Update must
// be called from the Bubble Tea event loop; remote calls run as commands
// and their results are applied by Update in completion order.
type Engine struct {
	users     domain.UserRepository
	photoRepo domain.PhotoRepository
	session   domain.Session
	cache     domain.Store
	timeout   time.Duration
	logger    *slog.Logger
	newID     func() string

	tracker   *Tracker
	profile   *ProfileStore
	photos    *PhotoCollection
	form      *FormController
	dismisser *Dismisser

	viewing string
}

// NewEngine creates an engine with idle tracker, empty stores and the
// form in create mode
func NewEngine(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.NewRequestID == nil {
		opts.NewRequestID = uuid.NewString
	}
	return &Engine{
		users:     opts.Users,
		photoRepo: opts.Photos,
		session:   opts.Session,
		cache:     opts.Cache,
		timeout:   opts.Timeout,
		logger:    opts.Logger,
		newID:     opts.NewRequestID,
		tracker:   NewTracker(),
		profile:   newProfileStore(),
		photos:    newPhotoCollection(),
		form:      NewFormController(),
		dismisser: NewDismisser(opts.MessageDelay),
	}
}

func (e *Engine) Tracker() *Tracker        { return e.tracker }
func (e *Engine) Profile() *ProfileStore   { return e.profile }
func (e *Engine) Photos() *PhotoCollection { return e.photos }
func (e *Engine) Form() *FormController    { return e.form }
func (e *Engine) Dismisser() *Dismisser    { return e.dismisser }

// Viewing returns the profile ID passed to the last Open
func (e *Engine) Viewing() string {
	return e.viewing
}

// IsOwner reports whether the viewed profile belongs to the session user
func (e *Engine) IsOwner() bool {
	id := e.sessionUserID()
	return id != "" && id == e.viewing
}

func (e *Engine) token() string {
	if e.session == nil {
		return ""
	}
	return e.session.Token()
}

func (e *Engine) sessionUserID() string {
	if e.session == nil {
		return ""
	}
	return e.session.UserID()
}

// begin marks c pending and returns the request ID for the command
func (e *Engine) begin(c Category, op string, args ...any) string {
	e.tracker.Begin(c)
	reqID := e.newID()
	e.logger.Debug("dispatching command", append([]any{"op", op, "category", c.String(), "requestID", reqID}, args...)...)
	return reqID
}

func (e *Engine) message(kind MessageKind, text string) Message {
	return Message{Text: text, Kind: kind, Deadline: e.dismisser.Deadline()}
}

// === Dispatch ===

// Open shows profileID: cached state is shown at once, without touching
// the tracker, and a profile fetch and a photo fetch are dispatched.
func (e *Engine) Open(profileID string) tea.Cmd {
	profileID = strings.TrimSpace(profileID)
	e.viewing = profileID

	if e.cache != nil {
		if user, ok := e.cache.GetProfile(profileID); ok {
			e.profile.replace(user)
		}
		if photos, ok := e.cache.GetPhotos(profileID); ok {
			e.photos.replace(profileID, photos)
		}
	}

	return tea.Batch(e.FetchProfile(profileID), e.FetchPhotos(profileID))
}

// Refresh re-fetches the viewed profile and its photos
func (e *Engine) Refresh() tea.Cmd {
	return tea.Batch(e.FetchProfile(e.viewing), e.FetchPhotos(e.viewing))
}

func (e *Engine) FetchProfile(userID string) tea.Cmd {
	reqID := e.begin(CategoryProfileRead, "fetch profile", "userID", userID)
	return e.fetchProfileCmd(reqID, userID)
}

// UpdateProfile writes the edited fields of the session user
func (e *Engine) UpdateProfile(fields domain.ProfileUpdate) tea.Cmd {
	reqID := e.begin(CategoryProfileWrite, "update profile")
	return e.updateProfileCmd(reqID, e.token(), fields)
}

// DeleteProfile deletes the session user's account
func (e *Engine) DeleteProfile() tea.Cmd {
	userID := e.sessionUserID()
	reqID := e.begin(CategoryProfileWrite, "delete profile", "userID", userID)
	return e.deleteProfileCmd(reqID, e.token(), userID)
}

func (e *Engine) FetchPhotos(ownerID string) tea.Cmd {
	reqID := e.begin(CategoryPhotoRead, "fetch photos", "ownerID", ownerID)
	return e.fetchPhotosCmd(reqID, e.token(), ownerID)
}

func (e *Engine) PublishPhoto(title, imagePath string) tea.Cmd {
	reqID := e.begin(CategoryPhotoWrite, "publish photo", "title", title)
	return e.publishPhotoCmd(reqID, e.token(), domain.NewPhoto{Title: title, ImagePath: imagePath})
}

// UpdatePhoto retitles a photo; the image is not re-sent
func (e *Engine) UpdatePhoto(id, title string) tea.Cmd {
	reqID := e.begin(CategoryPhotoWrite, "update photo", "photoID", id)
	return e.updatePhotoCmd(reqID, e.token(), domain.PhotoPatch{ID: id, Title: title})
}

func (e *Engine) DeletePhoto(id string) tea.Cmd {
	reqID := e.begin(CategoryPhotoWrite, "delete photo", "photoID", id)
	return e.deletePhotoCmd(reqID, e.token(), id)
}

// === Form ===

// EnterEdit switches the form to edit p. p must be in the collection.
func (e *Engine) EnterEdit(p domain.Photo) error {
	if !e.photos.Contains(p.ID) {
		return ErrPhotoNotPresent
	}
	e.form.enterEdit(p)
	return nil
}

// CancelEdit returns to create mode and drops the draft
func (e *Engine) CancelEdit() {
	e.form.cancelEdit()
}

func (e *Engine) SetDraftTitle(title string) {
	e.form.setDraftTitle(title)
}

// SubmitEdit sends the draft. The form stays in edit mode so the result
// shows under it; callers leave with CancelEdit.
func (e *Engine) SubmitEdit() tea.Cmd {
	if e.form.Mode() != ModeEdit {
		return nil
	}
	d := e.form.Draft()
	return e.UpdatePhoto(d.ID, d.Title)
}

// SubmitCreate publishes a new photo; the form mode is unchanged
func (e *Engine) SubmitCreate(title, imagePath string) tea.Cmd {
	return e.PublishPhoto(title, imagePath)
}

// === Completion ===

// Update applies completion and timer messages. It reports whether msg
// belonged to the engine and returns any follow-up command.
func (e *Engine) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case ProfileLoadedMsg:
		e.profileLoaded(msg)
		return true, nil
	case ProfileUpdatedMsg:
		return true, e.profileUpdated(msg)
	case ProfileDeletedMsg:
		return true, e.profileDeleted(msg)
	case PhotosLoadedMsg:
		e.photosLoaded(msg)
		return true, nil
	case PhotoPublishedMsg:
		return true, e.photoPublished(msg)
	case PhotoUpdatedMsg:
		return true, e.photoUpdated(msg)
	case PhotoDeletedMsg:
		return true, e.photoDeleted(msg)
	case MessageExpiredMsg:
		e.expire(msg.Scope)
		return true, nil
	}
	return false, nil
}

func (e *Engine) profileLoaded(msg ProfileLoadedMsg) {
	if msg.Err != nil {
		e.logger.Error("failed to fetch profile", "error", msg.Err, "userID", msg.UserID, "requestID", msg.RequestID)
		e.tracker.Fail(CategoryProfileRead, msg.Err)
		e.profile.fail(ErrorText(msg.Err))
		return
	}

	e.tracker.Succeed(CategoryProfileRead)
	e.profile.replace(msg.User)
	e.saveProfile(msg.User)
	e.logger.Debug("fetched profile", "userID", msg.User.ID, "requestID", msg.RequestID)
}

func (e *Engine) profileUpdated(msg ProfileUpdatedMsg) tea.Cmd {
	if msg.Err != nil {
		e.logger.Error("failed to update profile", "error", msg.Err, "requestID", msg.RequestID)
		e.tracker.Fail(CategoryProfileWrite, msg.Err)
		// The write may be partially applied; never show the old profile
		e.profile.reset()
		text := ErrorText(msg.Err)
		e.profile.fail(text)
		e.profile.setMessage(e.message(MessageError, text))
		e.invalidateProfile(e.sessionUserID())
		return e.dismisser.Arm(ScopeProfile)
	}

	e.tracker.Succeed(CategoryProfileWrite)
	e.profile.replace(msg.User)
	e.profile.setMessage(e.message(MessageSuccess, ProfileUpdatedText))
	e.saveProfile(msg.User)
	e.logger.Info("updated profile", "userID", msg.User.ID, "requestID", msg.RequestID)
	return e.dismisser.Arm(ScopeProfile)
}

func (e *Engine) profileDeleted(msg ProfileDeletedMsg) tea.Cmd {
	if msg.Err != nil {
		e.logger.Error("failed to delete profile", "error", msg.Err, "userID", msg.UserID, "requestID", msg.RequestID)
		e.tracker.Fail(CategoryProfileWrite, msg.Err)
		text := ErrorText(msg.Err)
		e.profile.fail(text)
		e.profile.setMessage(e.message(MessageError, text))
		return e.dismisser.Arm(ScopeProfile)
	}

	e.tracker.Succeed(CategoryProfileWrite)
	e.profile.reset()
	e.profile.clearErr()
	e.profile.setMessage(e.message(MessageSuccess, AccountDeletedText))
	if e.session != nil {
		if err := e.session.Clear(); err != nil {
			e.logger.Error("failed to clear session", "error", err)
		}
	}
	e.invalidateProfile(msg.UserID)
	e.invalidatePhotos(msg.UserID)
	e.logger.Info("deleted profile", "userID", msg.UserID, "requestID", msg.RequestID)
	return e.dismisser.Arm(ScopeProfile)
}

func (e *Engine) photosLoaded(msg PhotosLoadedMsg) {
	if msg.Err != nil {
		e.logger.Error("failed to fetch photos", "error", msg.Err, "ownerID", msg.OwnerID, "requestID", msg.RequestID)
		e.tracker.Fail(CategoryPhotoRead, msg.Err)
		e.photos.fail(ErrorText(msg.Err))
		return
	}

	e.tracker.Succeed(CategoryPhotoRead)
	e.photos.replace(msg.OwnerID, msg.Photos)
	if e.cache != nil {
		if err := e.cache.SavePhotos(msg.OwnerID, e.photos.Photos()); err != nil {
			e.logger.Error("failed to save photos", "error", err, "ownerID", msg.OwnerID)
		}
	}
	e.logger.Debug("fetched photos", "count", e.photos.Len(), "ownerID", msg.OwnerID, "requestID", msg.RequestID)
}

// photoWriteFailed records a failed photo mutation; the collection is untouched
func (e *Engine) photoWriteFailed(op, reqID string, err error) tea.Cmd {
	e.logger.Error("failed to "+op, "error", err, "requestID", reqID)
	e.tracker.Fail(CategoryPhotoWrite, err)
	text := ErrorText(err)
	e.photos.fail(text)
	e.photos.setMessage(e.message(MessageError, text))
	return e.dismisser.Arm(ScopePhotos)
}

// photoWriteSucceeded finishes a successful photo mutation
func (e *Engine) photoWriteSucceeded(text string) tea.Cmd {
	e.tracker.Succeed(CategoryPhotoWrite)
	e.photos.clearErr()
	e.photos.setMessage(e.message(MessageSuccess, text))
	e.invalidatePhotos(e.sessionUserID())
	return e.dismisser.Arm(ScopePhotos)
}

func (e *Engine) photoPublished(msg PhotoPublishedMsg) tea.Cmd {
	if msg.Err != nil {
		return e.photoWriteFailed("publish photo", msg.RequestID, msg.Err)
	}

	photo := msg.Photo
	if photo.UserID == "" {
		photo.UserID = e.sessionUserID()
	}
	e.photos.add(photo)
	e.logger.Info("published photo", "photoID", photo.ID, "requestID", msg.RequestID)
	return e.photoWriteSucceeded(PhotoPublishedText)
}

func (e *Engine) photoUpdated(msg PhotoUpdatedMsg) tea.Cmd {
	if msg.Err != nil {
		return e.photoWriteFailed("update photo", msg.RequestID, msg.Err)
	}

	id, title := msg.Photo.ID, msg.Photo.Title
	if id == "" {
		id, title = msg.Patch.ID, msg.Patch.Title
	}
	if !e.photos.retitle(id, title) {
		e.logger.Debug("updated photo is no longer in the collection", "photoID", id, "requestID", msg.RequestID)
	}
	e.logger.Info("updated photo", "photoID", id, "requestID", msg.RequestID)
	return e.photoWriteSucceeded(PhotoUpdatedText)
}

func (e *Engine) photoDeleted(msg PhotoDeletedMsg) tea.Cmd {
	if msg.Err != nil {
		return e.photoWriteFailed("delete photo", msg.RequestID, msg.Err)
	}

	e.photos.remove(msg.PhotoID)
	e.logger.Info("deleted photo", "photoID", msg.PhotoID, "requestID", msg.RequestID)
	return e.photoWriteSucceeded(PhotoDeletedText)
}

// expire clears the scope's message, whichever message that currently is
func (e *Engine) expire(scope Scope) {
	switch scope {
	case ScopeProfile:
		e.profile.clearMessage()
	case ScopePhotos:
		e.photos.clearMessage()
	}
}

// === Cache ===

func (e *Engine) saveProfile(u domain.User) {
	if e.cache == nil {
		return
	}
	if err := e.cache.SaveProfile(u); err != nil {
		e.logger.Error("failed to save profile", "error", err, "userID", u.ID)
	}
}

func (e *Engine) invalidateProfile(userID string) {
	if e.cache != nil && userID != "" {
		e.cache.InvalidateProfile(userID)
	}
}

func (e *Engine) invalidatePhotos(ownerID string) {
	if e.cache != nil && ownerID != "" {
		e.cache.InvalidatePhotos(ownerID)
	}
}
