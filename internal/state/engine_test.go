package state

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/foto/internal/adapter"
	"github.com/mmcdole/foto/internal/domain"
	"github.com/mmcdole/foto/internal/store"
)

// === Fakes ===

type fakeUsers struct {
	get    func(id string) (domain.User, error)
	update func(fields domain.ProfileUpdate) (domain.User, error)
	del    func() error
	tokens []string
}

func (f *fakeUsers) GetUser(_ context.Context, id string) (domain.User, error) {
	if f.get == nil {
		return domain.User{ID: id}, nil
	}
	return f.get(id)
}

func (f *fakeUsers) UpdateProfile(_ context.Context, token string, fields domain.ProfileUpdate) (domain.User, error) {
	f.tokens = append(f.tokens, token)
	return f.update(fields)
}

func (f *fakeUsers) DeleteProfile(_ context.Context, token string) error {
	f.tokens = append(f.tokens, token)
	if f.del == nil {
		return nil
	}
	return f.del()
}

type fakePhotos struct {
	list    func(ownerID string) ([]domain.Photo, error)
	publish func(p domain.NewPhoto) (domain.Photo, error)
	update  func(p domain.PhotoPatch) (domain.Photo, error)
	del     func(id string) error
	tokens  []string
}

func (f *fakePhotos) GetUserPhotos(_ context.Context, token, ownerID string) ([]domain.Photo, error) {
	f.tokens = append(f.tokens, token)
	if f.list == nil {
		return nil, nil
	}
	return f.list(ownerID)
}

func (f *fakePhotos) PublishPhoto(_ context.Context, token string, p domain.NewPhoto) (domain.Photo, error) {
	f.tokens = append(f.tokens, token)
	return f.publish(p)
}

func (f *fakePhotos) UpdatePhoto(_ context.Context, token string, p domain.PhotoPatch) (domain.Photo, error) {
	f.tokens = append(f.tokens, token)
	if f.update == nil {
		return domain.Photo{ID: p.ID, Title: p.Title}, nil
	}
	return f.update(p)
}

func (f *fakePhotos) DeletePhoto(_ context.Context, token, id string) error {
	f.tokens = append(f.tokens, token)
	if f.del == nil {
		return nil
	}
	return f.del(id)
}

type fakeSession struct {
	token    string
	userID   string
	cleared  int
	clearErr error
}

func (s *fakeSession) Token() string  { return s.token }
func (s *fakeSession) UserID() string { return s.userID }

func (s *fakeSession) Clear() error {
	s.cleared++
	if s.clearErr != nil {
		return s.clearErr
	}
	s.token, s.userID = "", ""
	return nil
}

type harness struct {
	engine  *Engine
	users   *fakeUsers
	photos  *fakePhotos
	session *fakeSession
	cache   *store.CacheStore
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	cache, err := store.NewCacheStore("", "")
	require.NoError(t, err)

	h := &harness{
		users:   &fakeUsers{},
		photos:  &fakePhotos{},
		session: &fakeSession{token: "opaque.token", userID: "u1"},
		cache:   cache,
	}
	seq := 0
	h.engine = NewEngine(Options{
		Users:   h.users,
		Photos:  h.photos,
		Session: h.session,
		Cache:   cache,
		Logger:  adapter.NullLogger(),
		NewRequestID: func() string {
			seq++
			return fmt.Sprintf("req-%d", seq)
		},
	})
	return h
}

// complete runs cmd's remote call and hands the result to the engine
func complete(t *testing.T, e *Engine, cmd tea.Cmd) tea.Cmd {
	t.Helper()
	require.NotNil(t, cmd)
	return deliver(t, e, cmd())
}

func deliver(t *testing.T, e *Engine, msg tea.Msg) tea.Cmd {
	t.Helper()
	handled, next := e.Update(msg)
	require.True(t, handled, "engine did not handle %T", msg)
	return next
}

// seedPhotos loads photos through a successful fetch
func (h *harness) seedPhotos(t *testing.T, photos ...domain.Photo) {
	t.Helper()
	h.photos.list = func(string) ([]domain.Photo, error) { return photos, nil }
	complete(t, h.engine, h.engine.FetchPhotos("u1"))
}

func (h *harness) seedUser(t *testing.T, u domain.User) {
	t.Helper()
	h.users.get = func(string) (domain.User, error) { return u, nil }
	complete(t, h.engine, h.engine.FetchProfile(u.ID))
}

func validation(msgs ...string) error {
	return &domain.ValidationError{Errors: msgs}
}

// === Profile ===

func TestEngine_FetchProfileSuccess(t *testing.T) {
	h := newHarness(t)
	ana := domain.User{ID: "u1", Name: "Ana", Bio: "hi"}
	h.users.get = func(id string) (domain.User, error) {
		assert.Equal(t, "u1", id)
		return ana, nil
	}

	cmd := h.engine.FetchProfile("u1")
	assert.True(t, h.engine.Tracker().Loading(CategoryProfileRead))

	next := complete(t, h.engine, cmd)
	assert.Nil(t, next, "reads arm no timer")

	assert.Equal(t, ana, h.engine.Profile().User())
	assert.False(t, h.engine.Tracker().Loading(CategoryProfileRead))
	assert.NoError(t, h.engine.Tracker().Err(CategoryProfileRead))
	assert.Equal(t, StatusSucceeded, h.engine.Tracker().State(CategoryProfileRead).Status)
	assert.Empty(t, h.engine.Profile().Err())

	cached, ok := h.cache.GetProfile("u1")
	require.True(t, ok)
	assert.Equal(t, ana, cached)
}

func TestEngine_FetchProfileFailureKeepsUser(t *testing.T) {
	h := newHarness(t)
	ana := domain.User{ID: "u1", Name: "Ana"}
	h.seedUser(t, ana)

	h.users.get = func(string) (domain.User, error) { return domain.User{}, validation("User not found", "ignored") }
	complete(t, h.engine, h.engine.FetchProfile("u1"))

	assert.Equal(t, ana, h.engine.Profile().User())
	assert.Equal(t, "User not found", h.engine.Profile().Err())
	state := h.engine.Tracker().State(CategoryProfileRead)
	assert.Equal(t, StatusFailed, state.Status)
	assert.EqualError(t, state.Err, "User not found")
	_, shown := h.engine.Profile().Message()
	assert.False(t, shown)
}

func TestEngine_UpdateProfileSuccess(t *testing.T) {
	h := newHarness(t)
	h.seedUser(t, domain.User{ID: "u1", Name: "Ana", Bio: "hi"})

	updated := domain.User{ID: "u1", Name: "Ana", Bio: "new"}
	h.users.update = func(fields domain.ProfileUpdate) (domain.User, error) {
		assert.Equal(t, domain.ProfileUpdate{Bio: "new"}, fields)
		return updated, nil
	}

	next := complete(t, h.engine, h.engine.UpdateProfile(domain.ProfileUpdate{Bio: "new"}))
	assert.NotNil(t, next, "dismisser armed")

	assert.Equal(t, updated, h.engine.Profile().User())
	assert.Equal(t, []string{"opaque.token"}, h.users.tokens)
	msg, ok := h.engine.Profile().Message()
	require.True(t, ok)
	assert.Equal(t, ProfileUpdatedText, msg.Text)
	assert.False(t, msg.IsError())
	assert.Equal(t, StatusSucceeded, h.engine.Tracker().State(CategoryProfileWrite).Status)
}

func TestEngine_UpdateProfileFailureWipesUser(t *testing.T) {
	h := newHarness(t)
	h.seedUser(t, domain.User{ID: "u1", Name: "Ana", Bio: "hi"})

	h.users.update = func(domain.ProfileUpdate) (domain.User, error) {
		return domain.User{}, validation("Invalid bio")
	}
	next := complete(t, h.engine, h.engine.UpdateProfile(domain.ProfileUpdate{Bio: "new"}))
	assert.NotNil(t, next)

	assert.True(t, h.engine.Profile().User().IsEmpty())
	assert.Equal(t, "Invalid bio", h.engine.Profile().Err())

	state := h.engine.Tracker().State(CategoryProfileWrite)
	assert.Equal(t, StatusFailed, state.Status)
	assert.Equal(t, "Invalid bio", ErrorText(state.Err))

	msg, ok := h.engine.Profile().Message()
	require.True(t, ok)
	assert.True(t, msg.IsError())
	assert.Equal(t, "Invalid bio", msg.Text)

	_, cached := h.cache.GetProfile("u1")
	assert.False(t, cached)
}

func TestEngine_UpdateProfileRequestFailureIsGeneric(t *testing.T) {
	h := newHarness(t)
	failure := &domain.RequestFailure{Op: "PUT /users/profile", Err: domain.ErrServerOffline}
	h.users.update = func(domain.ProfileUpdate) (domain.User, error) { return domain.User{}, failure }

	complete(t, h.engine, h.engine.UpdateProfile(domain.ProfileUpdate{Name: "x"}))

	assert.Equal(t, GenericFailure, h.engine.Profile().Err())
	assert.True(t, errors.Is(h.engine.Tracker().Err(CategoryProfileWrite), domain.ErrServerOffline),
		"tracker keeps the detail")
}

func TestEngine_DeleteProfileSuccess(t *testing.T) {
	h := newHarness(t)
	h.seedUser(t, domain.User{ID: "u1", Name: "Ana"})
	h.seedPhotos(t, p1, p2)

	next := complete(t, h.engine, h.engine.DeleteProfile())
	assert.NotNil(t, next)

	assert.True(t, h.engine.Profile().User().IsEmpty())
	assert.Equal(t, 1, h.session.cleared)
	assert.Empty(t, h.session.Token())
	assert.Equal(t, []string{"p1", "p2"}, ids(h.engine.Photos().Photos()), "photos untouched")

	msg, ok := h.engine.Profile().Message()
	require.True(t, ok)
	assert.Equal(t, AccountDeletedText, msg.Text)

	_, cached := h.cache.GetProfile("u1")
	assert.False(t, cached)
}

func TestEngine_DeleteProfileFailure(t *testing.T) {
	h := newHarness(t)
	ana := domain.User{ID: "u1", Name: "Ana"}
	h.seedUser(t, ana)
	h.users.del = func() error { return &domain.RequestFailure{Op: "DELETE /users/profile", Status: 500, Err: errors.New("boom")} }

	complete(t, h.engine, h.engine.DeleteProfile())

	assert.Equal(t, ana, h.engine.Profile().User())
	assert.Zero(t, h.session.cleared)
	assert.Equal(t, GenericFailure, h.engine.Profile().Err())
	assert.Equal(t, StatusFailed, h.engine.Tracker().State(CategoryProfileWrite).Status)
}

func TestEngine_DeleteProfileSessionClearFailureIsLogged(t *testing.T) {
	h := newHarness(t)
	h.session.clearErr = errors.New("disk full")

	complete(t, h.engine, h.engine.DeleteProfile())

	assert.Equal(t, StatusSucceeded, h.engine.Tracker().State(CategoryProfileWrite).Status)
	assert.Equal(t, 1, h.session.cleared)
}

func TestEngine_ProfileLastCompletionWins(t *testing.T) {
	h := newHarness(t)
	first := h.engine.FetchProfile("u1")
	second := h.engine.FetchProfile("u1")

	h.users.get = func(string) (domain.User, error) { return domain.User{ID: "u1", Name: "first"}, nil }
	firstMsg := first()
	h.users.get = func(string) (domain.User, error) { return domain.User{ID: "u1", Name: "second"}, nil }
	secondMsg := second()

	// The older request answers last and wins
	deliver(t, h.engine, secondMsg)
	deliver(t, h.engine, firstMsg)

	assert.Equal(t, "first", h.engine.Profile().User().Name)
}

// === Photos ===

func TestEngine_FetchPhotosReplacesCollection(t *testing.T) {
	h := newHarness(t)
	h.seedPhotos(t, p1, p2)
	h.seedPhotos(t, p3)

	assert.Equal(t, []string{"p3"}, ids(h.engine.Photos().Photos()))
	assert.Equal(t, "u1", h.engine.Photos().Owner())
	assert.Equal(t, []string{"opaque.token", "opaque.token"}, h.photos.tokens)

	cached, ok := h.cache.GetPhotos("u1")
	require.True(t, ok)
	assert.Equal(t, []string{"p3"}, ids(cached))
}

func TestEngine_FetchPhotosFailure(t *testing.T) {
	h := newHarness(t)
	h.seedPhotos(t, p1)
	h.photos.list = func(string) ([]domain.Photo, error) {
		return nil, &domain.RequestFailure{Op: "GET /users/{id}/photos", Err: domain.ErrServerOffline}
	}

	complete(t, h.engine, h.engine.FetchPhotos("u1"))

	assert.Equal(t, []string{"p1"}, ids(h.engine.Photos().Photos()))
	assert.Equal(t, GenericFailure, h.engine.Photos().Err())
	assert.Equal(t, StatusFailed, h.engine.Tracker().State(CategoryPhotoRead).Status)
}

func TestEngine_PublishPhotoAppends(t *testing.T) {
	h := newHarness(t)
	h.seedPhotos(t, p1, p2)
	h.photos.publish = func(p domain.NewPhoto) (domain.Photo, error) {
		assert.Equal(t, domain.NewPhoto{Title: "Sunset", ImagePath: "/tmp/a.jpg"}, p)
		return domain.Photo{ID: "p9", Title: "Sunset", Image: "p9.jpg"}, nil
	}

	next := complete(t, h.engine, h.engine.PublishPhoto("Sunset", "/tmp/a.jpg"))
	assert.NotNil(t, next)

	photos := h.engine.Photos().Photos()
	require.Len(t, photos, 3)
	assert.Equal(t, domain.Photo{ID: "p9", Title: "Sunset", Image: "p9.jpg", UserID: "u1"}, photos[2])

	msg, ok := h.engine.Photos().Message()
	require.True(t, ok)
	assert.Equal(t, PhotoPublishedText, msg.Text)

	_, cached := h.cache.GetPhotos("u1")
	assert.False(t, cached, "mutations invalidate the cached list")
}

func TestEngine_PublishPhotoFailureLeavesCollection(t *testing.T) {
	h := newHarness(t)
	h.seedPhotos(t, p1)
	h.photos.publish = func(domain.NewPhoto) (domain.Photo, error) {
		return domain.Photo{}, validation("Title is required")
	}

	next := complete(t, h.engine, h.engine.PublishPhoto("", "/tmp/a.jpg"))
	assert.NotNil(t, next, "failures arm the dismisser too")

	assert.Equal(t, []string{"p1"}, ids(h.engine.Photos().Photos()))
	assert.Equal(t, "Title is required", h.engine.Photos().Err())
	msg, _ := h.engine.Photos().Message()
	assert.True(t, msg.IsError())
}

func TestEngine_DeletePhoto(t *testing.T) {
	h := newHarness(t)
	h.seedPhotos(t, p1, p2, p3)

	complete(t, h.engine, h.engine.DeletePhoto("p2"))
	assert.Equal(t, []string{"p1", "p3"}, ids(h.engine.Photos().Photos()))
	msg, _ := h.engine.Photos().Message()
	assert.Equal(t, PhotoDeletedText, msg.Text)

	complete(t, h.engine, h.engine.DeletePhoto("p2"))
	assert.Equal(t, []string{"p1", "p3"}, ids(h.engine.Photos().Photos()))
	assert.Equal(t, StatusSucceeded, h.engine.Tracker().State(CategoryPhotoWrite).Status)
}

func TestEngine_DeletePhotoFailure(t *testing.T) {
	h := newHarness(t)
	h.seedPhotos(t, p1, p2)
	h.photos.del = func(string) error { return &domain.RequestFailure{Op: "DELETE /photos/{id}", Status: 401, Err: domain.ErrAuthFailed} }

	complete(t, h.engine, h.engine.DeletePhoto("p2"))

	assert.Equal(t, []string{"p1", "p2"}, ids(h.engine.Photos().Photos()))
	assert.True(t, errors.Is(h.engine.Tracker().Err(CategoryPhotoWrite), domain.ErrAuthFailed))
}

func TestEngine_UpdatePhotoInPlace(t *testing.T) {
	h := newHarness(t)
	h.seedPhotos(t, p1, p2, p3)

	complete(t, h.engine, h.engine.UpdatePhoto("p2", "Dunes II"))

	assert.Equal(t, []string{"p1", "p2", "p3"}, ids(h.engine.Photos().Photos()))
	got, _ := h.engine.Photos().Get("p2")
	assert.Equal(t, "Dunes II", got.Title)
	assert.Equal(t, "p2.jpg", got.Image)
}

func TestEngine_UpdatePhotoAbsentIsSilent(t *testing.T) {
	h := newHarness(t)
	h.seedPhotos(t, p1)

	complete(t, h.engine, h.engine.UpdatePhoto("gone", "x"))

	assert.Equal(t, []domain.Photo{p1}, h.engine.Photos().Photos())
	assert.Equal(t, StatusSucceeded, h.engine.Tracker().State(CategoryPhotoWrite).Status)
	assert.Empty(t, h.engine.Photos().Err())
}

func TestEngine_UpdatePhotoFallsBackToPatch(t *testing.T) {
	h := newHarness(t)
	h.seedPhotos(t, p1)
	h.photos.update = func(domain.PhotoPatch) (domain.Photo, error) { return domain.Photo{}, nil }

	complete(t, h.engine, h.engine.UpdatePhoto("p1", "Renamed"))

	got, _ := h.engine.Photos().Get("p1")
	assert.Equal(t, "Renamed", got.Title)
}

func TestEngine_MutationsApplyInCompletionOrder(t *testing.T) {
	h := newHarness(t)
	h.seedPhotos(t, p1, p2)

	h.photos.publish = func(p domain.NewPhoto) (domain.Photo, error) {
		return domain.Photo{ID: "new-" + p.Title, Title: p.Title}, nil
	}
	publishA := h.engine.PublishPhoto("A", "a.jpg")
	publishB := h.engine.PublishPhoto("B", "b.jpg")
	deleteP1 := h.engine.DeletePhoto("p1")

	// Arrival order: B, delete, A
	deliver(t, h.engine, publishB())
	deliver(t, h.engine, deleteP1())
	deliver(t, h.engine, publishA())

	assert.Equal(t, []string{"p2", "new-B", "new-A"}, ids(h.engine.Photos().Photos()))
}

func TestEngine_UpdateThenDeleteRace(t *testing.T) {
	h := newHarness(t)
	h.seedPhotos(t, p1, p2)

	update := h.engine.UpdatePhoto("p2", "late")
	del := h.engine.DeletePhoto("p2")

	deliver(t, h.engine, del())
	deliver(t, h.engine, update())

	assert.Equal(t, []string{"p1"}, ids(h.engine.Photos().Photos()))
}

func TestEngine_StaleTrackerStateFollowsCompletion(t *testing.T) {
	h := newHarness(t)
	h.photos.del = func(id string) error {
		if id == "bad" {
			return validation("Photo not found")
		}
		return nil
	}

	bad := h.engine.DeletePhoto("bad")
	good := h.engine.DeletePhoto("good")
	deliver(t, h.engine, good())
	deliver(t, h.engine, bad())

	assert.Equal(t, StatusFailed, h.engine.Tracker().State(CategoryPhotoWrite).Status)
}

// === Form ===

func TestEngine_EnterThenCancelEdit(t *testing.T) {
	h := newHarness(t)
	h.seedPhotos(t, p1, p2, p3)
	before := h.engine.Photos().Photos()

	require.NoError(t, h.engine.EnterEdit(p2))
	assert.Equal(t, ModeEdit, h.engine.Form().Mode())
	h.engine.SetDraftTitle("unsaved")

	h.engine.CancelEdit()
	assert.Equal(t, ModeCreate, h.engine.Form().Mode())
	assert.Equal(t, Draft{}, h.engine.Form().Draft())
	assert.Equal(t, before, h.engine.Photos().Photos())
	assert.Len(t, h.photos.tokens, 1, "only the seeding fetch was sent")
}

func TestEngine_EnterEditRequiresPresence(t *testing.T) {
	h := newHarness(t)
	h.seedPhotos(t, p1)

	err := h.engine.EnterEdit(p2)
	assert.ErrorIs(t, err, ErrPhotoNotPresent)
	assert.Equal(t, ModeCreate, h.engine.Form().Mode())
}

func TestEngine_SubmitEditStaysInEdit(t *testing.T) {
	h := newHarness(t)
	h.seedPhotos(t, p1, p2)
	var sent domain.PhotoPatch
	h.photos.update = func(p domain.PhotoPatch) (domain.Photo, error) {
		sent = p
		return domain.Photo{ID: p.ID, Title: p.Title}, nil
	}

	require.NoError(t, h.engine.EnterEdit(p2))
	h.engine.SetDraftTitle("Dunes II")
	complete(t, h.engine, h.engine.SubmitEdit())

	assert.Equal(t, domain.PhotoPatch{ID: "p2", Title: "Dunes II"}, sent)
	assert.Equal(t, ModeEdit, h.engine.Form().Mode())
	msg, _ := h.engine.Photos().Message()
	assert.Equal(t, PhotoUpdatedText, msg.Text)
}

func TestEngine_SubmitEditOutsideEditIsNoop(t *testing.T) {
	h := newHarness(t)
	assert.Nil(t, h.engine.SubmitEdit())
	assert.Equal(t, StatusIdle, h.engine.Tracker().State(CategoryPhotoWrite).Status)
}

func TestEngine_SubmitCreateStaysInCreate(t *testing.T) {
	h := newHarness(t)
	h.photos.publish = func(p domain.NewPhoto) (domain.Photo, error) { return domain.Photo{ID: "p9", Title: p.Title}, nil }

	complete(t, h.engine, h.engine.SubmitCreate("Sunset", "a.jpg"))

	assert.Equal(t, ModeCreate, h.engine.Form().Mode())
	assert.Equal(t, 1, h.engine.Photos().Len())
}

// === Messages ===

func TestEngine_MessageExpiry(t *testing.T) {
	h := newHarness(t)
	h.seedPhotos(t, p1)

	complete(t, h.engine, h.engine.DeletePhoto("p1"))
	_, shown := h.engine.Photos().Message()
	require.True(t, shown)

	// Profile timers never touch photo messages
	deliver(t, h.engine, MessageExpiredMsg{Scope: ScopeProfile})
	_, shown = h.engine.Photos().Message()
	assert.True(t, shown)

	deliver(t, h.engine, MessageExpiredMsg{Scope: ScopePhotos})
	_, shown = h.engine.Photos().Message()
	assert.False(t, shown)
}

func TestEngine_OlderTimerClearsNewerMessage(t *testing.T) {
	h := newHarness(t)
	h.photos.publish = func(p domain.NewPhoto) (domain.Photo, error) { return domain.Photo{ID: p.Title}, nil }

	complete(t, h.engine, h.engine.PublishPhoto("a", "a.jpg"))
	h.photos.del = func(string) error { return validation("Photo not found") }
	complete(t, h.engine, h.engine.DeletePhoto("x"))

	msg, _ := h.engine.Photos().Message()
	assert.Equal(t, "Photo not found", msg.Text)

	// The publish timer fires first and clears the newer error message
	deliver(t, h.engine, MessageExpiredMsg{Scope: ScopePhotos})
	_, shown := h.engine.Photos().Message()
	assert.False(t, shown)
}

func TestEngine_IgnoresForeignMessages(t *testing.T) {
	h := newHarness(t)
	handled, cmd := h.engine.Update(tea.KeyMsg{})
	assert.False(t, handled)
	assert.Nil(t, cmd)
}

// === Open ===

func TestEngine_OpenWarmStartsFromCache(t *testing.T) {
	h := newHarness(t)
	ana := domain.User{ID: "u1", Name: "Ana (cached)"}
	require.NoError(t, h.cache.SaveProfile(ana))
	require.NoError(t, h.cache.SavePhotos("u1", []domain.Photo{p1}))

	h.users.get = func(string) (domain.User, error) { return domain.User{ID: "u1", Name: "Ana"}, nil }
	h.photos.list = func(string) ([]domain.Photo, error) { return []domain.Photo{p1, p2}, nil }

	cmd := h.engine.Open(" u1 ")
	assert.Equal(t, "u1", h.engine.Viewing())
	assert.Equal(t, ana, h.engine.Profile().User())
	assert.Equal(t, []string{"p1"}, ids(h.engine.Photos().Photos()))
	assert.True(t, h.engine.Tracker().Loading(CategoryProfileRead))
	assert.True(t, h.engine.Tracker().Loading(CategoryPhotoRead))

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	for _, c := range batch {
		complete(t, h.engine, c)
	}

	assert.Equal(t, "Ana", h.engine.Profile().User().Name)
	assert.Equal(t, []string{"p1", "p2"}, ids(h.engine.Photos().Photos()))
}

func TestEngine_IsOwner(t *testing.T) {
	h := newHarness(t)
	h.engine.Open("u2")
	assert.False(t, h.engine.IsOwner())

	h.engine.Open("u1")
	assert.True(t, h.engine.IsOwner())

	h.session.userID = ""
	assert.False(t, h.engine.IsOwner())
}

func TestErrorText(t *testing.T) {
	assert.Equal(t, "", ErrorText(nil))
	assert.Equal(t, "first", ErrorText(validation("first", "second")))
	assert.Equal(t, "first", ErrorText(fmt.Errorf("wrapped: %w", validation("first"))))
	assert.Equal(t, GenericFailure, ErrorText(errors.New("dial tcp: refused")))
}
