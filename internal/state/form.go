package state

import (
	"errors"

	"github.com/mmcdole/foto/internal/domain"
)

// ErrPhotoNotPresent is returned when editing a photo that is not in the collection
var ErrPhotoNotPresent = errors.New("photo is not in the collection")

// FormMode selects which photo form is shown
type FormMode int

const (
	ModeCreate FormMode = iota
	ModeEdit
)

func (m FormMode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "create"
}

// Draft holds the unsaved values of the photo being edited
type Draft struct {
	ID    string
	Title string
	Image string
}

// FormController is the create/edit state machine. Exactly one form is
// visible at a time and visibility derives from Mode alone.
type FormController struct {
	mode  FormMode
	draft Draft
}

// NewFormController starts in create mode with an empty draft
func NewFormController() *FormController {
	return &FormController{mode: ModeCreate}
}

func (f *FormController) Mode() FormMode {
	return f.mode
}

// Draft returns the edit draft; zero in create mode
func (f *FormController) Draft() Draft {
	return f.draft
}

// CreateVisible reports whether the publish form is shown
func (f *FormController) CreateVisible() bool {
	return f.mode == ModeCreate
}

// EditVisible reports whether the edit form is shown
func (f *FormController) EditVisible() bool {
	return f.mode == ModeEdit
}

// enterEdit seeds the draft from p. Already editing replaces the draft.
func (f *FormController) enterEdit(p domain.Photo) {
	f.mode = ModeEdit
	f.draft = Draft{ID: p.ID, Title: p.Title, Image: p.Image}
}

func (f *FormController) cancelEdit() {
	f.mode = ModeCreate
	f.draft = Draft{}
}

// setDraftTitle is ignored outside edit mode
func (f *FormController) setDraftTitle(title string) {
	if f.mode != ModeEdit {
		return
	}
	f.draft.Title = title
}
