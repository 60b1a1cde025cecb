package state

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/foto/internal/domain"
)

// Command factories. Each runs one remote call off the event loop and
// reports back with a completion message; nothing here touches the stores.

func (e *Engine) callContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), e.timeout)
}

func (e *Engine) fetchProfileCmd(reqID, userID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := e.callContext()
		defer cancel()

		user, err := e.users.GetUser(ctx, userID)
		return ProfileLoadedMsg{RequestID: reqID, UserID: userID, User: user, Err: err}
	}
}

func (e *Engine) updateProfileCmd(reqID, token string, fields domain.ProfileUpdate) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := e.callContext()
		defer cancel()

		user, err := e.users.UpdateProfile(ctx, token, fields)
		return ProfileUpdatedMsg{RequestID: reqID, User: user, Err: err}
	}
}

func (e *Engine) deleteProfileCmd(reqID, token, userID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := e.callContext()
		defer cancel()

		err := e.users.DeleteProfile(ctx, token)
		return ProfileDeletedMsg{RequestID: reqID, UserID: userID, Err: err}
	}
}

func (e *Engine) fetchPhotosCmd(reqID, token, ownerID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := e.callContext()
		defer cancel()

		photos, err := e.photoRepo.GetUserPhotos(ctx, token, ownerID)
		return PhotosLoadedMsg{RequestID: reqID, OwnerID: ownerID, Photos: photos, Err: err}
	}
}

func (e *Engine) publishPhotoCmd(reqID, token string, photo domain.NewPhoto) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := e.callContext()
		defer cancel()

		created, err := e.photoRepo.PublishPhoto(ctx, token, photo)
		return PhotoPublishedMsg{RequestID: reqID, Photo: created, Err: err}
	}
}

func (e *Engine) updatePhotoCmd(reqID, token string, patch domain.PhotoPatch) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := e.callContext()
		defer cancel()

		updated, err := e.photoRepo.UpdatePhoto(ctx, token, patch)
		return PhotoUpdatedMsg{RequestID: reqID, Patch: patch, Photo: updated, Err: err}
	}
}

func (e *Engine) deletePhotoCmd(reqID, token, photoID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := e.callContext()
		defer cancel()

		err := e.photoRepo.DeletePhoto(ctx, token, photoID)
		return PhotoDeletedMsg{RequestID: reqID, PhotoID: photoID, Err: err}
	}
}
