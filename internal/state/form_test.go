package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormController_StartsInCreate(t *testing.T) {
	f := NewFormController()
	assert.Equal(t, ModeCreate, f.Mode())
	assert.True(t, f.CreateVisible())
	assert.False(t, f.EditVisible())
	assert.Equal(t, Draft{}, f.Draft())
}

func TestFormController_EditCycle(t *testing.T) {
	f := NewFormController()

	f.enterEdit(p2)
	assert.Equal(t, ModeEdit, f.Mode())
	assert.False(t, f.CreateVisible())
	assert.True(t, f.EditVisible())
	assert.Equal(t, Draft{ID: "p2", Title: "Dunes", Image: "p2.jpg"}, f.Draft())

	f.setDraftTitle("Dunes II")
	assert.Equal(t, "Dunes II", f.Draft().Title)

	// Entering edit again replaces the draft
	f.enterEdit(p3)
	assert.Equal(t, Draft{ID: "p3", Title: "Sunrise", Image: "p3.jpg"}, f.Draft())

	f.cancelEdit()
	assert.Equal(t, ModeCreate, f.Mode())
	assert.Equal(t, Draft{}, f.Draft())
}

func TestFormController_DraftTitleIgnoredInCreate(t *testing.T) {
	f := NewFormController()
	f.setDraftTitle("nope")
	assert.Equal(t, Draft{}, f.Draft())
}
