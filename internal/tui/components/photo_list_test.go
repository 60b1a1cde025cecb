package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/foto/internal/domain"
	"github.com/mmcdole/foto/internal/state"
)

func rows(ids ...string) []state.FilterMatch {
	out := make([]state.FilterMatch, len(ids))
	for i, id := range ids {
		out[i] = state.FilterMatch{Photo: domain.Photo{ID: id, Title: "photo " + id}, Index: i}
	}
	return out
}

func TestPhotoList_SetRowsKeepsSelection(t *testing.T) {
	l := NewPhotoList()
	l.SetRows(rows("a", "b", "c"))
	l.MoveDown()
	l.MoveDown()

	l.SetRows(rows("c", "a"))
	selected, ok := l.Selected()
	require.True(t, ok)
	assert.Equal(t, "c", selected.ID)
	assert.Equal(t, 0, l.Cursor())
}

func TestPhotoList_SetRowsClampsWhenSelectionGone(t *testing.T) {
	l := NewPhotoList()
	l.SetRows(rows("a", "b", "c"))
	l.MoveDown()
	l.MoveDown()

	l.SetRows(rows("a"))
	selected, ok := l.Selected()
	require.True(t, ok)
	assert.Equal(t, "a", selected.ID)

	l.SetRows(nil)
	_, ok = l.Selected()
	assert.False(t, ok)
	assert.Equal(t, 0, l.Cursor())
}

func TestPhotoList_MoveStaysInBounds(t *testing.T) {
	l := NewPhotoList()
	l.SetRows(rows("a", "b"))

	l.MoveUp()
	assert.Equal(t, 0, l.Cursor())
	l.MoveDown()
	l.MoveDown()
	l.MoveDown()
	assert.Equal(t, 1, l.Cursor())
}

func TestPhotoList_Select(t *testing.T) {
	l := NewPhotoList()
	l.SetRows(rows("a", "b", "c"))

	assert.True(t, l.Select("c"))
	assert.Equal(t, 2, l.Cursor())
	assert.False(t, l.Select("zzz"))
	assert.Equal(t, 2, l.Cursor())
}

func TestPhotoList_StopFilterClear(t *testing.T) {
	l := NewPhotoList()
	l.StartFilter()
	l.filterInput.SetValue("sun")

	l.StopFilter(false)
	assert.False(t, l.IsFiltering())
	assert.Equal(t, "sun", l.Query())

	l.StopFilter(true)
	assert.Empty(t, l.Query())
}

func TestHighlightMatches_PlainWithoutMatches(t *testing.T) {
	assert.Equal(t, "abc", highlightMatches("abc", nil, false))
}
