package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/foto/internal/domain"
	"github.com/mmcdole/foto/internal/state"
	"github.com/mmcdole/foto/internal/tui/styles"
)

// PhotoList renders the photo collection with a cursor and an optional
// fuzzy filter. Rows come from PhotoCollection.Filter.
type PhotoList struct {
	rows   []state.FilterMatch
	cursor int
	offset int
	width  int
	height int

	filterInput textinput.Model
	filtering   bool
}

// NewPhotoList creates an empty list
func NewPhotoList() PhotoList {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.PromptStyle = styles.FilterPromptStyle
	ti.Placeholder = "filter titles"
	ti.PlaceholderStyle = styles.DimStyle
	ti.CharLimit = 64

	return PhotoList{filterInput: ti, width: 40, height: 10}
}

// SetRows replaces the rows, keeping the cursor on the same photo when possible
func (l *PhotoList) SetRows(rows []state.FilterMatch) {
	selected, hadSelection := l.Selected()
	l.rows = rows

	if hadSelection {
		for i, r := range rows {
			if r.Photo.ID == selected.ID {
				l.cursor = i
				l.clamp()
				return
			}
		}
	}
	l.clamp()
}

// SetSize sets the viewport size
func (l *PhotoList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.filterInput.Width = width - 4
	l.clamp()
}

// Len returns the number of visible rows
func (l PhotoList) Len() int {
	return len(l.rows)
}

// Cursor returns the selected row index
func (l PhotoList) Cursor() int {
	return l.cursor
}

// Selected returns the photo under the cursor
func (l PhotoList) Selected() (domain.Photo, bool) {
	if l.cursor < 0 || l.cursor >= len(l.rows) {
		return domain.Photo{}, false
	}
	return l.rows[l.cursor].Photo, true
}

// Select moves the cursor to the photo with the given ID
func (l *PhotoList) Select(id string) bool {
	for i, r := range l.rows {
		if r.Photo.ID == id {
			l.cursor = i
			l.clamp()
			return true
		}
	}
	return false
}

func (l *PhotoList) MoveUp() {
	l.cursor--
	l.clamp()
}

func (l *PhotoList) MoveDown() {
	l.cursor++
	l.clamp()
}

func (l *PhotoList) visibleRows() int {
	rows := l.height - 2 // Header and filter line
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (l *PhotoList) clamp() {
	if l.cursor >= len(l.rows) {
		l.cursor = len(l.rows) - 1
	}
	if l.cursor < 0 {
		l.cursor = 0
	}
	visible := l.visibleRows()
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+visible {
		l.offset = l.cursor - visible + 1
	}
}

// === Filter ===

// Query returns the active filter text
func (l PhotoList) Query() string {
	return l.filterInput.Value()
}

// IsFiltering reports whether the filter input has focus
func (l PhotoList) IsFiltering() bool {
	return l.filtering
}

// StartFilter focuses the filter input
func (l *PhotoList) StartFilter() tea.Cmd {
	l.filtering = true
	return l.filterInput.Focus()
}

// StopFilter leaves the filter input; clear also drops the query
func (l *PhotoList) StopFilter(clear bool) {
	l.filtering = false
	l.filterInput.Blur()
	if clear {
		l.filterInput.SetValue("")
	}
}

// UpdateFilter feeds a key to the filter input and reports whether the query changed
func (l PhotoList) UpdateFilter(msg tea.Msg) (PhotoList, tea.Cmd, bool) {
	if !l.filtering {
		return l, nil, false
	}
	before := l.filterInput.Value()
	var cmd tea.Cmd
	l.filterInput, cmd = l.filterInput.Update(msg)
	return l, cmd, l.filterInput.Value() != before
}

// === View ===

// View renders the list
func (l PhotoList) View(focused bool) string {
	border := styles.InactiveBorder
	if focused {
		border = styles.ActiveBorder
	}

	header := styles.TitleStyle.Render("Photos") + styles.DimStyle.Render(fmt.Sprintf(" (%d)", len(l.rows)))
	lines := []string{header}

	if len(l.rows) == 0 {
		lines = append(lines, styles.DimStyle.Render("  No photos"))
	}

	end := l.offset + l.visibleRows()
	if end > len(l.rows) {
		end = len(l.rows)
	}
	for i := l.offset; i < end; i++ {
		lines = append(lines, l.renderRow(l.rows[i], i == l.cursor && focused))
	}

	if l.filtering || l.Query() != "" {
		lines = append(lines, l.filterInput.View())
	}

	return border.
		Width(l.width).
		Height(l.height).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

func (l PhotoList) renderRow(row state.FilterMatch, selected bool) string {
	title := styles.Truncate(row.Photo.Title, l.width-6)
	if title == "" {
		title = "(untitled)"
	}

	base := styles.NormalItemStyle
	if selected {
		base = styles.SelectedItemStyle
	}
	if len(row.MatchedIndexes) == 0 {
		return base.Render(title)
	}

	return base.Render(highlightMatches(title, row.MatchedIndexes, selected))
}

// highlightMatches styles the matched byte offsets of text
func highlightMatches(text string, matchedIndexes []int, selected bool) string {
	matchSet := make(map[int]bool, len(matchedIndexes))
	for _, idx := range matchedIndexes {
		matchSet[idx] = true
	}

	match := styles.MatchHighlightStyle
	if selected {
		match = match.Background(styles.SlateLight)
	}

	var b strings.Builder
	for i, r := range text {
		if matchSet[i] {
			b.WriteString(match.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
