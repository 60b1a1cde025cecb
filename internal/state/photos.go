package state

import (
	"sort"
	"strings"

	fuzzyrank "github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/sahilm/fuzzy"

	"github.com/mmcdole/foto/internal/domain"
)

// PhotoCollection holds the ordered photos of the displayed profile.
// No two entries share an ID.
type PhotoCollection struct {
	ownerID string
	photos  []domain.Photo
	err     string
	message *Message
}

func newPhotoCollection() *PhotoCollection {
	return &PhotoCollection{}
}

// Owner returns the user whose photos were last loaded
func (c *PhotoCollection) Owner() string {
	return c.ownerID
}

// Photos returns a copy of the collection in display order
func (c *PhotoCollection) Photos() []domain.Photo {
	out := make([]domain.Photo, len(c.photos))
	copy(out, c.photos)
	return out
}

func (c *PhotoCollection) Len() int {
	return len(c.photos)
}

// Get returns the photo with the given ID
func (c *PhotoCollection) Get(id string) (domain.Photo, bool) {
	if i := c.index(id); i >= 0 {
		return c.photos[i], true
	}
	return domain.Photo{}, false
}

// Contains reports whether a photo with the given ID is present
func (c *PhotoCollection) Contains(id string) bool {
	return c.index(id) >= 0
}

// Err returns the text of the last failure, "" after a success
func (c *PhotoCollection) Err() string {
	return c.err
}

// Message returns the transient message, if one is showing
func (c *PhotoCollection) Message() (Message, bool) {
	if c.message == nil {
		return Message{}, false
	}
	return *c.message, true
}

func (c *PhotoCollection) index(id string) int {
	for i := range c.photos {
		if c.photos[i].ID == id {
			return i
		}
	}
	return -1
}

// replace swaps in a fetched sequence. Repeated IDs keep their first position.
func (c *PhotoCollection) replace(ownerID string, photos []domain.Photo) {
	seen := make(map[string]bool, len(photos))
	next := make([]domain.Photo, 0, len(photos))
	for _, p := range photos {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		next = append(next, p)
	}
	c.ownerID = ownerID
	c.photos = next
	c.err = ""
}

// add appends p, or overwrites the entry that already has its ID
func (c *PhotoCollection) add(p domain.Photo) {
	if i := c.index(p.ID); i >= 0 {
		c.photos[i] = p
		return
	}
	c.photos = append(c.photos, p)
}

// retitle changes a title in place; absent IDs are ignored
func (c *PhotoCollection) retitle(id, title string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.photos[i].Title = title
	return true
}

func (c *PhotoCollection) remove(id string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.photos = append(c.photos[:i:i], c.photos[i+1:]...)
	return true
}

func (c *PhotoCollection) fail(text string) {
	c.err = text
}

func (c *PhotoCollection) clearErr() {
	c.err = ""
}

func (c *PhotoCollection) setMessage(m Message) {
	c.message = &m
}

func (c *PhotoCollection) clearMessage() {
	c.message = nil
}

// titleSource lets sahilm/fuzzy match against lowercase titles without copying photos
type titleSource []string

func (s titleSource) String(i int) string { return s[i] }
func (s titleSource) Len() int            { return len(s) }

func (c *PhotoCollection) lowerTitles() titleSource {
	titles := make(titleSource, len(c.photos))
	for i, p := range c.photos {
		titles[i] = strings.ToLower(p.Title)
	}
	return titles
}

// FilterMatch is one photo kept by Filter
type FilterMatch struct {
	Photo          domain.Photo
	Index          int   // Position in the collection
	MatchedIndexes []int // Title characters that matched, for highlighting
}

// Filter returns the photos whose title fuzzily matches query, best match
// first. An empty query keeps every photo in collection order.
func (c *PhotoCollection) Filter(query string) []FilterMatch {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		out := make([]FilterMatch, len(c.photos))
		for i, p := range c.photos {
			out[i] = FilterMatch{Photo: p, Index: i}
		}
		return out
	}

	matches := fuzzy.FindFrom(query, c.lowerTitles())
	out := make([]FilterMatch, len(matches))
	for i, m := range matches {
		out[i] = FilterMatch{
			Photo:          c.photos[m.Index],
			Index:          m.Index,
			MatchedIndexes: m.MatchedIndexes,
		}
	}
	return out
}

// Find returns the photos whose title contains the characters of query in
// order, closest title first. Ties keep collection order.
func (c *PhotoCollection) Find(query string) []domain.Photo {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	titles := make([]string, len(c.photos))
	for i, p := range c.photos {
		titles[i] = p.Title
	}

	ranks := fuzzyrank.RankFindFold(query, titles)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	out := make([]domain.Photo, len(ranks))
	for i, r := range ranks {
		out[i] = c.photos[r.OriginalIndex]
	}
	return out
}
