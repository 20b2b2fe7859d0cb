// Package feedview reconciles the two sources an open conversation view
// consumes: pages fetched over REST and events pushed over the live
// channel. Both arrive in arbitrary relative order and may overlap, so the
// view unions them by message id and re-sorts on every snapshot instead of
// assuming monotonic arrival.
package feedview

import (
	"sort"
	"sync"
	"time"
)

type Message struct {
	ID        string
	SenderID  string
	Content   string
	ReadBy    []string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Patch is a partial overlay for an already-known message id, used for
// optimistic edits and update events. Nil fields are left untouched.
type Patch struct {
	Content   *string
	ReadBy    *[]string
	UpdatedAt *time.Time
}

type entry struct {
	base     Message
	hasBase  bool
	patch    Patch
	hasPatch bool
}

// View holds one conversation's merged timeline. Safe for concurrent use:
// the REST fetcher and the push socket feed it from different goroutines.
type View struct {
	mu      sync.Mutex
	entries map[string]*entry
	removed map[string]struct{}
}

func New() *View {
	return &View{
		entries: make(map[string]*entry),
		removed: make(map[string]struct{}),
	}
}

// AppendLive records a message from the live feed. For an id already known
// the first-seen base is kept; any patch accumulated for the id stays on
// top, so a late-arriving bare insert never clobbers a local edit.
func (v *View) AppendLive(message Message) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.upsert(message)
}

// PrependOlderPage merges a page fetched via pagination. Duplicates against
// the live feed collapse by id.
func (v *View) PrependOlderPage(messages []Message) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, message := range messages {
		v.upsert(message)
	}
}

// ApplyLocalPatch overlays partial fields onto an id. Later patches win
// field-by-field over earlier ones; the patch also wins over any insert for
// the same id regardless of which arrived first.
func (v *View) ApplyLocalPatch(id string, patch Patch) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, gone := v.removed[id]; gone {
		return
	}

	e := v.entries[id]
	if e == nil {
		e = &entry{}
		v.entries[id] = e
	}

	if patch.Content != nil {
		e.patch.Content = patch.Content
	}
	if patch.ReadBy != nil {
		e.patch.ReadBy = patch.ReadBy
	}
	if patch.UpdatedAt != nil {
		e.patch.UpdatedAt = patch.UpdatedAt
	}
	e.hasPatch = true
}

// RemoveLocal drops an id from the view and tombstones it, so a later
// historical page cannot resurrect a message deleted while the view was
// open.
func (v *View) RemoveLocal(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	delete(v.entries, id)
	v.removed[id] = struct{}{}
}

// Messages returns the merged timeline ordered by createdAt ascending.
// Two messages can share a timestamp, so ties break on id to keep the
// order stable across snapshots. Patch-only entries (an update that
// outran its insert) are withheld until their base arrives.
func (v *View) Messages() []Message {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]Message, 0, len(v.entries))
	for _, e := range v.entries {
		if !e.hasBase {
			continue
		}
		out = append(out, e.render())
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out
}

func (v *View) upsert(message Message) {
	if _, gone := v.removed[message.ID]; gone {
		return
	}

	e := v.entries[message.ID]
	if e == nil {
		v.entries[message.ID] = &entry{base: message, hasBase: true}
		return
	}
	if !e.hasBase {
		e.base = message
		e.hasBase = true
	}
}

func (e *entry) render() Message {
	message := e.base
	if !e.hasPatch {
		return message
	}

	if e.patch.Content != nil {
		message.Content = *e.patch.Content
	}
	if e.patch.ReadBy != nil {
		message.ReadBy = *e.patch.ReadBy
	}
	if e.patch.UpdatedAt != nil {
		message.UpdatedAt = e.patch.UpdatedAt
	}

	return message
}
