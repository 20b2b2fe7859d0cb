// Package editwindow gates content mutation to a fixed time box after
// send. The check runs server-side on every edit; any client-side copy of
// it is a UX hint only.
package editwindow

import "time"

// Window is how long after send a message stays editable.
const Window = time.Minute

// CanEdit reports whether a message created at createdAt may still be
// edited at now. The boundary is inclusive.
func CanEdit(createdAt, now time.Time) bool {
	return now.Sub(createdAt) <= Window
}

// IsEdited reports whether updatedAt marks a real edit, i.e. it is set and
// strictly later than createdAt.
func IsEdited(createdAt time.Time, updatedAt *time.Time) bool {
	return updatedAt != nil && updatedAt.After(createdAt)
}
