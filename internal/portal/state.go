package portal

import "time"

// State is the externally visible lifecycle state of a post, derived from the
// stored isPublished/publishAt pair. It is never stored: a Scheduled post
// becomes Published by the passage of time alone, so state must be resolved
// on every read.
type State int

const (
	Draft State = iota
	Scheduled
	Published
)

func (s State) String() string {
	switch s {
	case Draft:
		return "draft"
	case Scheduled:
		return "scheduled"
	case Published:
		return "published"
	}
	return "unknown"
}

// Role is the privilege level of a viewer. Authentication itself is handled
// upstream; the portal only cares which of the three levels a request carries.
type Role int

const (
	Anonymous Role = iota
	Authenticated
	OwnerOrAdmin
)

func (r Role) String() string {
	switch r {
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	case OwnerOrAdmin:
		return "ownerOrAdmin"
	}
	return "unknown"
}

// ResolveState maps the stored publication flags to a lifecycle state.
// The immediate flag and the schedule are two independent ways of saying
// "publish this": a future schedule always defers visibility, and an elapsed
// schedule publishes even if the immediate flag was never set.
func ResolveState(isPublished bool, publishAt *time.Time, now time.Time) State {
	if isPublished && (publishAt == nil || !publishAt.After(now)) {
		return Published
	}
	if publishAt != nil && publishAt.After(now) {
		return Scheduled
	}
	if publishAt != nil && !publishAt.After(now) {
		return Published
	}
	return Draft
}

// VisibleTo reports whether a post in this state may be returned to a viewer
// with the given role. Owner/admin sees everything, everyone else sees only
// published content.
func (s State) VisibleTo(role Role) bool {
	if role == OwnerOrAdmin {
		return true
	}
	return s == Published
}
