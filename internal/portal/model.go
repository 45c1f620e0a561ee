package portal

import (
	"github.com/mpetrenko/content-portal/internal/db"
)

type Category struct {
	db.Category
}

// Post is a stored post together with its resolved publication state. State
// is computed at conversion time from the instant the enclosing query used.
type Post struct {
	db.Post
	State    State
	Category Category
}

// ToggleResult reports which transition a favorite toggle performed and the
// post's counter after it.
type ToggleResult struct {
	Favorited bool
	NewCount  int
}

type Stats = db.Stats
