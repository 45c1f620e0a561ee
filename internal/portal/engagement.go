package portal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"

	"github.com/mpetrenko/content-portal/internal/db"
)

// ToggleFavorite flips the favorite relation for (userID, postID). The
// existence check and both mutations run in a single store transaction, so
// two concurrent toggles by the same user can never double-insert or
// double-decrement. A toggle that lost the race returns ErrConflict and may
// be retried verbatim.
func (m *Manager) ToggleFavorite(ctx context.Context, userID, postID int) (ToggleResult, error) {
	favorited, newCount, err := m.db.ToggleFavorite(ctx, userID, postID)
	if err != nil {
		if errors.Is(err, db.ErrToggleContention) {
			return ToggleResult{}, ErrConflict
		}
		if errors.Is(err, pg.ErrNoRows) {
			return ToggleResult{}, ErrPostNotFound
		}
		return ToggleResult{}, fmt.Errorf("db toggle favorite: %w", err)
	}

	return ToggleResult{Favorited: favorited, NewCount: newCount}, nil
}

// FavoritesByUser lists the published posts a user currently favorites.
func (m *Manager) FavoritesByUser(ctx context.Context, userID int) ([]Post, error) {
	now := m.now()
	dbPosts, err := m.db.FavoritesByUser(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("db get user favorites: %w", err)
	}

	return NewPostList(dbPosts, now), nil
}

// RecordView bumps a post's view counter off the request path. Failures are
// logged and swallowed: a lost view must never fail the content fetch, and a
// timed-out store call is treated as unknown outcome with no compensation.
func (m *Manager) RecordView(postID int) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := m.db.IncrementViewCount(ctx, postID); err != nil {
			m.log.Error("failed to record view", "postId", postID, "error", err)
		}
	}()
}
