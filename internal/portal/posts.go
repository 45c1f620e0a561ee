package portal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-pg/pg/v10"

	"github.com/mpetrenko/content-portal/internal/db"
)

// Manager is the domain layer over the content store. All durable state lives
// in the store; the manager itself holds no mutable state, so its methods are
// safe to call concurrently.
type Manager struct {
	db  *db.Repository
	log *slog.Logger
	now func() time.Time
}

func NewManager(repo *db.Repository, log *slog.Logger) *Manager {
	return &Manager{
		db:  repo,
		log: log,
		now: time.Now,
	}
}

// WithClock replaces the time source, used by tests to pin "now".
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// visibleAt returns the instant to use as the store-side visibility cutoff,
// or nil for roles that see all states. Filtering happens in the query itself,
// never only in the response, so drafts are unreachable for public viewers.
func (m *Manager) visibleAt(role Role) *time.Time {
	if role == OwnerOrAdmin {
		return nil
	}
	now := m.now()
	return &now
}

// PostsByFilter retrieves posts visible to the role, with optional category
// filtering and pagination, sorted by publishAt DESC.
func (m *Manager) PostsByFilter(ctx context.Context, categoryID *int, role Role, page, pageSize int) ([]Post, error) {
	dbPosts, err := m.db.Posts(ctx, categoryID, m.visibleAt(role), page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("db get posts: %w", err)
	}

	return NewPostList(dbPosts, m.now()), nil
}

// SeriesPosts returns a category's posts visible to the role in part-number
// order.
func (m *Manager) SeriesPosts(ctx context.Context, categoryID int, role Role) ([]Post, error) {
	dbPosts, err := m.db.SeriesPosts(ctx, categoryID, m.visibleAt(role))
	if err != nil {
		return nil, fmt.Errorf("db get series posts: %w", err)
	}

	return NewPostList(dbPosts, m.now()), nil
}

// AdminPosts lists every non-deleted post for the authoring screen, most
// recently edited first.
func (m *Manager) AdminPosts(ctx context.Context, categoryID *int, role Role, page, pageSize int) ([]Post, error) {
	if role != OwnerOrAdmin {
		return nil, ErrPostNotFound
	}

	dbPosts, err := m.db.AdminPosts(ctx, categoryID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("db get admin posts: %w", err)
	}

	return NewPostList(dbPosts, m.now()), nil
}

func (m *Manager) PostCount(ctx context.Context, categoryID *int, role Role) (int, error) {
	count, err := m.db.PostCount(ctx, categoryID, m.visibleAt(role))
	if err != nil {
		return 0, fmt.Errorf("db get post count: %w", err)
	}

	return count, nil
}

// PostByID retrieves a single post. A post that exists but is not visible to
// the role yields ErrPostNotFound, same as an absent one.
func (m *Manager) PostByID(ctx context.Context, postID int, role Role) (*Post, error) {
	dbPost, err := m.db.PostByID(ctx, postID, m.visibleAt(role))
	if err != nil {
		return nil, fmt.Errorf("db get post by id: %w", err)
	}
	if dbPost == nil {
		return nil, ErrPostNotFound
	}

	post := NewPost(*dbPost, m.now())
	return &post, nil
}

// Search runs a free-text search over published posts only. Drafts and
// scheduled posts never appear regardless of the term or the caller's role.
func (m *Manager) Search(ctx context.Context, term string, limit int) ([]Post, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []Post{}, nil
	}

	now := m.now()
	dbPosts, err := m.db.SearchPosts(ctx, term, now, limit)
	if err != nil {
		return nil, fmt.Errorf("db search posts: %w", err)
	}

	return NewPostList(dbPosts, now), nil
}

// SavePost validates and persists an authored post. Quiz invariants are
// enforced only when the post would be publicly visible now or later; a plain
// draft may carry an unfinished quiz.
func (m *Manager) SavePost(ctx context.Context, post *Post) (*Post, error) {
	if post.Title == "" {
		return nil, validationErrorf("title is required")
	}
	if post.CategoryID == 0 {
		return nil, validationErrorf("categoryId is required")
	}
	if post.PartNumber < 1 {
		return nil, validationErrorf("partNumber must be >= 1")
	}

	state := ResolveState(post.IsPublished, post.PublishAt, m.now())
	if state != Draft && len(post.QuizData) > 0 {
		if err := ValidateQuiz(post.QuizData); err != nil {
			return nil, err
		}
	}

	category, err := m.db.CategoryByID(ctx, post.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("db get category: %w", err)
	}
	if category == nil {
		return nil, validationErrorf("category %d does not exist", post.CategoryID)
	}

	if err := m.db.UpsertPost(ctx, &post.Post); err != nil {
		if errors.Is(err, pg.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("db upsert post: %w", err)
	}

	saved := NewPost(post.Post, m.now())
	saved.Category = NewCategory(*category)
	return &saved, nil
}

// DeletePost soft-deletes a post so it disappears from every view.
func (m *Manager) DeletePost(ctx context.Context, postID int) error {
	deleted, err := m.db.DeletePost(ctx, postID)
	if err != nil {
		return fmt.Errorf("db delete post: %w", err)
	}
	if !deleted {
		return ErrPostNotFound
	}

	return nil
}

// NextPartNumber suggests the next part number for a new post in a category.
func (m *Manager) NextPartNumber(ctx context.Context, categoryID int) (int, error) {
	next, err := m.db.NextPartNumber(ctx, categoryID)
	if err != nil {
		return 0, fmt.Errorf("db next part number: %w", err)
	}

	return next, nil
}

// Stats aggregates the admin dashboard numbers.
func (m *Manager) Stats(ctx context.Context) (Stats, error) {
	stats, err := m.db.StatsSummary(ctx, m.now())
	if err != nil {
		return Stats{}, fmt.Errorf("db stats summary: %w", err)
	}

	return stats, nil
}

func (m *Manager) Categories(ctx context.Context) ([]Category, error) {
	list, err := m.db.Categories(ctx)

	return NewCategories(list), err
}
