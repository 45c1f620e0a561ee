package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
)

const (
	StatusActive  = 1
	StatusDeleted = 2
)

// ErrToggleContention is returned when a favorite toggle lost a race with a
// concurrent toggle by the same user. The operation is safe to retry as-is.
var ErrToggleContention = errors.New("favorite toggle contention")

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// visibleClause holds the single SQL form of the publication rule: a post is
// live when the immediate flag is set with no schedule, or when its scheduled
// instant has passed (the elapsed schedule publishes even with the flag unset).
const visibleClause = `("t"."isPublished" = TRUE AND "t"."publishAt" IS NULL) OR "t"."publishAt" <= ?`

// Posts retrieves posts with optional filtering by categoryID, with pagination.
// When visibleAt is non-nil only posts publicly visible at that instant are
// returned; a nil visibleAt is the authoring view and includes drafts and
// scheduled posts. Results are sorted by publishAt DESC with drafts last.
func (r *Repository) Posts(ctx context.Context, categoryID *int, visibleAt *time.Time,
	page, pageSize int) ([]Post, error) {

	if page < 1 || pageSize < 1 {
		return nil, fmt.Errorf(
			"page or pageSize must be greater than 0: page=%d, pageSize=%d",
			page, pageSize,
		)
	}

	offset := (page - 1) * pageSize

	var posts []Post
	query := r.db.ModelContext(ctx, &posts).
		Relation("Category").
		Where(`"t"."statusId" = ?`, StatusActive).
		Where(`"category"."statusId" = ?`, StatusActive)

	if visibleAt != nil {
		query = query.Where(visibleClause, *visibleAt)
	}

	if categoryID != nil {
		query = query.Where(`"t"."categoryId" = ?`, *categoryID)
	}

	err := query.
		OrderExpr(`"t"."publishAt" DESC NULLS LAST, "t"."postId" DESC`).
		Limit(pageSize).
		Offset(offset).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}

	return posts, nil
}

// SeriesPosts returns the posts of one category ordered by part number, the
// reading order of a series.
func (r *Repository) SeriesPosts(ctx context.Context, categoryID int, visibleAt *time.Time) ([]Post, error) {
	var posts []Post
	query := r.db.ModelContext(ctx, &posts).
		Relation("Category").
		Where(`"t"."statusId" = ?`, StatusActive).
		Where(`"t"."categoryId" = ?`, categoryID)

	if visibleAt != nil {
		query = query.Where(visibleClause, *visibleAt)
	}

	err := query.
		OrderExpr(`"t"."partNumber" ASC, "t"."postId" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query series posts: %w", err)
	}

	return posts, nil
}

// AdminPosts returns every non-deleted post regardless of publication state,
// most recently edited first. Must only be served to owner/admin viewers.
func (r *Repository) AdminPosts(ctx context.Context, categoryID *int, page, pageSize int) ([]Post, error) {
	if page < 1 || pageSize < 1 {
		return nil, fmt.Errorf(
			"page or pageSize must be greater than 0: page=%d, pageSize=%d",
			page, pageSize,
		)
	}

	var posts []Post
	query := r.db.ModelContext(ctx, &posts).
		Relation("Category").
		Where(`"t"."statusId" = ?`, StatusActive)

	if categoryID != nil {
		query = query.Where(`"t"."categoryId" = ?`, *categoryID)
	}

	err := query.
		OrderExpr(`"t"."updatedAt" DESC NULLS LAST, "t"."postId" DESC`).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query admin posts: %w", err)
	}

	return posts, nil
}

func (r *Repository) PostCount(ctx context.Context, categoryID *int, visibleAt *time.Time) (int, error) {
	query := r.db.ModelContext(ctx, (*Post)(nil)).
		Where(`"t"."statusId" = ?`, StatusActive)

	if visibleAt != nil {
		query = query.Where(visibleClause, *visibleAt)
	}

	if categoryID != nil {
		query = query.Where(`"t"."categoryId" = ?`, *categoryID)
	}

	count, err := query.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get post count: %w", err)
	}

	return count, nil
}

// PostByID retrieves a single post. With a non-nil visibleAt the lookup also
// misses on drafts and not-yet-due scheduled posts, so an unpublished post is
// indistinguishable from an absent one for public viewers.
func (r *Repository) PostByID(ctx context.Context, postID int, visibleAt *time.Time) (*Post, error) {
	post := &Post{}
	query := r.db.ModelContext(ctx, post).
		Relation("Category").
		Where(`"t"."statusId" = ?`, StatusActive).
		Where(`"t"."postId" = ?`, postID)

	if visibleAt != nil {
		query = query.Where(visibleClause, *visibleAt)
	}

	err := query.Select()
	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

// SearchPosts runs a case-insensitive substring search over title and content
// of publicly visible posts.
func (r *Repository) SearchPosts(ctx context.Context, term string, visibleAt time.Time, limit int) ([]Post, error) {
	if limit < 1 {
		limit = 20
	}

	pattern := "%" + term + "%"

	var posts []Post
	err := r.db.ModelContext(ctx, &posts).
		Relation("Category").
		Where(`"t"."statusId" = ?`, StatusActive).
		Where(visibleClause, visibleAt).
		Where(`("t"."title" ILIKE ? OR "t"."content" ILIKE ?)`, pattern, pattern).
		OrderExpr(`"t"."publishAt" DESC NULLS LAST`).
		Limit(limit).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}

	return posts, nil
}

// UpsertPost inserts a new post (ID == 0) or updates an existing one in place.
// The stored row keeps the raw isPublished/publishAt pair untouched; state is
// resolved on read.
func (r *Repository) UpsertPost(ctx context.Context, post *Post) error {
	now := time.Now()

	if post.ID == 0 {
		post.CreatedAt = now
		post.StatusID = StatusActive
		if _, err := r.db.ModelContext(ctx, post).Insert(); err != nil {
			return fmt.Errorf("failed to insert post: %w", err)
		}
		return nil
	}

	post.UpdatedAt = &now
	res, err := r.db.ModelContext(ctx, post).WherePK().Update()
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	if res.RowsAffected() == 0 {
		return pg.ErrNoRows
	}

	return nil
}

// DeletePost soft-deletes a post. Deleted posts are excluded from every query
// in this repository.
func (r *Repository) DeletePost(ctx context.Context, postID int) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE "posts" SET "statusId" = ? WHERE "postId" = ? AND "statusId" = ?`,
		StatusDeleted, postID, StatusActive)
	if err != nil {
		return false, fmt.Errorf("failed to delete post: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// ToggleFavorite flips the favorite relation for (userID, postID) and adjusts
// the post's cached counter inside one transaction, so the check-and-mutate
// pair can never interleave with a concurrent toggle. Returns whether the post
// is now favorited and the fresh counter value.
func (r *Repository) ToggleFavorite(ctx context.Context, userID, postID int) (bool, int, error) {
	var favorited bool
	var newCount int

	err := r.db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		// Lock the post row first: a missing post surfaces as pg.ErrNoRows
		// before the favorites table is touched, and concurrent toggles on
		// the same post queue up behind the lock.
		var one int
		_, err := tx.QueryOneContext(ctx, pg.Scan(&one),
			`SELECT 1 FROM "posts" WHERE "postId" = ? AND "statusId" = ? FOR UPDATE`,
			postID, StatusActive)
		if err != nil {
			return fmt.Errorf("lock post row: %w", err)
		}

		res, err := tx.ModelContext(ctx, (*Favorite)(nil)).
			Where(`"t"."userId" = ?`, userID).
			Where(`"t"."postId" = ?`, postID).
			Delete()
		if err != nil {
			return fmt.Errorf("delete favorite: %w", err)
		}

		delta := -1
		if res.RowsAffected() == 0 {
			fav := &Favorite{UserID: userID, PostID: postID, CreatedAt: time.Now()}
			ins, err := tx.ModelContext(ctx, fav).
				OnConflict("DO NOTHING").
				Insert()
			if err != nil {
				return fmt.Errorf("insert favorite: %w", err)
			}
			if ins.RowsAffected() == 0 {
				// Row appeared between our delete and insert.
				return ErrToggleContention
			}
			delta = 1
			favorited = true
		}

		_, err = tx.QueryOneContext(ctx, pg.Scan(&newCount),
			`UPDATE "posts" SET "favoritesCount" = "favoritesCount" + ?
			 WHERE "postId" = ? AND "statusId" = ?
			 RETURNING "favoritesCount"`,
			delta, postID, StatusActive)
		if err != nil {
			return fmt.Errorf("update favorites count: %w", err)
		}

		return nil
	})
	if err != nil {
		return false, 0, err
	}

	return favorited, newCount, nil
}

// FavoriteCount counts the actual favorite rows for a post, the ground truth
// behind the cached counter.
func (r *Repository) FavoriteCount(ctx context.Context, postID int) (int, error) {
	count, err := r.db.ModelContext(ctx, (*Favorite)(nil)).
		Where(`"t"."postId" = ?`, postID).
		Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count favorites: %w", err)
	}

	return count, nil
}

// FavoritesByUser returns the publicly visible posts the user currently
// favorites, most recently favorited first.
func (r *Repository) FavoritesByUser(ctx context.Context, userID int, visibleAt time.Time) ([]Post, error) {
	var posts []Post
	err := r.db.ModelContext(ctx, &posts).
		Relation("Category").
		Join(`JOIN "favorites" AS "f" ON "f"."postId" = "t"."postId"`).
		Where(`"f"."userId" = ?`, userID).
		Where(`"t"."statusId" = ?`, StatusActive).
		Where(visibleClause, visibleAt).
		OrderExpr(`"f"."createdAt" DESC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query user favorites: %w", err)
	}

	return posts, nil
}

// IncrementViewCount bumps a post's view counter by one. At-least-once is
// acceptable here; callers treat failures as non-fatal.
func (r *Repository) IncrementViewCount(ctx context.Context, postID int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE "posts" SET "viewCount" = "viewCount" + 1 WHERE "postId" = ? AND "statusId" = ?`,
		postID, StatusActive)
	if err != nil {
		return fmt.Errorf("failed to increment view count: %w", err)
	}

	return nil
}

// NextPartNumber suggests the next free part number within a category.
func (r *Repository) NextPartNumber(ctx context.Context, categoryID int) (int, error) {
	var next int
	_, err := r.db.QueryOneContext(ctx, pg.Scan(&next),
		`SELECT COALESCE(MAX("partNumber"), 0) + 1 FROM "posts"
		 WHERE "categoryId" = ? AND "statusId" = ?`,
		categoryID, StatusActive)
	if err != nil {
		return 0, fmt.Errorf("failed to get next part number: %w", err)
	}

	return next, nil
}

type Stats struct {
	TotalPosts     int
	PublishedPosts int
	TotalViews     int
	TotalFavorites int
}

// StatsSummary aggregates the dashboard numbers in one query.
func (r *Repository) StatsSummary(ctx context.Context, visibleAt time.Time) (Stats, error) {
	var s Stats
	_, err := r.db.QueryOneContext(ctx,
		pg.Scan(&s.TotalPosts, &s.PublishedPosts, &s.TotalViews, &s.TotalFavorites),
		`SELECT count(*),
		        count(*) FILTER (WHERE ("isPublished" = TRUE AND "publishAt" IS NULL) OR "publishAt" <= ?),
		        COALESCE(sum("viewCount"), 0),
		        COALESCE(sum("favoritesCount"), 0)
		 FROM "posts" WHERE "statusId" = ?`,
		visibleAt, StatusActive)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to get stats summary: %w", err)
	}

	return s, nil
}

func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		Where(`"statusId" = ?`, StatusActive).
		OrderExpr(`"orderNumber" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) CategoryByID(ctx context.Context, categoryID int) (*Category, error) {
	category := &Category{}
	err := r.db.ModelContext(ctx, category).
		Where(`"categoryId" = ?`, categoryID).
		Where(`"statusId" = ?`, StatusActive).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get category by id: %w", err)
	}

	return category, nil
}
