package rpc

import (
	"context"
	"errors"

	"github.com/vmkteam/zenrpc/v2"

	"github.com/mpetrenko/content-portal/internal/portal"
)

//go:generate zenrpc

// ContentService provides RPC methods over the publication engine. The RPC
// surface is public-facing: every read runs with the anonymous role.
type ContentService struct {
	zenrpc.Service
	manager *portal.Manager
}

func NewContentService(manager *portal.Manager) *ContentService {
	return &ContentService{manager: manager}
}

// List retrieves published posts with optional category filtering, with
// pagination, sorted by publishAt DESC.
//
//zenrpc:categoryId optional category filter
//zenrpc:page=1 page number (1-based)
//zenrpc:pageSize=10 items per page
//zenrpc:return list of post summaries
//zenrpc:500 internal server error
func (s *ContentService) List(ctx context.Context, filter PostFilter) (PostSummaries, error) {
	page, pageSize := 1, 10
	if filter.Page != nil && *filter.Page > 0 {
		page = *filter.Page
	}
	if filter.PageSize != nil && *filter.PageSize > 0 {
		pageSize = *filter.PageSize
	}

	posts, err := s.manager.PostsByFilter(ctx, filter.CategoryID, portal.Anonymous, page, pageSize)
	if err != nil {
		return nil, err
	}

	return NewPostSummaries(posts), nil
}

// Count returns the count of published posts matching the optional categoryId
// filter.
//
//zenrpc:categoryId optional category filter
//zenrpc:return count of posts
//zenrpc:500 internal server error
func (s *ContentService) Count(ctx context.Context, filter PostFilter) (int, error) {
	return s.manager.PostCount(ctx, filter.CategoryID, portal.Anonymous)
}

// ByID retrieves a single published post with full content and quiz payload.
//
//zenrpc:id post numeric ID
//zenrpc:return post with full content
//zenrpc:400 id must be positive
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *ContentService) ByID(ctx context.Context, req PostByIDRequest) (*Post, error) {
	if req.ID <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	post, err := s.manager.PostByID(ctx, req.ID, portal.Anonymous)
	if err != nil {
		if errors.Is(err, portal.ErrPostNotFound) {
			return nil, zenrpc.NewStringError(404, "post not found")
		}
		return nil, err
	}

	s.manager.RecordView(post.ID)

	result := NewPost(*post)
	return &result, nil
}

// ToggleFavorite flips the favorite relation for (userId, postId) and returns
// which transition happened together with the fresh counter.
//
//zenrpc:userId user numeric ID
//zenrpc:postId post numeric ID
//zenrpc:return toggle outcome
//zenrpc:400 userId and postId must be positive
//zenrpc:404 post not found
//zenrpc:409 concurrent toggle, retry
//zenrpc:500 internal server error
func (s *ContentService) ToggleFavorite(ctx context.Context, req ToggleFavoriteRequest) (*ToggleResult, error) {
	if req.UserID <= 0 || req.PostID <= 0 {
		return nil, zenrpc.NewStringError(400, "userId and postId must be positive")
	}

	result, err := s.manager.ToggleFavorite(ctx, req.UserID, req.PostID)
	if err != nil {
		switch {
		case errors.Is(err, portal.ErrPostNotFound):
			return nil, zenrpc.NewStringError(404, "post not found")
		case errors.Is(err, portal.ErrConflict):
			return nil, zenrpc.NewStringError(409, "concurrent toggle, retry")
		}
		return nil, err
	}

	return &ToggleResult{Favorited: result.Favorited, NewCount: result.NewCount}, nil
}

// Grade grades a quiz submission against a published post's quiz. Nothing is
// persisted; the same submission always yields the same grade.
//
//zenrpc:postId post numeric ID
//zenrpc:answers question index to selected option index
//zenrpc:return grade with per-question correctness
//zenrpc:400 post has no quiz
//zenrpc:404 post not found
//zenrpc:500 internal server error
func (s *ContentService) Grade(ctx context.Context, req GradeRequest) (*Grade, error) {
	post, err := s.manager.PostByID(ctx, req.PostID, portal.Anonymous)
	if err != nil {
		if errors.Is(err, portal.ErrPostNotFound) {
			return nil, zenrpc.NewStringError(404, "post not found")
		}
		return nil, err
	}
	if len(post.QuizData) == 0 {
		return nil, zenrpc.NewStringError(400, "post has no quiz")
	}

	grade := portal.GradeQuiz(post.QuizData, req.Answers)
	return &Grade{Score: grade.Score, Total: grade.Total, PerQuestion: grade.PerQuestion}, nil
}

// Categories retrieves all categories ordered by orderNumber.
//
//zenrpc:return list of categories
//zenrpc:404 categories not found
//zenrpc:500 internal server error
func (s *ContentService) Categories(ctx context.Context) (Categories, error) {
	categories, err := s.manager.Categories(ctx)
	if err != nil {
		return nil, err
	}

	if len(categories) == 0 {
		return nil, zenrpc.NewStringError(404, "categories not found")
	}

	return NewCategories(categories), nil
}
