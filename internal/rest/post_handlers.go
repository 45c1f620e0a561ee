package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-pg/urlstruct"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/mpetrenko/content-portal/internal/portal"
)

type PostsRequest struct {
	CategoryID *int `query:"categoryId"`
	Page       *int `query:"page"`
	PageSize   *int `query:"pageSize"`
}

type SearchRequest struct {
	Term  string
	Limit int
}

type PostHandler struct {
	uc  *portal.Manager
	log *slog.Logger
}

func NewPostHandler(uc *portal.Manager, log *slog.Logger) *PostHandler {
	return &PostHandler{
		uc:  uc,
		log: log,
	}
}

// viewerRole derives the privilege level from headers set by the upstream
// auth layer. Authentication itself is out of scope here.
func viewerRole(c echo.Context) portal.Role {
	if c.Request().Header.Get("X-Admin") == "true" {
		return portal.OwnerOrAdmin
	}
	if c.Request().Header.Get("X-User-Id") != "" {
		return portal.Authenticated
	}
	return portal.Anonymous
}

func viewerID(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Request().Header.Get("X-User-Id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *PostHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, portal.ErrPostNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "post not found"})
	case portal.IsValidation(err):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, portal.ErrConflict):
		return c.JSON(http.StatusConflict, map[string]string{"error": "conflict, retry the request"})
	}

	h.log.Error("request failed", "path", c.Path(), "error", err)
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
}

func pageParams(req PostsRequest) (page, pageSize int) {
	page, pageSize = 1, 10
	if req.Page != nil && *req.Page > 0 {
		page = *req.Page
	}
	if req.PageSize != nil && *req.PageSize > 0 {
		pageSize = *req.PageSize
		if pageSize > 100 {
			pageSize = 100
		}
	}
	return page, pageSize
}

// Posts handles GET /api/v1/posts
// @Summary List posts
// @Description Retrieves posts visible to the viewer with optional category filtering, with pagination, sorted by publishAt DESC. Drafts and scheduled posts are excluded for public viewers at the query level.
// @Tags posts
// @Produce json
// @Param categoryId query int false "Filter by category ID"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 10, max: 100)"
// @Success 200 {array} rest.PostSummary
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/posts [get]
func (h *PostHandler) Posts(c echo.Context) error {
	var req PostsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request parameters"})
	}

	page, pageSize := pageParams(req)
	posts, err := h.uc.PostsByFilter(c.Request().Context(), req.CategoryID, viewerRole(c), page, pageSize)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewPostSummaries(posts))
}

// PostCount handles GET /api/v1/posts/count
// @Summary Count posts
// @Description Returns the count of posts visible to the viewer matching the optional categoryId filter
// @Tags posts
// @Produce json
// @Param categoryId query int false "Filter by category ID"
// @Success 200 {integer} int
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/posts/count [get]
func (h *PostHandler) PostCount(c echo.Context) error {
	var req PostsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request parameters"})
	}

	count, err := h.uc.PostCount(c.Request().Context(), req.CategoryID, viewerRole(c))
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, count)
}

// PostByID handles GET /api/v1/posts/:id
// @Summary Get post by ID
// @Description Retrieves a single post with full content and quiz payload. Unpublished posts are a 404 for public viewers. A successful fetch records a view off the request path.
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} rest.Post
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/posts/{id} [get]
func (h *PostHandler) PostByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}

	post, err := h.uc.PostByID(c.Request().Context(), id, viewerRole(c))
	if err != nil {
		return h.handleError(c, err)
	}

	h.uc.RecordView(post.ID)

	return c.JSON(http.StatusOK, NewPost(*post))
}

// SeriesPosts handles GET /api/v1/series/:categoryId
// @Summary Get a series
// @Description Retrieves the posts of one category visible to the viewer in part-number order
// @Tags posts
// @Produce json
// @Param categoryId path int true "Category ID"
// @Success 200 {array} rest.PostSummary
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/series/{categoryId} [get]
func (h *PostHandler) SeriesPosts(c echo.Context) error {
	categoryID, err := strconv.Atoi(c.Param("categoryId"))
	if err != nil || categoryID <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid categoryId"})
	}

	posts, err := h.uc.SeriesPosts(c.Request().Context(), categoryID, viewerRole(c))
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewPostSummaries(posts))
}

// Search handles GET /api/v1/search
// @Summary Search posts
// @Description Free-text search over published posts only
// @Tags posts
// @Produce json
// @Param term query string true "Search term"
// @Param limit query int false "Max results (default: 20)"
// @Success 200 {array} rest.PostSummary
// @Failure 400,500 {object} map[string]string
// @Router /api/v1/search [get]
func (h *PostHandler) Search(c echo.Context) error {
	var req SearchRequest
	if err := urlstruct.Unmarshal(c.Request().Context(), c.QueryParams(), &req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request parameters"})
	}

	posts, err := h.uc.Search(c.Request().Context(), req.Term, req.Limit)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewPostSummaries(posts))
}

// Categories handles GET /api/v1/categories
// @Summary Get all categories
// @Description Retrieves all categories ordered by orderNumber
// @Tags categories
// @Produce json
// @Success 200 {array} rest.Category
// @Failure 500 {object} map[string]string
// @Router /api/v1/categories [get]
func (h *PostHandler) Categories(c echo.Context) error {
	categories, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewCategories(categories))
}

// ToggleFavorite handles POST /api/v1/posts/:id/favorite
// @Summary Toggle a favorite
// @Description Flips the favorite relation for the authenticated user and returns which transition happened with the fresh counter
// @Tags engagement
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} rest.ToggleFavoriteResponse
// @Failure 400,401,404,409,500 {object} map[string]string
// @Router /api/v1/posts/{id}/favorite [post]
func (h *PostHandler) ToggleFavorite(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}

	userID, ok := viewerID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
	}

	result, err := h.uc.ToggleFavorite(c.Request().Context(), userID, id)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, ToggleFavoriteResponse{
		Favorited: result.Favorited,
		NewCount:  result.NewCount,
	})
}

// Favorites handles GET /api/v1/favorites
// @Summary List the viewer's favorites
// @Tags engagement
// @Produce json
// @Success 200 {array} rest.PostSummary
// @Failure 401,500 {object} map[string]string
// @Router /api/v1/favorites [get]
func (h *PostHandler) Favorites(c echo.Context) error {
	userID, ok := viewerID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
	}

	posts, err := h.uc.FavoritesByUser(c.Request().Context(), userID)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewPostSummaries(posts))
}

// GradeQuiz handles POST /api/v1/posts/:id/grade
// @Summary Grade a quiz submission
// @Description Grades the submitted answers against the post's quiz. Unanswered questions count as incorrect. Grading is stateless; nothing is persisted.
// @Tags quiz
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param submission body rest.GradeQuizRequest true "Question index to selected option index"
// @Success 200 {object} rest.GradeQuizResponse
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/posts/{id}/grade [post]
func (h *PostHandler) GradeQuiz(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}

	var req GradeQuizRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid submission"})
	}

	post, err := h.uc.PostByID(c.Request().Context(), id, viewerRole(c))
	if err != nil {
		return h.handleError(c, err)
	}
	if len(post.QuizData) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "post has no quiz"})
	}

	grade := portal.GradeQuiz(post.QuizData, req.Answers)

	return c.JSON(http.StatusOK, GradeQuizResponse{
		Score:       grade.Score,
		Total:       grade.Total,
		PerQuestion: grade.PerQuestion,
	})
}

// SavePost handles POST /api/v1/admin/posts
// @Summary Create or update a post
// @Description Persists an authored post. Quiz invariants are enforced when the post is publishable; drafts may carry an unfinished quiz.
// @Tags admin
// @Accept json
// @Produce json
// @Param post body rest.SavePostRequest true "Post payload"
// @Success 200 {object} rest.Post
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/admin/posts [post]
func (h *PostHandler) SavePost(c echo.Context) error {
	var req SavePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid post payload"})
	}

	post := &portal.Post{}
	post.ID = req.PostID
	post.CategoryID = req.CategoryID
	post.Title = req.Title
	post.Author = req.Author
	post.PartNumber = req.PartNumber
	post.IsPublished = req.IsPublished
	post.PublishAt = req.PublishAt
	post.QuizData = toPortalQuestions(req.Quiz)
	if req.Content != "" {
		post.Content = &req.Content
	}

	saved, err := h.uc.SavePost(c.Request().Context(), post)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewPost(*saved))
}

// DeletePost handles DELETE /api/v1/admin/posts/:id
// @Summary Delete a post
// @Description Soft-deletes a post; it disappears from every view including the authoring list
// @Tags admin
// @Produce json
// @Param id path int true "Post ID"
// @Success 204
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/admin/posts/{id} [delete]
func (h *PostHandler) DeletePost(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}

	if err := h.uc.DeletePost(c.Request().Context(), id); err != nil {
		return h.handleError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// AdminPosts handles GET /api/v1/admin/posts
// @Summary List posts for the authoring screen
// @Description Lists every non-deleted post in all states, most recently edited first
// @Tags admin
// @Produce json
// @Param categoryId query int false "Filter by category ID"
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 10, max: 100)"
// @Success 200 {array} rest.PostSummary
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/admin/posts [get]
func (h *PostHandler) AdminPosts(c echo.Context) error {
	var req PostsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request parameters"})
	}

	page, pageSize := pageParams(req)
	posts, err := h.uc.AdminPosts(c.Request().Context(), req.CategoryID, viewerRole(c), page, pageSize)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NewPostSummaries(posts))
}

// Stats handles GET /api/v1/admin/stats
// @Summary Dashboard statistics
// @Tags admin
// @Produce json
// @Success 200 {object} rest.StatsResponse
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/admin/stats [get]
func (h *PostHandler) Stats(c echo.Context) error {
	stats, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, StatsResponse{
		TotalPosts:     stats.TotalPosts,
		PublishedPosts: stats.PublishedPosts,
		TotalViews:     stats.TotalViews,
		TotalFavorites: stats.TotalFavorites,
	})
}

// NextPartNumber handles GET /api/v1/admin/categories/:categoryId/next-part
// @Summary Suggest the next part number
// @Tags admin
// @Produce json
// @Param categoryId path int true "Category ID"
// @Success 200 {object} rest.NextPartResponse
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/admin/categories/{categoryId}/next-part [get]
func (h *PostHandler) NextPartNumber(c echo.Context) error {
	categoryID, err := strconv.Atoi(c.Param("categoryId"))
	if err != nil || categoryID <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid categoryId"})
	}

	next, err := h.uc.NextPartNumber(c.Request().Context(), categoryID)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(http.StatusOK, NextPartResponse{NextPartNumber: next})
}

// requireAdmin hides admin routes from non-admin viewers behind a 404, the
// same answer a missing resource gives.
func (h *PostHandler) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if viewerRole(c) != portal.OwnerOrAdmin {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "post not found"})
		}
		return next(c)
	}
}

// RegisterRoutes builds the echo instance with all routes attached.
func (h *PostHandler) RegisterRoutes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(h.requestLogger)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")
	api.GET("/posts", h.Posts)
	api.GET("/posts/count", h.PostCount)
	api.GET("/posts/:id", h.PostByID)
	api.POST("/posts/:id/favorite", h.ToggleFavorite)
	api.POST("/posts/:id/grade", h.GradeQuiz)
	api.GET("/series/:categoryId", h.SeriesPosts)
	api.GET("/search", h.Search)
	api.GET("/categories", h.Categories)
	api.GET("/favorites", h.Favorites)

	admin := api.Group("/admin", h.requireAdmin)
	admin.GET("/posts", h.AdminPosts)
	admin.POST("/posts", h.SavePost)
	admin.DELETE("/posts/:id", h.DeletePost)
	admin.GET("/stats", h.Stats)
	admin.GET("/categories/:categoryId/next-part", h.NextPartNumber)

	return e
}

func (h *PostHandler) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)

		h.log.Info("HTTP request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"remote_addr", c.Request().RemoteAddr,
		)

		return err
	}
}
