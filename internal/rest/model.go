package rest

import "time"

type Category struct {
	CategoryID  int    `json:"categoryId"`
	Title       string `json:"title"`
	ParentID    *int   `json:"parentId,omitempty"`
	OrderNumber int    `json:"orderNumber"`
}

type Option struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

type Question struct {
	Text     string   `json:"text"`
	ImageURL string   `json:"imageUrl,omitempty"`
	Options  []Option `json:"options"`
}

type Post struct {
	PostID         int        `json:"postId"`
	CategoryID     int        `json:"categoryId"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	Author         string     `json:"author"`
	PartNumber     int        `json:"partNumber"`
	State          string     `json:"state"`
	PublishAt      *time.Time `json:"publishAt,omitempty"`
	FavoritesCount int        `json:"favoritesCount"`
	ViewCount      int        `json:"viewCount"`
	Quiz           []Question `json:"quiz,omitempty"`
	Category       Category   `json:"category"`
}

// PostSummary is the listing shape: no content, no quiz payload.
type PostSummary struct {
	PostID         int        `json:"postId"`
	CategoryID     int        `json:"categoryId"`
	Title          string     `json:"title"`
	Author         string     `json:"author"`
	PartNumber     int        `json:"partNumber"`
	State          string     `json:"state"`
	PublishAt      *time.Time `json:"publishAt,omitempty"`
	FavoritesCount int        `json:"favoritesCount"`
	ViewCount      int        `json:"viewCount"`
	Category       Category   `json:"category"`
}

type SavePostRequest struct {
	PostID      int        `json:"postId,omitempty"`
	CategoryID  int        `json:"categoryId"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	Author      string     `json:"author"`
	PartNumber  int        `json:"partNumber"`
	IsPublished bool       `json:"isPublished"`
	PublishAt   *time.Time `json:"publishAt,omitempty"`
	Quiz        []Question `json:"quiz,omitempty"`
}

type ToggleFavoriteResponse struct {
	Favorited bool `json:"favorited"`
	NewCount  int  `json:"newCount"`
}

type GradeQuizRequest struct {
	Answers map[int]int `json:"answers"`
}

type GradeQuizResponse struct {
	Score       int    `json:"score"`
	Total       int    `json:"total"`
	PerQuestion []bool `json:"perQuestion"`
}

type StatsResponse struct {
	TotalPosts     int `json:"totalPosts"`
	PublishedPosts int `json:"publishedPosts"`
	TotalViews     int `json:"totalViews"`
	TotalFavorites int `json:"totalFavorites"`
}

type NextPartResponse struct {
	NextPartNumber int `json:"nextPartNumber"`
}
