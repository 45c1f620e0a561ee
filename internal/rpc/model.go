package rpc

import (
	"time"
)

type PostFilter struct {
	//categoryId optional category filter
	CategoryID *int `json:"categoryId,omitempty"`
	//page=1 page number (1-based)
	Page *int `json:"page,omitempty"`
	//pageSize=10 items per page
	PageSize *int `json:"pageSize,omitempty"`
}

type PostByIDRequest struct {
	ID int `json:"id"`
}

type ToggleFavoriteRequest struct {
	UserID int `json:"userId"`
	PostID int `json:"postId"`
}

type GradeRequest struct {
	PostID  int         `json:"postId"`
	Answers map[int]int `json:"answers"`
}

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

type ToggleResult struct {
	Favorited bool `json:"favorited"`
	NewCount  int  `json:"newCount"`
}

type Grade struct {
	Score       int    `json:"score"`
	Total       int    `json:"total"`
	PerQuestion []bool `json:"perQuestion"`
}

type PostSummaries []PostSummary

type Categories []Category
