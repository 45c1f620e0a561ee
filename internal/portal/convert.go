package portal

import (
	"time"

	"github.com/mpetrenko/content-portal/internal/db"
)

func NewPost(p db.Post, now time.Time) Post {
	post := Post{
		Post:  p,
		State: ResolveState(p.IsPublished, p.PublishAt, now),
	}
	if p.Category != nil {
		post.Category = NewCategory(*p.Category)
	}

	return post
}

func NewPostList(list []db.Post, now time.Time) []Post {
	result := make([]Post, len(list))
	for i := range list {
		result[i] = NewPost(list[i], now)
	}
	return result
}

func NewCategory(c db.Category) Category {
	return Category{Category: c}
}

func NewCategories(list []db.Category) []Category {
	result := make([]Category, len(list))
	for i := range list {
		result[i] = NewCategory(list[i])
	}
	return result
}
