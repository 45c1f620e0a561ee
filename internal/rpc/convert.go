package rpc

import "github.com/mpetrenko/content-portal/internal/portal"

func NewPost(p portal.Post) Post {
	post := Post{
		PostID:         p.ID,
		CategoryID:     p.CategoryID,
		Title:          p.Title,
		Author:         p.Author,
		PartNumber:     p.PartNumber,
		State:          p.State.String(),
		PublishAt:      p.PublishAt,
		FavoritesCount: p.FavoritesCount,
		ViewCount:      p.ViewCount,
		Quiz:           NewQuestions(p.QuizData),
		Category:       NewCategory(p.Category),
	}
	if p.Content != nil {
		post.Content = *p.Content
	}

	return post
}

func NewPostSummary(p portal.Post) PostSummary {
	return PostSummary{
		PostID:         p.ID,
		CategoryID:     p.CategoryID,
		Title:          p.Title,
		Author:         p.Author,
		PartNumber:     p.PartNumber,
		State:          p.State.String(),
		PublishAt:      p.PublishAt,
		FavoritesCount: p.FavoritesCount,
		ViewCount:      p.ViewCount,
		Category:       NewCategory(p.Category),
	}
}

func NewPostSummaries(list []portal.Post) PostSummaries {
	result := make(PostSummaries, len(list))
	for i := range list {
		result[i] = NewPostSummary(list[i])
	}
	return result
}

func NewCategory(c portal.Category) Category {
	return Category{
		CategoryID:  c.ID,
		Title:       c.Title,
		ParentID:    c.ParentID,
		OrderNumber: c.OrderNumber,
	}
}

func NewCategories(list []portal.Category) Categories {
	result := make(Categories, len(list))
	for i := range list {
		result[i] = NewCategory(list[i])
	}
	return result
}

func NewQuestions(list []portal.Question) []Question {
	if len(list) == 0 {
		return nil
	}

	questions := make([]Question, len(list))
	for i, q := range list {
		questions[i] = Question{
			Text:     q.Text,
			ImageURL: q.ImageURL,
			Options:  make([]Option, len(q.Options)),
		}
		for j, o := range q.Options {
			questions[i].Options[j] = Option{Text: o.Text, IsCorrect: o.IsCorrect}
		}
	}

	return questions
}
