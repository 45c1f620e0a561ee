package rest

import (
	"github.com/mpetrenko/content-portal/internal/portal"
)

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

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

func NewPostSummaries(list []portal.Post) []PostSummary {
	return Map(list, NewPostSummary)
}

func NewCategory(c portal.Category) Category {
	return Category{
		CategoryID:  c.ID,
		Title:       c.Title,
		ParentID:    c.ParentID,
		OrderNumber: c.OrderNumber,
	}
}

func NewCategories(list []portal.Category) []Category {
	return Map(list, NewCategory)
}

func NewQuestion(q portal.Question) Question {
	question := Question{
		Text:     q.Text,
		ImageURL: q.ImageURL,
		Options:  make([]Option, len(q.Options)),
	}
	for i, o := range q.Options {
		question.Options[i] = Option{Text: o.Text, IsCorrect: o.IsCorrect}
	}

	return question
}

func NewQuestions(list []portal.Question) []Question {
	if len(list) == 0 {
		return nil
	}
	return Map(list, NewQuestion)
}

func toPortalQuestions(list []Question) []portal.Question {
	if len(list) == 0 {
		return nil
	}

	questions := make([]portal.Question, len(list))
	for i, q := range list {
		questions[i] = portal.Question{
			Text:     q.Text,
			ImageURL: q.ImageURL,
			Options:  make([]portal.Option, len(q.Options)),
		}
		for j, o := range q.Options {
			questions[i].Options[j] = portal.Option{Text: o.Text, IsCorrect: o.IsCorrect}
		}
	}

	return questions
}
