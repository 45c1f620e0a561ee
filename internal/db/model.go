// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Category struct {
		ID, Title, ParentID, OrderNumber, StatusID string

		Parent, Status string
	}
	Favorite struct {
		UserID, PostID, CreatedAt string

		Post string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
	Post struct {
		ID, CategoryID, Title, Content, Author, PartNumber, IsPublished, PublishAt,
		FavoritesCount, ViewCount, QuizData, StatusID, CreatedAt, UpdatedAt string

		Category, Status string
	}
	Status struct {
		ID string
	}
}{
	Category: struct {
		ID, Title, ParentID, OrderNumber, StatusID string

		Parent, Status string
	}{
		ID:          "categoryId",
		Title:       "title",
		ParentID:    "parentId",
		OrderNumber: "orderNumber",
		StatusID:    "statusId",

		Parent: "Parent",
		Status: "Status",
	},
	Favorite: struct {
		UserID, PostID, CreatedAt string

		Post string
	}{
		UserID:    "userId",
		PostID:    "postId",
		CreatedAt: "createdAt",

		Post: "Post",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
	Post: struct {
		ID, CategoryID, Title, Content, Author, PartNumber, IsPublished, PublishAt,
		FavoritesCount, ViewCount, QuizData, StatusID, CreatedAt, UpdatedAt string

		Category, Status string
	}{
		ID:             "postId",
		CategoryID:     "categoryId",
		Title:          "title",
		Content:        "content",
		Author:         "author",
		PartNumber:     "partNumber",
		IsPublished:    "isPublished",
		PublishAt:      "publishAt",
		FavoritesCount: "favoritesCount",
		ViewCount:      "viewCount",
		QuizData:       "quizData",
		StatusID:       "statusId",
		CreatedAt:      "createdAt",
		UpdatedAt:      "updatedAt",

		Category: "Category",
		Status:   "Status",
	},
	Status: struct {
		ID string
	}{
		ID: "statusId",
	},
}

var Tables = struct {
	Category struct {
		Name, Alias string
	}
	Favorite struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
	Post struct {
		Name, Alias string
	}
	Status struct {
		Name, Alias string
	}
}{
	Category: struct {
		Name, Alias string
	}{
		Name:  "categories",
		Alias: "t",
	},
	Favorite: struct {
		Name, Alias string
	}{
		Name:  "favorites",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
	Post: struct {
		Name, Alias string
	}{
		Name:  "posts",
		Alias: "t",
	},
	Status: struct {
		Name, Alias string
	}{
		Name:  "statuses",
		Alias: "t",
	},
}

type Category struct {
	tableName struct{} `pg:"categories,alias:t,discard_unknown_columns"`

	ID          int    `pg:"categoryId,pk"`
	Title       string `pg:"title,use_zero"`
	ParentID    *int   `pg:"parentId"`
	OrderNumber int    `pg:"orderNumber,use_zero"`
	StatusID    int    `pg:"statusId,use_zero"`

	Parent *Category `pg:"fk:parentId,rel:has-one"`
	Status *Status   `pg:"fk:statusId,rel:has-one"`
}

type Favorite struct {
	tableName struct{} `pg:"favorites,alias:t,discard_unknown_columns"`

	UserID    int       `pg:"userId,pk"`
	PostID    int       `pg:"postId,pk"`
	CreatedAt time.Time `pg:"createdAt,use_zero"`

	Post *Post `pg:"fk:postId,rel:has-one"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}

// Option is one answer choice of a quiz question. Stored inside the post's
// quizData jsonb document, never as a separate row.
type Option struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect"`
}

// Question is one quiz unit embedded in a post.
type Question struct {
	Text     string   `json:"text"`
	ImageURL string   `json:"imageUrl,omitempty"`
	Options  []Option `json:"options"`
}

type Post struct {
	tableName struct{} `pg:"posts,alias:t,discard_unknown_columns"`

	ID             int        `pg:"postId,pk"`
	CategoryID     int        `pg:"categoryId,use_zero"`
	Title          string     `pg:"title,use_zero"`
	Content        *string    `pg:"content"`
	Author         string     `pg:"author,use_zero"`
	PartNumber     int        `pg:"partNumber,use_zero"`
	IsPublished    bool       `pg:"isPublished,use_zero"`
	PublishAt      *time.Time `pg:"publishAt"`
	FavoritesCount int        `pg:"favoritesCount,use_zero"`
	ViewCount      int        `pg:"viewCount,use_zero"`
	QuizData       []Question `pg:"quizData,type:jsonb"`
	StatusID       int        `pg:"statusId,use_zero"`
	CreatedAt      time.Time  `pg:"createdAt,use_zero"`
	UpdatedAt      *time.Time `pg:"updatedAt"`

	Category *Category `pg:"fk:categoryId,rel:has-one"`
	Status   *Status   `pg:"fk:statusId,rel:has-one"`
}

type Status struct {
	tableName struct{} `pg:"statuses,alias:t,discard_unknown_columns"`

	ID int `pg:"statusId,pk"`
}
