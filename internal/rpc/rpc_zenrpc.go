// Code generated by zenrpc v2.3.1; DO NOT EDIT.

package rpc

import (
	"context"
	"encoding/json"

	"github.com/vmkteam/zenrpc/v2"
	"github.com/vmkteam/zenrpc/v2/smd"
)

var RPC = struct {
	ContentService struct{ List, Count, ByID, ToggleFavorite, Grade, Categories string }
}{
	ContentService: struct{ List, Count, ByID, ToggleFavorite, Grade, Categories string }{
		List:           "list",
		Count:          "count",
		ByID:           "byid",
		ToggleFavorite: "togglefavorite",
		Grade:          "grade",
		Categories:     "categories",
	},
}

func (ContentService) SMD() smd.ServiceInfo {
	return smd.ServiceInfo{
		Methods: map[string]smd.Service{
			"List": {
				Description: `List retrieves published posts with optional category filtering, with
pagination, sorted by publishAt DESC.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "filter",
						Type:     smd.Object,
						TypeName: "PostFilter",
						Properties: smd.PropertyList{
							{
								Name:        "categoryId",
								Optional:    true,
								Description: `categoryId optional category filter`,
								Type:        smd.Integer,
							},
							{
								Name:        "page",
								Optional:    true,
								Description: `page=1 page number (1-based)`,
								Type:        smd.Integer,
							},
							{
								Name:        "pageSize",
								Optional:    true,
								Description: `pageSize=10 items per page`,
								Type:        smd.Integer,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `list of post summaries`,
					Type:        smd.Object,
					TypeName:    "PostSummaries",
					Properties: smd.PropertyList{
						{
							Name: "postId",
							Type: smd.Integer,
						},
						{
							Name: "categoryId",
							Type: smd.Integer,
						},
						{
							Name: "title",
							Type: smd.String,
						},
						{
							Name: "author",
							Type: smd.String,
						},
						{
							Name: "partNumber",
							Type: smd.Integer,
						},
						{
							Name: "state",
							Type: smd.String,
						},
						{
							Name:     "publishAt",
							Optional: true,
							Type:     smd.String,
						},
						{
							Name: "favoritesCount",
							Type: smd.Integer,
						},
						{
							Name: "viewCount",
							Type: smd.Integer,
						},
						{
							Name: "category",
							Ref:  "#/definitions/Category",
							Type: smd.Object,
						},
					},
					Definitions: map[string]smd.Definition{
						"Category": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "categoryId",
									Type: smd.Integer,
								},
								{
									Name: "title",
									Type: smd.String,
								},
								{
									Name:     "parentId",
									Optional: true,
									Type:     smd.Integer,
								},
								{
									Name: "orderNumber",
									Type: smd.Integer,
								},
							},
						},
					},
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"Count": {
				Description: `Count returns the count of published posts matching the optional categoryId
filter.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "filter",
						Type:     smd.Object,
						TypeName: "PostFilter",
						Properties: smd.PropertyList{
							{
								Name:        "categoryId",
								Optional:    true,
								Description: `categoryId optional category filter`,
								Type:        smd.Integer,
							},
							{
								Name:        "page",
								Optional:    true,
								Description: `page=1 page number (1-based)`,
								Type:        smd.Integer,
							},
							{
								Name:        "pageSize",
								Optional:    true,
								Description: `pageSize=10 items per page`,
								Type:        smd.Integer,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `count of posts`,
					Type:        smd.Integer,
				},
				Errors: map[int]string{
					500: "internal server error",
				},
			},
			"ByID": {
				Description: `ByID retrieves a single published post with full content and quiz payload.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "PostByIDRequest",
						Properties: smd.PropertyList{
							{
								Name: "id",
								Type: smd.Integer,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `post with full content`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "Post",
					Properties: smd.PropertyList{
						{
							Name: "postId",
							Type: smd.Integer,
						},
						{
							Name: "categoryId",
							Type: smd.Integer,
						},
						{
							Name: "title",
							Type: smd.String,
						},
						{
							Name: "content",
							Type: smd.String,
						},
						{
							Name: "author",
							Type: smd.String,
						},
						{
							Name: "partNumber",
							Type: smd.Integer,
						},
						{
							Name: "state",
							Type: smd.String,
						},
						{
							Name:     "publishAt",
							Optional: true,
							Type:     smd.String,
						},
						{
							Name: "favoritesCount",
							Type: smd.Integer,
						},
						{
							Name: "viewCount",
							Type: smd.Integer,
						},
						{
							Name: "quiz",
							Type: smd.Array,
							Items: map[string]string{
								"$ref": "#/definitions/Question",
							},
						},
						{
							Name: "category",
							Ref:  "#/definitions/Category",
							Type: smd.Object,
						},
					},
					Definitions: map[string]smd.Definition{
						"Question": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "text",
									Type: smd.String,
								},
								{
									Name: "imageUrl",
									Type: smd.String,
								},
								{
									Name: "options",
									Type: smd.Array,
									Items: map[string]string{
										"$ref": "#/definitions/Option",
									},
								},
							},
						},
						"Option": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "text",
									Type: smd.String,
								},
								{
									Name: "isCorrect",
									Type: smd.Boolean,
								},
							},
						},
						"Category": {
							Type: "object",
							Properties: smd.PropertyList{
								{
									Name: "categoryId",
									Type: smd.Integer,
								},
								{
									Name: "title",
									Type: smd.String,
								},
								{
									Name:     "parentId",
									Optional: true,
									Type:     smd.Integer,
								},
								{
									Name: "orderNumber",
									Type: smd.Integer,
								},
							},
						},
					},
				},
				Errors: map[int]string{
					400: "id must be positive",
					404: "post not found",
					500: "internal server error",
				},
			},
			"ToggleFavorite": {
				Description: `ToggleFavorite flips the favorite relation for (userId, postId) and returns
which transition happened together with the fresh counter.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "ToggleFavoriteRequest",
						Properties: smd.PropertyList{
							{
								Name: "userId",
								Type: smd.Integer,
							},
							{
								Name: "postId",
								Type: smd.Integer,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `toggle outcome`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "ToggleResult",
					Properties: smd.PropertyList{
						{
							Name: "favorited",
							Type: smd.Boolean,
						},
						{
							Name: "newCount",
							Type: smd.Integer,
						},
					},
				},
				Errors: map[int]string{
					400: "userId and postId must be positive",
					404: "post not found",
					409: "concurrent toggle, retry",
					500: "internal server error",
				},
			},
			"Grade": {
				Description: `Grade grades a quiz submission against a published post's quiz. Nothing is
persisted; the same submission always yields the same grade.`,
				Parameters: []smd.JSONSchema{
					{
						Name:     "req",
						Type:     smd.Object,
						TypeName: "GradeRequest",
						Properties: smd.PropertyList{
							{
								Name: "postId",
								Type: smd.Integer,
							},
							{
								Name: "answers",
								Type: smd.Object,
							},
						},
					},
				},
				Returns: smd.JSONSchema{
					Description: `grade with per-question correctness`,
					Optional:    true,
					Type:        smd.Object,
					TypeName:    "Grade",
					Properties: smd.PropertyList{
						{
							Name: "score",
							Type: smd.Integer,
						},
						{
							Name: "total",
							Type: smd.Integer,
						},
						{
							Name: "perQuestion",
							Type: smd.Array,
							Items: map[string]string{
								"type": smd.Boolean,
							},
						},
					},
				},
				Errors: map[int]string{
					400: "post has no quiz",
					404: "post not found",
					500: "internal server error",
				},
			},
			"Categories": {
				Description: `Categories retrieves all categories ordered by orderNumber.`,
				Parameters:  []smd.JSONSchema{},
				Returns: smd.JSONSchema{
					Description: `list of categories`,
					Type:        smd.Object,
					TypeName:    "Categories",
					Properties: smd.PropertyList{
						{
							Name: "categoryId",
							Type: smd.Integer,
						},
						{
							Name: "title",
							Type: smd.String,
						},
						{
							Name:     "parentId",
							Optional: true,
							Type:     smd.Integer,
						},
						{
							Name: "orderNumber",
							Type: smd.Integer,
						},
					},
				},
				Errors: map[int]string{
					404: "categories not found",
					500: "internal server error",
				},
			},
		},
	}
}

// Invoke is as generated code from zenrpc cmd
func (s ContentService) Invoke(ctx context.Context, method string, params json.RawMessage) zenrpc.Response {
	resp := zenrpc.Response{}
	var err error

	switch method {
	case RPC.ContentService.List:
		var args = struct {
			Filter PostFilter `json:"filter"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"filter"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.List(ctx, args.Filter))

	case RPC.ContentService.Count:
		var args = struct {
			Filter PostFilter `json:"filter"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"filter"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Count(ctx, args.Filter))

	case RPC.ContentService.ByID:
		var args = struct {
			Req PostByIDRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.ByID(ctx, args.Req))

	case RPC.ContentService.ToggleFavorite:
		var args = struct {
			Req ToggleFavoriteRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.ToggleFavorite(ctx, args.Req))

	case RPC.ContentService.Grade:
		var args = struct {
			Req GradeRequest `json:"req"`
		}{}

		if zenrpc.IsArray(params) {
			if params, err = zenrpc.ConvertToObject([]string{"req"}, params); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		if len(params) > 0 {
			if err := json.Unmarshal(params, &args); err != nil {
				return zenrpc.NewResponseError(nil, zenrpc.InvalidParams, "", err.Error())
			}
		}

		resp.Set(s.Grade(ctx, args.Req))

	case RPC.ContentService.Categories:
		resp.Set(s.Categories(ctx))

	default:
		resp = zenrpc.NewResponseError(nil, zenrpc.MethodNotFound, "", nil)
	}

	return resp
}
