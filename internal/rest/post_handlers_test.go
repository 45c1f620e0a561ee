package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"

	"github.com/mpetrenko/content-portal/internal/db"
	"github.com/mpetrenko/content-portal/internal/portal"
)

var (
	testDB      *pg.DB
	testHandler *PostHandler
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	opt, err := pg.ParseURL(db.TestDBURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse database URL: %v\n", err)
		os.Exit(1)
	}

	testDB = pg.Connect(opt)

	if err := testDB.Ping(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "failed to connect to test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := db.ResetPublicSchema(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to reset schema: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := db.RunMigrations(ctx, db.MigrationsDir); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run migrations: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := db.EnsureTablesExist(ctx, testDB, []string{"statuses", "categories", "posts", "favorites"}); err != nil {
		fmt.Fprintf(os.Stderr, "schema verification failed: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	if err := db.LoadTestData(ctx, testDB); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load test data: %v\n", err)
		_ = testDB.Close()
		os.Exit(1)
	}

	testRepo := db.New(testDB)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	testManager := portal.NewManager(testRepo, logger).
		WithClock(func() time.Time { return db.BaseTime })
	testHandler = NewPostHandler(testManager, logger)

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

func doRequest(t *testing.T, method, target string, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	e := testHandler.RegisterRoutes()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echoContentType, "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

const echoContentType = "Content-Type"

func TestPostHandler_Posts_Integration(t *testing.T) {
	t.Run("PublicListingReturnsOnlyPublished", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/v1/posts", "", nil)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d, body: %s", rec.Code, rec.Body.String())
		}

		var summaries []PostSummary
		if err := json.Unmarshal(rec.Body.Bytes(), &summaries); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if len(summaries) == 0 {
			t.Fatal("expected posts, got empty result")
		}
		for _, s := range summaries {
			if s.State != "published" {
				t.Errorf("post %d has state %q in public listing", s.PostID, s.State)
			}
		}
	})

	t.Run("CategoryFilter", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/v1/posts?categoryId=1", "", nil)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}

		var summaries []PostSummary
		if err := json.Unmarshal(rec.Body.Bytes(), &summaries); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		for _, s := range summaries {
			if s.CategoryID != 1 {
				t.Errorf("expected categoryId 1, got %d", s.CategoryID)
			}
		}
	})

	t.Run("InvalidQueryParameterRejected", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/v1/posts?categoryId=abc", "", nil)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rec.Code)
		}
	})
}

func TestPostHandler_PostByID_Integration(t *testing.T) {
	published := fetchPublished(t)

	t.Run("PublishedPostReturned", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/posts/%d", published.PostID), "", nil)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d, body: %s", rec.Code, rec.Body.String())
		}

		var post Post
		if err := json.Unmarshal(rec.Body.Bytes(), &post); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if post.Content == "" {
			t.Error("expected full content on direct fetch")
		}
	})

	t.Run("DraftIs404ForPublicViewer", func(t *testing.T) {
		draftID := adminPostIDByTitle(t, "Unfinished Draft")

		rec := doRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/posts/%d", draftID), "", nil)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404 for draft, got %d", rec.Code)
		}
	})

	t.Run("DraftVisibleToAdmin", func(t *testing.T) {
		draftID := adminPostIDByTitle(t, "Unfinished Draft")

		rec := doRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/posts/%d", draftID), "",
			map[string]string{"X-Admin": "true"})

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200 for admin, got %d", rec.Code)
		}
	})

	t.Run("MissingPostIs404", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/v1/posts/99999", "", nil)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404, got %d", rec.Code)
		}
	})
}

func TestPostHandler_ToggleFavorite_Integration(t *testing.T) {
	published := fetchPublished(t)
	target := fmt.Sprintf("/api/v1/posts/%d/favorite", published.PostID)
	asUser := map[string]string{"X-User-Id": "77"}

	t.Run("RequiresAuthentication", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, target, "", nil)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected status 401, got %d", rec.Code)
		}
	})

	t.Run("ToggleOnThenOff", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, target, "", asUser)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d, body: %s", rec.Code, rec.Body.String())
		}

		var first ToggleFavoriteResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &first); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if !first.Favorited {
			t.Error("first toggle should favorite")
		}

		rec = doRequest(t, http.MethodPost, target, "", asUser)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}

		var second ToggleFavoriteResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &second); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if second.Favorited {
			t.Error("second toggle should unfavorite")
		}
		if second.NewCount != first.NewCount-1 {
			t.Errorf("expected count %d, got %d", first.NewCount-1, second.NewCount)
		}
	})
}

func TestPostHandler_GradeQuiz_Integration(t *testing.T) {
	quizPostID := adminPostIDByTitle(t, "Getting Started with Go")
	target := fmt.Sprintf("/api/v1/posts/%d/grade", quizPostID)

	t.Run("AllCorrect", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, target, `{"answers":{"0":1,"1":1}}`, nil)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d, body: %s", rec.Code, rec.Body.String())
		}

		var grade GradeQuizResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &grade); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if grade.Score != 2 || grade.Total != 2 {
			t.Errorf("expected 2/2, got %d/%d", grade.Score, grade.Total)
		}
	})

	t.Run("EmptySubmissionScoresZero", func(t *testing.T) {
		rec := doRequest(t, http.MethodPost, target, `{"answers":{}}`, nil)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}

		var grade GradeQuizResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &grade); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if grade.Score != 0 {
			t.Errorf("expected score 0, got %d", grade.Score)
		}
	})

	t.Run("PostWithoutQuizRejected", func(t *testing.T) {
		noQuizID := adminPostIDByTitle(t, "A Small HTTP Service")

		rec := doRequest(t, http.MethodPost,
			fmt.Sprintf("/api/v1/posts/%d/grade", noQuizID), `{"answers":{}}`, nil)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d", rec.Code)
		}
	})
}

func TestPostHandler_Search_Integration(t *testing.T) {
	t.Run("DraftNeverLeaksThroughSearch", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/v1/search?term=Unfinished", "", nil)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}

		var summaries []PostSummary
		if err := json.Unmarshal(rec.Body.Bytes(), &summaries); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if len(summaries) != 0 {
			t.Fatalf("draft leaked through search: %+v", summaries)
		}
	})

	t.Run("FindsPublished", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/v1/search?term=goroutines", "", nil)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}

		var summaries []PostSummary
		if err := json.Unmarshal(rec.Body.Bytes(), &summaries); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if len(summaries) == 0 {
			t.Fatal("expected a search hit for published post")
		}
	})
}

func TestPostHandler_AdminRoutes_Integration(t *testing.T) {
	t.Run("HiddenFromPublicViewers", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/v1/admin/posts", "", nil)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected status 404 for non-admin, got %d", rec.Code)
		}
	})

	t.Run("AdminListIncludesAllStates", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/v1/admin/posts?pageSize=100", "",
			map[string]string{"X-Admin": "true"})

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}

		var summaries []PostSummary
		if err := json.Unmarshal(rec.Body.Bytes(), &summaries); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		states := map[string]bool{}
		for _, s := range summaries {
			states[s.State] = true
		}
		for _, want := range []string{"draft", "scheduled", "published"} {
			if !states[want] {
				t.Errorf("admin listing missing state %q", want)
			}
		}
	})

	t.Run("StatsReturned", func(t *testing.T) {
		rec := doRequest(t, http.MethodGet, "/api/v1/admin/stats", "",
			map[string]string{"X-Admin": "true"})

		if rec.Code != http.StatusOK {
			t.Fatalf("expected status 200, got %d", rec.Code)
		}

		var stats StatsResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if stats.TotalPosts == 0 {
			t.Error("expected non-zero total posts")
		}
	})

	t.Run("SaveRejectsInvalidQuizOnPublish", func(t *testing.T) {
		body := `{
			"categoryId": 1,
			"title": "Bad Quiz Post",
			"content": "x",
			"partNumber": 50,
			"isPublished": true,
			"quiz": [{"text": "q", "options": [{"text": "a", "isCorrect": true}, {"text": "b", "isCorrect": true}]}]
		}`
		rec := doRequest(t, http.MethodPost, "/api/v1/admin/posts", body,
			map[string]string{"X-Admin": "true"})

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected status 400, got %d, body: %s", rec.Code, rec.Body.String())
		}
	})
}

func fetchPublished(t *testing.T) PostSummary {
	t.Helper()

	rec := doRequest(t, http.MethodGet, "/api/v1/posts?pageSize=1", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("failed to list posts: status %d", rec.Code)
	}

	var summaries []PostSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &summaries); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if len(summaries) == 0 {
		t.Fatal("no published posts in test data")
	}
	return summaries[0]
}

func adminPostIDByTitle(t *testing.T, title string) int {
	t.Helper()

	rec := doRequest(t, http.MethodGet, "/api/v1/admin/posts?pageSize=100", "",
		map[string]string{"X-Admin": "true"})
	if rec.Code != http.StatusOK {
		t.Fatalf("failed to list admin posts: status %d", rec.Code)
	}

	var summaries []PostSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &summaries); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	for _, s := range summaries {
		if s.Title == title {
			return s.PostID
		}
	}
	t.Fatalf("post %q not found in test data", title)
	return 0
}
