package api_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/discussion-board-api/internal/api"
	"github.com/discussion-board-api/internal/config"
	"github.com/discussion-board-api/internal/mocks"
	"github.com/discussion-board-api/internal/models"
	"github.com/discussion-board-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func setupTestRouter() (*gin.Engine, *mocks.MockTopicRepository, *mocks.MockArticleRepository, *mocks.MockCommentRepository, *mocks.MockUserRepository) {
	gin.SetMode(gin.TestMode)

	repos, topics, articles, comments, users := mocks.NewRepositories()

	cfg := &config.Config{
		Server:     config.ServerConfig{Port: "8080"},
		Moderation: config.ModerationConfig{BlockedTerms: []string{"hate"}},
	}

	log := zerolog.Nop()
	services := service.NewServices(repos, cfg, log)
	router := api.NewRouter(services, cfg, log)

	return router, topics, articles, comments, users
}

func seedArticles(articles *mocks.MockArticleRepository) {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	articles.Articles[1] = &models.Article{
		ArticleID: 1, Title: "Living in the shadow of a great man", Topic: "mitch",
		Author: "butter_bridge", Body: "I find this existence challenging",
		CreatedAt: base, Votes: 100, ArticleImgURL: "https://example.com/1.jpg",
		CommentCount: "2",
	}
	articles.Articles[2] = &models.Article{
		ArticleID: 2, Title: "Sony Vaio; or, The Laptop", Topic: "mitch",
		Author: "icellusedkars", Body: "Call me Mitchell.",
		CreatedAt: base.Add(48 * time.Hour), Votes: 0, ArticleImgURL: "https://example.com/2.jpg",
		CommentCount: "0",
	}
	articles.Articles[3] = &models.Article{
		ArticleID: 3, Title: "Eight pug gifs that remind me of mitch", Topic: "mitch",
		Author: "icellusedkars", Body: "some gifs",
		CreatedAt: base.Add(24 * time.Hour), Votes: -5, ArticleImgURL: "https://example.com/3.jpg",
		CommentCount: "1",
	}
}

func doRequest(router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
	return body
}

func TestGetEndpoints(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	w := doRequest(router, "GET", "/api", nil)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	body := decodeBody(t, w)
	endpoints, ok := body["endpoints"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected endpoints object, got %T", body["endpoints"])
	}
	for _, key := range []string{"GET /api", "GET /api/topics", "GET /api/articles", "POST /api/articles/:article_id/comments"} {
		if _, ok := endpoints[key]; !ok {
			t.Errorf("Expected endpoints doc to describe %q", key)
		}
	}
}

func TestGetTopics(t *testing.T) {
	router, topics, _, _, _ := setupTestRouter()
	topics.Topics = []*models.Topic{
		{Slug: "mitch", Description: "The man, the Mitch, the legend", ImgURL: ""},
		{Slug: "cats", Description: "Not dogs", ImgURL: ""},
		{Slug: "paper", Description: "what books are made of", ImgURL: ""},
	}

	w := doRequest(router, "GET", "/api/topics", nil)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	body := decodeBody(t, w)
	list := body["topics"].([]interface{})
	if len(list) != 3 {
		t.Fatalf("Expected 3 topics, got %d", len(list))
	}
	first := list[0].(map[string]interface{})
	for _, field := range []string{"slug", "description", "img_url"} {
		if _, ok := first[field].(string); !ok {
			t.Errorf("Expected string field %q, got %v", field, first[field])
		}
	}
}

func TestGetArticles(t *testing.T) {
	router, _, articles, _, _ := setupTestRouter()
	seedArticles(articles)

	w := doRequest(router, "GET", "/api/articles", nil)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	body := decodeBody(t, w)
	list := body["articles"].([]interface{})
	if len(list) != 3 {
		t.Fatalf("Expected 3 articles, got %d", len(list))
	}

	for _, item := range list {
		article := item.(map[string]interface{})
		if _, ok := article["article_id"].(float64); !ok {
			t.Errorf("Expected numeric article_id, got %v", article["article_id"])
		}
		if _, ok := article["votes"].(float64); !ok {
			t.Errorf("Expected numeric votes, got %v", article["votes"])
		}
		if _, ok := article["comment_count"].(string); !ok {
			t.Errorf("Expected comment_count serialized as string, got %v", article["comment_count"])
		}
		if _, ok := article["body"]; ok {
			t.Error("List view should not expose body")
		}
	}
}

func TestGetArticles_SortedByDateDescending(t *testing.T) {
	router, _, articles, _, _ := setupTestRouter()
	seedArticles(articles)

	for _, url := range []string{"/api/articles", "/api/articles?sort_by=created_at"} {
		w := doRequest(router, "GET", url, nil)
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected status 200, got %d", url, w.Code)
		}

		body := decodeBody(t, w)
		list := body["articles"].([]interface{})

		var prev time.Time
		for i, item := range list {
			article := item.(map[string]interface{})
			createdAt, err := time.Parse(time.RFC3339, article["created_at"].(string))
			if err != nil {
				t.Fatalf("created_at should be RFC3339, got %v", article["created_at"])
			}
			if i > 0 && createdAt.After(prev) {
				t.Errorf("%s: articles not sorted by created_at descending", url)
			}
			prev = createdAt
		}
	}
}

func TestGetArticles_InvalidSort(t *testing.T) {
	router, _, articles, _, _ := setupTestRouter()
	seedArticles(articles)

	w := doRequest(router, "GET", "/api/articles?sort_by=title", nil)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["msg"] != "invalid sort" {
		t.Errorf("Expected msg 'invalid sort', got %v", body["msg"])
	}
}

func TestGetArticleByID(t *testing.T) {
	router, _, articles, _, _ := setupTestRouter()
	seedArticles(articles)

	w := doRequest(router, "GET", "/api/articles/3", nil)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	body := decodeBody(t, w)
	article := body["article"].(map[string]interface{})
	if article["article_id"].(float64) != 3 {
		t.Errorf("Expected article_id 3, got %v", article["article_id"])
	}
	if _, ok := article["votes"].(float64); !ok {
		t.Errorf("Expected numeric votes, got %v", article["votes"])
	}
	if _, ok := article["body"].(string); !ok {
		t.Error("Single article view should include body")
	}
}

func TestGetArticleByID_NotFound(t *testing.T) {
	router, _, articles, _, _ := setupTestRouter()
	seedArticles(articles)

	w := doRequest(router, "GET", "/api/articles/87768", nil)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["msg"] != "no such article" {
		t.Errorf("Expected msg 'no such article', got %v", body["msg"])
	}
}

func TestGetArticleByID_BadRequest(t *testing.T) {
	router, _, articles, _, _ := setupTestRouter()
	seedArticles(articles)

	tests := []struct {
		name string
		id   string
	}{
		{"non-numeric", "holaa"},
		{"decimal", "1.5"},
		{"zero", "0"},
		{"negative", "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, "GET", "/api/articles/"+tt.id, nil)

			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", w.Code)
			}
			body := decodeBody(t, w)
			if body["msg"] != "bad request" {
				t.Errorf("Expected msg 'bad request', got %v", body["msg"])
			}
		})
	}
}

func TestGetComments(t *testing.T) {
	router, _, articles, comments, _ := setupTestRouter()
	seedArticles(articles)
	base := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	comments.CommentsByArticle[1] = []*models.Comment{
		{CommentID: 1, ArticleID: 1, Author: "butter_bridge", Body: "first!", Votes: 16, CreatedAt: base},
		{CommentID: 2, ArticleID: 1, Author: "icellusedkars", Body: "well said", Votes: 0, CreatedAt: base.Add(time.Hour)},
	}

	for _, url := range []string{"/api/articles/1/comments", "/api/articles/1/comments?sort_by=created_at"} {
		w := doRequest(router, "GET", url, nil)
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected status 200, got %d", url, w.Code)
		}

		body := decodeBody(t, w)
		list := body["comment"].([]interface{})
		if len(list) != 2 {
			t.Fatalf("%s: expected 2 comments, got %d", url, len(list))
		}

		var prev time.Time
		for i, item := range list {
			comment := item.(map[string]interface{})
			if comment["article_id"].(float64) != 1 {
				t.Errorf("Expected article_id 1, got %v", comment["article_id"])
			}
			createdAt, _ := time.Parse(time.RFC3339, comment["created_at"].(string))
			if i > 0 && createdAt.After(prev) {
				t.Errorf("%s: comments not sorted by created_at descending", url)
			}
			prev = createdAt
		}
	}
}

func TestGetComments_EmptyForExistingArticle(t *testing.T) {
	router, _, articles, _, _ := setupTestRouter()
	seedArticles(articles)

	w := doRequest(router, "GET", "/api/articles/2/comments", nil)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	list, ok := body["comment"].([]interface{})
	if !ok {
		t.Fatalf("Expected empty array, got %v", body["comment"])
	}
	if len(list) != 0 {
		t.Errorf("Expected 0 comments, got %d", len(list))
	}
}

func TestGetComments_InvalidSort(t *testing.T) {
	router, _, articles, _, _ := setupTestRouter()
	seedArticles(articles)

	w := doRequest(router, "GET", "/api/articles/1/comments?sort_by=body", nil)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["msg"] != "invalid request" {
		t.Errorf("Expected msg 'invalid request', got %v", body["msg"])
	}
}

func TestGetComments_NoSuchArticle(t *testing.T) {
	router, _, articles, _, _ := setupTestRouter()
	seedArticles(articles)

	w := doRequest(router, "GET", "/api/articles/8779/comments", nil)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["msg"] != "no such article id" {
		t.Errorf("Expected msg 'no such article id', got %v", body["msg"])
	}
}

func TestGetComments_BadRequest(t *testing.T) {
	router, _, articles, _, _ := setupTestRouter()
	seedArticles(articles)

	w := doRequest(router, "GET", "/api/articles/holaaa/comments", nil)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["msg"] != "bad request" {
		t.Errorf("Expected msg 'bad request', got %v", body["msg"])
	}
}

func TestPostComment(t *testing.T) {
	router, _, articles, comments, users := setupTestRouter()
	seedArticles(articles)
	users.Usernames["icellusedkars"] = true

	payload := []byte(`{"username":"icellusedkars","body":"i love cats"}`)
	w := doRequest(router, "POST", "/api/articles/1/comments", payload)

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d. Body: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	posted := body["postedComment"].(map[string]interface{})
	if posted["article_id"].(float64) != 1 {
		t.Errorf("Expected article_id 1, got %v", posted["article_id"])
	}
	if posted["author"] != "icellusedkars" {
		t.Errorf("Expected author 'icellusedkars', got %v", posted["author"])
	}
	if posted["body"] != "i love cats" {
		t.Errorf("Expected body round-tripped, got %v", posted["body"])
	}
	if posted["votes"].(float64) != 0 {
		t.Errorf("Expected default votes 0, got %v", posted["votes"])
	}
	if _, ok := posted["comment_id"].(float64); !ok {
		t.Errorf("Expected server-assigned comment_id, got %v", posted["comment_id"])
	}
	if _, err := time.Parse(time.RFC3339, posted["created_at"].(string)); err != nil {
		t.Errorf("Expected RFC3339 created_at, got %v", posted["created_at"])
	}

	if len(comments.CommentsByArticle[1]) != 1 {
		t.Errorf("Expected 1 stored comment, got %d", len(comments.CommentsByArticle[1]))
	}
}

func TestPostComment_UnknownUsername(t *testing.T) {
	router, _, articles, comments, _ := setupTestRouter()
	seedArticles(articles)

	payload := []byte(`{"username":"fakeUser","body":"i love cats"}`)
	w := doRequest(router, "POST", "/api/articles/1/comments", payload)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["msg"] != "this username does not exist" {
		t.Errorf("Expected msg 'this username does not exist', got %v", body["msg"])
	}
	if len(comments.CommentsByArticle[1]) != 0 {
		t.Error("No comment should be created for an unknown username")
	}
}

func TestPostComment_NoSuchArticle(t *testing.T) {
	router, _, articles, _, users := setupTestRouter()
	seedArticles(articles)
	users.Usernames["icellusedkars"] = true

	payload := []byte(`{"username":"icellusedkars","body":"i love cats"}`)
	w := doRequest(router, "POST", "/api/articles/989877/comments", payload)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["msg"] != "no such article" {
		t.Errorf("Expected msg 'no such article', got %v", body["msg"])
	}
}

func TestPostComment_ForbiddenBody(t *testing.T) {
	router, _, articles, comments, users := setupTestRouter()
	seedArticles(articles)
	users.Usernames["icellusedkars"] = true

	payload := []byte(`{"username":"icellusedkars","body":"i hate cats"}`)
	w := doRequest(router, "POST", "/api/articles/1/comments", payload)

	if w.Code != http.StatusForbidden {
		t.Errorf("Expected status 403, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["msg"] != "forbidden comment" {
		t.Errorf("Expected msg 'forbidden comment', got %v", body["msg"])
	}
	if len(comments.CommentsByArticle[1]) != 0 {
		t.Error("Rejected comment must not be stored")
	}
}

func TestPostComment_CheckOrder(t *testing.T) {
	// A request failing every check reports the article reference first,
	// then the username, then moderation.
	router, _, articles, _, users := setupTestRouter()
	seedArticles(articles)

	payload := []byte(`{"username":"fakeUser","body":"i hate cats"}`)

	w := doRequest(router, "POST", "/api/articles/999/comments", payload)
	if body := decodeBody(t, w); w.Code != http.StatusBadRequest || body["msg"] != "no such article" {
		t.Errorf("Expected 400 'no such article' first, got %d %v", w.Code, body["msg"])
	}

	w = doRequest(router, "POST", "/api/articles/1/comments", payload)
	if body := decodeBody(t, w); w.Code != http.StatusNotFound || body["msg"] != "this username does not exist" {
		t.Errorf("Expected 404 for username before moderation, got %d %v", w.Code, body["msg"])
	}

	users.Usernames["fakeUser"] = true
	w = doRequest(router, "POST", "/api/articles/1/comments", payload)
	if body := decodeBody(t, w); w.Code != http.StatusForbidden || body["msg"] != "forbidden comment" {
		t.Errorf("Expected 403 last, got %d %v", w.Code, body["msg"])
	}
}

func TestPatchArticle(t *testing.T) {
	router, _, articles, _, _ := setupTestRouter()
	seedArticles(articles)

	w := doRequest(router, "PATCH", "/api/articles/1", []byte(`{"inc_votes":5}`))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	article := body["article"].(map[string]interface{})
	if article["votes"].(float64) != 105 {
		t.Errorf("Expected votes 105, got %v", article["votes"])
	}

	w = doRequest(router, "PATCH", "/api/articles/1", []byte(`{"inc_votes":-10}`))
	body = decodeBody(t, w)
	article = body["article"].(map[string]interface{})
	if article["votes"].(float64) != 95 {
		t.Errorf("Expected votes 95 after decrement, got %v", article["votes"])
	}
}

func TestPatchArticle_Errors(t *testing.T) {
	router, _, articles, _, _ := setupTestRouter()
	seedArticles(articles)

	tests := []struct {
		name           string
		url            string
		body           string
		expectedStatus int
		expectedMsg    string
	}{
		{"missing inc_votes", "/api/articles/1", `{}`, http.StatusBadRequest, "bad request"},
		{"non-numeric inc_votes", "/api/articles/1", `{"inc_votes":"lots"}`, http.StatusBadRequest, "bad request"},
		{"non-numeric id", "/api/articles/holaa", `{"inc_votes":1}`, http.StatusBadRequest, "bad request"},
		{"absent article", "/api/articles/9999", `{"inc_votes":1}`, http.StatusNotFound, "no such article"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, "PATCH", tt.url, []byte(tt.body))

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			body := decodeBody(t, w)
			if body["msg"] != tt.expectedMsg {
				t.Errorf("Expected msg %q, got %v", tt.expectedMsg, body["msg"])
			}
		})
	}
}

func TestPathNotFound(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	tests := []struct {
		method string
		url    string
	}{
		{"GET", "/blahblah"},
		{"POST", "/api/nope"},
		{"DELETE", "/api/topics"},
		{"PUT", "/api/articles/1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			w := doRequest(router, tt.method, tt.url, nil)

			if w.Code != http.StatusNotFound {
				t.Errorf("Expected status 404, got %d", w.Code)
			}
			body := decodeBody(t, w)
			if body["msg"] != "path not found" {
				t.Errorf("Expected msg 'path not found', got %v", body["msg"])
			}
		})
	}
}

func TestHealthEndpoint(t *testing.T) {
	router, _, _, _, _ := setupTestRouter()

	w := doRequest(router, "GET", "/health", nil)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", body["status"])
	}
}

func TestUnclassifiedErrorsRender500(t *testing.T) {
	router, _, articles, _, _ := setupTestRouter()
	articles.ListErr = errors.New("dial tcp: connection refused")

	w := doRequest(router, "GET", "/api/articles", nil)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["msg"] != "internal server error" {
		t.Errorf("Internal detail must not leak, got %v", body["msg"])
	}
}
