package post_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/domain/entity"
	"blog-backend/internal/handler/http/post"
	"blog-backend/internal/repository"
	postUC "blog-backend/internal/usecase/post"
)

type stubRepo struct {
	data   map[int64]*entity.Post
	nextID int64
}

func newStub() *stubRepo { return &stubRepo{data: map[int64]*entity.Post{}, nextID: 1} }

func (s *stubRepo) Get(_ context.Context, id int64) (*entity.Post, error) {
	p, ok := s.data[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (s *stubRepo) List(_ context.Context) ([]*entity.Post, error) {
	out := make([]*entity.Post, 0, len(s.data))
	for id := s.nextID - 1; id > 0; id-- {
		if p, ok := s.data[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}
func (s *stubRepo) Create(_ context.Context, p *entity.Post) error {
	p.ID = s.nextID
	s.nextID++
	cp := *p
	s.data[p.ID] = &cp
	return nil
}
func (s *stubRepo) Update(_ context.Context, p *entity.Post) error {
	if _, ok := s.data[p.ID]; !ok {
		return repository.ErrNoRowsAffected
	}
	cp := *p
	s.data[p.ID] = &cp
	return nil
}
func (s *stubRepo) Delete(_ context.Context, id int64) error {
	if _, ok := s.data[id]; !ok {
		return repository.ErrNoRowsAffected
	}
	delete(s.data, id)
	return nil
}

func serve(t *testing.T, h http.Handler, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var payload string
	switch b := body.(type) {
	case string:
		payload = b
	case nil:
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		payload = string(raw)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, path, strings.NewReader(payload)))

	var out map[string]any
	if rr.Code != http.StatusNoContent && strings.HasPrefix(strings.TrimSpace(rr.Body.String()), "{") {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	}
	return rr, out
}

func newMux(repo *stubRepo) *http.ServeMux {
	mux := http.NewServeMux()
	post.Register(mux, &postUC.Service{Repo: repo})
	return mux
}

func validBody() map[string]string {
	return map[string]string{
		"title":    "Top 10 Tips",
		"content":  strings.Repeat("a", 250),
		"summary":  "sum",
		"category": "Fiction",
	}
}

func TestCreateHandler(t *testing.T) {
	mux := newMux(newStub())

	rr, body := serve(t, mux, http.MethodPost, "/posts", validBody())
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.EqualValues(t, 1, body["id"])
	assert.Equal(t, "Fiction", body["category"])
}

func TestCreateHandler_Validation(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		wantField string
		wantMsg   string
	}{
		{name: "content 249", key: "content", value: strings.Repeat("a", 249), wantField: "content", wantMsg: "content too short"},
		{name: "summary 251", key: "summary", value: strings.Repeat("s", 251), wantField: "summary", wantMsg: "summary too long"},
		{name: "lowercase category", key: "category", value: "fiction", wantField: "category", wantMsg: "invalid category"},
		{name: "plain title", key: "title", value: "A Great Day", wantField: "title", wantMsg: "missing required phrase"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newStub()
			mux := newMux(repo)
			b := validBody()
			b[tt.key] = tt.value

			rr, body := serve(t, mux, http.MethodPost, "/posts", b)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, tt.wantField, body["field"])
			assert.Equal(t, tt.wantMsg, body["error"])
			assert.Empty(t, repo.data)
		})
	}
}

func TestCreateHandler_BadJSON(t *testing.T) {
	rr, body := serve(t, newMux(newStub()), http.MethodPost, "/posts", `not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "invalid request body", body["error"])
}

func TestListGetUpdateDelete(t *testing.T) {
	repo := newStub()
	mux := newMux(repo)
	serve(t, mux, http.MethodPost, "/posts", validBody())
	second := validBody()
	second["title"] = "The Secret of Go"
	serve(t, mux, http.MethodPost, "/posts", second)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/posts", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	var list []post.DTO
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "The Secret of Go", list[0].Title)

	got, body := serve(t, mux, http.MethodGet, "/posts/1", nil)
	assert.Equal(t, http.StatusOK, got.Code)
	assert.Equal(t, "Top 10 Tips", body["title"])

	upd, body := serve(t, mux, http.MethodPut, "/posts/1", map[string]string{"category": "Non-Fiction"})
	assert.Equal(t, http.StatusOK, upd.Code)
	assert.Equal(t, "Non-Fiction", body["category"])

	upd, body = serve(t, mux, http.MethodPut, "/posts/1", map[string]string{"title": "Nothing here"})
	assert.Equal(t, http.StatusBadRequest, upd.Code)
	assert.Equal(t, "title", body["field"])
	assert.Equal(t, "Top 10 Tips", repo.data[1].Title)

	del, _ := serve(t, mux, http.MethodDelete, "/posts/1", nil)
	assert.Equal(t, http.StatusNoContent, del.Code)

	missing, body := serve(t, mux, http.MethodGet, "/posts/1", nil)
	assert.Equal(t, http.StatusNotFound, missing.Code)
	assert.Equal(t, "post not found", body["error"])
}
