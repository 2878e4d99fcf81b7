package router_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/idealday/idr/engine/core"
	"github.com/idealday/idr/engine/journey/model"
	"github.com/idealday/idr/engine/journey/router"
	"github.com/idealday/idr/engine/journey/uc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	users       map[string]*model.User
	completions []*model.Completion
	failWith    error
}

func newStubRepo() *stubRepo {
	return &stubRepo{users: make(map[string]*model.User)}
}

func (r *stubRepo) FindOrCreateUser(_ context.Context, clientID string) (*model.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	if user, ok := r.users[clientID]; ok {
		return user, nil
	}
	user := &model.User{ID: core.MustNewID(), ClientID: clientID}
	r.users[clientID] = user
	return user, nil
}

func (r *stubRepo) FindUserByClientID(_ context.Context, clientID string) (*model.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	user, ok := r.users[clientID]
	if !ok {
		return nil, uc.ErrUserNotFound
	}
	return user, nil
}

func (r *stubRepo) CreateCompletion(_ context.Context, completion *model.Completion) error {
	if r.failWith != nil {
		return r.failWith
	}
	r.completions = append(r.completions, completion)
	return nil
}

func (r *stubRepo) ListCompletions(_ context.Context, userID core.ID, limit int) ([]*model.Completion, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []*model.Completion
	for _, c := range r.completions {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].OccurredAt.After(out[j].OccurredAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func newTestEngine(repo uc.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	router.RegisterRoutes(api, repo)
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRecordCompletion(t *testing.T) {
	t.Run("Should record a completion from a POST body", func(t *testing.T) {
		repo := newStubRepo()
		r := newTestEngine(repo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/completions",
			strings.NewReader(`{"client_id":"c1","module_slug":"routine_module","rating":4,"note":"good"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)
		body := decode(t, w)
		assert.Equal(t, true, body["ok"])
		assert.NotNil(t, body["completion"])
		assert.NotNil(t, body["user"])
		require.Len(t, repo.completions, 1)
		require.NotNil(t, repo.completions[0].Rating)
		assert.Equal(t, 4.0, *repo.completions[0].Rating)
	})
	t.Run("Should record a completion from GET query parameters", func(t *testing.T) {
		repo := newStubRepo()
		r := newTestEngine(repo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/completions?client_id=c1&module_slug=routine_module&rating=3.5", http.NoBody)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)
		require.Len(t, repo.completions, 1)
		require.NotNil(t, repo.completions[0].Rating)
		assert.Equal(t, 3.5, *repo.completions[0].Rating)
	})
	t.Run("Should drop a non-numeric rating instead of failing", func(t *testing.T) {
		repo := newStubRepo()
		r := newTestEngine(repo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/completions?client_id=c1&module_slug=routine_module&rating=great", http.NoBody)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)
		require.Len(t, repo.completions, 1)
		assert.Nil(t, repo.completions[0].Rating)
	})
	t.Run("Should return 400 when client_id is missing", func(t *testing.T) {
		repo := newStubRepo()
		r := newTestEngine(repo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/completions",
			strings.NewReader(`{"module_slug":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decode(t, w)
		assert.Equal(t, false, body["ok"])
		assert.Contains(t, body["error"], "client_id")
	})
	t.Run("Should return an opaque 500 on storage failure", func(t *testing.T) {
		repo := newStubRepo()
		repo.failWith = errors.New("pq: connection refused to host db.internal")
		r := newTestEngine(repo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/completions",
			strings.NewReader(`{"client_id":"c1","module_slug":"x"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusInternalServerError, w.Code)
		body := decode(t, w)
		assert.Equal(t, "storage failure", body["error"])
		assert.NotContains(t, w.Body.String(), "db.internal")
	})
}

func TestGetCompletions(t *testing.T) {
	recordOne := func(t *testing.T, r *gin.Engine, clientID, slug string) {
		t.Helper()
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/completions?client_id="+clientID+"&module_slug="+slug, http.NoBody)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusCreated, w.Code)
	}
	t.Run("Should list recorded completions newest first", func(t *testing.T) {
		repo := newStubRepo()
		r := newTestEngine(repo)
		recordOne(t, r, "c1", "routine_module")
		recordOne(t, r, "c1", "empathy_module")
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/completions?client_id=c1&limit=10", http.NoBody)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, true, body["ok"])
		assert.Equal(t, float64(2), body["count"])
		completions, ok := body["completions"].([]any)
		require.True(t, ok)
		require.Len(t, completions, 2)
		first, ok := completions[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "empathy_module", first["module_slug"])
	})
	t.Run("Should return an empty list for an unknown client", func(t *testing.T) {
		repo := newStubRepo()
		r := newTestEngine(repo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/completions?client_id=ghost", http.NoBody)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		body := decode(t, w)
		assert.Equal(t, float64(0), body["count"])
	})
	t.Run("Should return 400 when client_id is missing", func(t *testing.T) {
		repo := newStubRepo()
		r := newTestEngine(repo)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/completions", http.NoBody)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
