package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codecraft/roadmap-api/internal/config"
	"github.com/codecraft/roadmap-api/internal/db"
	"github.com/codecraft/roadmap-api/internal/llm"
	"github.com/codecraft/roadmap-api/internal/types"
)

// fakeStore is an in-memory Store for handler tests.
type fakeStore struct {
	roadmaps map[uuid.UUID]*db.Roadmap
	// progress is keyed by userID:roadmapID:topicTitle.
	progress map[string]bool
	public   []db.PublicRoadmap

	createErr error
	queryErr  error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		roadmaps: make(map[uuid.UUID]*db.Roadmap),
		progress: make(map[string]bool),
	}
}

func progressKey(userID, roadmapID uuid.UUID, topicTitle string) string {
	return userID.String() + ":" + roadmapID.String() + ":" + topicTitle
}

func (f *fakeStore) CreateRoadmap(_ context.Context, userID uuid.UUID, title, description, slug string, content *types.RoadmapDocument) (uuid.UUID, error) {
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	id := uuid.New()
	f.roadmaps[id] = &db.Roadmap{
		ID:          id,
		UserID:      userID,
		Title:       title,
		Description: description,
		Slug:        slug,
		Content:     *content,
	}
	return id, nil
}

func (f *fakeStore) GetRoadmapByID(_ context.Context, id uuid.UUID) (*db.Roadmap, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.roadmaps[id], nil
}

func (f *fakeStore) GetRoadmapBySlug(_ context.Context, slug string) (*db.Roadmap, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	for _, rm := range f.roadmaps {
		if rm.Slug == slug {
			return rm, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListRoadmapsByUser(_ context.Context, userID uuid.UUID) ([]db.RoadmapSummary, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	var out []db.RoadmapSummary
	for _, rm := range f.roadmaps {
		if rm.UserID == userID {
			out = append(out, db.RoadmapSummary{
				ID:          rm.ID,
				Title:       rm.Title,
				Description: rm.Description,
				Slug:        rm.Slug,
			})
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateRoadmap(_ context.Context, userID, id uuid.UUID, title, description string, content *types.RoadmapDocument) error {
	rm, ok := f.roadmaps[id]
	if !ok || rm.UserID != userID {
		return db.ErrNotFound
	}
	rm.Title = title
	rm.Description = description
	rm.Content = *content
	return nil
}

func (f *fakeStore) DeleteRoadmap(_ context.Context, userID, id uuid.UUID) error {
	rm, ok := f.roadmaps[id]
	if !ok || rm.UserID != userID {
		return db.ErrNotFound
	}
	delete(f.roadmaps, id)
	return nil
}

func (f *fakeStore) UpsertProgressMark(_ context.Context, userID, roadmapID uuid.UUID, topicTitle string) error {
	f.progress[progressKey(userID, roadmapID, topicTitle)] = true
	return nil
}

func (f *fakeStore) DeleteProgressMark(_ context.Context, userID, roadmapID uuid.UUID, topicTitle string) error {
	delete(f.progress, progressKey(userID, roadmapID, topicTitle))
	return nil
}

func (f *fakeStore) ListCompletedTopics(_ context.Context, userID, roadmapID uuid.UUID) ([]string, error) {
	prefix := userID.String() + ":" + roadmapID.String() + ":"
	var out []string
	for key := range f.progress {
		if len(key) > len(prefix) && key[:len(prefix)] == prefix {
			out = append(out, key[len(prefix):])
		}
	}
	return out, nil
}

func (f *fakeStore) ListPublicRoadmaps(_ context.Context) ([]db.PublicRoadmap, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.public, nil
}

// fakeUserStore is an in-memory UserStore for auth tests.
type fakeUserStore struct {
	byEmail map[string]*db.User
	byID    map[uuid.UUID]*db.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byEmail: make(map[string]*db.User),
		byID:    make(map[uuid.UUID]*db.User),
	}
}

func (f *fakeUserStore) CheckEmailExists(_ context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeUserStore) CreateUser(_ context.Context, name, email, passwordHash string) (uuid.UUID, error) {
	u := &db.User{ID: uuid.New(), Name: name, Email: email, PasswordHash: passwordHash}
	f.byEmail[email] = u
	f.byID[u.ID] = u
	return u.ID, nil
}

func (f *fakeUserStore) GetUser(_ context.Context, userID uuid.UUID) (*db.User, error) {
	return f.byID[userID], nil
}

func (f *fakeUserStore) GetUserByEmail(_ context.Context, email string) (*db.User, error) {
	return f.byEmail[email], nil
}

// fakeLLM returns a canned response and records calls.
type fakeLLM struct {
	response string
	err      error
	calls    int
}

func (f *fakeLLM) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeLLM) GetModel(llm.ModelTier) string { return "fake-model" }
func (f *fakeLLM) Close() error                  { return nil }

func testPasswordConfig(t *testing.T) *config.PasswordConfig {
	t.Helper()
	t.Setenv("BCRYPT_COST", "10") // keep test hashing fast
	t.Setenv("PASSWORD_PEPPER", "")
	cfg, err := config.NewPasswordConfig()
	require.NoError(t, err)
	return cfg
}

// newTestServer builds a Server with in-memory fakes; no database, no API
// key.
func newTestServer(t *testing.T) (*Server, *fakeStore, *fakeUserStore, *fakeLLM) {
	t.Helper()

	store := newFakeStore()
	users := newFakeUserStore()
	client := &fakeLLM{}

	jwtService := NewJWTService(&config.JWTConfig{Secret: "test-secret", ExpirationHours: 1})
	userService := NewUserService(users, testPasswordConfig(t))

	s := &Server{
		store:       store,
		llm:         client,
		extractText: func(data []byte) (string, error) { return string(data), nil },
		jwtService:  jwtService,
		userService: userService,
		authHandler: NewAuthHandler(userService, jwtService),
		validator:   validator.New(),
	}
	return s, store, users, client
}

func TestHandleHealth(t *testing.T) {
	s, _, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	s.handleHealth(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
}

func TestRoutes_ProtectedEndpointsRequireAuth(t *testing.T) {
	s, store, _, client := newTestServer(t)
	handler := s.routes()

	endpoints := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/generate-roadmap"},
		{http.MethodPost, "/api/analyze-resume"},
		{http.MethodGet, "/api/roadmaps"},
		{http.MethodPost, "/api/progress"},
		{http.MethodGet, "/api/progress/" + uuid.NewString()},
	}

	for _, ep := range endpoints {
		req := httptest.NewRequest(ep.method, ep.path, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", ep.method, ep.path)
	}

	// Nothing observable happened until authentication succeeded.
	assert.Empty(t, store.roadmaps)
	assert.Empty(t, store.progress)
	assert.Zero(t, client.calls)
}

func TestRoutes_PublicEndpointsNeedNoAuth(t *testing.T) {
	s, _, _, _ := newTestServer(t)
	handler := s.routes()

	for _, path := range []string{"/health", "/api/catalog", "/api/resources"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestWithCORS_Preflight(t *testing.T) {
	s, _, _, _ := newTestServer(t)
	handler := s.withCORS(s.routes())

	req := httptest.NewRequest(http.MethodOptions, "/api/generate-roadmap", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
