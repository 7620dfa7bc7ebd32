package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/buildbridge/dashboard/internal/api"
	"github.com/buildbridge/dashboard/internal/config"
	"github.com/buildbridge/dashboard/internal/notify"
	"github.com/buildbridge/dashboard/internal/repository/memory"
	"github.com/buildbridge/dashboard/internal/repository/sqlite"
	"github.com/buildbridge/dashboard/internal/security"
	"github.com/buildbridge/dashboard/internal/service"
	"github.com/buildbridge/dashboard/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	handler http.Handler
	slot    *sqlite.SlotStore
	session *service.SessionService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.RequestTimeout = 5 * time.Second
	cfg.Auth.JWTSecret = "test-secret-key-with-32-chars!!"
	cfg.Auth.AccessTokenTTL = 15 * time.Minute
	cfg.Auth.RefreshTokenTTL = 7 * 24 * time.Hour

	slot, err := sqlite.NewSlotStore(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { slot.Close() })

	notifications := notify.NewRing(50)
	jwtManager := security.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL, cfg.Auth.RefreshTokenTTL)

	sessionService := service.NewSessionService(slot, jwtManager)
	workspaceService := service.NewWorkspaceService(
		memory.NewProjectRepository(),
		memory.NewMemberRepository(),
		memory.NewDocumentRepository(),
		notifications,
	)
	simulationService := service.NewSimulationService(notifications, 250*time.Millisecond)

	viewRouter := view.NewRouter()
	viewRouter.OnLeave(simulationService.CancelView)

	handler := api.NewRouter(cfg, api.Deps{
		SessionService:    sessionService,
		WorkspaceService:  workspaceService,
		SimulationService: simulationService,
		ViewRouter:        viewRouter,
		Notifications:     notifications,
		SlotStore:         slot,
		JWTManager:        jwtManager,
	})

	return &testServer{handler: handler, slot: slot, session: sessionService}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.True(t, resp.Success)
	return resp.Data
}

func (s *testServer) login(t *testing.T, role, email string) (string, map[string]any) {
	t.Helper()
	rec := s.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"role": role, "email": email})
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeData(t, rec)
	tokens := data["tokens"].(map[string]any)
	identity := data["identity"].(map[string]any)
	return tokens["access_token"].(string), identity
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/ready", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginNavigateLogoutFlow(t *testing.T) {
	s := newTestServer(t)

	token, identity := s.login(t, "vendor", "demo@vendor.com")
	assert.Equal(t, "vendor", identity["role"])
	assert.Equal(t, "Sarah Johnson", identity["display_name"])
	assert.Equal(t, "Premium Supplies Co.", identity["organization"])

	// Navigate to projects and confirm the resolved view
	rec := s.do(t, http.MethodPost, "/api/v1/navigation", token, map[string]string{"path": "/projects"})
	require.Equal(t, http.StatusOK, rec.Code)
	nav := decodeData(t, rec)
	assert.Equal(t, "projects", nav["view"])

	rec = s.do(t, http.MethodGet, "/api/v1/navigation", token, nil)
	nav = decodeData(t, rec)
	assert.Equal(t, "/projects", nav["path"])
	assert.Equal(t, "projects", nav["view"])

	// Logout clears the session and the persisted slot
	rec = s.do(t, http.MethodPost, "/api/v1/auth/logout", token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.False(t, s.session.IsAuthenticated())

	persisted, err := s.slot.Load(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, persisted)
}

func TestLoginValidation(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"role": "vendor"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{"role": "vendor", "email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown roles are not rejected; they fall back to the default profile
	_, identity := s.login(t, "architect", "demo@example.com")
	assert.Equal(t, "Demo User", identity["display_name"])
	assert.Equal(t, "Demo Company", identity["organization"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/v1/projects", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/navigation", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProjectCRUD(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.login(t, "construction-firm", "demo@abc.com")

	rec := s.do(t, http.MethodPost, "/api/v1/projects", token, map[string]any{
		"name": "Tower A", "type": "Commercial", "budget": 1000000,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	towerA := decodeData(t, rec)

	rec = s.do(t, http.MethodPost, "/api/v1/projects", token, map[string]any{
		"name": "Tower B", "type": "Commercial", "budget": 500000,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// Order follows creation
	rec = s.do(t, http.MethodGet, "/api/v1/projects", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listResp struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&listResp))
	require.Len(t, listResp.Data, 2)
	assert.Equal(t, "Tower A", listResp.Data[0]["name"])
	assert.Equal(t, "Tower B", listResp.Data[1]["name"])
	assert.NotEqual(t, listResp.Data[0]["id"], listResp.Data[1]["id"])

	// Partial update touches only the named field
	id := towerA["id"].(string)
	rec = s.do(t, http.MethodPatch, "/api/v1/projects/"+id, token, map[string]any{"status": "Completed"})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeData(t, rec)
	assert.Equal(t, "Completed", updated["status"])
	assert.Equal(t, towerA["name"], updated["name"])
	assert.Equal(t, towerA["created_at"], updated["created_at"])

	// Delete, then the record is gone
	rec = s.do(t, http.MethodDelete, "/api/v1/projects/"+id, token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = s.do(t, http.MethodGet, "/api/v1/projects/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = s.do(t, http.MethodDelete, "/api/v1/projects/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResolveUnknownPath(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.login(t, "client", "demo@client.com")

	rec := s.do(t, http.MethodGet, "/api/v1/navigation/resolve?path=/xyz", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeData(t, rec)
	assert.Equal(t, "not-found", data["view"])

	rec = s.do(t, http.MethodGet, "/api/v1/navigation/resolve?path=", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data = decodeData(t, rec)
	assert.Equal(t, "not-found", data["view"])
}

func TestSimulationCancelledByNavigation(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.login(t, "vendor", "demo@vendor.com")

	// Start a payment simulation from the payment view
	rec := s.do(t, http.MethodPost, "/api/v1/navigation", token, map[string]string{"path": "/payment"})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = s.do(t, http.MethodPost, "/api/v1/simulations", token, map[string]string{"kind": "payment"})
	require.Equal(t, http.StatusCreated, rec.Code)
	sim := decodeData(t, rec)
	simID := sim["id"].(string)

	// Navigating away cancels the pending task
	rec = s.do(t, http.MethodPost, "/api/v1/navigation", token, map[string]string{"path": "/dashboard"})
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Eventually(t, func() bool {
		rec := s.do(t, http.MethodGet, "/api/v1/simulations/"+simID, token, nil)
		if rec.Code != http.StatusOK {
			return false
		}
		return decodeData(t, rec)["status"] == "cancelled"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestNotificationsFeed(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.login(t, "construction-firm", "demo@abc.com")

	rec := s.do(t, http.MethodPost, "/api/v1/documents", token, map[string]any{
		"name": "blueprint.pdf", "type": "application/pdf", "size": 1024,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/notifications", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotEmpty(t, resp.Data)
	assert.Equal(t, "Document uploaded successfully!", resp.Data[len(resp.Data)-1]["message"])
}
