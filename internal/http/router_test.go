package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"poshan-board/internal/alerts"
	"poshan-board/internal/domain"
	"poshan-board/internal/gateway"
	"poshan-board/internal/service"
	"poshan-board/internal/session"
	"poshan-board/internal/store"
)

// writeFakeJSON mirrors the remote service's responses: JSON body with the
// matching content type, which the gateway expects on success.
func writeFakeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// fakeRemote serves just enough of the remote persistence API to drive the
// HTTP surface end to end.
func fakeRemote(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body.Password != "secret" {
			writeFakeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
			return
		}
		role := domain.RoleWorker
		if body.Username == "super" {
			role = domain.RoleSupervisor
		}
		writeFakeJSON(w, http.StatusOK, map[string]any{
			"user": domain.User{
				ID:     "u-" + body.Username,
				Name:   body.Username,
				Role:   role,
				Active: true,
			},
		})
	})

	mux.HandleFunc("/beds", func(w http.ResponseWriter, r *http.Request) {
		writeFakeJSON(w, http.StatusOK, []domain.Bed{
			{ID: "b1", Number: "P-101", Ward: "Pediatric", Status: domain.BedAvailable},
			{ID: "b2", Number: "M-201", Ward: "Maternity", Status: domain.BedOccupied, PatientID: "p9"},
		})
	})

	mux.HandleFunc("/patients", func(w http.ResponseWriter, r *http.Request) {
		writeFakeJSON(w, http.StatusOK, []domain.Patient{
			{ID: "p1", Name: "Asha", Category: domain.PatientChild},
		})
	})

	mux.HandleFunc("/bed-requests", func(w http.ResponseWriter, r *http.Request) {
		writeFakeJSON(w, http.StatusOK, []domain.BedRequest{
			{ID: "r1", PatientID: "p1", Urgency: domain.UrgencyHigh, Status: domain.RequestPending},
		})
	})
	mux.HandleFunc("/bed-requests/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/beds/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/notifications", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("/notifications/role/", func(w http.ResponseWriter, r *http.Request) {
		writeFakeJSON(w, http.StatusOK, []domain.Notification{})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	logger := zap.NewNop()
	remote := gateway.New(fakeRemote(t).URL, logger)
	sessions := session.NewStore(store.NewMemoryKV(), 24*time.Hour, logger)
	idle := session.NewMonitor(15*time.Minute, 2*time.Minute, logger)
	ctrl := service.NewController(remote, sessions, idle, alerts.NopPublisher{}, logger)

	api := NewAPI(ctrl, logger)
	router := NewRouter(logger)
	router.RegisterAuthRoutes(api)
	router.RegisterDashboardRoutes(api)
	router.RegisterAdminRoutes(api)
	return router
}

func doJSON(t *testing.T, router *Router, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func loginAs(t *testing.T, router *Router, username string) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/auth/api/v1/login", "", map[string]string{
		"username": username,
		"password": "secret",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var env Result[struct {
		Token    string   `json:"token"`
		Features []string `json:"features"`
		HomePath string   `json:"homePath"`
	}]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, ResultSuccess, env.Code)
	require.NotEmpty(t, env.Result.Token)
	assert.Equal(t, "/dashboard", env.Result.HomePath)
	return env.Result.Token
}

func TestLoginAndMenu(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "worker1")

	rec := doJSON(t, router, http.MethodGet, "/dash/api/v1/menu", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var env Result[[]string]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Contains(t, env.Result, "bed-requests")
	assert.NotContains(t, env.Result, "beds")
	assert.NotContains(t, env.Result, "users")
}

func TestLoginInvalidCredentials(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodPost, "/auth/api/v1/login", "", map[string]string{
		"username": "worker1",
		"password": "wrong",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var env Result[any]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, ResultError, env.Code)
	assert.Contains(t, env.Message, "invalid credentials")
}

func TestMissingTokenIsUnauthorized(t *testing.T) {
	router := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/dash/api/v1/patients", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var env Result[any]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, ResultTokenExpired, env.Code)
}

func TestLogoutInvalidatesToken(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "worker1")

	rec := doJSON(t, router, http.MethodPost, "/auth/api/v1/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/dash/api/v1/menu", token, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFeatureGateDeniesWorkerBeds(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "worker1")

	rec := doJSON(t, router, http.MethodGet, "/dash/api/v1/beds", token, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	var env Result[any]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "access denied", env.Message)
}

func TestWorkerCanListBedRequests(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "worker1")

	rec := doJSON(t, router, http.MethodGet, "/dash/api/v1/bed-requests", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var env Result[[]domain.BedRequest]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Len(t, env.Result, 1)
	assert.Equal(t, "r1", env.Result[0].ID)
}

func TestSupervisorApprovesRequest(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "super")

	rec := doJSON(t, router, http.MethodPost, "/dash/api/v1/bed-requests/r1/approve", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var env Result[service.ApproveResult]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.Equal(t, ResultSuccess, env.Code)
	assert.Equal(t, domain.RequestApproved, env.Result.Request.Status)
	assert.Equal(t, "b1", env.Result.Bed.ID)
	assert.Equal(t, "super", env.Result.Request.ReviewedBy)
}

func TestApproveUnknownRequestIsWarning(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "super")

	rec := doJSON(t, router, http.MethodPost, "/dash/api/v1/bed-requests/nope/approve", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var env Result[any]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "warning", env.Type)
	assert.Contains(t, env.Message, "not found")
}

func TestSessionEndpointReportsIdentity(t *testing.T) {
	router := newTestRouter(t)
	token := loginAs(t, router, "worker1")

	rec := doJSON(t, router, http.MethodGet, "/auth/api/v1/session", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var env Result[struct {
		Role        string   `json:"role"`
		Features    []string `json:"features"`
		IdleWarning bool     `json:"idleWarning"`
	}]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, string(domain.RoleWorker), env.Result.Role)
	assert.False(t, env.Result.IdleWarning)
	assert.Contains(t, env.Result.Features, "dashboard")
}

func TestIdleWarningSurvivesSessionPoll(t *testing.T) {
	logger := zap.NewNop()
	remote := gateway.New(fakeRemote(t).URL, logger)
	sessions := session.NewStore(store.NewMemoryKV(), 24*time.Hour, logger)
	idle := session.NewMonitor(200*time.Millisecond, 100*time.Millisecond, logger)
	ctrl := service.NewController(remote, sessions, idle, alerts.NopPublisher{}, logger)

	api := NewAPI(ctrl, logger)
	router := NewRouter(logger)
	router.RegisterAuthRoutes(api)

	token := loginAs(t, router, "worker1")
	time.Sleep(120 * time.Millisecond)

	var env Result[struct {
		IdleWarning bool `json:"idleWarning"`
	}]

	// Polling the session reports the warning without clearing it.
	rec := doJSON(t, router, http.MethodGet, "/auth/api/v1/session", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Result.IdleWarning)

	// Acknowledging via the activity endpoint clears it.
	rec = doJSON(t, router, http.MethodPost, "/auth/api/v1/activity", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/auth/api/v1/session", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Result.IdleWarning)
}

func TestMethodNotAllowedOnLogin(t *testing.T) {
	router := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/auth/api/v1/login", strings.NewReader(""))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRemoteFailureIsBadGateway(t *testing.T) {
	logger := zap.NewNop()
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/login" {
			writeFakeJSON(w, http.StatusOK, map[string]any{
				"user": domain.User{ID: "u1", Name: "super", Role: domain.RoleSupervisor, Active: true},
			})
			return
		}
		http.Error(w, fmt.Sprintf("%q unavailable", r.URL.Path), http.StatusServiceUnavailable)
	}))
	defer down.Close()

	remote := gateway.New(down.URL, logger)
	sessions := session.NewStore(store.NewMemoryKV(), 24*time.Hour, logger)
	idle := session.NewMonitor(15*time.Minute, 2*time.Minute, logger)
	ctrl := service.NewController(remote, sessions, idle, alerts.NopPublisher{}, logger)

	api := NewAPI(ctrl, logger)
	router := NewRouter(logger)
	router.RegisterAuthRoutes(api)
	router.RegisterDashboardRoutes(api)

	token := loginAs(t, router, "super")
	rec := doJSON(t, router, http.MethodGet, "/dash/api/v1/bed-requests", token, nil)
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var env Result[any]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Contains(t, env.Message, "503")
}
