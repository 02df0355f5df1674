package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"poshan-board/internal/domain"
)

// writeTestJSON responds the way the remote service does: JSON body with the
// matching content type.
func writeTestJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClient_Login(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds["username"] != "asha" || creds["password"] != "secret" {
			writeTestJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
			return
		}
		writeTestJSON(w, http.StatusOK, map[string]any{
			"user": domain.User{ID: "u1", Name: "Asha", Role: domain.RoleWorker, Active: true},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	ctx := context.Background()

	user, err := c.Login(ctx, "asha", "secret", "EMP-001")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, domain.RoleWorker, user.Role)

	_, err = c.Login(ctx, "asha", "wrong", "EMP-001")
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Contains(t, apiErr.Error(), "invalid credentials")
}

func TestClient_ErrorCarriesStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	_, err := c.ListBeds(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Contains(t, apiErr.Status, "503")
}

func TestClient_ListBeds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/beds", r.URL.Path)
		writeTestJSON(w, http.StatusOK, []domain.Bed{
			{ID: "b1", Number: "P-1", Ward: "Pediatric", Status: domain.BedAvailable},
			{ID: "b2", Number: "X-1", Ward: "Dialysis", Status: domain.BedAvailable}, // unknown ward: logged, not dropped
		})
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	beds, err := c.ListBeds(context.Background())
	require.NoError(t, err)
	require.Len(t, beds, 2)

	cat, ok := beds[0].WardCategory()
	assert.True(t, ok)
	assert.Equal(t, domain.WardPediatric, cat)
	_, ok = beds[1].WardCategory()
	assert.False(t, ok)
}

func TestClient_UpdateBedSendsPartialPayload(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/beds/b7", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	err := c.UpdateBed(context.Background(), "b7", map[string]any{
		"status":    domain.BedOccupied,
		"patientId": "p1",
	})
	require.NoError(t, err)
	assert.Equal(t, "occupied", got["status"])
	assert.Equal(t, "p1", got["patientId"])
}

func TestClient_NotificationsForRole(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/notifications/role/supervisor", r.URL.Path)
		writeTestJSON(w, http.StatusOK, []domain.Notification{
			{ID: "n1", Role: domain.RoleSupervisor, Title: "New bed request"},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	notifications, err := c.NotificationsForRole(context.Background(), domain.RoleSupervisor)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "n1", notifications[0].ID)
}

func TestClient_DecodesBodyWithoutContentTypeHeader(t *testing.T) {
	// Some deployments forget the JSON content type on 2xx responses; the
	// client decodes the body regardless instead of reading it as empty.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]domain.Bed{
			{ID: "b1", Number: "P-1", Ward: "Pediatric", Status: domain.BedAvailable},
		})
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	beds, err := c.ListBeds(context.Background())
	require.NoError(t, err)
	require.Len(t, beds, 1)
	assert.Equal(t, "b1", beds[0].ID)
}

func TestClient_NonJSONSuccessBodyIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>maintenance page</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL, zap.NewNop())
	_, err := c.ListBeds(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unparseable body")
}
