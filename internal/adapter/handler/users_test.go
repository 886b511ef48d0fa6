package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthModule serves a minimal in-memory user API the way the auth
// module does.
func fakeAuthModule(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /users", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"email":"alice@example.com","email_verified":true}]`)
	})
	mux.HandleFunc("POST /users", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		w.Write(body)
	})
	mux.HandleFunc("GET /users/{email}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("email") != "alice@example.com" {
			w.WriteHeader(http.StatusNotFound)
			io.WriteString(w, `{"detail":"User not found"}`)
			return
		}
		io.WriteString(w, `{"email":"alice@example.com","email_verified":true}`)
	})
	mux.HandleFunc("PUT /users/{email}", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"email":"alice@example.com","email_verified":false}`)
	})
	mux.HandleFunc("DELETE /users/{email}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("email") != "alice@example.com" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /stats", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"total_users":1,"verified_users":1}`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestUserHandler_ListPassesPayloadThrough(t *testing.T) {
	auth := fakeAuthModule(t)
	e := newTestRouter(auth.URL)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `[{"email":"alice@example.com","email_verified":true}]`, rec.Body.String())
}

func TestUserHandler_GetKnownUser(t *testing.T) {
	auth := fakeAuthModule(t)
	e := newTestRouter(auth.URL)

	req := httptest.NewRequest(http.MethodGet, "/api/users/alice@example.com", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"email":"alice@example.com","email_verified":true}`, rec.Body.String())
}

func TestUserHandler_GetUnknownUserIs404(t *testing.T) {
	auth := fakeAuthModule(t)
	e := newTestRouter(auth.URL)

	req := httptest.NewRequest(http.MethodGet, "/api/users/unknown@example.com", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "NotFound", body.Kind)
}

func TestUserHandler_CreateReturns201(t *testing.T) {
	auth := fakeAuthModule(t)
	e := newTestRouter(auth.URL)

	req := httptest.NewRequest(http.MethodPost, "/api/users",
		strings.NewReader(`{"email":"bob@example.com","password":"secret"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "bob@example.com")
}

func TestUserHandler_UpdateMalformedBodyRejectedLocally(t *testing.T) {
	var upstreamCalls atomic.Int64
	authServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamCalls.Add(1)
	}))
	defer authServer.Close()

	e := newTestRouter(authServer.URL)

	req := httptest.NewRequest(http.MethodPut, "/api/users/alice@example.com",
		strings.NewReader(`{"email_verified":`))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "InvalidArgument", body.Kind)
	assert.Zero(t, upstreamCalls.Load())
}

func TestUserHandler_DeleteKnownUserIs204(t *testing.T) {
	auth := fakeAuthModule(t)
	e := newTestRouter(auth.URL)

	req := httptest.NewRequest(http.MethodDelete, "/api/users/alice@example.com", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestUserHandler_DeleteUnknownUserIs404Not503(t *testing.T) {
	auth := fakeAuthModule(t)
	e := newTestRouter(auth.URL)

	req := httptest.NewRequest(http.MethodDelete, "/api/users/unknown@example.com", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStatsHandler_PassesPayloadThrough(t *testing.T) {
	auth := fakeAuthModule(t)
	e := newTestRouter(auth.URL)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"total_users":1,"verified_users":1}`, rec.Body.String())
}

func TestAPIEndpoints_AuthModuleDownIs503WhileUIStaysUp(t *testing.T) {
	e := newTestRouter("http://auth.invalid")

	apiRequests := []struct {
		method string
		path   string
		body   io.Reader
	}{
		{http.MethodGet, "/api/users", nil},
		{http.MethodGet, "/api/users/alice@example.com", nil},
		{http.MethodPut, "/api/users/alice@example.com", strings.NewReader(`{}`)},
		{http.MethodDelete, "/api/users/alice@example.com", nil},
		{http.MethodGet, "/api/stats", nil},
	}

	for _, tt := range apiRequests {
		req := httptest.NewRequest(tt.method, tt.path, tt.body)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code, "%s %s", tt.method, tt.path)

		var body errorBody
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "ServiceUnavailable", body.Kind, "%s %s", tt.method, tt.path)
	}

	req := httptest.NewRequest(http.MethodGet, "/ui/dashboard", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthAndManifest(t *testing.T) {
	e := newTestRouter("http://auth.invalid")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	req = httptest.NewRequest(http.MethodGet, "/manifest", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	var manifest map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &manifest))
	assert.Equal(t, "admin-dashboard", manifest["name"])
}
