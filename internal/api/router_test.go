package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/share-a-care/internal/admin"
	"github.com/AlexZinkM/share-a-care/internal/model"
	"github.com/AlexZinkM/share-a-care/internal/store"
	"github.com/AlexZinkM/share-a-care/internal/wallet"
)

const (
	primaryAddr = "0xAAAA000000000000000000000000000000AAAA00"
	beefAddr    = "0xBEEF00000000000000000000000000000000BEEF"
)

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()
	ctx := context.Background()

	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "api.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	session := wallet.New(st, nil, nil)
	_, err = session.Initialize(ctx)
	require.NoError(t, err)

	auth, err := admin.NewAuthorizer(primaryAddr, nil)
	require.NoError(t, err)
	svc := admin.NewService(auth, st, nil)
	require.NoError(t, svc.Bootstrap(ctx, nil))

	srv := httptest.NewServer(SetupRouter(session, svc, st))
	t.Cleanup(srv.Close)
	return srv
}

func send(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, r)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestRouter_AdminFlow(t *testing.T) {
	srv := setupServer(t)

	resp := send(t, http.MethodPost, srv.URL+"/admin/publishers", `{"walletAddress":"`+beefAddr+`"}`)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = send(t, http.MethodPost, srv.URL+"/wallet/connect", `{"address":"`+primaryAddr+`"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = send(t, http.MethodPost, srv.URL+"/admin/publishers", `{"walletAddress":"`+beefAddr+`"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = send(t, http.MethodGet, srv.URL+"/admin/check?address="+strings.ToLower(beefAddr), "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var check model.AdminCheckResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&check))
	assert.True(t, check.IsAdmin)

	resp = send(t, http.MethodDelete, srv.URL+"/admin/publishers/"+beefAddr, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = send(t, http.MethodPost, srv.URL+"/wallet/disconnect", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = send(t, http.MethodGet, srv.URL+"/admin/publishers", "")
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	srv := setupServer(t)

	resp := send(t, http.MethodGet, srv.URL+"/wallet/connect", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	resp = send(t, http.MethodPost, srv.URL+"/projects", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestRouter_Dashboard(t *testing.T) {
	srv := setupServer(t)

	resp := send(t, http.MethodGet, srv.URL+"/projects", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var projects []model.ProjectView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&projects))
	assert.Empty(t, projects)

	resp = send(t, http.MethodGet, srv.URL+"/projects/missing", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = send(t, http.MethodGet, srv.URL+"/donors/top", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_Swagger(t *testing.T) {
	srv := setupServer(t)

	resp := send(t, http.MethodGet, srv.URL+"/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var doc map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/wallet/connect")
	assert.Contains(t, paths, "/admin/publishers/{address}")
}
