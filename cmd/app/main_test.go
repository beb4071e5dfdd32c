package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI against srv with a throwaway config
func execute(t *testing.T, srv *httptest.Server, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	cfg := filepath.Join(dir, "config.yaml")
	body := "api:\n  base_url: \"" + srv.URL + "/api/v1\"\nlogging:\n  file: \"" + filepath.Join(dir, "app.log") + "\"\n  level: \"error\"\n"
	require.NoError(t, os.WriteFile(cfg, []byte(body), 0644))
	t.Setenv("TOKENDASH_API_URL", "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append(args, "--config", cfg))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSearchCommand(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/search", r.URL.Path)
		gotQuery = r.URL.Query().Get("q")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"query":"eth","count":1,"results":[{"id":"ethereum","symbol":"eth","name":"Ethereum","current_price":3200.5,"market_cap":380000000000}]}`))
	}))
	defer srv.Close()

	out, err := execute(t, srv, "search", "eth")
	require.NoError(t, err)

	assert.Equal(t, "eth", gotQuery)
	assert.Contains(t, out, `1 result(s) for "eth"`)
	assert.Contains(t, out, "ETH")
	assert.Contains(t, out, "$3,200.50")
	assert.Contains(t, out, "$380.00B")
}

func TestSyncCommand(t *testing.T) {
	var gotLimit string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		gotLimit = r.URL.Query().Get("limit")
		w.Write([]byte(`{"message":"Sync completed","synced":5,"total":5}`))
	}))
	defer srv.Close()

	out, err := execute(t, srv, "sync", "--limit", "5")
	require.NoError(t, err)

	assert.Equal(t, "5", gotLimit)
	assert.Equal(t, "Sync completed (5/5 synced)\n", out)
}

func TestSyncCommand_BackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Failed to sync tokens"}`))
	}))
	defer srv.Close()

	_, err := execute(t, srv, "sync", "--limit", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
