package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/helxplatform/ddindex/internal/config"
	"github.com/helxplatform/ddindex/internal/logging"
	"github.com/helxplatform/ddindex/pkg/ddindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*LakeFSClient, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewLakeFSClient(&config.LakeFSConfig{
		EndpointURL:     server.URL,
		AccessKeyID:     "AKIAEXAMPLE",
		SecretAccessKey: "secret",
	}, logging.NewNullLogger())

	return client, server
}

func writeListPage(w http.ResponseWriter, hasMore bool, nextOffset string, results ...map[string]string) {
	page := map[string]interface{}{
		"pagination": map[string]interface{}{
			"has_more":    hasMore,
			"next_offset": nextOffset,
		},
		"results": results,
	}
	json.NewEncoder(w).Encode(page)
}

func TestLakeFSClient_List_MapsPathTypes(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/repositories/heal-studies/refs/main/objects/ls", r.URL.Path)
		assert.Equal(t, "/", r.URL.Query().Get("delimiter"))

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "AKIAEXAMPLE", user)
		assert.Equal(t, "secret", pass)

		writeListPage(w, false, "",
			map[string]string{"path": "nested/", "path_type": "common_prefix"},
			map[string]string{"path": "phs000001.xml", "path_type": "object"},
		)
	}))

	entries, err := client.List(context.Background(), "heal-studies", "main", "")
	require.NoError(t, err)

	assert.Equal(t, []ddindex.ObjectEntry{
		{Path: "nested/", Type: ddindex.EntryTypeDirectory},
		{Path: "phs000001.xml", Type: ddindex.EntryTypeObject},
	}, entries)
}

func TestLakeFSClient_List_FollowsPagination(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		switch r.URL.Query().Get("after") {
		case "":
			writeListPage(w, true, "phs000001.xml",
				map[string]string{"path": "phs000001.xml", "path_type": "object"},
			)
		case "phs000001.xml":
			writeListPage(w, false, "",
				map[string]string{"path": "phs000002.xml", "path_type": "object"},
			)
		default:
			t.Errorf("unexpected after parameter %q", r.URL.Query().Get("after"))
		}
	}))

	entries, err := client.List(context.Background(), "heal-studies", "main", "")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, entries, 2)
	assert.Equal(t, "phs000002.xml", entries[1].Path)
}

func TestLakeFSClient_List_RetriesTransientErrors(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "temporarily unavailable", http.StatusServiceUnavailable)
			return
		}
		writeListPage(w, false, "",
			map[string]string{"path": "phs000001.xml", "path_type": "object"},
		)
	}))

	entries, err := client.List(context.Background(), "heal-studies", "main", "")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Len(t, entries, 1)
}

func TestLakeFSClient_List_AuthFailureIsFatal(t *testing.T) {
	calls := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
	}))

	_, err := client.List(context.Background(), "heal-studies", "main", "")
	assert.ErrorIs(t, err, ddindex.ErrConnectionFailed)
	assert.Equal(t, 1, calls, "401 must not be retried")
}

func TestLakeFSClient_Open_ReturnsContent(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/repositories/heal-studies/refs/main/objects", r.URL.Path)
		assert.Equal(t, "nested/phs000001.xml", r.URL.Query().Get("path"))
		fmt.Fprint(w, `<data_table study_id="phs000001"/>`)
	}))

	r, err := client.Open(context.Background(), "heal-studies", "main", "nested/phs000001.xml")
	require.NoError(t, err)
	defer r.Close()

	content, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, `<data_table study_id="phs000001"/>`, string(content))
}

func TestLakeFSClient_Open_MissingObjectIsFatal(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "object not found", http.StatusNotFound)
	}))

	_, err := client.Open(context.Background(), "heal-studies", "main", "missing.xml")
	assert.ErrorIs(t, err, ddindex.ErrConnectionFailed)
}
