package toggl

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeEntriesAuthAndDecode(t *testing.T) {
	var gotUser, gotPass string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, _ = r.BasicAuth()
		require.Equal(t, "/me/time_entries", r.URL.Path)
		assert.NotEmpty(t, r.URL.Query().Get("start_date"))
		assert.NotEmpty(t, r.URL.Query().Get("end_date"))

		fmt.Fprint(w, `[
			{"id": 1, "description": "standup", "project_id": 100, "tag_ids": [10],
			 "start": "2026-08-27T09:00:00+00:00", "stop": "2026-08-27T09:15:00+00:00", "duration": 900},
			{"id": 2, "description": "deep work", "project_id": 100, "tag_ids": [],
			 "start": "2026-08-27T10:00:00+00:00", "stop": null, "duration": -1787777000}
		]`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-key")
	from := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	raw, err := client.TimeEntries(context.Background(), from, from.AddDate(0, 0, 1))

	require.NoError(t, err)
	assert.Equal(t, "secret-key", gotUser)
	assert.Equal(t, "api_token", gotPass)

	require.Len(t, raw, 2)
	assert.Equal(t, int64(1), raw[0].ID)
	assert.Equal(t, "standup", raw[0].Description)
	require.NotNil(t, raw[0].ProjectID)
	assert.Equal(t, int64(100), *raw[0].ProjectID)
	assert.Equal(t, []int64{10}, raw[0].TagIDs)
	require.NotNil(t, raw[0].Start)
	assert.NotNil(t, raw[0].Stop)

	// Running entry: stop is null, the negative wire duration is discarded.
	assert.Nil(t, raw[1].Stop)
	require.NotNil(t, raw[1].Start)
}

func TestTimeEntriesWalksRangeInWindows(t *testing.T) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		fmt.Fprintf(w, `[{"id": %d, "start": "2026-08-27T09:00:00+00:00", "stop": "2026-08-27T09:30:00+00:00"}]`,
			atomic.LoadInt32(&requests))
	}))
	defer server.Close()

	client := NewClient(server.URL, "key")
	from := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	raw, err := client.TimeEntries(context.Background(), from, from.AddDate(0, 0, 3))

	require.NoError(t, err)
	assert.Equal(t, int32(3), atomic.LoadInt32(&requests))
	assert.Len(t, raw, 3)
}

func TestGetRetriesServerErrors(t *testing.T) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&requests, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `[{"id": 7, "name": "Research"}]`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "key")
	tags, err := client.Tags(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&requests))
	require.Len(t, tags, 1)
	assert.Equal(t, int64(7), tags[0].ID)
	assert.Equal(t, "Research", tags[0].Name)
}

func TestGetDoesNotRetryClientErrors(t *testing.T) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"error": "invalid token"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "bad-key")
	_, err := client.Projects(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
	assert.Equal(t, int32(1), atomic.LoadInt32(&requests))
}

func TestProjectsDecode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/me/projects", r.URL.Path)
		fmt.Fprint(w, `[{"id": 100, "name": "Infra"}, {"id": 200, "name": "Writing"}]`)
	}))
	defer server.Close()

	client := NewClient(server.URL, "key")
	projects, err := client.Projects(context.Background())

	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "Infra", projects[0].Name)
	assert.Equal(t, int64(200), projects[1].ID)
}
