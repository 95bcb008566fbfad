package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huddle/internal/domain"
)

func TestFetchGroupActivityReturnsItems(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "2025-09-01", r.URL.Query().Get("from"))
		require.Equal(t, "2025-09-15", r.URL.Query().Get("to"))
		_, _ = w.Write([]byte(`[
			{"id":"` + testGoalID + `","goal_title":"Meditate","local_date":"2025-09-10","type":"binary","done":true}
		]`))
	}))
	defer server.Close()

	client := New(server.URL)
	items, ok, err := client.FetchGroupActivity(context.Background(), testGroupID, "2025-09-01", "2025-09-15")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.True(t, items[0].IsDone())
}

func TestFetchGroupActivityNotFoundIsAnOutcomeNotAnError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"no such route"}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := New(server.URL)
	items, ok, err := client.FetchGroupActivity(context.Background(), testGroupID, "2025-09-01", "2025-09-15")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, items)
}

func TestFetchGroupActivityOtherErrorsPropagate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"db down"}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	client := New(server.URL)
	_, _, err := client.FetchGroupActivity(context.Background(), testGroupID, "2025-09-01", "2025-09-15")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "db down", apiErr.Message)
}

func TestListGroupsRejectsNonListPayload(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"groups":[]}`))
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.ListGroups(context.Background(), ScopeMine)
	assert.ErrorContains(t, err, "did not return a group list")
}

func TestListGroupsScopeValidation(t *testing.T) {
	t.Parallel()

	client := New("http://unused.invalid")
	_, err := client.ListGroups(context.Background(), GroupScope("all"))
	assert.ErrorContains(t, err, "unknown group scope")
}

func TestListLogEntriesDecodes(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, testGoalID, r.URL.Query().Get("goalId"))
		_, _ = w.Write([]byte(`[
			{"id":"` + testMembershipID + `","local_date":"2025-09-08T06:00:00Z","value":3}
		]`))
	}))
	defer server.Close()

	client := New(server.URL)
	entries, err := client.ListLogEntries(context.Background(), testGoalID, "2025-09-01", "2025-09-15")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.Date("2025-09-08"), entries[0].LocalDate)
	require.NotNil(t, entries[0].Value)
	assert.Equal(t, 3.0, *entries[0].Value)
}
