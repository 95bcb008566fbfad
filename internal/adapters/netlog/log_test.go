package netlog

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogKeepsOnlyNewestHundredEntries(t *testing.T) {
	t.Parallel()

	log := New()
	for i := 0; i < 150; i++ {
		id := log.Start("GET", fmt.Sprintf("http://api/call/%d", i), "", "")
		log.End(id, 200, true, "")
	}

	entries := log.Entries()
	require.Len(t, entries, MaxEntries)

	// Newest first: call 149 at the top, call 50 at the bottom.
	assert.Equal(t, "http://api/call/149", entries[0].URL)
	assert.Equal(t, "http://api/call/50", entries[MaxEntries-1].URL)

	log.Clear()
	assert.Empty(t, log.Entries())
}

func TestLogEndRecordsExactlyOneTerminalEvent(t *testing.T) {
	t.Parallel()

	log := New()
	id := log.Start("post", "http://api/auth/login", "auth:login", `{"email":"a@b.com"}`)

	log.End(id, 200, true, `{"token":"T"}`)
	log.Fail(id, "late failure must not overwrite")

	entries := log.Entries()
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "POST", entry.Method)
	assert.Equal(t, 200, entry.Status)
	assert.True(t, entry.OK)
	assert.Empty(t, entry.ErrorMessage)
	assert.Equal(t, `{"token":"T"}`, entry.ResponsePreview)
}

func TestLogFail(t *testing.T) {
	t.Parallel()

	log := New()
	id := log.Start("GET", "http://api/x", "", "")
	log.Fail(id, "connection refused")

	entry := log.Entries()[0]
	assert.False(t, entry.OK)
	assert.True(t, entry.Done)
	assert.Equal(t, "connection refused", entry.ErrorMessage)
}

func TestLogIgnoresUnknownIDs(t *testing.T) {
	t.Parallel()

	log := New()
	log.End("missing", 200, true, "")
	log.Fail("missing", "nope")
	assert.Empty(t, log.Entries())
}

func TestLogTruncatesPreviews(t *testing.T) {
	t.Parallel()

	log := New()
	log.Start("GET", "http://api/x", "", strings.Repeat("a", 1000))

	entry := log.Entries()[0]
	assert.Len(t, []rune(entry.RequestPreview), previewLimit+1)
	assert.True(t, strings.HasSuffix(entry.RequestPreview, "…"))
}

func TestLogTruncatesPreviewOnRuneBoundary(t *testing.T) {
	t.Parallel()

	// Two-byte runes ensure one straddles the byte limit.
	log := New()
	log.Start("GET", "http://api/x", "", strings.Repeat("é", previewLimit))

	entry := log.Entries()[0]
	assert.True(t, utf8.ValidString(entry.RequestPreview))
	assert.True(t, strings.HasSuffix(entry.RequestPreview, "…"))
}
