package netlog

import (
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	// MaxEntries bounds the ring; the oldest entries fall off.
	MaxEntries = 100

	previewLimit = 300
)

// Entry is one recorded request. Created on start, mutated exactly once on
// completion or failure, never deleted individually.
type Entry struct {
	ID              string
	Method          string
	URL             string
	Tag             string
	StartedAt       time.Time
	EndedAt         time.Time
	DurationMs      int64
	Status          int
	OK              bool
	Done            bool
	ErrorMessage    string
	RequestPreview  string
	ResponsePreview string
}

// Log is a bounded in-memory request log, newest first. All mutation is a
// single step under the mutex, so in-flight requests from different
// goroutines interleave without corrupting entries.
type Log struct {
	mu      sync.Mutex
	entries []Entry
	clock   func() time.Time
}

func New() *Log {
	return &Log{clock: time.Now}
}

// Start appends a new entry and returns its id for the terminal event.
func (l *Log) Start(method, url, tag, requestBody string) string {
	entry := Entry{
		ID:             uuid.NewString(),
		Method:         strings.ToUpper(method),
		URL:            url,
		Tag:            tag,
		RequestPreview: preview(requestBody),
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entry.StartedAt = l.clock()
	l.entries = append([]Entry{entry}, l.entries...)
	if len(l.entries) > MaxEntries {
		l.entries = l.entries[:MaxEntries]
	}

	return entry.ID
}

// End marks a request complete. Unknown ids are ignored; the entry may
// have already been pushed off the ring.
func (l *Log) End(id string, status int, ok bool, responseBody string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		if l.entries[i].ID != id || l.entries[i].Done {
			continue
		}
		now := l.clock()
		l.entries[i].EndedAt = now
		l.entries[i].DurationMs = now.Sub(l.entries[i].StartedAt).Milliseconds()
		l.entries[i].Status = status
		l.entries[i].OK = ok
		l.entries[i].Done = true
		l.entries[i].ResponsePreview = preview(responseBody)
		return
	}
}

// Fail marks a request as failed before any response arrived.
func (l *Log) Fail(id string, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		if l.entries[i].ID != id || l.entries[i].Done {
			continue
		}
		now := l.clock()
		l.entries[i].EndedAt = now
		l.entries[i].DurationMs = now.Sub(l.entries[i].StartedAt).Milliseconds()
		l.entries[i].OK = false
		l.entries[i].Done = true
		l.entries[i].ErrorMessage = message
		return
	}
}

// Entries returns a snapshot, newest first.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Log) Clear() {
	l.mu.Lock()
	l.entries = nil
	l.mu.Unlock()
}

// preview truncates on a rune boundary so a multi-byte character
// straddling the limit never leaves an invalid UTF-8 tail.
func preview(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= previewLimit {
		return s
	}

	cut := previewLimit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "…"
}
