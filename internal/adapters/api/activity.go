package api

import (
	"context"
	"net/url"

	"huddle/internal/domain"
)

// FetchGroupActivity asks for server-aggregated activity over a date range.
// A 404 means the server does not aggregate activity; that outcome is
// returned as ok=false rather than as an error, so callers branch on the
// result instead of probing error shapes. Every other failure propagates.
func (c *Client) FetchGroupActivity(ctx context.Context, groupID string, from, to domain.Date) ([]domain.ActivityItem, bool, error) {
	query := url.Values{"from": {string(from)}, "to": {string(to)}}
	path := "/groups/" + url.PathEscape(groupID) + "/activity?" + query.Encode()

	raw, err := c.get(ctx, path, "group:activity")
	if err != nil {
		if IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	items, err := decodeList(raw, "activity")
	if err != nil {
		return nil, false, err
	}

	activity := make([]domain.ActivityItem, 0, len(items))
	for _, item := range items {
		entry, err := decodeActivityItem(item)
		if err != nil {
			return nil, false, err
		}
		activity = append(activity, entry)
	}

	return activity, true, nil
}

// ListLogEntries is the per-goal query behind the activity fallback.
func (c *Client) ListLogEntries(ctx context.Context, goalID string, from, to domain.Date) ([]domain.LogEntry, error) {
	query := url.Values{
		"goalId": {goalID},
		"from":   {string(from)},
		"to":     {string(to)},
	}

	raw, err := c.get(ctx, "/log-entries?"+query.Encode(), "logs:list")
	if err != nil {
		return nil, err
	}

	items, err := decodeList(raw, "log entry")
	if err != nil {
		return nil, err
	}

	entries := make([]domain.LogEntry, 0, len(items))
	for _, item := range items {
		entry, err := decodeLogEntry(item)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
