package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"huddle/internal/adapters/netlog"
	"huddle/internal/domain"
)

// Groups renders a group listing, one section per group.
func Groups(groups []domain.Group, scope string) string {
	s := newStyles()
	lines := []string{
		s.title.Render("Groups"),
		s.header.Render(fmt.Sprintf("scope: %s, total: %d", scope, len(groups))),
	}

	if len(groups) == 0 {
		lines = append(lines, s.empty.Render("No groups."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, group := range groups {
		lines = append(lines, s.section.Render(groupSection(group, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Group renders one group in full.
func Group(group domain.Group) string {
	s := newStyles()
	return lipgloss.JoinVertical(lipgloss.Left,
		s.title.Render("Group"),
		s.section.Render(groupSection(group, s)),
	)
}

func groupSection(group domain.Group, s styles) string {
	parts := []string{
		s.name.Render(fmt.Sprintf("%s (%s)", group.Name, group.ID)),
		s.detail.Render(fmt.Sprintf("%s → %s, %s", group.StartDate, group.EndDate, group.Visibility)),
	}
	if group.Description != "" {
		parts = append(parts, s.meta.Render(group.Description))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Members renders a membership table.
func Members(members []domain.Member) string {
	s := newStyles()
	lines := []string{
		s.title.Render("Members"),
		s.header.Render(fmt.Sprintf("total: %d", len(members))),
	}

	if len(members) == 0 {
		lines = append(lines, s.empty.Render("No members."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, member := range members {
		name := member.DisplayName
		if name == "" {
			name = member.UserID
		}
		line := fmt.Sprintf("%s  %s/%s", s.name.Render(name), member.Role, member.Status)
		if member.JoinedAt != "" {
			line += s.meta.Render("  joined " + string(member.JoinedAt))
		}
		lines = append(lines, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// Goals renders the goals of one membership.
func Goals(goals []domain.Goal) string {
	s := newStyles()
	lines := []string{
		s.title.Render("Goals"),
		s.header.Render(fmt.Sprintf("total: %d", len(goals))),
	}

	if len(goals) == 0 {
		lines = append(lines, s.empty.Render("No goals yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, goal := range goals {
		detail := string(goal.Type)
		if goal.Type == domain.GoalCount && goal.PerDayTarget > 0 {
			detail = fmt.Sprintf("%s, %d %s/day", goal.Type, goal.PerDayTarget, unitOrDefault(goal.Unit))
		}
		lines = append(lines, fmt.Sprintf("%s  %s", s.name.Render(goal.Title), s.meta.Render(detail)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func unitOrDefault(unit string) string {
	if unit == "" {
		return "times"
	}
	return unit
}

// Activity renders group activity, newest first, one line per item.
func Activity(items []domain.ActivityItem, from, to domain.Date) string {
	s := newStyles()
	lines := []string{
		s.title.Render("Recent activity"),
		s.header.Render(fmt.Sprintf("%s → %s, %d items", from, to, len(items))),
	}

	if len(items) == 0 {
		lines = append(lines, s.empty.Render("No activity yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, item := range items {
		who := item.UserDisplayName
		if who == "" {
			who = "Someone"
		}
		lines = append(lines, fmt.Sprintf("%s  %s %s %s",
			s.dateCol.Render(string(item.LocalDate)),
			s.name.Render(who),
			item.GoalTitle,
			s.meta.Render(activityOutcome(item)),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func activityOutcome(item domain.ActivityItem) string {
	if item.Type == domain.GoalBinary {
		if item.IsDone() {
			return "done"
		}
		return "not done"
	}
	return fmt.Sprintf("%g", item.Amount())
}

// Session renders the whoami output.
func Session(token string, user *domain.UserProfile) string {
	s := newStyles()
	if token == "" || user == nil {
		return s.empty.Render("Not logged in.")
	}

	parts := []string{
		s.name.Render(displayName(user)),
		s.detail.Render(user.Email),
	}
	if user.Timezone != "" {
		parts = append(parts, s.meta.Render(user.Timezone))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func displayName(user *domain.UserProfile) string {
	if user.DisplayName != "" {
		return user.DisplayName
	}
	return user.Email
}

// HTTPLog renders the bounded request log, newest first.
func HTTPLog(entries []netlog.Entry) string {
	s := newStyles()
	lines := []string{
		s.title.Render("HTTP log"),
		s.header.Render(fmt.Sprintf("entries: %d (max %d)", len(entries), netlog.MaxEntries)),
	}

	if len(entries) == 0 {
		lines = append(lines, s.empty.Render("No requests recorded."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, entry := range entries {
		lines = append(lines, s.section.Render(logSection(entry, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func logSection(entry netlog.Entry, s styles) string {
	head := fmt.Sprintf("%s %s", entry.Method, entry.URL)
	if entry.Tag != "" {
		head += s.tagLabel.Render(" (" + entry.Tag + ")")
	}

	var outcome string
	switch {
	case !entry.Done:
		outcome = s.meta.Render("in flight")
	case entry.ErrorMessage != "":
		outcome = s.failed.Render("FAIL " + entry.ErrorMessage)
	case entry.OK:
		outcome = s.ok.Render(fmt.Sprintf("%d in %dms", entry.Status, entry.DurationMs))
	default:
		outcome = s.failed.Render(fmt.Sprintf("%d in %dms", entry.Status, entry.DurationMs))
	}

	parts := []string{s.detail.Render(head), outcome}
	if entry.ResponsePreview != "" && !entry.OK {
		parts = append(parts, s.meta.Render(truncate(entry.ResponsePreview, 120)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return strings.TrimSpace(s[:cut]) + "…"
}
