package intent_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/triagekit/triage/internal/domain/intent"
	"github.com/triagekit/triage/internal/domain/ticket"
)

func TestParse_ActionDetection(t *testing.T) {
	tests := []struct {
		text string
		want intent.Action
	}{
		{"create ticket for login bug", intent.ActionCreate},
		{"new ticket: API timeout", intent.ActionCreate},
		{"add a ticket about the wiki", intent.ActionCreate},
		{"update T001 to done", intent.ActionUpdate},
		{"change T002 status", intent.ActionUpdate},
		{"close T001, fixed it", intent.ActionClose},
		{"resolve T002, updated docs", intent.ActionClose},
		{"show open tickets", intent.ActionView},
		{"list high priority tickets", intent.ActionView},
		{"view T001", intent.ActionView},
		{"find database tickets", intent.ActionView},
		{"hello there", intent.ActionUnknown},
		{"", intent.ActionUnknown},
	}
	for _, tt := range tests {
		in := intent.Parse(tt.text)
		require.Equal(t, tt.want, in.Action, "text: %q", tt.text)
	}
}

func TestParse_ActionVerbsMatchWholeWords(t *testing.T) {
	// "reset" must not trigger the "set" verb, "fixed" not "fix".
	in := intent.Parse("close T001, reset the password cache")
	require.Equal(t, intent.ActionClose, in.Action)
}

func TestParse_CategoryInference(t *testing.T) {
	tests := []struct {
		text string
		want ticket.Category
	}{
		{"create ticket for login bug", ticket.CategoryCode},
		{"create ticket for compile failure", ticket.CategoryCode},
		{"create ticket for database connection timeout", ticket.CategoryInfra},
		{"create ticket for server deployment automation", ticket.CategoryInfra},
		{"create ticket: fix the readme", ticket.CategoryDoc},
		{"create ticket for quarterly planning", ticket.CategoryOther},
	}
	for _, tt := range tests {
		in := intent.Parse(tt.text)
		require.Equal(t, tt.want, in.Cat, "text: %q", tt.text)
	}
}

func TestParse_CategoryOrderFirstMatchWins(t *testing.T) {
	// "bug" (code) and "server" (infra) in one message: code is
	// declared first.
	in := intent.Parse("create ticket for bug on the server")
	require.Equal(t, ticket.CategoryCode, in.Cat)
}

func TestParse_PriorityInference(t *testing.T) {
	tests := []struct {
		text string
		want ticket.Priority
	}{
		{"create ticket for login bug, high priority", ticket.PriorityHigh},
		{"create ticket, this is urgent", ticket.PriorityHigh},
		{"create ticket for minor typo", ticket.PriorityLow},
		{"create ticket for API timeout, medium priority", ticket.PriorityMedium},
		{"create ticket for API timeout", ticket.PriorityMedium},
	}
	for _, tt := range tests {
		in := intent.Parse(tt.text)
		require.Equal(t, tt.want, in.Pri, "text: %q", tt.text)
	}
}

func TestParse_PriorityOrderFirstMatchWins(t *testing.T) {
	// Both "urgent" (1) and "minor" (3): the priority-1 rule is
	// declared first.
	in := intent.Parse("create ticket, urgent fix for a minor typo")
	require.Equal(t, ticket.PriorityHigh, in.Pri)
}

func TestParse_TicketIDExtraction(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"update T001 to done", "T001"},
		{"close t042, fixed", "T042"},
		{"view T1234", "T1234"},
		{"show open tickets", ""},
	}
	for _, tt := range tests {
		in := intent.Parse(tt.text)
		require.Equal(t, tt.want, in.ID, "text: %q", tt.text)
	}
}

func TestParse_CreateTitle(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Create ticket for login bug, high priority", "login bug"},
		{"Create ticket: API timeout in production, medium priority", "API timeout in production"},
		{"new ticket: server deployment automation", "server deployment automation"},
		{"add ticket for wiki cleanup", "wiki cleanup"},
		{"create", ""},
	}
	for _, tt := range tests {
		in := intent.Parse(tt.text)
		require.Equal(t, intent.ActionCreate, in.Action)
		require.Equal(t, tt.want, in.Title, "text: %q", tt.text)
	}
}

func TestParse_UpdateStatusAndNote(t *testing.T) {
	in := intent.Parse("Update T001 to in progress, investigating load balancer")
	require.Equal(t, intent.ActionUpdate, in.Action)
	require.Equal(t, "T001", in.ID)
	require.NotNil(t, in.Stat)
	require.Equal(t, ticket.StatusProg, *in.Stat)
	require.Equal(t, "investigating load balancer", in.Res)
}

func TestParse_UpdateStatusOnly(t *testing.T) {
	in := intent.Parse("change T002 status to done")
	require.Equal(t, intent.ActionUpdate, in.Action)
	require.Equal(t, "T002", in.ID)
	require.NotNil(t, in.Stat)
	require.Equal(t, ticket.StatusDone, *in.Stat)
	require.Empty(t, in.Res)
}

func TestParse_CloseResolution(t *testing.T) {
	in := intent.Parse("Close T999, fixed it")
	require.Equal(t, intent.ActionClose, in.Action)
	require.Equal(t, "T999", in.ID)
	require.Equal(t, "fixed it", in.Res)
	require.NotNil(t, in.Stat)
	require.Equal(t, ticket.StatusDone, *in.Stat)
}

func TestParse_CloseDefaultResolution(t *testing.T) {
	in := intent.Parse("close T001")
	require.Equal(t, "resolved", in.Res)
}

func TestParse_ViewFilters(t *testing.T) {
	in := intent.Parse("Show open high priority tickets")
	require.Equal(t, intent.ActionView, in.Action)
	require.NotNil(t, in.Filters.Status)
	require.Equal(t, ticket.StatusOpen, *in.Filters.Status)
	require.NotNil(t, in.Filters.Priority)
	require.Equal(t, ticket.PriorityHigh, *in.Filters.Priority)
}

func TestParse_ViewNoFilters(t *testing.T) {
	in := intent.Parse("show all tickets")
	require.Equal(t, intent.ActionView, in.Action)
	require.Nil(t, in.Filters.Status)
	require.Nil(t, in.Filters.Priority)
}

func TestParse_ViewClosedTickets(t *testing.T) {
	in := intent.Parse("list closed tickets")
	require.NotNil(t, in.Filters.Status)
	require.Equal(t, ticket.StatusDone, *in.Filters.Status)
}

func TestParseWithHints_ActionOverridesDetection(t *testing.T) {
	in := intent.ParseWithHints("login bug on production", intent.Hints{Action: intent.ActionCreate})
	require.Equal(t, intent.ActionCreate, in.Action)
	require.Equal(t, "login bug on production", in.Title)
}

func TestParseWithHints_IDNormalizedUppercase(t *testing.T) {
	in := intent.ParseWithHints("mark as done", intent.Hints{Action: intent.ActionUpdate, ID: "t007"})
	require.Equal(t, "T007", in.ID)
}

func TestParse_UnknownPreservesRaw(t *testing.T) {
	in := intent.Parse("gibberish input with no verbs")
	require.Equal(t, intent.ActionUnknown, in.Action)
	require.Equal(t, "gibberish input with no verbs", in.Raw)
}
