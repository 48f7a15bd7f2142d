package intent

import "github.com/triagekit/triage/internal/domain/ticket"

// Keyword tables are evaluated in declaration order, first match wins.
// Category and priority matching is substring-based, so "urgently"
// still triggers "urgent". Action verbs match on word boundaries.

var actionRules = []struct {
	action Action
	verbs  []string
}{
	{ActionCreate, []string{"create", "new", "add"}},
	{ActionUpdate, []string{"update", "change", "set", "modify"}},
	{ActionClose, []string{"close", "resolve", "fix", "finish"}},
	{ActionView, []string{"show", "list", "view", "find", "get"}},
}

var categoryRules = []struct {
	cat      ticket.Category
	keywords []string
}{
	{ticket.CategoryCode, []string{"bug", "error", "exception", "build", "compile", "ci/cd"}},
	{ticket.CategoryInfra, []string{"server", "network", "database", "performance", "outage", "deploy", "aws", "azure"}},
	{ticket.CategoryDoc, []string{"documentation", "readme", "guide", "manual", "wiki", "spec"}},
}

var priorityRules = []struct {
	pri      ticket.Priority
	keywords []string
}{
	{ticket.PriorityHigh, []string{"urgent", "critical", "asap", "emergency", "outage", "down", "high"}},
	{ticket.PriorityLow, []string{"low", "minor", "enhancement", "nice-to-have"}},
}

// Status phrases recognized in UPDATE text and VIEW filters.
var statusRules = []struct {
	stat     ticket.Status
	keywords []string
}{
	{ticket.StatusProg, []string{"in progress", "progress", "prog", "working"}},
	{ticket.StatusDone, []string{"done", "completed", "finished", "closed"}},
	{ticket.StatusOpen, []string{"reopen", "open"}},
}

// Priority filter words for VIEW queries, matched on word boundaries.
var priorityFilterRules = []struct {
	pri   ticket.Priority
	words []string
}{
	{ticket.PriorityHigh, []string{"high", "urgent", "critical"}},
	{ticket.PriorityMedium, []string{"medium", "normal"}},
	{ticket.PriorityLow, []string{"low", "minor"}},
}
