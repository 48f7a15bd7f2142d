package intent

import (
	"regexp"
	"strings"

	"github.com/triagekit/triage/internal/domain/ticket"
)

// Action identifies what a piece of free text asks the system to do.
type Action string

const (
	ActionCreate  Action = "CREATE"
	ActionUpdate  Action = "UPDATE"
	ActionClose   Action = "CLOSE"
	ActionView    Action = "VIEW"
	ActionUnknown Action = "UNKNOWN"
)

// Intent is the structured result of classifying free text: an action
// plus whatever fields could be extracted. Parsing never fails;
// unparseable input degrades to ActionUnknown with Raw preserved.
type Intent struct {
	Action  Action
	ID      string
	Cat     ticket.Category
	Pri     ticket.Priority
	Title   string
	Desc    string
	Stat    *ticket.Status
	Res     string
	Filters ticket.ListOptions
	Raw     string
}

// Hints carries fields the caller already knows, e.g. a UI form that
// supplies the action directly. Hinted values skip detection.
type Hints struct {
	Action Action
	ID     string
}

var (
	idPattern        = regexp.MustCompile(`(?i)\bt\d+\b`)
	titlePattern     = regexp.MustCompile(`(?i)\b(?:create|new|add)\b:?\s*(?:ticket\b:?\s*)?(?:for\s+)?(.*)$`)
	trailingPriority = regexp.MustCompile(`(?i)[,;]\s*(?:urgent|critical|asap|emergency|high|medium|normal|low|minor)(?:\s+priority)?\s*[.!]?$`)

	actionPatterns = make(map[Action]*regexp.Regexp, len(actionRules))
	priorityWords  = make(map[ticket.Priority]*regexp.Regexp, len(priorityFilterRules))
)

func init() {
	for _, rule := range actionRules {
		actionPatterns[rule.action] = regexp.MustCompile(`(?i)\b(?:` + strings.Join(rule.verbs, "|") + `)\b`)
	}
	for _, rule := range priorityFilterRules {
		priorityWords[rule.pri] = regexp.MustCompile(`(?i)\b(?:` + strings.Join(rule.words, "|") + `)\b`)
	}
}

// Parse classifies free text with no hints.
func Parse(text string) Intent {
	return ParseWithHints(text, Hints{})
}

// ParseWithHints classifies free text, letting hinted fields override
// detection.
func ParseWithHints(text string, hints Hints) Intent {
	in := Intent{Action: ActionUnknown, Raw: text}

	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)

	if hints.Action != "" {
		in.Action = hints.Action
	} else {
		in.Action = detectAction(lower)
	}
	if hints.ID != "" {
		in.ID = strings.ToUpper(hints.ID)
	} else {
		in.ID = extractID(trimmed)
	}
	in.Cat = detectCategory(lower)
	in.Pri = detectPriority(lower)

	switch in.Action {
	case ActionCreate:
		parseCreate(&in, trimmed)
	case ActionUpdate:
		parseUpdate(&in, trimmed, lower)
	case ActionClose:
		parseClose(&in, trimmed)
	case ActionView:
		parseView(&in, lower)
	}
	return in
}

func detectAction(lower string) Action {
	for _, rule := range actionRules {
		if actionPatterns[rule.action].MatchString(lower) {
			return rule.action
		}
	}
	return ActionUnknown
}

func detectCategory(lower string) ticket.Category {
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.cat
			}
		}
	}
	return ticket.CategoryOther
}

func detectPriority(lower string) ticket.Priority {
	for _, rule := range priorityRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.pri
			}
		}
	}
	return ticket.PriorityMedium
}

func detectStatus(lower string) *ticket.Status {
	for _, rule := range statusRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				stat := rule.stat
				return &stat
			}
		}
	}
	return nil
}

func extractID(text string) string {
	return strings.ToUpper(idPattern.FindString(text))
}

func parseCreate(in *Intent, text string) {
	rest := text
	if m := titlePattern.FindStringSubmatch(text); m != nil {
		rest = m[1]
	}
	rest = trailingPriority.ReplaceAllString(rest, "")
	in.Title = strings.TrimSpace(rest)
}

func parseUpdate(in *Intent, text, lower string) {
	in.Stat = detectStatus(lower)
	in.Res = extractNote(text, in.ID)
}

func parseClose(in *Intent, text string) {
	done := ticket.StatusDone
	in.Stat = &done
	in.Res = extractNote(text, in.ID)
	if in.Res == "" {
		in.Res = "resolved"
	}
}

func parseView(in *Intent, lower string) {
	if in.ID != "" {
		return
	}
	if stat := detectStatus(lower); stat != nil {
		in.Filters.Status = stat
	}
	for _, rule := range priorityFilterRules {
		if priorityWords[rule.pri].MatchString(lower) {
			pri := rule.pri
			in.Filters.Priority = &pri
			break
		}
	}
}

// fillerTokens are connective and status words dropped from the front
// of an update note when no comma separates it from the status phrase.
var fillerTokens = map[string]bool{
	"to": true, "status": true, "as": true, "is": true, "now": true,
	"in": true, "progress": true, "prog": true, "working": true,
	"open": true, "reopen": true, "done": true, "completed": true,
	"finished": true, "closed": true,
}

// extractNote returns the free text following the ticket id: the part
// after the first comma when one is present, otherwise the remainder
// with leading filler words stripped.
func extractNote(text, id string) string {
	if id == "" {
		return ""
	}
	idx := strings.Index(strings.ToUpper(text), id)
	if idx < 0 {
		return ""
	}
	remainder := text[idx+len(id):]

	if comma := strings.Index(remainder, ","); comma >= 0 {
		return strings.TrimSpace(remainder[comma+1:])
	}

	fields := strings.Fields(remainder)
	for len(fields) > 0 && fillerTokens[strings.ToLower(strings.Trim(fields[0], ".,!"))] {
		fields = fields[1:]
	}
	return strings.TrimSpace(strings.Join(fields, " "))
}
