package ticket

// Category buckets a ticket by subject area.
type Category string

const (
	CategoryCode  Category = "code"
	CategoryInfra Category = "infra"
	CategoryDoc   Category = "doc"
	CategoryOther Category = "other"
)

// Priority ranks urgency: 1 is high, 3 is low.
type Priority int

const (
	PriorityHigh   Priority = 1
	PriorityMedium Priority = 2
	PriorityLow    Priority = 3
)

// Status represents the lifecycle state of a ticket.
type Status string

const (
	StatusOpen Status = "open"
	StatusProg Status = "prog"
	StatusDone Status = "done"
)

// Field length caps, applied at write time.
const (
	MaxTitleLen      = 50
	MaxDescLen       = 200
	MaxResolutionLen = 100

	summaryTitleLen = 30
)

// Ticket is the sole persisted entity. Created is a YYYY-MM-DD date
// string set once at creation and never rewritten.
type Ticket struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Desc    string   `json:"desc"`
	Cat     Category `json:"cat"`
	Pri     Priority `json:"pri"`
	Stat    Status   `json:"stat"`
	Created string   `json:"created"`
	Res     string   `json:"res,omitempty"`
}

// Summary is the compact projection used for listings.
type Summary struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Cat   Category `json:"cat"`
	Pri   Priority `json:"pri"`
}

// Summarize returns the listing projection of the ticket.
func (t Ticket) Summarize() Summary {
	return Summary{
		ID:    t.ID,
		Title: Truncate(t.Title, summaryTitleLen),
		Cat:   t.Cat,
		Pri:   t.Pri,
	}
}

// Stats aggregates the collection by status, category and priority.
type Stats struct {
	Total      int              `json:"total"`
	ByStatus   map[Status]int   `json:"by_status"`
	ByCategory map[Category]int `json:"by_category"`
	ByPriority map[Priority]int `json:"by_priority"`
}

// NormalizeCategory coerces unrecognized values to CategoryOther.
func NormalizeCategory(c Category) Category {
	switch c {
	case CategoryCode, CategoryInfra, CategoryDoc, CategoryOther:
		return c
	}
	return CategoryOther
}

// NormalizePriority coerces out-of-range values to PriorityMedium.
func NormalizePriority(p Priority) Priority {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return p
	}
	return PriorityMedium
}

// NormalizeStatus coerces unrecognized values to StatusOpen.
func NormalizeStatus(s Status) Status {
	switch s {
	case StatusOpen, StatusProg, StatusDone:
		return s
	}
	return StatusOpen
}

// Truncate caps s at max runes.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
