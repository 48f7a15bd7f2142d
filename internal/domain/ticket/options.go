package ticket

// DefaultListLimit caps list results. This is a hard cap, not a page.
const DefaultListLimit = 10

// ListOptions provides conjunctive filter predicates for listing
// tickets. Nil fields match everything.
type ListOptions struct {
	Status   *Status
	Category *Category
	Priority *Priority
	Limit    int
}

// Matches reports whether t satisfies every supplied predicate.
func (o ListOptions) Matches(t Ticket) bool {
	if o.Status != nil && t.Stat != *o.Status {
		return false
	}
	if o.Category != nil && t.Cat != *o.Category {
		return false
	}
	if o.Priority != nil && t.Pri != *o.Priority {
		return false
	}
	return true
}
