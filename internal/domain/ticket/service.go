package ticket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/triagekit/triage/internal/repository"
)

// Service handles ticket business logic.
type Service struct {
	tickets Repository
	logger  *slog.Logger
}

// NewService creates a new ticket service.
func NewService(tickets Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{tickets: tickets, logger: logger}
}

// CreateRequest describes a ticket creation request. Zero-valued
// Cat and Pri fall back to their documented defaults.
type CreateRequest struct {
	Title string
	Desc  string
	Cat   Category
	Pri   Priority
}

// UpdateRequest describes a delta update: only non-nil fields are
// written, everything else is left untouched.
type UpdateRequest struct {
	ID   string
	Stat *Status
	Res  *string
}

// Create allocates the next id, applies defaults and field caps, and
// persists the new ticket.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Ticket, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrMissingTitle
	}

	id, err := s.tickets.NextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("allocating id: %w", err)
	}

	t := &Ticket{
		ID:      id,
		Title:   Truncate(title, MaxTitleLen),
		Desc:    Truncate(strings.TrimSpace(req.Desc), MaxDescLen),
		Cat:     NormalizeCategory(req.Cat),
		Pri:     NormalizePriority(req.Pri),
		Stat:    StatusOpen,
		Created: time.Now().Format("2006-01-02"),
	}

	if err := s.tickets.Insert(ctx, t); err != nil {
		return nil, fmt.Errorf("creating ticket: %w", err)
	}

	s.logger.Info("ticket created", "id", t.ID, "cat", t.Cat, "pri", t.Pri)
	return t, nil
}

// Update merges the supplied fields into an existing ticket and
// persists the result.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Ticket, error) {
	if req.ID == "" {
		return nil, ErrMissingID
	}

	current, err := s.tickets.Get(ctx, req.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading ticket: %w", err)
	}

	updated := *current
	if req.Stat != nil {
		updated.Stat = NormalizeStatus(*req.Stat)
	}
	if req.Res != nil {
		updated.Res = Truncate(strings.TrimSpace(*req.Res), MaxResolutionLen)
	}

	if err := s.tickets.Update(ctx, &updated); err != nil {
		return nil, fmt.Errorf("updating ticket: %w", err)
	}

	s.logger.Info("ticket updated", "id", updated.ID, "stat", updated.Stat)
	return &updated, nil
}

// Close forces the ticket into StatusDone, recording a resolution
// note when one is supplied.
func (s *Service) Close(ctx context.Context, id, resolution string) (*Ticket, error) {
	done := StatusDone
	req := UpdateRequest{ID: id, Stat: &done}
	if resolution != "" {
		req.Res = &resolution
	}
	return s.Update(ctx, req)
}

// Get returns a ticket by id.
func (s *Service) Get(ctx context.Context, id string) (*Ticket, error) {
	t, err := s.tickets.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting ticket: %w", err)
	}
	return t, nil
}

// List returns summaries of tickets matching every supplied filter,
// in creation order, capped at the list limit.
func (s *Service) List(ctx context.Context, opts ListOptions) ([]Summary, error) {
	all, err := s.tickets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tickets: %w", err)
	}

	limit := opts.Limit
	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}

	results := make([]Summary, 0, limit)
	for _, t := range all {
		if !opts.Matches(t) {
			continue
		}
		results = append(results, t.Summarize())
		if len(results) == limit {
			break
		}
	}
	return results, nil
}

// All returns every ticket in creation order, uncapped.
func (s *Service) All(ctx context.Context) ([]Ticket, error) {
	all, err := s.tickets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tickets: %w", err)
	}
	return all, nil
}

// Stats aggregates the whole collection by status, category and priority.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	all, err := s.tickets.List(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("listing tickets: %w", err)
	}

	stats := Stats{
		Total:      len(all),
		ByStatus:   make(map[Status]int),
		ByCategory: make(map[Category]int),
		ByPriority: make(map[Priority]int),
	}
	for _, t := range all {
		stats.ByStatus[t.Stat]++
		stats.ByCategory[t.Cat]++
		stats.ByPriority[t.Pri]++
	}
	return stats, nil
}
