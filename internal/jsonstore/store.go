package jsonstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/triagekit/triage/internal/domain/ticket"
	"github.com/triagekit/triage/internal/repository"
)

// Store implements ticket.Repository over a single JSON document: an
// array of tickets in insertion order, read wholesale at startup and
// rewritten wholesale on every mutation. The store itself carries no
// locking; callers serialize access.
type Store struct {
	path    string
	tickets []ticket.Ticket
}

// New opens (or initializes) the store at path. A missing or empty
// file yields an empty collection; a malformed one is fatal.
func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}

	s := &Store{path: path}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read store file: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &s.tickets); err != nil {
		return fmt.Errorf("%w: %s: %v", repository.ErrCorrupt, s.path, err)
	}
	return nil
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.tickets, "", "  ")
	if err != nil {
		return fmt.Errorf("encode store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	return nil
}

func (s *Store) indexOf(id string) int {
	for i := range s.tickets {
		if s.tickets[i].ID == id {
			return i
		}
	}
	return -1
}

// Insert appends a new ticket and rewrites the backing file.
func (s *Store) Insert(_ context.Context, t *ticket.Ticket) error {
	if s.indexOf(t.ID) >= 0 {
		return fmt.Errorf("%w: %s", repository.ErrDuplicateID, t.ID)
	}
	s.tickets = append(s.tickets, *t)
	if err := s.save(); err != nil {
		s.tickets = s.tickets[:len(s.tickets)-1]
		return err
	}
	return nil
}

// Get returns a copy of the ticket with the given id.
func (s *Store) Get(_ context.Context, id string) (*ticket.Ticket, error) {
	i := s.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", repository.ErrNotFound, id)
	}
	t := s.tickets[i]
	return &t, nil
}

// Update replaces an existing ticket in place and rewrites the
// backing file. The collection is untouched when the id is absent.
func (s *Store) Update(_ context.Context, t *ticket.Ticket) error {
	i := s.indexOf(t.ID)
	if i < 0 {
		return fmt.Errorf("%w: %s", repository.ErrNotFound, t.ID)
	}
	previous := s.tickets[i]
	s.tickets[i] = *t
	if err := s.save(); err != nil {
		s.tickets[i] = previous
		return err
	}
	return nil
}

// List returns all tickets in insertion order.
func (s *Store) List(_ context.Context) ([]ticket.Ticket, error) {
	out := make([]ticket.Ticket, len(s.tickets))
	copy(out, s.tickets)
	return out, nil
}

// NextID returns the next ticket id: T + zero-padded max numeric
// suffix + 1, or T001 for an empty collection.
func (s *Store) NextID(_ context.Context) (string, error) {
	max := 0
	for _, t := range s.tickets {
		n, err := strconv.Atoi(strings.TrimPrefix(t.ID, "T"))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("T%03d", max+1), nil
}
