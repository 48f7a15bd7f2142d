package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/triagekit/triage/internal/domain/ticket"
)

// TicketRepository is a mock for ticket.Repository.
type TicketRepository struct {
	mock.Mock
}

func (m *TicketRepository) Insert(ctx context.Context, t *ticket.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *TicketRepository) Get(ctx context.Context, id string) (*ticket.Ticket, error) {
	args := m.Called(ctx, id)
	if t, ok := args.Get(0).(*ticket.Ticket); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *TicketRepository) List(ctx context.Context) ([]ticket.Ticket, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]ticket.Ticket); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TicketRepository) NextID(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
