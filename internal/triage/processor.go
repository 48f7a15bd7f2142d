package triage

import (
	"context"
	"log/slog"
	"strings"

	"github.com/triagekit/triage/internal/domain/intent"
	"github.com/triagekit/triage/internal/domain/ticket"
	"github.com/triagekit/triage/internal/envelope"
)

// Processor is the single entry point both front ends call: it
// classifies free text, runs the resulting operation against the
// ticket service, and wraps the outcome in the response envelope.
type Processor struct {
	tickets *ticket.Service
	logger  *slog.Logger
}

// NewProcessor creates a processor over the given ticket service.
func NewProcessor(tickets *ticket.Service, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{tickets: tickets, logger: logger}
}

// Process classifies text and dispatches the operation.
func (p *Processor) Process(ctx context.Context, text string) envelope.Response {
	return p.ProcessWithHints(ctx, text, intent.Hints{})
}

// ProcessWithHints is Process with caller-supplied action/id hints.
func (p *Processor) ProcessWithHints(ctx context.Context, text string, hints intent.Hints) envelope.Response {
	if strings.TrimSpace(text) == "" && hints.Action == "" {
		return envelope.Errorf("invalid input")
	}

	in := intent.ParseWithHints(text, hints)
	switch in.Action {
	case intent.ActionCreate:
		return p.create(ctx, in)
	case intent.ActionUpdate:
		return p.update(ctx, in)
	case intent.ActionClose:
		return p.close(ctx, in)
	case intent.ActionView:
		return p.view(ctx, in)
	default:
		p.logger.Debug("unrecognized input", "text", in.Raw)
		return envelope.Errorf("invalid input")
	}
}

// Stats aggregates the collection for dashboards and the CLI.
func (p *Processor) Stats(ctx context.Context) (ticket.Stats, error) {
	return p.tickets.Stats(ctx)
}

// Tickets returns the full collection in creation order.
func (p *Processor) Tickets(ctx context.Context) ([]ticket.Ticket, error) {
	return p.tickets.All(ctx)
}

func (p *Processor) create(ctx context.Context, in intent.Intent) envelope.Response {
	t, err := p.tickets.Create(ctx, ticket.CreateRequest{
		Title: in.Title,
		Desc:  in.Desc,
		Cat:   in.Cat,
		Pri:   in.Pri,
	})
	if err != nil {
		return envelope.FromError(err)
	}
	return envelope.Created(t)
}

func (p *Processor) update(ctx context.Context, in intent.Intent) envelope.Response {
	req := ticket.UpdateRequest{ID: in.ID, Stat: in.Stat}
	if in.Res != "" {
		res := in.Res
		req.Res = &res
	}

	t, err := p.tickets.Update(ctx, req)
	if err != nil {
		return envelope.FromError(err)
	}

	delta := envelope.Delta{ID: t.ID}
	if in.Stat != nil {
		delta.Stat = t.Stat
	}
	if in.Res != "" {
		delta.Res = t.Res
	}
	return envelope.Updated(delta)
}

func (p *Processor) close(ctx context.Context, in intent.Intent) envelope.Response {
	t, err := p.tickets.Close(ctx, in.ID, in.Res)
	if err != nil {
		return envelope.FromError(err)
	}
	return envelope.Closed(envelope.Delta{ID: t.ID, Stat: t.Stat, Res: t.Res})
}

func (p *Processor) view(ctx context.Context, in intent.Intent) envelope.Response {
	if in.ID != "" {
		t, err := p.tickets.Get(ctx, in.ID)
		if err != nil {
			return envelope.FromError(err)
		}
		return envelope.Listed([]ticket.Ticket{*t}, 1)
	}

	results, err := p.tickets.List(ctx, in.Filters)
	if err != nil {
		return envelope.FromError(err)
	}
	return envelope.Listed(results, len(results))
}
