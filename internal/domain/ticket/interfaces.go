package ticket

import "context"

// Repository provides persistence for tickets. Implementations keep
// the collection in insertion order; mutations rewrite the backing
// document wholesale.
type Repository interface {
	Insert(ctx context.Context, t *Ticket) error
	Get(ctx context.Context, id string) (*Ticket, error)
	Update(ctx context.Context, t *Ticket) error
	List(ctx context.Context) ([]Ticket, error)
	NextID(ctx context.Context) (string, error)
}
