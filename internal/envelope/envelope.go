package envelope

import (
	"errors"

	"github.com/triagekit/triage/internal/domain/ticket"
	"github.com/triagekit/triage/internal/repository"
)

// Envelope statuses. Errors travel in-band; transports always return
// the envelope with a 200.
const (
	StatusOK       = "ok"
	StatusNotFound = "nf"
	StatusError    = "er"
)

// Actions echoed on successful mutations.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionClosed  = "closed"
)

// Response is the fixed envelope returned to every front end.
type Response struct {
	Status string `json:"status"`
	Action string `json:"action,omitempty"`
	Count  *int   `json:"count,omitempty"`
	Data   any    `json:"data,omitempty"`
	Msg    string `json:"msg,omitempty"`
}

// Delta echoes only the fields touched by an update or close.
type Delta struct {
	ID   string        `json:"id"`
	Stat ticket.Status `json:"stat,omitempty"`
	Res  string        `json:"res,omitempty"`
}

// Created wraps a freshly created ticket.
func Created(t *ticket.Ticket) Response {
	return Response{Status: StatusOK, Action: ActionCreated, Data: t}
}

// Updated wraps the changed fields of an update.
func Updated(d Delta) Response {
	return Response{Status: StatusOK, Action: ActionUpdated, Data: d}
}

// Closed wraps the changed fields of a close.
func Closed(d Delta) Response {
	return Response{Status: StatusOK, Action: ActionClosed, Data: d}
}

// Listed wraps a query result with its length.
func Listed(data any, count int) Response {
	return Response{Status: StatusOK, Count: &count, Data: data}
}

// NotFound is the envelope for a missing ticket id.
func NotFound() Response {
	return Response{Status: StatusNotFound, Msg: "ticket not found"}
}

// Errorf is the envelope for any other failure.
func Errorf(msg string) Response {
	return Response{Status: StatusError, Msg: msg}
}

// FromError maps domain and storage errors to their envelope.
func FromError(err error) Response {
	switch {
	case errors.Is(err, ticket.ErrNotFound):
		return NotFound()
	case errors.Is(err, ticket.ErrMissingTitle):
		return Errorf("title required")
	case errors.Is(err, ticket.ErrMissingID):
		return Errorf("invalid ticket id")
	case errors.Is(err, repository.ErrCorrupt):
		return Errorf("storage failed")
	default:
		return Errorf(err.Error())
	}
}
