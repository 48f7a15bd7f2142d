package transport_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/triagekit/triage/internal/domain/ticket"
	"github.com/triagekit/triage/internal/envelope"
	"github.com/triagekit/triage/internal/jsonstore"
	"github.com/triagekit/triage/internal/transport"
	"github.com/triagekit/triage/internal/triage"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	store, err := jsonstore.New(filepath.Join(t.TempDir(), "tickets.json"))
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	processor := triage.NewProcessor(ticket.NewService(store, logger), logger)
	return transport.NewRouter(processor, logger)
}

func postProcess(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/process", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandleProcess_Create(t *testing.T) {
	router := newTestRouter(t)

	rec := postProcess(t, router, `{"message":"Create ticket for login bug, high priority"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp envelope.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, envelope.StatusOK, resp.Status)
	require.Equal(t, envelope.ActionCreated, resp.Action)
}

func TestHandleProcess_ErrorsTravelInBand(t *testing.T) {
	router := newTestRouter(t)

	// Missing ticket: transport still answers 200, the envelope
	// carries the failure.
	rec := postProcess(t, router, `{"message":"Close T999, fixed it"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp envelope.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, envelope.StatusNotFound, resp.Status)
}

func TestHandleProcess_Hints(t *testing.T) {
	router := newTestRouter(t)

	rec := postProcess(t, router, `{"message":"pagination broken on dashboard","action":"CREATE"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp envelope.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Equal(t, envelope.StatusOK, resp.Status)
	require.Equal(t, envelope.ActionCreated, resp.Action)
}

func TestHandleProcess_MalformedBody(t *testing.T) {
	router := newTestRouter(t)

	rec := postProcess(t, router, `{not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleTickets(t *testing.T) {
	router := newTestRouter(t)

	postProcess(t, router, `{"message":"Create ticket for login bug"}`)
	postProcess(t, router, `{"message":"Create ticket for readme cleanup"}`)

	req := httptest.NewRequest(http.MethodGet, "/api/tickets", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var tickets []ticket.Ticket
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&tickets))
	require.Len(t, tickets, 2)
	require.Equal(t, "T001", tickets[0].ID)
	require.Equal(t, "T002", tickets[1].ID)
}

func TestHandleStats(t *testing.T) {
	router := newTestRouter(t)

	postProcess(t, router, `{"message":"Create ticket for login bug, high priority"}`)

	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats ticket.Stats
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&stats))
	require.Equal(t, 1, stats.Total)
	require.Equal(t, 1, stats.ByStatus[ticket.StatusOpen])
}

func TestHandleHealth(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

func TestRequestIDHeader(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	// A caller-supplied id is echoed back.
	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-Id", "abc-123")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, "abc-123", rec.Header().Get("X-Request-Id"))
}
