package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CaseAssign_Go/internal/auction"
	"github.com/osse101/CaseAssign_Go/internal/event"
	"github.com/osse101/CaseAssign_Go/internal/greedy"
	"github.com/osse101/CaseAssign_Go/internal/intake"
	"github.com/osse101/CaseAssign_Go/internal/live"
	"github.com/osse101/CaseAssign_Go/internal/repository/memory"
	"github.com/osse101/CaseAssign_Go/internal/session"
)

const testCSV = "Case_ID,Case_Type,Region,Priority,Points,Date_Filled,Description\n" +
	"10,civil,north,High,4,2024-01-02,Contract dispute\n" +
	"11,criminal,south,Low,7,2024-02-03,Theft\n"

type testEnv struct {
	router  chi.Router
	manager *session.Manager
	results *memory.ResultsRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	bus := event.NewMemoryBus()
	manager := session.NewManager(16, 0)
	results := memory.NewResultsRepository()

	greedySvc := greedy.NewService(nil, bus, nil)
	auctionSvc := auction.NewService(bus, nil)
	manager.HandleAuctionRelease(auctionSvc.HandleRelease)

	sessions := NewSessionHandler(manager, nil)
	cases := NewCaseHandler(intake.NewService(bus, nil))
	auctions := NewAuctionHandler(auctionSvc)
	greedyH := NewGreedyHandler(greedySvc)
	liveH := NewLiveHandler(live.NewDispatcher(greedySvc))
	resultsH := NewResultsHandler(results)

	r := chi.NewRouter()
	r.Post("/sessions", sessions.HandleCreate)
	r.Route("/sessions/{code}", func(r chi.Router) {
		r.Use(LoadSession(manager))
		r.Post("/login", sessions.HandleLogin)
		r.Group(func(r chi.Router) {
			r.Use(RequireParticipant)
			r.Get("/cases", sessions.HandleListCases)
			r.Get("/cases/available", greedyH.HandleAvailable)
			r.Post("/cases/upload", cases.HandleUpload)
			r.Post("/auction/bids", auctions.HandleSubmitBids)
			r.Get("/auction/results", auctions.HandleResults)
			r.Post("/live", liveH.HandleMessage)
			r.Post("/rounds/next", greedyH.HandleNextRound)
			r.Get("/summary", greedyH.HandleSummary)
		})
	})
	r.Get("/results", resultsH.HandleList)
	r.Get("/results/{code}", resultsH.HandleGet)

	return &testEnv{router: r, manager: manager, results: results}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	contentType := ContentTypeJSON
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
		contentType = "text/csv"
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set(HeaderParticipantToken, token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) createSession(t *testing.T, req CreateSessionRequest) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/sessions", "", req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp CreateSessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Code
}

func (e *testEnv) login(t *testing.T, code, username, password string) session.Login {
	t.Helper()
	w := e.do(t, http.MethodPost, "/sessions/"+code+"/login", "", LoginRequest{Username: username, Password: password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var login session.Login
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	return login
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func intPtr(v int) *int          { return &v }
func uint64Ptr(v uint64) *uint64 { return &v }
