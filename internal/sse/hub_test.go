package sse

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func receive(t *testing.T, c *Client) (Event, bool) {
	t.Helper()
	select {
	case e, ok := <-c.EventChannel:
		return e, ok
	case <-time.After(time.Second):
		return Event{}, false
	}
}

func TestHub_BroadcastIsScopedToSession(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	a := hub.Register("AAAAAA", nil)
	b := hub.Register("BBBBBB", nil)
	all := hub.Register("", nil)
	require.Eventually(t, func() bool { return hub.ClientCount() == 3 }, time.Second, 5*time.Millisecond)

	hub.Broadcast("AAAAAA", EventTypeCaseSelected, CaseSelectionPayload{CaseID: 4})

	got, ok := receive(t, a)
	require.True(t, ok)
	assert.Equal(t, EventTypeCaseSelected, got.Type)
	assert.Equal(t, "AAAAAA", got.Session)

	got, ok = receive(t, all)
	require.True(t, ok)
	assert.Equal(t, EventTypeCaseSelected, got.Type)

	select {
	case e := <-b.EventChannel:
		t.Fatalf("client of another session received %v", e)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_EventFilter(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	c := hub.Register("S", []string{EventTypeAuctionResolved})
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.Broadcast("S", EventTypeBidsSubmitted, BarrierProgressPayload{Pending: 1})
	hub.Broadcast("S", EventTypeAuctionResolved, AuctionResolvedPayload{})

	got, ok := receive(t, c)
	require.True(t, ok)
	assert.Equal(t, EventTypeAuctionResolved, got.Type)
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	c := hub.Register("S", nil)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.Unregister(c.ID)

	_, ok := receive(t, c)
	assert.False(t, ok)
	assert.Equal(t, 0, hub.ClientCount())
}

func TestHub_StopIsIdempotent(t *testing.T) {
	hub := NewHub()
	hub.Start()
	c := hub.Register("S", nil)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	hub.Stop()
	hub.Stop()

	_, ok := <-c.EventChannel
	assert.False(t, ok)
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "1", Type: EventTypeRoundAdvanced, Payload: RoundPayload{Round: 2}})
	require.NoError(t, err)

	s := string(msg)
	assert.True(t, strings.HasPrefix(s, "id: 1\nevent: round_advanced\ndata: {"))
	assert.Contains(t, s, `"round":2`)
	assert.True(t, strings.HasSuffix(s, "\n\n"))
}

func TestHandler_StreamsSessionEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	r := chi.NewRouter()
	r.Get("/sessions/{code}/events", Handler(hub))
	srv := httptest.NewServer(r)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/sessions/QWERTY/events", nil)
	require.NoError(t, err)
	client := &http.Client{Transport: &http.Transport{}}
	defer client.CloseIdleConnections()
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	readEventType := func() string {
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			if strings.HasPrefix(line, "event: ") {
				return strings.TrimSpace(strings.TrimPrefix(line, "event: "))
			}
		}
	}

	assert.Equal(t, EventTypeConnected, readEventType())

	hub.Broadcast("OTHER1", EventTypeCaseSelected, CaseSelectionPayload{CaseID: 9})
	hub.Broadcast("QWERTY", EventTypeCaseUnselected, CaseSelectionPayload{CaseID: 3})

	assert.Equal(t, EventTypeCaseUnselected, readEventType())
}
