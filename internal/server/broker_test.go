package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nhooyr.io/websocket"

	"github.com/playperu/worldtour/internal/journey"
)

func TestBrokerPublish(t *testing.T) {
	b := NewBroker()
	a := b.Subscribe("j1")
	other := b.Subscribe("j2")

	b.Publish("j1", journey.Event{Type: "departed", Phase: journey.PhaseCitySelection, Round: 1})

	select {
	case data := <-a:
		var ev journey.Event
		if err := json.Unmarshal(data, &ev); err != nil {
			t.Fatalf("decode event: %v", err)
		}
		if ev.Type != "departed" || ev.Phase != journey.PhaseCitySelection {
			t.Errorf("expected departed in CITY_SELECTION, got %+v", ev)
		}
	default:
		t.Fatal("expected an event for j1")
	}

	select {
	case <-other:
		t.Fatal("expected no event for j2")
	default:
	}

	b.Unsubscribe("j1", a)
	if n := b.subscribers("j1"); n != 0 {
		t.Errorf("expected no subscribers after unsubscribe, got %d", n)
	}
}

func TestBrokerDropsSlowSubscriber(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe("j1")

	for range cap(ch) + 5 {
		b.Publish("j1", journey.Event{Type: "generating"})
	}
	if len(ch) != cap(ch) {
		t.Errorf("expected a full buffer of %d, got %d", cap(ch), len(ch))
	}
}

func TestEventsStream(t *testing.T) {
	ts := newTestServer(t, nil)
	v := ts.start(t)

	srv := httptest.NewServer(ts.router)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/api/journeys/"+v.ID+"/events", nil)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("expected text/event-stream, got %q", ct)
	}

	buf := make([]byte, 4096)
	n, err := resp.Body.Read(buf)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	first := string(buf[:n])
	if !strings.Contains(first, "event: journey") || !strings.Contains(first, `"type":"snapshot"`) {
		t.Errorf("expected initial snapshot event, got %q", first)
	}
}

func TestEventsWebSocket(t *testing.T) {
	ts := newTestServer(t, nil)
	v := ts.start(t)

	srv := httptest.NewServer(ts.router)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/journeys/" + v.ID + "/ws"
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.CloseNow()

	var ev journey.Event
	_, data, err := conn.Read(ctx)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	if err := json.Unmarshal(data, &ev); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if ev.Type != "snapshot" || ev.Phase != journey.PhaseCitySelection {
		t.Fatalf("expected snapshot in CITY_SELECTION, got %+v", ev)
	}

	ts.do(t, http.MethodPost, "/api/journeys/"+v.ID+"/reset", nil)

	_, data, err = conn.Read(ctx)
	if err != nil {
		t.Fatalf("read reset: %v", err)
	}
	if err := json.Unmarshal(data, &ev); err != nil {
		t.Fatalf("decode reset: %v", err)
	}
	if ev.Type != "reset" || ev.Phase != journey.PhaseStart {
		t.Errorf("expected reset to START, got %+v", ev)
	}
}
