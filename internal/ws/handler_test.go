package ws

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestHandlerSubscribeReceivesEvents(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	h := NewHandler(hub, nil)
	srv := httptest.NewServer(http.HandlerFunc(h.subscribe))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Registration goes through the hub loop, so wait for it.
	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatalf("subscriber never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	hub.Broadcast([]byte(`{"event":"assessment_scored"}`))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(msg), "assessment_scored") {
		t.Fatalf("unexpected message: %s", msg)
	}
}

func TestHandlerRejectsPlainHTTP(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	h := NewHandler(hub, nil)
	srv := httptest.NewServer(http.HandlerFunc(h.subscribe))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUpgradeRequired {
		t.Fatalf("expected 426 for a plain request, got %d", resp.StatusCode)
	}
}
