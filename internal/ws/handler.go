package ws

import (
	"log"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
)

// Handler attaches dashboard subscribers to the assessment event
// stream. The stream is push-only: subscribers receive scoring and
// analytics events and anything they send is drained and dropped.
type Handler struct {
	hub    *Hub
	logger *log.Logger
}

func NewHandler(hub *Hub, logger *log.Logger) *Handler {
	return &Handler{hub: hub, logger: logger}
}

var assessmentsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleAssessmentsWS upgrades the connection and subscribes it to
// assessment events.
func (h *Handler) HandleAssessmentsWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}
	return adaptor.HTTPHandlerFunc(h.subscribe)(c)
}

func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	if !websocket.IsWebSocketUpgrade(r) {
		http.Error(w, "websocket upgrade required", http.StatusUpgradeRequired)
		return
	}

	conn, err := assessmentsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		if h.logger != nil {
			h.logger.Printf("WS upgrade rejected | stream=assessments remote=%s error=%v", r.RemoteAddr, err)
		}
		return
	}
	if h.logger != nil {
		h.logger.Printf("WS subscriber joined | stream=assessments remote=%s subscribers=%d", r.RemoteAddr, h.hub.ClientCount()+1)
	}

	client := NewClient(h.hub, conn)
	h.hub.Register(client)
	go client.WritePump()
	go client.ReadPump()
}
