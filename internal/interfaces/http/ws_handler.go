package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/retail-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/retail-dashboard-api/internal/application/ports"
	"github.com/jhoicas/retail-dashboard-api/internal/application/usecase"
	"github.com/jhoicas/retail-dashboard-api/internal/infrastructure/realtime"
	"github.com/jhoicas/retail-dashboard-api/pkg/logger"
)

// WSHandler canal en tiempo real: cada cliente recibe las tramas del Hub.
type WSHandler struct {
	hub       *realtime.Hub
	snapshots *usecase.SnapshotService
	log       *logger.Logger
}

// NewWSHandler construye el handler.
func NewWSHandler(hub *realtime.Hub, snapshots *usecase.SnapshotService, log *logger.Logger) *WSHandler {
	return &WSHandler{hub: hub, snapshots: snapshots, log: log}
}

// RequireUpgrade deja pasar solo peticiones de upgrade a WebSocket.
func (h *WSHandler) RequireUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Handler devuelve el handler de fiber que atiende la conexión.
func (h *WSHandler) Handler() fiber.Handler {
	return websocket.New(h.serve)
}

// serve suscribe al cliente, le envía el par vigente y reenvía tramas hasta que
// se desconecte o el Hub se cierre. Los mensajes entrantes se descartan.
func (h *WSHandler) serve(conn *websocket.Conn) {
	var sub *realtime.Subscriber
	h.snapshots.WithCurrent(func(s analytics.Snapshots) {
		sub = h.hub.Subscribe()
		if err := h.hub.Send(sub, ports.EventDashboardUpdate, s.Dashboard); err != nil {
			h.log.Error().Err(err).Msg("ws: estado inicial del panel")
		}
		if err := h.hub.Send(sub, ports.EventInventoryUpdate, s.Inventory); err != nil {
			h.log.Error().Err(err).Msg("ws: estado inicial del inventario")
		}
	})
	defer h.hub.Unsubscribe(sub)

	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case frame, ok := <-sub.Messages():
			if !ok {
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				h.log.Debug().Err(err).Str("subscriber", sub.ID()).Msg("ws: escritura fallida")
				return
			}
		case <-gone:
			return
		}
	}
}
