package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/Rodluisfelipe/SisRestaurantes-sub001/realtime"
	"github.com/Rodluisfelipe/SisRestaurantes-sub001/services"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS is enforced at the HTTP layer
	},
}

const sseHeartbeatInterval = 25 * time.Second

// RealtimeController exposes the hub over the two supported transports:
// room-based websockets and an SSE stream per tenant. There is no replay on
// either; clients re-fetch current state on connect.
type RealtimeController struct {
	hub      *realtime.Hub
	resolver *services.TenantResolver
	log      *logrus.Logger
}

func NewRealtimeController(hub *realtime.Hub, resolver *services.TenantResolver, log *logrus.Logger) *RealtimeController {
	return &RealtimeController{hub: hub, resolver: resolver, log: log}
}

type joinMessage struct {
	BusinessID string `json:"businessId"`
}

// HandleWebSocket upgrades the connection and waits for a join message naming
// the tenant (id or slug). The connection is subscribed under the canonical
// id and the slug, so older clients that publish-join by slug still land in
// the right room.
func (rc *RealtimeController) HandleWebSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			rc.log.Warn("websocket upgrade failed: ", err)
			return
		}
		defer conn.Close()

		var join joinMessage
		if err := conn.ReadJSON(&join); err != nil {
			return
		}
		business, err := rc.resolver.Resolve(c.Request.Context(), join.BusinessID)
		if err != nil {
			conn.WriteJSON(realtime.Event{Event: "error", Payload: gin.H{"error": "business not found", "identifier": join.BusinessID}})
			return
		}

		sub := rc.hub.Subscribe(business.BusinessID, business.Slug)
		defer rc.hub.Unsubscribe(sub)
		conn.WriteJSON(realtime.Event{Event: "joined", Payload: gin.H{"businessId": business.BusinessID}})

		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case event, ok := <-sub.Events():
				if !ok {
					return
				}
				if err := conn.WriteJSON(event); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}
}

// StreamEvents is the SSE shape of the same subscription.
func (rc *RealtimeController) StreamEvents() gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := c.Param("identifier")
		business, err := rc.resolver.Resolve(c.Request.Context(), identifier)
		if err != nil {
			respondError(c, err, identifier)
			return
		}

		sub := rc.hub.Subscribe(business.BusinessID, business.Slug)
		defer rc.hub.Unsubscribe(sub)

		c.Writer.Header().Set("Content-Type", "text/event-stream")
		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.Writer.Header().Set("Connection", "keep-alive")
		c.Writer.Flush()

		heartbeat := time.NewTicker(sseHeartbeatInterval)
		defer heartbeat.Stop()
		clientGone := c.Request.Context().Done()

		for {
			select {
			case <-clientGone:
				return
			case <-heartbeat.C:
				c.SSEvent("heartbeat", time.Now().Unix())
				c.Writer.Flush()
			case event, ok := <-sub.Events():
				if !ok {
					return
				}
				c.SSEvent(event.Event, event.Payload)
				c.Writer.Flush()
			}
		}
	}
}
