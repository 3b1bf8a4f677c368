package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salonops/salon-manager/internal/audit"
)

// WebhookHandler receives inbound messaging provider callbacks. Messages
// are acknowledged and audited; replies are handled by the automation
// pipeline on the other side of the webhook, not here.
type WebhookHandler struct {
	audit *audit.Dispatcher
}

func NewWebhookHandler(dispatcher *audit.Dispatcher) *WebhookHandler {
	return &WebhookHandler{audit: dispatcher}
}

type inboundMessage struct {
	FromMe bool   `json:"from_me"`
	ChatID string `json:"chat_id"`
	Text   struct {
		Body string `json:"body"`
	} `json:"text"`
}

type InboundWebhookRequest struct {
	Messages []inboundMessage `json:"messages"`
}

// Receive always answers 200 so the provider does not retry; malformed
// payloads are simply ignored.
func (h *WebhookHandler) Receive(c *gin.Context) {
	var req InboundWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"received": 0})
		return
	}

	received := 0
	for _, msg := range req.Messages {
		if msg.FromMe {
			continue
		}
		received++

		h.audit.Dispatch(audit.Event{
			Action: "inbound_message",
			Entity: "webhook",
			Metadata: map[string]string{
				"chat_id": msg.ChatID,
				"body":    msg.Text.Body,
			},
		})
	}

	c.JSON(http.StatusOK, gin.H{"received": received})
}
