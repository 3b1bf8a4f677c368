package webhook

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// BookingNotification is posted to the external automation endpoint when a
// public self-service booking succeeds.
type BookingNotification struct {
	Phone   string `json:"phone"`
	Name    string `json:"name"`
	Service string `json:"service"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

type Notifier struct {
	url    string
	client *http.Client
}

func NewNotifier(url string) *Notifier {
	return &Notifier{
		url: url,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// NotifyBooking is best-effort: failures are logged and swallowed, a
// booking never depends on the webhook.
func (n *Notifier) NotifyBooking(note BookingNotification) {
	if n == nil || n.url == "" {
		return
	}

	go func() {
		body, err := json.Marshal(note)
		if err != nil {
			return
		}

		resp, err := n.client.Post(n.url, "application/json", bytes.NewReader(body))
		if err != nil {
			log.Printf("booking webhook failed: %v", err)
			return
		}
		resp.Body.Close()
	}()
}
