package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"studio_quotation/internal/domain/entities"
	"studio_quotation/internal/usecase/interfaces"
)

// WebhookNotifier POSTs notification events as JSON to a configured
// endpoint; the actual email/message formatting is someone else's job.
type WebhookNotifier struct {
	client *http.Client
	url    string
}

var _ interfaces.INotifier = (*WebhookNotifier)(nil)

func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		client: &http.Client{Timeout: 10 * time.Second},
		url:    url,
	}
}

type notificationEvent struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

func (n *WebhookNotifier) NotifyInvitation(ctx context.Context, inv interfaces.InvitationDetails) error {
	return n.post(ctx, notificationEvent{Type: "client.invited", Payload: inv})
}

func (n *WebhookNotifier) NotifyQuotationDecision(ctx context.Context, q entities.Quotation) error {
	return n.post(ctx, notificationEvent{Type: "quotation." + string(q.Status), Payload: q})
}

func (n *WebhookNotifier) post(ctx context.Context, event notificationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notification endpoint returned status %d", resp.StatusCode)
	}
	log.Printf("[notify][webhook] delivered type=%s", event.Type)
	return nil
}
