package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/citizenwallet/govdash/pkg/gov"
)

type Message struct {
	Content string `json:"content"`
}

// Messager posts operational messages to a Discord compatible webhook.
type Messager struct {
	BaseURL string
	Service string

	notify bool
	client *http.Client
}

func NewMessager(baseURL, service string, notify bool) gov.WebhookMessager {
	return &Messager{
		BaseURL: baseURL,
		Service: service,
		notify:  notify && baseURL != "",
		client:  http.DefaultClient,
	}
}

func (b *Messager) Notify(ctx context.Context, message string) error {
	return b.post(ctx, fmt.Sprintf("[%s] %s", b.Service, message))
}

func (b *Messager) NotifyWarning(ctx context.Context, errorMessage error) error {
	return b.post(ctx, fmt.Sprintf("[%s] warning: %s", b.Service, errorMessage.Error()))
}

func (b *Messager) NotifyError(ctx context.Context, errorMessage error) error {
	return b.post(ctx, fmt.Sprintf("[%s] error: %s", b.Service, errorMessage.Error()))
}

func (b *Messager) post(ctx context.Context, content string) error {
	if !b.notify {
		return nil
	}

	data, err := json.Marshal(Message{Content: content})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.BaseURL, bytes.NewReader(data))
	if err != nil {
		return err
	}

	req.Header.Add("Content-Type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	// discord answers 204 when the message was accepted
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return errors.New("error sending message")
	}

	return nil
}
