// internal/adapters/out/http/whatsapp_client.go
package httpout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// WhatsAppClient notifies the shop of an inquiry through the WhatsApp Cloud
// API using the pre-approved "gear_request" template.
type WhatsAppClient struct {
	apiURL      string
	accessToken string
	toNumber    string
	client      *http.Client
}

// apiURL example:
// - https://graph.facebook.com/v18.0/<phone-number-id>/messages
func NewWhatsAppClient(apiURL, accessToken, toNumber string) *WhatsAppClient {
	return &WhatsAppClient{
		apiURL:      strings.TrimSpace(apiURL),
		accessToken: strings.TrimSpace(accessToken),
		toNumber:    strings.TrimSpace(toNumber),
		client:      &http.Client{Timeout: 5 * time.Second},
	}
}

type waTemplateMessage struct {
	MessagingProduct string     `json:"messaging_product"`
	To               string     `json:"to"`
	Type             string     `json:"type"`
	Template         waTemplate `json:"template"`
}

type waTemplate struct {
	Name       string        `json:"name"`
	Language   waLanguage    `json:"language"`
	Components []waComponent `json:"components,omitempty"`
}

type waLanguage struct {
	Code string `json:"code"`
}

type waComponent struct {
	Type       string        `json:"type"`
	Parameters []waParameter `json:"parameters"`
}

type waParameter struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// SendGearRequest fills the template body parameters in order: customer
// name, team, phone, team size, message.
func (c *WhatsAppClient) SendGearRequest(ctx context.Context, name, team, phone, teamSize, content string) error {
	if c == nil {
		return fmt.Errorf("whatsapp client is nil")
	}
	if c.apiURL == "" {
		return fmt.Errorf("whatsapp client apiURL is empty")
	}
	if c.accessToken == "" {
		return fmt.Errorf("whatsapp access token is empty")
	}
	if c.toNumber == "" {
		return fmt.Errorf("whatsapp receiver number is empty")
	}

	params := make([]waParameter, 0, 5)
	for _, v := range []string{name, team, phone, teamSize, content} {
		v = strings.TrimSpace(v)
		if v == "" {
			v = "-"
		}
		params = append(params, waParameter{Type: "text", Text: v})
	}

	payload := waTemplateMessage{
		MessagingProduct: "whatsapp",
		To:               c.toNumber,
		Type:             "template",
		Template: waTemplate{
			Name:     "gear_request",
			Language: waLanguage{Code: "en_US"},
			Components: []waComponent{
				{Type: "body", Parameters: params},
			},
		},
	}

	b, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 400 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	return fmt.Errorf("whatsapp send failed status=%d body=%s", res.StatusCode, strings.TrimSpace(string(body)))
}
