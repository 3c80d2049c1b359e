package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"gonzofleet/internal/config"
)

const openPhoneBaseURL = "https://api.openphone.com"

// SmsResult is the outcome of one send attempt. Raw always holds valid
// JSON suitable for the sms_logs jsonb column, whatever the provider
// returned.
type SmsResult struct {
	Success   bool
	MessageID string
	Error     string
	Raw       json.RawMessage
}

// OpenPhoneClient sends SMS through the OpenPhone REST API.
type OpenPhoneClient struct {
	APIKey  string
	From    string
	BaseURL string
	HTTP    *http.Client
}

// NewOpenPhoneClient builds a client from the loaded settings. The
// request timeout bounds how long an /sms/send call can hang on the
// provider.
func NewOpenPhoneClient(cfg *config.Settings) *OpenPhoneClient {
	return &OpenPhoneClient{
		APIKey:  cfg.OpenPhoneAPIKey,
		From:    cfg.OpenPhoneNumber,
		BaseURL: openPhoneBaseURL,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

type openPhoneMessage struct {
	Content string   `json:"content"`
	From    string   `json:"from"`
	To      []string `json:"to"`
}

type openPhoneResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
	Message string `json:"message"`
}

// SendSMS posts one message. It never panics on provider garbage; any
// failure comes back as a SmsResult with Success=false.
func (c *OpenPhoneClient) SendSMS(ctx context.Context, to, message string) SmsResult {
	payload, err := json.Marshal(openPhoneMessage{
		Content: message,
		From:    c.From,
		To:      []string{to},
	})
	if err != nil {
		return errResult("encode request: " + err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/messages", bytes.NewReader(payload))
	if err != nil {
		return errResult("build request: " + err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return errResult(err.Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errResult("read response: " + err.Error())
	}

	raw := json.RawMessage(body)
	if !json.Valid(body) {
		raw, _ = json.Marshal(map[string]string{"body": string(body)})
	}

	var parsed openPhoneResponse
	_ = json.Unmarshal(body, &parsed)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := parsed.Message
		if msg == "" {
			msg = fmt.Sprintf("openphone returned status %d", resp.StatusCode)
		}
		return SmsResult{Success: false, Error: msg, Raw: raw}
	}

	return SmsResult{Success: true, MessageID: parsed.Data.ID, Raw: raw}
}

func errResult(msg string) SmsResult {
	raw, _ := json.Marshal(map[string]string{"error": msg})
	return SmsResult{Success: false, Error: msg, Raw: raw}
}
